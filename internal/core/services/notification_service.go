package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/radityo/guestgate/internal/core/domain"
	"github.com/radityo/guestgate/internal/core/ports"
)

const DefaultDailyNotificationLimit = 300

// NotificationService sends attendee emails through the external sender,
// enforcing the per-event daily quota before every send. Quota exhaustion
// is a rejection, not a failure; the attendee is simply not marked
// notified and can be retried tomorrow.
type NotificationService struct {
	attendees   ports.AttendeeRepository
	mailer      ports.Mailer
	redisClient *redis.Client
	dailyLimit  int64
}

func NewNotificationService(attendees ports.AttendeeRepository, mailer ports.Mailer, redisClient *redis.Client, dailyLimit int64) *NotificationService {
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyNotificationLimit
	}

	return &NotificationService{
		attendees:   attendees,
		mailer:      mailer,
		redisClient: redisClient,
		dailyLimit:  dailyLimit,
	}
}

func (s *NotificationService) Notify(ctx context.Context, attendeeID uuid.UUID, subject, body string) error {
	attendee, err := s.attendees.GetByID(ctx, attendeeID)
	if err != nil {
		return err
	}

	if attendee.Notified {
		return nil
	}

	key := quotaKey(attendee.EventID, time.Now().UTC())

	sent, err := s.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check notification quota: %w", err)
	}

	if sent == 1 {
		// Keep the counter around past midnight so a late audit can see it.
		s.redisClient.Expire(ctx, key, 48*time.Hour)
	}

	if sent > s.dailyLimit {
		return domain.ErrQuotaExceeded
	}

	if err := s.mailer.Send(ctx, attendee.Email, subject, body); err != nil {
		// Refund the slot; a transient sender outage must not burn the
		// quota without a single message going out.
		if dErr := s.redisClient.Decr(ctx, key).Err(); dErr != nil {
			log.Printf("Failed to refund notification quota %s: %v", key, dErr)
		}
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return s.attendees.MarkNotified(ctx, attendee.ID)
}

func quotaKey(eventID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("notify:%s:%s", eventID.String(), now.Format("2006-01-02"))
}
