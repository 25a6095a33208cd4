package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/radityo/guestgate/internal/core/codec"
	"github.com/radityo/guestgate/internal/core/domain"
	"github.com/radityo/guestgate/internal/core/ports"
)

type ScanResult struct {
	Attendee         *domain.Attendee
	AlreadyCheckedIn bool
}

// CheckInService transitions an attendee from not-arrived to checked-in
// exactly once. A second scan of the same badge reports the existing state
// and runs no side effects.
type CheckInService struct {
	badges    *codec.BadgeCodec
	attendees ports.AttendeeRepository
	notifier  ports.ChangeNotifier
}

func NewCheckInService(badges *codec.BadgeCodec, attendees ports.AttendeeRepository, notifier ports.ChangeNotifier) *CheckInService {
	return &CheckInService{
		badges:    badges,
		attendees: attendees,
		notifier:  notifier,
	}
}

// CheckInScan decodes a QR payload and checks the attendee in. The badge's
// event must match the scanning station's event; a badge for another event
// is rejected, never routed.
func (s *CheckInService) CheckInScan(ctx context.Context, eventID uuid.UUID, payload string) (*ScanResult, error) {
	badge, err := s.badges.Decode(payload)
	if err != nil {
		return nil, err
	}

	if badge.EventID != eventID {
		return nil, domain.ErrWrongEvent
	}

	attendee, err := s.attendees.GetByID(ctx, badge.AttendeeID)
	if err != nil {
		return nil, err
	}

	if attendee.EventID != eventID {
		return nil, domain.ErrWrongEvent
	}

	if badge.Code != "" && badge.Code != attendee.Code {
		return nil, domain.ErrMalformedBadge
	}

	return s.checkIn(ctx, attendee)
}

// CheckInManual is the fallback path for a hand-typed attendee code.
func (s *CheckInService) CheckInManual(ctx context.Context, eventID uuid.UUID, code string) (*ScanResult, error) {
	attendee, err := s.attendees.GetByCode(ctx, eventID, code)
	if err != nil {
		return nil, err
	}

	return s.checkIn(ctx, attendee)
}

func (s *CheckInService) checkIn(ctx context.Context, attendee *domain.Attendee) (*ScanResult, error) {
	now := time.Now().UTC()

	first, err := s.attendees.CheckIn(ctx, attendee.ID, now)
	if err != nil {
		return nil, err
	}

	if first {
		attendee.CheckedIn = true
		attendee.CheckedInAt = &now

		if err := s.notifier.Publish(ctx, domain.NewChange(attendee.EventID, domain.TableAttendees, attendee)); err != nil {
			log.Printf("Failed to publish check-in of %s: %v", attendee.ID, err)
		}
	} else {
		attendee.CheckedIn = true
	}

	return &ScanResult{Attendee: attendee, AlreadyCheckedIn: !first}, nil
}
