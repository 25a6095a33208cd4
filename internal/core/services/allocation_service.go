package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lucsky/cuid"
	"github.com/redis/go-redis/v9"

	"github.com/radityo/guestgate/internal/core/domain"
	"github.com/radityo/guestgate/internal/core/ports"
)

type AssignInput struct {
	AttendeeID string `json:"attendee_id"`
	AmenityID  string `json:"amenity_id"`
	Quantity   int    `json:"quantity"`
}

type OrderAttendee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AmenityGrant struct {
	AmenityID string `json:"amenity_id"`
	Quantity  int    `json:"quantity"`
}

// OrderCompletedInput arrives from the order queue once payment has
// settled. Every attendee on the order receives every listed grant.
type OrderCompletedInput struct {
	OrderID   string          `json:"order_id"`
	EventID   string          `json:"event_id"`
	TicketID  string          `json:"ticket_id"`
	Email     string          `json:"email"`
	Attendees []OrderAttendee `json:"attendees"`
	Grants    []AmenityGrant  `json:"grants"`
}

// AllocationService creates attendee/amenity bindings. A grant reserves
// units on the ledger first and only then touches the assignment row; if
// the second step fails the reservation is released again, retried until
// it lands or is parked for the reconciliation worker.
type AllocationService struct {
	ledger      ports.LedgerRepository
	assignments ports.AssignmentRepository
	attendees   ports.AttendeeRepository
	orders      ports.OrderRepository
	notifier    ports.ChangeNotifier
	redisClient *redis.Client
}

func NewAllocationService(
	ledger ports.LedgerRepository,
	assignments ports.AssignmentRepository,
	attendees ports.AttendeeRepository,
	orders ports.OrderRepository,
	notifier ports.ChangeNotifier,
	redisClient *redis.Client,
) *AllocationService {
	return &AllocationService{
		ledger:      ledger,
		assignments: assignments,
		attendees:   attendees,
		orders:      orders,
		notifier:    notifier,
		redisClient: redisClient,
	}
}

func (s *AllocationService) Assign(ctx context.Context, in AssignInput) (*domain.AmenityAssignment, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	attendeeID, err := uuid.Parse(in.AttendeeID)
	if err != nil {
		return nil, errors.New("invalid attendee id")
	}

	amenityID, err := uuid.Parse(in.AmenityID)
	if err != nil {
		return nil, errors.New("invalid amenity id")
	}

	attendee, err := s.attendees.GetByID(ctx, attendeeID)
	if err != nil {
		return nil, err
	}

	amenity, err := s.ledger.GetAmenity(ctx, amenityID)
	if err != nil {
		return nil, err
	}

	if amenity.EventID != attendee.EventID {
		return nil, domain.ErrEventMismatch
	}

	if err := s.ledger.Reserve(ctx, amenityID, in.Quantity); err != nil {
		return nil, err
	}
	s.publishStock(ctx, amenity.EventID, domain.TableAmenities, amenityID, -in.Quantity)

	assignment := &domain.AmenityAssignment{
		ID:         uuid.New(),
		AttendeeID: attendeeID,
		AmenityID:  amenityID,
		Reserved:   in.Quantity,
		Remaining:  in.Quantity,
	}

	stored, err := s.assignments.Upsert(ctx, assignment)
	if err != nil {
		s.releaseReservation(ctx, amenity.EventID, amenityID, in.Quantity)
		return nil, fmt.Errorf("failed to store assignment: %w", err)
	}

	s.invalidateAmenityCache(ctx, amenity.EventID)
	s.publish(ctx, domain.NewChange(amenity.EventID, domain.TableAssignments, stored))

	return stored, nil
}

// CompleteOrder turns a settled order into attendees and their amenity
// grants. The ticket ledger is decremented once for the whole party.
func (s *AllocationService) CompleteOrder(ctx context.Context, in OrderCompletedInput) (*domain.Order, error) {
	eventID, err := uuid.Parse(in.EventID)
	if err != nil {
		return nil, errors.New("invalid event id")
	}

	ticketID, err := uuid.Parse(in.TicketID)
	if err != nil {
		return nil, errors.New("invalid ticket id")
	}

	if len(in.Attendees) == 0 {
		return nil, errors.New("order has no attendees")
	}

	ticket, err := s.ledger.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if ticket.EventID != eventID {
		return nil, domain.ErrEventMismatch
	}

	count := len(in.Attendees)
	total := ticket.Price * float64(count)

	type parsedGrant struct {
		amenityID uuid.UUID
		quantity  int
	}

	grants := make([]parsedGrant, 0, len(in.Grants))
	for _, grant := range in.Grants {
		amenityID, err := uuid.Parse(grant.AmenityID)
		if err != nil {
			return nil, errors.New("invalid amenity id in grant")
		}
		if grant.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}

		amenity, err := s.ledger.GetAmenity(ctx, amenityID)
		if err != nil {
			return nil, err
		}
		if amenity.EventID != eventID {
			return nil, domain.ErrEventMismatch
		}

		total += amenity.Price * float64(grant.Quantity*count)
		grants = append(grants, parsedGrant{amenityID: amenityID, quantity: grant.Quantity})
	}

	if !ticket.Unlimited() {
		if err := s.ledger.ReserveTicket(ctx, ticketID, count); err != nil {
			return nil, err
		}
		s.publishStock(ctx, eventID, domain.TableTickets, ticketID, -count)
	}

	order := &domain.Order{
		ID:        uuid.New(),
		EventID:   eventID,
		TicketID:  ticketID,
		Email:     in.Email,
		Quantity:  count,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}

	attendees := make([]domain.Attendee, 0, count)
	for _, a := range in.Attendees {
		attendees = append(attendees, domain.Attendee{
			ID:        uuid.New(),
			EventID:   eventID,
			TicketID:  &ticketID,
			Name:      a.Name,
			Email:     a.Email,
			Code:      cuid.Slug(),
			CreatedAt: order.CreatedAt,
		})
	}

	if err := s.orders.CreateWithAttendees(ctx, order, attendees); err != nil {
		if !ticket.Unlimited() {
			if relErr := s.ledger.ReleaseTicket(ctx, ticketID, count); relErr != nil {
				log.Printf("Failed to release %d ticket units for %s after order failure: %v", count, ticketID, relErr)
			} else {
				s.publishStock(ctx, eventID, domain.TableTickets, ticketID, count)
			}
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, attendee := range attendees {
		for _, grant := range grants {
			_, err := s.Assign(ctx, AssignInput{
				AttendeeID: attendee.ID.String(),
				AmenityID:  grant.amenityID.String(),
				Quantity:   grant.quantity,
			})
			if err == nil {
				continue
			}

			// The order is already committed; the grant may not be lost.
			log.Printf("Grant of %d x %s to attendee %s failed: %v. Parking for retry.", grant.quantity, grant.amenityID, attendee.ID, err)
			if qErr := s.assignments.EnqueueGrantRetry(ctx, attendee.ID, grant.amenityID, grant.quantity, err.Error()); qErr != nil {
				log.Printf("CRITICAL: could not park grant of %d x %s for attendee %s: %v", grant.quantity, grant.amenityID, attendee.ID, qErr)
			}
		}
	}

	s.publish(ctx, domain.NewChange(eventID, domain.TableAttendees, attendees))

	return order, nil
}

const releaseAttempts = 3

// releaseReservation undoes a ledger decrement after the assignment write
// failed. The release may not be dropped: after a few direct attempts it
// is parked in the reconciliation queue for the background worker.
func (s *AllocationService) releaseReservation(ctx context.Context, eventID, amenityID uuid.UUID, quantity int) {
	var err error
	for attempt := 1; attempt <= releaseAttempts; attempt++ {
		err = s.ledger.Release(ctx, amenityID, quantity)
		if err == nil {
			s.publishStock(ctx, eventID, domain.TableAmenities, amenityID, quantity)
			return
		}
		log.Printf("Release of %d units on %s failed (attempt %d/%d): %v", quantity, amenityID, attempt, releaseAttempts, err)
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}

	if qErr := s.ledger.EnqueueReconciliation(ctx, amenityID, quantity, fmt.Sprintf("release failed: %v", err)); qErr != nil {
		log.Printf("CRITICAL: could not queue reconciliation for %d units on %s: %v", quantity, amenityID, qErr)
	}
}

// RunReconciliationLoop drains parked ledger releases and parked grants
// until they apply.
func (s *AllocationService) RunReconciliationLoop(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	log.Println("Reconciliation worker started: retrying failed ledger releases and grants every 1 minute...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Reconciliation worker stopped.")
			return
		case <-ticker.C:
			s.DrainReconciliations(ctx)
		}
	}
}

// DrainReconciliations runs one pass over the parked ledger releases and
// the parked grants.
func (s *AllocationService) DrainReconciliations(ctx context.Context) {
	s.drainLedgerReleases(ctx)
	s.drainGrantRetries(ctx)
}

func (s *AllocationService) drainLedgerReleases(ctx context.Context) {
	pending, err := s.ledger.PendingReconciliations(ctx)
	if err != nil {
		log.Printf("Error fetching pending reconciliations: %v", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	log.Printf("Found %d pending ledger reconciliations. Retrying...", len(pending))

	for _, rec := range pending {
		if err := s.ledger.ApplyReconciliation(ctx, rec); err != nil {
			log.Printf("Reconciliation %s still failing: %v", rec.ID, err)
			continue
		}

		if amenity, err := s.ledger.GetAmenity(ctx, rec.AmenityID); err != nil {
			log.Printf("Could not load amenity %s to publish the restored units: %v", rec.AmenityID, err)
		} else {
			s.publishStock(ctx, amenity.EventID, domain.TableAmenities, rec.AmenityID, rec.Quantity)
		}

		log.Printf("Reconciliation %s applied: %d units restored to %s.", rec.ID, rec.Quantity, rec.AmenityID)
	}
}

func (s *AllocationService) drainGrantRetries(ctx context.Context) {
	pending, err := s.assignments.PendingGrantRetries(ctx)
	if err != nil {
		log.Printf("Error fetching pending grant retries: %v", err)
		return
	}

	for _, g := range pending {
		claimed, err := s.assignments.ClaimGrantRetry(ctx, g.ID)
		if err != nil {
			log.Printf("Failed to claim grant retry %s: %v", g.ID, err)
			continue
		}
		if !claimed {
			continue
		}

		_, err = s.Assign(ctx, AssignInput{
			AttendeeID: g.AttendeeID.String(),
			AmenityID:  g.AmenityID.String(),
			Quantity:   g.Quantity,
		})
		if err == nil {
			log.Printf("Parked grant %s applied: %d x %s for attendee %s.", g.ID, g.Quantity, g.AmenityID, g.AttendeeID)
			continue
		}

		if errors.Is(err, domain.ErrAmenityNotFound) || errors.Is(err, domain.ErrAttendeeNotFound) || errors.Is(err, domain.ErrEventMismatch) {
			log.Printf("Dropping unrecoverable grant retry %s: %v", g.ID, err)
			continue
		}

		log.Printf("Grant retry %s failed again: %v. Re-parking.", g.ID, err)
		if qErr := s.assignments.EnqueueGrantRetry(ctx, g.AttendeeID, g.AmenityID, g.Quantity, err.Error()); qErr != nil {
			log.Printf("CRITICAL: could not re-park grant of %d x %s for attendee %s: %v", g.Quantity, g.AmenityID, g.AttendeeID, qErr)
		}
	}
}

func (s *AllocationService) invalidateAmenityCache(ctx context.Context, eventID uuid.UUID) {
	cacheKey := fmt.Sprintf("amenities:%s", eventID.String())
	if err := s.redisClient.Del(ctx, cacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate amenity cache %s: %v", cacheKey, err)
	}
}

func (s *AllocationService) publishStock(ctx context.Context, eventID uuid.UUID, table string, resourceID uuid.UUID, delta int) {
	s.publish(ctx, domain.NewChange(eventID, table, domain.StockDelta{ResourceID: resourceID, Delta: delta}))
}

func (s *AllocationService) publish(ctx context.Context, change domain.Change) {
	if err := s.notifier.Publish(ctx, change); err != nil {
		log.Printf("Failed to publish %s change for event %s: %v", change.Table, change.EventID, err)
	}
}
