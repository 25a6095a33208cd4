package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/radityo/guestgate/internal/core/domain"
	"github.com/radityo/guestgate/internal/core/ports"
)

type ConsumeResult struct {
	AssignmentID uuid.UUID
	AmenityName  string
	Remaining    int
}

// ConsumptionService performs the bounded decrement of an assignment's
// remaining units. Authorization is an explicit function of the operator
// id passed in; there is no ambient current-user state.
type ConsumptionService struct {
	assignments ports.AssignmentRepository
	operators   ports.OperatorRepository
	notifier    ports.ChangeNotifier
}

func NewConsumptionService(assignments ports.AssignmentRepository, operators ports.OperatorRepository, notifier ports.ChangeNotifier) *ConsumptionService {
	return &ConsumptionService{
		assignments: assignments,
		operators:   operators,
		notifier:    notifier,
	}
}

// AuthorizedAssignments returns the assignments the operator may decrement
// for one attendee: those whose amenity the operator owns, or all of them
// for an admin.
func (s *ConsumptionService) AuthorizedAssignments(ctx context.Context, operatorID, attendeeID uuid.UUID) ([]domain.AmenityAssignment, error) {
	operator, err := s.operators.GetByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	return s.assignments.ListAuthorized(ctx, attendeeID, operatorID, operator.IsAdmin())
}

// Consume decrements remaining by amount. The check and the decrement are
// one conditional update in the repository; two racing calls for the last
// units can never both succeed.
func (s *ConsumptionService) Consume(ctx context.Context, assignmentID, operatorID uuid.UUID, amount int) (*ConsumeResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	assignment, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	operator, err := s.operators.GetByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if !operator.IsAdmin() && !assignment.OwnedBy(operatorID) {
		return nil, domain.ErrUnauthorized
	}

	remaining, err := s.assignments.Consume(ctx, assignmentID, operatorID, amount)
	if err != nil {
		return nil, err
	}

	assignment.Remaining = remaining
	s.publish(ctx, assignment)

	return &ConsumeResult{
		AssignmentID: assignmentID,
		AmenityName:  assignment.AmenityName,
		Remaining:    remaining,
	}, nil
}

// AutoConsume is the scan-time path: it takes exactly one unit from the
// first authorized assignment that still has units. Losing a race on one
// assignment moves on to the next instead of failing the scan.
func (s *ConsumptionService) AutoConsume(ctx context.Context, operatorID, attendeeID uuid.UUID) (*ConsumeResult, error) {
	authorized, err := s.AuthorizedAssignments(ctx, operatorID, attendeeID)
	if err != nil {
		return nil, err
	}

	for i := range authorized {
		assignment := &authorized[i]
		if assignment.Remaining <= 0 {
			continue
		}

		remaining, err := s.assignments.Consume(ctx, assignment.ID, operatorID, 1)
		if errors.Is(err, domain.ErrExceedsAvailable) {
			continue
		}
		if err != nil {
			return nil, err
		}

		assignment.Remaining = remaining
		s.publish(ctx, assignment)

		return &ConsumeResult{
			AssignmentID: assignment.ID,
			AmenityName:  assignment.AmenityName,
			Remaining:    remaining,
		}, nil
	}

	return nil, domain.ErrNoUnitsLeft
}

func (s *ConsumptionService) publish(ctx context.Context, assignment *domain.AmenityAssignment) {
	change := domain.NewChange(assignment.EventID, domain.TableAssignments, assignment)
	if err := s.notifier.Publish(ctx, change); err != nil {
		log.Printf("Failed to publish consumption on %s: %v", assignment.ID, err)
	}
}
