package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/radityo/guestgate/internal/core/domain"
	"github.com/radityo/guestgate/internal/core/ports/mocks"
	"github.com/radityo/guestgate/internal/core/services"
)

func staffOperator(id uuid.UUID) *domain.Operator {
	return &domain.Operator{ID: id, Role: domain.RoleStaff}
}

func TestConsume_Success(t *testing.T) {
	mockAssignments := mocks.NewAssignmentRepository(t)
	mockOperators := mocks.NewOperatorRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewConsumptionService(mockAssignments, mockOperators, mockNotifier)

	ctx := context.Background()
	operatorID := uuid.New()
	assignmentID := uuid.New()

	assignment := &domain.AmenityAssignment{
		ID:             assignmentID,
		EventID:        uuid.New(),
		AmenityName:    "Lunch",
		AmenityOwnerID: &operatorID,
		Reserved:       5,
		Remaining:      5,
	}

	mockAssignments.On("GetByID", ctx, assignmentID).Return(assignment, nil)
	mockOperators.On("GetByID", ctx, operatorID).Return(staffOperator(operatorID), nil)
	mockAssignments.On("Consume", ctx, assignmentID, operatorID, 2).Return(3, nil)
	mockNotifier.On("Publish", ctx, mock.AnythingOfType("domain.Change")).Return(nil)

	result, err := service.Consume(ctx, assignmentID, operatorID, 2)

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, 3, result.Remaining)
		assert.Equal(t, "Lunch", result.AmenityName)
	}
}

func TestConsume_UnauthorizedOperator(t *testing.T) {
	mockAssignments := mocks.NewAssignmentRepository(t)
	mockOperators := mocks.NewOperatorRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewConsumptionService(mockAssignments, mockOperators, mockNotifier)

	ctx := context.Background()
	operatorID := uuid.New()
	ownerID := uuid.New()
	assignmentID := uuid.New()

	assignment := &domain.AmenityAssignment{
		ID:             assignmentID,
		AmenityOwnerID: &ownerID,
		Remaining:      5,
	}

	mockAssignments.On("GetByID", ctx, assignmentID).Return(assignment, nil)
	mockOperators.On("GetByID", ctx, operatorID).Return(staffOperator(operatorID), nil)

	result, err := service.Consume(ctx, assignmentID, operatorID, 1)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	mockAssignments.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConsume_AdminMayTouchAnyAssignment(t *testing.T) {
	mockAssignments := mocks.NewAssignmentRepository(t)
	mockOperators := mocks.NewOperatorRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewConsumptionService(mockAssignments, mockOperators, mockNotifier)

	ctx := context.Background()
	adminID := uuid.New()
	ownerID := uuid.New()
	assignmentID := uuid.New()

	assignment := &domain.AmenityAssignment{
		ID:             assignmentID,
		EventID:        uuid.New(),
		AmenityOwnerID: &ownerID,
		Remaining:      2,
	}

	mockAssignments.On("GetByID", ctx, assignmentID).Return(assignment, nil)
	mockOperators.On("GetByID", ctx, adminID).Return(&domain.Operator{ID: adminID, Role: domain.RoleAdmin}, nil)
	mockAssignments.On("Consume", ctx, assignmentID, adminID, 1).Return(1, nil)
	mockNotifier.On("Publish", ctx, mock.AnythingOfType("domain.Change")).Return(nil)

	result, err := service.Consume(ctx, assignmentID, adminID, 1)

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, 1, result.Remaining)
	}
}

func TestConsume_ExceedsAvailable(t *testing.T) {
	mockAssignments := mocks.NewAssignmentRepository(t)
	mockOperators := mocks.NewOperatorRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewConsumptionService(mockAssignments, mockOperators, mockNotifier)

	ctx := context.Background()
	operatorID := uuid.New()
	assignmentID := uuid.New()

	assignment := &domain.AmenityAssignment{
		ID:             assignmentID,
		AmenityOwnerID: &operatorID,
		Remaining:      1,
	}

	mockAssignments.On("GetByID", ctx, assignmentID).Return(assignment, nil)
	mockOperators.On("GetByID", ctx, operatorID).Return(staffOperator(operatorID), nil)
	mockAssignments.On("Consume", ctx, assignmentID, operatorID, 2).Return(0, domain.ErrExceedsAvailable)

	result, err := service.Consume(ctx, assignmentID, operatorID, 2)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrExceedsAvailable)
}

func TestConsume_InvalidAmount(t *testing.T) {
	mockAssignments := mocks.NewAssignmentRepository(t)
	mockOperators := mocks.NewOperatorRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewConsumptionService(mockAssignments, mockOperators, mockNotifier)

	result, err := service.Consume(context.Background(), uuid.New(), uuid.New(), 0)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestAutoConsume_TakesOneFromFirstWithUnits(t *testing.T) {
	mockAssignments := mocks.NewAssignmentRepository(t)
	mockOperators := mocks.NewOperatorRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewConsumptionService(mockAssignments, mockOperators, mockNotifier)

	ctx := context.Background()
	operatorID := uuid.New()
	attendeeID := uuid.New()

	depleted := domain.AmenityAssignment{ID: uuid.New(), AmenityOwnerID: &operatorID, Remaining: 0, AmenityName: "Drink"}
	available := domain.AmenityAssignment{ID: uuid.New(), EventID: uuid.New(), AmenityOwnerID: &operatorID, Remaining: 1, AmenityName: "Lunch"}

	mockOperators.On("GetByID", ctx, operatorID).Return(staffOperator(operatorID), nil)
	mockAssignments.On("ListAuthorized", ctx, attendeeID, operatorID, false).Return([]domain.AmenityAssignment{depleted, available}, nil)
	mockAssignments.On("Consume", ctx, available.ID, operatorID, 1).Return(0, nil)
	mockNotifier.On("Publish", ctx, mock.AnythingOfType("domain.Change")).Return(nil)

	result, err := service.AutoConsume(ctx, operatorID, attendeeID)

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, available.ID, result.AssignmentID)
		assert.Equal(t, "Lunch", result.AmenityName)
		assert.Equal(t, 0, result.Remaining)
	}
}

func TestAutoConsume_NoUnitsLeft(t *testing.T) {
	mockAssignments := mocks.NewAssignmentRepository(t)
	mockOperators := mocks.NewOperatorRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewConsumptionService(mockAssignments, mockOperators, mockNotifier)

	ctx := context.Background()
	operatorID := uuid.New()
	attendeeID := uuid.New()

	depleted := domain.AmenityAssignment{ID: uuid.New(), AmenityOwnerID: &operatorID, Remaining: 0}

	mockOperators.On("GetByID", ctx, operatorID).Return(staffOperator(operatorID), nil)
	mockAssignments.On("ListAuthorized", ctx, attendeeID, operatorID, false).Return([]domain.AmenityAssignment{depleted}, nil)

	result, err := service.AutoConsume(ctx, operatorID, attendeeID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNoUnitsLeft)
}

func TestAutoConsume_MovesOnAfterLosingRace(t *testing.T) {
	mockAssignments := mocks.NewAssignmentRepository(t)
	mockOperators := mocks.NewOperatorRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewConsumptionService(mockAssignments, mockOperators, mockNotifier)

	ctx := context.Background()
	operatorID := uuid.New()
	attendeeID := uuid.New()

	// Both look available, but another station empties the first one
	// between the list and the decrement.
	contested := domain.AmenityAssignment{ID: uuid.New(), AmenityOwnerID: &operatorID, Remaining: 1}
	fallback := domain.AmenityAssignment{ID: uuid.New(), EventID: uuid.New(), AmenityOwnerID: &operatorID, Remaining: 2, AmenityName: "Drink"}

	mockOperators.On("GetByID", ctx, operatorID).Return(staffOperator(operatorID), nil)
	mockAssignments.On("ListAuthorized", ctx, attendeeID, operatorID, false).Return([]domain.AmenityAssignment{contested, fallback}, nil)
	mockAssignments.On("Consume", ctx, contested.ID, operatorID, 1).Return(0, domain.ErrExceedsAvailable)
	mockAssignments.On("Consume", ctx, fallback.ID, operatorID, 1).Return(1, nil)
	mockNotifier.On("Publish", ctx, mock.AnythingOfType("domain.Change")).Return(nil)

	result, err := service.AutoConsume(ctx, operatorID, attendeeID)

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, fallback.ID, result.AssignmentID)
		assert.Equal(t, 1, result.Remaining)
	}
}

func TestAuthorizedAssignments_AdminSeesEverything(t *testing.T) {
	mockAssignments := mocks.NewAssignmentRepository(t)
	mockOperators := mocks.NewOperatorRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewConsumptionService(mockAssignments, mockOperators, mockNotifier)

	ctx := context.Background()
	adminID := uuid.New()
	attendeeID := uuid.New()

	all := []domain.AmenityAssignment{{ID: uuid.New()}, {ID: uuid.New()}}

	mockOperators.On("GetByID", ctx, adminID).Return(&domain.Operator{ID: adminID, Role: domain.RoleAdmin}, nil)
	mockAssignments.On("ListAuthorized", ctx, attendeeID, adminID, true).Return(all, nil)

	assignments, err := service.AuthorizedAssignments(ctx, adminID, attendeeID)

	assert.NoError(t, err)
	assert.Len(t, assignments, 2)
}
