package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/radityo/guestgate/internal/core/codec"
	"github.com/radityo/guestgate/internal/core/domain"
	"github.com/radityo/guestgate/internal/core/ports/mocks"
	"github.com/radityo/guestgate/internal/core/services"
)

func TestCheckInScan_Success(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))
	mockAttendees := mocks.NewAttendeeRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewCheckInService(badges, mockAttendees, mockNotifier)

	ctx := context.Background()
	eventID := uuid.New()
	attendeeID := uuid.New()

	payload, err := badges.Encode(attendeeID, eventID, "ab12c9")
	assert.NoError(t, err)

	attendee := &domain.Attendee{ID: attendeeID, EventID: eventID, Code: "ab12c9", Name: "Ana"}

	mockAttendees.On("GetByID", ctx, attendeeID).Return(attendee, nil)
	mockAttendees.On("CheckIn", ctx, attendeeID, mock.AnythingOfType("time.Time")).Return(true, nil)
	mockNotifier.On("Publish", ctx, mock.AnythingOfType("domain.Change")).Return(nil)

	result, err := service.CheckInScan(ctx, eventID, payload)

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.False(t, result.AlreadyCheckedIn)
		assert.True(t, result.Attendee.CheckedIn)
		assert.NotNil(t, result.Attendee.CheckedInAt)
	}
}

func TestCheckInScan_WrongEvent(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))
	mockAttendees := mocks.NewAttendeeRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewCheckInService(badges, mockAttendees, mockNotifier)

	otherEvent := uuid.New()
	stationEvent := uuid.New()

	payload, err := badges.Encode(uuid.New(), otherEvent, "ab12c9")
	assert.NoError(t, err)

	result, err := service.CheckInScan(context.Background(), stationEvent, payload)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrWrongEvent)
	mockAttendees.AssertNotCalled(t, "CheckIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckInScan_MalformedPayload(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))
	mockAttendees := mocks.NewAttendeeRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewCheckInService(badges, mockAttendees, mockNotifier)

	result, err := service.CheckInScan(context.Background(), uuid.New(), "not-a-badge")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrMalformedBadge)
}

func TestCheckInScan_SecondScanIsIdempotent(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))
	mockAttendees := mocks.NewAttendeeRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewCheckInService(badges, mockAttendees, mockNotifier)

	ctx := context.Background()
	eventID := uuid.New()
	attendeeID := uuid.New()

	payload, err := badges.Encode(attendeeID, eventID, "ab12c9")
	assert.NoError(t, err)

	checkedInAt := time.Now().UTC().Add(-1 * time.Minute)
	attendee := &domain.Attendee{
		ID:          attendeeID,
		EventID:     eventID,
		Code:        "ab12c9",
		CheckedIn:   true,
		CheckedInAt: &checkedInAt,
	}

	mockAttendees.On("GetByID", ctx, attendeeID).Return(attendee, nil)
	mockAttendees.On("CheckIn", ctx, attendeeID, mock.AnythingOfType("time.Time")).Return(false, nil)

	result, err := service.CheckInScan(ctx, eventID, payload)

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.True(t, result.AlreadyCheckedIn)
		assert.True(t, result.Attendee.CheckedIn)
		// The original timestamp survives; the losing scan records nothing.
		assert.Equal(t, &checkedInAt, result.Attendee.CheckedInAt)
	}

	mockNotifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCheckInScan_CodeMismatch(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))
	mockAttendees := mocks.NewAttendeeRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewCheckInService(badges, mockAttendees, mockNotifier)

	ctx := context.Background()
	eventID := uuid.New()
	attendeeID := uuid.New()

	payload, err := badges.Encode(attendeeID, eventID, "zz99zz")
	assert.NoError(t, err)

	mockAttendees.On("GetByID", ctx, attendeeID).Return(&domain.Attendee{ID: attendeeID, EventID: eventID, Code: "ab12c9"}, nil)

	result, err := service.CheckInScan(ctx, eventID, payload)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrMalformedBadge)
}

func TestCheckInManual_Success(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))
	mockAttendees := mocks.NewAttendeeRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewCheckInService(badges, mockAttendees, mockNotifier)

	ctx := context.Background()
	eventID := uuid.New()
	attendeeID := uuid.New()

	attendee := &domain.Attendee{ID: attendeeID, EventID: eventID, Code: "ab12c9"}

	mockAttendees.On("GetByCode", ctx, eventID, "ab12c9").Return(attendee, nil)
	mockAttendees.On("CheckIn", ctx, attendeeID, mock.AnythingOfType("time.Time")).Return(true, nil)
	mockNotifier.On("Publish", ctx, mock.AnythingOfType("domain.Change")).Return(nil)

	result, err := service.CheckInManual(ctx, eventID, "ab12c9")

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.False(t, result.AlreadyCheckedIn)
	}
}

func TestCheckInManual_UnknownCode(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))
	mockAttendees := mocks.NewAttendeeRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewCheckInService(badges, mockAttendees, mockNotifier)

	ctx := context.Background()
	eventID := uuid.New()

	mockAttendees.On("GetByCode", ctx, eventID, "nope").Return(nil, domain.ErrAttendeeNotFound)

	result, err := service.CheckInManual(ctx, eventID, "nope")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrAttendeeNotFound)
}

func TestCheckInScan_LegacyPayloadStillScopesEvent(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))
	mockAttendees := mocks.NewAttendeeRepository(t)
	mockNotifier := mocks.NewChangeNotifier(t)

	service := services.NewCheckInService(badges, mockAttendees, mockNotifier)

	stationEvent := uuid.New()
	payload := fmt.Sprintf(`{"attendeeId":"%s","eventId":"%s","code":"ab12c9"}`, uuid.New(), uuid.New())

	result, err := service.CheckInScan(context.Background(), stationEvent, payload)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrWrongEvent)
}
