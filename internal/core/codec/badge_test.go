package codec_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/radityo/guestgate/internal/core/codec"
	"github.com/radityo/guestgate/internal/core/domain"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))

	attendeeID := uuid.New()
	eventID := uuid.New()

	payload, err := badges.Encode(attendeeID, eventID, "ab12c9")
	assert.NoError(t, err)
	assert.NotEmpty(t, payload)

	badge, err := badges.Decode(payload)
	assert.NoError(t, err)
	assert.Equal(t, attendeeID, badge.AttendeeID)
	assert.Equal(t, eventID, badge.EventID)
	assert.Equal(t, "ab12c9", badge.Code)
}

func TestDecode_TamperedSignature(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))
	other := codec.NewBadgeCodec([]byte("different-secret"))

	payload, err := other.Encode(uuid.New(), uuid.New(), "ab12c9")
	assert.NoError(t, err)

	badge, err := badges.Decode(payload)
	assert.Nil(t, badge)
	assert.ErrorIs(t, err, domain.ErrMalformedBadge)
}

func TestDecode_LegacyJSONPayload(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))

	attendeeID := uuid.New()
	eventID := uuid.New()

	payload := fmt.Sprintf(`{"attendeeId":"%s","eventId":"%s","code":"ab12c9","name":"Guest"}`, attendeeID, eventID)

	badge, err := badges.Decode(payload)
	assert.NoError(t, err)
	assert.Equal(t, attendeeID, badge.AttendeeID)
	assert.Equal(t, eventID, badge.EventID)
	assert.Equal(t, "ab12c9", badge.Code)
}

func TestDecode_LegacyJSONMissingFields(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))

	cases := []string{
		`{}`,
		`{"attendeeId":"` + uuid.NewString() + `"}`,
		`{"eventId":"` + uuid.NewString() + `"}`,
		`{"attendeeId":"not-a-uuid","eventId":"` + uuid.NewString() + `"}`,
		`{broken`,
	}

	for _, payload := range cases {
		badge, err := badges.Decode(payload)
		assert.Nil(t, badge, "payload: %s", payload)
		assert.ErrorIs(t, err, domain.ErrMalformedBadge, "payload: %s", payload)
	}
}

func TestDecode_Garbage(t *testing.T) {
	badges := codec.NewBadgeCodec([]byte("test-secret"))

	for _, payload := range []string{"", "   ", "not-a-token", "a.b.c"} {
		badge, err := badges.Decode(payload)
		assert.Nil(t, badge)
		assert.ErrorIs(t, err, domain.ErrMalformedBadge)
	}
}
