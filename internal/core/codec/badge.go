package codec

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/radityo/guestgate/internal/core/domain"
)

// Badge is the decoded identity binding carried by a QR code.
type Badge struct {
	AttendeeID uuid.UUID
	EventID    uuid.UUID
	Code       string
}

type badgeClaims struct {
	AttendeeID string `json:"attendee_id"`
	EventID    string `json:"event_id"`
	Code       string `json:"code"`
	jwt.RegisteredClaims
}

// legacyPayload is the unsigned JSON object printed on older badges.
type legacyPayload struct {
	AttendeeID string `json:"attendeeId"`
	EventID    string `json:"eventId"`
	Code       string `json:"code"`
	Name       string `json:"name,omitempty"`
}

// BadgeCodec encodes attendee identity into an HMAC-signed token and
// decodes both signed tokens and the legacy plain-JSON payload. Event
// scoping is the caller's responsibility: Decode never checks which event
// the scanning station belongs to.
type BadgeCodec struct {
	secret []byte
}

func NewBadgeCodec(secret []byte) *BadgeCodec {
	return &BadgeCodec{secret: secret}
}

func (c *BadgeCodec) Encode(attendeeID, eventID uuid.UUID, code string) (string, error) {
	claims := badgeClaims{
		AttendeeID: attendeeID.String(),
		EventID:    eventID.String(),
		Code:       code,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *BadgeCodec) Decode(payload string) (*Badge, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, domain.ErrMalformedBadge
	}

	if strings.HasPrefix(payload, "{") {
		return decodeLegacy(payload)
	}

	claims := badgeClaims{}
	token, err := jwt.ParseWithClaims(payload, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrMalformedBadge
		}
		return c.secret, nil
	})

	if err != nil || token == nil || !token.Valid {
		return nil, domain.ErrMalformedBadge
	}

	return badgeFromFields(claims.AttendeeID, claims.EventID, claims.Code)
}

func decodeLegacy(payload string) (*Badge, error) {
	var p legacyPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, domain.ErrMalformedBadge
	}

	return badgeFromFields(p.AttendeeID, p.EventID, p.Code)
}

func badgeFromFields(attendeeID, eventID, code string) (*Badge, error) {
	if attendeeID == "" || eventID == "" {
		return nil, domain.ErrMalformedBadge
	}

	aid, err := uuid.Parse(attendeeID)
	if err != nil {
		return nil, domain.ErrMalformedBadge
	}

	eid, err := uuid.Parse(eventID)
	if err != nil {
		return nil, domain.ErrMalformedBadge
	}

	return &Badge{AttendeeID: aid, EventID: eid, Code: code}, nil
}
