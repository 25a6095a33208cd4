package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reconciliation records a ledger release that could not be applied when a
// compensating action failed. A background worker retries these until the
// units are restored; rows are never dropped silently.
type Reconciliation struct {
	ID        uuid.UUID
	AmenityID uuid.UUID
	Quantity  int
	Reason    string
	CreatedAt time.Time
}

// GrantRetry records an amenity grant that failed after its order was
// already committed. The worker claims the row, re-attempts the grant
// and re-parks it when the failure looks transient.
type GrantRetry struct {
	ID         uuid.UUID
	AttendeeID uuid.UUID
	AmenityID  uuid.UUID
	Quantity   int
	Reason     string
	CreatedAt  time.Time
}
