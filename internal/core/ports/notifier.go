package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/radityo/guestgate/internal/core/domain"
)

// ChangeNotifier fans committed mutations out to dashboards and other
// stations. Delivery is at-least-once and ordered per resource; it is a
// refresh hint, not a replication stream.
type ChangeNotifier interface {
	Publish(ctx context.Context, change domain.Change) error
	Subscribe(ctx context.Context, eventID uuid.UUID, tables ...string) (<-chan domain.Change, error)
}
