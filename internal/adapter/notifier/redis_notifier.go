package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/radityo/guestgate/internal/core/domain"
)

// RedisNotifier fans changes out over one pub/sub channel per (event,
// table). Redis preserves publish order per channel, which gives the
// per-resource ordering guarantee; across tables nothing is ordered.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func channelName(eventID uuid.UUID, table string) string {
	return fmt.Sprintf("changes:%s:%s", eventID.String(), table)
}

func (n *RedisNotifier) Publish(ctx context.Context, change domain.Change) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}

	return n.client.Publish(ctx, channelName(change.EventID, change.Table), payload).Err()
}

// Subscribe delivers changes for the given tables until ctx is cancelled.
// Undecodable messages are dropped with a log line; a subscriber that
// falls behind misses hints, not truth, since it re-reads the store.
func (n *RedisNotifier) Subscribe(ctx context.Context, eventID uuid.UUID, tables ...string) (<-chan domain.Change, error) {
	if len(tables) == 0 {
		tables = []string{domain.TableAmenities, domain.TableTickets, domain.TableAssignments, domain.TableAttendees}
	}

	channels := make([]string, 0, len(tables))
	for _, table := range tables {
		channels = append(channels, channelName(eventID, table))
	}

	pubsub := n.client.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan domain.Change, 64)

	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var change domain.Change
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					log.Printf("Dropping undecodable change on %s: %v", msg.Channel, err)
					continue
				}

				select {
				case out <- change:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
