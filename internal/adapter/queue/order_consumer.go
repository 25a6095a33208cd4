package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"github.com/radityo/guestgate/internal/core/services"
)

const completedOrdersQueue = "orders.completed"

// OrderConsumer drains settled orders from the queue and hands them to
// the allocation service. Messages are acked only after the order and its
// grants are applied; transient failures are requeued.
type OrderConsumer struct {
	channel    *amqp.Channel
	allocation *services.AllocationService
}

func NewOrderConsumer(conn *amqp.Connection, allocation *services.AllocationService) (*OrderConsumer, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		completedOrdersQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &OrderConsumer{channel: channel, allocation: allocation}, nil
}

func (c *OrderConsumer) Run(ctx context.Context) error {
	deliveries, err := c.channel.Consume(
		completedOrdersQueue,
		"",    // consumer tag
		false, // auto-ack (manual acknowledgment)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	log.Printf("Order consumer started on queue %s", completedOrdersQueue)

	for {
		select {
		case <-ctx.Done():
			log.Println("Order consumer stopped.")
			return c.channel.Close()
		case delivery, ok := <-deliveries:
			if !ok {
				log.Println("Order queue channel closed.")
				return nil
			}

			c.handle(ctx, delivery)
		}
	}
}

func (c *OrderConsumer) handle(ctx context.Context, delivery amqp.Delivery) {
	var input services.OrderCompletedInput
	if err := json.Unmarshal(delivery.Body, &input); err != nil {
		log.Printf("Rejecting undecodable order message: %v", err)
		delivery.Nack(false, false)
		return
	}

	order, err := c.allocation.CompleteOrder(ctx, input)
	if err != nil {
		log.Printf("Failed to apply order %s: %v. Requeueing.", input.OrderID, err)
		delivery.Nack(false, true)
		return
	}

	log.Printf("Order %s applied: %d attendees, total %.2f", order.ID, order.Quantity, order.Total)
	delivery.Ack(false)
}
