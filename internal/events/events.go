package events

import "time"

// TopicCustomerEvents is the Kafka topic carrying customer domain events.
const TopicCustomerEvents = "customer.events"

// Event types published by this service.
const (
	OwnerCreated = "customer.owner.created"
	OwnerUpdated = "customer.owner.updated"
	PetCreated   = "customer.pet.created"
	PetUpdated   = "customer.pet.updated"
)

// OwnerEvent is the payload for owner lifecycle events.
type OwnerEvent struct {
	OwnerID    int       `json:"owner_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	City       string    `json:"city"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PetEvent is the payload for pet lifecycle events.
type PetEvent struct {
	PetID      int       `json:"pet_id"`
	OwnerID    int       `json:"owner_id"`
	Name       string    `json:"name"`
	PetType    string    `json:"pet_type,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
