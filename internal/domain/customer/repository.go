package customer

import "context"

// OwnerRepository defines the persistence contract for the owner aggregate.
type OwnerRepository interface {
	// FindByID retrieves an owner with its pets and their types loaded.
	FindByID(ctx context.Context, id int) (*Owner, error)

	// FindAll retrieves every owner with pets loaded.
	FindAll(ctx context.Context) ([]*Owner, error)

	// Save persists the owner. An owner without an id gets one assigned;
	// pets attached since the last save are persisted in the same
	// transaction. The returned aggregate carries all assigned ids.
	Save(ctx context.Context, owner *Owner) (*Owner, error)
}

// PetRepository defines persistence operations for pets and the pet type
// reference data.
type PetRepository interface {
	// FindByID retrieves a pet with its owner and type loaded.
	FindByID(ctx context.Context, id int) (*Pet, error)

	// FindPetTypes lists all pet type reference rows in storage order.
	FindPetTypes(ctx context.Context) ([]PetType, error)

	// FindPetTypeByID retrieves a single pet type.
	FindPetTypeByID(ctx context.Context, id int) (*PetType, error)

	// Save persists the pet, assigning an id on first save.
	Save(ctx context.Context, pet *Pet) (*Pet, error)
}
