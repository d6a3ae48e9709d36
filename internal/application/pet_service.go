package application

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/petclinic-micro/service-customers/internal/domain"
	"github.com/petclinic-micro/service-customers/internal/domain/customer"
	"github.com/petclinic-micro/service-customers/internal/events"
)

// PetRequest is the request DTO for creating or updating a pet. On update
// the target pet is identified by the body-carried id, not the route.
type PetRequest struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	BirthDate Date   `json:"birthDate"`
	TypeID    int    `json:"typeId"`
}

// Validate checks the request fields and returns a field-name to message
// mapping, or nil when the request is valid.
func (r PetRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if r.Name == "" {
		fields["name"] = "must not be empty"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// PetTypeDTO is the API representation of a pet type reference row.
type PetTypeDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PetDTO is the API response representation of a pet.
type PetDTO struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	BirthDate Date        `json:"birthDate"`
	Type      *PetTypeDTO `json:"type,omitempty"`
	OwnerID   int         `json:"ownerId"`
}

// PetDetails is the read view for a single pet lookup. It carries the
// owner's display name instead of the full owner to avoid re-serializing
// the aggregate.
type PetDetails struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Owner     string      `json:"owner"`
	BirthDate Date        `json:"birthDate"`
	Type      *PetTypeDTO `json:"type,omitempty"`
}

// PetService implements use cases for pet management within the owner
// aggregate.
type PetService struct {
	petRepo   customer.PetRepository
	ownerRepo customer.OwnerRepository
	producer  EventPublisher
	logger    *zap.Logger
}

// NewPetService creates a new PetService. producer may be nil.
func NewPetService(petRepo customer.PetRepository, ownerRepo customer.OwnerRepository, producer EventPublisher, logger *zap.Logger) *PetService {
	return &PetService{
		petRepo:   petRepo,
		ownerRepo: ownerRepo,
		producer:  producer,
		logger:    logger,
	}
}

// GetPetTypes lists all pet type reference rows.
func (s *PetService) GetPetTypes(ctx context.Context) ([]PetTypeDTO, error) {
	types, err := s.petRepo.FindPetTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pet types: %w", err)
	}
	dtos := make([]PetTypeDTO, len(types))
	for i, t := range types {
		dtos[i] = PetTypeDTO{ID: t.ID(), Name: t.Name()}
	}
	return dtos, nil
}

// CreatePet attaches a new pet to the given owner and persists it.
func (s *PetService) CreatePet(ctx context.Context, ownerID int, req PetRequest) (*PetDTO, error) {
	if fields := req.Validate(); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	owner, err := s.ownerRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pet := customer.NewPet()
	owner.AddPet(pet)

	if err := s.applyRequest(ctx, pet, req); err != nil {
		return nil, err
	}

	saved, err := s.petRepo.Save(ctx, pet)
	if err != nil {
		s.logger.Error("failed to save pet", zap.Int("owner_id", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to save pet: %w", err)
	}

	s.logger.Info("pet created",
		zap.Int("pet_id", saved.ID()),
		zap.Int("owner_id", ownerID),
	)
	s.publishPetEvent(ctx, events.PetCreated, saved)

	dto := toPetDTO(saved)
	return &dto, nil
}

// UpdatePet updates the pet identified by the request body's id.
func (s *PetService) UpdatePet(ctx context.Context, req PetRequest) (*PetDTO, error) {
	if fields := req.Validate(); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	pet, err := s.petRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.applyRequest(ctx, pet, req); err != nil {
		return nil, err
	}

	saved, err := s.petRepo.Save(ctx, pet)
	if err != nil {
		s.logger.Error("failed to update pet", zap.Int("pet_id", req.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	s.logger.Info("pet updated", zap.Int("pet_id", saved.ID()))
	s.publishPetEvent(ctx, events.PetUpdated, saved)

	dto := toPetDTO(saved)
	return &dto, nil
}

// GetPet returns the detail view for a single pet.
func (s *PetService) GetPet(ctx context.Context, petID int) (*PetDetails, error) {
	pet, err := s.petRepo.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	details := PetDetails{
		ID:        pet.ID(),
		Name:      pet.Name(),
		BirthDate: NewDate(pet.BirthDate()),
		Type:      toPetTypeDTO(pet.Type()),
	}
	if owner := pet.Owner(); owner != nil {
		details.Owner = owner.FirstName() + " " + owner.LastName()
	}
	return &details, nil
}

// applyRequest copies the request fields onto the pet. An unresolved type
// id leaves the type unset without failing the request.
func (s *PetService) applyRequest(ctx context.Context, pet *customer.Pet, req PetRequest) error {
	pet.SetName(req.Name)
	pet.SetBirthDate(req.BirthDate.Time)

	if req.TypeID == 0 {
		return nil
	}
	petType, err := s.petRepo.FindPetTypeByID(ctx, req.TypeID)
	if err != nil {
		if domain.IsNotFound(err) {
			s.logger.Debug("ignoring unknown pet type", zap.Int("type_id", req.TypeID))
			return nil
		}
		return fmt.Errorf("failed to resolve pet type: %w", err)
	}
	pet.SetType(petType)
	return nil
}

func (s *PetService) publishPetEvent(ctx context.Context, eventType string, p *customer.Pet) {
	if s.producer == nil {
		return
	}
	evt := events.PetEvent{
		PetID:      p.ID(),
		Name:       p.Name(),
		OccurredAt: time.Now().UTC(),
	}
	if owner := p.Owner(); owner != nil {
		evt.OwnerID = owner.ID()
	}
	if t := p.Type(); t != nil {
		evt.PetType = t.Name()
	}
	if err := s.producer.Publish(ctx, eventType, strconv.Itoa(p.ID()), evt); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func toPetDTO(p *customer.Pet) PetDTO {
	dto := PetDTO{
		ID:        p.ID(),
		Name:      p.Name(),
		BirthDate: NewDate(p.BirthDate()),
		Type:      toPetTypeDTO(p.Type()),
	}
	if owner := p.Owner(); owner != nil {
		dto.OwnerID = owner.ID()
	}
	return dto
}

func toPetTypeDTO(t *customer.PetType) *PetTypeDTO {
	if t == nil {
		return nil
	}
	return &PetTypeDTO{ID: t.ID(), Name: t.Name()}
}
