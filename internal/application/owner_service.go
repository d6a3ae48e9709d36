package application

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/petclinic-micro/service-customers/internal/domain"
	"github.com/petclinic-micro/service-customers/internal/domain/customer"
	"github.com/petclinic-micro/service-customers/internal/events"
)

var telephonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// OwnerRequest is the request DTO for creating or updating an owner.
type OwnerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

// Validate checks the request fields and returns a field-name to message
// mapping, or nil when the request is valid.
func (r OwnerRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if r.FirstName == "" {
		fields["firstName"] = "must not be empty"
	}
	if r.LastName == "" {
		fields["lastName"] = "must not be empty"
	}
	if r.Address == "" {
		fields["address"] = "must not be empty"
	} else if len(r.Address) > 200 {
		fields["address"] = "must not exceed 200 characters"
	}
	if r.City == "" {
		fields["city"] = "must not be empty"
	}
	if !telephonePattern.MatchString(r.Telephone) {
		fields["telephone"] = "must be exactly 10 digits"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// OwnerDTO is the API response representation of an owner with its sorted
// pet projection.
type OwnerDTO struct {
	ID        int      `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Telephone string   `json:"telephone"`
	Pets      []PetDTO `json:"pets"`
}

// EventPublisher publishes customer domain events. Failures must be handled
// by the implementation's caller; services log and move on.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, data interface{}) error
}

// ExternalClient is the third-party service consulted during owner reads for
// observability only.
type ExternalClient interface {
	FetchExternal(ctx context.Context) (string, error)
}

// OwnerService implements use cases for owner management.
type OwnerService struct {
	repo     customer.OwnerRepository
	external ExternalClient
	producer EventPublisher
	logger   *zap.Logger
}

// NewOwnerService creates a new OwnerService. external and producer may be
// nil; both are optional collaborators.
func NewOwnerService(repo customer.OwnerRepository, external ExternalClient, producer EventPublisher, logger *zap.Logger) *OwnerService {
	return &OwnerService{
		repo:     repo,
		external: external,
		producer: producer,
		logger:   logger,
	}
}

// CreateOwner validates the request, persists a new owner and returns it
// with its assigned id.
func (s *OwnerService) CreateOwner(ctx context.Context, req OwnerRequest) (*OwnerDTO, error) {
	if fields := req.Validate(); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	owner := customer.NewOwner(req.FirstName, req.LastName, req.Address, req.City, req.Telephone)
	saved, err := s.repo.Save(ctx, owner)
	if err != nil {
		s.logger.Error("failed to save owner", zap.Error(err))
		return nil, fmt.Errorf("failed to save owner: %w", err)
	}

	s.logger.Info("owner created",
		zap.Int("owner_id", saved.ID()),
		zap.String("last_name", saved.LastName()),
	)
	s.publishOwnerEvent(ctx, events.OwnerCreated, saved)

	dto := toOwnerDTO(saved)
	return &dto, nil
}

// GetOwner returns a single owner by id with its sorted pet list. A side
// call to the external service is made for observability only; it never
// affects the returned result.
func (s *OwnerService) GetOwner(ctx context.Context, ownerID int) (*OwnerDTO, error) {
	owner, err := s.repo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.checkExternal()

	dto := toOwnerDTO(owner)
	return &dto, nil
}

// ListOwners returns every owner with its sorted pet list.
func (s *OwnerService) ListOwners(ctx context.Context) ([]OwnerDTO, error) {
	owners, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	dtos := make([]OwnerDTO, len(owners))
	for i, o := range owners {
		dtos[i] = toOwnerDTO(o)
	}
	return dtos, nil
}

// UpdateOwner copies the request fields onto the stored owner. The owner's
// id and pet set are never overwritten.
func (s *OwnerService) UpdateOwner(ctx context.Context, ownerID int, req OwnerRequest) (*OwnerDTO, error) {
	if fields := req.Validate(); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	owner, err := s.repo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	owner.Update(req.FirstName, req.LastName, req.City, req.Address, req.Telephone)

	saved, err := s.repo.Save(ctx, owner)
	if err != nil {
		s.logger.Error("failed to update owner", zap.Int("owner_id", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to update owner: %w", err)
	}

	s.logger.Info("owner updated", zap.Int("owner_id", saved.ID()))
	s.publishOwnerEvent(ctx, events.OwnerUpdated, saved)

	dto := toOwnerDTO(saved)
	return &dto, nil
}

// checkExternal fires the third-party observability call in the background.
// It runs on its own deadline so a slow or failing external service can
// never block or fail the read path.
func (s *OwnerService) checkExternal() {
	if s.external == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		result, err := s.external.FetchExternal(ctx)
		if err != nil {
			s.logger.Warn("external service call failed", zap.Error(err))
			return
		}
		s.logger.Info("external service call result", zap.String("result", result))
	}()
}

func (s *OwnerService) publishOwnerEvent(ctx context.Context, eventType string, o *customer.Owner) {
	if s.producer == nil {
		return
	}
	evt := events.OwnerEvent{
		OwnerID:    o.ID(),
		FirstName:  o.FirstName(),
		LastName:   o.LastName(),
		City:       o.City(),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, eventType, strconv.Itoa(o.ID()), evt); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func toOwnerDTO(o *customer.Owner) OwnerDTO {
	pets := o.Pets()
	petDTOs := make([]PetDTO, len(pets))
	for i, p := range pets {
		petDTOs[i] = toPetDTO(p)
	}
	return OwnerDTO{
		ID:        o.ID(),
		FirstName: o.FirstName(),
		LastName:  o.LastName(),
		Address:   o.Address(),
		City:      o.City(),
		Telephone: o.Telephone(),
		Pets:      petDTOs,
	}
}
