package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/petclinic-micro/service-customers/internal/domain"
	"github.com/petclinic-micro/service-customers/internal/domain/customer"
)

// GormPetRepository implements customer.PetRepository using GORM.
type GormPetRepository struct {
	db *gorm.DB
}

func NewGormPetRepository(db *gorm.DB) *GormPetRepository {
	return &GormPetRepository{db: db}
}

// FindByID loads the pet through its owning aggregate so the returned pet's
// back-reference and the owner's membership always agree.
func (r *GormPetRepository) FindByID(ctx context.Context, id int) (*customer.Pet, error) {
	var model PetModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Pet", id)
		}
		return nil, err
	}

	var ownerModel OwnerModel
	err = r.db.WithContext(ctx).
		Preload("Pets.Type").
		First(&ownerModel, "id = ?", model.OwnerID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load owner %d of pet %d: %w", model.OwnerID, id, err)
	}

	owner := toOwnerDomain(&ownerModel)
	for _, pet := range owner.Pets() {
		if pet.ID() == id {
			return pet, nil
		}
	}
	return nil, fmt.Errorf("pet %d missing from owner %d aggregate", id, model.OwnerID)
}

func (r *GormPetRepository) FindPetTypes(ctx context.Context) ([]customer.PetType, error) {
	var models []PetTypeModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	types := make([]customer.PetType, len(models))
	for i, m := range models {
		types[i] = customer.NewPetType(m.ID, m.Name)
	}
	return types, nil
}

func (r *GormPetRepository) FindPetTypeByID(ctx context.Context, id int) (*customer.PetType, error) {
	var model PetTypeModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("PetType", id)
		}
		return nil, err
	}
	return toPetTypeDomain(&model), nil
}

func (r *GormPetRepository) Save(ctx context.Context, pet *customer.Pet) (*customer.Pet, error) {
	if pet.Owner() == nil || pet.Owner().ID() == 0 {
		return nil, fmt.Errorf("pet must be attached to a saved owner")
	}

	model := toPetModel(pet)
	if pet.ID() == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return nil, err
		}
	} else {
		updates := map[string]interface{}{
			"name":       model.Name,
			"birth_date": model.BirthDate,
			"type_id":    model.TypeID,
		}
		err := r.db.WithContext(ctx).
			Model(&PetModel{}).
			Where("id = ?", model.ID).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, model.ID)
}
