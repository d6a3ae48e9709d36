package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/petclinic-micro/service-customers/internal/domain"
	"github.com/petclinic-micro/service-customers/internal/domain/customer"
)

// GormOwnerRepository implements customer.OwnerRepository using GORM.
type GormOwnerRepository struct {
	db *gorm.DB
}

func NewGormOwnerRepository(db *gorm.DB) *GormOwnerRepository {
	return &GormOwnerRepository{db: db}
}

func (r *GormOwnerRepository) FindByID(ctx context.Context, id int) (*customer.Owner, error) {
	var model OwnerModel
	err := r.db.WithContext(ctx).
		Preload("Pets.Type").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Owner", id)
		}
		return nil, err
	}
	return toOwnerDomain(&model), nil
}

func (r *GormOwnerRepository) FindAll(ctx context.Context) ([]*customer.Owner, error) {
	var models []OwnerModel
	err := r.db.WithContext(ctx).
		Preload("Pets.Type").
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	owners := make([]*customer.Owner, len(models))
	for i := range models {
		owners[i] = toOwnerDomain(&models[i])
	}
	return owners, nil
}

// Save persists the owner and, in the same transaction, any pets attached
// since the last save (the ones without an id). Existing pet rows are never
// touched by an owner save. The returned aggregate is reloaded so every
// assigned id is visible to the caller.
func (r *GormOwnerRepository) Save(ctx context.Context, owner *customer.Owner) (*customer.Owner, error) {
	ownerID := owner.ID()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ownerID == 0 {
			model := &OwnerModel{
				FirstName: owner.FirstName(),
				LastName:  owner.LastName(),
				Address:   owner.Address(),
				City:      owner.City(),
				Telephone: owner.Telephone(),
			}
			if err := tx.Create(model).Error; err != nil {
				return err
			}
			ownerID = model.ID
		} else {
			updates := map[string]interface{}{
				"first_name": owner.FirstName(),
				"last_name":  owner.LastName(),
				"address":    owner.Address(),
				"city":       owner.City(),
				"telephone":  owner.Telephone(),
			}
			if err := tx.Model(&OwnerModel{}).Where("id = ?", ownerID).Updates(updates).Error; err != nil {
				return err
			}
		}

		for _, pet := range owner.Pets() {
			if pet.ID() != 0 {
				continue
			}
			model := toPetModel(pet)
			model.OwnerID = ownerID
			if err := tx.Create(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, ownerID)
}
