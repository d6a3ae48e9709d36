package repository

import (
	"time"

	"github.com/petclinic-micro/service-customers/internal/domain/customer"
)

// OwnerModel is the GORM model for the owners table.
type OwnerModel struct {
	ID        int        `gorm:"primaryKey;autoIncrement"`
	FirstName string     `gorm:"column:first_name;type:varchar(30);not null"`
	LastName  string     `gorm:"column:last_name;type:varchar(30);not null"`
	Address   string     `gorm:"type:varchar(255);not null"`
	City      string     `gorm:"type:varchar(80);not null"`
	Telephone string     `gorm:"type:varchar(20);not null"`
	Pets      []PetModel `gorm:"foreignKey:OwnerID"`
}

// TableName returns the table name for the GORM model.
func (OwnerModel) TableName() string { return "owners" }

// PetTypeModel is the GORM model for the types reference table.
type PetTypeModel struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(80);not null"`
}

// TableName returns the table name for the GORM model.
func (PetTypeModel) TableName() string { return "types" }

// PetModel is the GORM model for the pets table.
type PetModel struct {
	ID        int           `gorm:"primaryKey;autoIncrement"`
	Name      string        `gorm:"type:varchar(30);not null"`
	BirthDate time.Time     `gorm:"column:birth_date;type:date"`
	OwnerID   int           `gorm:"column:owner_id;not null;index"`
	TypeID    *int          `gorm:"column:type_id"`
	Type      *PetTypeModel `gorm:"foreignKey:TypeID"`
}

// TableName returns the table name for the GORM model.
func (PetModel) TableName() string { return "pets" }

// --- Conversions ---

func toPetTypeDomain(m *PetTypeModel) *customer.PetType {
	if m == nil {
		return nil
	}
	t := customer.NewPetType(m.ID, m.Name)
	return &t
}

func toPetDomain(m *PetModel) *customer.Pet {
	return customer.ReconstructPet(m.ID, m.Name, m.BirthDate, toPetTypeDomain(m.Type))
}

// toOwnerDomain rebuilds the full aggregate; back-references are
// re-established by ReconstructOwner.
func toOwnerDomain(m *OwnerModel) *customer.Owner {
	pets := make([]*customer.Pet, len(m.Pets))
	for i := range m.Pets {
		pets[i] = toPetDomain(&m.Pets[i])
	}
	return customer.ReconstructOwner(m.ID, m.FirstName, m.LastName, m.Address, m.City, m.Telephone, pets)
}

func toPetModel(p *customer.Pet) *PetModel {
	model := &PetModel{
		ID:        p.ID(),
		Name:      p.Name(),
		BirthDate: p.BirthDate(),
	}
	if owner := p.Owner(); owner != nil {
		model.OwnerID = owner.ID()
	}
	if t := p.Type(); t != nil {
		typeID := t.ID()
		model.TypeID = &typeID
	}
	return model
}
