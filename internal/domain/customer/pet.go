package customer

import "time"

// Pet belongs to exactly one Owner. Instances start detached and empty; they
// become part of an aggregate via Owner.AddPet and are filled in afterwards.
type Pet struct {
	id        int
	name      string
	birthDate time.Time
	owner     *Owner
	petType   *PetType
}

// NewPet creates an empty, unattached pet.
func NewPet() *Pet {
	return &Pet{}
}

// ReconstructPet rebuilds a Pet from persistence data. The owner
// back-reference is established by ReconstructOwner or SetOwnerForReconstruct.
func ReconstructPet(id int, name string, birthDate time.Time, petType *PetType) *Pet {
	return &Pet{
		id:        id,
		name:      name,
		birthDate: birthDate,
		petType:   petType,
	}
}

// --- Getters ---

func (p *Pet) ID() int              { return p.id }
func (p *Pet) Name() string         { return p.name }
func (p *Pet) BirthDate() time.Time { return p.birthDate }
func (p *Pet) Owner() *Owner        { return p.owner }
func (p *Pet) Type() *PetType       { return p.petType }

// --- Behavior ---

// SetName renames the pet.
func (p *Pet) SetName(name string) { p.name = name }

// SetBirthDate sets the pet's birth date.
func (p *Pet) SetBirthDate(d time.Time) { p.birthDate = d }

// SetType assigns the pet's type reference.
func (p *Pet) SetType(t *PetType) { p.petType = t }

// SetOwnerForReconstruct re-establishes the back-reference when a pet is
// loaded on its own, outside a full owner aggregate load.
func (p *Pet) SetOwnerForReconstruct(o *Owner) { p.owner = o }
