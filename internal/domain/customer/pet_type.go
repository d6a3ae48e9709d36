package customer

// PetType is immutable reference data classifying a pet. It is read-only
// from this service's perspective; rows come from seed migrations.
type PetType struct {
	id   int
	name string
}

// NewPetType creates a pet type reference.
func NewPetType(id int, name string) PetType {
	return PetType{id: id, name: name}
}

func (t PetType) ID() int      { return t.id }
func (t PetType) Name() string { return t.name }
