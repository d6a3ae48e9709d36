package customer

import "sort"

// Owner is the aggregate root for a customer record. It exclusively owns its
// pets: a pet is only ever attached through AddPet, which keeps the pet's
// back-reference and the owner's membership in step.
type Owner struct {
	id        int
	firstName string
	lastName  string
	address   string
	city      string
	telephone string
	// pets holds the internal set in insertion order. The order carries no
	// meaning; callers only ever see the sorted projection from Pets.
	pets []*Pet
}

// NewOwner creates an owner with no identity yet. The store assigns the id
// on first save.
func NewOwner(firstName, lastName, address, city, telephone string) *Owner {
	return &Owner{
		firstName: firstName,
		lastName:  lastName,
		address:   address,
		city:      city,
		telephone: telephone,
	}
}

// ReconstructOwner rebuilds an Owner from persistence data (no validation).
// Back-references on the given pets are re-established.
func ReconstructOwner(id int, firstName, lastName, address, city, telephone string, pets []*Pet) *Owner {
	o := &Owner{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		address:   address,
		city:      city,
		telephone: telephone,
	}
	for _, p := range pets {
		o.pets = append(o.pets, p)
		p.owner = o
	}
	return o
}

// --- Getters ---

func (o *Owner) ID() int           { return o.id }
func (o *Owner) FirstName() string { return o.firstName }
func (o *Owner) LastName() string  { return o.lastName }
func (o *Owner) Address() string   { return o.address }
func (o *Owner) City() string      { return o.city }
func (o *Owner) Telephone() string { return o.telephone }

// --- Behavior ---

// AddPet inserts the pet into the owner's set and sets the pet's owner in the
// same operation. This is the only attachment path; reassigning a pet to a
// different owner is not supported.
func (o *Owner) AddPet(p *Pet) {
	o.pets = append(o.pets, p)
	p.owner = o
}

// Pets returns a fresh slice of the owner's pets sorted by name ascending
// (byte-wise). The sort is stable, so pets with equal names keep their
// insertion order. Mutating the returned slice does not affect membership.
func (o *Owner) Pets() []*Pet {
	sorted := make([]*Pet, len(o.pets))
	copy(sorted, o.pets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].name < sorted[j].name
	})
	return sorted
}

// Update copies the mutable owner fields. The id and the pet set are never
// touched by an update.
func (o *Owner) Update(firstName, lastName, city, address, telephone string) {
	o.firstName = firstName
	o.lastName = lastName
	o.city = city
	o.address = address
	o.telephone = telephone
}
