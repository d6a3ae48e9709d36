package application

import (
	"context"

	"github.com/petclinic-micro/service-customers/internal/domain"
	"github.com/petclinic-micro/service-customers/internal/domain/customer"
)

func ownerFromRequest(r OwnerRequest) *customer.Owner {
	return customer.NewOwner(r.FirstName, r.LastName, r.Address, r.City, r.Telephone)
}

// fakeOwnerRepo is an in-memory OwnerRepository that assigns ids the way
// the store would.
type fakeOwnerRepo struct {
	owners map[int]*customer.Owner
	nextID int
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: make(map[int]*customer.Owner), nextID: 1}
}

func (r *fakeOwnerRepo) FindByID(_ context.Context, id int) (*customer.Owner, error) {
	o, ok := r.owners[id]
	if !ok {
		return nil, domain.NewNotFoundError("Owner", id)
	}
	return o, nil
}

func (r *fakeOwnerRepo) FindAll(_ context.Context) ([]*customer.Owner, error) {
	out := make([]*customer.Owner, 0, len(r.owners))
	for id := 1; id < r.nextID; id++ {
		if o, ok := r.owners[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOwnerRepo) Save(_ context.Context, owner *customer.Owner) (*customer.Owner, error) {
	id := owner.ID()
	if id == 0 {
		id = r.nextID
		r.nextID++
	}
	pets := make([]*customer.Pet, 0, len(owner.Pets()))
	for _, p := range owner.Pets() {
		petID := p.ID()
		if petID == 0 {
			petID = r.nextID
			r.nextID++
		}
		pets = append(pets, customer.ReconstructPet(petID, p.Name(), p.BirthDate(), p.Type()))
	}
	saved := customer.ReconstructOwner(id, owner.FirstName(), owner.LastName(), owner.Address(), owner.City(), owner.Telephone(), pets)
	r.owners[id] = saved
	return saved, nil
}

// fakePetRepo is an in-memory PetRepository with seedable type rows.
type fakePetRepo struct {
	pets   map[int]*customer.Pet
	types  []customer.PetType
	nextID int
}

func newFakePetRepo(types ...customer.PetType) *fakePetRepo {
	return &fakePetRepo{pets: make(map[int]*customer.Pet), types: types, nextID: 1}
}

func (r *fakePetRepo) FindByID(_ context.Context, id int) (*customer.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, domain.NewNotFoundError("Pet", id)
	}
	return p, nil
}

func (r *fakePetRepo) FindPetTypes(_ context.Context) ([]customer.PetType, error) {
	return r.types, nil
}

func (r *fakePetRepo) FindPetTypeByID(_ context.Context, id int) (*customer.PetType, error) {
	for _, t := range r.types {
		if t.ID() == id {
			found := t
			return &found, nil
		}
	}
	return nil, domain.NewNotFoundError("PetType", id)
}

func (r *fakePetRepo) Save(_ context.Context, pet *customer.Pet) (*customer.Pet, error) {
	id := pet.ID()
	if id == 0 {
		id = r.nextID
		r.nextID++
	}
	saved := customer.ReconstructPet(id, pet.Name(), pet.BirthDate(), pet.Type())
	if owner := pet.Owner(); owner != nil {
		saved.SetOwnerForReconstruct(owner)
	}
	r.pets[id] = saved
	return saved, nil
}

// fakePublisher records published events.
type fakePublisher struct {
	published []publishedEvent
}

type publishedEvent struct {
	eventType string
	key       string
	data      interface{}
}

func (p *fakePublisher) Publish(_ context.Context, eventType, key string, data interface{}) error {
	p.published = append(p.published, publishedEvent{eventType: eventType, key: key, data: data})
	return nil
}

// fakeExternal stands in for the third-party observability service.
type fakeExternal struct {
	calls chan struct{}
	err   error
}

func (f *fakeExternal) FetchExternal(context.Context) (string, error) {
	if f.calls != nil {
		f.calls <- struct{}{}
	}
	return "external ok", f.err
}
