package service

import (
	"context"
	"errors"
	"sync"

	"bazar-dor-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errStoreDown = errors.New("store unavailable")

type fakeProductRepo struct {
	mu       sync.Mutex
	products []model.Product

	findErr   error
	createErr error
	updateErr error
	deleteErr error

	findCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	// When set, the next call of that kind closes the started channel and
	// blocks until the gate is closed.
	findGate   chan struct{}
	finding    chan struct{}
	createGate chan struct{}
	creating   chan struct{}
	updateGate chan struct{}
	updating   chan struct{}
}

// pause blocks on a one-shot gate taken under r.mu.
func pause(gate, started chan struct{}) {
	if gate == nil {
		return
	}
	if started != nil {
		close(started)
	}
	<-gate
}

func newFakeProductRepo(products ...model.Product) *fakeProductRepo {
	r := &fakeProductRepo{}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products = append(r.products, p)
	}
	return r
}

// FindAll snapshots the store before pausing, so a gated call returns what
// the store held when the read began.
func (r *fakeProductRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	r.findCalls++
	gate, started := r.findGate, r.finding
	r.findGate, r.finding = nil, nil
	err := r.findErr
	out := make([]model.Product, len(r.products))
	for i := range r.products {
		out[i] = *r.products[i].Clone()
	}
	r.mu.Unlock()

	pause(gate, started)

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			return r.products[i].Clone(), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Create(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	r.createCalls++
	gate, started := r.createGate, r.creating
	r.createGate, r.creating = nil, nil
	r.mu.Unlock()

	pause(gate, started)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	product.ID = uuid.New()
	r.products = append([]model.Product{*product.Clone()}, r.products...)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	r.updateCalls++
	gate, started := r.updateGate, r.updating
	r.updateGate, r.updating = nil, nil
	r.mu.Unlock()

	pause(gate, started)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product.Clone()
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCalls++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) CreateMany(ctx context.Context, products []model.Product) error {
	for i := range products {
		if err := r.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	c := *user
	r.users[user.ID] = &c
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID uuid.UUID, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[userID].Password = hashedPassword
	return nil
}

func (r *fakeUserRepo) UpdateSession(ctx context.Context, userID uuid.UUID, tokenVersion string) error {
	return r.UpdateTokenVersion(ctx, userID, tokenVersion)
}

func (r *fakeUserRepo) UpdateTokenVersion(ctx context.Context, userID uuid.UUID, version string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[userID].TokenVersion = version
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.CatalogEvent
}

func (p *recordingPublisher) Publish(event model.CatalogEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) actions() []model.CatalogAction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.CatalogAction, len(p.events))
	for i, e := range p.events {
		out[i] = e.Action
	}
	return out
}
