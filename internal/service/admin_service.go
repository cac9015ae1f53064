package service

import (
	"context"
	"sync"
	"time"

	"bazar-dor-api/internal/catalog"
	"bazar-dor-api/internal/model"
	"bazar-dor-api/internal/repository"
	"bazar-dor-api/pkg/validator"

	"github.com/google/uuid"
)

// SessionMode is the state of an admin's product form.
type SessionMode string

const (
	SessionIdle    SessionMode = "idle"
	SessionAdding  SessionMode = "adding"
	SessionEditing SessionMode = "editing"
)

// EditSession is what an admin currently has open. ProductID is set only
// while editing.
type EditSession struct {
	Mode      SessionMode `json:"mode"`
	ProductID string      `json:"product_id,omitempty"`
}

// ProductInput is the admin product form.
type ProductInput struct {
	Name     model.LocalizedText `json:"name"`
	Category string              `json:"category" validate:"required"`
	Price    *float64            `json:"price" validate:"required,min=0"`
	Unit     model.LocalizedText `json:"unit"`
	Image    string              `json:"image" validate:"required,url"`
}

// AdminOverview is the admin product table plus the per-category tiles.
type AdminOverview struct {
	Products   []model.Product
	Categories []catalog.CategoryStat
}

// AdminService is the admin mutation controller. It keeps a write-through
// copy of the catalog that mirrors the store as of the last successful call;
// edits made to the store by other processes are not reconciled until Refresh.
type AdminService interface {
	Overview(ctx context.Context, categoryID string) (*AdminOverview, error)
	Refresh(ctx context.Context) error

	Session(actorID string) EditSession
	BeginAdd(actorID string) (EditSession, error)
	BeginEdit(ctx context.Context, actorID string, productID uuid.UUID) (*model.Product, error)
	Cancel(actorID string) EditSession

	Create(ctx context.Context, actor model.EventActor, in *ProductInput) (*model.Product, error)
	Update(ctx context.Context, actor model.EventActor, productID uuid.UUID, in *ProductInput) (*model.Product, error)
	Delete(ctx context.Context, actor model.EventActor, productID uuid.UUID, confirmed bool) error
}

type adminService struct {
	productRepo repository.ProductRepository
	publisher   Publisher
	loc         *time.Location
	now         func() time.Time

	mu       sync.Mutex
	loaded   bool
	version  uint64 // bumped by every confirmed mutation
	products []model.Product // most recently updated first
	sessions map[string]EditSession
	inFlight map[string]bool
}

func NewAdminService(pRepo repository.ProductRepository, publisher Publisher, loc *time.Location) AdminService {
	if loc == nil {
		loc = time.UTC
	}
	return &adminService{
		productRepo: pRepo,
		publisher:   publisher,
		loc:         loc,
		now:         time.Now,
		sessions:    make(map[string]EditSession),
		inFlight:    make(map[string]bool),
	}
}

func (s *adminService) today() string {
	return s.now().In(s.loc).Format(model.DateLayout)
}

func (s *adminService) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

// maxRefreshAttempts bounds how often Refresh rereads the store when
// mutations keep landing during its read.
const maxRefreshAttempts = 3

// Refresh replaces the cache with the store's list. A read that overlaps a
// confirmed mutation may miss it, so such a read is discarded and retried.
func (s *adminService) Refresh(ctx context.Context) error {
	for attempt := 0; attempt < maxRefreshAttempts; attempt++ {
		s.mu.Lock()
		start := s.version
		s.mu.Unlock()

		products, err := s.productRepo.FindAll(ctx)
		if err != nil {
			return &PersistenceError{Op: OpLoad, Err: err}
		}

		s.mu.Lock()
		if s.version == start {
			s.products = products
			s.loaded = true
			s.mu.Unlock()
			return nil
		}
		s.mu.Unlock()
	}
	return ErrBusy
}

func (s *adminService) Overview(ctx context.Context, categoryID string) (*AdminOverview, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	all := make([]model.Product, len(s.products))
	for i := range s.products {
		all[i] = *s.products[i].Clone()
	}
	s.mu.Unlock()

	return &AdminOverview{
		Products:   catalog.Filter(all, "", categoryID),
		Categories: catalog.CategoryBreakdown(all, model.DefaultCategories),
	}, nil
}

func (s *adminService) Session(actorID string) EditSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionLocked(actorID)
}

func (s *adminService) sessionLocked(actorID string) EditSession {
	if sess, ok := s.sessions[actorID]; ok {
		return sess
	}
	return EditSession{Mode: SessionIdle}
}

func (s *adminService) BeginAdd(actorID string) (EditSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur := s.sessionLocked(actorID); cur.Mode != SessionIdle {
		return cur, ErrSessionActive
	}
	sess := EditSession{Mode: SessionAdding}
	s.sessions[actorID] = sess
	return sess, nil
}

func (s *adminService) BeginEdit(ctx context.Context, actorID string, productID uuid.UUID) (*model.Product, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cur := s.sessionLocked(actorID); cur.Mode != SessionIdle {
		return nil, ErrSessionActive
	}
	idx := s.indexLocked(productID)
	if idx < 0 {
		return nil, ErrProductNotFound
	}
	s.sessions[actorID] = EditSession{Mode: SessionEditing, ProductID: productID.String()}
	return s.products[idx].Clone(), nil
}

func (s *adminService) Cancel(actorID string) EditSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, actorID)
	return EditSession{Mode: SessionIdle}
}

func (s *adminService) indexLocked(id uuid.UUID) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// acquireLocked marks key as having a store call in flight. Callers hold mu.
func (s *adminService) acquireLocked(key string) error {
	if s.inFlight[key] {
		return ErrBusy
	}
	s.inFlight[key] = true
	return nil
}

func (s *adminService) release(key string) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}

func validateInput(in *ProductInput) error {
	fields := validator.ValidateStruct(in)
	if in.Category != "" {
		if _, ok := model.FindCategory(in.Category); !ok {
			fields = append(fields, validator.FieldError{Field: "category", Tag: "category"})
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func applyInput(p *model.Product, in *ProductInput) {
	p.Name = in.Name
	p.CategoryID = in.Category
	p.Unit = in.Unit
	p.Image = in.Image
}

func (s *adminService) Create(ctx context.Context, actor model.EventActor, in *ProductInput) (*model.Product, error) {
	s.mu.Lock()
	if s.sessionLocked(actor.ID).Mode != SessionAdding {
		s.mu.Unlock()
		return nil, ErrNoSession
	}
	s.mu.Unlock()

	if err := validateInput(in); err != nil {
		return nil, err
	}

	// The first request may have finished while this one was validating.
	key := "new:" + actor.ID
	s.mu.Lock()
	if s.sessionLocked(actor.ID).Mode != SessionAdding {
		s.mu.Unlock()
		return nil, ErrNoSession
	}
	if err := s.acquireLocked(key); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()
	defer s.release(key)

	product := &model.Product{Price: *in.Price}
	applyInput(product, in)
	product.SeedHistory(s.today())
	product.CreatedBy = actor.ID
	product.UpdatedBy = actor.ID

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, &PersistenceError{Op: OpCreate, Err: err}
	}

	s.mu.Lock()
	s.products = append([]model.Product{*product.Clone()}, s.products...)
	s.version++
	delete(s.sessions, actor.ID)
	s.mu.Unlock()

	s.publish(model.ActionProductCreated, actor, product.ID, product, nil)
	return product, nil
}

func (s *adminService) Update(ctx context.Context, actor model.EventActor, productID uuid.UUID, in *ProductInput) (*model.Product, error) {
	s.mu.Lock()
	sess := s.sessionLocked(actor.ID)
	if sess.Mode != SessionEditing || sess.ProductID != productID.String() {
		s.mu.Unlock()
		return nil, ErrNoSession
	}
	s.mu.Unlock()

	if err := validateInput(in); err != nil {
		return nil, err
	}

	key := productID.String()
	s.mu.Lock()
	if sess := s.sessionLocked(actor.ID); sess.Mode != SessionEditing || sess.ProductID != key {
		s.mu.Unlock()
		return nil, ErrNoSession
	}
	idx := s.indexLocked(productID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrProductNotFound
	}
	if err := s.acquireLocked(key); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	updated := s.products[idx].Clone()
	s.mu.Unlock()
	defer s.release(key)

	previous := updated.Price
	applyInput(updated, in)
	updated.ApplyPrice(*in.Price, s.today())
	updated.UpdatedBy = actor.ID

	if err := s.productRepo.Update(ctx, updated); err != nil {
		return nil, &PersistenceError{Op: OpUpdate, Err: err}
	}

	s.mu.Lock()
	if i := s.indexLocked(productID); i >= 0 {
		s.products[i] = *updated.Clone()
	}
	s.version++
	delete(s.sessions, actor.ID)
	s.mu.Unlock()

	s.publish(model.ActionProductUpdated, actor, productID, updated, &previous)
	return updated, nil
}

func (s *adminService) Delete(ctx context.Context, actor model.EventActor, productID uuid.UUID, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	key := productID.String()
	s.mu.Lock()
	if s.indexLocked(productID) < 0 {
		s.mu.Unlock()
		return ErrProductNotFound
	}
	if err := s.acquireLocked(key); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	defer s.release(key)

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return &PersistenceError{Op: OpDelete, Err: err}
	}

	s.mu.Lock()
	if i := s.indexLocked(productID); i >= 0 {
		s.products = append(s.products[:i], s.products[i+1:]...)
	}
	s.version++
	// An edit of the removed product has nothing left to submit.
	for id, sess := range s.sessions {
		if sess.Mode == SessionEditing && sess.ProductID == key {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	s.publish(model.ActionProductDeleted, actor, productID, nil, nil)
	return nil
}

func (s *adminService) publish(action model.CatalogAction, actor model.EventActor, id uuid.UUID, p *model.Product, previous *float64) {
	if s.publisher == nil {
		return
	}
	event := model.CatalogEvent{
		Type:          model.EventTypeCatalogUpdate,
		Action:        action,
		ProductID:     id.String(),
		PreviousPrice: previous,
		Actor:         actor,
		At:            s.now(),
	}
	if p != nil {
		event.Product = p.Clone()
	}
	s.publisher.Publish(event)
}
