package service

import "bazar-dor-api/internal/model"

// Publisher receives catalog events after the store has confirmed a change.
// Implementations must not block the caller.
type Publisher interface {
	Publish(event model.CatalogEvent)
}

// Publishers fans one event out to several publishers.
type Publishers []Publisher

func (ps Publishers) Publish(event model.CatalogEvent) {
	for _, p := range ps {
		if p != nil {
			p.Publish(event)
		}
	}
}
