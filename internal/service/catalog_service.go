package service

import (
	"context"

	"bazar-dor-api/internal/catalog"
	"bazar-dor-api/internal/model"
	"bazar-dor-api/internal/repository"
)

// CatalogService serves the public, read-only catalog. It keeps no cache:
// every call reads the store, independently of the admin controller.
type CatalogService interface {
	Categories() []model.Category
	All(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, query, categoryID string) ([]model.Product, error)
	Insights(ctx context.Context) (catalog.Insights, error)
	Trends(ctx context.Context) (catalog.Trends, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(pRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: pRepo}
}

func (s *catalogService) Categories() []model.Category {
	return model.DefaultCategories
}

func (s *catalogService) All(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: OpLoad, Err: err}
	}
	return products, nil
}

func (s *catalogService) Search(ctx context.Context, query, categoryID string) ([]model.Product, error) {
	products, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(products, query, categoryID), nil
}

func (s *catalogService) Insights(ctx context.Context) (catalog.Insights, error) {
	products, err := s.All(ctx)
	if err != nil {
		return catalog.Insights{}, err
	}
	return catalog.Summarize(products), nil
}

func (s *catalogService) Trends(ctx context.Context) (catalog.Trends, error) {
	products, err := s.All(ctx)
	if err != nil {
		return catalog.Trends{}, err
	}
	return catalog.SplitTrends(products), nil
}
