package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"offistation-service/models"
	"offistation-service/repository"
)

// CatalogService exposes the product catalog for browsing.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, *ServiceError)
	GetProduct(ctx context.Context, id string) (*models.Product, *ServiceError)
}

type catalogServiceImpl struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products repository.ProductRepository, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{products: products, logger: logger}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load catalog"}
	}
	return products, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id string) (*models.Product, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	if err != nil {
		s.logger.Error("Failed to load product", zap.String("product_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load product"}
	}
	return product, nil
}
