package catalogservice

import (
	"context"
	"errors"

	"github.com/jbaylon/stashbot/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeactivateProduct(ctx context.Context, productID int) (bool, error)
	ListVariantsByProduct(ctx context.Context, productID int) ([]domain.Variant, error)
	CreateVariant(ctx context.Context, variant *domain.Variant) (*domain.Variant, error)
	DeactivateVariant(ctx context.Context, variantID int) (bool, error)
}

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidPrice = errors.New("invalid price")
)

type Service struct {
	catalogRepo Repo
}

func New(catalogRepo Repo) *Service {
	return &Service{
		catalogRepo: catalogRepo,
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (s *Service) ListProducts(ctx context.Context, categoryID int) ([]domain.Product, error) {
	products, err := s.catalogRepo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *Service) ListVariants(ctx context.Context, productID int) ([]domain.Variant, error) {
	variants, err := s.catalogRepo.ListVariantsByProduct(ctx, productID)
	if err != nil {
		zap.L().Error("failed to list variants", zap.Error(err))
		return nil, err
	}
	return variants, nil
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	category, err := s.catalogRepo.CreateCategory(ctx, name)
	if err != nil {
		zap.L().Error("failed to create category", zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (s *Service) CreateProduct(ctx context.Context, categoryID *int, name, description string) (*domain.Product, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	product := &domain.Product{
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
	}
	if _, err := s.catalogRepo.CreateProduct(ctx, product); err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *Service) CreateVariant(ctx context.Context, productID int, name string, price int64, thumbFileID *string) (*domain.Variant, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	variant := &domain.Variant{
		ProductID:   productID,
		Name:        name,
		Price:       price,
		ThumbFileID: thumbFileID,
	}
	if _, err := s.catalogRepo.CreateVariant(ctx, variant); err != nil {
		zap.L().Error("failed to create variant", zap.Error(err))
		return nil, err
	}
	return variant, nil
}

// DeactivateProduct soft-disables the product. Rows are never hard-deleted so
// purchase history keeps resolving.
func (s *Service) DeactivateProduct(ctx context.Context, productID int) error {
	found, err := s.catalogRepo.DeactivateProduct(ctx, productID)
	if err != nil {
		zap.L().Error("failed to deactivate product", zap.Error(err))
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *Service) DeactivateVariant(ctx context.Context, variantID int) error {
	found, err := s.catalogRepo.DeactivateVariant(ctx, variantID)
	if err != nil {
		zap.L().Error("failed to deactivate variant", zap.Error(err))
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
