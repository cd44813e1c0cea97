package catalogrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jbaylon/stashbot/internal/domain"
	"github.com/jbaylon/stashbot/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id
	`
	category := domain.Category{Name: name}
	err := r.db.QueryRow(ctx, query, name).Scan(&category.ID)
	if err != nil {
		zap.L().Error("can't create category", zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *Repository) ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	query := `
		SELECT id, category_id, name, description, is_active, created_at
		FROM products
		WHERE category_id = $1 AND is_active
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.IsActive, &p.CreatedAt); err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (category_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at
	`
	err := r.db.QueryRow(ctx, query, product.CategoryID, product.Name, product.Description).
		Scan(&product.ID, &product.IsActive, &product.CreatedAt)
	if err != nil {
		zap.L().Error("can't create product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) DeactivateProduct(ctx context.Context, productID int) (bool, error) {
	query := `
		UPDATE products
		SET is_active = FALSE
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, productID)
	if err != nil {
		zap.L().Error("can't deactivate product", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) GetVariant(ctx context.Context, variantID int) (*domain.Variant, error) {
	query := `
		SELECT id, product_id, name, price, thumb_file_id, is_active, created_at
		FROM variants
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, variantID)
	var v domain.Variant
	err := row.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.ThumbFileID, &v.IsActive, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find variant", zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func (r *Repository) ListVariantsByProduct(ctx context.Context, productID int) ([]domain.Variant, error) {
	query := `
		SELECT id, product_id, name, price, thumb_file_id, is_active, created_at
		FROM variants
		WHERE product_id = $1 AND is_active
		ORDER BY price, name
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		zap.L().Error("can't list variants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var variants []domain.Variant
	for rows.Next() {
		var v domain.Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.ThumbFileID, &v.IsActive, &v.CreatedAt); err != nil {
			zap.L().Error("can't scan variant row", zap.Error(err))
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

func (r *Repository) CreateVariant(ctx context.Context, variant *domain.Variant) (*domain.Variant, error) {
	query := `
		INSERT INTO variants (product_id, name, price, thumb_file_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at
	`
	err := r.db.QueryRow(ctx, query, variant.ProductID, variant.Name, variant.Price, variant.ThumbFileID).
		Scan(&variant.ID, &variant.IsActive, &variant.CreatedAt)
	if err != nil {
		zap.L().Error("can't create variant", zap.Error(err))
		return nil, err
	}
	return variant, nil
}

func (r *Repository) DeactivateVariant(ctx context.Context, variantID int) (bool, error) {
	query := `
		UPDATE variants
		SET is_active = FALSE
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, variantID)
	if err != nil {
		zap.L().Error("can't deactivate variant", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
