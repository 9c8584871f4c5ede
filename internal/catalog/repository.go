package catalog

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
	"gorm.io/gorm"
)

const (
	featuredMinRating  = 4.6
	trendingMinReviews = 500
)

// Repository serves the catalog, offer, and order collaborators from the
// products database.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the backing tables via AutoMigrate. Test convenience;
// real schemas are managed by the goose migrations under pkg/migrate.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&productRecord{}, &offerRecord{}, &orderRecord{})
}

func (r *Repository) ListAll(ctx context.Context) ([]Product, error) {
	var rows []productRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return toProducts(rows), nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*Product, error) {
	var row productRecord
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	product := row.toProduct()
	return &product, nil
}

func (r *Repository) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	var rows []productRecord
	if err := r.db.WithContext(ctx).Where("category = ?", category).Order("id").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products by category")
	}
	return toProducts(rows), nil
}

// Search matches the query case-insensitively against name, brand, or
// category.
func (r *Repository) Search(ctx context.Context, query string) ([]Product, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var rows []productRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern, pattern).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search products")
	}
	return toProducts(rows), nil
}

// Filter applies the criteria in SQL. Omitted criteria add no clause.
func (r *Repository) Filter(ctx context.Context, criteria Criteria) ([]Product, error) {
	q := r.db.WithContext(ctx).Model(&productRecord{})
	if len(criteria.Brands) > 0 {
		q = q.Where("brand IN ?", criteria.Brands)
	}
	if len(criteria.Categories) > 0 {
		q = q.Where("category IN ?", criteria.Categories)
	}
	if criteria.PriceRange != nil {
		q = q.Where("price >= ? AND price <= ?", criteria.PriceRange.Min, criteria.PriceRange.Max)
	}
	if len(criteria.RAM) > 0 {
		q = q.Where("ram IN ?", criteria.RAM)
	}
	if len(criteria.Storage) > 0 {
		q = q.Where("storage IN ?", criteria.Storage)
	}
	if criteria.InStockOnly {
		q = q.Where("in_stock = ?", true)
	}

	var rows []productRecord
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "filter products")
	}
	return toProducts(rows), nil
}

func (r *Repository) ListFeatured(ctx context.Context) ([]Product, error) {
	var rows []productRecord
	if err := r.db.WithContext(ctx).Where("rating >= ?", featuredMinRating).Order("id").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list featured products")
	}
	return toProducts(rows), nil
}

func (r *Repository) ListTrending(ctx context.Context) ([]Product, error) {
	var rows []productRecord
	if err := r.db.WithContext(ctx).Where("review_count > ?", trendingMinReviews).Order("id").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list trending products")
	}
	return toProducts(rows), nil
}

func toProducts(rows []productRecord) []Product {
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toProduct())
	}
	return products
}
