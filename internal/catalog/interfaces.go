package catalog

import "context"

// Catalog is the read-only product data source the core consumes.
type Catalog interface {
	ListAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
	Filter(ctx context.Context, criteria Criteria) ([]Product, error)
	ListFeatured(ctx context.Context) ([]Product, error)
	ListTrending(ctx context.Context) ([]Product, error)
}

// OfferLookup resolves discount codes. A missing code returns (nil, nil);
// matching is exact and case-sensitive.
type OfferLookup interface {
	GetByCode(ctx context.Context, code string) (*Offer, error)
}

// OrderSource lists placed orders, newest first by order date.
type OrderSource interface {
	ListAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id int) (*Order, error)
}
