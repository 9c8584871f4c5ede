package catalog

import "time"

// Specs holds the named product attributes shown on comparison pages.
// Missing attributes are empty strings, applied once at the catalog boundary.
type Specs struct {
	Display   string `json:"display"`
	Processor string `json:"processor"`
	RAM       string `json:"ram"`
	Storage   string `json:"storage"`
	Camera    string `json:"camera"`
	Battery   string `json:"battery"`
	OS        string `json:"os"`
}

// Product is the fully-typed catalog record. IDs are stable integers.
// OriginalPrice of 0 means the product carries no markdown.
type Product struct {
	ID            int      `json:"Id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Specs         Specs    `json:"specs"`
	InStock       bool     `json:"inStock"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Description   string   `json:"description"`
}

// Offer is a named, time-bounded percentage markdown on a cart subtotal.
// Nil window bounds leave that side open.
type Offer struct {
	ID                 int        `json:"Id"`
	Code               string     `json:"code"`
	Description        string     `json:"description"`
	DiscountPercentage float64    `json:"discountPercentage"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
}

// ValidAt reports whether the offer's validity window includes t.
func (o Offer) ValidAt(t time.Time) bool {
	if o.StartDate != nil && t.Before(*o.StartDate) {
		return false
	}
	if o.EndDate != nil && t.After(*o.EndDate) {
		return false
	}
	return true
}

// Order is a placed order as returned by the order collaborator.
type Order struct {
	ID              int       `json:"Id"`
	OrderDate       time.Time `json:"orderDate"`
	CustomerName    string    `json:"customerName"`
	TotalAmount     float64   `json:"totalAmount"`
	ShippingAddress string    `json:"shippingAddress"`
	OrderStatus     string    `json:"orderStatus"`
}

// Criteria is the product filter configuration. Every present predicate
// must hold; omitted fields impose no constraint.
type Criteria struct {
	Brands      []string    `json:"brands,omitempty"`
	Categories  []string    `json:"categories,omitempty"`
	PriceRange  *PriceRange `json:"priceRange,omitempty"`
	RAM         []string    `json:"ram,omitempty"`
	Storage     []string    `json:"storage,omitempty"`
	InStockOnly bool        `json:"inStockOnly,omitempty"`
}

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
