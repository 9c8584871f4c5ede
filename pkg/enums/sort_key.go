package enums

// SortKey selects a product ordering. Featured keeps the catalog order.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return true
	}
	return false
}
