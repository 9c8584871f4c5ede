package catalog

import (
	"strings"
	"time"
)

// productRecord is the persisted shape of a product row. Spec attributes
// are flat columns so criteria filters run in SQL.
type productRecord struct {
	ID            int     `gorm:"column:id;primaryKey"`
	Name          string  `gorm:"column:name"`
	Brand         string  `gorm:"column:brand"`
	Price         float64 `gorm:"column:price"`
	OriginalPrice float64 `gorm:"column:original_price"`
	Images        string  `gorm:"column:images"`
	Category      string  `gorm:"column:category"`
	Display       string  `gorm:"column:display"`
	Processor     string  `gorm:"column:processor"`
	RAM           string  `gorm:"column:ram"`
	Storage       string  `gorm:"column:storage"`
	Camera        string  `gorm:"column:camera"`
	Battery       string  `gorm:"column:battery"`
	OS            string  `gorm:"column:os"`
	InStock       bool    `gorm:"column:in_stock"`
	Rating        float64 `gorm:"column:rating"`
	ReviewCount   int     `gorm:"column:review_count"`
	Description   string  `gorm:"column:description"`
}

func (productRecord) TableName() string { return "products" }

// toProduct applies the boundary defaults exactly once: images CSV split
// and trimmed, absent attributes already zero-valued by the column types.
func (r productRecord) toProduct() Product {
	var images []string
	if r.Images != "" {
		for _, img := range strings.Split(r.Images, ",") {
			img = strings.TrimSpace(img)
			if img != "" {
				images = append(images, img)
			}
		}
	}
	return Product{
		ID:            r.ID,
		Name:          r.Name,
		Brand:         r.Brand,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Images:        images,
		Category:      r.Category,
		Specs: Specs{
			Display:   r.Display,
			Processor: r.Processor,
			RAM:       r.RAM,
			Storage:   r.Storage,
			Camera:    r.Camera,
			Battery:   r.Battery,
			OS:        r.OS,
		},
		InStock:     r.InStock,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		Description: r.Description,
	}
}

type offerRecord struct {
	ID                 int        `gorm:"column:id;primaryKey"`
	Code               string     `gorm:"column:code"`
	Description        string     `gorm:"column:description"`
	DiscountPercentage float64    `gorm:"column:discount_percentage"`
	StartDate          *time.Time `gorm:"column:start_date"`
	EndDate            *time.Time `gorm:"column:end_date"`
}

func (offerRecord) TableName() string { return "offers" }

func (r offerRecord) toOffer() Offer {
	return Offer{
		ID:                 r.ID,
		Code:               r.Code,
		Description:        r.Description,
		DiscountPercentage: r.DiscountPercentage,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
	}
}

type orderRecord struct {
	ID              int       `gorm:"column:id;primaryKey"`
	OrderDate       time.Time `gorm:"column:order_date"`
	CustomerName    string    `gorm:"column:customer_name"`
	TotalAmount     float64   `gorm:"column:total_amount"`
	ShippingAddress string    `gorm:"column:shipping_address"`
	OrderStatus     string    `gorm:"column:order_status"`
}

func (orderRecord) TableName() string { return "orders" }

func (r orderRecord) toOrder() Order {
	status := r.OrderStatus
	if status == "" {
		status = "Pending"
	}
	return Order{
		ID:              r.ID,
		OrderDate:       r.OrderDate,
		CustomerName:    r.CustomerName,
		TotalAmount:     r.TotalAmount,
		ShippingAddress: r.ShippingAddress,
		OrderStatus:     status,
	}
}
