package catalog

import (
	"context"
	"errors"

	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
	"gorm.io/gorm"
)

// OfferRepository resolves discount offers.
type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// GetByCode returns the offer for the exact code, or (nil, nil) when no
// such offer exists. Codes are case-sensitive.
func (r *OfferRepository) GetByCode(ctx context.Context, code string) (*Offer, error) {
	var row offerRecord
	err := r.db.WithContext(ctx).First(&row, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load offer")
	}
	offer := row.toOffer()
	return &offer, nil
}

func (r *OfferRepository) ListAll(ctx context.Context) ([]Offer, error) {
	var rows []offerRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list offers")
	}
	offers := make([]Offer, 0, len(rows))
	for _, row := range rows {
		offers = append(offers, row.toOffer())
	}
	return offers, nil
}
