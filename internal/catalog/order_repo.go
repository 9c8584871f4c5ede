package catalog

import (
	"context"
	"errors"

	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
	"gorm.io/gorm"
)

// OrderRepository lists placed orders.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListAll returns orders newest first by order date.
func (r *OrderRepository) ListAll(ctx context.Context) ([]Order, error) {
	var rows []orderRecord
	if err := r.db.WithContext(ctx).Order("order_date DESC").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	orders := make([]Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toOrder())
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*Order, error) {
	var row orderRecord
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	order := row.toOrder()
	return &order, nil
}
