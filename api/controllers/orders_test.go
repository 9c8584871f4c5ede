package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mobimart/mobimart-backend/internal/catalog"
	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
)

type fakeOrders struct {
	orders []catalog.Order
	err    error
}

func (f *fakeOrders) ListAll(context.Context) ([]catalog.Order, error) {
	return f.orders, f.err
}

func (f *fakeOrders) GetByID(_ context.Context, id int) (*catalog.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func TestOrderList(t *testing.T) {
	source := &fakeOrders{orders: []catalog.Order{
		{ID: 2, CustomerName: "Jane Doe", OrderDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 1, CustomerName: "John Roe", OrderDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}}

	rec := httptest.NewRecorder()
	OrderList(source, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []catalog.Order
	decodeData(t, rec, &list)
	if len(list) != 2 || list[0].ID != 2 {
		t.Fatalf("unexpected order list: %+v", list)
	}
}

func TestOrderDetail(t *testing.T) {
	source := &fakeOrders{orders: []catalog.Order{{ID: 7, CustomerName: "Jane Doe"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/7", nil)
	req = withURLParam(req, "orderId", "7")
	rec := httptest.NewRecorder()
	OrderDetail(source, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var order catalog.Order
	decodeData(t, rec, &order)
	if order.ID != 7 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderDetailBadID(t *testing.T) {
	source := &fakeOrders{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/zero", nil)
	req = withURLParam(req, "orderId", "zero")
	rec := httptest.NewRecorder()
	OrderDetail(source, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
