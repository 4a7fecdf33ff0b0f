package store

import (
	"context"

	"storefront/internal/model"
)

// OrderStore persists cart lines and placed orders. SetStatusForVendor
// only touches orders that contain at least one line owned by the vendor,
// the same ownership-by-filter rule products use.
type OrderStore interface {
	AddCartItem(ctx context.Context, item *model.CartItem) error
	ListCart(ctx context.Context, userID string) ([]model.CartItem, error)
	RemoveCartItem(ctx context.Context, id, userID string) error
	ClearCart(ctx context.Context, userID string) error
	CreateOrder(ctx context.Context, o *model.Order) error
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListByVendor(ctx context.Context, vendorID string) ([]model.Order, error)
	SetStatusForVendor(ctx context.Context, id, vendorID string, status model.OrderStatus) error
}

type FakeOrderStore struct {
	AddCartItemFn        func(ctx context.Context, item *model.CartItem) error
	ListCartFn           func(ctx context.Context, userID string) ([]model.CartItem, error)
	RemoveCartItemFn     func(ctx context.Context, id, userID string) error
	ClearCartFn          func(ctx context.Context, userID string) error
	CreateOrderFn        func(ctx context.Context, o *model.Order) error
	ListByUserFn         func(ctx context.Context, userID string) ([]model.Order, error)
	ListByVendorFn       func(ctx context.Context, vendorID string) ([]model.Order, error)
	SetStatusForVendorFn func(ctx context.Context, id, vendorID string, status model.OrderStatus) error
}

func (f *FakeOrderStore) AddCartItem(ctx context.Context, item *model.CartItem) error {
	if f.AddCartItemFn != nil {
		return f.AddCartItemFn(ctx, item)
	}
	panic("unexpected AddCartItem")
}

func (f *FakeOrderStore) ListCart(ctx context.Context, userID string) ([]model.CartItem, error) {
	if f.ListCartFn != nil {
		return f.ListCartFn(ctx, userID)
	}
	panic("unexpected ListCart")
}

func (f *FakeOrderStore) RemoveCartItem(ctx context.Context, id, userID string) error {
	if f.RemoveCartItemFn != nil {
		return f.RemoveCartItemFn(ctx, id, userID)
	}
	panic("unexpected RemoveCartItem")
}

func (f *FakeOrderStore) ClearCart(ctx context.Context, userID string) error {
	if f.ClearCartFn != nil {
		return f.ClearCartFn(ctx, userID)
	}
	panic("unexpected ClearCart")
}

func (f *FakeOrderStore) CreateOrder(ctx context.Context, o *model.Order) error {
	if f.CreateOrderFn != nil {
		return f.CreateOrderFn(ctx, o)
	}
	panic("unexpected CreateOrder")
}

func (f *FakeOrderStore) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if f.ListByUserFn != nil {
		return f.ListByUserFn(ctx, userID)
	}
	panic("unexpected ListByUser")
}

func (f *FakeOrderStore) ListByVendor(ctx context.Context, vendorID string) ([]model.Order, error) {
	if f.ListByVendorFn != nil {
		return f.ListByVendorFn(ctx, vendorID)
	}
	panic("unexpected ListByVendor")
}

func (f *FakeOrderStore) SetStatusForVendor(ctx context.Context, id, vendorID string, status model.OrderStatus) error {
	if f.SetStatusForVendorFn != nil {
		return f.SetStatusForVendorFn(ctx, id, vendorID, status)
	}
	panic("unexpected SetStatusForVendor")
}
