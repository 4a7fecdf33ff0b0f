package store

import (
	"context"

	"storefront/internal/model"
)

// ProductUpdate carries the mutable content fields. Nil means keep the
// stored value.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
}

// ProductStore persists catalog records. UpdateOwned and DeleteOwned
// combine the existence and ownership checks into a single filtered
// query; a vendor touching someone else's product gets ErrNotFound.
// Update is the unrestricted admin path. SetApproved is an unconditional
// set-true and therefore idempotent.
type ProductStore interface {
	Create(ctx context.Context, p *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	ListApproved(ctx context.Context) ([]model.Product, error)
	ListPending(ctx context.Context) ([]model.Product, error)
	ListByVendor(ctx context.Context, vendorID string) ([]model.Product, error)
	Update(ctx context.Context, id string, upd ProductUpdate) (*model.Product, error)
	UpdateOwned(ctx context.Context, id, vendorID string, upd ProductUpdate) (*model.Product, error)
	SetApproved(ctx context.Context, id string) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	DeleteOwned(ctx context.Context, id, vendorID string) error
}

type FakeProductStore struct {
	CreateFn       func(ctx context.Context, p *model.Product) error
	GetByIDFn      func(ctx context.Context, id string) (*model.Product, error)
	ListApprovedFn func(ctx context.Context) ([]model.Product, error)
	ListPendingFn  func(ctx context.Context) ([]model.Product, error)
	ListByVendorFn func(ctx context.Context, vendorID string) ([]model.Product, error)
	UpdateFn       func(ctx context.Context, id string, upd ProductUpdate) (*model.Product, error)
	UpdateOwnedFn  func(ctx context.Context, id, vendorID string, upd ProductUpdate) (*model.Product, error)
	SetApprovedFn  func(ctx context.Context, id string) (*model.Product, error)
	DeleteFn       func(ctx context.Context, id string) error
	DeleteOwnedFn  func(ctx context.Context, id, vendorID string) error
}

func (f *FakeProductStore) Create(ctx context.Context, p *model.Product) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, p)
	}
	panic("unexpected Create")
}

func (f *FakeProductStore) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	panic("unexpected GetByID")
}

func (f *FakeProductStore) ListApproved(ctx context.Context) ([]model.Product, error) {
	if f.ListApprovedFn != nil {
		return f.ListApprovedFn(ctx)
	}
	panic("unexpected ListApproved")
}

func (f *FakeProductStore) ListPending(ctx context.Context) ([]model.Product, error) {
	if f.ListPendingFn != nil {
		return f.ListPendingFn(ctx)
	}
	panic("unexpected ListPending")
}

func (f *FakeProductStore) ListByVendor(ctx context.Context, vendorID string) ([]model.Product, error) {
	if f.ListByVendorFn != nil {
		return f.ListByVendorFn(ctx, vendorID)
	}
	panic("unexpected ListByVendor")
}

func (f *FakeProductStore) Update(ctx context.Context, id string, upd ProductUpdate) (*model.Product, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, upd)
	}
	panic("unexpected Update")
}

func (f *FakeProductStore) UpdateOwned(ctx context.Context, id, vendorID string, upd ProductUpdate) (*model.Product, error) {
	if f.UpdateOwnedFn != nil {
		return f.UpdateOwnedFn(ctx, id, vendorID, upd)
	}
	panic("unexpected UpdateOwned")
}

func (f *FakeProductStore) SetApproved(ctx context.Context, id string) (*model.Product, error) {
	if f.SetApprovedFn != nil {
		return f.SetApprovedFn(ctx, id)
	}
	panic("unexpected SetApproved")
}

func (f *FakeProductStore) Delete(ctx context.Context, id string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	panic("unexpected Delete")
}

func (f *FakeProductStore) DeleteOwned(ctx context.Context, id, vendorID string) error {
	if f.DeleteOwnedFn != nil {
		return f.DeleteOwnedFn(ctx, id, vendorID)
	}
	panic("unexpected DeleteOwned")
}
