package store

import (
	"context"

	"storefront/internal/model"
)

// UserStore persists credential records. Create fills ID and CreatedAt.
// Role is written once at creation and never updated here.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	UpdateEmail(ctx context.Context, id, email string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetApproved(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type FakeUserStore struct {
	CreateFn         func(ctx context.Context, u *model.User) error
	GetByIDFn        func(ctx context.Context, id string) (*model.User, error)
	GetByEmailFn     func(ctx context.Context, email string) (*model.User, error)
	ListByRoleFn     func(ctx context.Context, role model.Role) ([]model.User, error)
	UpdateEmailFn    func(ctx context.Context, id, email string) error
	UpdatePasswordFn func(ctx context.Context, id, passwordHash string) error
	SetApprovedFn    func(ctx context.Context, id string) error
	DeleteFn         func(ctx context.Context, id string) error
}

func (f *FakeUserStore) Create(ctx context.Context, u *model.User) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, u)
	}
	panic("unexpected Create")
}

func (f *FakeUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	panic("unexpected GetByID")
}

func (f *FakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.GetByEmailFn != nil {
		return f.GetByEmailFn(ctx, email)
	}
	panic("unexpected GetByEmail")
}

func (f *FakeUserStore) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if f.ListByRoleFn != nil {
		return f.ListByRoleFn(ctx, role)
	}
	panic("unexpected ListByRole")
}

func (f *FakeUserStore) UpdateEmail(ctx context.Context, id, email string) error {
	if f.UpdateEmailFn != nil {
		return f.UpdateEmailFn(ctx, id, email)
	}
	panic("unexpected UpdateEmail")
}

func (f *FakeUserStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if f.UpdatePasswordFn != nil {
		return f.UpdatePasswordFn(ctx, id, passwordHash)
	}
	panic("unexpected UpdatePassword")
}

func (f *FakeUserStore) SetApproved(ctx context.Context, id string) error {
	if f.SetApprovedFn != nil {
		return f.SetApprovedFn(ctx, id)
	}
	panic("unexpected SetApproved")
}

func (f *FakeUserStore) Delete(ctx context.Context, id string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	panic("unexpected Delete")
}
