// Package storage talks to the external media host holding product
// images. The primary data store only keeps the public URL and the
// opaque object key.
package storage

import "context"

// UploadResult identifies an uploaded asset.
type UploadResult struct {
	URL string
	Key string
}

type Store interface {
	Upload(ctx context.Context, localPath string) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}

type FakeStore struct {
	UploadFn func(ctx context.Context, localPath string) (*UploadResult, error)
	DeleteFn func(ctx context.Context, key string) error
}

func (f *FakeStore) Upload(ctx context.Context, localPath string) (*UploadResult, error) {
	if f.UploadFn != nil {
		return f.UploadFn(ctx, localPath)
	}
	panic("unexpected Upload")
}

func (f *FakeStore) Delete(ctx context.Context, key string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, key)
	}
	panic("unexpected Delete")
}
