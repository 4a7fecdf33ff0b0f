package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, description, price, image_url, asset_key, vendor_id, is_approved, created_at`

type PostgresProductStore struct {
	db database.DB
}

func NewPostgresProductStore(db database.DB) *PostgresProductStore {
	return &PostgresProductStore{db: db}
}

func (s *PostgresProductStore) Create(ctx context.Context, p *model.Product) error {
	p.ID = uuid.NewString()
	p.IsApproved = false
	p.CreatedAt = time.Now().UTC()
	_, err := s.db.Exec(ctx,
		`INSERT INTO products (id, name, description, price, image_url, asset_key, vendor_id, is_approved, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID,
		p.Name,
		p.Description,
		p.Price,
		p.ImageURL,
		p.AssetKey,
		p.VendorID,
		p.IsApproved,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("CreateProduct: %w", err)
	}
	return nil
}

func (s *PostgresProductStore) GetByID(ctx context.Context, id string) (*model.Product, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (s *PostgresProductStore) ListApproved(ctx context.Context) ([]model.Product, error) {
	return s.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE is_approved = TRUE ORDER BY created_at`)
}

func (s *PostgresProductStore) ListPending(ctx context.Context) ([]model.Product, error) {
	return s.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE is_approved = FALSE ORDER BY created_at`)
}

func (s *PostgresProductStore) ListByVendor(ctx context.Context, vendorID string) ([]model.Product, error) {
	return s.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE vendor_id = $1 ORDER BY created_at`, vendorID)
}

func (s *PostgresProductStore) Update(ctx context.Context, id string, upd ProductUpdate) (*model.Product, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE products
		 SET name = COALESCE($2, name),
		     description = COALESCE($3, description),
		     price = COALESCE($4, price)
		 WHERE id = $1
		 RETURNING `+productColumns,
		id,
		upd.Name,
		upd.Description,
		upd.Price,
	)
	return scanProduct(row)
}

func (s *PostgresProductStore) UpdateOwned(ctx context.Context, id, vendorID string, upd ProductUpdate) (*model.Product, error) {
	// existence and ownership resolved by one filter, like the vendor
	// findOneAndUpdate in the original store
	row := s.db.QueryRow(ctx,
		`UPDATE products
		 SET name = COALESCE($3, name),
		     description = COALESCE($4, description),
		     price = COALESCE($5, price)
		 WHERE id = $1 AND vendor_id = $2
		 RETURNING `+productColumns,
		id,
		vendorID,
		upd.Name,
		upd.Description,
		upd.Price,
	)
	return scanProduct(row)
}

func (s *PostgresProductStore) SetApproved(ctx context.Context, id string) (*model.Product, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE products SET is_approved = TRUE WHERE id = $1
		 RETURNING `+productColumns,
		id,
	)
	return scanProduct(row)
}

func (s *PostgresProductStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresProductStore) DeleteOwned(ctx context.Context, id, vendorID string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND vendor_id = $2`,
		id,
		vendorID,
	)
	if err != nil {
		return fmt.Errorf("DeleteOwnedProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresProductStore) list(ctx context.Context, sql string, args ...any) ([]model.Product, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.ImageURL,
			&p.AssetKey,
			&p.VendorID,
			&p.IsApproved,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		&p.AssetKey,
		&p.VendorID,
		&p.IsApproved,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetProduct: %w", err)
	}
	return p, nil
}
