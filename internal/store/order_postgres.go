package store

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/google/uuid"
)

type PostgresOrderStore struct {
	db database.DB
}

func NewPostgresOrderStore(db database.DB) *PostgresOrderStore {
	return &PostgresOrderStore{db: db}
}

func (s *PostgresOrderStore) AddCartItem(ctx context.Context, item *model.CartItem) error {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC()
	_, err := s.db.Exec(ctx,
		`INSERT INTO cart_items (id, user_id, product_id, quantity, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.ID,
		item.UserID,
		item.ProductID,
		item.Quantity,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("AddCartItem: %w", err)
	}
	return nil
}

func (s *PostgresOrderStore) ListCart(ctx context.Context, userID string) ([]model.CartItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, product_id, quantity, created_at
		 FROM cart_items WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCart: %w", err)
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListCart: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresOrderStore) RemoveCartItem(ctx context.Context, id, userID string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("RemoveCartItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresOrderStore) ClearCart(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("ClearCart: %w", err)
	}
	return nil
}

func (s *PostgresOrderStore) CreateOrder(ctx context.Context, o *model.Order) error {
	o.ID = uuid.NewString()
	o.Status = model.OrderPlaced
	o.CreatedAt = time.Now().UTC()
	_, err := s.db.Exec(ctx,
		`INSERT INTO orders (id, user_id, total, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		o.ID,
		o.UserID,
		o.Total,
		o.Status,
		o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("CreateOrder: %w", err)
	}
	for _, item := range o.Items {
		_, err := s.db.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, vendor_id, name, price, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			o.ID,
			item.ProductID,
			item.VendorID,
			item.Name,
			item.Price,
			item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("CreateOrder: %w", err)
		}
	}
	return nil
}

func (s *PostgresOrderStore) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.list(ctx,
		`SELECT id, user_id, total, status, created_at
		 FROM orders WHERE user_id = $1 ORDER BY created_at`,
		userID)
}

func (s *PostgresOrderStore) ListByVendor(ctx context.Context, vendorID string) ([]model.Order, error) {
	return s.list(ctx,
		`SELECT DISTINCT o.id, o.user_id, o.total, o.status, o.created_at
		 FROM orders o
		 JOIN order_items i ON i.order_id = o.id
		 WHERE i.vendor_id = $1
		 ORDER BY o.created_at`,
		vendorID)
}

func (s *PostgresOrderStore) SetStatusForVendor(ctx context.Context, id, vendorID string, status model.OrderStatus) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE orders SET status = $3
		 WHERE id = $1
		   AND EXISTS (SELECT 1 FROM order_items WHERE order_id = orders.id AND vendor_id = $2)`,
		id,
		vendorID,
		status,
	)
	if err != nil {
		return fmt.Errorf("SetOrderStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresOrderStore) list(ctx context.Context, sql string, args ...any) ([]model.Order, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListOrders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.Total,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListOrders: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := s.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (s *PostgresOrderStore) listItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT product_id, vendor_id, name, price, quantity
		 FROM order_items WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrderItems: %w", err)
	}
	defer rows.Close()

	items := []model.OrderItem{}
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(
			&item.ProductID,
			&item.VendorID,
			&item.Name,
			&item.Price,
			&item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("ListOrderItems: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
