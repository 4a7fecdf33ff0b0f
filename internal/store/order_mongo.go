package store

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoOrderStore struct {
	cart   *mongo.Collection
	orders *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{
		cart:   db.Collection("cart_items"),
		orders: db.Collection("orders"),
	}
}

func (s *MongoOrderStore) AddCartItem(ctx context.Context, item *model.CartItem) error {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC()
	if _, err := s.cart.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("AddCartItem: %w", err)
	}
	return nil
}

func (s *MongoOrderStore) ListCart(ctx context.Context, userID string) ([]model.CartItem, error) {
	cur, err := s.cart.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("ListCart: %w", err)
	}
	items := []model.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("ListCart: %w", err)
	}
	return items, nil
}

func (s *MongoOrderStore) RemoveCartItem(ctx context.Context, id, userID string) error {
	res, err := s.cart.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("RemoveCartItem: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoOrderStore) ClearCart(ctx context.Context, userID string) error {
	if _, err := s.cart.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("ClearCart: %w", err)
	}
	return nil
}

func (s *MongoOrderStore) CreateOrder(ctx context.Context, o *model.Order) error {
	o.ID = uuid.NewString()
	o.Status = model.OrderPlaced
	o.CreatedAt = time.Now().UTC()
	if _, err := s.orders.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("CreateOrder: %w", err)
	}
	return nil
}

func (s *MongoOrderStore) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.list(ctx, bson.M{"user_id": userID})
}

func (s *MongoOrderStore) ListByVendor(ctx context.Context, vendorID string) ([]model.Order, error) {
	return s.list(ctx, bson.M{"items.vendor_id": vendorID})
}

func (s *MongoOrderStore) SetStatusForVendor(ctx context.Context, id, vendorID string, status model.OrderStatus) error {
	res, err := s.orders.UpdateOne(ctx,
		bson.M{"_id": id, "items.vendor_id": vendorID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("SetOrderStatus: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoOrderStore) list(ctx context.Context, filter bson.M) ([]model.Order, error) {
	cur, err := s.orders.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("ListOrders: %w", err)
	}
	orders := []model.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("ListOrders: %w", err)
	}
	return orders, nil
}
