package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProductStore struct {
	products *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{products: db.Collection("products")}
}

func (s *MongoProductStore) Create(ctx context.Context, p *model.Product) error {
	p.ID = uuid.NewString()
	p.IsApproved = false
	p.CreatedAt = time.Now().UTC()
	if _, err := s.products.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("CreateProduct: %w", err)
	}
	return nil
}

func (s *MongoProductStore) GetByID(ctx context.Context, id string) (*model.Product, error) {
	p := &model.Product{}
	if err := s.products.FindOne(ctx, bson.M{"_id": id}).Decode(p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetProduct: %w", err)
	}
	return p, nil
}

func (s *MongoProductStore) ListApproved(ctx context.Context) ([]model.Product, error) {
	return s.list(ctx, bson.M{"is_approved": true})
}

func (s *MongoProductStore) ListPending(ctx context.Context) ([]model.Product, error) {
	return s.list(ctx, bson.M{"is_approved": false})
}

func (s *MongoProductStore) ListByVendor(ctx context.Context, vendorID string) ([]model.Product, error) {
	return s.list(ctx, bson.M{"vendor_id": vendorID})
}

func (s *MongoProductStore) Update(ctx context.Context, id string, upd ProductUpdate) (*model.Product, error) {
	return s.findOneAndUpdate(ctx, bson.M{"_id": id}, updateDoc(upd))
}

func (s *MongoProductStore) UpdateOwned(ctx context.Context, id, vendorID string, upd ProductUpdate) (*model.Product, error) {
	return s.findOneAndUpdate(ctx, bson.M{"_id": id, "vendor_id": vendorID}, updateDoc(upd))
}

func (s *MongoProductStore) SetApproved(ctx context.Context, id string) (*model.Product, error) {
	return s.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_approved": true}})
}

func (s *MongoProductStore) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, bson.M{"_id": id})
}

func (s *MongoProductStore) DeleteOwned(ctx context.Context, id, vendorID string) error {
	return s.delete(ctx, bson.M{"_id": id, "vendor_id": vendorID})
}

func (s *MongoProductStore) list(ctx context.Context, filter bson.M) ([]model.Product, error) {
	cur, err := s.products.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	products := []model.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func (s *MongoProductStore) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*model.Product, error) {
	p := &model.Product{}
	err := s.products.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UpdateProduct: %w", err)
	}
	return p, nil
}

func (s *MongoProductStore) delete(ctx context.Context, filter bson.M) error {
	res, err := s.products.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func updateDoc(upd ProductUpdate) bson.M {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	return bson.M{"$set": set}
}
