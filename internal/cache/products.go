package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"storefront/internal/model"
)

const (
	approvedProductsKey = "products:approved"
	approvedProductsTTL = time.Minute
)

// GetApprovedProducts returns the cached approved listing, or ok=false on
// a miss or any cache failure. The cache is never authoritative.
func GetApprovedProducts(ctx context.Context, c Cache) ([]model.Product, bool) {
	raw, err := c.Get(ctx, approvedProductsKey).Result()
	if err != nil {
		return nil, false
	}
	var products []model.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetApprovedProducts stores the approved listing with a short TTL.
// Failures are logged and swallowed.
func SetApprovedProducts(ctx context.Context, c Cache, products []model.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		log.Printf("cache approved products: %v", err)
		return
	}
	if err := c.Set(ctx, approvedProductsKey, raw, approvedProductsTTL).Err(); err != nil {
		log.Printf("cache approved products: %v", err)
	}
}

// InvalidateApprovedProducts drops the cached listing after an approval
// or deletion changes public visibility.
func InvalidateApprovedProducts(ctx context.Context, c Cache) {
	if err := c.Del(ctx, approvedProductsKey).Err(); err != nil {
		log.Printf("invalidate approved products: %v", err)
	}
}
