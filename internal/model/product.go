// File: internal/model/product.go
package model

import "time"

// Product is a catalog record owned by exactly one vendor. It is created
// unapproved and becomes publicly visible only after an admin flips
// IsApproved. AssetKey identifies the image object on the media host.
type Product struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	AssetKey    string    `bson:"asset_key" json:"asset_key"`
	VendorID    string    `bson:"vendor_id" json:"vendor_id"`
	IsApproved  bool      `bson:"is_approved" json:"is_approved"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Status renders the approval flag the way the listing endpoints expose it.
func (p Product) Status() string {
	if p.IsApproved {
		return "approved"
	}
	return "pending"
}
