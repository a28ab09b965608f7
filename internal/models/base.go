package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names. The store's native `_id` is renamed to `id` in
// every API response via the json tags on Base.
const (
	CollectionCasino    = "casino"
	CollectionOffer     = "offer"
	CollectionReview    = "review"
	CollectionClick     = "click"
	CollectionAdminUser = "adminuser"
	CollectionBlogPost  = "blogpost"
	CollectionMedia     = "media"
)

// Base is embedded by every stored document. Timestamps are stamped
// by the persistence gateway, never by callers.
type Base struct {
	ID        primitive.ObjectID `json:"id"         bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}
