package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageContent is the persisted override for one page in one locale. The data
// payload is page-shape-specific and stored opaquely; locale variants of a page
// are expected (not enforced) to share the same shape.
type PageContent struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	PageKey   string                 `bson:"pageKey" json:"pageKey"`
	Locale    string                 `bson:"locale" json:"locale"`
	Data      map[string]interface{} `bson:"data" json:"data"`
	UpdatedAt time.Time              `bson:"updatedAt" json:"updatedAt"`
}
