package forms

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field types
const (
	FieldInput    = "input"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
)

// FormDefinition is the admin-authored schema of a multi-step form. At most one
// exists per pageKey.
type FormDefinition struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PageKey   string             `bson:"pageKey" json:"pageKey"`
	Steps     []Step             `bson:"steps" json:"steps"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Step struct {
	ID     string            `bson:"id" json:"id"`
	Title  map[string]string `bson:"title" json:"title"` // { "en": ..., "hy": ... }
	Fields []Field           `bson:"fields" json:"fields"`
}

type Field struct {
	ID          string            `bson:"id" json:"id"`
	Type        string            `bson:"type" json:"type"`
	Label       map[string]string `bson:"label" json:"label"`
	Placeholder map[string]string `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required    bool              `bson:"required" json:"required"`
	Options     []Option          `bson:"options,omitempty" json:"options,omitempty"` // select only
}

type Option struct {
	Value string            `bson:"value" json:"value"`
	Label map[string]string `bson:"label" json:"label"`
}

// FormSubmission is one visitor's answers to a FormDefinition. Data is keyed
// step_{stepIndex} -> field_{fieldIndex} -> value and stored verbatim.
type FormSubmission struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	FormID    primitive.ObjectID     `bson:"formId" json:"formId"`
	PageKey   string                 `bson:"pageKey" json:"pageKey"`
	Data      map[string]interface{} `bson:"data" json:"data"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
}
