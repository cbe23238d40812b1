package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Object holds the schema definition for one object in the living image:
// an attribute mapping, a method mapping, and outbound prototype edges.
type Object struct {
	ent.Schema
}

// Fields of the Object.
func (Object) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("object_id").
			Unique().
			Immutable(),
		field.JSON("attributes", map[string]any{}).
			Optional(),
		field.JSON("methods", map[string]string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Object. "prototypes" are the outbound delegation edges the
// resolver walks; "children" is the inverse.
func (Object) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("prototypes", Object.Type),
		edge.From("children", Object.Type).
			Ref("prototypes"),
	}
}
