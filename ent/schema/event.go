package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the append-only
// progress event log. Rows back the WebSocket catchup query; delivery to
// connected observers happens in-process.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel").
			Comment("Delivery channel, e.g. job:42"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Event payload exactly as sent to observers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "created_at"),
	}
}
