package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/koreview/revu/pkg/models"
)

// ReviewJob holds the schema definition for the ReviewJob entity.
// The integer primary key is auto-incrementing: job ids are monotonic
// and never reused.
type ReviewJob struct {
	ent.Schema
}

// Fields of the ReviewJob.
func (ReviewJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			Default("").
			Comment("Short display title, at most 25 display characters"),
		field.String("domain").
			Comment("Business domain tag (free form)"),
		field.String("division").
			Comment("Business division tag (free form)"),
		field.Text("proposal_content").
			Comment("Full proposal text (substring searchable)"),
		field.JSON("segments", []models.Segment{}).
			Optional().
			Comment("Independently reviewed units; empty means single-segment"),
		field.JSON("hitl_stages", []int{}).
			Optional().
			Comment("Stage numbers (2..6) that pause for human feedback"),
		field.String("status").
			Default("pending").
			Comment("Advisory progress label; open set"),
		field.Enum("human_decision").
			Values("pending", "approved", "on-hold").
			Default("pending").
			Comment("Written only by the dashboard"),
		field.Enum("llm_decision").
			Values("pending", "approved", "on-hold").
			Default("pending").
			Comment("Written only by the review pipeline"),
		field.JSON("metadata", models.Metadata{}).
			Optional().
			Comment("Structured bag: agent_results, report, final_decision, ..."),
		field.String("source_page_id").
			Optional().
			Nillable().
			Comment("External wiki page id when submitted from page references"),
		field.String("source_page_url").
			Optional().
			Nillable(),
		field.Bool("enable_sequential_thinking").
			Default(false).
			Comment("Forwarded to the LLM gateway as a reasoning flag"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ReviewJob.
func (ReviewJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("human_decision"),
		index.Fields("llm_decision"),
		index.Fields("created_at"),
	}
}
