// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[3]},
			},
		},
	}
	// ReviewJobsColumns holds the columns for the "review_jobs" table.
	ReviewJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "domain", Type: field.TypeString},
		{Name: "division", Type: field.TypeString},
		{Name: "proposal_content", Type: field.TypeString, Size: 2147483647},
		{Name: "segments", Type: field.TypeJSON, Nullable: true},
		{Name: "hitl_stages", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "human_decision", Type: field.TypeEnum, Enums: []string{"pending", "approved", "on-hold"}, Default: "pending"},
		{Name: "llm_decision", Type: field.TypeEnum, Enums: []string{"pending", "approved", "on-hold"}, Default: "pending"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "source_page_id", Type: field.TypeString, Nullable: true},
		{Name: "source_page_url", Type: field.TypeString, Nullable: true},
		{Name: "enable_sequential_thinking", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReviewJobsTable holds the schema information for the "review_jobs" table.
	ReviewJobsTable = &schema.Table{
		Name:       "review_jobs",
		Columns:    ReviewJobsColumns,
		PrimaryKey: []*schema.Column{ReviewJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewjob_status",
				Unique:  false,
				Columns: []*schema.Column{ReviewJobsColumns[7]},
			},
			{
				Name:    "reviewjob_human_decision",
				Unique:  false,
				Columns: []*schema.Column{ReviewJobsColumns[8]},
			},
			{
				Name:    "reviewjob_llm_decision",
				Unique:  false,
				Columns: []*schema.Column{ReviewJobsColumns[9]},
			},
			{
				Name:    "reviewjob_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewJobsColumns[14]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		ReviewJobsTable,
	}
)

func init() {
}
