// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/koreview/revu/ent/reviewjob"
	"github.com/koreview/revu/pkg/models"
)

// ReviewJob is the model entity for the ReviewJob schema.
type ReviewJob struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Short display title, at most 25 display characters
	Title string `json:"title,omitempty"`
	// Business domain tag (free form)
	Domain string `json:"domain,omitempty"`
	// Business division tag (free form)
	Division string `json:"division,omitempty"`
	// Full proposal text (substring searchable)
	ProposalContent string `json:"proposal_content,omitempty"`
	// Independently reviewed units; empty means single-segment
	Segments []models.Segment `json:"segments,omitempty"`
	// Stage numbers (2..6) that pause for human feedback
	HitlStages []int `json:"hitl_stages,omitempty"`
	// Advisory progress label; open set
	Status string `json:"status,omitempty"`
	// Written only by the dashboard
	HumanDecision reviewjob.HumanDecision `json:"human_decision,omitempty"`
	// Written only by the review pipeline
	LlmDecision reviewjob.LlmDecision `json:"llm_decision,omitempty"`
	// Structured bag: agent_results, report, final_decision, ...
	Metadata models.Metadata `json:"metadata,omitempty"`
	// External wiki page id when submitted from page references
	SourcePageID *string `json:"source_page_id,omitempty"`
	// SourcePageURL holds the value of the "source_page_url" field.
	SourcePageURL *string `json:"source_page_url,omitempty"`
	// Forwarded to the LLM gateway as a reasoning flag
	EnableSequentialThinking bool `json:"enable_sequential_thinking,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewjob.FieldSegments, reviewjob.FieldHitlStages, reviewjob.FieldMetadata:
			values[i] = new([]byte)
		case reviewjob.FieldEnableSequentialThinking:
			values[i] = new(sql.NullBool)
		case reviewjob.FieldID:
			values[i] = new(sql.NullInt64)
		case reviewjob.FieldTitle, reviewjob.FieldDomain, reviewjob.FieldDivision, reviewjob.FieldProposalContent, reviewjob.FieldStatus, reviewjob.FieldHumanDecision, reviewjob.FieldLlmDecision, reviewjob.FieldSourcePageID, reviewjob.FieldSourcePageURL:
			values[i] = new(sql.NullString)
		case reviewjob.FieldCreatedAt, reviewjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewJob fields.
func (_m *ReviewJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewjob.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewjob.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case reviewjob.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case reviewjob.FieldDivision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field division", values[i])
			} else if value.Valid {
				_m.Division = value.String
			}
		case reviewjob.FieldProposalContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_content", values[i])
			} else if value.Valid {
				_m.ProposalContent = value.String
			}
		case reviewjob.FieldSegments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field segments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Segments); err != nil {
					return fmt.Errorf("unmarshal field segments: %w", err)
				}
			}
		case reviewjob.FieldHitlStages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hitl_stages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HitlStages); err != nil {
					return fmt.Errorf("unmarshal field hitl_stages: %w", err)
				}
			}
		case reviewjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case reviewjob.FieldHumanDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field human_decision", values[i])
			} else if value.Valid {
				_m.HumanDecision = reviewjob.HumanDecision(value.String)
			}
		case reviewjob.FieldLlmDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_decision", values[i])
			} else if value.Valid {
				_m.LlmDecision = reviewjob.LlmDecision(value.String)
			}
		case reviewjob.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case reviewjob.FieldSourcePageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_page_id", values[i])
			} else if value.Valid {
				_m.SourcePageID = new(string)
				*_m.SourcePageID = value.String
			}
		case reviewjob.FieldSourcePageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_page_url", values[i])
			} else if value.Valid {
				_m.SourcePageURL = new(string)
				*_m.SourcePageURL = value.String
			}
		case reviewjob.FieldEnableSequentialThinking:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enable_sequential_thinking", values[i])
			} else if value.Valid {
				_m.EnableSequentialThinking = value.Bool
			}
		case reviewjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reviewjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewJob.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewJob.
// Note that you need to call ReviewJob.Unwrap() before calling this method if this ReviewJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewJob) Update() *ReviewJobUpdateOne {
	return NewReviewJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewJob) Unwrap() *ReviewJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewJob) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("division=")
	builder.WriteString(_m.Division)
	builder.WriteString(", ")
	builder.WriteString("proposal_content=")
	builder.WriteString(_m.ProposalContent)
	builder.WriteString(", ")
	builder.WriteString("segments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Segments))
	builder.WriteString(", ")
	builder.WriteString("hitl_stages=")
	builder.WriteString(fmt.Sprintf("%v", _m.HitlStages))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("human_decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.HumanDecision))
	builder.WriteString(", ")
	builder.WriteString("llm_decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmDecision))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.SourcePageID; v != nil {
		builder.WriteString("source_page_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourcePageURL; v != nil {
		builder.WriteString("source_page_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("enable_sequential_thinking=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnableSequentialThinking))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewJobs is a parsable slice of ReviewJob.
type ReviewJobs []*ReviewJob
