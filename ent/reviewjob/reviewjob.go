// Code generated by ent, DO NOT EDIT.

package reviewjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewjob type in the database.
	Label = "review_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldDivision holds the string denoting the division field in the database.
	FieldDivision = "division"
	// FieldProposalContent holds the string denoting the proposal_content field in the database.
	FieldProposalContent = "proposal_content"
	// FieldSegments holds the string denoting the segments field in the database.
	FieldSegments = "segments"
	// FieldHitlStages holds the string denoting the hitl_stages field in the database.
	FieldHitlStages = "hitl_stages"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldHumanDecision holds the string denoting the human_decision field in the database.
	FieldHumanDecision = "human_decision"
	// FieldLlmDecision holds the string denoting the llm_decision field in the database.
	FieldLlmDecision = "llm_decision"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldSourcePageID holds the string denoting the source_page_id field in the database.
	FieldSourcePageID = "source_page_id"
	// FieldSourcePageURL holds the string denoting the source_page_url field in the database.
	FieldSourcePageURL = "source_page_url"
	// FieldEnableSequentialThinking holds the string denoting the enable_sequential_thinking field in the database.
	FieldEnableSequentialThinking = "enable_sequential_thinking"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the reviewjob in the database.
	Table = "review_jobs"
)

// Columns holds all SQL columns for reviewjob fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDomain,
	FieldDivision,
	FieldProposalContent,
	FieldSegments,
	FieldHitlStages,
	FieldStatus,
	FieldHumanDecision,
	FieldLlmDecision,
	FieldMetadata,
	FieldSourcePageID,
	FieldSourcePageURL,
	FieldEnableSequentialThinking,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultEnableSequentialThinking holds the default value on creation for the "enable_sequential_thinking" field.
	DefaultEnableSequentialThinking bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// HumanDecision defines the type for the "human_decision" enum field.
type HumanDecision string

// HumanDecisionPending is the default value of the HumanDecision enum.
const DefaultHumanDecision = HumanDecisionPending

// HumanDecision values.
const (
	HumanDecisionPending  HumanDecision = "pending"
	HumanDecisionApproved HumanDecision = "approved"
	HumanDecisionOnHold   HumanDecision = "on-hold"
)

func (hd HumanDecision) String() string {
	return string(hd)
}

// HumanDecisionValidator is a validator for the "human_decision" field enum values. It is called by the builders before save.
func HumanDecisionValidator(hd HumanDecision) error {
	switch hd {
	case HumanDecisionPending, HumanDecisionApproved, HumanDecisionOnHold:
		return nil
	default:
		return fmt.Errorf("reviewjob: invalid enum value for human_decision field: %q", hd)
	}
}

// LlmDecision defines the type for the "llm_decision" enum field.
type LlmDecision string

// LlmDecisionPending is the default value of the LlmDecision enum.
const DefaultLlmDecision = LlmDecisionPending

// LlmDecision values.
const (
	LlmDecisionPending  LlmDecision = "pending"
	LlmDecisionApproved LlmDecision = "approved"
	LlmDecisionOnHold   LlmDecision = "on-hold"
)

func (ld LlmDecision) String() string {
	return string(ld)
}

// LlmDecisionValidator is a validator for the "llm_decision" field enum values. It is called by the builders before save.
func LlmDecisionValidator(ld LlmDecision) error {
	switch ld {
	case LlmDecisionPending, LlmDecisionApproved, LlmDecisionOnHold:
		return nil
	default:
		return fmt.Errorf("reviewjob: invalid enum value for llm_decision field: %q", ld)
	}
}

// OrderOption defines the ordering options for the ReviewJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByDivision orders the results by the division field.
func ByDivision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDivision, opts...).ToFunc()
}

// ByProposalContent orders the results by the proposal_content field.
func ByProposalContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalContent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByHumanDecision orders the results by the human_decision field.
func ByHumanDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanDecision, opts...).ToFunc()
}

// ByLlmDecision orders the results by the llm_decision field.
func ByLlmDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmDecision, opts...).ToFunc()
}

// BySourcePageID orders the results by the source_page_id field.
func BySourcePageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePageID, opts...).ToFunc()
}

// BySourcePageURL orders the results by the source_page_url field.
func BySourcePageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePageURL, opts...).ToFunc()
}

// ByEnableSequentialThinking orders the results by the enable_sequential_thinking field.
func ByEnableSequentialThinking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnableSequentialThinking, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
