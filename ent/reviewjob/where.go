// Code generated by ent, DO NOT EDIT.

package reviewjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/koreview/revu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldTitle, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldDomain, v))
}

// Division applies equality check predicate on the "division" field. It's identical to DivisionEQ.
func Division(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldDivision, v))
}

// ProposalContent applies equality check predicate on the "proposal_content" field. It's identical to ProposalContentEQ.
func ProposalContent(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldProposalContent, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldStatus, v))
}

// SourcePageID applies equality check predicate on the "source_page_id" field. It's identical to SourcePageIDEQ.
func SourcePageID(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldSourcePageID, v))
}

// SourcePageURL applies equality check predicate on the "source_page_url" field. It's identical to SourcePageURLEQ.
func SourcePageURL(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldSourcePageURL, v))
}

// EnableSequentialThinking applies equality check predicate on the "enable_sequential_thinking" field. It's identical to EnableSequentialThinkingEQ.
func EnableSequentialThinking(v bool) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldEnableSequentialThinking, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldTitle, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldDomain, v))
}

// DivisionEQ applies the EQ predicate on the "division" field.
func DivisionEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldDivision, v))
}

// DivisionNEQ applies the NEQ predicate on the "division" field.
func DivisionNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldDivision, v))
}

// DivisionIn applies the In predicate on the "division" field.
func DivisionIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldDivision, vs...))
}

// DivisionNotIn applies the NotIn predicate on the "division" field.
func DivisionNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldDivision, vs...))
}

// DivisionGT applies the GT predicate on the "division" field.
func DivisionGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldDivision, v))
}

// DivisionGTE applies the GTE predicate on the "division" field.
func DivisionGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldDivision, v))
}

// DivisionLT applies the LT predicate on the "division" field.
func DivisionLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldDivision, v))
}

// DivisionLTE applies the LTE predicate on the "division" field.
func DivisionLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldDivision, v))
}

// DivisionContains applies the Contains predicate on the "division" field.
func DivisionContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldDivision, v))
}

// DivisionHasPrefix applies the HasPrefix predicate on the "division" field.
func DivisionHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldDivision, v))
}

// DivisionHasSuffix applies the HasSuffix predicate on the "division" field.
func DivisionHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldDivision, v))
}

// DivisionEqualFold applies the EqualFold predicate on the "division" field.
func DivisionEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldDivision, v))
}

// DivisionContainsFold applies the ContainsFold predicate on the "division" field.
func DivisionContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldDivision, v))
}

// ProposalContentEQ applies the EQ predicate on the "proposal_content" field.
func ProposalContentEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldProposalContent, v))
}

// ProposalContentNEQ applies the NEQ predicate on the "proposal_content" field.
func ProposalContentNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldProposalContent, v))
}

// ProposalContentIn applies the In predicate on the "proposal_content" field.
func ProposalContentIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldProposalContent, vs...))
}

// ProposalContentNotIn applies the NotIn predicate on the "proposal_content" field.
func ProposalContentNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldProposalContent, vs...))
}

// ProposalContentGT applies the GT predicate on the "proposal_content" field.
func ProposalContentGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldProposalContent, v))
}

// ProposalContentGTE applies the GTE predicate on the "proposal_content" field.
func ProposalContentGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldProposalContent, v))
}

// ProposalContentLT applies the LT predicate on the "proposal_content" field.
func ProposalContentLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldProposalContent, v))
}

// ProposalContentLTE applies the LTE predicate on the "proposal_content" field.
func ProposalContentLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldProposalContent, v))
}

// ProposalContentContains applies the Contains predicate on the "proposal_content" field.
func ProposalContentContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldProposalContent, v))
}

// ProposalContentHasPrefix applies the HasPrefix predicate on the "proposal_content" field.
func ProposalContentHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldProposalContent, v))
}

// ProposalContentHasSuffix applies the HasSuffix predicate on the "proposal_content" field.
func ProposalContentHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldProposalContent, v))
}

// ProposalContentEqualFold applies the EqualFold predicate on the "proposal_content" field.
func ProposalContentEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldProposalContent, v))
}

// ProposalContentContainsFold applies the ContainsFold predicate on the "proposal_content" field.
func ProposalContentContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldProposalContent, v))
}

// SegmentsIsNil applies the IsNil predicate on the "segments" field.
func SegmentsIsNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIsNull(FieldSegments))
}

// SegmentsNotNil applies the NotNil predicate on the "segments" field.
func SegmentsNotNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotNull(FieldSegments))
}

// HitlStagesIsNil applies the IsNil predicate on the "hitl_stages" field.
func HitlStagesIsNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIsNull(FieldHitlStages))
}

// HitlStagesNotNil applies the NotNil predicate on the "hitl_stages" field.
func HitlStagesNotNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotNull(FieldHitlStages))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldStatus, v))
}

// HumanDecisionEQ applies the EQ predicate on the "human_decision" field.
func HumanDecisionEQ(v HumanDecision) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldHumanDecision, v))
}

// HumanDecisionNEQ applies the NEQ predicate on the "human_decision" field.
func HumanDecisionNEQ(v HumanDecision) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldHumanDecision, v))
}

// HumanDecisionIn applies the In predicate on the "human_decision" field.
func HumanDecisionIn(vs ...HumanDecision) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldHumanDecision, vs...))
}

// HumanDecisionNotIn applies the NotIn predicate on the "human_decision" field.
func HumanDecisionNotIn(vs ...HumanDecision) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldHumanDecision, vs...))
}

// LlmDecisionEQ applies the EQ predicate on the "llm_decision" field.
func LlmDecisionEQ(v LlmDecision) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldLlmDecision, v))
}

// LlmDecisionNEQ applies the NEQ predicate on the "llm_decision" field.
func LlmDecisionNEQ(v LlmDecision) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldLlmDecision, v))
}

// LlmDecisionIn applies the In predicate on the "llm_decision" field.
func LlmDecisionIn(vs ...LlmDecision) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldLlmDecision, vs...))
}

// LlmDecisionNotIn applies the NotIn predicate on the "llm_decision" field.
func LlmDecisionNotIn(vs ...LlmDecision) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldLlmDecision, vs...))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotNull(FieldMetadata))
}

// SourcePageIDEQ applies the EQ predicate on the "source_page_id" field.
func SourcePageIDEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldSourcePageID, v))
}

// SourcePageIDNEQ applies the NEQ predicate on the "source_page_id" field.
func SourcePageIDNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldSourcePageID, v))
}

// SourcePageIDIn applies the In predicate on the "source_page_id" field.
func SourcePageIDIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldSourcePageID, vs...))
}

// SourcePageIDNotIn applies the NotIn predicate on the "source_page_id" field.
func SourcePageIDNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldSourcePageID, vs...))
}

// SourcePageIDGT applies the GT predicate on the "source_page_id" field.
func SourcePageIDGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldSourcePageID, v))
}

// SourcePageIDGTE applies the GTE predicate on the "source_page_id" field.
func SourcePageIDGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldSourcePageID, v))
}

// SourcePageIDLT applies the LT predicate on the "source_page_id" field.
func SourcePageIDLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldSourcePageID, v))
}

// SourcePageIDLTE applies the LTE predicate on the "source_page_id" field.
func SourcePageIDLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldSourcePageID, v))
}

// SourcePageIDContains applies the Contains predicate on the "source_page_id" field.
func SourcePageIDContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldSourcePageID, v))
}

// SourcePageIDHasPrefix applies the HasPrefix predicate on the "source_page_id" field.
func SourcePageIDHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldSourcePageID, v))
}

// SourcePageIDHasSuffix applies the HasSuffix predicate on the "source_page_id" field.
func SourcePageIDHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldSourcePageID, v))
}

// SourcePageIDIsNil applies the IsNil predicate on the "source_page_id" field.
func SourcePageIDIsNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIsNull(FieldSourcePageID))
}

// SourcePageIDNotNil applies the NotNil predicate on the "source_page_id" field.
func SourcePageIDNotNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotNull(FieldSourcePageID))
}

// SourcePageIDEqualFold applies the EqualFold predicate on the "source_page_id" field.
func SourcePageIDEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldSourcePageID, v))
}

// SourcePageIDContainsFold applies the ContainsFold predicate on the "source_page_id" field.
func SourcePageIDContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldSourcePageID, v))
}

// SourcePageURLEQ applies the EQ predicate on the "source_page_url" field.
func SourcePageURLEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldSourcePageURL, v))
}

// SourcePageURLNEQ applies the NEQ predicate on the "source_page_url" field.
func SourcePageURLNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldSourcePageURL, v))
}

// SourcePageURLIn applies the In predicate on the "source_page_url" field.
func SourcePageURLIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldSourcePageURL, vs...))
}

// SourcePageURLNotIn applies the NotIn predicate on the "source_page_url" field.
func SourcePageURLNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldSourcePageURL, vs...))
}

// SourcePageURLGT applies the GT predicate on the "source_page_url" field.
func SourcePageURLGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldSourcePageURL, v))
}

// SourcePageURLGTE applies the GTE predicate on the "source_page_url" field.
func SourcePageURLGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldSourcePageURL, v))
}

// SourcePageURLLT applies the LT predicate on the "source_page_url" field.
func SourcePageURLLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldSourcePageURL, v))
}

// SourcePageURLLTE applies the LTE predicate on the "source_page_url" field.
func SourcePageURLLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldSourcePageURL, v))
}

// SourcePageURLContains applies the Contains predicate on the "source_page_url" field.
func SourcePageURLContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldSourcePageURL, v))
}

// SourcePageURLHasPrefix applies the HasPrefix predicate on the "source_page_url" field.
func SourcePageURLHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldSourcePageURL, v))
}

// SourcePageURLHasSuffix applies the HasSuffix predicate on the "source_page_url" field.
func SourcePageURLHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldSourcePageURL, v))
}

// SourcePageURLIsNil applies the IsNil predicate on the "source_page_url" field.
func SourcePageURLIsNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIsNull(FieldSourcePageURL))
}

// SourcePageURLNotNil applies the NotNil predicate on the "source_page_url" field.
func SourcePageURLNotNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotNull(FieldSourcePageURL))
}

// SourcePageURLEqualFold applies the EqualFold predicate on the "source_page_url" field.
func SourcePageURLEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldSourcePageURL, v))
}

// SourcePageURLContainsFold applies the ContainsFold predicate on the "source_page_url" field.
func SourcePageURLContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldSourcePageURL, v))
}

// EnableSequentialThinkingEQ applies the EQ predicate on the "enable_sequential_thinking" field.
func EnableSequentialThinkingEQ(v bool) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldEnableSequentialThinking, v))
}

// EnableSequentialThinkingNEQ applies the NEQ predicate on the "enable_sequential_thinking" field.
func EnableSequentialThinkingNEQ(v bool) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldEnableSequentialThinking, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewJob) predicate.ReviewJob {
	return predicate.ReviewJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewJob) predicate.ReviewJob {
	return predicate.ReviewJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewJob) predicate.ReviewJob {
	return predicate.ReviewJob(sql.NotPredicates(p))
}
