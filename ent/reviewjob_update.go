// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/koreview/revu/ent/predicate"
	"github.com/koreview/revu/ent/reviewjob"
	"github.com/koreview/revu/pkg/models"
)

// ReviewJobUpdate is the builder for updating ReviewJob entities.
type ReviewJobUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewJobMutation
}

// Where appends a list predicates to the ReviewJobUpdate builder.
func (_u *ReviewJobUpdate) Where(ps ...predicate.ReviewJob) *ReviewJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReviewJobUpdate) SetTitle(v string) *ReviewJobUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableTitle(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *ReviewJobUpdate) SetDomain(v string) *ReviewJobUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableDomain(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetDivision sets the "division" field.
func (_u *ReviewJobUpdate) SetDivision(v string) *ReviewJobUpdate {
	_u.mutation.SetDivision(v)
	return _u
}

// SetNillableDivision sets the "division" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableDivision(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetDivision(*v)
	}
	return _u
}

// SetProposalContent sets the "proposal_content" field.
func (_u *ReviewJobUpdate) SetProposalContent(v string) *ReviewJobUpdate {
	_u.mutation.SetProposalContent(v)
	return _u
}

// SetNillableProposalContent sets the "proposal_content" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableProposalContent(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetProposalContent(*v)
	}
	return _u
}

// SetSegments sets the "segments" field.
func (_u *ReviewJobUpdate) SetSegments(v []models.Segment) *ReviewJobUpdate {
	_u.mutation.SetSegments(v)
	return _u
}

// AppendSegments appends value to the "segments" field.
func (_u *ReviewJobUpdate) AppendSegments(v []models.Segment) *ReviewJobUpdate {
	_u.mutation.AppendSegments(v)
	return _u
}

// ClearSegments clears the value of the "segments" field.
func (_u *ReviewJobUpdate) ClearSegments() *ReviewJobUpdate {
	_u.mutation.ClearSegments()
	return _u
}

// SetHitlStages sets the "hitl_stages" field.
func (_u *ReviewJobUpdate) SetHitlStages(v []int) *ReviewJobUpdate {
	_u.mutation.SetHitlStages(v)
	return _u
}

// AppendHitlStages appends value to the "hitl_stages" field.
func (_u *ReviewJobUpdate) AppendHitlStages(v []int) *ReviewJobUpdate {
	_u.mutation.AppendHitlStages(v)
	return _u
}

// ClearHitlStages clears the value of the "hitl_stages" field.
func (_u *ReviewJobUpdate) ClearHitlStages() *ReviewJobUpdate {
	_u.mutation.ClearHitlStages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewJobUpdate) SetStatus(v string) *ReviewJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableStatus(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHumanDecision sets the "human_decision" field.
func (_u *ReviewJobUpdate) SetHumanDecision(v reviewjob.HumanDecision) *ReviewJobUpdate {
	_u.mutation.SetHumanDecision(v)
	return _u
}

// SetNillableHumanDecision sets the "human_decision" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableHumanDecision(v *reviewjob.HumanDecision) *ReviewJobUpdate {
	if v != nil {
		_u.SetHumanDecision(*v)
	}
	return _u
}

// SetLlmDecision sets the "llm_decision" field.
func (_u *ReviewJobUpdate) SetLlmDecision(v reviewjob.LlmDecision) *ReviewJobUpdate {
	_u.mutation.SetLlmDecision(v)
	return _u
}

// SetNillableLlmDecision sets the "llm_decision" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableLlmDecision(v *reviewjob.LlmDecision) *ReviewJobUpdate {
	if v != nil {
		_u.SetLlmDecision(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ReviewJobUpdate) SetMetadata(v models.Metadata) *ReviewJobUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableMetadata(v *models.Metadata) *ReviewJobUpdate {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ReviewJobUpdate) ClearMetadata() *ReviewJobUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSourcePageID sets the "source_page_id" field.
func (_u *ReviewJobUpdate) SetSourcePageID(v string) *ReviewJobUpdate {
	_u.mutation.SetSourcePageID(v)
	return _u
}

// SetNillableSourcePageID sets the "source_page_id" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableSourcePageID(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetSourcePageID(*v)
	}
	return _u
}

// ClearSourcePageID clears the value of the "source_page_id" field.
func (_u *ReviewJobUpdate) ClearSourcePageID() *ReviewJobUpdate {
	_u.mutation.ClearSourcePageID()
	return _u
}

// SetSourcePageURL sets the "source_page_url" field.
func (_u *ReviewJobUpdate) SetSourcePageURL(v string) *ReviewJobUpdate {
	_u.mutation.SetSourcePageURL(v)
	return _u
}

// SetNillableSourcePageURL sets the "source_page_url" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableSourcePageURL(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetSourcePageURL(*v)
	}
	return _u
}

// ClearSourcePageURL clears the value of the "source_page_url" field.
func (_u *ReviewJobUpdate) ClearSourcePageURL() *ReviewJobUpdate {
	_u.mutation.ClearSourcePageURL()
	return _u
}

// SetEnableSequentialThinking sets the "enable_sequential_thinking" field.
func (_u *ReviewJobUpdate) SetEnableSequentialThinking(v bool) *ReviewJobUpdate {
	_u.mutation.SetEnableSequentialThinking(v)
	return _u
}

// SetNillableEnableSequentialThinking sets the "enable_sequential_thinking" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableEnableSequentialThinking(v *bool) *ReviewJobUpdate {
	if v != nil {
		_u.SetEnableSequentialThinking(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewJobUpdate) SetUpdatedAt(v time.Time) *ReviewJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewJobMutation object of the builder.
func (_u *ReviewJobUpdate) Mutation() *ReviewJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewJobUpdate) check() error {
	if v, ok := _u.mutation.HumanDecision(); ok {
		if err := reviewjob.HumanDecisionValidator(v); err != nil {
			return &ValidationError{Name: "human_decision", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.human_decision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LlmDecision(); ok {
		if err := reviewjob.LlmDecisionValidator(v); err != nil {
			return &ValidationError{Name: "llm_decision", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.llm_decision": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewjob.Table, reviewjob.Columns, sqlgraph.NewFieldSpec(reviewjob.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(reviewjob.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(reviewjob.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Division(); ok {
		_spec.SetField(reviewjob.FieldDivision, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposalContent(); ok {
		_spec.SetField(reviewjob.FieldProposalContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Segments(); ok {
		_spec.SetField(reviewjob.FieldSegments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewjob.FieldSegments, value)
		})
	}
	if _u.mutation.SegmentsCleared() {
		_spec.ClearField(reviewjob.FieldSegments, field.TypeJSON)
	}
	if value, ok := _u.mutation.HitlStages(); ok {
		_spec.SetField(reviewjob.FieldHitlStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHitlStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewjob.FieldHitlStages, value)
		})
	}
	if _u.mutation.HitlStagesCleared() {
		_spec.ClearField(reviewjob.FieldHitlStages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.HumanDecision(); ok {
		_spec.SetField(reviewjob.FieldHumanDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LlmDecision(); ok {
		_spec.SetField(reviewjob.FieldLlmDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(reviewjob.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(reviewjob.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourcePageID(); ok {
		_spec.SetField(reviewjob.FieldSourcePageID, field.TypeString, value)
	}
	if _u.mutation.SourcePageIDCleared() {
		_spec.ClearField(reviewjob.FieldSourcePageID, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePageURL(); ok {
		_spec.SetField(reviewjob.FieldSourcePageURL, field.TypeString, value)
	}
	if _u.mutation.SourcePageURLCleared() {
		_spec.ClearField(reviewjob.FieldSourcePageURL, field.TypeString)
	}
	if value, ok := _u.mutation.EnableSequentialThinking(); ok {
		_spec.SetField(reviewjob.FieldEnableSequentialThinking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewJobUpdateOne is the builder for updating a single ReviewJob entity.
type ReviewJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewJobMutation
}

// SetTitle sets the "title" field.
func (_u *ReviewJobUpdateOne) SetTitle(v string) *ReviewJobUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableTitle(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *ReviewJobUpdateOne) SetDomain(v string) *ReviewJobUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableDomain(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetDivision sets the "division" field.
func (_u *ReviewJobUpdateOne) SetDivision(v string) *ReviewJobUpdateOne {
	_u.mutation.SetDivision(v)
	return _u
}

// SetNillableDivision sets the "division" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableDivision(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetDivision(*v)
	}
	return _u
}

// SetProposalContent sets the "proposal_content" field.
func (_u *ReviewJobUpdateOne) SetProposalContent(v string) *ReviewJobUpdateOne {
	_u.mutation.SetProposalContent(v)
	return _u
}

// SetNillableProposalContent sets the "proposal_content" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableProposalContent(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetProposalContent(*v)
	}
	return _u
}

// SetSegments sets the "segments" field.
func (_u *ReviewJobUpdateOne) SetSegments(v []models.Segment) *ReviewJobUpdateOne {
	_u.mutation.SetSegments(v)
	return _u
}

// AppendSegments appends value to the "segments" field.
func (_u *ReviewJobUpdateOne) AppendSegments(v []models.Segment) *ReviewJobUpdateOne {
	_u.mutation.AppendSegments(v)
	return _u
}

// ClearSegments clears the value of the "segments" field.
func (_u *ReviewJobUpdateOne) ClearSegments() *ReviewJobUpdateOne {
	_u.mutation.ClearSegments()
	return _u
}

// SetHitlStages sets the "hitl_stages" field.
func (_u *ReviewJobUpdateOne) SetHitlStages(v []int) *ReviewJobUpdateOne {
	_u.mutation.SetHitlStages(v)
	return _u
}

// AppendHitlStages appends value to the "hitl_stages" field.
func (_u *ReviewJobUpdateOne) AppendHitlStages(v []int) *ReviewJobUpdateOne {
	_u.mutation.AppendHitlStages(v)
	return _u
}

// ClearHitlStages clears the value of the "hitl_stages" field.
func (_u *ReviewJobUpdateOne) ClearHitlStages() *ReviewJobUpdateOne {
	_u.mutation.ClearHitlStages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewJobUpdateOne) SetStatus(v string) *ReviewJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableStatus(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHumanDecision sets the "human_decision" field.
func (_u *ReviewJobUpdateOne) SetHumanDecision(v reviewjob.HumanDecision) *ReviewJobUpdateOne {
	_u.mutation.SetHumanDecision(v)
	return _u
}

// SetNillableHumanDecision sets the "human_decision" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableHumanDecision(v *reviewjob.HumanDecision) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetHumanDecision(*v)
	}
	return _u
}

// SetLlmDecision sets the "llm_decision" field.
func (_u *ReviewJobUpdateOne) SetLlmDecision(v reviewjob.LlmDecision) *ReviewJobUpdateOne {
	_u.mutation.SetLlmDecision(v)
	return _u
}

// SetNillableLlmDecision sets the "llm_decision" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableLlmDecision(v *reviewjob.LlmDecision) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetLlmDecision(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ReviewJobUpdateOne) SetMetadata(v models.Metadata) *ReviewJobUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableMetadata(v *models.Metadata) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ReviewJobUpdateOne) ClearMetadata() *ReviewJobUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSourcePageID sets the "source_page_id" field.
func (_u *ReviewJobUpdateOne) SetSourcePageID(v string) *ReviewJobUpdateOne {
	_u.mutation.SetSourcePageID(v)
	return _u
}

// SetNillableSourcePageID sets the "source_page_id" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableSourcePageID(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetSourcePageID(*v)
	}
	return _u
}

// ClearSourcePageID clears the value of the "source_page_id" field.
func (_u *ReviewJobUpdateOne) ClearSourcePageID() *ReviewJobUpdateOne {
	_u.mutation.ClearSourcePageID()
	return _u
}

// SetSourcePageURL sets the "source_page_url" field.
func (_u *ReviewJobUpdateOne) SetSourcePageURL(v string) *ReviewJobUpdateOne {
	_u.mutation.SetSourcePageURL(v)
	return _u
}

// SetNillableSourcePageURL sets the "source_page_url" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableSourcePageURL(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetSourcePageURL(*v)
	}
	return _u
}

// ClearSourcePageURL clears the value of the "source_page_url" field.
func (_u *ReviewJobUpdateOne) ClearSourcePageURL() *ReviewJobUpdateOne {
	_u.mutation.ClearSourcePageURL()
	return _u
}

// SetEnableSequentialThinking sets the "enable_sequential_thinking" field.
func (_u *ReviewJobUpdateOne) SetEnableSequentialThinking(v bool) *ReviewJobUpdateOne {
	_u.mutation.SetEnableSequentialThinking(v)
	return _u
}

// SetNillableEnableSequentialThinking sets the "enable_sequential_thinking" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableEnableSequentialThinking(v *bool) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetEnableSequentialThinking(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewJobUpdateOne) SetUpdatedAt(v time.Time) *ReviewJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewJobMutation object of the builder.
func (_u *ReviewJobUpdateOne) Mutation() *ReviewJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewJobUpdate builder.
func (_u *ReviewJobUpdateOne) Where(ps ...predicate.ReviewJob) *ReviewJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewJobUpdateOne) Select(field string, fields ...string) *ReviewJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewJob entity.
func (_u *ReviewJobUpdateOne) Save(ctx context.Context) (*ReviewJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewJobUpdateOne) SaveX(ctx context.Context) *ReviewJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewJobUpdateOne) check() error {
	if v, ok := _u.mutation.HumanDecision(); ok {
		if err := reviewjob.HumanDecisionValidator(v); err != nil {
			return &ValidationError{Name: "human_decision", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.human_decision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LlmDecision(); ok {
		if err := reviewjob.LlmDecisionValidator(v); err != nil {
			return &ValidationError{Name: "llm_decision", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.llm_decision": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewJobUpdateOne) sqlSave(ctx context.Context) (_node *ReviewJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewjob.Table, reviewjob.Columns, sqlgraph.NewFieldSpec(reviewjob.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewjob.FieldID)
		for _, f := range fields {
			if !reviewjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(reviewjob.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(reviewjob.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Division(); ok {
		_spec.SetField(reviewjob.FieldDivision, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposalContent(); ok {
		_spec.SetField(reviewjob.FieldProposalContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Segments(); ok {
		_spec.SetField(reviewjob.FieldSegments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewjob.FieldSegments, value)
		})
	}
	if _u.mutation.SegmentsCleared() {
		_spec.ClearField(reviewjob.FieldSegments, field.TypeJSON)
	}
	if value, ok := _u.mutation.HitlStages(); ok {
		_spec.SetField(reviewjob.FieldHitlStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHitlStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewjob.FieldHitlStages, value)
		})
	}
	if _u.mutation.HitlStagesCleared() {
		_spec.ClearField(reviewjob.FieldHitlStages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.HumanDecision(); ok {
		_spec.SetField(reviewjob.FieldHumanDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LlmDecision(); ok {
		_spec.SetField(reviewjob.FieldLlmDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(reviewjob.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(reviewjob.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourcePageID(); ok {
		_spec.SetField(reviewjob.FieldSourcePageID, field.TypeString, value)
	}
	if _u.mutation.SourcePageIDCleared() {
		_spec.ClearField(reviewjob.FieldSourcePageID, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePageURL(); ok {
		_spec.SetField(reviewjob.FieldSourcePageURL, field.TypeString, value)
	}
	if _u.mutation.SourcePageURLCleared() {
		_spec.ClearField(reviewjob.FieldSourcePageURL, field.TypeString)
	}
	if value, ok := _u.mutation.EnableSequentialThinking(); ok {
		_spec.SetField(reviewjob.FieldEnableSequentialThinking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ReviewJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
