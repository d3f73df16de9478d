// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/koreview/revu/ent/reviewjob"
	"github.com/koreview/revu/pkg/models"
)

// ReviewJobCreate is the builder for creating a ReviewJob entity.
type ReviewJobCreate struct {
	config
	mutation *ReviewJobMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ReviewJobCreate) SetTitle(v string) *ReviewJobCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableTitle(v *string) *ReviewJobCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDomain sets the "domain" field.
func (_c *ReviewJobCreate) SetDomain(v string) *ReviewJobCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetDivision sets the "division" field.
func (_c *ReviewJobCreate) SetDivision(v string) *ReviewJobCreate {
	_c.mutation.SetDivision(v)
	return _c
}

// SetProposalContent sets the "proposal_content" field.
func (_c *ReviewJobCreate) SetProposalContent(v string) *ReviewJobCreate {
	_c.mutation.SetProposalContent(v)
	return _c
}

// SetSegments sets the "segments" field.
func (_c *ReviewJobCreate) SetSegments(v []models.Segment) *ReviewJobCreate {
	_c.mutation.SetSegments(v)
	return _c
}

// SetHitlStages sets the "hitl_stages" field.
func (_c *ReviewJobCreate) SetHitlStages(v []int) *ReviewJobCreate {
	_c.mutation.SetHitlStages(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReviewJobCreate) SetStatus(v string) *ReviewJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableStatus(v *string) *ReviewJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetHumanDecision sets the "human_decision" field.
func (_c *ReviewJobCreate) SetHumanDecision(v reviewjob.HumanDecision) *ReviewJobCreate {
	_c.mutation.SetHumanDecision(v)
	return _c
}

// SetNillableHumanDecision sets the "human_decision" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableHumanDecision(v *reviewjob.HumanDecision) *ReviewJobCreate {
	if v != nil {
		_c.SetHumanDecision(*v)
	}
	return _c
}

// SetLlmDecision sets the "llm_decision" field.
func (_c *ReviewJobCreate) SetLlmDecision(v reviewjob.LlmDecision) *ReviewJobCreate {
	_c.mutation.SetLlmDecision(v)
	return _c
}

// SetNillableLlmDecision sets the "llm_decision" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableLlmDecision(v *reviewjob.LlmDecision) *ReviewJobCreate {
	if v != nil {
		_c.SetLlmDecision(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ReviewJobCreate) SetMetadata(v models.Metadata) *ReviewJobCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableMetadata(v *models.Metadata) *ReviewJobCreate {
	if v != nil {
		_c.SetMetadata(*v)
	}
	return _c
}

// SetSourcePageID sets the "source_page_id" field.
func (_c *ReviewJobCreate) SetSourcePageID(v string) *ReviewJobCreate {
	_c.mutation.SetSourcePageID(v)
	return _c
}

// SetNillableSourcePageID sets the "source_page_id" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableSourcePageID(v *string) *ReviewJobCreate {
	if v != nil {
		_c.SetSourcePageID(*v)
	}
	return _c
}

// SetSourcePageURL sets the "source_page_url" field.
func (_c *ReviewJobCreate) SetSourcePageURL(v string) *ReviewJobCreate {
	_c.mutation.SetSourcePageURL(v)
	return _c
}

// SetNillableSourcePageURL sets the "source_page_url" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableSourcePageURL(v *string) *ReviewJobCreate {
	if v != nil {
		_c.SetSourcePageURL(*v)
	}
	return _c
}

// SetEnableSequentialThinking sets the "enable_sequential_thinking" field.
func (_c *ReviewJobCreate) SetEnableSequentialThinking(v bool) *ReviewJobCreate {
	_c.mutation.SetEnableSequentialThinking(v)
	return _c
}

// SetNillableEnableSequentialThinking sets the "enable_sequential_thinking" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableEnableSequentialThinking(v *bool) *ReviewJobCreate {
	if v != nil {
		_c.SetEnableSequentialThinking(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewJobCreate) SetCreatedAt(v time.Time) *ReviewJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableCreatedAt(v *time.Time) *ReviewJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReviewJobCreate) SetUpdatedAt(v time.Time) *ReviewJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableUpdatedAt(v *time.Time) *ReviewJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewJobMutation object of the builder.
func (_c *ReviewJobCreate) Mutation() *ReviewJobMutation {
	return _c.mutation
}

// Save creates the ReviewJob in the database.
func (_c *ReviewJobCreate) Save(ctx context.Context) (*ReviewJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewJobCreate) SaveX(ctx context.Context) *ReviewJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewJobCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := reviewjob.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := reviewjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.HumanDecision(); !ok {
		v := reviewjob.DefaultHumanDecision
		_c.mutation.SetHumanDecision(v)
	}
	if _, ok := _c.mutation.LlmDecision(); !ok {
		v := reviewjob.DefaultLlmDecision
		_c.mutation.SetLlmDecision(v)
	}
	if _, ok := _c.mutation.EnableSequentialThinking(); !ok {
		v := reviewjob.DefaultEnableSequentialThinking
		_c.mutation.SetEnableSequentialThinking(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reviewjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reviewjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewJobCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ReviewJob.title"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "ReviewJob.domain"`)}
	}
	if _, ok := _c.mutation.Division(); !ok {
		return &ValidationError{Name: "division", err: errors.New(`ent: missing required field "ReviewJob.division"`)}
	}
	if _, ok := _c.mutation.ProposalContent(); !ok {
		return &ValidationError{Name: "proposal_content", err: errors.New(`ent: missing required field "ReviewJob.proposal_content"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReviewJob.status"`)}
	}
	if _, ok := _c.mutation.HumanDecision(); !ok {
		return &ValidationError{Name: "human_decision", err: errors.New(`ent: missing required field "ReviewJob.human_decision"`)}
	}
	if v, ok := _c.mutation.HumanDecision(); ok {
		if err := reviewjob.HumanDecisionValidator(v); err != nil {
			return &ValidationError{Name: "human_decision", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.human_decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LlmDecision(); !ok {
		return &ValidationError{Name: "llm_decision", err: errors.New(`ent: missing required field "ReviewJob.llm_decision"`)}
	}
	if v, ok := _c.mutation.LlmDecision(); ok {
		if err := reviewjob.LlmDecisionValidator(v); err != nil {
			return &ValidationError{Name: "llm_decision", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.llm_decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnableSequentialThinking(); !ok {
		return &ValidationError{Name: "enable_sequential_thinking", err: errors.New(`ent: missing required field "ReviewJob.enable_sequential_thinking"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReviewJob.updated_at"`)}
	}
	return nil
}

func (_c *ReviewJobCreate) sqlSave(ctx context.Context) (*ReviewJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewJobCreate) createSpec() (*ReviewJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewjob.Table, sqlgraph.NewFieldSpec(reviewjob.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(reviewjob.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(reviewjob.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Division(); ok {
		_spec.SetField(reviewjob.FieldDivision, field.TypeString, value)
		_node.Division = value
	}
	if value, ok := _c.mutation.ProposalContent(); ok {
		_spec.SetField(reviewjob.FieldProposalContent, field.TypeString, value)
		_node.ProposalContent = value
	}
	if value, ok := _c.mutation.Segments(); ok {
		_spec.SetField(reviewjob.FieldSegments, field.TypeJSON, value)
		_node.Segments = value
	}
	if value, ok := _c.mutation.HitlStages(); ok {
		_spec.SetField(reviewjob.FieldHitlStages, field.TypeJSON, value)
		_node.HitlStages = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reviewjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.HumanDecision(); ok {
		_spec.SetField(reviewjob.FieldHumanDecision, field.TypeEnum, value)
		_node.HumanDecision = value
	}
	if value, ok := _c.mutation.LlmDecision(); ok {
		_spec.SetField(reviewjob.FieldLlmDecision, field.TypeEnum, value)
		_node.LlmDecision = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(reviewjob.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.SourcePageID(); ok {
		_spec.SetField(reviewjob.FieldSourcePageID, field.TypeString, value)
		_node.SourcePageID = &value
	}
	if value, ok := _c.mutation.SourcePageURL(); ok {
		_spec.SetField(reviewjob.FieldSourcePageURL, field.TypeString, value)
		_node.SourcePageURL = &value
	}
	if value, ok := _c.mutation.EnableSequentialThinking(); ok {
		_spec.SetField(reviewjob.FieldEnableSequentialThinking, field.TypeBool, value)
		_node.EnableSequentialThinking = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reviewjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ReviewJobCreateBulk is the builder for creating many ReviewJob entities in bulk.
type ReviewJobCreateBulk struct {
	config
	err      error
	builders []*ReviewJobCreate
}

// Save creates the ReviewJob entities in the database.
func (_c *ReviewJobCreateBulk) Save(ctx context.Context) ([]*ReviewJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewJobCreateBulk) SaveX(ctx context.Context) []*ReviewJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
