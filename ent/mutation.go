// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/koreview/revu/ent/event"
	"github.com/koreview/revu/ent/predicate"
	"github.com/koreview/revu/ent/reviewjob"
	"github.com/koreview/revu/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent     = "Event"
	TypeReviewJob = "ReviewJob"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// ReviewJobMutation represents an operation that mutates the ReviewJob nodes in the graph.
type ReviewJobMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	title                      *string
	domain                     *string
	division                   *string
	proposal_content           *string
	segments                   *[]models.Segment
	appendsegments             []models.Segment
	hitl_stages                *[]int
	appendhitl_stages          []int
	status                     *string
	human_decision             *reviewjob.HumanDecision
	llm_decision               *reviewjob.LlmDecision
	metadata                   *models.Metadata
	source_page_id             *string
	source_page_url            *string
	enable_sequential_thinking *bool
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*ReviewJob, error)
	predicates                 []predicate.ReviewJob
}

var _ ent.Mutation = (*ReviewJobMutation)(nil)

// reviewjobOption allows management of the mutation configuration using functional options.
type reviewjobOption func(*ReviewJobMutation)

// newReviewJobMutation creates new mutation for the ReviewJob entity.
func newReviewJobMutation(c config, op Op, opts ...reviewjobOption) *ReviewJobMutation {
	m := &ReviewJobMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewJobID sets the ID field of the mutation.
func withReviewJobID(id int) reviewjobOption {
	return func(m *ReviewJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewJob
		)
		m.oldValue = func(ctx context.Context) (*ReviewJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewJob sets the old ReviewJob of the mutation.
func withReviewJob(node *ReviewJob) reviewjobOption {
	return func(m *ReviewJobMutation) {
		m.oldValue = func(context.Context) (*ReviewJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewJobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewJobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ReviewJobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReviewJobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ReviewJobMutation) ResetTitle() {
	m.title = nil
}

// SetDomain sets the "domain" field.
func (m *ReviewJobMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *ReviewJobMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *ReviewJobMutation) ResetDomain() {
	m.domain = nil
}

// SetDivision sets the "division" field.
func (m *ReviewJobMutation) SetDivision(s string) {
	m.division = &s
}

// Division returns the value of the "division" field in the mutation.
func (m *ReviewJobMutation) Division() (r string, exists bool) {
	v := m.division
	if v == nil {
		return
	}
	return *v, true
}

// OldDivision returns the old "division" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldDivision(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDivision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDivision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDivision: %w", err)
	}
	return oldValue.Division, nil
}

// ResetDivision resets all changes to the "division" field.
func (m *ReviewJobMutation) ResetDivision() {
	m.division = nil
}

// SetProposalContent sets the "proposal_content" field.
func (m *ReviewJobMutation) SetProposalContent(s string) {
	m.proposal_content = &s
}

// ProposalContent returns the value of the "proposal_content" field in the mutation.
func (m *ReviewJobMutation) ProposalContent() (r string, exists bool) {
	v := m.proposal_content
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalContent returns the old "proposal_content" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldProposalContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalContent: %w", err)
	}
	return oldValue.ProposalContent, nil
}

// ResetProposalContent resets all changes to the "proposal_content" field.
func (m *ReviewJobMutation) ResetProposalContent() {
	m.proposal_content = nil
}

// SetSegments sets the "segments" field.
func (m *ReviewJobMutation) SetSegments(value []models.Segment) {
	m.segments = &value
	m.appendsegments = nil
}

// Segments returns the value of the "segments" field in the mutation.
func (m *ReviewJobMutation) Segments() (r []models.Segment, exists bool) {
	v := m.segments
	if v == nil {
		return
	}
	return *v, true
}

// OldSegments returns the old "segments" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldSegments(ctx context.Context) (v []models.Segment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegments: %w", err)
	}
	return oldValue.Segments, nil
}

// AppendSegments adds value to the "segments" field.
func (m *ReviewJobMutation) AppendSegments(value []models.Segment) {
	m.appendsegments = append(m.appendsegments, value...)
}

// AppendedSegments returns the list of values that were appended to the "segments" field in this mutation.
func (m *ReviewJobMutation) AppendedSegments() ([]models.Segment, bool) {
	if len(m.appendsegments) == 0 {
		return nil, false
	}
	return m.appendsegments, true
}

// ClearSegments clears the value of the "segments" field.
func (m *ReviewJobMutation) ClearSegments() {
	m.segments = nil
	m.appendsegments = nil
	m.clearedFields[reviewjob.FieldSegments] = struct{}{}
}

// SegmentsCleared returns if the "segments" field was cleared in this mutation.
func (m *ReviewJobMutation) SegmentsCleared() bool {
	_, ok := m.clearedFields[reviewjob.FieldSegments]
	return ok
}

// ResetSegments resets all changes to the "segments" field.
func (m *ReviewJobMutation) ResetSegments() {
	m.segments = nil
	m.appendsegments = nil
	delete(m.clearedFields, reviewjob.FieldSegments)
}

// SetHitlStages sets the "hitl_stages" field.
func (m *ReviewJobMutation) SetHitlStages(i []int) {
	m.hitl_stages = &i
	m.appendhitl_stages = nil
}

// HitlStages returns the value of the "hitl_stages" field in the mutation.
func (m *ReviewJobMutation) HitlStages() (r []int, exists bool) {
	v := m.hitl_stages
	if v == nil {
		return
	}
	return *v, true
}

// OldHitlStages returns the old "hitl_stages" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldHitlStages(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHitlStages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHitlStages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHitlStages: %w", err)
	}
	return oldValue.HitlStages, nil
}

// AppendHitlStages adds i to the "hitl_stages" field.
func (m *ReviewJobMutation) AppendHitlStages(i []int) {
	m.appendhitl_stages = append(m.appendhitl_stages, i...)
}

// AppendedHitlStages returns the list of values that were appended to the "hitl_stages" field in this mutation.
func (m *ReviewJobMutation) AppendedHitlStages() ([]int, bool) {
	if len(m.appendhitl_stages) == 0 {
		return nil, false
	}
	return m.appendhitl_stages, true
}

// ClearHitlStages clears the value of the "hitl_stages" field.
func (m *ReviewJobMutation) ClearHitlStages() {
	m.hitl_stages = nil
	m.appendhitl_stages = nil
	m.clearedFields[reviewjob.FieldHitlStages] = struct{}{}
}

// HitlStagesCleared returns if the "hitl_stages" field was cleared in this mutation.
func (m *ReviewJobMutation) HitlStagesCleared() bool {
	_, ok := m.clearedFields[reviewjob.FieldHitlStages]
	return ok
}

// ResetHitlStages resets all changes to the "hitl_stages" field.
func (m *ReviewJobMutation) ResetHitlStages() {
	m.hitl_stages = nil
	m.appendhitl_stages = nil
	delete(m.clearedFields, reviewjob.FieldHitlStages)
}

// SetStatus sets the "status" field.
func (m *ReviewJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ReviewJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReviewJobMutation) ResetStatus() {
	m.status = nil
}

// SetHumanDecision sets the "human_decision" field.
func (m *ReviewJobMutation) SetHumanDecision(rd reviewjob.HumanDecision) {
	m.human_decision = &rd
}

// HumanDecision returns the value of the "human_decision" field in the mutation.
func (m *ReviewJobMutation) HumanDecision() (r reviewjob.HumanDecision, exists bool) {
	v := m.human_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanDecision returns the old "human_decision" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldHumanDecision(ctx context.Context) (v reviewjob.HumanDecision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanDecision: %w", err)
	}
	return oldValue.HumanDecision, nil
}

// ResetHumanDecision resets all changes to the "human_decision" field.
func (m *ReviewJobMutation) ResetHumanDecision() {
	m.human_decision = nil
}

// SetLlmDecision sets the "llm_decision" field.
func (m *ReviewJobMutation) SetLlmDecision(rd reviewjob.LlmDecision) {
	m.llm_decision = &rd
}

// LlmDecision returns the value of the "llm_decision" field in the mutation.
func (m *ReviewJobMutation) LlmDecision() (r reviewjob.LlmDecision, exists bool) {
	v := m.llm_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmDecision returns the old "llm_decision" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldLlmDecision(ctx context.Context) (v reviewjob.LlmDecision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmDecision: %w", err)
	}
	return oldValue.LlmDecision, nil
}

// ResetLlmDecision resets all changes to the "llm_decision" field.
func (m *ReviewJobMutation) ResetLlmDecision() {
	m.llm_decision = nil
}

// SetMetadata sets the "metadata" field.
func (m *ReviewJobMutation) SetMetadata(value models.Metadata) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ReviewJobMutation) Metadata() (r models.Metadata, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldMetadata(ctx context.Context) (v models.Metadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ReviewJobMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[reviewjob.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ReviewJobMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[reviewjob.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ReviewJobMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, reviewjob.FieldMetadata)
}

// SetSourcePageID sets the "source_page_id" field.
func (m *ReviewJobMutation) SetSourcePageID(s string) {
	m.source_page_id = &s
}

// SourcePageID returns the value of the "source_page_id" field in the mutation.
func (m *ReviewJobMutation) SourcePageID() (r string, exists bool) {
	v := m.source_page_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePageID returns the old "source_page_id" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldSourcePageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePageID: %w", err)
	}
	return oldValue.SourcePageID, nil
}

// ClearSourcePageID clears the value of the "source_page_id" field.
func (m *ReviewJobMutation) ClearSourcePageID() {
	m.source_page_id = nil
	m.clearedFields[reviewjob.FieldSourcePageID] = struct{}{}
}

// SourcePageIDCleared returns if the "source_page_id" field was cleared in this mutation.
func (m *ReviewJobMutation) SourcePageIDCleared() bool {
	_, ok := m.clearedFields[reviewjob.FieldSourcePageID]
	return ok
}

// ResetSourcePageID resets all changes to the "source_page_id" field.
func (m *ReviewJobMutation) ResetSourcePageID() {
	m.source_page_id = nil
	delete(m.clearedFields, reviewjob.FieldSourcePageID)
}

// SetSourcePageURL sets the "source_page_url" field.
func (m *ReviewJobMutation) SetSourcePageURL(s string) {
	m.source_page_url = &s
}

// SourcePageURL returns the value of the "source_page_url" field in the mutation.
func (m *ReviewJobMutation) SourcePageURL() (r string, exists bool) {
	v := m.source_page_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePageURL returns the old "source_page_url" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldSourcePageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePageURL: %w", err)
	}
	return oldValue.SourcePageURL, nil
}

// ClearSourcePageURL clears the value of the "source_page_url" field.
func (m *ReviewJobMutation) ClearSourcePageURL() {
	m.source_page_url = nil
	m.clearedFields[reviewjob.FieldSourcePageURL] = struct{}{}
}

// SourcePageURLCleared returns if the "source_page_url" field was cleared in this mutation.
func (m *ReviewJobMutation) SourcePageURLCleared() bool {
	_, ok := m.clearedFields[reviewjob.FieldSourcePageURL]
	return ok
}

// ResetSourcePageURL resets all changes to the "source_page_url" field.
func (m *ReviewJobMutation) ResetSourcePageURL() {
	m.source_page_url = nil
	delete(m.clearedFields, reviewjob.FieldSourcePageURL)
}

// SetEnableSequentialThinking sets the "enable_sequential_thinking" field.
func (m *ReviewJobMutation) SetEnableSequentialThinking(b bool) {
	m.enable_sequential_thinking = &b
}

// EnableSequentialThinking returns the value of the "enable_sequential_thinking" field in the mutation.
func (m *ReviewJobMutation) EnableSequentialThinking() (r bool, exists bool) {
	v := m.enable_sequential_thinking
	if v == nil {
		return
	}
	return *v, true
}

// OldEnableSequentialThinking returns the old "enable_sequential_thinking" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldEnableSequentialThinking(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnableSequentialThinking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnableSequentialThinking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnableSequentialThinking: %w", err)
	}
	return oldValue.EnableSequentialThinking, nil
}

// ResetEnableSequentialThinking resets all changes to the "enable_sequential_thinking" field.
func (m *ReviewJobMutation) ResetEnableSequentialThinking() {
	m.enable_sequential_thinking = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReviewJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReviewJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReviewJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReviewJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReviewJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReviewJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ReviewJobMutation builder.
func (m *ReviewJobMutation) Where(ps ...predicate.ReviewJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewJob).
func (m *ReviewJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewJobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.title != nil {
		fields = append(fields, reviewjob.FieldTitle)
	}
	if m.domain != nil {
		fields = append(fields, reviewjob.FieldDomain)
	}
	if m.division != nil {
		fields = append(fields, reviewjob.FieldDivision)
	}
	if m.proposal_content != nil {
		fields = append(fields, reviewjob.FieldProposalContent)
	}
	if m.segments != nil {
		fields = append(fields, reviewjob.FieldSegments)
	}
	if m.hitl_stages != nil {
		fields = append(fields, reviewjob.FieldHitlStages)
	}
	if m.status != nil {
		fields = append(fields, reviewjob.FieldStatus)
	}
	if m.human_decision != nil {
		fields = append(fields, reviewjob.FieldHumanDecision)
	}
	if m.llm_decision != nil {
		fields = append(fields, reviewjob.FieldLlmDecision)
	}
	if m.metadata != nil {
		fields = append(fields, reviewjob.FieldMetadata)
	}
	if m.source_page_id != nil {
		fields = append(fields, reviewjob.FieldSourcePageID)
	}
	if m.source_page_url != nil {
		fields = append(fields, reviewjob.FieldSourcePageURL)
	}
	if m.enable_sequential_thinking != nil {
		fields = append(fields, reviewjob.FieldEnableSequentialThinking)
	}
	if m.created_at != nil {
		fields = append(fields, reviewjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reviewjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewjob.FieldTitle:
		return m.Title()
	case reviewjob.FieldDomain:
		return m.Domain()
	case reviewjob.FieldDivision:
		return m.Division()
	case reviewjob.FieldProposalContent:
		return m.ProposalContent()
	case reviewjob.FieldSegments:
		return m.Segments()
	case reviewjob.FieldHitlStages:
		return m.HitlStages()
	case reviewjob.FieldStatus:
		return m.Status()
	case reviewjob.FieldHumanDecision:
		return m.HumanDecision()
	case reviewjob.FieldLlmDecision:
		return m.LlmDecision()
	case reviewjob.FieldMetadata:
		return m.Metadata()
	case reviewjob.FieldSourcePageID:
		return m.SourcePageID()
	case reviewjob.FieldSourcePageURL:
		return m.SourcePageURL()
	case reviewjob.FieldEnableSequentialThinking:
		return m.EnableSequentialThinking()
	case reviewjob.FieldCreatedAt:
		return m.CreatedAt()
	case reviewjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewjob.FieldTitle:
		return m.OldTitle(ctx)
	case reviewjob.FieldDomain:
		return m.OldDomain(ctx)
	case reviewjob.FieldDivision:
		return m.OldDivision(ctx)
	case reviewjob.FieldProposalContent:
		return m.OldProposalContent(ctx)
	case reviewjob.FieldSegments:
		return m.OldSegments(ctx)
	case reviewjob.FieldHitlStages:
		return m.OldHitlStages(ctx)
	case reviewjob.FieldStatus:
		return m.OldStatus(ctx)
	case reviewjob.FieldHumanDecision:
		return m.OldHumanDecision(ctx)
	case reviewjob.FieldLlmDecision:
		return m.OldLlmDecision(ctx)
	case reviewjob.FieldMetadata:
		return m.OldMetadata(ctx)
	case reviewjob.FieldSourcePageID:
		return m.OldSourcePageID(ctx)
	case reviewjob.FieldSourcePageURL:
		return m.OldSourcePageURL(ctx)
	case reviewjob.FieldEnableSequentialThinking:
		return m.OldEnableSequentialThinking(ctx)
	case reviewjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reviewjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewjob.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case reviewjob.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case reviewjob.FieldDivision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDivision(v)
		return nil
	case reviewjob.FieldProposalContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalContent(v)
		return nil
	case reviewjob.FieldSegments:
		v, ok := value.([]models.Segment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegments(v)
		return nil
	case reviewjob.FieldHitlStages:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHitlStages(v)
		return nil
	case reviewjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reviewjob.FieldHumanDecision:
		v, ok := value.(reviewjob.HumanDecision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanDecision(v)
		return nil
	case reviewjob.FieldLlmDecision:
		v, ok := value.(reviewjob.LlmDecision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmDecision(v)
		return nil
	case reviewjob.FieldMetadata:
		v, ok := value.(models.Metadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case reviewjob.FieldSourcePageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePageID(v)
		return nil
	case reviewjob.FieldSourcePageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePageURL(v)
		return nil
	case reviewjob.FieldEnableSequentialThinking:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnableSequentialThinking(v)
		return nil
	case reviewjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reviewjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReviewJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewjob.FieldSegments) {
		fields = append(fields, reviewjob.FieldSegments)
	}
	if m.FieldCleared(reviewjob.FieldHitlStages) {
		fields = append(fields, reviewjob.FieldHitlStages)
	}
	if m.FieldCleared(reviewjob.FieldMetadata) {
		fields = append(fields, reviewjob.FieldMetadata)
	}
	if m.FieldCleared(reviewjob.FieldSourcePageID) {
		fields = append(fields, reviewjob.FieldSourcePageID)
	}
	if m.FieldCleared(reviewjob.FieldSourcePageURL) {
		fields = append(fields, reviewjob.FieldSourcePageURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewJobMutation) ClearField(name string) error {
	switch name {
	case reviewjob.FieldSegments:
		m.ClearSegments()
		return nil
	case reviewjob.FieldHitlStages:
		m.ClearHitlStages()
		return nil
	case reviewjob.FieldMetadata:
		m.ClearMetadata()
		return nil
	case reviewjob.FieldSourcePageID:
		m.ClearSourcePageID()
		return nil
	case reviewjob.FieldSourcePageURL:
		m.ClearSourcePageURL()
		return nil
	}
	return fmt.Errorf("unknown ReviewJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewJobMutation) ResetField(name string) error {
	switch name {
	case reviewjob.FieldTitle:
		m.ResetTitle()
		return nil
	case reviewjob.FieldDomain:
		m.ResetDomain()
		return nil
	case reviewjob.FieldDivision:
		m.ResetDivision()
		return nil
	case reviewjob.FieldProposalContent:
		m.ResetProposalContent()
		return nil
	case reviewjob.FieldSegments:
		m.ResetSegments()
		return nil
	case reviewjob.FieldHitlStages:
		m.ResetHitlStages()
		return nil
	case reviewjob.FieldStatus:
		m.ResetStatus()
		return nil
	case reviewjob.FieldHumanDecision:
		m.ResetHumanDecision()
		return nil
	case reviewjob.FieldLlmDecision:
		m.ResetLlmDecision()
		return nil
	case reviewjob.FieldMetadata:
		m.ResetMetadata()
		return nil
	case reviewjob.FieldSourcePageID:
		m.ResetSourcePageID()
		return nil
	case reviewjob.FieldSourcePageURL:
		m.ResetSourcePageURL()
		return nil
	case reviewjob.FieldEnableSequentialThinking:
		m.ResetEnableSequentialThinking()
		return nil
	case reviewjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reviewjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewJob edge %s", name)
}
