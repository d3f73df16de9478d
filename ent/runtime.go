// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/koreview/revu/ent/event"
	"github.com/koreview/revu/ent/reviewjob"
	"github.com/koreview/revu/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[2].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	reviewjobFields := schema.ReviewJob{}.Fields()
	_ = reviewjobFields
	// reviewjobDescTitle is the schema descriptor for title field.
	reviewjobDescTitle := reviewjobFields[0].Descriptor()
	// reviewjob.DefaultTitle holds the default value on creation for the title field.
	reviewjob.DefaultTitle = reviewjobDescTitle.Default.(string)
	// reviewjobDescStatus is the schema descriptor for status field.
	reviewjobDescStatus := reviewjobFields[6].Descriptor()
	// reviewjob.DefaultStatus holds the default value on creation for the status field.
	reviewjob.DefaultStatus = reviewjobDescStatus.Default.(string)
	// reviewjobDescEnableSequentialThinking is the schema descriptor for enable_sequential_thinking field.
	reviewjobDescEnableSequentialThinking := reviewjobFields[12].Descriptor()
	// reviewjob.DefaultEnableSequentialThinking holds the default value on creation for the enable_sequential_thinking field.
	reviewjob.DefaultEnableSequentialThinking = reviewjobDescEnableSequentialThinking.Default.(bool)
	// reviewjobDescCreatedAt is the schema descriptor for created_at field.
	reviewjobDescCreatedAt := reviewjobFields[13].Descriptor()
	// reviewjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewjob.DefaultCreatedAt = reviewjobDescCreatedAt.Default.(func() time.Time)
	// reviewjobDescUpdatedAt is the schema descriptor for updated_at field.
	reviewjobDescUpdatedAt := reviewjobFields[14].Descriptor()
	// reviewjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewjob.DefaultUpdatedAt = reviewjobDescUpdatedAt.Default.(func() time.Time)
	// reviewjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewjob.UpdateDefaultUpdatedAt = reviewjobDescUpdatedAt.UpdateDefault.(func() time.Time)
}
