// Package events provides real-time progress delivery via WebSocket.
//
// Every review job owns one event channel ("job:{id}"). The pipeline
// publishes typed progress events as it advances; each persistent event is
// stored in the events table first, then broadcast to subscribed WebSocket
// connections. Late subscribers replay the stored events (catchup) so a
// browser refresh never loses progress.
//
// Event order on a job channel for a single segment:
//
//	page_progress  {status: "processing"}
//	stage_status   {agent, status}   (repeated per stage)
//	bp_cases       {cases}           (after the scouting stage)
//	interrupt      {agent, results}  (only at feedback checkpoints)
//	page_completed {report, decision}
//
// followed by a terminal completed or error event for the whole job.
package events

import "strconv"

// Persistent event types (stored in DB, then broadcast).
const (
	// EventTypePageProgress marks the start of a segment's review pass.
	EventTypePageProgress = "page_progress"

	// EventTypeStageStatus reports a single stage transition.
	EventTypeStageStatus = "stage_status"

	// EventTypeBPCases carries the similar cases found for the proposal.
	EventTypeBPCases = "bp_cases"

	// EventTypeInterrupt signals that the pipeline is suspended at a
	// feedback checkpoint and waits for user input.
	EventTypeInterrupt = "interrupt"

	// EventTypePageCompleted carries one segment's final report and decision.
	EventTypePageCompleted = "page_completed"

	// EventTypeCompleted is the terminal success event for the whole job.
	EventTypeCompleted = "completed"

	// EventTypeError is the terminal failure event for the whole job.
	EventTypeError = "error"
)

// Stage lifecycle status values (used in StageStatusPayload.Status).
const (
	StageStatusProcessing = "processing"
	StageStatusCompleted  = "completed"
	StageStatusFailed     = "failed"
)

// GlobalJobsChannel is the channel for job-level terminal events.
// The dashboard subscribes to this for list updates.
const GlobalJobsChannel = "jobs"

// JobChannel returns the channel name for a specific job's events.
// Format: "job:{job_id}"
func JobChannel(jobID int) string {
	return "job:" + strconv.Itoa(jobID)
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "job:42")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
