package event

import (
	"git-activity-feed/internal/model"
	"git-activity-feed/internal/webhook"
)

// IngestStatus is the outcome of a delivery that did not fail.
type IngestStatus string

const (
	StatusReceived IngestStatus = "received"
	StatusIgnored  IngestStatus = "ignored"
)

// Reasons reported to the sender for ignored deliveries.
const (
	ReasonIgnoredPRAction = "Ignored PR action"
	ReasonUnhandledEvent  = "Event type not handled"
	MessageEventReceived  = "Event received"
)

// DefaultLatestLimit is the number of events returned when no limit is given.
const DefaultLatestLimit = 20

// Pull request sub-actions recorded as PULL_REQUEST.
var pullRequestActions = map[string]bool{
	"opened":      true,
	"reopened":    true,
	"synchronize": true,
}

// IsPullRequestAction reports whether a pull_request action is recorded as PULL_REQUEST.
func IsPullRequestAction(action string) bool {
	return pullRequestActions[action]
}

// --- UseCase Inputs ---

type IngestInput struct {
	Payload webhook.Payload
}

type ListLatestInput struct {
	Limit int
}

// --- UseCase Outputs ---

// NormalizeOutput holds either an Event or, when Ignored is set, a Reason.
type NormalizeOutput struct {
	Event   model.CanonicalEvent
	Ignored bool
	Reason  string
}

type IngestOutput struct {
	Status  IngestStatus
	Message string
	Event   model.CanonicalEvent
}

type ListLatestOutput struct {
	Events []model.CanonicalEvent
}
