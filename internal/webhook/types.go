package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Event kinds carried in the X-GitHub-Event header.
const (
	KindPush        = "push"
	KindPullRequest = "pull_request"
)

// EventHeader is the header naming the event kind.
const EventHeader = "X-GitHub-Event"

// DeliveryHeader carries GitHub's unique delivery id.
const DeliveryHeader = "X-GitHub-Delivery"

// Payload is one of PushPayload, PullRequestPayload or UnsupportedPayload.
type Payload interface {
	EventKind() string
	isPayload()
}

// PushPayload is the validated shape of a push event.
type PushPayload struct {
	Ref        string      `json:"ref"`
	After      string      `json:"after"`
	Pusher     *Pusher     `json:"pusher"`
	Sender     *Account    `json:"sender"`
	HeadCommit *HeadCommit `json:"head_commit"`
}

type Pusher struct {
	Name string `json:"name"`
}

type Account struct {
	Login string `json:"login"`
}

type HeadCommit struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
}

func (PushPayload) EventKind() string { return KindPush }
func (PushPayload) isPayload()        {}

// PullRequestPayload is the validated shape of a pull_request event.
type PullRequestPayload struct {
	Action      string       `json:"action"`
	PullRequest *PullRequest `json:"pull_request"`
}

type PullRequest struct {
	ID        ID       `json:"id"`
	Merged    bool     `json:"merged"`
	User      *Account `json:"user"`
	Head      *Ref     `json:"head"`
	Base      *Ref     `json:"base"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type Ref struct {
	Ref string `json:"ref"`
}

func (PullRequestPayload) EventKind() string { return KindPullRequest }
func (PullRequestPayload) isPayload()        {}

// UnsupportedPayload stands in for any event kind this service does not record.
type UnsupportedPayload struct {
	Kind string
}

func (p UnsupportedPayload) EventKind() string { return p.Kind }
func (UnsupportedPayload) isPayload()          {}

// ID accepts a JSON number or string and keeps its textual form.
type ID string

// UnmarshalJSON implements json.Unmarshaler for ID.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or string: %w", err)
	}
	*id = ID(n.String())
	return nil
}
