package model

// Action classifies a canonical event.
type Action string

const (
	ActionPush        Action = "PUSH"
	ActionPullRequest Action = "PULL_REQUEST"
	ActionMerge       Action = "MERGE"
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionPush, ActionPullRequest, ActionMerge:
		return true
	}
	return false
}

// UnknownAuthor is used when no actor can be resolved from a payload.
const UnknownAuthor = "unknown"

// CanonicalEvent is the single normalized record stored and returned by the feed.
// Fields that do not apply to an action are empty strings.
type CanonicalEvent struct {
	RequestID  string `json:"request_id"`  // commit SHA (push) or pull request id
	Author     string `json:"author"`      // resolved actor
	Action     Action `json:"action"`      // PUSH, PULL_REQUEST or MERGE
	FromBranch string `json:"from_branch"` // head branch, empty for push
	ToBranch   string `json:"to_branch"`   // base branch or pushed branch
	Timestamp  string `json:"timestamp"`   // human formatted, never empty
}
