package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const branchRefPrefix = "refs/heads/"

// GitHubParser decodes GitHub webhook bodies into typed payloads.
type GitHubParser struct{}

func NewGitHubParser() *GitHubParser {
	return &GitHubParser{}
}

// Parse validates body and decodes it according to kind.
// An empty body is rejected with ErrNoData before the kind is looked at.
func (p *GitHubParser) Parse(kind string, body []byte) (Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNoData
	}

	var generic any
	if err := json.Unmarshal(body, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if isEmptyValue(generic) {
		return nil, ErrNoData
	}

	switch kind {
	case KindPush:
		return p.parsePush(body)
	case KindPullRequest:
		return p.parsePullRequest(body)
	default:
		return UnsupportedPayload{Kind: kind}, nil
	}
}

func (p *GitHubParser) parsePush(body []byte) (Payload, error) {
	var event PushPayload
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: push event: %v", ErrMalformedPayload, err)
	}
	return event, nil
}

func (p *GitHubParser) parsePullRequest(body []byte) (Payload, error) {
	var event PullRequestPayload
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: pull request event: %v", ErrMalformedPayload, err)
	}
	return event, nil
}

// BranchFromRef strips a leading "refs/heads/" (refs/heads/main → main).
// Refs without the prefix are returned unchanged.
func BranchFromRef(ref string) string {
	return strings.TrimPrefix(ref, branchRefPrefix)
}

// isEmptyValue reports whether a decoded JSON document carries no data:
// null, false, 0, "", {} or [].
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}
