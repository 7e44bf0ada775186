package test

// NormalizeResponse is the dry-run result of normalizing one delivery.
type NormalizeResponse struct {
	Success bool       `json:"success"`
	Kind    string     `json:"kind"`
	Ignored bool       `json:"ignored"`
	Reason  string     `json:"reason,omitempty"`
	Event   *EventPrev `json:"event,omitempty"`
	Error   string     `json:"error,omitempty"`
	Details string     `json:"details,omitempty"`
}

// EventPrev is the canonical record that would have been stored.
type EventPrev struct {
	RequestID  string `json:"request_id"`
	Author     string `json:"author"`
	Action     string `json:"action"`
	FromBranch string `json:"from_branch"`
	ToBranch   string `json:"to_branch"`
	Timestamp  string `json:"timestamp"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
