package repository

// FetchLatestOptions holds parameters for reading the newest events.
// Limit <= 0 yields no events.
type FetchLatestOptions struct {
	Limit int
}
