package domain

// PollState lives only as long as the process.
type PollState struct {
	// Timestamp is the from_date of the next request, unix seconds.
	Timestamp   int64
	LastMessage string
}
