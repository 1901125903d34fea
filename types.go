package twocaptcha

import "time"

// Status is the state of a submitted captcha job as reported by the service.
type Status int

const (
	// StatusPending means the job is still being solved.
	StatusPending Status = iota
	// StatusSolved means the job finished and the answer is available.
	StatusSolved
	// StatusFailed means the service reported an error for the job.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSolved:
		return "solved"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Job tracks one submitted captcha. The ID is assigned by the service and
// never changes; the deadline is fixed at submission time.
type Job struct {
	ID          string
	SubmittedAt time.Time
	Deadline    time.Time
}

// PollResult is the decoded outcome of one status poll. Solved and Failed
// are terminal: callers must stop polling once either is returned.
type PollResult struct {
	Status Status
	Text   string
	Cost   string        // set by the cost-aware variant only
	Err    *ServiceError // set when Status == StatusFailed
}

// Solution is the final answer for a solved captcha.
type Solution struct {
	JobID string
	Text  string
	Cost  string
}
