// Package jobs manages the asynchronous extraction job lifecycle: submission
// mints an identifier and dispatches the engine on a background worker;
// status is derived from the snapshot store plus a recorded failure channel.
package jobs

// State is the observable state of an extraction job.
type State string

// Job states. Submitted is transient (it exists only inside Submit), so
// observers see running, complete or failed.
const (
	StateRunning  State = "running"
	StateComplete State = "complete"
	StateFailed   State = "failed"
)

// Status describes one job: its state and, when failed, the error kind from
// the extraction taxonomy.
type Status struct {
	State     State  `json:"status"`
	ErrorKind string `json:"error_kind,omitempty"`
}
