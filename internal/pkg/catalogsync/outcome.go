// Package catalogsync reconciles the declared reference catalog against
// persistent storage. Every run is idempotent: re-running with unchanged
// input produces no further storage mutation.
package catalogsync

// Result classifies what happened to one declared record.
type Result string

const (
	ResultCreated   Result = "created"
	ResultUpdated   Result = "updated"
	ResultUnchanged Result = "unchanged"
	ResultSkipped   Result = "skipped"
)

// Skip reasons. They are part of the run report contract; tests assert on
// them instead of log output.
const (
	ReasonInvalidRecord       = "invalid-record"
	ReasonUnresolvedReference = "unresolved-reference"
	ReasonUnresolvedParent    = "unresolved-parent"
	ReasonStorageError        = "storage-error"
)

// Outcome is the per-record reconciliation result.
type Outcome struct {
	Result Result
	Key    string
	Reason string
}

func created(key string) Outcome {
	return Outcome{Result: ResultCreated, Key: key}
}

func updated(key string) Outcome {
	return Outcome{Result: ResultUpdated, Key: key}
}

func unchanged(key string) Outcome {
	return Outcome{Result: ResultUnchanged, Key: key}
}

func skipped(key, reason string) Outcome {
	return Outcome{Result: ResultSkipped, Key: key, Reason: reason}
}
