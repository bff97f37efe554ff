package sync

import (
	"fmt"

	"github.com/harrisonrobin/orgsync/pkg/model"
)

// FindNew returns the tasks with no remote identity, in their original
// relative order.
func FindNew(tasks []model.Task) []model.Task {
	var fresh []model.Task
	for _, t := range tasks {
		if !t.Synced() {
			fresh = append(fresh, t)
		}
	}
	return fresh
}

// TaskFailure records a creation request the remote rejected, keeping
// the original task so the caller can tell which entry failed.
type TaskFailure struct {
	Task model.Task
	Err  error
}

// UploadResult is the explicit accumulator for an upload flow: every
// record the remote assigned, and every rejection.
type UploadResult struct {
	Created  []model.Task
	Failures []TaskFailure
}

// PartialUploadError reports an upload where at least one creation
// failed. The successes are never dropped; they stay available on
// Result.
type PartialUploadError struct {
	Result UploadResult
}

func (e *PartialUploadError) Error() string {
	return fmt.Sprintf("upload incomplete: %d created, %d failed",
		len(e.Result.Created), len(e.Result.Failures))
}
