package model

// ProjectID is the remote service's opaque identifier for a project.
// The empty string means the project has no remote identity.
type ProjectID string

// TaskID is the remote service's opaque identifier for a task. The
// empty string means the task was created locally and not yet synced.
type TaskID string

// Project is a remote top-level task container, rendered as a level-1
// outline section.
type Project struct {
	ID   ProjectID
	Name string
}

// Task is a unit of work belonging to exactly one project. Tasks are
// value objects rebuilt on every sync cycle; the link to their project
// is the identifier, never a reference.
type Task struct {
	ID        TaskID
	ProjectID ProjectID
	Content   string
	Completed bool
	Priority  Priority
	Due       *Date // nil means no due date
}

// Synced reports whether the task already has a remote identity.
func (t Task) Synced() bool {
	return t.ID != ""
}
