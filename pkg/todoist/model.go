package todoist

import (
	"github.com/harrisonrobin/orgsync/pkg/model"
)

// Wire shapes for the Todoist REST v2 API.

type projectRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type taskRecord struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	ProjectID string `json:"project_id"`
	Completed bool   `json:"is_completed"`
	Priority  int    `json:"priority"`
	DueDate   string `json:"due_date,omitempty"`
}

// createTaskRequest is the payload for task creation. Only content and
// project_id are sent: creation always produces an open, unprioritized,
// undated task, and the remote assigns the identifier.
type createTaskRequest struct {
	Content   string `json:"content"`
	ProjectID string `json:"project_id"`
}

func (r projectRecord) toModel() model.Project {
	return model.Project{ID: model.ProjectID(r.ID), Name: r.Name}
}

// toModel converts a task record into the shared entity. An empty
// due_date means no due date; a due_date that does not parse is a
// model.DateFormatError — the two are never conflated.
func (r taskRecord) toModel() (model.Task, error) {
	t := model.Task{
		ID:        model.TaskID(r.ID),
		ProjectID: model.ProjectID(r.ProjectID),
		Content:   r.Content,
		Completed: r.Completed,
		Priority:  model.PriorityFromLevel(r.Priority),
	}
	if r.DueDate != "" {
		d, err := model.ParseDate(r.DueDate)
		if err != nil {
			return model.Task{}, err
		}
		t.Due = &d
	}
	return t, nil
}
