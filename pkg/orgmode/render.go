package orgmode

import (
	"fmt"
	"strings"

	"github.com/harrisonrobin/orgsync/pkg/model"
)

// RenderOutline renders the remote snapshot as a full org document:
// each project in the order supplied, followed by its tasks in the
// order the remote returned them. Tasks whose project_id matches no
// supplied project are skipped.
func RenderOutline(projects []model.Project, tasks []model.Task) string {
	byProject := make(map[model.ProjectID][]model.Task, len(projects))
	for _, t := range tasks {
		byProject[t.ProjectID] = append(byProject[t.ProjectID], t)
	}

	var b strings.Builder
	for _, p := range projects {
		b.WriteString(RenderProject(p))
		for _, t := range byProject[p.ID] {
			b.WriteString(RenderTask(t))
		}
	}
	return b.String()
}

// RenderProject emits a level-1 heading with the project's property
// block.
func RenderProject(p model.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "* %s\n", p.Name)
	writeProperties(&b, string(p.ID))
	return b.String()
}

// RenderTask emits a level-2 heading: TODO or DONE, a priority cookie
// for C/B/A, a SCHEDULED line when a due date is set, and the property
// block carrying the task's id.
func RenderTask(t model.Task) string {
	state := "TODO"
	if t.Completed {
		state = "DONE"
	}

	var b strings.Builder
	if cookie := t.Priority.Cookie(); cookie != "" {
		fmt.Fprintf(&b, "** %s [#%s] %s\n", state, cookie, t.Content)
	} else {
		fmt.Fprintf(&b, "** %s %s\n", state, t.Content)
	}
	if t.Due != nil {
		fmt.Fprintf(&b, "   SCHEDULED: <%s>\n", t.Due.Org())
	}
	writeProperties(&b, string(t.ID))
	return b.String()
}

func writeProperties(b *strings.Builder, id string) {
	b.WriteString("   :PROPERTIES:\n")
	fmt.Fprintf(b, "   :ID: %s\n", id)
	b.WriteString("   :END:\n")
}
