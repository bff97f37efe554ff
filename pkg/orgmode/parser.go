package orgmode

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/harrisonrobin/orgsync/pkg/model"
)

// MalformedOutlineError reports a structural problem in the outline,
// naming the offending headline. Parsing stops at the first one; no
// partial task list is returned.
type MalformedOutlineError struct {
	Line     int
	Headline string
	Reason   string
}

func (e *MalformedOutlineError) Error() string {
	return fmt.Sprintf("malformed outline at line %d (%q): %s", e.Line, e.Headline, e.Reason)
}

var (
	projectRegex   = regexp.MustCompile(`^\* +(.+?)\s*$`)
	taskRegex      = regexp.MustCompile(`^\*\* +(TODO|DONE)(?:\s+\[#([A-C])\])?\s*(.*?)\s*$`)
	idRegex        = regexp.MustCompile(`^:ID:\s+(\S+)`)
	scheduledRegex = regexp.MustCompile(`^SCHEDULED:\s+<(\d{4}-\d{2}-\d{2})[^>]*>`)
)

// currentProject is the most recently seen level-1 headline during a
// parse walk.
type currentProject struct {
	name string
	id   model.ProjectID
}

// parseState is the fold state carried across lines: the enclosing
// project, the task whose body lines are still being consumed, and the
// finished tasks in document order.
type parseState struct {
	project *currentProject
	pending *model.Task
	tasks   []model.Task
	// inert is set while inside a headline this parser does not model
	// (level 3 and deeper); property lines there belong to nobody.
	inert bool
}

func (st *parseState) flush() {
	if st.pending != nil {
		st.tasks = append(st.tasks, *st.pending)
		st.pending = nil
	}
}

// Parse reads the outline text into tasks in document order. Level-1
// headlines name projects, level-2 headlines are tasks; anything
// deeper is inert structure and ignored. A task's project_id comes
// from the :ID: property of the nearest enclosing level-1 headline.
func Parse(text string) ([]model.Task, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	st := &parseState{}
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if m := projectRegex.FindStringSubmatch(line); m != nil {
			st.flush()
			st.project = &currentProject{name: m[1]}
			st.inert = false
			continue
		}

		if m := taskRegex.FindStringSubmatch(line); m != nil {
			st.flush()
			if st.project == nil {
				return nil, &MalformedOutlineError{
					Line:     lineNo,
					Headline: line,
					Reason:   "task appears before any project headline",
				}
			}
			if st.project.id == "" {
				return nil, &MalformedOutlineError{
					Line:     lineNo,
					Headline: line,
					Reason:   fmt.Sprintf("enclosing project %q has no :ID: property", st.project.name),
				}
			}
			st.pending = &model.Task{
				ProjectID: st.project.id,
				Content:   m[3],
				Completed: m[1] == "DONE",
				Priority:  model.PriorityFromCookie(m[2]),
			}
			st.inert = false
			continue
		}

		if strings.HasPrefix(line, "*") {
			// Deeper headline, e.g. a note under a task.
			st.flush()
			st.inert = true
			continue
		}

		if st.inert {
			continue
		}

		if m := idRegex.FindStringSubmatch(line); m != nil {
			if st.pending != nil {
				st.pending.ID = model.TaskID(m[1])
			} else if st.project != nil {
				st.project.id = model.ProjectID(m[1])
			}
			continue
		}

		if m := scheduledRegex.FindStringSubmatch(line); m != nil && st.pending != nil {
			// The date is re-parsed from its digits; the weekday in
			// the source string carries no authority.
			d, err := model.ParseDate(m[1])
			if err != nil {
				return nil, err
			}
			st.pending.Due = &d
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	st.flush()
	return st.tasks, nil
}
