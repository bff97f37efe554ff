package sync

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harrisonrobin/orgsync/pkg/model"
	"github.com/harrisonrobin/orgsync/pkg/orgmode"
)

// Transport is the remote task service the engine syncs against.
type Transport interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, content string, projectID model.ProjectID) (model.Task, error)
}

// Storage holds the outline text.
type Storage interface {
	Read() (string, error)
	Write(text string) error
}

// Engine orchestrates the two sync directions over injected
// collaborators. Download and Upload are not safe to run concurrently
// with each other; callers serialize.
type Engine struct {
	remote  Transport
	outline Storage
	log     *zap.Logger
}

func NewEngine(remote Transport, outline Storage, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{remote: remote, outline: outline, log: log}
}

// Download replaces the outline with a fresh render of the remote
// state. Projects and tasks are fetched concurrently; either failure
// aborts the flow before anything is written. This is a full
// overwrite: local-only tasks that were never uploaded do not survive
// a download.
func (e *Engine) Download(ctx context.Context) error {
	var (
		projects []model.Project
		tasks    []model.Task
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = e.remote.ListProjects(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = e.remote.ListTasks(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("download aborted: %w", err)
	}

	text := orgmode.RenderOutline(projects, tasks)
	if err := e.outline.Write(text); err != nil {
		return fmt.Errorf("download failed to persist outline: %w", err)
	}
	e.log.Info("outline replaced",
		zap.Int("projects", len(projects)),
		zap.Int("tasks", len(tasks)))
	return nil
}

// Upload creates a remote task for every outline task that has no
// identifier yet. Requests go out one at a time in outline order; the
// remote assigns identifiers and nothing here assumes creation is
// idempotent, so they are never parallelized. A rejected task does not
// stop the remaining ones; every success is collected regardless.
//
// The assigned identifiers are NOT written back into the outline.
// Until a download refreshes it, the created tasks still look
// local-only and a second upload would create duplicates.
func (e *Engine) Upload(ctx context.Context) (UploadResult, error) {
	text, err := e.outline.Read()
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload failed to read outline: %w", err)
	}
	tasks, err := orgmode.Parse(text)
	if err != nil {
		return UploadResult{}, err
	}

	var res UploadResult
	for _, t := range FindNew(tasks) {
		created, err := e.remote.CreateTask(ctx, t.Content, t.ProjectID)
		if err != nil {
			e.log.Warn("task rejected",
				zap.String("content", t.Content),
				zap.String("project_id", string(t.ProjectID)),
				zap.Error(err))
			res.Failures = append(res.Failures, TaskFailure{Task: t, Err: err})
			continue
		}
		e.log.Info("task created",
			zap.String("id", string(created.ID)),
			zap.String("content", created.Content))
		res.Created = append(res.Created, created)
	}

	if len(res.Failures) > 0 {
		return res, &PartialUploadError{Result: res}
	}
	return res, nil
}
