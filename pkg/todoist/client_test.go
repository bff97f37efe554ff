package todoist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrisonrobin/orgsync/pkg/model"
)

func TestListProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"1","name":"Work"},{"id":"2","name":"Home"}]`))
	}))
	defer srv.Close()

	client := NewClient(context.Background(), "test-token", srv.URL)
	projects, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, model.Project{ID: "1", Name: "Work"}, projects[0])
	assert.Equal(t, model.Project{ID: "2", Name: "Home"}, projects[1])
}

func TestListTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"10","content":"Ship report","project_id":"1","is_completed":false,"priority":4,"due_date":"2024-03-01"},
			{"id":"11","content":"Mow lawn","project_id":"2","is_completed":true,"priority":1}
		]`))
	}))
	defer srv.Close()

	client := NewClient(context.Background(), "test-token", srv.URL)
	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, model.TaskID("10"), tasks[0].ID)
	assert.Equal(t, model.ProjectID("1"), tasks[0].ProjectID)
	assert.Equal(t, "Ship report", tasks[0].Content)
	assert.False(t, tasks[0].Completed)
	assert.Equal(t, model.PriorityA, tasks[0].Priority)
	require.NotNil(t, tasks[0].Due)
	assert.Equal(t, model.Date{Year: 2024, Month: time.March, Day: 1}, *tasks[0].Due)

	assert.True(t, tasks[1].Completed)
	assert.Equal(t, model.PriorityNone, tasks[1].Priority)
	assert.Nil(t, tasks[1].Due)
}

func TestListTasksBadDueDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"10","content":"x","project_id":"1","priority":1,"due_date":"03/01/2024"}]`))
	}))
	defer srv.Close()

	client := NewClient(context.Background(), "test-token", srv.URL)
	_, err := client.ListTasks(context.Background())
	require.Error(t, err)

	var dfe *model.DateFormatError
	require.True(t, errors.As(err, &dfe))
	assert.Equal(t, "03/01/2024", dfe.Value)
}

func TestCreateTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// Creation sends content and project_id, nothing else.
		assert.Equal(t, map[string]any{"content": "Buy milk", "project_id": "1"}, body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"42","content":"Buy milk","project_id":"1","is_completed":false,"priority":1}`))
	}))
	defer srv.Close()

	client := NewClient(context.Background(), "test-token", srv.URL)
	created, err := client.CreateTask(context.Background(), "Buy milk", "1")
	require.NoError(t, err)
	assert.Equal(t, model.TaskID("42"), created.ID)
	assert.Equal(t, model.ProjectID("1"), created.ProjectID)
	assert.False(t, created.Completed)
	assert.Equal(t, model.PriorityNone, created.Priority)
	assert.Nil(t, created.Due)
}

func TestRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("bad token"))
	}))
	defer srv.Close()

	client := NewClient(context.Background(), "stale-token", srv.URL)
	_, err := client.ListTasks(context.Background())
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusForbidden, reqErr.Status)
	assert.Equal(t, "bad token", reqErr.Body)
}
