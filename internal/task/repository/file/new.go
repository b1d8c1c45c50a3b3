package file

import (
	"context"
	"sync"

	"classsync/internal/model"
	"classsync/internal/task/repository"
	"classsync/pkg/blobstore"
	"classsync/pkg/log"
)

// TasksKey is the key-value slot holding the serialized task collection.
const TasksKey = "classsync_tasks"

// Repository is a blob-backed task collection. The collection lives in
// memory, ordered newest-first, and is written back wholesale after every
// mutation. Access is serialized with a mutex since HTTP handlers run
// concurrently.
type Repository struct {
	mu    sync.Mutex
	blobs *blobstore.Store
	l     log.Logger
	tasks []model.Task
}

var _ repository.Repository = (*Repository)(nil)

// New creates the repository and loads the persisted collection. A missing
// or malformed blob falls back to the seed set rather than failing.
func New(blobs *blobstore.Store, l log.Logger) *Repository {
	r := &Repository{
		blobs: blobs,
		l:     l,
	}
	r.tasks = r.loadTasks(context.Background())
	return r
}
