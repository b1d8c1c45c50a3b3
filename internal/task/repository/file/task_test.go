package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"classsync/internal/task/repository"
	"classsync/internal/task/repository/file"
	"classsync/pkg/blobstore"
	"classsync/pkg/log"
)

func newRepo(t *testing.T, dir string) *file.Repository {
	t.Helper()
	blobs, err := blobstore.New(dir)
	if err != nil {
		t.Fatalf("blobstore.New: %v", err)
	}
	return file.New(blobs, log.NewNop())
}

func TestRepository_SeedOnEmpty(t *testing.T) {
	repo := newRepo(t, t.TempDir())

	tasks, err := repo.GetTasks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 seed tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "Physics Lab Report" || tasks[1].Title != "History Essay Draft" {
		t.Errorf("unexpected seed titles: %q, %q", tasks[0].Title, tasks[1].Title)
	}
	if tasks[0].Completed || !tasks[1].Completed {
		t.Errorf("unexpected seed completion flags")
	}
}

func TestRepository_SeedOnMalformedBlob(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, file.TasksKey+".json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write malformed blob: %v", err)
	}

	repo := newRepo(t, dir)
	tasks, err := repo.GetTasks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected seed fallback, got %d tasks", len(tasks))
	}
}

func TestRepository_CreatePersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := newRepo(t, dir)

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:       "Math Homework",
		Teacher:     "Dr. Euler",
		Deadline:    "2024-05-01",
		Description: "Chapter 4 exercises",
		Priority:    "High",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Errorf("expected assigned id")
	}
	if created.Completed {
		t.Errorf("new task must start incomplete")
	}
	if created.CreatedAt.IsZero() {
		t.Errorf("expected assigned createdAt")
	}

	// Fresh repository instance reads the persisted blob.
	reloaded := newRepo(t, dir)
	tasks, _ := reloaded.GetTasks(ctx)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks after reload, got %d", len(tasks))
	}
	// Newest-first at the storage layer.
	got := tasks[0]
	if got.ID != created.ID || got.Title != "Math Homework" || got.Teacher != "Dr. Euler" ||
		got.Deadline != "2024-05-01" || got.Priority != "High" {
		t.Errorf("persisted task fields changed: %+v", got)
	}
}

func TestRepository_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, t.TempDir())

	seen := map[string]bool{}
	tasks, _ := repo.GetTasks(ctx)
	for _, task := range tasks {
		seen[task.ID] = true
	}
	for i := 0; i < 5; i++ {
		created, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Title: "t", Teacher: "x", Deadline: "2024-01-01", Priority: "Low",
		})
		if seen[created.ID] {
			t.Fatalf("duplicate id %s", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestRepository_Toggle(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, t.TempDir())

	tasks, _ := repo.GetTasks(ctx)
	id := tasks[0].ID
	initial := tasks[0].Completed

	if err := repo.ToggleTask(ctx, id); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	tasks, _ = repo.GetTasks(ctx)
	if tasks[0].Completed == initial {
		t.Errorf("expected completed to flip")
	}

	// Toggling twice restores the original value.
	repo.ToggleTask(ctx, id)
	tasks, _ = repo.GetTasks(ctx)
	if tasks[0].Completed != initial {
		t.Errorf("expected completed restored after double toggle")
	}

	// Unknown id is a no-op.
	if err := repo.ToggleTask(ctx, "no-such-id"); err != nil {
		t.Errorf("unexpected error for unknown id: %v", err)
	}
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, t.TempDir())

	tasks, _ := repo.GetTasks(ctx)
	before := len(tasks)
	id := tasks[0].ID

	if err := repo.DeleteTask(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	tasks, _ = repo.GetTasks(ctx)
	if len(tasks) != before-1 {
		t.Fatalf("expected exactly one task removed, got %d -> %d", before, len(tasks))
	}
	for _, task := range tasks {
		if task.ID == id {
			t.Errorf("deleted task still present")
		}
	}

	// Deleting a non-existent id is a no-op.
	if err := repo.DeleteTask(ctx, "no-such-id"); err != nil {
		t.Errorf("unexpected error for unknown id: %v", err)
	}
	after, _ := repo.GetTasks(ctx)
	if len(after) != len(tasks) {
		t.Errorf("no-op delete altered the collection")
	}
}

func TestRepository_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, t.TempDir())

	tasks, _ := repo.GetTasks(ctx)
	tasks[0].Title = "mutated"

	again, _ := repo.GetTasks(ctx)
	if again[0].Title == "mutated" {
		t.Errorf("GetTasks must return a copy, not the backing slice")
	}
}
