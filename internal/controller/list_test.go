package controller_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tareas/internal/controller"
	"tareas/internal/service"
	"tareas/internal/testutil"
	"tareas/internal/ui"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestList_Load(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddTask("1", "Test Task", "Test Description")

	list := controller.NewList(repo, testutil.NewFakeSurface(), testLogger())
	if err := list.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	tasks := list.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Titulo != "Test Task" {
		t.Errorf("expected titulo 'Test Task', got %q", tasks[0].Titulo)
	}
}

func TestList_LoadFailureLeavesListUntouched(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddTask("1", "a", "A")

	list := controller.NewList(repo, testutil.NewFakeSurface(), testLogger())
	if err := list.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	repo.GetTasksErr = service.NewStatusError(500, "")
	if err := list.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if len(list.Tasks()) != 1 {
		t.Error("failed load must leave the in-memory list untouched")
	}
}

func TestList_ConfirmDeleteOpensPromptWithoutMutation(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddTask("1", "a", "A")
	surface := testutil.NewFakeSurface()

	list := controller.NewList(repo, surface, testLogger())
	if err := list.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	list.ConfirmDelete("1")

	if len(surface.Confirms) != 1 {
		t.Errorf("expected one confirm prompt, got %d", len(surface.Confirms))
	}
	if repo.DeleteCalls != 0 {
		t.Error("staging a delete must not call the repository")
	}
	if len(list.Tasks()) != 1 {
		t.Error("staging a delete must not mutate the list")
	}
}

func TestList_DeleteConfirmed(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddTask("1", "a", "A")
	repo.AddTask("2", "b", "B")

	list := controller.NewList(repo, testutil.NewFakeSurface(), testLogger())
	if err := list.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	list.ConfirmDelete("1")
	deleted, err := list.HandleModalButtonClick(context.Background(), ui.ChoiceConfirm)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected a deletion")
	}

	tasks := list.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "2" {
		t.Errorf("expected only task '2' to remain, got %+v", tasks)
	}
}

func TestList_DeletePreservesOrder(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddTask("1", "a", "A")
	repo.AddTask("2", "b", "B")
	repo.AddTask("3", "c", "C")

	list := controller.NewList(repo, testutil.NewFakeSurface(), testLogger())
	if err := list.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	list.ConfirmDelete("2")
	if _, err := list.HandleModalButtonClick(context.Background(), ui.ChoiceConfirm); err != nil {
		t.Fatal(err)
	}

	tasks := list.Tasks()
	if len(tasks) != 2 || tasks[0].ID != "1" || tasks[1].ID != "3" {
		t.Errorf("expected order [1 3], got %+v", tasks)
	}
}

func TestList_CancelLeavesListAndClearsPending(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddTask("1", "a", "A")
	repo.AddTask("2", "b", "B")

	list := controller.NewList(repo, testutil.NewFakeSurface(), testLogger())
	if err := list.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	list.ConfirmDelete("1")
	deleted, err := list.HandleModalButtonClick(context.Background(), ui.ChoiceCancel)
	if err != nil || deleted {
		t.Errorf("cancel must not delete, got deleted=%v err=%v", deleted, err)
	}
	if len(list.Tasks()) != 2 {
		t.Error("cancel must leave the list unchanged")
	}
	if repo.DeleteCalls != 0 {
		t.Error("cancel must not call the repository")
	}

	// The pending id was cleared: a confirming click now has nothing to act on.
	deleted, err = list.HandleModalButtonClick(context.Background(), ui.ChoiceConfirm)
	if err != nil || deleted {
		t.Errorf("stale pending id must not leak, got deleted=%v err=%v", deleted, err)
	}
	if repo.DeleteCalls != 0 {
		t.Error("confirm without a pending id must not call the repository")
	}
}

func TestList_ConfirmWithoutPendingIsNoop(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddTask("1", "a", "A")

	list := controller.NewList(repo, testutil.NewFakeSurface(), testLogger())
	if err := list.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	deleted, err := list.HandleModalButtonClick(context.Background(), ui.ChoiceConfirm)
	if err != nil || deleted {
		t.Errorf("expected no-op, got deleted=%v err=%v", deleted, err)
	}
	if len(list.Tasks()) != 1 {
		t.Error("list must be unchanged")
	}
}

func TestList_DeleteFailureLeavesListUntouched(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddTask("1", "a", "A")
	repo.AddTask("2", "b", "B")
	repo.DeleteTaskErr = service.NewStatusError(500, "")
	surface := testutil.NewFakeSurface()

	list := controller.NewList(repo, surface, testLogger())
	if err := list.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	list.ConfirmDelete("1")
	deleted, err := list.HandleModalButtonClick(context.Background(), ui.ChoiceConfirm)
	if err == nil {
		t.Fatal("expected delete error")
	}
	if deleted {
		t.Error("failed delete must not report success")
	}
	if len(list.Tasks()) != 2 {
		t.Error("failed delete must leave the list untouched")
	}

	notice, ok := surface.LastNotice()
	if !ok || notice.Kind != ui.NoticeError {
		t.Errorf("expected an error notice, got %+v ok=%v", notice, ok)
	}
}

func TestList_CallbackDrivenConfirm(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddTask("1", "a", "A")

	surface := testutil.NewFakeSurface()
	list := controller.NewList(repo, surface, testLogger())
	if err := list.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	// The surface answers the prompt through the callback, the way the
	// terminal binding does.
	surface.Answer = ui.ChoiceConfirm
	surface.OnChoice = func(choice ui.Choice) {
		if _, err := list.HandleModalButtonClick(context.Background(), choice); err != nil {
			t.Errorf("delete failed: %v", err)
		}
	}

	list.ConfirmDelete("1")
	if len(list.Tasks()) != 0 {
		t.Error("expected the task to be deleted through the callback")
	}
}
