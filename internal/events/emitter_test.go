package events

import (
	"testing"

	"github.com/phoenix-pm/phoenix/internal/models"
)

func TestEmitterFanOut(t *testing.T) {
	e := NewEmitter()

	first, second := 0, 0
	e.OnTask(TaskListener{TaskCreated: func(*models.Task) { first++ }})
	e.OnTask(TaskListener{TaskCreated: func(*models.Task) { second++ }})

	e.TaskCreated(&models.Task{ID: "t1"})

	if first != 1 || second != 1 {
		t.Errorf("Expected both listeners called once, got %d and %d", first, second)
	}
}

func TestEmitterSkipsNilCallbacks(t *testing.T) {
	e := NewEmitter()

	deleted := ""
	e.OnTask(TaskListener{TaskDeleted: func(id string) { deleted = id }})

	// Listeners without the matching callback are skipped, not panicked on
	e.TaskCreated(&models.Task{ID: "t1"})
	e.TaskUpdated(&models.Task{ID: "t1"})
	e.TaskDeleted("t1")

	if deleted != "t1" {
		t.Errorf("Expected TaskDeleted delivered, got %q", deleted)
	}
}

func TestEmitterUIRequests(t *testing.T) {
	e := NewEmitter()

	var gotDefaults NewTaskDefaults
	var edited *models.Task
	configOpened := false
	e.OnUI(UIListener{
		OpenNewTaskModal: func(d NewTaskDefaults) { gotDefaults = d },
		EditTask:         func(task *models.Task) { edited = task },
		OpenTaskConfig:   func() { configOpened = true },
	})

	e.OpenNewTaskModal(NewTaskDefaults{SectionID: "sec-a", Priority: "high"})
	e.EditTask(&models.Task{ID: "t1"})
	e.OpenTaskConfig()

	if gotDefaults.SectionID != "sec-a" || gotDefaults.Priority != "high" {
		t.Errorf("Expected defaults delivered, got %+v", gotDefaults)
	}
	if edited == nil || edited.ID != "t1" {
		t.Error("Expected EditTask delivered")
	}
	if !configOpened {
		t.Error("Expected OpenTaskConfig delivered")
	}
}

func TestEmitterNoListeners(t *testing.T) {
	e := NewEmitter()

	// Emitting with no listeners must be safe
	e.TaskCreated(&models.Task{ID: "t1"})
	e.TaskUpdated(&models.Task{ID: "t1"})
	e.TaskDeleted("t1")
	e.OpenNewTaskModal(NewTaskDefaults{})
	e.OpenTaskConfig()
}
