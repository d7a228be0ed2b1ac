package service

import (
	"testing"

	"odyssey_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func scheduleOf(days ...int) []model.DailyTask {
	out := make([]model.DailyTask, 0, len(days))
	for _, d := range days {
		out = append(out, model.DailyTask{Day: d})
	}
	return out
}

func TestModuleProgress(t *testing.T) {
	module := &model.RoadmapModule{ID: "m", DailySchedule: scheduleOf(1, 2, 3)}

	assert.Equal(t, 0, ModuleProgress(module, nil))
	assert.Equal(t, 33, ModuleProgress(module, map[string][]int{"m": {1}}))
	assert.Equal(t, 67, ModuleProgress(module, map[string][]int{"m": {1, 2}}))
	assert.Equal(t, 100, ModuleProgress(module, map[string][]int{"m": {1, 2, 3}}))
}

// TestModuleProgressIgnoresStaleDays verifies day numbers outside the current
// schedule do not count toward progress.
func TestModuleProgressIgnoresStaleDays(t *testing.T) {
	module := &model.RoadmapModule{ID: "m", DailySchedule: scheduleOf(1, 2)}

	assert.Equal(t, 50, ModuleProgress(module, map[string][]int{"m": {1, 99}}))
}

func TestModuleProgressEmptySchedule(t *testing.T) {
	module := &model.RoadmapModule{ID: "m"}

	assert.Equal(t, 0, ModuleProgress(module, map[string][]int{"m": {1}}))
}

func TestOverallProgress(t *testing.T) {
	assert.Equal(t, 0, OverallProgress(nil))

	roadmap := []model.RoadmapModule{
		{Status: model.ModuleCompleted},
		{Status: model.ModuleCurrent},
		{Status: model.ModuleLocked},
	}
	assert.Equal(t, 33, OverallProgress(roadmap))

	roadmap[1].Status = model.ModuleCompleted
	roadmap[2].Status = model.ModuleCompleted
	assert.Equal(t, 100, OverallProgress(roadmap))
}

func TestCurrentModule(t *testing.T) {
	roadmap := []model.RoadmapModule{
		{ID: "a", Status: model.ModuleCompleted},
		{ID: "b", Status: model.ModuleCurrent},
		{ID: "c", Status: model.ModuleCurrent},
	}

	current := CurrentModule(roadmap)
	if assert.NotNil(t, current) {
		assert.Equal(t, "b", current.ID)
	}
	assert.Nil(t, CurrentModule([]model.RoadmapModule{{Status: model.ModuleLocked}}))
}

func TestRank(t *testing.T) {
	assert.Equal(t, 1, Rank(0))
	assert.Equal(t, 1, Rank(9999))
	assert.Equal(t, 2, Rank(10000))
	assert.Equal(t, 5, Rank(45200))
	assert.Equal(t, 1, Rank(-500), "negative xp clamps to rank 1")
}

func TestProjectSync(t *testing.T) {
	assert.Equal(t, 0, ProjectSync(nil))

	tasks := []model.ProjectTask{
		{Completed: true},
		{Completed: false},
		{Completed: true},
	}
	assert.Equal(t, 67, ProjectSync(tasks))
}
