package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"odyssey_backend/internal/config"
	"odyssey_backend/internal/model"
	"odyssey_backend/internal/util"
	"odyssey_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// memSlotStore 内存槽位存储，测试替身
type memSlotStore struct {
	mu    sync.Mutex
	slots map[string]string
	fail  bool
}

func newMemSlotStore() *memSlotStore {
	return &memSlotStore{slots: map[string]string{}}
}

func (m *memSlotStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return "", false, errors.New("store unavailable")
	}
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *memSlotStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("store unavailable")
	}
	m.slots[key] = value
	return nil
}

func (m *memSlotStore) SetMany(slots map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("store unavailable")
	}
	for k, v := range slots {
		m.slots[k] = v
	}
	return nil
}

func (m *memSlotStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

type fakeGenerator struct {
	tasks    []model.ProjectTask
	tasksErr error
	image    []byte
	imageErr error
}

func (f *fakeGenerator) GenerateTasks(ctx context.Context, idea string) ([]model.ProjectTask, error) {
	if f.tasksErr != nil {
		return nil, f.tasksErr
	}
	return f.tasks, nil
}

func (f *fakeGenerator) GenerateBlueprint(ctx context.Context, idea string, style model.BlueprintStyle) ([]byte, error) {
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	return f.image, nil
}

func defaultFakeGenerator() *fakeGenerator {
	return &fakeGenerator{
		tasks: []model.ProjectTask{
			{ID: "t1", Title: "Design schema", Category: model.CategoryDatabase, Difficulty: model.DifficultyMedium},
			{ID: "t2", Title: "Build API", Category: model.CategoryBackend, Difficulty: model.DifficultyHard},
		},
		image: []byte("fake-png-bytes"),
	}
}

func testStorage(t *testing.T) *StorageService {
	t.Helper()
	return NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
	})
}

func newTestSession(t *testing.T) (*SessionService, *memSlotStore, *fakeGenerator) {
	t.Helper()
	store := newMemSlotStore()
	gen := defaultFakeGenerator()
	svc := NewSessionService(store, gen, testStorage(t))
	svc.Hydrate()
	return svc, store, gen
}

// TestHydrateFreshStore verifies a brand-new store hydrates to the seed state.
func TestHydrateFreshStore(t *testing.T) {
	svc, _, _ := newTestSession(t)
	snap := svc.Snapshot()

	assert.Equal(t, model.ViewRoadmap, snap.ActiveView)
	assert.Equal(t, model.SeedXP, snap.ExperiencePoints)
	assert.Equal(t, map[string][]int{"m0": {1}}, snap.CompletedDays)
	assert.Len(t, snap.Roadmap, 12)
	assert.False(t, snap.Initialized)
	require.Len(t, snap.ActivityLog, 1)
	assert.Equal(t, "SYSTEM_INITIALIZED: ARCHITECT_LINK_ESTABLISHED", snap.ActivityLog[0].Text)
	assert.Nil(t, snap.Blueprint)
}

// TestHydrateCorruptSlot verifies a corrupted slot falls back to its seed
// without blocking hydration of the healthy slots.
func TestHydrateCorruptSlot(t *testing.T) {
	store := newMemSlotStore()
	require.NoError(t, store.Set(model.SlotRoadmap, "{{{not json"))
	require.NoError(t, store.Set(model.SlotXP, "12345"))

	svc := NewSessionService(store, defaultFakeGenerator(), testStorage(t))
	svc.Hydrate()
	snap := svc.Snapshot()

	assert.Len(t, snap.Roadmap, 12, "corrupt roadmap slot should fall back to seed")
	assert.Equal(t, 12345, snap.ExperiencePoints, "healthy slots hydrate normally")
}

// TestHydrateRoundTrip verifies that a second service hydrating from the same
// store observes the mutations the first one committed.
func TestHydrateRoundTrip(t *testing.T) {
	svc, store, _ := newTestSession(t)

	_, _, err := svc.AwardExperience(300)
	require.NoError(t, err)
	_, err = svc.SelectView(model.ViewStats)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateNotes("rewrite in rust"))
	require.NoError(t, svc.MarkInitialized())
	require.NoError(t, svc.SetPreferences(model.Preferences{DeepWorkMode: true, NeuralIntensity: 80}))

	second := NewSessionService(store, defaultFakeGenerator(), testStorage(t))
	second.Hydrate()
	snap := second.Snapshot()

	assert.Equal(t, model.SeedXP+300, snap.ExperiencePoints)
	assert.Equal(t, model.ViewStats, snap.ActiveView)
	assert.Equal(t, "rewrite in rust", snap.ProjectNotes)
	assert.True(t, snap.Initialized)
	assert.True(t, snap.Prefs.DeepWorkMode)
	assert.Equal(t, 80, snap.Prefs.NeuralIntensity)
}

// TestActivityLogCap verifies the ring keeps at most 50 entries, evicting oldest first.
func TestActivityLogCap(t *testing.T) {
	svc, _, _ := newTestSession(t)

	for i := 0; i < 60; i++ {
		_, err := svc.RecordLog(fmt.Sprintf("entry %d", i), model.LogInfo)
		require.NoError(t, err)
	}

	logs := svc.Snapshot().ActivityLog
	require.Len(t, logs, model.MaxSystemLogs)
	// 种子日志和前10条已被淘汰
	assert.Equal(t, "entry 10", logs[0].Text)
	assert.Equal(t, "entry 59", logs[len(logs)-1].Text)
}

func TestRecordLogValidation(t *testing.T) {
	svc, _, _ := newTestSession(t)

	_, err := svc.RecordLog("   ", model.LogInfo)
	assert.ErrorIs(t, err, util.ErrValidation)

	_, err = svc.RecordLog("hello", model.LogKind("fatal"))
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestAwardExperience(t *testing.T) {
	svc, store, _ := newTestSession(t)

	total, autoDismissMs, err := svc.AwardExperience(250)
	require.NoError(t, err)
	assert.Equal(t, model.SeedXP+250, total)
	assert.Equal(t, XPAlertAutoDismissMs, autoDismissMs)

	logs := svc.Snapshot().ActivityLog
	assert.Equal(t, "MILESTONE_REACHED: EARNED_250_XP", logs[len(logs)-1].Text)
	assert.Equal(t, model.LogSuccess, logs[len(logs)-1].Kind)

	raw, ok, _ := store.Get(model.SlotXP)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprint(model.SeedXP+250), raw)

	_, _, err = svc.AwardExperience(0)
	assert.ErrorIs(t, err, util.ErrValidation)
	_, _, err = svc.AwardExperience(-50)
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestSelectView(t *testing.T) {
	svc, _, _ := newTestSession(t)

	pulse, err := svc.SelectView(model.ViewMentor)
	require.NoError(t, err)
	assert.Equal(t, ViewPulseMs, pulse)

	snap := svc.Snapshot()
	assert.Equal(t, model.ViewMentor, snap.ActiveView)
	assert.Equal(t, "INTERFACE_SHIFT: NAVIGATED_TO_MENTOR", snap.ActivityLog[len(snap.ActivityLog)-1].Text)

	// 重复选择不追加日志
	before := len(snap.ActivityLog)
	_, err = svc.SelectView(model.ViewMentor)
	require.NoError(t, err)
	assert.Len(t, svc.Snapshot().ActivityLog, before)

	_, err = svc.SelectView(model.ViewTab("dashboard"))
	assert.ErrorIs(t, err, util.ErrValidation)
}

// TestToggleDayTwice verifies the toggle is a genuine toggle: applying it twice
// restores the prior state.
func TestToggleDayTwice(t *testing.T) {
	svc, _, _ := newTestSession(t)

	completed, err := svc.ToggleDayCompletion("m1", 1)
	require.NoError(t, err)
	assert.True(t, completed)
	snap := svc.Snapshot()
	assert.True(t, snap.DayCompleted("m1", 1))

	completed, err = svc.ToggleDayCompletion("m1", 1)
	require.NoError(t, err)
	assert.False(t, completed)
	snap = svc.Snapshot()
	assert.False(t, snap.DayCompleted("m1", 1))
}

func TestToggleDayAddressing(t *testing.T) {
	svc, _, _ := newTestSession(t)

	_, err := svc.ToggleDayCompletion("m99", 1)
	assert.ErrorIs(t, err, util.ErrNotFound)

	// 天号不在模块日程内
	_, err = svc.ToggleDayCompletion("m1", 999)
	assert.ErrorIs(t, err, util.ErrValidation)
}

// TestSubmitQuizCorrect verifies the success path mutates xp, completedDays and
// the log atomically.
func TestSubmitQuizCorrect(t *testing.T) {
	svc, store, _ := newTestSession(t)
	// m0 第2天：布尔逻辑，正确答案下标3
	result, err := svc.SubmitQuizAnswer("m0", 2, 3)
	require.NoError(t, err)

	assert.True(t, result.Correct)
	assert.Equal(t, QuizRewardXP, result.AwardedXP)

	snap := svc.Snapshot()
	assert.Equal(t, model.SeedXP+QuizRewardXP, snap.ExperiencePoints)
	assert.True(t, snap.DayCompleted("m0", 2))
	assert.Equal(t, "MILESTONE_REACHED: EARNED_500_XP", snap.ActivityLog[len(snap.ActivityLog)-1].Text)

	// 槽位已持久化
	raw, ok, _ := store.Get(model.SlotCompletedDays)
	require.True(t, ok)
	var persisted map[string][]int
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Contains(t, persisted["m0"], 2)
}

// TestSubmitQuizIncorrect verifies a wrong answer mutates nothing but still
// surfaces the explanation.
func TestSubmitQuizIncorrect(t *testing.T) {
	svc, _, _ := newTestSession(t)
	before := svc.Snapshot()

	result, err := svc.SubmitQuizAnswer("m0", 2, 0)
	require.NoError(t, err)

	assert.False(t, result.Correct)
	assert.NotEmpty(t, result.Explanation)

	after := svc.Snapshot()
	assert.Equal(t, before.ExperiencePoints, after.ExperiencePoints)
	assert.False(t, after.DayCompleted("m0", 2))
	assert.Len(t, after.ActivityLog, len(before.ActivityLog), "failed quiz must not log")
}

// TestSubmitQuizAlreadyCompleted verifies resubmission of a completed day is
// rejected without a second award.
func TestSubmitQuizAlreadyCompleted(t *testing.T) {
	svc, _, _ := newTestSession(t)

	// m0 第1天在种子里已完成
	_, err := svc.SubmitQuizAnswer("m0", 1, 1)
	assert.ErrorIs(t, err, util.ErrAlreadyCompleted)
	assert.Equal(t, model.SeedXP, svc.Snapshot().ExperiencePoints)
}

func TestSubmitQuizAddressing(t *testing.T) {
	svc, _, _ := newTestSession(t)

	_, err := svc.SubmitQuizAnswer("m99", 1, 0)
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = svc.SubmitQuizAnswer("m0", 999, 0)
	assert.ErrorIs(t, err, util.ErrNotFound)

	// 占位天没有题目
	_, err = svc.SubmitQuizAnswer("m0", 4, 0)
	assert.ErrorIs(t, err, util.ErrNotFound)

	// 下标越界
	_, err = svc.SubmitQuizAnswer("m0", 2, 17)
	assert.ErrorIs(t, err, util.ErrValidation)
}

// TestSubmitQuizCompletesModule verifies reaching 100% flips the module to
// COMPLETED and promotes the first LOCKED module to CURRENT.
func TestSubmitQuizCompletesModule(t *testing.T) {
	store := newMemSlotStore()
	roadmap := []model.RoadmapModule{
		{
			ID: "alpha", Title: "Core Systems", Status: model.ModuleCurrent,
			DailySchedule: []model.DailyTask{{
				Day: 1, Title: "Only day",
				Quiz: &model.QuizQuestion{Question: "q", Options: []string{"a", "b"}, CorrectIndex: 1, Explanation: "e"},
			}},
		},
		{ID: "beta", Title: "Next Frontier", Status: model.ModuleLocked},
	}
	data, err := json.Marshal(roadmap)
	require.NoError(t, err)
	require.NoError(t, store.Set(model.SlotRoadmap, string(data)))
	require.NoError(t, store.Set(model.SlotCompletedDays, "{}"))

	svc := NewSessionService(store, defaultFakeGenerator(), testStorage(t))
	svc.Hydrate()

	result, err := svc.SubmitQuizAnswer("alpha", 1, 1)
	require.NoError(t, err)
	assert.True(t, result.ModuleCompleted)

	snap := svc.Snapshot()
	assert.Equal(t, model.ModuleCompleted, snap.Roadmap[0].Status)
	assert.Equal(t, 100, snap.Roadmap[0].Progress)
	assert.Equal(t, model.ModuleCurrent, snap.Roadmap[1].Status, "first locked module is promoted")

	var sawSecured bool
	for _, entry := range snap.ActivityLog {
		if entry.Text == "KNOWLEDGE_STREAM_SECURED: CORE SYSTEMS" {
			sawSecured = true
		}
	}
	assert.True(t, sawSecured)
}

func TestInjectManualTask(t *testing.T) {
	svc, _, _ := newTestSession(t)

	task, err := svc.InjectManualTask("  Wire up CI  ")
	require.NoError(t, err)
	assert.Equal(t, "Wire up CI", task.Title)
	assert.Equal(t, model.CategoryManual, task.Category)
	assert.Equal(t, model.DifficultyMedium, task.Difficulty)
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.ID)

	_, err = svc.InjectManualTask("   ")
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestToggleTaskCompletion(t *testing.T) {
	svc, _, _ := newTestSession(t)

	task, err := svc.InjectManualTask("Ship it")
	require.NoError(t, err)

	toggled, err := svc.ToggleTaskCompletion(task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = svc.ToggleTaskCompletion(task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	_, err = svc.ToggleTaskCompletion("nope")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

// TestResetProject verifies reset clears idea and tasks, removes the blueprint
// reference, and leaves notes alone.
func TestResetProject(t *testing.T) {
	svc, _, _ := newTestSession(t)

	_, err := svc.GenerateProject(context.Background(), "a social network for ferrets", model.StyleNeon)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateNotes("keep these notes"))

	require.NoError(t, svc.ResetProject(context.Background()))

	snap := svc.Snapshot()
	assert.Empty(t, snap.ProjectIdea)
	assert.Empty(t, snap.ProjectTasks)
	assert.Nil(t, snap.Blueprint)
	assert.Equal(t, "keep these notes", snap.ProjectNotes)

	last := snap.ActivityLog[len(snap.ActivityLog)-1]
	assert.Equal(t, "SYSTEM_TERMINATED: ARCHITECTURAL_SYNC_BROKEN", last.Text)
	assert.Equal(t, model.LogWarn, last.Kind)
}

// TestExportMatchesSession verifies the export document equals the in-memory
// project state at the moment of export.
func TestExportMatchesSession(t *testing.T) {
	svc, _, _ := newTestSession(t)

	_, err := svc.GenerateProject(context.Background(), "realtime chess engine", model.StyleBlueprint)
	require.NoError(t, err)
	_, err = svc.InjectManualTask("Profile the evaluator")
	require.NoError(t, err)
	require.NoError(t, svc.UpdateNotes("alpha-beta first"))

	snap := svc.Snapshot()
	doc, err := svc.Export()
	require.NoError(t, err)

	assert.Equal(t, snap.ProjectIdea, doc.Project)
	assert.Equal(t, snap.ProjectTasks, doc.Tasks)
	assert.Equal(t, "alpha-beta first", doc.Notes)
	assert.False(t, doc.ExportedAt.IsZero())
}

// TestGenerateProjectSuccess verifies the full generation path: tasks replaced,
// blueprint stored and referenced, success logs appended.
func TestGenerateProjectSuccess(t *testing.T) {
	svc, store, _ := newTestSession(t)

	session, err := svc.GenerateProject(context.Background(), "an IDE for shader pipelines", model.StyleCyberpunk)
	require.NoError(t, err)

	assert.Equal(t, "an IDE for shader pipelines", session.ProjectIdea)
	require.Len(t, session.ProjectTasks, 2)
	require.NotNil(t, session.Blueprint)
	assert.Equal(t, model.StyleCyberpunk, session.Blueprint.Style)
	assert.Contains(t, session.Blueprint.ObjectKey, "blueprints/")

	texts := logTexts(session.ActivityLog)
	assert.Contains(t, texts, "MASTERPIECE SCHEMA GENERATED SUCCESSFULLY.")
	assert.Contains(t, texts, "VISUAL BLUEPRINT SYNCHRONIZED.")

	raw, ok, _ := store.Get(model.SlotBlueprint)
	require.True(t, ok)
	var ref model.BlueprintRef
	require.NoError(t, json.Unmarshal([]byte(raw), &ref))
	assert.Equal(t, session.Blueprint.ObjectKey, ref.ObjectKey)
}

// TestGenerateProjectBlueprintFailure verifies the all-or-nothing barrier:
// the idea is retained, tasks are untouched, exactly one warn entry is added,
// and a clean retry succeeds.
func TestGenerateProjectBlueprintFailure(t *testing.T) {
	svc, _, gen := newTestSession(t)
	gen.imageErr = util.NewGenerationError("blueprint", errors.New("upstream 500"))

	beforeTasks := svc.Snapshot().ProjectTasks

	_, err := svc.GenerateProject(context.Background(), "voxel farming sim", model.StyleMinimalist)
	require.Error(t, err)
	assert.True(t, util.IsGenerationError(err))

	snap := svc.Snapshot()
	assert.Equal(t, "voxel farming sim", snap.ProjectIdea, "idea commit survives the failure")
	assert.Equal(t, beforeTasks, snap.ProjectTasks, "tasks unchanged on failure")
	assert.Nil(t, snap.Blueprint)

	warns := 0
	for _, entry := range snap.ActivityLog {
		if entry.Kind == model.LogWarn {
			warns++
		}
	}
	assert.Equal(t, 1, warns, "exactly one warn entry")

	// 重试成功
	gen.imageErr = nil
	session, err := svc.GenerateProject(context.Background(), "voxel farming sim", model.StyleMinimalist)
	require.NoError(t, err)
	assert.NotNil(t, session.Blueprint)
	assert.Len(t, session.ProjectTasks, 2)
}

func TestGenerateProjectEmptyIdea(t *testing.T) {
	svc, _, _ := newTestSession(t)

	_, err := svc.GenerateProject(context.Background(), "   ", model.StyleBlueprint)
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestRegenerateBlueprintRequiresIdea(t *testing.T) {
	svc, _, _ := newTestSession(t)

	_, err := svc.RegenerateBlueprint(context.Background(), model.StyleNeon)
	assert.ErrorIs(t, err, util.ErrNoProjectIdea)
}

func TestRegenerateBlueprint(t *testing.T) {
	svc, _, _ := newTestSession(t)

	_, err := svc.GenerateProject(context.Background(), "distributed build cache", model.StyleBlueprint)
	require.NoError(t, err)
	firstKey := svc.Snapshot().Blueprint.ObjectKey

	ref, err := svc.RegenerateBlueprint(context.Background(), model.StyleNeon)
	require.NoError(t, err)
	assert.Equal(t, model.StyleNeon, ref.Style)
	assert.NotEqual(t, firstKey, ref.ObjectKey)

	snap := svc.Snapshot()
	assert.Equal(t, model.StyleNeon, snap.BlueprintStyle)
	assert.Contains(t, logTexts(snap.ActivityLog), "VISUAL BLUEPRINT REFRESH COMPLETE.")
}

func TestSetPreferencesBounds(t *testing.T) {
	svc, _, _ := newTestSession(t)

	err := svc.SetPreferences(model.Preferences{NeuralIntensity: 101})
	assert.ErrorIs(t, err, util.ErrValidation)
	err = svc.SetPreferences(model.Preferences{NeuralIntensity: -1})
	assert.ErrorIs(t, err, util.ErrValidation)
	assert.NoError(t, svc.SetPreferences(model.Preferences{NeuralIntensity: 100}))
}

func TestSetCursor(t *testing.T) {
	svc, _, _ := newTestSession(t)

	require.NoError(t, svc.SetCursor("m1", 3))
	snap := svc.Snapshot()
	assert.Equal(t, "m1", snap.SelectedModuleID)
	assert.Equal(t, 3, snap.SelectedDay)

	assert.ErrorIs(t, svc.SetCursor("m99", 1), util.ErrNotFound)
	assert.ErrorIs(t, svc.SetCursor("m1", 0), util.ErrValidation)
}

func logTexts(logs []model.SystemLog) []string {
	texts := make([]string, 0, len(logs))
	for _, entry := range logs {
		texts = append(texts, entry.Text)
	}
	return texts
}
