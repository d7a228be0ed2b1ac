package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"odyssey_backend/internal/model"
	"odyssey_backend/internal/util"
	"odyssey_backend/pkg/logger"
	"odyssey_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// QuizRewardXP 每日验证通过奖励
	QuizRewardXP = 500
	// ViewPulseMs 切换面板时前端脉冲特效时长
	ViewPulseMs = 300
	// XPAlertAutoDismissMs 经验提示自动消失时长
	XPAlertAutoDismissMs = 3000

	defaultNeuralIntensity = 50
)

// Generator 项目生成门面。实现见 GenerationService
type Generator interface {
	GenerateTasks(ctx context.Context, idea string) ([]model.ProjectTask, error)
	GenerateBlueprint(ctx context.Context, idea string, style model.BlueprintStyle) ([]byte, error)
}

// QuizResult 每日验证提交结果
type QuizResult struct {
	Correct         bool   `json:"correct"`
	Explanation     string `json:"explanation,omitempty"`
	AwardedXP       int    `json:"awardedXp"`
	ModuleCompleted bool   `json:"moduleCompleted"`
}

// SessionService 单例会话的唯一写入方。所有变更意图串行执行，
// 意图结束时把该意图触碰的槽位在一个事务内落库
type SessionService struct {
	mu        sync.Mutex
	session   model.Session
	codec     sessionCodec
	generator Generator
	storage   *StorageService

	// onMutate 在每次成功落库后调用（统计缓存失效钩子），可为 nil
	onMutate func()
}

func NewSessionService(store SlotStore, generator Generator, storage *StorageService) *SessionService {
	return &SessionService{
		codec:     sessionCodec{store: store},
		generator: generator,
		storage:   storage,
	}
}

func (s *SessionService) SetOnMutate(fn func()) {
	s.onMutate = fn
}

// Hydrate 启动时从槽位表恢复会话。缺失或受损的槽位逐字段回退到种子值，
// 全新数据库等价于首次启动
func (s *SessionService) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := model.ViewTab(s.codec.getString(model.SlotActiveView, string(model.ViewRoadmap)))
	if !model.ValidViewTab(view) {
		view = model.ViewRoadmap
	}
	s.session.ActiveView = view

	s.session.ExperiencePoints = s.codec.getInt(model.SlotXP, model.SeedXP)
	if s.session.ExperiencePoints < 0 {
		s.session.ExperiencePoints = 0
	}

	s.session.ProjectIdea = s.codec.getString(model.SlotProjectIdea, "")
	s.session.ProjectNotes = s.codec.getString(model.SlotProjectNotes, "")

	s.codec.getJSON(model.SlotProjectTasks, &s.session.ProjectTasks, func() {
		s.session.ProjectTasks = []model.ProjectTask{}
	})

	s.codec.getJSON(model.SlotSystemLogs, &s.session.ActivityLog, func() {
		s.session.ActivityLog = model.SeedLog(time.Now().Format(util.LogTimeFormat))
	})
	if len(s.session.ActivityLog) > model.MaxSystemLogs {
		s.session.ActivityLog = s.session.ActivityLog[len(s.session.ActivityLog)-model.MaxSystemLogs:]
	}

	s.codec.getJSON(model.SlotRoadmap, &s.session.Roadmap, func() {
		s.session.Roadmap = model.SeedRoadmap()
	})
	s.codec.getJSON(model.SlotCompletedDays, &s.session.CompletedDays, func() {
		s.session.CompletedDays = model.SeedCompletedDays()
	})

	s.session.SelectedModuleID = s.codec.getString(model.SlotSelectedModule, "")
	s.session.SelectedDay = s.codec.getInt(model.SlotSelectedDay, 1)

	s.session.Prefs = model.Preferences{
		SidebarCollapsed: s.codec.getBool(model.SlotSidebarCollapsed, false),
		DeepWorkMode:     s.codec.getBool(model.SlotDeepWork, false),
		NeuralIntensity:  s.codec.getInt(model.SlotNeuralIntensity, defaultNeuralIntensity),
	}
	if s.session.Prefs.NeuralIntensity < 0 || s.session.Prefs.NeuralIntensity > 100 {
		s.session.Prefs.NeuralIntensity = defaultNeuralIntensity
	}

	s.session.Initialized = s.codec.has(model.SlotInitialized)

	var ref model.BlueprintRef
	if s.codec.getJSON(model.SlotBlueprint, &ref, func() {}) && ref.ObjectKey != "" {
		s.session.Blueprint = &ref
	}
	style := model.BlueprintStyle(s.codec.getString(model.SlotBlueprintStyle, string(model.StyleBlueprint)))
	if !model.ValidBlueprintStyle(style) {
		style = model.StyleBlueprint
	}
	s.session.BlueprintStyle = style

	logger.Log.Info("会话水合完成",
		zap.Int("xp", s.session.ExperiencePoints),
		zap.Int("modules", len(s.session.Roadmap)),
		zap.Int("logs", len(s.session.ActivityLog)),
		zap.Bool("initialized", s.session.Initialized))
}

// Snapshot 当前会话的拷贝（读端无锁争用之外的安全视图）
func (s *SessionService) Snapshot() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySession()
}

func (s *SessionService) copySession() model.Session {
	snap := s.session
	snap.ProjectTasks = append([]model.ProjectTask(nil), s.session.ProjectTasks...)
	snap.ActivityLog = append([]model.SystemLog(nil), s.session.ActivityLog...)
	snap.Roadmap = append([]model.RoadmapModule(nil), s.session.Roadmap...)
	snap.CompletedDays = make(map[string][]int, len(s.session.CompletedDays))
	for k, v := range s.session.CompletedDays {
		snap.CompletedDays[k] = append([]int(nil), v...)
	}
	if s.session.Blueprint != nil {
		ref := *s.session.Blueprint
		snap.Blueprint = &ref
	}
	return snap
}

// commit 把脏槽位在一个事务内写入。失败时内存状态已领先于存储，
// 下次成功提交会重新收敛
func (s *SessionService) commit(dirty map[string]string) error {
	if err := s.codec.store.SetMany(dirty); err != nil {
		logger.Log.Error("槽位提交失败", zap.Int("slots", len(dirty)), zap.Error(err))
		return err
	}
	if s.onMutate != nil {
		s.onMutate()
	}
	return nil
}

func (s *SessionService) appendLog(text string, kind model.LogKind) {
	entry := model.SystemLog{
		ID:        fmt.Sprintf("log-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8]),
		Text:      text,
		Kind:      kind,
		Timestamp: time.Now().Format(util.LogTimeFormat),
	}
	s.session.ActivityLog = append(s.session.ActivityLog, entry)
	if len(s.session.ActivityLog) > model.MaxSystemLogs {
		s.session.ActivityLog = s.session.ActivityLog[len(s.session.ActivityLog)-model.MaxSystemLogs:]
	}
}

// SelectView 切换顶层面板。重复选择当前面板不产生日志
func (s *SessionService) SelectView(view model.ViewTab) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !model.ValidViewTab(view) {
		return 0, util.ValidationError("unknown view %q", view)
	}
	if view == s.session.ActiveView {
		return ViewPulseMs, nil
	}
	s.session.ActiveView = view
	s.appendLog(fmt.Sprintf("INTERFACE_SHIFT: NAVIGATED_TO_%s", strings.ToUpper(string(view))), model.LogInfo)

	if err := s.commit(map[string]string{
		model.SlotActiveView: string(view),
		model.SlotSystemLogs: encodeJSON(s.session.ActivityLog),
	}); err != nil {
		return 0, err
	}
	return ViewPulseMs, nil
}

// AwardExperience 发放经验。amount 必须为正
func (s *SessionService) AwardExperience(amount int) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return 0, 0, util.ValidationError("xp amount must be positive, got %d", amount)
	}
	s.session.ExperiencePoints += amount
	s.appendLog(fmt.Sprintf("MILESTONE_REACHED: EARNED_%d_XP", amount), model.LogSuccess)
	monitoring.XPAwarded.Add(float64(amount))

	if err := s.commit(map[string]string{
		model.SlotXP:         encodeInt(s.session.ExperiencePoints),
		model.SlotSystemLogs: encodeJSON(s.session.ActivityLog),
	}); err != nil {
		return 0, 0, err
	}
	return s.session.ExperiencePoints, XPAlertAutoDismissMs, nil
}

// RecordLog 追加一条活动日志
func (s *SessionService) RecordLog(text string, kind model.LogKind) (model.SystemLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		return model.SystemLog{}, util.ValidationError("log text must not be empty")
	}
	if !model.ValidLogKind(kind) {
		return model.SystemLog{}, util.ValidationError("unknown log kind %q", kind)
	}
	s.appendLog(text, kind)

	entry := s.session.ActivityLog[len(s.session.ActivityLog)-1]
	if err := s.commit(map[string]string{
		model.SlotSystemLogs: encodeJSON(s.session.ActivityLog),
	}); err != nil {
		return model.SystemLog{}, err
	}
	return entry, nil
}

// ToggleDayCompletion 翻转某天的完成标记。再次翻转恢复原状
func (s *SessionService) ToggleDayCompletion(moduleID string, day int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	module := s.session.FindModule(moduleID)
	if module == nil {
		return false, fmt.Errorf("module %s: %w", moduleID, util.ErrNotFound)
	}
	if !module.HasDay(day) {
		return false, util.ValidationError("day %d is not in module %s schedule", day, moduleID)
	}

	if s.session.DayCompleted(moduleID, day) {
		days := s.session.CompletedDays[moduleID]
		next := make([]int, 0, len(days)-1)
		for _, d := range days {
			if d != day {
				next = append(next, d)
			}
		}
		s.session.CompletedDays[moduleID] = next
	} else {
		if s.session.CompletedDays == nil {
			s.session.CompletedDays = map[string][]int{}
		}
		s.session.CompletedDays[moduleID] = append(s.session.CompletedDays[moduleID], day)
		sort.Ints(s.session.CompletedDays[moduleID])
	}
	module.Progress = ModuleProgress(module, s.session.CompletedDays)

	if err := s.commit(map[string]string{
		model.SlotCompletedDays: encodeJSON(s.session.CompletedDays),
		model.SlotRoadmap:       encodeJSON(s.session.Roadmap),
	}); err != nil {
		return false, err
	}
	return s.session.DayCompleted(moduleID, day), nil
}

// SubmitQuizAnswer 提交每日验证。答对才发生状态变更：
// 加经验、记完成天、写成功日志，必要时完成模块并解锁下一个
func (s *SessionService) SubmitQuizAnswer(moduleID string, day, chosenIndex int) (QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	module := s.session.FindModule(moduleID)
	if module == nil {
		return QuizResult{}, fmt.Errorf("module %s: %w", moduleID, util.ErrNotFound)
	}
	task := module.FindDay(day)
	if task == nil {
		return QuizResult{}, fmt.Errorf("day %d in module %s: %w", day, moduleID, util.ErrNotFound)
	}
	if task.Quiz == nil {
		return QuizResult{}, fmt.Errorf("day %d has no quiz: %w", day, util.ErrNotFound)
	}
	if s.session.DayCompleted(moduleID, day) {
		return QuizResult{}, util.ErrAlreadyCompleted
	}
	if chosenIndex < 0 || chosenIndex >= len(task.Quiz.Options) {
		return QuizResult{}, util.ValidationError("answer index %d out of range", chosenIndex)
	}

	if chosenIndex != task.Quiz.CorrectIndex {
		// 答错不留痕：不改会话，不写日志
		return QuizResult{Correct: false, Explanation: task.Quiz.Explanation}, nil
	}

	s.session.ExperiencePoints += QuizRewardXP
	if s.session.CompletedDays == nil {
		s.session.CompletedDays = map[string][]int{}
	}
	s.session.CompletedDays[moduleID] = append(s.session.CompletedDays[moduleID], day)
	sort.Ints(s.session.CompletedDays[moduleID])
	s.appendLog(fmt.Sprintf("MILESTONE_REACHED: EARNED_%d_XP", QuizRewardXP), model.LogSuccess)
	monitoring.XPAwarded.Add(QuizRewardXP)

	module.Progress = ModuleProgress(module, s.session.CompletedDays)
	moduleCompleted := false
	if module.Progress == 100 && module.Status != model.ModuleCompleted {
		module.Status = model.ModuleCompleted
		moduleCompleted = true
		s.appendLog(fmt.Sprintf("KNOWLEDGE_STREAM_SECURED: %s", strings.ToUpper(module.Title)), model.LogSuccess)
		// 解锁下一个模块：按路线图顺序取第一个 LOCKED 提升为 CURRENT
		for i := range s.session.Roadmap {
			if s.session.Roadmap[i].Status == model.ModuleLocked {
				s.session.Roadmap[i].Status = model.ModuleCurrent
				break
			}
		}
	}

	if err := s.commit(map[string]string{
		model.SlotXP:            encodeInt(s.session.ExperiencePoints),
		model.SlotCompletedDays: encodeJSON(s.session.CompletedDays),
		model.SlotRoadmap:       encodeJSON(s.session.Roadmap),
		model.SlotSystemLogs:    encodeJSON(s.session.ActivityLog),
	}); err != nil {
		return QuizResult{}, err
	}
	return QuizResult{
		Correct:         true,
		Explanation:     task.Quiz.Explanation,
		AwardedXP:       QuizRewardXP,
		ModuleCompleted: moduleCompleted,
	}, nil
}

// InjectManualTask 手工注入一个项目任务节点
func (s *SessionService) InjectManualTask(title string) (model.ProjectTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return model.ProjectTask{}, util.ValidationError("task title must not be empty")
	}
	task := model.ProjectTask{
		ID:         uuid.NewString(),
		Title:      title,
		Category:   model.CategoryManual,
		Difficulty: model.DifficultyMedium,
		Completed:  false,
	}
	s.session.ProjectTasks = append(s.session.ProjectTasks, task)
	s.appendLog(fmt.Sprintf("MANUAL_INJECTION: NODE_%s ADDED TO KERNEL.", strings.ToUpper(task.ID[len(task.ID)-4:])), model.LogSuccess)

	if err := s.commit(map[string]string{
		model.SlotProjectTasks: encodeJSON(s.session.ProjectTasks),
		model.SlotSystemLogs:   encodeJSON(s.session.ActivityLog),
	}); err != nil {
		return model.ProjectTask{}, err
	}
	return task, nil
}

// ToggleTaskCompletion 翻转任务完成位
func (s *SessionService) ToggleTaskCompletion(taskID string) (model.ProjectTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.session.FindTask(taskID)
	if task == nil {
		return model.ProjectTask{}, fmt.Errorf("task %s: %w", taskID, util.ErrNotFound)
	}
	task.Completed = !task.Completed
	short := taskID
	if len(short) > 4 {
		short = short[:4]
	}
	s.appendLog(fmt.Sprintf("SYNAPSE UPDATE: NODE %s MODIFIED.", strings.ToUpper(short)), model.LogSuccess)

	if err := s.commit(map[string]string{
		model.SlotProjectTasks: encodeJSON(s.session.ProjectTasks),
		model.SlotSystemLogs:   encodeJSON(s.session.ActivityLog),
	}); err != nil {
		return model.ProjectTask{}, err
	}
	return *task, nil
}

// UpdateNotes 全量替换项目笔记
func (s *SessionService) UpdateNotes(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.ProjectNotes = text
	return s.commit(map[string]string{
		model.SlotProjectNotes: text,
	})
}

// SetCursor 记录路线图浏览位置
func (s *SessionService) SetCursor(moduleID string, day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if moduleID != "" && s.session.FindModule(moduleID) == nil {
		return fmt.Errorf("module %s: %w", moduleID, util.ErrNotFound)
	}
	if day < 1 {
		return util.ValidationError("day must be >= 1, got %d", day)
	}
	s.session.SelectedModuleID = moduleID
	s.session.SelectedDay = day
	return s.commit(map[string]string{
		model.SlotSelectedModule: moduleID,
		model.SlotSelectedDay:    encodeInt(day),
	})
}

// SetPreferences 更新界面偏好
func (s *SessionService) SetPreferences(prefs model.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prefs.NeuralIntensity < 0 || prefs.NeuralIntensity > 100 {
		return util.ValidationError("neural intensity must be 0-100, got %d", prefs.NeuralIntensity)
	}
	s.session.Prefs = prefs
	return s.commit(map[string]string{
		model.SlotSidebarCollapsed: encodeBool(prefs.SidebarCollapsed),
		model.SlotDeepWork:         encodeBool(prefs.DeepWorkMode),
		model.SlotNeuralIntensity:  encodeInt(prefs.NeuralIntensity),
	})
}

// MarkInitialized 完成首次引导。哨兵槽位只看存在性
func (s *SessionService) MarkInitialized() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Initialized = true
	return s.commit(map[string]string{
		model.SlotInitialized: "true",
	})
}

// ResetProject 终止当前项目：清空构想与任务，笔记保留，
// 蓝图引用移除（存储对象尽力删除）
func (s *SessionService) ResetProject(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Blueprint != nil && s.storage != nil {
		if err := s.storage.Delete(ctx, s.session.Blueprint.ObjectKey); err != nil {
			logger.Log.Warn("蓝图对象删除失败", zap.String("key", s.session.Blueprint.ObjectKey), zap.Error(err))
		}
	}
	s.session.ProjectIdea = ""
	s.session.ProjectTasks = []model.ProjectTask{}
	s.session.Blueprint = nil
	s.appendLog("SYSTEM_TERMINATED: ARCHITECTURAL_SYNC_BROKEN", model.LogWarn)

	if err := s.commit(map[string]string{
		model.SlotProjectIdea:  "",
		model.SlotProjectTasks: encodeJSON(s.session.ProjectTasks),
		model.SlotBlueprint:    "",
		model.SlotSystemLogs:   encodeJSON(s.session.ActivityLog),
	}); err != nil {
		return err
	}
	return nil
}

// Export 导出项目档案。任务列表与导出瞬间的会话内容逐项相等
func (s *SessionService) Export() (model.ExportDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := model.ExportDocument{
		Project:        s.session.ProjectIdea,
		BlueprintStyle: s.session.BlueprintStyle,
		Tasks:          append([]model.ProjectTask(nil), s.session.ProjectTasks...),
		Notes:          s.session.ProjectNotes,
		Logs:           append([]model.SystemLog(nil), s.session.ActivityLog...),
		ExportedAt:     time.Now(),
	}
	s.appendLog("SECURE_EXPORT: ARCHIVE_DATA_SYNCED_TO_EXTERNAL_STORAGE", model.LogSuccess)

	if err := s.commit(map[string]string{
		model.SlotSystemLogs: encodeJSON(s.session.ActivityLog),
	}); err != nil {
		return model.ExportDocument{}, err
	}
	return doc, nil
}

// GenerateProject 生成项目蓝图与任务矩阵。构想先行提交；任务与蓝图并发
// 生成，任一失败则全部失败，会话除构想与日志外不发生变更
func (s *SessionService) GenerateProject(ctx context.Context, idea string, style model.BlueprintStyle) (model.Session, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return model.Session{}, util.ValidationError("project idea must not be empty")
	}
	if !model.ValidBlueprintStyle(style) {
		style = model.StyleBlueprint
	}

	s.mu.Lock()
	s.session.ProjectIdea = idea
	s.appendLog(fmt.Sprintf("INITIALIZING PROJECT MATRIX [MODE: %s]", strings.ToUpper(string(style))), model.LogInfo)
	s.appendLog("DECRYPTING ARCHITECTURAL CONSTRAINTS...", model.LogInfo)
	if err := s.commit(map[string]string{
		model.SlotProjectIdea: idea,
		model.SlotSystemLogs:  encodeJSON(s.session.ActivityLog),
	}); err != nil {
		s.mu.Unlock()
		return model.Session{}, err
	}
	s.mu.Unlock()

	var (
		tasks []model.ProjectTask
		image []byte
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.generator.GenerateTasks(gctx, idea)
		return err
	})
	g.Go(func() error {
		var err error
		image, err = s.generator.GenerateBlueprint(gctx, idea, style)
		return err
	})

	if err := g.Wait(); err != nil {
		s.recordGenerationFailure("SYSTEM CRITICAL: GENERATION SEQUENCE ABORTED.", err)
		return model.Session{}, err
	}

	ref, err := s.storeBlueprint(ctx, image, style)
	if err != nil {
		s.recordGenerationFailure("SYSTEM CRITICAL: GENERATION SEQUENCE ABORTED.", err)
		return model.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.ProjectTasks = tasks
	s.session.Blueprint = ref
	s.session.BlueprintStyle = style
	s.appendLog("MASTERPIECE SCHEMA GENERATED SUCCESSFULLY.", model.LogSuccess)
	s.appendLog("VISUAL BLUEPRINT SYNCHRONIZED.", model.LogSuccess)

	if err := s.commit(map[string]string{
		model.SlotProjectTasks:   encodeJSON(s.session.ProjectTasks),
		model.SlotBlueprint:      encodeJSON(ref),
		model.SlotBlueprintStyle: string(style),
		model.SlotSystemLogs:     encodeJSON(s.session.ActivityLog),
	}); err != nil {
		return model.Session{}, err
	}
	return s.copySession(), nil
}

// RegenerateBlueprint 仅重绘蓝图，任务矩阵不动
func (s *SessionService) RegenerateBlueprint(ctx context.Context, style model.BlueprintStyle) (*model.BlueprintRef, error) {
	s.mu.Lock()
	idea := s.session.ProjectIdea
	if idea == "" {
		s.mu.Unlock()
		return nil, util.ErrNoProjectIdea
	}
	if !model.ValidBlueprintStyle(style) {
		style = model.StyleBlueprint
	}
	s.appendLog(fmt.Sprintf("RECONFIGURING VISUAL OUTPUT [STYLE: %s]", strings.ToUpper(string(style))), model.LogInfo)
	if err := s.commit(map[string]string{
		model.SlotSystemLogs: encodeJSON(s.session.ActivityLog),
	}); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	image, err := s.generator.GenerateBlueprint(ctx, idea, style)
	if err != nil {
		s.recordGenerationFailure("BLUEPRINT REFRESH FAILED: SIGNAL INTERFERENCE.", err)
		return nil, err
	}
	ref, err := s.storeBlueprint(ctx, image, style)
	if err != nil {
		s.recordGenerationFailure("BLUEPRINT REFRESH FAILED: SIGNAL INTERFERENCE.", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.session.Blueprint
	s.session.Blueprint = ref
	s.session.BlueprintStyle = style
	s.appendLog("VISUAL BLUEPRINT REFRESH COMPLETE.", model.LogSuccess)

	if err := s.commit(map[string]string{
		model.SlotBlueprint:      encodeJSON(ref),
		model.SlotBlueprintStyle: string(style),
		model.SlotSystemLogs:     encodeJSON(s.session.ActivityLog),
	}); err != nil {
		return nil, err
	}
	if old != nil && s.storage != nil {
		if err := s.storage.Delete(ctx, old.ObjectKey); err != nil {
			logger.Log.Warn("旧蓝图对象删除失败", zap.String("key", old.ObjectKey), zap.Error(err))
		}
	}
	return ref, nil
}

// recordGenerationFailure 生成失败只留一条 warn 日志，不回滚已提交的构想
func (s *SessionService) recordGenerationFailure(text string, cause error) {
	logger.Log.Warn("生成序列失败", zap.String("log", text), zap.Error(cause))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLog(text, model.LogWarn)
	if err := s.commit(map[string]string{
		model.SlotSystemLogs: encodeJSON(s.session.ActivityLog),
	}); err != nil {
		logger.Log.Error("失败日志提交失败", zap.Error(err))
	}
}

func (s *SessionService) storeBlueprint(ctx context.Context, image []byte, style model.BlueprintStyle) (*model.BlueprintRef, error) {
	key := fmt.Sprintf("blueprints/%s.png", uuid.NewString())
	url, err := s.storage.Upload(ctx, key, bytes.NewReader(image), int64(len(image)), "image/png")
	if err != nil {
		return nil, fmt.Errorf("store blueprint: %w", err)
	}
	return &model.BlueprintRef{ObjectKey: key, URL: url, Style: style}, nil
}
