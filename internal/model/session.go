package model

import "time"

// ViewTab 顶层面板
type ViewTab string

const (
	ViewRoadmap ViewTab = "roadmap"
	ViewProject ViewTab = "project"
	ViewMentor  ViewTab = "mentor"
	ViewStats   ViewTab = "stats"
)

func ValidViewTab(v ViewTab) bool {
	switch v {
	case ViewRoadmap, ViewProject, ViewMentor, ViewStats:
		return true
	}
	return false
}

type LogKind string

const (
	LogInfo    LogKind = "info"
	LogWarn    LogKind = "warn"
	LogSuccess LogKind = "success"
)

func ValidLogKind(k LogKind) bool {
	switch k {
	case LogInfo, LogWarn, LogSuccess:
		return true
	}
	return false
}

// SystemLog 活动日志条目。环形缓冲保留最近 MaxSystemLogs 条
type SystemLog struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Kind      LogKind `json:"type"`
	Timestamp string  `json:"timestamp"`
}

// MaxSystemLogs 活动日志上限，超出时从最旧条目开始淘汰
const MaxSystemLogs = 50

type Preferences struct {
	SidebarCollapsed bool `json:"sidebarCollapsed"`
	DeepWorkMode     bool `json:"deepWorkMode"`
	NeuralIntensity  int  `json:"neuralIntensity"` // 0-100 特效强度
}

// Session 单例会话聚合。生命周期 = 进程生命周期；启动时从槽位水合，
// 每个变更意图结束时把脏槽位落库
type Session struct {
	ActiveView       ViewTab                  `json:"activeView"`
	ExperiencePoints int                      `json:"experiencePoints"`
	ProjectIdea      string                   `json:"projectIdea"`
	ProjectTasks     []ProjectTask            `json:"projectTasks"`
	ProjectNotes     string                   `json:"projectNotes"`
	ActivityLog      []SystemLog              `json:"activityLog"`
	Roadmap          []RoadmapModule          `json:"roadmap"`
	CompletedDays    map[string][]int         `json:"completedDays"`
	SelectedModuleID string                   `json:"selectedModuleId"`
	SelectedDay      int                      `json:"selectedDayNumber"`
	Prefs            Preferences              `json:"preferences"`
	Blueprint        *BlueprintRef            `json:"blueprint,omitempty"`
	BlueprintStyle   BlueprintStyle           `json:"blueprintStyle"`
	Initialized      bool                     `json:"initialized"`
}

// FindModule 按ID查找模块，未找到返回 nil
func (s *Session) FindModule(id string) *RoadmapModule {
	for i := range s.Roadmap {
		if s.Roadmap[i].ID == id {
			return &s.Roadmap[i]
		}
	}
	return nil
}

func (s *Session) FindTask(id string) *ProjectTask {
	for i := range s.ProjectTasks {
		if s.ProjectTasks[i].ID == id {
			return &s.ProjectTasks[i]
		}
	}
	return nil
}

// DayCompleted 某模块某天是否已验证完成
func (s *Session) DayCompleted(moduleID string, day int) bool {
	for _, d := range s.CompletedDays[moduleID] {
		if d == day {
			return true
		}
	}
	return false
}

// ChatRole 导师对话角色
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage 导师对话消息。流式回复期间 Streaming=true，每个增量用
// 不可变的前缀替换 Text，而不是原地追加
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Streaming bool      `json:"isStreaming,omitempty"`
	Failed    bool      `json:"failed,omitempty"`
}

// ExportDocument 用户导出的唯一持久交换格式
type ExportDocument struct {
	Project        string         `json:"project"`
	BlueprintStyle BlueprintStyle `json:"blueprintStyle"`
	Tasks          []ProjectTask  `json:"tasks"`
	Notes          string         `json:"notes"`
	Logs           []SystemLog    `json:"logs"`
	ExportedAt     time.Time      `json:"exportedAt"`
}
