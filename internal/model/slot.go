package model

// SessionSlot 持久化槽位：每个会话字段一行，值统一编码为字符串
// （结构化字段为JSON，标量为原始字符串/十进制/"true"/"false"）
type SessionSlot struct {
	Key   string `gorm:"primaryKey;size:64;column:slot_key"`
	Value string `gorm:"type:longtext;column:slot_value"`
}

func (SessionSlot) TableName() string {
	return "session_slots"
}

// 槽位键。与原始客户端的 odyssey_* 本地存储键一一对应
const (
	SlotActiveView       = "odyssey_active_tab"
	SlotProjectIdea      = "odyssey_project_idea"
	SlotProjectTasks     = "odyssey_project_tasks"
	SlotRoadmap          = "odyssey_roadmap"
	SlotXP               = "odyssey_xp"
	SlotNeuralIntensity  = "odyssey_neural_intensity"
	SlotProjectNotes     = "odyssey_project_notes"
	SlotSystemLogs       = "odyssey_system_logs"
	SlotCompletedDays    = "odyssey_completed_days"
	SlotSelectedModule   = "odyssey_selected_module"
	SlotSelectedDay      = "odyssey_selected_day"
	SlotSidebarCollapsed = "odyssey_sidebar_collapsed"
	SlotDeepWork         = "odyssey_deep_work"
	SlotInitialized      = "odyssey_initialized"
	SlotBlueprint        = "odyssey_blueprint"
	SlotBlueprintStyle   = "odyssey_blueprint_style"
)
