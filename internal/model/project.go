package model

// TaskCategory 项目任务分类
type TaskCategory string

const (
	CategoryFundamentals TaskCategory = "Fundamentals"
	CategoryFrontend     TaskCategory = "Frontend"
	CategoryBackend      TaskCategory = "Backend"
	CategoryDatabase     TaskCategory = "Database"
	CategoryDevOps       TaskCategory = "DevOps"
	CategorySystemDesign TaskCategory = "System Design"
	CategorySecurity     TaskCategory = "Security"
	CategoryManual       TaskCategory = "MANUAL"
)

type TaskDifficulty string

const (
	DifficultyEasy   TaskDifficulty = "Easy"
	DifficultyMedium TaskDifficulty = "Medium"
	DifficultyHard   TaskDifficulty = "Hard"
)

type ProjectTask struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Category    TaskCategory   `json:"category"`
	Difficulty  TaskDifficulty `json:"difficulty"`
	Completed   bool           `json:"completed"`
	Description string         `json:"description"`
}

// BlueprintStyle 蓝图生成风格
type BlueprintStyle string

const (
	StyleBlueprint  BlueprintStyle = "blueprint"
	StyleNeon       BlueprintStyle = "neon"
	StyleMinimalist BlueprintStyle = "minimalist"
	StyleCyberpunk  BlueprintStyle = "cyberpunk"
)

func ValidBlueprintStyle(s BlueprintStyle) bool {
	switch s {
	case StyleBlueprint, StyleNeon, StyleMinimalist, StyleCyberpunk:
		return true
	}
	return false
}

// BlueprintRef 已生成蓝图的引用。区分"尚未生成"（nil）与"生成失败"（无变更）
type BlueprintRef struct {
	ObjectKey string         `json:"objectKey"`
	URL       string         `json:"url"`
	Style     BlueprintStyle `json:"style"`
}
