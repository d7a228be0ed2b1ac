package model

type ModuleStatus string

const (
	ModuleLocked    ModuleStatus = "LOCKED"
	ModuleCurrent   ModuleStatus = "CURRENT"
	ModuleCompleted ModuleStatus = "COMPLETED"
)

// ResourceType 学习资源类型
type ResourceType string

const (
	ResourceVideo         ResourceType = "video"
	ResourceArticle       ResourceType = "article"
	ResourceCourse        ResourceType = "course"
	ResourceInteractive   ResourceType = "interactive"
	ResourceBook          ResourceType = "book"
	ResourceDocumentation ResourceType = "documentation"
)

type Resource struct {
	Type       ResourceType `json:"type"`
	Label      string       `json:"label"`
	URL        string       `json:"url"`
	Duration   string       `json:"duration,omitempty"`
	Provider   string       `json:"provider,omitempty"`
	Difficulty string       `json:"difficulty"` // Beginner, Intermediate, Advanced, Pro
	Thumbnail  string       `json:"thumbnail,omitempty"`
	EmbedID    string       `json:"embedId,omitempty"`
}

type TheoryPoint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// DailyTask 单日学习单元，Day 在模块内唯一（从1开始）
type DailyTask struct {
	Day            int           `json:"day"`
	Title          string        `json:"title"`
	Objective      string        `json:"objective"`
	ConceptualWhy  string        `json:"conceptualWhy"`
	FunnyStory     string        `json:"funnyStory"`
	StoryImageURL  string        `json:"storyImageUrl"`
	PracticalUsage string        `json:"practicalUsage"`
	DetailedTheory []TheoryPoint `json:"detailedTheory"`
	Resources      []Resource    `json:"resources"`
	Quiz           *QuizQuestion `json:"quiz,omitempty"`
}

type MasteryProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RoadmapModule 课程模块。Progress 是展示用的种子值，权威值由进度服务按
// completedDays 实时推导
type RoadmapModule struct {
	ID             string         `json:"id"`
	Month          int            `json:"month"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	ConceptualWhy  string         `json:"conceptualWhy"`
	FunnyStory     string         `json:"funnyStory"`
	PracticalUsage string         `json:"practicalUsage"`
	Topics         []string       `json:"topics"`
	Skills         []string       `json:"skills"`
	Status         ModuleStatus   `json:"status"`
	PreviewImage   string         `json:"previewImage"`
	DailySchedule  []DailyTask    `json:"dailySchedule"`
	MasteryProject MasteryProject `json:"masteryProject"`
	Resources      []Resource     `json:"resources"`
	Progress       int            `json:"progress"`
}

// FindDay 按天号查找日程单元
func (m *RoadmapModule) FindDay(day int) *DailyTask {
	for i := range m.DailySchedule {
		if m.DailySchedule[i].Day == day {
			return &m.DailySchedule[i]
		}
	}
	return nil
}

func (m *RoadmapModule) HasDay(day int) bool {
	return m.FindDay(day) != nil
}
