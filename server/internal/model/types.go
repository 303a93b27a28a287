package model

import "time"

// ResourceType 资源类型枚举。
type ResourceType string

const (
	ResourceCourse        ResourceType = "course"
	ResourceBook          ResourceType = "book"
	ResourceDocumentation ResourceType = "documentation"
	ResourceVideo         ResourceType = "video"
	ResourcePractice      ResourceType = "practice"
)

// LearningRequest 是问卷提交的学习请求，提交后不可变。
type LearningRequest struct {
	// Goal 用户的学习目标（如 "Become a Full-Stack Developer"）。
	Goal string `json:"goal"`
	// CurrentLevel 当前水平：beginner / some-knowledge / intermediate / advanced。
	CurrentLevel string `json:"currentLevel"`
	// TimeAvailable 可投入时间：1-2-hours-day / 3-4-hours-day / 5-6-hours-day / weekends-only / flexible。
	TimeAvailable string `json:"timeAvailable"`
	// LearningStyle 学习风格：hands-on / structured / reading / video / mixed。
	LearningStyle string `json:"learningStyle"`
	// SpecificTopics 可选的具体关注方向。
	SpecificTopics string `json:"specificTopics,omitempty"`
}

// Resource 一条学习资源。没有独立身份，允许重复。
type Resource struct {
	Type        ResourceType `json:"type"`
	Title       string       `json:"title"`
	Provider    string       `json:"provider"`
	URL         string       `json:"url,omitempty"`
	Description string       `json:"description,omitempty"`
}

// Phase 学习路线图中的一个顺序阶段。
type Phase struct {
	Title string `json:"title"`
	// Duration 自由格式的时长描述（如 "Weeks 1-4"）。
	Duration string `json:"duration"`
	Goal     string `json:"goal"`
	// Topics 来自阶段模板的技能列表，change_focus 调整会重写它。
	Topics     []string   `json:"topics,omitempty"`
	Resources  []Resource `json:"resources"`
	Milestones []string   `json:"milestones"`
	// TimeCommitment 按 (timeAvailable, 阶段序号) 查表得到的投入描述。
	TimeCommitment string `json:"timeCommitment"`
}

// LearningPath 完整的学习路线图。调整操作整体替换，从不做局部更新。
type LearningPath struct {
	Goal              string  `json:"goal"`
	Phases            []Phase `json:"phases"`
	EstimatedTimeline string  `json:"estimatedTimeline"`
	TotalWeeks        int     `json:"totalWeeks"`
	// Schedule 时间线调整设置的排期标记（如 "weekend-focused"）。
	Schedule string `json:"schedule,omitempty"`
}

// ProcessedInput 单次聊天消息的分类结果，每条消息新建，从不持久化。
type ProcessedInput struct {
	// Intent 八个命名意图之一，或兜底的 "general_question"。
	Intent string `json:"intent"`
	// Entities 实体类别 -> 命中词条；没有命中的类别不出现在 map 中。
	Entities map[string][]string `json:"entities"`
	// Confidence 置信度，始终在 [0,1]。
	Confidence float64 `json:"confidence"`
	// SuggestedActions 最多 3 条建议动作。
	SuggestedActions []string `json:"suggestedActions"`
	Context          string   `json:"context"`
}

// UserProfile 用户画像，来自问卷。
type UserProfile struct {
	Goal           string `json:"goal"`
	CurrentLevel   string `json:"currentLevel"`
	TimeAvailable  string `json:"timeAvailable"`
	LearningStyle  string `json:"learningStyle"`
	SpecificTopics string `json:"specificTopics,omitempty"`
}

// ChatMessage 一条会话消息。
type ChatMessage struct {
	Role    string    `json:"role"` // "user" or "assistant"
	Content string    `json:"content"`
	TS      time.Time `json:"ts"`
}

// ConversationContext 每次调用按值传入核心的会话上下文；核心自身在调用间不保存任何状态。
type ConversationContext struct {
	Profile *UserProfile  `json:"userProfile,omitempty"`
	Path    *LearningPath `json:"learningPath,omitempty"`
	// CurrentPhase 从 0 开始的当前阶段下标。
	CurrentPhase        int      `json:"currentPhase"`
	CompletedMilestones []string `json:"completedMilestones"`
	// History 最近 5 条消息构成的有界窗口。
	History []ChatMessage `json:"conversationHistory,omitempty"`
}

// ConversationState 服务端持有的会话快照，内存 store 的存储单元。
type ConversationState struct {
	SessionID string        `json:"session_id"`
	Profile   UserProfile   `json:"profile"`
	Path      *LearningPath `json:"path,omitempty"`
	// CurrentPhase / CompletedMilestones 跟踪路线图进度。
	CurrentPhase        int      `json:"current_phase"`
	CompletedMilestones []string `json:"completed_milestones"`
	// History 全量消息；构建上下文时只取最后 5 条。
	History   []ChatMessage `json:"history"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ContextWindowSize 传入核心的历史窗口大小。
const ContextWindowSize = 5

// Context 把会话快照收敛成传给核心的 ConversationContext（含有界历史窗口）。
func (s *ConversationState) Context() ConversationContext {
	history := s.History
	if len(history) > ContextWindowSize {
		history = history[len(history)-ContextWindowSize:]
	}
	window := make([]ChatMessage, len(history))
	copy(window, history)

	profile := s.Profile
	return ConversationContext{
		Profile:             &profile,
		Path:                s.Path,
		CurrentPhase:        s.CurrentPhase,
		CompletedMilestones: append([]string(nil), s.CompletedMilestones...),
		History:             window,
	}
}
