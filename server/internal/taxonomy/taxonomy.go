package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
)

// GeneralQuestion 所有意图得分为 0 时的兜底意图。
const GeneralQuestion = "general_question"

// Intent 一个意图及其关键词表。关键词里出现空格即视为多词短语。
type Intent struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// EntityCategory 一个实体类别及其词表。
type EntityCategory struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// Taxonomy 固定的意图/实体词表。纯参考数据，运行期只读。
//
// 顺序有语义：意图得分相同时先声明者胜出，实体类别的渲染顺序也按声明顺序。
// 所以这里用有序切片而不是 map。
type Taxonomy struct {
	Intents  []Intent         `json:"intents"`
	Entities []EntityCategory `json:"entities"`
}

// Load 从 JSON 文件加载词表，用于在不改代码的情况下替换/缩减词表。
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}

	var t Taxonomy
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validate taxonomy: %w", err)
	}
	return &t, nil
}

// Validate 校验词表形状是否可用。
func (t *Taxonomy) Validate() error {
	if len(t.Intents) == 0 {
		return fmt.Errorf("taxonomy has no intents")
	}
	for _, in := range t.Intents {
		if in.Name == "" {
			return fmt.Errorf("intent with empty name")
		}
		if len(in.Keywords) == 0 {
			return fmt.Errorf("intent %q has no keywords", in.Name)
		}
	}
	for _, cat := range t.Entities {
		if cat.Name == "" {
			return fmt.Errorf("entity category with empty name")
		}
	}
	return nil
}

// Default 返回内置词表。
func Default() *Taxonomy {
	return &Taxonomy{
		Intents: []Intent{
			{Name: "adjust_timeline", Keywords: []string{"adjust", "change", "modify", "extend", "shorten", "timeline", "time", "schedule"}},
			{Name: "request_resources", Keywords: []string{"resource", "course", "book", "tutorial", "material", "learn", "study"}},
			{Name: "ask_progress", Keywords: []string{"progress", "status", "where", "how far", "completion", "done"}},
			{Name: "seek_help", Keywords: []string{"help", "stuck", "confused", "difficult", "hard", "problem", "issue"}},
			{Name: "request_explanation", Keywords: []string{"explain", "what", "how", "why", "understand", "clarify"}},
			{Name: "change_focus", Keywords: []string{"focus", "switch", "different", "instead", "rather", "prefer"}},
			{Name: "ask_next_steps", Keywords: []string{"next", "what now", "then", "after", "continue", "proceed"}},
			{Name: "request_motivation", Keywords: []string{"motivation", "encourage", "inspire", "keep going", "support"}},
		},
		Entities: []EntityCategory{
			{Name: "time_periods", Terms: []string{"hour", "day", "week", "month", "weekend", "morning", "evening"}},
			{Name: "technologies", Terms: []string{
				"javascript", "python", "react", "node", "html", "css", "sql",
				"machine learning", "ai", "data science", "mobile", "web", "backend", "frontend",
			}},
			{Name: "learning_styles", Terms: []string{"video", "reading", "hands-on", "practice", "project", "tutorial", "course"}},
			{Name: "difficulty_levels", Terms: []string{"beginner", "intermediate", "advanced", "expert", "basic", "easy", "hard", "difficult"}},
			{Name: "resource_types", Terms: []string{"course", "book", "tutorial", "video", "documentation", "practice", "project"}},
		},
	}
}
