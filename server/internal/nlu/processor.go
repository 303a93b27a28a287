package nlu

import (
	"fmt"
	"regexp"
	"strings"

	"learn-path/server/internal/model"
	"learn-path/server/internal/taxonomy"
)

// Query 单次聊天消息及其随行上下文，由调用方按值传入。
type Query struct {
	Message string
	Context string
	Path    *model.LearningPath
	Profile *model.UserProfile
}

// Processor 基于关键词词表的输入理解器。
//
// 契约：纯函数，没有失败路径——任何输入都能得到一个结果
// （空实体、general_question 意图和默认回复是全局兜底，从不返回 error）。
type Processor struct {
	tax *taxonomy.Taxonomy
}

// New 创建 Processor；tax 为 nil 时使用内置词表。
func New(tax *taxonomy.Taxonomy) *Processor {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Processor{tax: tax}
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Tokenize 小写化、把所有非单词/非空白字符替换为空格、按空白切分并丢弃空词。
func Tokenize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}

// Process 对一条消息做意图分类、实体抽取、置信度打分，并产出建议动作与上下文描述。
func (p *Processor) Process(q Query) model.ProcessedInput {
	words := Tokenize(q.Message)

	intent := p.detectIntent(words)
	entities := p.extractEntities(words)
	confidence := calculateConfidence(intent, entities, words)

	return model.ProcessedInput{
		Intent:           intent,
		Entities:         entities,
		Confidence:       confidence,
		SuggestedActions: suggestedActions(intent, entities),
		Context:          p.determineContext(intent, entities, q),
	}
}

// detectIntent 按固定词表为每个意图打分，严格最高分者胜；
// 平分时按词表声明顺序先声明者胜；全部为 0 则落到 general_question。
//
// 打分规则：单词关键词作为完整 token 命中计 1 分，
// 多词关键词作为空格连接后 token 序列的子串命中计 2 分。
func (p *Processor) detectIntent(words []string) string {
	joined := strings.Join(words, " ")

	bestIntent := ""
	bestScore := 0
	for _, in := range p.tax.Intents {
		score := 0
		for _, keyword := range in.Keywords {
			if strings.Contains(keyword, " ") {
				if strings.Contains(joined, keyword) {
					score += 2
				}
			} else if containsWord(words, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestIntent = in.Name
			bestScore = score
		}
	}

	if bestScore == 0 {
		return taxonomy.GeneralQuestion
	}
	return bestIntent
}

// extractEntities 按同样的单词/多词匹配规则收集每个类别命中的词条；
// 没有命中的类别不进入结果 map。
// 单词词条额外接受朴素复数形式（"weekends" 命中 "weekend"）。
func (p *Processor) extractEntities(words []string) map[string][]string {
	joined := strings.Join(words, " ")

	entities := make(map[string][]string)
	for _, cat := range p.tax.Entities {
		var matched []string
		for _, term := range cat.Terms {
			if strings.Contains(term, " ") {
				if strings.Contains(joined, term) {
					matched = append(matched, term)
				}
			} else if containsTokenOrPlural(words, term) {
				matched = append(matched, term)
			}
		}
		if len(matched) > 0 {
			entities[cat.Name] = matched
		}
	}
	return entities
}

func containsWord(words []string, w string) bool {
	for _, word := range words {
		if word == w {
			return true
		}
	}
	return false
}

func containsTokenOrPlural(words []string, term string) bool {
	for _, word := range words {
		if word == term || word == term+"s" {
			return true
		}
	}
	return false
}

// calculateConfidence 基准 0.5；命中具体意图 +0.3；实体命中数 +min(0.1*n, 0.2)；
// 少于 3 个 token -0.2，多于 50 个 token -0.1；最终钳制到 [0,1]。
func calculateConfidence(intent string, entities map[string][]string, words []string) float64 {
	confidence := 0.5

	if intent != taxonomy.GeneralQuestion {
		confidence += 0.3
	}

	entityCount := 0
	for _, matched := range entities {
		entityCount += len(matched)
	}
	bonus := float64(entityCount) * 0.1
	if bonus > 0.2 {
		bonus = 0.2
	}
	confidence += bonus

	if len(words) < 3 {
		confidence -= 0.2
	} else if len(words) > 50 {
		confidence -= 0.1
	}

	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

// firstEntity 返回某个类别的第一个命中词条（命中顺序即词表声明顺序）。
func firstEntity(entities map[string][]string, category string) (string, bool) {
	matched := entities[category]
	if len(matched) == 0 {
		return "", false
	}
	return matched[0], true
}

// suggestedActions 每个意图固定 1-3 条建议动作，可用时用相关类别的第一个实体参数化，
// 最多保留 3 条。
func suggestedActions(intent string, entities map[string][]string) []string {
	var actions []string

	switch intent {
	case "adjust_timeline":
		actions = append(actions, "Modify learning schedule", "Adjust time commitment")
		if period, ok := firstEntity(entities, "time_periods"); ok {
			actions = append(actions, fmt.Sprintf("Focus on %s learning", period))
		}
	case "request_resources":
		actions = append(actions, "Recommend learning resources")
		if rt, ok := firstEntity(entities, "resource_types"); ok {
			actions = append(actions, fmt.Sprintf("Find %s resources", rt))
		}
		if tech, ok := firstEntity(entities, "technologies"); ok {
			actions = append(actions, fmt.Sprintf("Resources for %s", tech))
		}
	case "ask_progress":
		actions = append(actions, "Show learning progress", "Review completed milestones", "Suggest next steps")
	case "seek_help":
		actions = append(actions, "Provide learning guidance", "Suggest alternative approaches", "Connect with community resources")
	case "request_explanation":
		actions = append(actions, "Explain concepts clearly")
		if tech, ok := firstEntity(entities, "technologies"); ok {
			actions = append(actions, fmt.Sprintf("Explain %s", tech))
		}
		actions = append(actions, "Provide examples and analogies")
	case "change_focus":
		actions = append(actions, "Adjust learning focus")
		if tech, ok := firstEntity(entities, "technologies"); ok {
			actions = append(actions, fmt.Sprintf("Switch to %s", tech))
		}
		actions = append(actions, "Modify learning path")
	case "ask_next_steps":
		actions = append(actions, "Suggest next learning steps", "Recommend practice exercises", "Identify skill gaps")
	case "request_motivation":
		actions = append(actions, "Provide encouragement", "Share success stories", "Set achievable goals")
	default:
		actions = append(actions, "Provide helpful guidance", "Answer your question")
	}

	if len(actions) > 3 {
		actions = actions[:3]
	}
	return actions
}

// determineContext 用 " | " 拼接：意图片段、可选的实体摘要片段、
// 可选的当前路线图目标片段和可选的用户水平片段。
func (p *Processor) determineContext(intent string, entities map[string][]string, q Query) string {
	// 与旧版保持一致：只替换第一个下划线。
	parts := []string{"User intent: " + strings.Replace(intent, "_", " ", 1)}

	if len(entities) > 0 {
		var summaries []string
		for _, cat := range p.tax.Entities {
			if matched, ok := entities[cat.Name]; ok {
				summaries = append(summaries, fmt.Sprintf("%s: %s", cat.Name, strings.Join(matched, ", ")))
			}
		}
		parts = append(parts, "Mentioned: "+strings.Join(summaries, "; "))
	}

	if q.Path != nil {
		goal := q.Path.Goal
		if goal == "" {
			goal = "General"
		}
		parts = append(parts, "Current learning path: "+goal)
	}

	if q.Profile != nil {
		level := q.Profile.CurrentLevel
		if level == "" {
			level = "Unknown"
		}
		parts = append(parts, "User level: "+level)
	}

	return strings.Join(parts, " | ")
}
