package responder

import (
	"fmt"
	"strings"

	"learn-path/server/internal/model"
	"learn-path/server/internal/nlu"
)

// Responder 把单轮对话编排起来：分类、模板回复、画像个性化、追问建议，
// 并承担路线图调整操作。调用间无状态，会话上下文每次由调用方传入。
type Responder struct {
	processor *nlu.Processor
}

func New(processor *nlu.Processor) *Responder {
	if processor == nil {
		processor = nlu.New(nil)
	}
	return &Responder{processor: processor}
}

// Respond 处理一轮聊天消息并返回 Markdown 文本回复。
func (r *Responder) Respond(message string, ctx model.ConversationContext) string {
	query := nlu.Query{
		Message: message,
		Context: buildContextString(ctx),
		Path:    ctx.Path,
		Profile: ctx.Profile,
	}

	pi := r.processor.Process(query)
	response := r.processor.ContextualResponse(pi, query)
	response = personalize(response, ctx)
	response = addFollowUpSuggestions(response, pi, ctx)
	return response
}

// Process 暴露底层分类结果，供需要意图/实体的调用方（如调整操作）复用。
func (r *Responder) Process(message string, ctx model.ConversationContext) model.ProcessedInput {
	return r.processor.Process(nlu.Query{
		Message: message,
		Context: buildContextString(ctx),
		Path:    ctx.Path,
		Profile: ctx.Profile,
	})
}

// ContextString 从画像与路线图拼出描述性上下文字符串，
// 也供远端生成客户端构造提示词时复用。
func ContextString(ctx model.ConversationContext) string {
	return buildContextString(ctx)
}

func buildContextString(ctx model.ConversationContext) string {
	var parts []string

	if ctx.Profile != nil {
		parts = append(parts,
			"Goal: "+ctx.Profile.Goal,
			"Level: "+ctx.Profile.CurrentLevel,
			"Time: "+ctx.Profile.TimeAvailable,
			"Style: "+ctx.Profile.LearningStyle)
	}

	if ctx.Path != nil {
		parts = append(parts,
			fmt.Sprintf("Phase: %d/%d", ctx.CurrentPhase+1, len(ctx.Path.Phases)),
			fmt.Sprintf("Completed: %d milestones", len(ctx.CompletedMilestones)))
	}

	return strings.Join(parts, " | ")
}

// personalize 按画像字段做一串幂等的文本替换：目标名、水平措辞、风格侧重，
// 以及按时间档追加的建议段落。
func personalize(response string, ctx model.ConversationContext) string {
	profile := ctx.Profile
	if profile == nil {
		return response
	}

	if profile.Goal != "" {
		response = strings.ReplaceAll(response, "your learning journey", fmt.Sprintf("your %s journey", profile.Goal))
	}

	switch profile.CurrentLevel {
	case "beginner":
		response = simplifyLanguage(response)
	case "advanced":
		response = addTechnicalDepth(response)
	}

	switch profile.LearningStyle {
	case "hands-on":
		response = emphasizeProjects(response)
	case "video":
		response = emphasizeVideoResources(response)
	}

	switch profile.TimeAvailable {
	case "weekends-only":
		response += "\n\n**Weekend Learning Tip**: Focus on longer, project-based sessions that you can complete over the weekend!"
	case "1-2-hours-day":
		response += "\n\n**Short Session Tip**: Break topics into 30-45 minute focused chunks for maximum retention!"
	}

	return response
}

func simplifyLanguage(response string) string {
	replacer := strings.NewReplacer(
		"implementation", "setup",
		"methodology", "approach",
		"comprehensive", "complete",
		"sophisticated", "advanced",
	)
	return replacer.Replace(response)
}

func addTechnicalDepth(response string) string {
	replacer := strings.NewReplacer(
		"basic", "fundamental",
		"simple", "streamlined",
	)
	return replacer.Replace(response)
}

func emphasizeProjects(response string) string {
	replacer := strings.NewReplacer(
		"exercises", "hands-on projects",
		"practice", "build real projects",
	)
	return replacer.Replace(response)
}

func emphasizeVideoResources(response string) string {
	replacer := strings.NewReplacer(
		"reading", "video tutorials",
		"documentation", "video guides",
	)
	return replacer.Replace(response)
}

// addFollowUpSuggestions 按意图与场景（还有后续阶段、用户是新手）挑选
// 最多 2 条追问，以 Quick Questions 区块追加到回复末尾。
func addFollowUpSuggestions(response string, pi model.ProcessedInput, ctx model.ConversationContext) string {
	var suggestions []string

	switch pi.Intent {
	case "adjust_timeline":
		suggestions = append(suggestions,
			"Would you like me to create a revised schedule?",
			"Should we adjust the difficulty level as well?")
	case "request_resources":
		suggestions = append(suggestions,
			"Would you like me to prioritize these resources?",
			"Should I find resources for your specific learning style?")
	case "ask_progress":
		suggestions = append(suggestions,
			"Would you like to set new milestones?",
			"Should we celebrate your recent achievements?")
	case "seek_help":
		suggestions = append(suggestions,
			"Would you like me to break this down further?",
			"Should we try a different learning approach?")
	}

	if ctx.Path != nil && ctx.CurrentPhase < len(ctx.Path.Phases)-1 {
		suggestions = append(suggestions, "Ready to move to the next phase?")
	}
	if ctx.Profile != nil && ctx.Profile.CurrentLevel == "beginner" {
		suggestions = append(suggestions, "Would you like some beginner-friendly tips?")
	}

	if len(suggestions) == 0 {
		return response
	}
	if len(suggestions) > 2 {
		suggestions = suggestions[:2]
	}

	var b strings.Builder
	b.WriteString(response)
	b.WriteString("\n\n**Quick Questions**:\n")
	for i, s := range suggestions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + s)
	}
	return b.String()
}
