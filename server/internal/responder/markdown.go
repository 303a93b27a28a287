package responder

import (
	"fmt"
	"strings"

	"learn-path/server/internal/model"
)

// FormatLearningPath 把路线图渲染成聊天用的 Markdown 文本。
//
// 输出只使用渲染端约定的小语法：#/##/### 标题、**加粗**、"- " 列表行、
// "- [ ] " 勾选行。阶段标题与里程碑文本逐字输出，保证能从回复里原样解析回来。
func FormatLearningPath(path model.LearningPath, profile model.UserProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 🎯 Your Personalized Learning Path: %s\n\n", path.Goal)
	fmt.Fprintf(&b, "**Total Duration**: %s | **Current Level**: %s\n\n", path.EstimatedTimeline, profile.CurrentLevel)
	b.WriteString("Great choice! I've created a comprehensive learning path tailored to your goals. Here's your roadmap:\n\n")

	for i, phase := range path.Phases {
		fmt.Fprintf(&b, "## Phase %d: %s\n", i+1, phase.Title)
		fmt.Fprintf(&b, "**Duration**: %s\n\n", phase.Duration)

		b.WriteString("**Key Topics**:\n")
		for _, topic := range phase.Topics {
			b.WriteString("- " + topic + "\n")
		}

		b.WriteString("\n**Milestones**:\n")
		for _, milestone := range phase.Milestones {
			b.WriteString("- [ ] " + milestone + "\n")
		}

		b.WriteString("\n**Recommended Resources**:\n")
		resources := phase.Resources
		if len(resources) > 3 {
			resources = resources[:3]
		}
		for _, res := range resources {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", res.Title, res.Type, res.Description)
		}

		b.WriteString("\n---\n\n")
	}

	b.WriteString("## 💡 Next Steps\n\n")
	b.WriteString("- **Start with Phase 1** - Begin with the fundamentals\n")
	b.WriteString("- **Set a Schedule** - Dedicate consistent time each day\n")
	b.WriteString("- **Track Progress** - Check off milestones as you complete them\n")
	b.WriteString("- **Ask Questions** - I'm here to help whenever you need guidance!\n\n")
	b.WriteString(`**Ready to begin?** Ask me anything about your learning path, or say "start Phase 1" to get specific guidance!`)

	return b.String()
}
