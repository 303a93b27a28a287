package responder

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"learn-path/server/internal/model"
)

// WeekendSchedule 周末化时间线调整在路线图上设置的排期标记。
const WeekendSchedule = "weekend-focused"

// AdjustPath 在反馈消息上重跑分类，然后按检测到的意图应用三条结构化调整规则之一，
// 返回整体替换后的新路线图和人类可读的变更说明。
//
// 说明文案只由意图决定，与调整是否真的改动了内容无关
// （例如 change_focus 没命中任何技术时，仍然返回 Focus Adjustments 说明）。
func (r *Responder) AdjustPath(currentPath model.LearningPath, feedback string, ctx model.ConversationContext) (model.LearningPath, string) {
	adjustCtx := ctx
	adjustCtx.Path = &currentPath

	pi := r.Process(feedback, adjustCtx)
	adjusted := applyAdjustment(currentPath, pi)
	return adjusted, adjustmentExplanation(pi.Intent)
}

// applyAdjustment 从旧值构造新值，从不原地改字段：每次调整都产出全新的 phases 序列。
func applyAdjustment(path model.LearningPath, pi model.ProcessedInput) model.LearningPath {
	adjusted := clonePath(path)

	switch pi.Intent {
	case "adjust_timeline":
		// 只有出现 weekend 实体才放缓节奏；其他时间线措辞保持路径不变。
		if containsTerm(pi.Entities["time_periods"], "weekend") {
			adjusted.Schedule = WeekendSchedule
			for i := range adjusted.Phases {
				adjusted.Phases[i].Duration = scaleDuration(adjusted.Phases[i].Duration, 1.5)
			}
		}

	case "change_focus":
		if techs := pi.Entities["technologies"]; len(techs) > 0 {
			newTech := techs[0]
			for i := range adjusted.Phases {
				for j, topic := range adjusted.Phases[i].Topics {
					if strings.Contains(strings.ToLower(topic), newTech) {
						adjusted.Phases[i].Topics[j] = newTech + " " + topic
					}
				}
			}
		}

	case "request_resources":
		if styles := pi.Entities["learning_styles"]; len(styles) > 0 {
			preferred := styles[0]
			for i := range adjusted.Phases {
				var kept []model.Resource
				for _, res := range adjusted.Phases[i].Resources {
					if strings.Contains(strings.ToLower(string(res.Type)), preferred) {
						kept = append(kept, res)
					}
				}
				// 调整后不再补齐最小资源数，允许清空。
				adjusted.Phases[i].Resources = kept
			}
		}
	}

	return adjusted
}

func containsTerm(terms []string, want string) bool {
	for _, t := range terms {
		if t == want {
			return true
		}
	}
	return false
}

var durationNumber = regexp.MustCompile(`\d+`)

// scaleDuration 把时长字符串里的每个数字分量按倍率向上取整，保留周围文本，
// 所以 "Weeks 1-5" 变成 "Weeks 2-8"，"6 weeks" 变成 "9 weeks"。
// 没有数字分量时原样返回。
func scaleDuration(duration string, factor float64) string {
	return durationNumber.ReplaceAllStringFunc(duration, func(num string) string {
		n, err := strconv.Atoi(num)
		if err != nil {
			return num
		}
		return strconv.Itoa(int(math.Ceil(float64(n) * factor)))
	})
}

// adjustmentExplanation 意图对应的固定说明段落（三条要点加固定收尾）。
func adjustmentExplanation(intent string) string {
	var b strings.Builder
	b.WriteString("I've adjusted your learning path based on your feedback:\n\n")

	switch intent {
	case "adjust_timeline":
		b.WriteString("**Timeline Changes**:\n")
		b.WriteString("- Extended phase durations to accommodate your schedule\n")
		b.WriteString("- Adjusted daily time commitments\n")
		b.WriteString("- Added buffer time for challenging topics\n")
	case "change_focus":
		b.WriteString("**Focus Adjustments**:\n")
		b.WriteString("- Shifted emphasis to your preferred technologies\n")
		b.WriteString("- Reordered topics based on your interests\n")
		b.WriteString("- Updated project suggestions\n")
	case "request_resources":
		b.WriteString("**Resource Updates**:\n")
		b.WriteString("- Filtered resources to match your learning style\n")
		b.WriteString("- Added more hands-on practice opportunities\n")
		b.WriteString("- Included community and support resources\n")
	default:
		b.WriteString("**General Improvements**:\n")
		b.WriteString("- Refined content based on your feedback\n")
		b.WriteString("- Optimized for your learning preferences\n")
		b.WriteString("- Enhanced with additional support resources\n")
	}

	b.WriteString("\nThese changes should better align with your goals and preferences!")
	return b.String()
}

// clonePath 深拷贝路线图，保证调整操作的“整体替换”契约可审计。
func clonePath(path model.LearningPath) model.LearningPath {
	cloned := path
	cloned.Phases = make([]model.Phase, len(path.Phases))
	for i, phase := range path.Phases {
		p := phase
		p.Topics = append([]string(nil), phase.Topics...)
		p.Resources = append([]model.Resource(nil), phase.Resources...)
		p.Milestones = append([]string(nil), phase.Milestones...)
		cloned.Phases[i] = p
	}
	return cloned
}
