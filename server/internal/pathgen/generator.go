package pathgen

import (
	"fmt"
	"math"
	"strings"

	"learn-path/server/internal/model"
)

// Generator 把结构化的学习请求转换成具体的多阶段路线图。
//
// 契约：全函数，没有错误状态——缺数据时总是退化到命名默认值
// （默认职业路径、补位资源、默认时间表）。
type Generator struct {
	careers []CareerPath
	catalog map[string]ResourceTiers
}

// New 创建 Generator，使用内置模板与资源目录。
func New() *Generator {
	return &Generator{
		careers: defaultCareerPaths(),
		catalog: defaultResourceCatalog(),
	}
}

// NewWithData 用外部模板/目录创建 Generator，便于测试替换小数据集。
func NewWithData(careers []CareerPath, catalog map[string]ResourceTiers) *Generator {
	g := &Generator{careers: careers, catalog: catalog}
	if len(g.careers) == 0 {
		g.careers = defaultCareerPaths()
	}
	if g.catalog == nil {
		g.catalog = map[string]ResourceTiers{}
	}
	return g
}

// Generate 选择职业路径模板并产出完整的 LearningPath。
func (g *Generator) Generate(req model.LearningRequest) model.LearningPath {
	career := g.findBestCareerPath(req.Goal)
	phases := g.materializePhases(career, req)

	return model.LearningPath{
		Goal:              req.Goal,
		Phases:            phases,
		EstimatedTimeline: calculateTimeline(req.TimeAvailable, career.EstimatedWeeks),
		TotalWeeks:        career.EstimatedWeeks,
	}
}

// findBestCareerPath 目标匹配：先按模板键/标题做大小写不敏感的子串匹配，
// 再按宽泛的关键词分桶（web/frontend/backend、data/ml/ai、mobile/app/ios/android），
// 仍未命中则回落到第一个模板。确定性全函数，选择从不失败。
func (g *Generator) findBestCareerPath(goal string) CareerPath {
	goalLower := strings.ToLower(goal)

	for _, career := range g.careers {
		if strings.Contains(goalLower, career.Key) || strings.Contains(goalLower, strings.ToLower(career.Title)) {
			return career
		}
	}

	buckets := []struct {
		keywords []string
		key      string
	}{
		{[]string{"web", "frontend", "backend"}, "full-stack developer"},
		{[]string{"data", "machine learning", "ai"}, "data scientist"},
		{[]string{"mobile", "app", "ios", "android"}, "mobile developer"},
	}
	for _, bucket := range buckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(goalLower, kw) {
				if career, ok := g.careerByKey(bucket.key); ok {
					return career
				}
			}
		}
	}

	return g.careers[0]
}

func (g *Generator) careerByKey(key string) (CareerPath, bool) {
	for _, career := range g.careers {
		if career.Key == key {
			return career, true
		}
	}
	return CareerPath{}, false
}

// materializePhases 把每个阶段模板落成具体 Phase。
func (g *Generator) materializePhases(career CareerPath, req model.LearningRequest) []model.Phase {
	phases := make([]model.Phase, 0, len(career.Phases))
	for i, tmpl := range career.Phases {
		headSkills := tmpl.Skills
		if len(headSkills) > 3 {
			headSkills = headSkills[:3]
		}

		phases = append(phases, model.Phase{
			Title:          tmpl.Title,
			Duration:       tmpl.Duration,
			Goal:           fmt.Sprintf("Master %s and build practical projects", strings.Join(headSkills, ", ")),
			Topics:         append([]string(nil), tmpl.Skills...),
			Resources:      g.phaseResources(tmpl.Skills, req.LearningStyle),
			Milestones:     milestones(tmpl),
			TimeCommitment: timeCommitment(req.TimeAvailable, i),
		})
	}
	return phases
}

// phaseResources 为每项技能取一条免费资源；structured 风格额外取付费资源，
// hands-on 风格额外取练习资源。不足 3 条用通用项目资源补齐，最多保留 5 条。
func (g *Generator) phaseResources(skills []string, learningStyle string) []model.Resource {
	var resources []model.Resource

	for _, skill := range skills {
		tiers, ok := g.catalog[skill]
		if !ok {
			continue
		}
		if len(tiers.Free) > 0 {
			resources = append(resources, tiers.Free[0])
		}
		if learningStyle == "structured" && len(tiers.Paid) > 0 {
			resources = append(resources, tiers.Paid[0])
		}
		if learningStyle == "hands-on" && len(tiers.Practice) > 0 {
			resources = append(resources, tiers.Practice[0])
		}
	}

	for len(resources) < 3 {
		resources = append(resources, fillerResource())
	}
	if len(resources) > 5 {
		resources = resources[:5]
	}
	return resources
}

// milestones 由模板的技能/项目清单派生里程碑，此后不再单独校验。
func milestones(tmpl PhaseTemplate) []string {
	firstProject := "practice project"
	if len(tmpl.Projects) > 0 && tmpl.Projects[0] != "" {
		firstProject = tmpl.Projects[0]
	}

	firstSkill := ""
	if len(tmpl.Skills) > 0 {
		firstSkill = tmpl.Skills[0]
	}

	out := []string{
		fmt.Sprintf("Complete %s fundamentals", firstSkill),
		fmt.Sprintf("Build %s", firstProject),
		"Pass phase assessment or quiz",
	}

	if len(tmpl.Projects) > 1 {
		out = append(out, fmt.Sprintf("Complete %s project", tmpl.Projects[1]))
	}
	if len(tmpl.Skills) > 2 {
		out = append(out, fmt.Sprintf("Master %s", tmpl.Skills[len(tmpl.Skills)-1]))
	}
	return out
}

// timeCommitment 按 (timeAvailable, 阶段下标) 查表；未识别的 timeAvailable
// 走 1-2 小时档，下标超界钳制到最后一列。
func timeCommitment(timeAvailable string, phaseIndex int) string {
	timeMap := map[string][]string{
		"1-2-hours-day": {"1-2 hours daily", "2-3 hours daily", "2-3 hours daily", "3-4 hours daily"},
		"3-4-hours-day": {"2-3 hours daily", "3-4 hours daily", "4-5 hours daily", "4-5 hours daily"},
		"5-6-hours-day": {"3-4 hours daily", "4-5 hours daily", "5-6 hours daily", "5-6 hours daily"},
		"weekends-only": {"8-10 hours per weekend", "10-12 hours per weekend", "12-15 hours per weekend", "15-20 hours per weekend"},
		"flexible":      {"10-15 hours per week", "15-20 hours per week", "20-25 hours per week", "25-30 hours per week"},
	}

	commitments, ok := timeMap[timeAvailable]
	if !ok {
		commitments = timeMap["1-2-hours-day"]
	}
	if phaseIndex > len(commitments)-1 {
		phaseIndex = len(commitments) - 1
	}
	return commitments[phaseIndex]
}

// calculateTimeline ceil(baseWeeks × 每档倍率) 并按周数选择渲染格式。
func calculateTimeline(timeAvailable string, baseWeeks int) string {
	multipliers := map[string]float64{
		"1-2-hours-day": 1.5,
		"3-4-hours-day": 1.0,
		"5-6-hours-day": 0.8,
		"weekends-only": 1.8,
		"flexible":      1.2,
	}

	multiplier, ok := multipliers[timeAvailable]
	if !ok {
		multiplier = 1.0
	}
	adjustedWeeks := int(math.Ceil(float64(baseWeeks) * multiplier))
	months := int(math.Ceil(float64(adjustedWeeks) / 4))

	switch {
	case adjustedWeeks <= 12:
		return fmt.Sprintf("%d weeks with consistent effort", adjustedWeeks)
	case adjustedWeeks <= 24:
		return fmt.Sprintf("%d weeks (%d months) with consistent effort", adjustedWeeks, months)
	default:
		return fmt.Sprintf("%d months with consistent effort", months)
	}
}

// PersonalizedRecommendations 独立的建议文案生成：按水平、时间、风格三类桶
// 各追加两条固定建议，桶之间互不影响，可同时命中多个。
func (g *Generator) PersonalizedRecommendations(req model.LearningRequest) []string {
	var recommendations []string

	switch req.CurrentLevel {
	case "beginner":
		recommendations = append(recommendations,
			"Start with fundamentals and don't rush through concepts",
			"Focus on building a strong foundation before moving to advanced topics")
	case "intermediate":
		recommendations = append(recommendations,
			"Focus on building portfolio projects to showcase your skills",
			"Consider contributing to open source projects")
	}

	switch req.TimeAvailable {
	case "weekends-only":
		recommendations = append(recommendations,
			"Plan your weekend sessions in advance for maximum productivity",
			"Use weekdays for light reading and review")
	case "1-2-hours-day":
		recommendations = append(recommendations,
			"Consistency is key - daily practice is better than long weekend sessions",
			"Break complex topics into smaller, manageable chunks")
	}

	switch req.LearningStyle {
	case "hands-on":
		recommendations = append(recommendations,
			"Build projects alongside learning theory",
			"Use interactive coding platforms and tutorials")
	case "video":
		recommendations = append(recommendations,
			"Supplement videos with hands-on practice",
			"Take notes while watching to reinforce learning")
	}

	return recommendations
}
