package nlu

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"learn-path/server/internal/model"
	"learn-path/server/internal/taxonomy"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestProcessDeterministic 验证分类是确定性的：
// 同一条消息重复处理，意图/实体/置信度/动作/上下文完全一致。
func TestProcessDeterministic(t *testing.T) {
	p := New(nil)
	q := Query{Message: "Can you recommend a python course for the weekend?"}

	first := p.Process(q)
	second := p.Process(q)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

// TestAdjustTimelineWithWeekendEntity 验证时间线调整消息的完整分类结果。
// 场景："can we adjust the timeline for weekends" 应命中 adjust_timeline，
// 并从复数形式抽取出 weekend 实体。
func TestAdjustTimelineWithWeekendEntity(t *testing.T) {
	p := New(nil)
	pi := p.Process(Query{Message: "can we adjust the timeline for weekends"})

	if pi.Intent != "adjust_timeline" {
		t.Fatalf("expected intent adjust_timeline, got %q", pi.Intent)
	}

	periods := pi.Entities["time_periods"]
	found := false
	for _, term := range periods {
		if term == "weekend" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected time_periods to include weekend, got %v", periods)
	}

	// 0.5 基准 + 0.3 意图 + 0.1 一个实体
	if !almostEqual(pi.Confidence, 0.9) {
		t.Fatalf("expected confidence 0.9, got %v", pi.Confidence)
	}
}

// TestGeneralQuestionFallback 验证零关键词消息落到 general_question，
// 且两个 token 触发短消息惩罚：0.5 - 0.2 = 0.3。
func TestGeneralQuestionFallback(t *testing.T) {
	p := New(nil)
	pi := p.Process(Query{Message: "asdf qwerty"})

	if pi.Intent != taxonomy.GeneralQuestion {
		t.Fatalf("expected general_question, got %q", pi.Intent)
	}
	if len(pi.Entities) != 0 {
		t.Fatalf("expected no entities, got %v", pi.Entities)
	}
	if !almostEqual(pi.Confidence, 0.3) {
		t.Fatalf("expected confidence 0.3, got %v", pi.Confidence)
	}

	// 低置信度覆盖优先于意图路由
	response := p.ContextualResponse(pi, Query{Message: "asdf qwerty"})
	if !strings.Contains(response, "I want to make sure I understand your question correctly.") {
		t.Fatalf("expected low-confidence clarification template, got %q", response)
	}
}

// TestConfidenceBounds 验证任意输入的置信度都在 [0,1]，包括空串和超长消息。
func TestConfidenceBounds(t *testing.T) {
	p := New(nil)

	cases := []string{
		"",
		"?!",
		strings.TrimSpace(strings.Repeat("blah ", 60)),
		strings.TrimSpace(strings.Repeat("course tutorial python video ", 20)),
		"adjust timeline schedule change modify extend shorten time",
	}

	for _, message := range cases {
		pi := p.Process(Query{Message: message})
		if pi.Confidence < 0 || pi.Confidence > 1 {
			t.Errorf("confidence out of range for %q: %v", message, pi.Confidence)
		}
	}
}

// TestLongMessagePenalty 验证超过 50 个 token 的消息扣 0.1。
func TestLongMessagePenalty(t *testing.T) {
	p := New(nil)
	pi := p.Process(Query{Message: strings.TrimSpace(strings.Repeat("blah ", 60))})

	if pi.Intent != taxonomy.GeneralQuestion {
		t.Fatalf("expected general_question, got %q", pi.Intent)
	}
	if !almostEqual(pi.Confidence, 0.4) {
		t.Fatalf("expected confidence 0.4, got %v", pi.Confidence)
	}
}

// TestMultiWordKeywordOutscoresSingle 验证多词关键词计 2 分：
// "how far" 让 ask_progress 压过靠 "how" 单词得 1 分的 request_explanation。
func TestMultiWordKeywordOutscoresSingle(t *testing.T) {
	p := New(nil)
	pi := p.Process(Query{Message: "how far along am i"})

	if pi.Intent != "ask_progress" {
		t.Fatalf("expected ask_progress, got %q", pi.Intent)
	}
}

// TestIntentTieBreaksByDeclarationOrder 验证平分时先声明的意图胜出：
// "what course" 在 request_resources 和 request_explanation 上各得 1 分，
// request_resources 声明在前。
func TestIntentTieBreaksByDeclarationOrder(t *testing.T) {
	p := New(nil)
	pi := p.Process(Query{Message: "what course"})

	if pi.Intent != "request_resources" {
		t.Fatalf("expected request_resources on tie, got %q", pi.Intent)
	}
}

// TestEntityCategoriesOmittedWhenEmpty 验证没有命中的类别不出现在结果 map 中。
func TestEntityCategoriesOmittedWhenEmpty(t *testing.T) {
	p := New(nil)
	pi := p.Process(Query{Message: "i study python every day"})

	if _, ok := pi.Entities["technologies"]; !ok {
		t.Fatalf("expected technologies entity, got %v", pi.Entities)
	}
	if _, ok := pi.Entities["time_periods"]; !ok {
		t.Fatalf("expected time_periods entity, got %v", pi.Entities)
	}
	if _, ok := pi.Entities["difficulty_levels"]; ok {
		t.Fatalf("expected difficulty_levels to be omitted, got %v", pi.Entities)
	}
}

// TestSuggestedActionsCappedAtThree 验证建议动作最多 3 条，并按实体参数化。
func TestSuggestedActionsCappedAtThree(t *testing.T) {
	p := New(nil)
	pi := p.Process(Query{Message: "recommend a course tutorial for python please"})

	if pi.Intent != "request_resources" {
		t.Fatalf("expected request_resources, got %q", pi.Intent)
	}
	if len(pi.SuggestedActions) != 3 {
		t.Fatalf("expected 3 actions, got %v", pi.SuggestedActions)
	}
	if pi.SuggestedActions[1] != "Find course resources" {
		t.Errorf("expected parameterized resource action, got %q", pi.SuggestedActions[1])
	}
	if pi.SuggestedActions[2] != "Resources for python" {
		t.Errorf("expected parameterized technology action, got %q", pi.SuggestedActions[2])
	}
}

// TestContextStringFragments 验证上下文串的四个片段和 " | " 分隔符。
func TestContextStringFragments(t *testing.T) {
	p := New(nil)
	path := &model.LearningPath{Goal: "Full-Stack Developer"}
	profile := &model.UserProfile{CurrentLevel: "beginner"}

	pi := p.Process(Query{Message: "can we adjust the timeline for weekends", Path: path, Profile: profile})

	parts := strings.Split(pi.Context, " | ")
	if len(parts) != 4 {
		t.Fatalf("expected 4 context fragments, got %v", parts)
	}
	if parts[0] != "User intent: adjust timeline" {
		t.Errorf("unexpected intent fragment: %q", parts[0])
	}
	if !strings.HasPrefix(parts[1], "Mentioned: time_periods: ") {
		t.Errorf("unexpected mentioned fragment: %q", parts[1])
	}
	if parts[2] != "Current learning path: Full-Stack Developer" {
		t.Errorf("unexpected path fragment: %q", parts[2])
	}
	if parts[3] != "User level: beginner" {
		t.Errorf("unexpected profile fragment: %q", parts[3])
	}
}

// TestTokenize 验证分词规则：小写、标点转空格、丢弃空 token。
func TestTokenize(t *testing.T) {
	got := Tokenize("Hello, World!  Let's GO?")
	want := []string{"hello", "world", "let", "s", "go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestCustomTaxonomy 验证可以注入缩减词表做聚焦测试。
func TestCustomTaxonomy(t *testing.T) {
	tax := &taxonomy.Taxonomy{
		Intents: []taxonomy.Intent{
			{Name: "greet", Keywords: []string{"hello", "good morning"}},
		},
		Entities: []taxonomy.EntityCategory{
			{Name: "names", Terms: []string{"world"}},
		},
	}
	p := New(tax)

	pi := p.Process(Query{Message: "good morning hello world"})
	if pi.Intent != "greet" {
		t.Fatalf("expected greet, got %q", pi.Intent)
	}
	if !reflect.DeepEqual(pi.Entities["names"], []string{"world"}) {
		t.Fatalf("expected names entity, got %v", pi.Entities)
	}
}

// TestContextualResponseByIntent 验证意图路由到各自的模板生成器。
func TestContextualResponseByIntent(t *testing.T) {
	p := New(nil)

	cases := []struct {
		message string
		marker  string
	}{
		{"can we adjust the timeline for weekends", "I can help you adjust your learning timeline!"},
		{"recommend a course for python please", "Here are some excellent learning resources:"},
		{"show me my progress so far please", "Let me help you track your learning progress!"},
		{"i am stuck and need help now", "I'm here to help you overcome any learning challenges!"},
		{"please explain react to me today", "I'd be happy to explain react!"},
		{"i would prefer a different focus instead", "I can help you adjust your learning focus!"},
		{"what should i continue with next", "Great question! Here are your recommended next steps:"},
		{"i need some motivation to keep going", "You're doing amazing work on your learning journey!"},
	}

	for _, tc := range cases {
		q := Query{Message: tc.message}
		pi := p.Process(q)
		response := p.ContextualResponse(pi, q)
		if !strings.Contains(response, tc.marker) {
			t.Errorf("message %q (intent %s): expected response to contain %q", tc.message, pi.Intent, tc.marker)
		}
	}
}
