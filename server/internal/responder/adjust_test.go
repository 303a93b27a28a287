package responder

import (
	"strings"
	"testing"

	"learn-path/server/internal/model"
	"learn-path/server/internal/pathgen"
)

func fullStackPath(t *testing.T) model.LearningPath {
	t.Helper()
	return pathgen.New().Generate(model.LearningRequest{
		Goal:          "full-stack developer",
		LearningStyle: "hands-on",
	})
}

// TestAdjustTimelineWeekend 验证周末化调整：设置排期标记、
// 所有阶段时长按 1.5 向上取整，并返回 Timeline Changes 说明。
func TestAdjustTimelineWeekend(t *testing.T) {
	r := New(nil)
	path := fullStackPath(t)

	adjusted, explanation := r.AdjustPath(path, "can we adjust the timeline for weekends", model.ConversationContext{})

	if adjusted.Schedule != WeekendSchedule {
		t.Errorf("expected schedule %q, got %q", WeekendSchedule, adjusted.Schedule)
	}

	wantDurations := []string{"Weeks 2-8", "Weeks 9-15", "Weeks 17-21", "Weeks 23-24"}
	for i, want := range wantDurations {
		if adjusted.Phases[i].Duration != want {
			t.Errorf("phase %d: expected duration %q, got %q", i+1, want, adjusted.Phases[i].Duration)
		}
	}

	if !strings.Contains(explanation, "**Timeline Changes**:") {
		t.Errorf("expected timeline explanation, got %q", explanation)
	}
	if !strings.HasSuffix(explanation, "These changes should better align with your goals and preferences!") {
		t.Errorf("expected fixed closing line, got %q", explanation)
	}

	// 原路径不被原地修改
	if path.Schedule != "" || path.Phases[0].Duration != "Weeks 1-5" {
		t.Errorf("original path mutated: schedule=%q duration=%q", path.Schedule, path.Phases[0].Duration)
	}
}

// TestAdjustTimelineWithoutWeekend 验证没有 weekend 实体时路径保持不变，
// 但说明文案仍按意图给出。
func TestAdjustTimelineWithoutWeekend(t *testing.T) {
	r := New(nil)
	path := fullStackPath(t)

	adjusted, explanation := r.AdjustPath(path, "can we adjust the timeline please somehow", model.ConversationContext{})

	if adjusted.Schedule != "" {
		t.Errorf("expected no schedule marker, got %q", adjusted.Schedule)
	}
	if adjusted.Phases[0].Duration != "Weeks 1-5" {
		t.Errorf("expected unchanged duration, got %q", adjusted.Phases[0].Duration)
	}
	if !strings.Contains(explanation, "**Timeline Changes**:") {
		t.Errorf("expected timeline explanation regardless, got %q", explanation)
	}
}

// TestAdjustChangeFocus 验证技术前缀规则：包含该技术的主题被加上前缀。
func TestAdjustChangeFocus(t *testing.T) {
	r := New(nil)
	path := fullStackPath(t)

	adjusted, explanation := r.AdjustPath(path, "let's switch focus to react instead", model.ConversationContext{})

	if adjusted.Phases[1].Topics[0] != "react React" {
		t.Errorf("expected prefixed topic, got %q", adjusted.Phases[1].Topics[0])
	}
	// 不含该技术的主题不动
	if adjusted.Phases[0].Topics[0] != "HTML" {
		t.Errorf("expected unrelated topic unchanged, got %q", adjusted.Phases[0].Topics[0])
	}
	if !strings.Contains(explanation, "**Focus Adjustments**:") {
		t.Errorf("expected focus explanation, got %q", explanation)
	}
}

// TestAdjustChangeFocusWithoutTechnology 验证没有技术实体时主题保持不变。
func TestAdjustChangeFocusWithoutTechnology(t *testing.T) {
	r := New(nil)
	path := fullStackPath(t)

	adjusted, explanation := r.AdjustPath(path, "i would prefer a different focus instead", model.ConversationContext{})

	if adjusted.Phases[1].Topics[0] != "React" {
		t.Errorf("expected unchanged topic, got %q", adjusted.Phases[1].Topics[0])
	}
	if !strings.Contains(explanation, "**Focus Adjustments**:") {
		t.Errorf("expected focus explanation, got %q", explanation)
	}
}

// TestAdjustResourceFilterMayEmpty 验证按风格过滤资源允许清空列表。
func TestAdjustResourceFilterMayEmpty(t *testing.T) {
	r := New(nil)
	path := fullStackPath(t)

	adjusted, explanation := r.AdjustPath(path, "i want video course materials", model.ConversationContext{})

	// hands-on 路径里没有 video 类型的资源，过滤后为空
	if len(adjusted.Phases[0].Resources) != 0 {
		t.Errorf("expected empty resources after filter, got %v", adjusted.Phases[0].Resources)
	}
	if !strings.Contains(explanation, "**Resource Updates**:") {
		t.Errorf("expected resource explanation, got %q", explanation)
	}
}

// TestScaleDuration 验证时长字符串里每个数字分量的缩放与无数字原样返回。
func TestScaleDuration(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Weeks 1-5", "Weeks 2-8"},
		{"6 weeks", "9 weeks"},
		{"Weeks 15-16", "Weeks 23-24"},
		{"ongoing", "ongoing"},
	}

	for _, tc := range cases {
		if got := scaleDuration(tc.in, 1.5); got != tc.want {
			t.Errorf("scaleDuration(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
