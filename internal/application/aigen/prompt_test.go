package aigen

import (
	"strings"
	"testing"
)

func TestBuildContentPrompt_slots(t *testing.T) {
	req := &ContentRequest{
		Topic:    "Go 泛型实践",
		Tone:     "轻松幽默",
		Keywords: []string{"类型参数", "约束"},
	}

	system, user, err := BuildContentPrompt(req)
	if err != nil {
		t.Fatalf("BuildContentPrompt: %v", err)
	}
	if system == "" {
		t.Fatal("system prompt is empty")
	}

	// 每个槽位恰好出现一次
	for _, want := range []string{"Go 泛型实践", "轻松幽默", "类型参数、约束"} {
		if got := strings.Count(user, want); got != 1 {
			t.Errorf("user prompt contains %q %d times, want 1\n%s", want, got, user)
		}
	}

	// 未指定的字段使用默认值
	for _, want := range []string{defaultAudience, defaultLength, "引言、正文、结语"} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing default %q\n%s", want, user)
		}
	}
}

func TestBuildContentPrompt_missingTopic(t *testing.T) {
	for _, req := range []*ContentRequest{nil, {}, {Topic: "   "}} {
		if _, _, err := BuildContentPrompt(req); err == nil {
			t.Errorf("BuildContentPrompt(%+v) expected validation error", req)
		}
	}
}

func TestBuildContentPrompt_idempotent(t *testing.T) {
	req := &ContentRequest{Topic: "微服务可观测性"}

	s1, u1, err := BuildContentPrompt(req)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	s2, u2, err := BuildContentPrompt(req)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if s1 != s2 || u1 != u2 {
		t.Error("BuildContentPrompt not deterministic for the same request")
	}
	// 默认值填充不回写请求
	if req.Tone != "" || req.Length != "" || len(req.Structure) != 0 {
		t.Errorf("request mutated: %+v", req)
	}
}

func TestBuildTitlePrompt(t *testing.T) {
	system, user, err := BuildTitlePrompt("一篇关于容器网络的文章草稿")
	if err != nil {
		t.Fatalf("BuildTitlePrompt: %v", err)
	}

	// 合同写进 system：恰好 4 个候选、55 字符上限、四种风格
	for _, want := range []string{"4", "55", "学术", "励志", "专业", "叙事"} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if !strings.Contains(user, "一篇关于容器网络的文章草稿") {
		t.Errorf("user prompt missing source text: %s", user)
	}
}

func TestBuildTitlePrompt_missingSource(t *testing.T) {
	if _, _, err := BuildTitlePrompt("  "); err == nil {
		t.Error("BuildTitlePrompt with blank source expected validation error")
	}
}
