package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig 验证默认配置可零配置启动且通过校验。
func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("unexpected default addr: %q", cfg.Addr())
	}
	if cfg.HuggingFace.APIKey != "" {
		t.Error("expected no api key by default")
	}
}

// TestLoadWithoutFile 验证空路径直接返回默认配置。
func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_KEY", "")
	t.Setenv("HUGGINGFACE_MODEL", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
	if cfg.HuggingFace.Model != "microsoft/DialoGPT-large" {
		t.Errorf("expected default model, got %q", cfg.HuggingFace.Model)
	}
}

// TestLoadFromYAML 验证 YAML 覆盖与未填字段的默认值补齐。
func TestLoadFromYAML(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_KEY", "")
	t.Setenv("HUGGINGFACE_MODEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
huggingface:
  model: custom/model
  timeout: 10s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port override, got %d", cfg.Server.Port)
	}
	if cfg.HuggingFace.Model != "custom/model" {
		t.Errorf("expected model override, got %q", cfg.HuggingFace.Model)
	}
	if cfg.HuggingFace.Timeout != 10*time.Second {
		t.Errorf("expected timeout override, got %v", cfg.HuggingFace.Timeout)
	}
	// 未填字段回落默认值
	if cfg.HuggingFace.BaseURL == "" {
		t.Error("expected default base url applied")
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected default read timeout, got %v", cfg.Server.ReadTimeout)
	}
}

// TestEnvOverrides 验证环境变量覆盖敏感配置。
func TestEnvOverrides(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_KEY", "env-secret")
	t.Setenv("HUGGINGFACE_MODEL", "env/model")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HuggingFace.APIKey != "env-secret" {
		t.Errorf("expected api key from env, got %q", cfg.HuggingFace.APIKey)
	}
	if cfg.HuggingFace.Model != "env/model" {
		t.Errorf("expected model from env, got %q", cfg.HuggingFace.Model)
	}
}

// TestValidateRejectsBadPort 验证非法端口报错。
func TestValidateRejectsBadPort(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative port")
	}
}
