package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 全局配置
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	HuggingFace HuggingFaceConfig `yaml:"huggingface"`
	Paths       PathsConfig       `yaml:"paths"`
	CORS        CORSConfig        `yaml:"cors"`
}

type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// HuggingFaceConfig 远端文本生成配置。APIKey 为空时服务照常可用，
// 只是静默跳过远端增强，这是设计要求而不是错误。
type HuggingFaceConfig struct {
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	MaxLength   int           `yaml:"max_length"`
	Timeout     time.Duration `yaml:"timeout"`
}

type PathsConfig struct {
	// Taxonomy 可选的词表 JSON 路径；为空时使用内置词表。
	Taxonomy string `yaml:"taxonomy"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default 返回可以零配置启动的默认配置。
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		HuggingFace: HuggingFaceConfig{
			BaseURL:     "https://api-inference.huggingface.co/models",
			Model:       "microsoft/DialoGPT-large",
			Temperature: 0.7,
			MaxLength:   1000,
			Timeout:     5 * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
	}
}

// Load 从文件加载配置；path 为空时直接用默认配置。
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		fmt.Printf("📋 Loading config from: %s\n", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		fmt.Printf("✅ Config parsed successfully\n")
	}

	// 从环境变量覆盖敏感信息
	if apiKey := os.Getenv("HUGGINGFACE_API_KEY"); apiKey != "" {
		fmt.Printf("🔑 Using HUGGINGFACE_API_KEY from environment variable\n")
		cfg.HuggingFace.APIKey = apiKey
	}
	if model := os.Getenv("HUGGINGFACE_MODEL"); model != "" {
		cfg.HuggingFace.Model = model
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// 打印关键配置
	fmt.Printf("\n📊 Configuration Summary:\n")
	fmt.Printf("   Server: %s\n", cfg.Addr())
	fmt.Printf("   HF Model: %s\n", cfg.HuggingFace.Model)
	if cfg.HuggingFace.APIKey != "" {
		fmt.Printf("   Remote enhancement: enabled\n")
	} else {
		fmt.Printf("   Remote enhancement: disabled (no API key, local generation only)\n")
	}
	if cfg.Paths.Taxonomy != "" {
		fmt.Printf("   Taxonomy Path: %s\n", cfg.Paths.Taxonomy)
	}
	fmt.Printf("\n")

	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if c.HuggingFace.BaseURL == "" {
		c.HuggingFace.BaseURL = def.HuggingFace.BaseURL
	}
	if c.HuggingFace.Model == "" {
		c.HuggingFace.Model = def.HuggingFace.Model
	}
	if c.HuggingFace.Temperature == 0 {
		c.HuggingFace.Temperature = def.HuggingFace.Temperature
	}
	if c.HuggingFace.MaxLength == 0 {
		c.HuggingFace.MaxLength = def.HuggingFace.MaxLength
	}
	if c.HuggingFace.Timeout == 0 {
		c.HuggingFace.Timeout = def.HuggingFace.Timeout
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = def.CORS.AllowedOrigins
	}
}

// Validate 验证配置。注意：HF API key 故意不是必填项。
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.HuggingFace.BaseURL == "" {
		return fmt.Errorf("huggingface base_url is required")
	}
	return nil
}

// Addr 返回 HTTP 监听地址。
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
