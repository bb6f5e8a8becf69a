package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"smarttranslate/utils"

	"gopkg.in/yaml.v3"
)

// Options 单次调用的用户选项
type Options struct {
	APIKey   string `yaml:"apikey"`
	Model    string `yaml:"model"`
	FromLang string `yaml:"from_lang"`
	ToLang   string `yaml:"to_lang"`
}

// ModelOrDefault 空模型回落到 gpt-4o
func (o Options) ModelOrDefault() string {
	if strings.TrimSpace(o.Model) == "" {
		return DefaultModel
	}
	return o.Model
}

// Merge 用 override 中的非空字段覆盖当前选项
func (o Options) Merge(override Options) Options {
	if override.APIKey != "" {
		o.APIKey = override.APIKey
	}
	if override.Model != "" {
		o.Model = override.Model
	}
	if override.FromLang != "" {
		o.FromLang = override.FromLang
	}
	if override.ToLang != "" {
		o.ToLang = override.ToLang
	}
	return o
}

// Config 进程级配置
type Config struct {
	Options     Options       `yaml:"options"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	Port        string        `yaml:"port"`
	ClientToken string        `yaml:"client_token"`
}

// LanguageSet 校验语言名称所需的最小接口
type LanguageSet interface {
	Contains(name string) bool
}

// Default 默认配置
func Default() Config {
	return Config{
		Options: Options{
			Model:    DefaultModel,
			FromLang: DefaultFromLang,
			ToLang:   DefaultToLang,
		},
		BaseURL: DefaultBaseURL,
		Timeout: DefaultRequestTimeout,
		Port:    DefaultPort,
	}
}

// Load 按 默认值 → YAML文件 → 环境变量 的顺序加载配置
// path 为空时读取 SMARTTRANSLATE_CONFIG，仍为空则跳过文件
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("SMARTTRANSLATE_CONFIG")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewConfigError(ErrCodeConfigNotFound, "配置文件不存在: %s", path)
		}
		return fmt.Errorf("读取配置文件失败: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return NewConfigError(ErrCodeConfigInvalid, "解析配置文件 %s 失败: %v", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Options = cfg.Options.Merge(Options{
		APIKey:   os.Getenv("OPENAI_API_KEY"),
		Model:    os.Getenv("SMARTTRANSLATE_MODEL"),
		FromLang: os.Getenv("SMARTTRANSLATE_FROM_LANG"),
		ToLang:   os.Getenv("SMARTTRANSLATE_TO_LANG"),
	})

	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if env := os.Getenv("REQUEST_TIMEOUT_SECONDS"); env != "" {
		if seconds, err := strconv.Atoi(env); err == nil && seconds > 0 {
			cfg.Timeout = time.Duration(seconds) * time.Second
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if token := os.Getenv("CLIENT_TOKEN"); token != "" {
		cfg.ClientToken = token
	}
}

// Validate 校验模型与语言，空模型视为默认模型
func (o Options) Validate(langs LanguageSet) error {
	if !utils.StringSliceContains(SupportedModels, o.ModelOrDefault()) {
		return NewConfigError(ErrCodeUnknownModel, "不支持的模型 %q，可选: %s", o.Model, strings.Join(SupportedModels, ", "))
	}
	if langs != nil {
		if !langs.Contains(o.FromLang) {
			return NewConfigError(ErrCodeUnknownLanguage, "未知的源语言 %q", o.FromLang)
		}
		if !langs.Contains(o.ToLang) {
			return NewConfigError(ErrCodeUnknownLanguage, "未知的目标语言 %q", o.ToLang)
		}
	}
	return nil
}

// RequireAPIKey 发起请求前检查API Key
func (o Options) RequireAPIKey() error {
	if strings.TrimSpace(o.APIKey) == "" {
		return NewConfigError(ErrCodeMissingAPIKey, "未配置API Key，请设置 OPENAI_API_KEY 或在配置文件中填写 apikey")
	}
	return nil
}
