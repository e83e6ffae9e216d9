// Package config 负责加载和管理应用程序的配置。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Log         LogConfig         `mapstructure:"log"`
	LLM         LLMConfig         `mapstructure:"llm"`
	Workspace   WorkspaceConfig   `mapstructure:"workspace"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig 存储所有数据库连接的配置。
type DatabaseConfig struct {
	// Driver 取值 mysql 或 sqlite
	Driver string      `mapstructure:"driver"`
	DSN    string      `mapstructure:"dsn"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// RedisConfig 存储 Redis 的配置。
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PreferencesConfig 决定偏好记录（主题、任务、学习计划）落在哪个存储后端。
type PreferencesConfig struct {
	// Backend 取值 database、redis 或 memory（进程内，重启即丢失）
	Backend   string `mapstructure:"backend"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// JWTConfig 存储访客令牌相关的配置。
type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	TokenExpireHours int    `mapstructure:"token_expire_hours"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// LLMConfig 存储大语言模型相关的配置。
type LLMConfig struct {
	// Provider 取值 gemini、openai 或 mock（离线开发）
	Provider   string              `mapstructure:"provider"`
	APIKey     string              `mapstructure:"api_key"`
	BaseURL    string              `mapstructure:"base_url"`
	Model      string              `mapstructure:"model"`
	Timeout    int                 `mapstructure:"timeout_seconds"`
	Generation LLMGenerationConfig `mapstructure:"generation"`
}

// LLMGenerationConfig 配置生成相关参数（可选）。
type LLMGenerationConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	TopP        float64 `mapstructure:"top_p"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// WorkspaceConfig 控制访客工作区在内存中的保留策略。
type WorkspaceConfig struct {
	IdleTTLMinutes int    `mapstructure:"idle_ttl_minutes"`
	SweepSpec      string `mapstructure:"sweep_spec"`
}

// SetDefaults 注册所有配置项的默认值，配置文件缺省时依然可以启动。
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8081")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "scholar.db")
	v.SetDefault("database.redis.addr", "localhost:6379")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)
	v.SetDefault("preferences.backend", "database")
	v.SetDefault("preferences.key_prefix", "scholar")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.token_expire_hours", 24*30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output_path", "")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gemini-3-flash-preview")
	v.SetDefault("llm.timeout_seconds", 0)
	v.SetDefault("llm.generation.temperature", 0)
	v.SetDefault("llm.generation.top_p", 0)
	v.SetDefault("llm.generation.max_tokens", 0)
	v.SetDefault("workspace.idle_ttl_minutes", 120)
	v.SetDefault("workspace.sweep_spec", "@every 10m")
}

// Init 初始化配置加载，从指定的路径读取 YAML 文件并解析到 Conf 变量中。
// 环境变量优先级高于文件，键名中的 "." 替换为 "_"，例如 LLM_API_KEY。
func Init(configPath string) {
	conf, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	Conf = *conf
}

// Load 读取配置但不写入全局变量，便于测试。
func Load(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("无法将配置解析到结构体中: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("配置无效: %w", err)
	}
	return &conf, nil
}

// Validate 检查枚举类配置项是否合法。
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("database.driver 必须是 mysql 或 sqlite，当前为 %q", c.Database.Driver)
	}
	switch c.Preferences.Backend {
	case "database", "redis", "memory":
	default:
		return fmt.Errorf("preferences.backend 必须是 database、redis 或 memory，当前为 %q", c.Preferences.Backend)
	}
	switch c.LLM.Provider {
	case "gemini", "openai", "mock":
	default:
		return fmt.Errorf("llm.provider 必须是 gemini、openai 或 mock，当前为 %q", c.LLM.Provider)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret 不能为空")
	}
	return nil
}
