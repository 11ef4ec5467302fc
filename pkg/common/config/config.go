package config

import (
	"fmt"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload" // .env 文件自动加载
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type ServerConfig struct {
	Address string `json:"address" validate:"required"`
}

type SecurityConfig struct {
	MaxBodySize      int64    `json:"maxBodySize" validate:"gt=0"` // 单位：字节
	RequireUserAgent bool     `json:"requireUserAgent"`
	AllowedMethods   []string `json:"allowedMethods" validate:"required,min=1"`
}

type TimeoutConfig struct {
	RequestTimeout int `json:"requestTimeout" validate:"gte=0"` // 单位：秒，0 表示不限制
}

type CORSConfig struct {
	AllowOrigins     []string      `json:"allowOrigins"`
	AllowMethods     []string      `json:"allowMethods"`
	AllowHeaders     []string      `json:"allowHeaders"`
	ExposeHeaders    []string      `json:"exposeHeaders"`
	AllowCredentials bool          `json:"allowCredentials"`
	MaxAge           time.Duration `json:"maxAge"`
	TrustedDomains   []string      `json:"trustedDomains"`
}

// RateLimitConfig allows Rate requests per Interval. Rate 0 disables limiting.
type RateLimitConfig struct {
	Rate     int           `json:"rate" validate:"gte=0"`
	Interval time.Duration `json:"interval" validate:"gt=0"`
}

type MiddlewareConfig struct {
	Security  SecurityConfig  `json:"security"`
	Timeout   TimeoutConfig   `json:"timeout"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rateLimit"`
}

type DatabaseConfig struct {
	Driver      string `json:"driver" validate:"oneof=mysql postgres sqlite"`
	DSN         string `json:"dsn"`         // 非空时直接使用，忽略下面的连接参数
	Host        string `json:"host"`        // 数据库主机地址
	Port        int    `json:"port"`        // 数据库端口
	Username    string `json:"username"`    // 数据库用户名
	Password    string `json:"password"`    // 数据库密码
	DBName      string `json:"dbname"`      // 数据库名称
	SSLMode     string `json:"sslMode"`     // postgres only
	UseUnixSock bool   `json:"useUnixSock"` // 是否使用Unix套接字连接
	MinPoolSize int    `json:"minPoolSize" validate:"gte=0"`
	MaxPoolSize int    `json:"maxPoolSize" validate:"gte=0"`
	LogLevel    string `json:"logLevel" validate:"oneof=silent error warn info"`
}

type LogConfig struct {
	Level  string `json:"level" validate:"oneof=trace debug info notice warn error fatal"`
	Format string `json:"format" validate:"oneof=json console"`
}

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Log        LogConfig        `json:"log"`
	Middleware MiddlewareConfig `json:"middleware"`
	Env        string           `json:"env" validate:"required"` // 环境标识
}

// Default returns a fresh copy of the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		Database: DatabaseConfig{
			Driver:      "mysql",
			Host:        "localhost",
			Port:        3306,
			Username:    "root",
			Password:    "root",
			DBName:      "cadastro",
			SSLMode:     "disable",
			MinPoolSize: 5,
			MaxPoolSize: 50,
			LogLevel:    "warn",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Middleware: MiddlewareConfig{
			Security: SecurityConfig{
				MaxBodySize:      1 << 20, // 1MB
				RequireUserAgent: true,
				AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			},
			Timeout: TimeoutConfig{
				RequestTimeout: 15,
			},
			CORS: CORSConfig{
				AllowOrigins:     []string{"http://localhost:3000"},
				AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Content-Type", "X-Request-ID", "X-Requested-With"},
				ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
				AllowCredentials: true,
				MaxAge:           12 * time.Hour,
			},
			RateLimit: RateLimitConfig{
				Rate:     50,
				Interval: time.Second,
			},
		},
		Env: "development",
	}
}

// IsProd 判断当前是否生产环境
func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// envKeys maps environment variables onto config paths.
var envKeys = map[string]string{
	"SERVER_ADDR":     "server.address",
	"APP_ENV":         "env",
	"LOG_LEVEL":       "log.level",
	"LOG_FORMAT":      "log.format",
	"MAX_BODY_SIZE":   "middleware.security.maxBodySize",
	"REQUEST_TIMEOUT": "middleware.timeout.requestTimeout",
	"RATE_LIMIT":      "middleware.rateLimit.rate",
	"RATE_INTERVAL":   "middleware.rateLimit.interval",
	"CORS_ORIGINS":    "middleware.cors.allowOrigins",
	"DB_DRIVER":       "database.driver",
	"DB_DSN":          "database.dsn",
	"DB_HOST":         "database.host",
	"DB_PORT":         "database.port",
	"DB_USER":         "database.username",
	"DB_PASSWORD":     "database.password",
	"DB_NAME":         "database.dbname",
	"DB_SSLMODE":      "database.sslMode",
	"DB_SOCKET":       "database.useUnixSock",
	"DB_MIN_POOL":     "database.minPoolSize",
	"DB_MAX_POOL":     "database.maxPoolSize",
	"DB_LOG_LEVEL":    "database.logLevel",
}

// Load 加载配置（优先级：环境变量 > 配置文件 > 默认值）
func Load() (*Config, error) {
	return load(getConfigPath())
}

func load(configPath string) (*Config, error) {
	config := Default()
	k := koanf.New(".")

	// 1. 尝试从配置文件加载
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), kjson.Parser()); err != nil {
			hlog.Warnf("Failed to load config file %s: %v", configPath, err)
		}
	}

	// 2. 从环境变量覆盖
	err := k.Load(env.Provider("", ".", func(key string) string {
		return envKeys[key]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// getConfigPath 获取配置文件路径
func getConfigPath() string {
	// 优先使用环境变量指定的配置文件路径
	if path := os.Getenv("APP_CONFIG"); path != "" {
		return path
	}

	// 依次查找可能的配置文件位置
	searchPaths := []string{
		"./config.json",
		"../config.json",
		"/etc/cadastro-pessoas/config.json",
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
