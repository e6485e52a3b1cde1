package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// AppConfig 全局配置实例
var AppConfig *Config

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port         string        `yaml:"port"`
	Mode         string        `yaml:"mode"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	SigningKey    string        `yaml:"signing_key"`
	AccessExpiry  time.Duration `yaml:"access_expiry"`
	RefreshExpiry time.Duration `yaml:"refresh_expiry"`
	Issuer        string        `yaml:"issuer"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// InitConfig 初始化配置：默认值 -> 配置文件 -> 环境变量
func InitConfig() error {
	if err := loadEnv(); err != nil {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	config := &Config{}
	setDefaults(config)

	if err := loadFromFile(config); err != nil {
		log.Printf("Warning: failed to load config file: %v", err)
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	AppConfig = config
	return nil
}

// GetConfig 获取全局配置，未初始化时返回默认配置
func GetConfig() *Config {
	if AppConfig == nil {
		config := &Config{}
		setDefaults(config)
		loadFromEnv(config)
		AppConfig = config
	}
	return AppConfig
}

// loadEnv 加载环境变量文件
func loadEnv() error {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	envFiles := []string{
		".env",
		fmt.Sprintf(".env.%s", env),
		".env.local",
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return err
			}
		}
	}

	return nil
}

// setDefaults 设置默认值
func setDefaults(config *Config) {
	config.Server.Port = "8801"
	config.Server.Mode = "debug"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second

	config.Database.MaxIdleConns = 10
	config.Database.MaxOpenConns = 100
	config.Database.ConnMaxLifetime = time.Hour
	config.Database.LogLevel = "info"

	config.JWT.AccessExpiry = time.Hour
	config.JWT.RefreshExpiry = 168 * time.Hour
	config.JWT.Issuer = "ttland-cms"
}

// loadFromFile 从配置文件加载
func loadFromFile(config *Config) error {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config/config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, config)
}

// loadFromEnv 从环境变量覆盖配置
func loadFromEnv(config *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		config.Server.Mode = v
	}
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		config.Database.DSN = v
	}
	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			config.Database.MaxOpenConns = parsed
		}
	}
	if v := os.Getenv("JWT_SIGNING_KEY"); v != "" {
		config.JWT.SigningKey = v
	}
	if v := os.Getenv("JWT_ACCESS_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.JWT.AccessExpiry = d
		}
	}
	if v := os.Getenv("JWT_REFRESH_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.JWT.RefreshExpiry = d
		}
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		config.Security.AllowedOrigins = strings.Split(v, ",")
	}
}

// validateConfig 验证配置
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if config.JWT.SigningKey == "" {
		log.Printf("Warning: JWT_SIGNING_KEY 未设置，使用开发默认密钥")
		config.JWT.SigningKey = "default-secret-key"
	}
	return nil
}
