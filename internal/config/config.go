package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        int      `yaml:"port"`
	GinMode     string   `yaml:"gin_mode"`
	CORSOrigins []string `yaml:"cors_origins"`
	Development bool     `yaml:"development"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	TokenTTL string `yaml:"token_ttl"`
}

type OTPConfig struct {
	TTL string `yaml:"ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type JobCacheConfig struct {
	TTL string `yaml:"ttl"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Casbin   CasbinConfig   `yaml:"casbin"`
	JobCache JobCacheConfig `yaml:"job_cache"`
}

type Config struct {
	Port            string
	GinMode         string
	CORSOrigins     []string
	Development     bool
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	TokenTTL        time.Duration
	OTPTTL          time.Duration
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	CasbinModelPath string
	JobCacheTTL     time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for
// secrets (DATABASE_DSN, JWT_SECRET, SMTP_*, REDIS_ADDR).
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT token TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	cacheTTL := 5 * time.Minute
	if configFile.JobCache.TTL != "" {
		cacheTTL, err = time.ParseDuration(configFile.JobCache.TTL)
		if err != nil {
			return nil, fmt.Errorf("invalid job cache TTL: %w", err)
		}
	}

	smtpPort := configFile.SMTP.Port
	if v := os.Getenv("SMTP_PORT"); v != "" {
		smtpPort, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
	}

	return &Config{
		Port:            env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:         configFile.App.GinMode,
		CORSOrigins:     configFile.App.CORSOrigins,
		Development:     configFile.App.Development,
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         configFile.Redis.DB,
		JWTSecret:       env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       configFile.JWT.Issuer,
		TokenTTL:        tokenTTL,
		OTPTTL:          otpTTL,
		SMTPHost:        env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:        smtpPort,
		SMTPUsername:    env("SMTP_USER", configFile.SMTP.Username),
		SMTPPassword:    env("SMTP_PASS", configFile.SMTP.Password),
		SMTPFrom:        env("SMTP_FROM", configFile.SMTP.From),
		CasbinModelPath: configFile.Casbin.ModelPath,
		JobCacheTTL:     cacheTTL,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
