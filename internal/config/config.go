package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port          int
	Mode          string
	TemplatesGlob string
	StaticDir     string
}

type DatabaseConfig struct {
	Driver   string // "mysql" or "sqlite"
	Host     string
	User     string
	Password string
	Name     string
	Port     int
	Path     string // sqlite only
}

type SessionConfig struct {
	Secret      string
	ExpireHours int
}

type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	AI       AIConfig
}

var (
	appConfig *Config
	once      sync.Once
)

// Load reads configuration from the process environment (a .env file is
// loaded first if present). Some hosting providers inject MYSQL* variable
// names instead of DB_*, so each database setting checks both.
func Load() *Config {
	once.Do(func() {
		// best effort, a missing .env is fine
		_ = godotenv.Load()

		v := viper.New()
		v.AutomaticEnv()

		v.SetDefault("DB_DRIVER", "mysql")
		v.SetDefault("DB_PATH", "data/shopping.db")
		v.SetDefault("SECRET_KEY", "default_secret_key_change_me")
		v.SetDefault("SESSION_EXPIRE_HOURS", 24)
		v.SetDefault("PORT", 5000)
		v.SetDefault("TEMPLATES_GLOB", "web/templates/*.html")
		v.SetDefault("STATIC_DIR", "web/static")
		v.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
		v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")

		db := DatabaseConfig{
			Driver:   v.GetString("DB_DRIVER"),
			Host:     firstNonEmpty(v, "DB_HOST", "MYSQLHOST", "localhost"),
			User:     firstNonEmpty(v, "DB_USER", "MYSQLUSER", "root"),
			Password: firstNonEmpty(v, "DB_PASSWORD", "MYSQLPASSWORD", ""),
			Name:     firstNonEmpty(v, "DB_NAME", "MYSQLDATABASE", "shopping_list"),
			Path:     v.GetString("DB_PATH"),
		}
		db.Port = firstPort(v, "DB_PORT", "MYSQLPORT", 3306)
		// the provider's internal hostname is only reachable on 3306
		if db.Host == "mysql.railway.internal" {
			db.Port = 3306
		}

		appConfig = &Config{
			Server: ServerConfig{
				Port:          v.GetInt("PORT"),
				Mode:          v.GetString("GIN_MODE"),
				TemplatesGlob: v.GetString("TEMPLATES_GLOB"),
				StaticDir:     v.GetString("STATIC_DIR"),
			},
			Database: db,
			Session: SessionConfig{
				Secret:      v.GetString("SECRET_KEY"),
				ExpireHours: v.GetInt("SESSION_EXPIRE_HOURS"),
			},
			AI: AIConfig{
				APIKey:  v.GetString("GROQ_API_KEY"),
				Model:   v.GetString("GROQ_MODEL"),
				BaseURL: v.GetString("GROQ_BASE_URL"),
			},
		}
	})
	return appConfig
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}

// DSN builds the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

func firstNonEmpty(v *viper.Viper, key, fallbackKey, def string) string {
	if s := v.GetString(key); s != "" {
		return s
	}
	if s := v.GetString(fallbackKey); s != "" {
		return s
	}
	return def
}

func firstPort(v *viper.Viper, key, fallbackKey string, def int) int {
	if p := v.GetInt(key); p != 0 {
		return p
	}
	if p := v.GetInt(fallbackKey); p != 0 {
		return p
	}
	return def
}
