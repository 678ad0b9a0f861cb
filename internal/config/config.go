package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	PassPolicyLastWriteWins = "last_write_wins"
	PassPolicyEverPassed    = "ever_passed"
)

type Settings struct {
	Env              string
	Port             string
	LogLevel         string
	DBDriver         string
	DatabaseDSN      string
	AutoMigrate      bool
	CookieDomain     string
	CORSOrigins      []string
	EnforceTimeLimit bool
	TimeLimitGrace   time.Duration
	PassPolicy       string
	GeminiModel      string
}

func (s *Settings) IsDev() bool { return s.Env == "dev" || s.Env == "test" }

var App *Settings

// Init loads .env (when present) and the process environment into App and sets up the logger.
func Init() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatalf("config.godotenv: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(.env): %v", err)
	}

	App = Load(NewViper())
	InitLogger(App.Env, App.LogLevel)
}

func NewViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("COOKIE_DOMAIN", "")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("ENFORCE_TIME_LIMIT", true)
	v.SetDefault("TIME_LIMIT_GRACE", 30*time.Second)
	v.SetDefault("PASS_POLICY", PassPolicyLastWriteWins)
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")

	v.AutomaticEnv()
	return v
}

func Load(v *viper.Viper) *Settings {
	s := &Settings{
		Env:              strings.ToLower(v.GetString("ENV")),
		Port:             v.GetString("PORT"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		AutoMigrate:      v.GetBool("DB_AUTO_MIGRATE"),
		CookieDomain:     v.GetString("COOKIE_DOMAIN"),
		EnforceTimeLimit: v.GetBool("ENFORCE_TIME_LIMIT"),
		TimeLimitGrace:   v.GetDuration("TIME_LIMIT_GRACE"),
		PassPolicy:       strings.ToLower(v.GetString("PASS_POLICY")),
		GeminiModel:      v.GetString("GEMINI_MODEL"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			s.CORSOrigins = append(s.CORSOrigins, origin)
		}
	}

	if s.PassPolicy != PassPolicyEverPassed {
		s.PassPolicy = PassPolicyLastWriteWins
	}
	if s.TimeLimitGrace < 0 {
		s.TimeLimitGrace = 0
	}
	return s
}
