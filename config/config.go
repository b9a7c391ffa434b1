package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Log      Log
	Exam     Exam
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // sqlite file, ":memory:" allowed
}

type Log struct {
	Level  string
	Pretty bool
}

type Exam struct {
	// BatchConcurrency bounds the fan-out of batch exam assignment.
	BatchConcurrency int
	// UnscopedFallback scores against the whole question bank when a student
	// has no set assigned, instead of rejecting the submission.
	UnscopedFallback bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_PATH", "examdesk.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("EXAM_BATCH_CONCURRENCY", 4)
	v.SetDefault("EXAM_UNSCOPED_FALLBACK", false)
}

// Load reads envFile (a dotenv file, optional) and overlays the process environment.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if envFile != "" {
		if err := v.ReadInConfig(); err != nil {
			log.Warn().Err(err).Str("file", envFile).Msg("Error reading config file, using environment only")
		}
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.Path = v.GetString("DATABASE_PATH")
	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Pretty = v.GetBool("LOG_PRETTY")
	config.Exam.BatchConcurrency = v.GetInt("EXAM_BATCH_CONCURRENCY")
	config.Exam.UnscopedFallback = v.GetBool("EXAM_UNSCOPED_FALLBACK")

	if config.Exam.BatchConcurrency < 1 {
		config.Exam.BatchConcurrency = 1
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("db_host", config.Database.Host).
		Str("db_name", config.Database.Name).
		Int("batch_concurrency", config.Exam.BatchConcurrency).
		Msg("Config loaded")
	return &config, nil
}
