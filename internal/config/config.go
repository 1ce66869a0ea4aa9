package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "CATALOG"

type Config struct {
	Server struct {
		Addr              string        `mapstructure:"addr"`
		ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	} `mapstructure:"server"`
	Database struct {
		URL          string        `mapstructure:"url"`
		QueryTimeout time.Duration `mapstructure:"query_timeout"`
	} `mapstructure:"database"`
	Redis struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"redis"`
	RateLimit RateLimit `mapstructure:"rate_limit"`
	Logger    Logger    `mapstructure:"logger"`
}

type RateLimit struct {
	RPS          float64       `mapstructure:"rps"`
	Burst        int           `mapstructure:"burst"`
	Strikes      int           `mapstructure:"strikes"`
	StrikeWindow time.Duration `mapstructure:"strike_window"`
	BanDuration  time.Duration `mapstructure:"ban_duration"`
}

type Logger struct {
	Mode       string `mapstructure:"mode"`
	FileEnable bool   `mapstructure:"file_enable"`
	Filename   string `mapstructure:"filename"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_header_timeout", 5*time.Second)
	v.SetDefault("database.url", "")
	v.SetDefault("database.query_timeout", 3*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("rate_limit.rps", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.strikes", 20)
	v.SetDefault("rate_limit.strike_window", time.Minute)
	v.SetDefault("rate_limit.ban_duration", 15*time.Minute)
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.file_enable", false)
	v.SetDefault("logger.filename", "catalog.log")
}

// Load reads ./config/config.yaml when present, then CATALOG_* environment
// variables, then DATABASE_URL and REDIS_ADDR.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("redis.addr", EnvPrefix+"_REDIS_ADDR", "REDIS_ADDR"); err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []string{"./config/"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for _, key := range v.AllKeys() {
		val := v.Get(key)
		if val == nil {
			continue
		}
		if reflect.TypeOf(val).Kind() == reflect.String {
			v.Set(key, os.ExpandEnv(val.(string)))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
