package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	corpSourceJSON  = "json"
	corpSourceMySQL = "mysql"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	OpenDart OpenDartConfig `mapstructure:"opendart"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Corps    CorpsConfig    `mapstructure:"corps"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Session  SessionConfig  `mapstructure:"session"`
	Log      LogConfig      `mapstructure:"log"`
}

type HTTPConfig struct {
	Port int `mapstructure:"port"`
}

type OpenDartConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	RateLimit int    `mapstructure:"rate_limit"`
}

// RedisConfig.Addr may be empty, in which case company profiles are not
// cached.
type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type CorpsConfig struct {
	Source   string `mapstructure:"source"`
	JSONPath string `mapstructure:"json_path"`
}

type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

type SessionConfig struct {
	HashKey  string `mapstructure:"hash_key"`
	BlockKey string `mapstructure:"block_key"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// loadConfig reads .env, then config.yaml (optional), then DARTWATCH_*
// environment overrides. OPENDART_API_KEY and OPENDART_BASE_URL are also
// honored as-is. An explicit configFile must exist.
func loadConfig(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("DARTWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("opendart.api_key", "DARTWATCH_OPENDART_API_KEY", "OPENDART_API_KEY")
	_ = v.BindEnv("opendart.base_url", "DARTWATCH_OPENDART_BASE_URL", "OPENDART_BASE_URL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)

	v.SetDefault("opendart.api_key", "")
	v.SetDefault("opendart.base_url", defaultDartBaseURL)
	v.SetDefault("opendart.rate_limit", defaultDartRateLimit)

	v.SetDefault("redis.addr", "")

	v.SetDefault("corps.source", corpSourceJSON)
	v.SetDefault("corps.json_path", "data/corpCodes.json")

	v.SetDefault("mysql.dsn", "")

	v.SetDefault("session.hash_key", "")
	v.SetDefault("session.block_key", "")

	v.SetDefault("log.debug", false)
}

// requireAPIKey is checked by the commands that talk to OpenDart.
func (c *Config) requireAPIKey() error {
	if strings.TrimSpace(c.OpenDart.APIKey) == "" {
		return errMissingAPIKey
	}
	return nil
}

// programName is the basename of the running binary, used as the log tag.
func programName() string {
	pgmPath := strings.Split(os.Args[0], "/")
	if len(pgmPath) > 1 {
		return pgmPath[len(pgmPath)-1]
	}
	return "dartwatch"
}
