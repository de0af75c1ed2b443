package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Backend BackendConfig `mapstructure:"backend"`
	MySQL   MySQLConfig   `mapstructure:"mysql"`
	Redis   RedisConfig   `mapstructure:"redis"`
	AMQP    AMQPConfig    `mapstructure:"amqp"`
	Portal  PortalConfig  `mapstructure:"portal"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Mode        string `mapstructure:"mode"`
	CORSOrigins string `mapstructure:"cors_origins"`
}

type BackendConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	PaymentURL string        `mapstructure:"payment_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type MySQLConfig struct {
	URL  string `mapstructure:"url"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Name string `mapstructure:"name"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AMQPConfig struct {
	URL   string `mapstructure:"url"`
	Queue string `mapstructure:"queue"`
}

type PortalConfig struct {
	DraftTTL   time.Duration `mapstructure:"draft_ttl"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// Load reads ./config/config.yaml when present and lets environment variables
// (PORTAL_SERVER_PORT, PORTAL_BACKEND_BASE_URL, ...) override everything.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", "")
	v.SetDefault("backend.base_url", "http://localhost:9000/api")
	v.SetDefault("backend.payment_url", "http://localhost:9000/api")
	v.SetDefault("backend.timeout", 10*time.Second)
	// Every key needs a default, even an empty one: AutomaticEnv only
	// consults the environment for keys viper already knows about.
	v.SetDefault("mysql.url", "")
	v.SetDefault("mysql.user", "root")
	v.SetDefault("mysql.pass", "")
	v.SetDefault("mysql.host", "127.0.0.1")
	v.SetDefault("mysql.port", "3306")
	v.SetDefault("mysql.name", "hotel_portal")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("amqp.url", "")
	v.SetDefault("amqp.queue", "booking-events")
	v.SetDefault("portal.draft_ttl", 30*time.Minute)
	v.SetDefault("portal.session_ttl", 24*time.Hour)

	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("portal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
