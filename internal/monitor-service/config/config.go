package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Scheduler     SchedulerConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
	Mail          MailConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/monitor-service.log"`
}

type SchedulerConfig struct {
	FailureThreshold     int           `envconfig:"FAILURE_THRESHOLD" default:"5"`
	EmailCooldown        time.Duration `envconfig:"EMAIL_COOLDOWN" default:"24h"`
	SettleDelay          time.Duration `envconfig:"SCHEDULER_SETTLE_DELAY" default:"500ms"`
	ProbeTimeout         time.Duration `envconfig:"PROBE_TIMEOUT" default:"30s"`
	HousekeepingSchedule string        `envconfig:"HOUSEKEEPING_SCHEDULE" default:"0 3 * * *"`
	MetricRetention      time.Duration `envconfig:"METRIC_RETENTION" default:"720h"`
}

type PostgresConfig struct {
	Host            string        `envconfig:"POSTGRES_HOST" required:"true"`
	Port            int           `envconfig:"POSTGRES_PORT" required:"true"`
	User            string        `envconfig:"POSTGRES_USER" required:"true"`
	Password        string        `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName          string        `envconfig:"POSTGRES_DB" required:"true"`
	MaxOpenConns    int           `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"50"`
	MaxIdleConns    int           `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"POSTGRES_CONN_MAX_LIFETIME" default:"30m"`
}

type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST" required:"true"`
	Port     int           `envconfig:"REDIS_PORT" required:"true"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"10m"`
}

type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS" required:"true"`
	MetricTopic string   `envconfig:"KAFKA_METRIC_TOPIC" default:"monitor.metrics"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD"`
}

type MailConfig struct {
	Email    string `envconfig:"MAIL_EMAIL" required:"true"`
	FromName string `envconfig:"MAIL_FROM_NAME" default:"API Monitor"`
	Password string `envconfig:"MAIL_PASSWORD" required:"true"`
	Host     string `envconfig:"MAIL_HOST" required:"true"`
	Port     int    `envconfig:"MAIL_PORT" required:"true"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
