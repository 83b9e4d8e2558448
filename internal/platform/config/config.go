// Package config loads service settings from configuration.yaml with
// environment overrides so main stays lean. A local .env file is honored in
// development; real deployments set the variables directly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings is the root configuration object handed to main at process start.
type Settings struct {
	Application ApplicationSettings `yaml:"application"`
	Database    DatabaseSettings    `yaml:"database"`
	EmailClient EmailClientSettings `yaml:"email_client"`
	Redis       RedisSettings       `yaml:"redis"`
	Kafka       KafkaSettings       `yaml:"kafka"`
}

// ApplicationSettings captures the HTTP server and link-building knobs.
type ApplicationSettings struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// BaseURL is the externally visible origin used to build confirmation
	// links; it is not derived from Host/Port because the service usually
	// sits behind a proxy.
	BaseURL string `yaml:"base_url"`
}

// Addr returns the listen address for the HTTP server.
func (a ApplicationSettings) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// DatabaseSettings describe the PostgreSQL connection.
type DatabaseSettings struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

// DSN renders a lib/pq connection string.
func (d DatabaseSettings) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Name, d.SSLMode)
}

// EmailClientSettings configure the outbound mail provider client.
type EmailClientSettings struct {
	BaseURL            string `yaml:"base_url"`
	SenderEmail        string `yaml:"sender_email"`
	SenderName         string `yaml:"sender_name"`
	AuthorizationToken string `yaml:"authorization_token"`
	TimeoutSeconds     int    `yaml:"timeout_seconds"`
}

// Timeout is the deadline applied to each outbound provider call.
func (e EmailClientSettings) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// RedisSettings configure the session store. An empty URL disables redis and
// the admin surface falls back to an in-memory session store.
type RedisSettings struct {
	URL                 string `yaml:"url"`
	PoolSize            int    `yaml:"pool_size"`
	MinIdleConns        int    `yaml:"min_idle_conns"`
	DialTimeoutSeconds  int    `yaml:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
}

func (r RedisSettings) DialTimeout() time.Duration {
	return time.Duration(r.DialTimeoutSeconds) * time.Second
}

func (r RedisSettings) ReadTimeout() time.Duration {
	return time.Duration(r.ReadTimeoutSeconds) * time.Second
}

func (r RedisSettings) WriteTimeout() time.Duration {
	return time.Duration(r.WriteTimeoutSeconds) * time.Second
}

// KafkaSettings configure the audit event producer. Empty brokers disable
// publishing; events are then kept in the in-process store only.
type KafkaSettings struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// Load reads path, applies defaults and environment overrides, and validates
// the result. The .env load is best effort; missing files are fine.
func Load(path string) (*Settings, error) {
	_ = godotenv.Load()

	s := defaults()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}
	if err := yaml.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	applyEnvOverrides(s)

	if s.Application.BaseURL == "" {
		s.Application.BaseURL = "http://" + s.Application.Addr()
	}
	if s.EmailClient.BaseURL == "" {
		return nil, fmt.Errorf("email_client.base_url is required")
	}
	if s.EmailClient.SenderEmail == "" {
		return nil, fmt.Errorf("email_client.sender_email is required")
	}
	return s, nil
}

func defaults() *Settings {
	return &Settings{
		Application: ApplicationSettings{Host: "127.0.0.1", Port: 8080},
		Database: DatabaseSettings{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
		EmailClient: EmailClientSettings{TimeoutSeconds: 10},
		Redis: RedisSettings{
			PoolSize:            10,
			MinIdleConns:        2,
			DialTimeoutSeconds:  5,
			ReadTimeoutSeconds:  3,
			WriteTimeoutSeconds: 3,
		},
		Kafka: KafkaSettings{Topic: "newsletter.audit"},
	}
}

// applyEnvOverrides lets deployments inject secrets without touching the
// yaml file baked into the image.
func applyEnvOverrides(s *Settings) {
	if v := os.Getenv("APP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			s.Application.Port = port
		}
	}
	if v := os.Getenv("APP_BASE_URL"); v != "" {
		s.Application.BaseURL = v
	}
	if v := os.Getenv("APP_DATABASE_HOST"); v != "" {
		s.Database.Host = v
	}
	if v := os.Getenv("APP_DATABASE_PASSWORD"); v != "" {
		s.Database.Password = v
	}
	if v := os.Getenv("APP_EMAIL_AUTHORIZATION_TOKEN"); v != "" {
		s.EmailClient.AuthorizationToken = v
	}
	if v := os.Getenv("APP_REDIS_URL"); v != "" {
		s.Redis.URL = v
	}
}
