package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Inventory InventoryConfig `yaml:"inventory"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers      []string `yaml:"brokers"`
	BookingTopic string   `yaml:"booking_topic"`
	GroupID      string   `yaml:"group_id"`
}

// ValidateConsumer reports settings a booking event consumer cannot start without.
func (k KafkaConfig) ValidateConsumer() error {
	switch {
	case len(k.Brokers) == 0:
		return errors.New("kafka.brokers is required")
	case k.BookingTopic == "":
		return errors.New("kafka.booking_topic is required")
	case k.GroupID == "":
		return errors.New("kafka.group_id is required")
	}
	return nil
}

type InventoryConfig struct {
	SourceCSV   string `yaml:"source_csv"`
	SeedOnStart bool   `yaml:"seed_on_start"`
}

type SessionConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Config{
		HTTP:    HTTPConfig{Address: ":8080"},
		Session: SessionConfig{TTLMinutes: 30},
		Log:     LogConfig{Level: "info", Env: "production"},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address is required")
	}
	if c.Inventory.SeedOnStart && c.Inventory.SourceCSV == "" {
		return errors.New("inventory.source_csv is required when seed_on_start is set")
	}
	if c.Session.TTLMinutes < 0 {
		return errors.New("session.ttl_minutes must not be negative")
	}
	return nil
}
