package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	Port     string
	LogLevel string
	DBPath   string

	Auth       AuthConfig
	Simulation SimulationConfig
	MQTT       MQTTConfig
	Kafka      KafkaConfig
	Sensors    SensorsConfig
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type SimulationConfig struct {
	Interval        time.Duration
	Machines        []string
	HistoryLimit    int
	HourlyRetention time.Duration
}

type MQTTConfig struct {
	Enabled      bool
	Broker       string
	ClientID     string
	Username     string
	Password     string
	FeedTopic    string
	PublishTopic string // %s is replaced by the machine id
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

type SensorsConfig struct {
	APIURL  string
	Timeout time.Duration
}

const envPrefix = "HTM"

// Defaults mirror configs/config.yml so the service starts without a file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")

	v.SetDefault("auth.signing_key", "change-me")
	v.SetDefault("auth.token_ttl", time.Hour)

	v.SetDefault("simulation.interval", 5*time.Second)
	v.SetDefault("simulation.machines", []string{"Machine-1", "Machine-2", "Machine-3", "Machine-4", "Machine-5"})
	v.SetDefault("simulation.history_limit", 50)
	v.SetDefault("simulation.hourly_retention", 24*time.Hour)

	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("mqtt.client_id", "machine-monitoring")
	v.SetDefault("mqtt.feed_topic", "devices/+/messages/events/#")
	v.SetDefault("mqtt.publish_topic", "devices/%s/messages/events/readings")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "machine-readings")

	v.SetDefault("sensors.api_url", "http://localhost:8080/api/sensors")
	v.SetDefault("sensors.timeout", 5*time.Second)
}

// Load reads configs/config.yml (if present) and HTM_* environment overrides.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log.level"),
		DBPath:   v.GetString("db.path"),
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		Simulation: SimulationConfig{
			Interval:        v.GetDuration("simulation.interval"),
			Machines:        v.GetStringSlice("simulation.machines"),
			HistoryLimit:    v.GetInt("simulation.history_limit"),
			HourlyRetention: v.GetDuration("simulation.hourly_retention"),
		},
		MQTT: MQTTConfig{
			Enabled:      v.GetBool("mqtt.enabled"),
			Broker:       v.GetString("mqtt.broker"),
			ClientID:     v.GetString("mqtt.client_id"),
			Username:     v.GetString("mqtt.username"),
			Password:     v.GetString("mqtt.password"),
			FeedTopic:    v.GetString("mqtt.feed_topic"),
			PublishTopic: v.GetString("mqtt.publish_topic"),
		},
		Kafka: KafkaConfig{
			Enabled: v.GetBool("kafka.enabled"),
			Brokers: v.GetStringSlice("kafka.brokers"),
			Topic:   v.GetString("kafka.topic"),
		},
		Sensors: SensorsConfig{
			APIURL:  v.GetString("sensors.api_url"),
			Timeout: v.GetDuration("sensors.timeout"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Simulation.Interval <= 0 {
		return fmt.Errorf("simulation.interval must be positive, got %s", c.Simulation.Interval)
	}
	if c.Simulation.HistoryLimit <= 0 {
		return fmt.Errorf("simulation.history_limit must be positive, got %d", c.Simulation.HistoryLimit)
	}
	if c.Simulation.HourlyRetention < 0 {
		return fmt.Errorf("simulation.hourly_retention must not be negative, got %s", c.Simulation.HourlyRetention)
	}
	if len(c.Simulation.Machines) == 0 {
		return errors.New("simulation.machines must list at least one machine")
	}
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return errors.New("auth.signing_key is required")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers is required when kafka is enabled")
	}
	return nil
}
