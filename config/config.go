package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type RealtimeConfig struct {
	// Driver selects the event transport: "redis" or "kafka".
	Driver string `mapstructure:"driver"`
	Topic  string `mapstructure:"topic"`
}

type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

type SiteConfig struct {
	// PublicURL is the customer-facing site, used for menu share links.
	PublicURL string `mapstructure:"public_url"`
}

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Realtime RealtimeConfig `mapstructure:"realtime"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Site     SiteConfig     `mapstructure:"site"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load reads configuration from the given file path (e.g. "config.yaml").
// If path is empty it looks for "config.yaml" in the working directory, and
// a missing file falls back to defaults. Environment variables prefixed
// OWNER_ override file values, e.g. OWNER_REALTIME_DRIVER=kafka.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		v.SetDefault("api.base_url", "http://localhost:5000/api/v1")
		v.SetDefault("realtime.driver", "redis")
		v.SetDefault("realtime.topic", "owner-events")
		v.SetDefault("storage.dir", ".owner-dashboard")
		v.SetDefault("site.public_url", "http://localhost:3000")

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		v.SetEnvPrefix("OWNER")
		v.AutomaticEnv()

		if readErr := v.ReadInConfig(); readErr != nil {
			// A missing default config file is fine, defaults apply.
			if _, notFound := readErr.(viper.ConfigFileNotFoundError); !notFound {
				err = fmt.Errorf("read config: %w", readErr)
				return
			}
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}
