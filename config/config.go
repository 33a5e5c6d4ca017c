// Ininicializing common application configuration
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig              `mapstructure:"server"`
	Placement PlacementConfig           `mapstructure:"placement"`
	Catalog   map[string]entity.Product `mapstructure:"catalog"`
	Shipping  map[string]int            `mapstructure:"shipping"`
	Email     EmailConfig               `mapstructure:"email"`
	Kafka     KafkaConfig               `mapstructure:"kafka"`
	Storage   StorageConfig             `mapstructure:"storage"`
}

type ServerConfig struct {
	AppVersion   string `json:"appVersion"`
	Host         string `json:"host" validate:"required"`
	Port         string `json:"port" validate:"required"`
	Timeout      time.Duration
	Idle_timeout time.Duration
	Env          string `json:"environment"`
	Mode         string `mapstructure:"mode"`
}

type PlacementConfig struct {
	Bounds  entity.Bounds `mapstructure:"bounds"`
	MinSize int           `mapstructure:"min_size"`
}

// EmailConfig describes the transactional-email REST API that receives orders.
type EmailConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	ServiceID  string        `mapstructure:"service_id"`
	TemplateID string        `mapstructure:"template_id"`
	PublicKey  string        `mapstructure:"public_key"`
	Merchant   string        `mapstructure:"merchant"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Enabled    bool          `mapstructure:"enabled"`
}

type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// BrokerList splits the comma separated broker addresses.
func (k KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

type StorageConfig struct {
	BasePath string `mapstructure:"base_path"`
}

func LoadConfig() (*viper.Viper, error) {
	// .env is optional
	_ = godotenv.Load()

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")
	setDefaults(viperInstance)

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Printf("unable to decode config into struct, %v", err)
		return nil, err
	}

	c.Email.PublicKey = GetEnv("EMAIL_PUBLIC_KEY", c.Email.PublicKey)
	c.Kafka.Brokers = GetEnv("KAFKA_BROKERS", c.Kafka.Brokers)
	c.Kafka.Topic = GetEnv("KAFKA_TOPIC", c.Kafka.Topic)
	c.Kafka.GroupID = GetEnv("KAFKA_GROUP_ID", c.Kafka.GroupID)
	c.Storage.BasePath = GetEnv("STORAGE_PATH", c.Storage.BasePath)
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("placement.bounds.top", entity.DefaultBounds.Top)
	v.SetDefault("placement.bounds.left", entity.DefaultBounds.Left)
	v.SetDefault("placement.bounds.width", entity.DefaultBounds.Width)
	v.SetDefault("placement.bounds.height", entity.DefaultBounds.Height)
	v.SetDefault("placement.min_size", entity.DefaultMinSize)

	v.SetDefault("email.endpoint", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("email.timeout", 15*time.Second)

	v.SetDefault("kafka.brokers", "kafka:9092")
	v.SetDefault("kafka.topic", "orders")
	v.SetDefault("kafka.group_id", "order-archiver")

	v.SetDefault("storage.base_path", "./storage")
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
