package configuration

import (
	"fmt"
	"os"
	"strconv"

	"granitereply/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	Google      Google      `json:"google"`
	OpenAI      OpenAI      `json:"openai"`
	RedisClient RedisClient `json:"redisClient"`
	Pubsub      Pubsub      `json:"pubsub"`
	ServiceBus  ServiceBus  `json:"serviceBus"`
	Resend      Resend      `json:"resend"`
	Sync        Sync        `json:"sync"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
	BaseURL   string `json:"baseUrl"`
}

type Database struct {
	Psql  Db `json:"psql"`
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// Google holds the OAuth client used for the Business Profile connect flow.
type Google struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectURI"`
}

type OpenAI struct {
	APIKey    string `json:"apiKey"`
	Model     string `json:"model"`
	ChatModel string `json:"chatModel"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

type ServiceBus struct {
	Namespace string `json:"namespace"`
	Queue     string `json:"queue"`
}

type Resend struct {
	APIKey            string `json:"apiKey"`
	NotificationEmail string `json:"notificationEmail"`
	FromEmail         string `json:"fromEmail"`
}

// Sync controls the background review sync loop. IntervalMinutes 0 disables it.
type Sync struct {
	IntervalMinutes int `json:"intervalMinutes"`
	PageSize        int `json:"pageSize"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initIntegrations(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = "5432"
	}

	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = os.Getenv("MONGO_PORT")
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = os.Getenv("MONGO_DB_NAME")
	}
}

func initApp(C *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10002
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10002
	}
	if v := os.Getenv("APP_BASE_URL"); v != "" {
		C.App.BaseURL = v
	}
	if C.App.BaseURL == "" {
		C.App.BaseURL = fmt.Sprintf("http://localhost:%d", C.App.Port)
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; JWT authentication will fail. Provide SECRET_KEY via environment.")
	}
}

func initIntegrations(C *Config) {
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		C.Google.ClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		C.Google.ClientSecret = v
	}
	if v := os.Getenv("GOOGLE_REDIRECT_URI"); v != "" {
		C.Google.RedirectURI = v
	}
	if C.Google.RedirectURI == "" {
		C.Google.RedirectURI = C.App.BaseURL + "/auth/google/callback"
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		C.OpenAI.APIKey = v
	}
	if C.OpenAI.Model == "" {
		C.OpenAI.Model = "gpt-4-turbo-preview"
	}
	if C.OpenAI.ChatModel == "" {
		C.OpenAI.ChatModel = "gpt-4o-mini"
	}

	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		C.Resend.APIKey = v
	}
	if v := os.Getenv("NOTIFICATION_EMAIL"); v != "" {
		C.Resend.NotificationEmail = v
	}
	if C.Resend.NotificationEmail == "" {
		C.Resend.NotificationEmail = "leads@granitereply.com"
	}
	if v := os.Getenv("FROM_EMAIL"); v != "" {
		C.Resend.FromEmail = v
	}
	if C.Resend.FromEmail == "" {
		C.Resend.FromEmail = "GraniteReply <noreply@granitereply.com>"
	}

	if C.Sync.PageSize == 0 {
		C.Sync.PageSize = 50
	}
}
