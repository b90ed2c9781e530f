package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string           // Env is the current environment: local, development, production.
	HTTP       HTTPConfig       // HTTP holds the REST API server configuration
	Monitoring MonitoringConfig // Monitoring holds the metrics and health server configuration
	Web        WebConfig        // Web holds the directory page configuration
	Postgres   PostgresConfig   // Postgres holds the database configuration
}

// HTTPConfig struct holds the configuration of the REST API server.
type HTTPConfig struct {
	Port           int           // Port is the listening port of the API.
	Timeout        time.Duration // Timeout bounds reading and writing one request.
	AllowedOrigins []string      // AllowedOrigins are the CORS origins, "*" allows any.
}

type MonitoringConfig struct {
	Port int
}

// WebConfig struct holds the configuration of the server-rendered directory page.
type WebConfig struct {
	Port   int    // Port is the listening port of the page.
	APIURL string // APIURL is the base url of the REST API the page reads from.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

var envBindings = map[string]string{
	"env":                  "ATHENA_ENV",
	"http.port":            "HTTP_PORT",
	"http.timeout":         "HTTP_TIMEOUT",
	"http.allowed_origins": "HTTP_ALLOWED_ORIGINS",
	"monitoring.port":      "MONITORING_PORT",
	"web.port":             "WEB_PORT",
	"web.api_url":          "WEB_API_URL",
	"postgres.host":        "DB_HOST",
	"postgres.port":        "DB_PORT",
	"postgres.user":        "DB_USERNAME",
	"postgres.password":    "DB_PASSWORD",
	"postgres.db_name":     "DB_NAME",
}

// MustLoad reads the optional YAML file named by CONFIG_PATH, overlays the
// environment (a .env file included) and returns the resulting Config.
// It panics when the configuration cannot be used.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("env", "local")
	v.SetDefault("http.port", 5000)
	v.SetDefault("http.timeout", "10s")
	v.SetDefault("http.allowed_origins", "*")
	v.SetDefault("monitoring.port", 8080)
	v.SetDefault("web.port", 3000)
	v.SetDefault("web.api_url", "http://localhost:5000")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	timeout, err := time.ParseDuration(v.GetString("http.timeout"))
	if err != nil {
		panic("failed to parse http timeout from configuration")
	}

	return &Config{
		Env: v.GetString("env"),
		HTTP: HTTPConfig{
			Port:           mustPort(v, "http.port"),
			Timeout:        timeout,
			AllowedOrigins: splitList(v.GetStringSlice("http.allowed_origins")),
		},
		Monitoring: MonitoringConfig{
			Port: mustPort(v, "monitoring.port"),
		},
		Web: WebConfig{
			Port:   mustPort(v, "web.port"),
			APIURL: strings.TrimRight(v.GetString("web.api_url"), "/"),
		},
		Postgres: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Dbname:   v.GetString("postgres.db_name"),
		},
	}
}

func mustPort(v *viper.Viper, key string) int {
	port := v.GetInt(key)
	if port <= 0 || port > 65535 {
		panic("invalid " + key + " in configuration")
	}
	return port
}

// splitList accepts both a YAML sequence and a comma separated string.
func splitList(raw []string) []string {
	var result []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
