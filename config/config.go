package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"museum-booking/logger"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

type DBConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // minutes
	SQLitePath      string
}

type MongoConfig struct {
	URI      string
	Database string
}

type Config struct {
	AppHost           string
	AppPort           string
	FrontendURL       string
	StorageDriver     string
	Location          *time.Location
	AdminJWTSecret    string
	RequestLogEnabled bool

	DB    DBConfig
	Mongo MongoConfig
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file loaded: " + err.Error())
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	tz := getEnv("APP_TIMEZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
	}

	cfg := &Config{
		AppHost:           getEnv("APP_HOST", "0.0.0.0"),
		AppPort:           getEnv("APP_PORT", "5000"),
		FrontendURL:       getEnv("FRONTEND_URL", "*"),
		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", DriverPostgres)),
		Location:          loc,
		AdminJWTSecret:    os.Getenv("ADMIN_JWT_SECRET"),
		RequestLogEnabled: getEnvBool("REQUEST_LOG_ENABLED", true),
		DB: DBConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			Name:            getEnv("DB_DATABASE", "museum"),
			User:            getEnv("DB_USERNAME", "museum"),
			Password:        getEnv("DB_PASSWORD", "museum"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
			SQLitePath:      getEnv("SQLITE_PATH", "museum.db"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "museum"),
		},
	}

	switch cfg.StorageDriver {
	case DriverPostgres, DriverSQLite, DriverMongo:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: want postgres, sqlite or mongo", cfg.StorageDriver)
	}

	if cfg.StorageDriver == DriverPostgres && (cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "") {
		return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
	}

	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

// PostgresDSN returns the database connection string
func (c *Config) PostgresDSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode)
	if c.Location != time.Local {
		dsn += " TimeZone=" + c.Location.String()
	}
	return dsn
}

// Now returns the current time in the configured time zone.
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
		logger.Warning(fmt.Sprintf("Environment variable %s is not a number, using default value", key))
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
		logger.Warning(fmt.Sprintf("Environment variable %s is not a boolean, using default value", key))
	}
	return def
}
