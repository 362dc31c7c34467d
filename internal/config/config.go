package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	envPort                  = "PORT"
	envEnvironment           = "APP_ENV"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envMongoURI              = "MONGO_URI"
	envMongoDatabase         = "MONGO_DATABASE"
	envJWTSecret             = "SECRET_ACCESS_TOKEN"
	envJWTExpiry             = "JWT_EXPIRY"
	envStripeSecretKey       = "PAYMENT_GATEWAY_SK"
	envStripeCurrency        = "PAYMENT_CURRENCY"
	envPageSize              = "PAGINATION_PAGE_SIZE"
	envCORSOrigins           = "CORS_ORIGINS"
	envStrictMutations       = "AUTH_STRICT_MUTATIONS"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	defaultServerPort         = "5000"
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 10 * time.Second
	defaultServerShutdown     = 10 * time.Second
	defaultMongoDatabase      = "inventoryDb"
	defaultJWTExpiry          = time.Hour
	defaultStripeCurrency     = "usd"
	defaultPageSize           = 5
	defaultCORSOrigins        = "http://localhost:5173"
	minJWTSecretLength        = 32
	minUniqueCharsInSecret    = 16
	minRepeatedCharThreshold  = 4
	maxRepeatedChars          = 2
)

const (
	errPortRequired            = "PORT must be set"
	errMongoURIRequired        = "MONGO_URI must be set"
	errJWTSecretRequired       = "SECRET_ACCESS_TOKEN must be set"
	errJWTSecretMinLengthFmt   = "SECRET_ACCESS_TOKEN must be at least %d characters"
	errJWTSecretLowEntropy     = "SECRET_ACCESS_TOKEN has insufficient entropy (appears non-random). Use a cryptographically secure random string."
	errStripeKeyRequired       = "PAYMENT_GATEWAY_SK must be set"
	errInvalidEnvironmentFmt   = "APP_ENV must be %q or %q"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Mongo       MongoConfig
	JWT         JWTConfig
	Stripe      StripeConfig
	App         AppConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type JWTConfig struct {
	Secret         string
	ExpiryDuration time.Duration
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

type AppConfig struct {
	PageSize    int
	CORSOrigins []string
	// StrictMutations puts the session middleware on the product, cart
	// and shop mutation routes that the relaxed policy leaves open.
	StrictMutations bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv(envEnvironment, EnvDevelopment),
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv(envMongoURI),
			Database: getEnv(envMongoDatabase, defaultMongoDatabase),
		},
		JWT: JWTConfig{
			Secret:         os.Getenv(envJWTSecret),
			ExpiryDuration: getDurationEnv(envJWTExpiry, defaultJWTExpiry),
		},
		Stripe: StripeConfig{
			SecretKey: os.Getenv(envStripeSecretKey),
			Currency:  getEnv(envStripeCurrency, defaultStripeCurrency),
		},
		App: AppConfig{
			PageSize:        getIntEnv(envPageSize, defaultPageSize),
			CORSOrigins:     getListEnv(envCORSOrigins, defaultCORSOrigins),
			StrictMutations: getBoolEnv(envStrictMutations, false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf(errPortRequired)
	}

	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		return fmt.Errorf(errInvalidEnvironmentFmt, EnvDevelopment, EnvProduction)
	}

	if c.Mongo.URI == "" {
		return fmt.Errorf(errMongoURIRequired)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf(errJWTSecretRequired)
	}

	if len(c.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf(errJWTSecretMinLengthFmt, minJWTSecretLength)
	}

	if !hasMinimumEntropy(c.JWT.Secret) {
		return fmt.Errorf(errJWTSecretLowEntropy)
	}

	if c.Stripe.SecretKey == "" {
		return fmt.Errorf(errStripeKeyRequired)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func hasMinimumEntropy(secret string) bool {
	if len(secret) < minJWTSecretLength {
		return false
	}

	charCounts := make(map[rune]int)
	for _, char := range secret {
		charCounts[char]++
	}

	if len(charCounts) < minUniqueCharsInSecret {
		return false
	}

	repeatedChars := 0
	for _, count := range charCounts {
		if count > len(secret)/minRepeatedCharThreshold {
			repeatedChars++
		}
	}

	return repeatedChars <= maxRepeatedChars
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getListEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}
