package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT,             default=3000"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	CORSOrigins     []string      `env:"CORS_ORIGIN,      default=*"`
	BodyLimit       string        `env:"BODY_LIMIT,       default=1M"`
	SwaggerEnabled  bool          `env:"SWAGGER_ENABLED,  default=true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Auth      AuthConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Profile   ProfileConfig
}

type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET, required"`
	TokenTTL     time.Duration `env:"JWT_EXPIRES_IN, default=24h"`
	BcryptCost   int           `env:"BCRYPT_COST,    default=10"`
	LoginWorkers int           `env:"LOGIN_WORKERS,  default=4"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=album_api"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

// RedisConfig selects the rate-limit store. An empty Addr keeps counters in
// process memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type RateLimitConfig struct {
	Enabled      bool          `env:"RATE_LIMIT_ENABLED, default=true"`
	APIRequests  int           `env:"RATE_LIMIT_API_REQUESTS,  default=100"`
	APIWindow    time.Duration `env:"RATE_LIMIT_API_WINDOW,    default=15m"`
	AuthRequests int           `env:"RATE_LIMIT_AUTH_REQUESTS, default=10"`
	AuthWindow   time.Duration `env:"RATE_LIMIT_AUTH_WINDOW,   default=1h"`
}

type ProfileConfig struct {
	RandomUserURL     string        `env:"RANDOMUSER_URL,       default=https://randomuser.me/api/"`
	RandommerURL      string        `env:"RANDOMMER_URL,        default=https://randommer.io/api"`
	RandommerAPIKey   string        `env:"RANDOMMER_API_KEY"`
	QuoteURL          string        `env:"QUOTE_URL,            default=https://api.quotable.io"`
	JokeURL           string        `env:"JOKE_URL,             default=https://v2.jokeapi.dev"`
	CountryCode       string        `env:"PROFILE_COUNTRY_CODE, default=FR"`
	Timeout           time.Duration `env:"PROFILE_TIMEOUT,      default=5s"`
	RandomUserTimeout time.Duration `env:"RANDOMUSER_TIMEOUT"`
	RandommerTimeout  time.Duration `env:"RANDOMMER_TIMEOUT"`
	QuoteTimeout      time.Duration `env:"QUOTE_TIMEOUT"`
	JokeTimeout       time.Duration `env:"JOKE_TIMEOUT"`
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads an optional .env file, then the process environment.
func Load(ctx context.Context) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
