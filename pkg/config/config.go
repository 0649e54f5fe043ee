package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const DefaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	APIAddress    string `env:"API_ADDRESS" env-default:":8080"`
	StoreBackend  string `env:"STORE_BACKEND" env-default:"postgres" env-description:"postgres, redis, sqlite or memory"`
	MigrationsDir string `env:"MIGRATIONS_DIR" env-default:"./migrations"`
	SQLitePath    string `env:"SQLITE_PATH" env-default:"./moodboard.db"`
	Postgres      PostgresConfig
	Redis         RedisConfig
}

type PostgresConfig struct {
	Address  string `env:"POSTGRES_DB_ADDRESS" env-default:"localhost:5432"`
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB" env-default:"moodboard"`
	SSLMode  string `env:"POSTGRES_SSLMODE" env-default:"disable"`
}

type RedisConfig struct {
	Address  string `env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

// New loads the process wide config from DefaultEnvFile and the environment once.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(DefaultEnvFile)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envFile into the environment when it exists, then decodes the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("loading envs error: " + err.Error())
	}
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.New("reading envs error: " + err.Error())
	}
	return &cfg, nil
}
