package config

import (
	"errors"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

type Config struct {
	Env  string `env:"ENV" env-default:"dev"`
	Port string `env:"PORT" env-default:"8080"`

	Log    LogConfig
	Agenda AgendaConfig

	// SeedFile: TOML con owners/mascotas/tareas iniciales (opcional).
	SeedFile string `env:"SEED_FILE"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
	App    string `env:"APP_NAME" env-default:"pawpal-planner"`
}

type AgendaConfig struct {
	// Cron con segundos: "0 0 7 * * *" = todos los días 07:00:00.
	// Vacío => job desactivado.
	Schedule string `env:"AGENDA_SCHEDULE" env-default:"0 0 7 * * *"`
	OnStart  bool   `env:"AGENDA_ON_START" env-default:"false"`
}

type Reader interface {
	Read() (*Config, error)
}

// EnvReader lee .env (si existe) y después variables de entorno.
// Las variables ya definidas en el entorno ganan sobre .env.
type EnvReader struct {
	DotEnvPaths []string
}

func NewEnvReader(dotEnvPaths ...string) EnvReader {
	if len(dotEnvPaths) == 0 {
		dotEnvPaths = []string{".env"}
	}
	return EnvReader{DotEnvPaths: dotEnvPaths}
}

func (r EnvReader) Read() (*Config, error) {
	for _, p := range r.DotEnvPaths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
