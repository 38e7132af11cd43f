package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

var ErrInvalidSessionTTL = errors.New("session ttl and sweep interval must be positive")

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Game       Game   `yaml:"game"`
	Redis      Redis  `yaml:"redis"`
}

// Game holds the session-start constants of every new game and how long an
// untouched session is kept in memory.
type Game struct {
	BoardSize     int           `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"15"`
	CellSize      float64       `yaml:"cell-size" env:"GAME_CELL_SIZE" env-default:"40"`
	SessionTTL    time.Duration `yaml:"session-ttl" env:"GAME_SESSION_TTL" env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"GAME_SWEEP_INTERVAL" env-default:"1m"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads config.yml, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if !gomoku.ValidBoardSize(that.Game.BoardSize) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, that.Game.BoardSize)
	}

	if !gomoku.ValidCellSize(that.Game.CellSize) {
		return fmt.Errorf("%w: %v", apperror.ErrInvalidCellSize, that.Game.CellSize)
	}

	if that.Game.SessionTTL <= 0 || that.Game.SweepInterval <= 0 {
		return fmt.Errorf("%w: ttl %s, interval %s", ErrInvalidSessionTTL, that.Game.SessionTTL, that.Game.SweepInterval)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
