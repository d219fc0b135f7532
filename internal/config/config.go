package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/blokus-backend/internal/apperror"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

const (
	ModeConsole = "console"
	ModeServer  = "server"
)

var ErrUnknownMode = errors.New("unknown mode")

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode       string `yaml:"mode" env:"MODE" env-default:"console"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Pprof      bool   `yaml:"pprof" env:"PPROF" env-default:"false"`
	Color      bool   `yaml:"color" env:"COLOR" env-default:"true"`
	Game       Game   `yaml:"game"`
	Redis      Redis  `yaml:"redis"`
	Mongo      Mongo  `yaml:"mongo"`
}

type Game struct {
	Rows    int      `yaml:"rows" env:"GAME_ROWS" env-default:"14"`
	Cols    int      `yaml:"cols" env:"GAME_COLS" env-default:"14"`
	Players int      `yaml:"players" env:"GAME_PLAYERS" env-default:"2"`
	Type    string   `yaml:"type" env:"GAME_TYPE" env-default:"local"`
	Pieces  []string `yaml:"pieces" env:"GAME_PIECES" env-default:"##/#.,###"`
}

type Redis struct {
	Host string        `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

type Mongo struct {
	URI      string `yaml:"uri" env:"MONGO_URI" env-default:""`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"blokus"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	if that.Mode != ModeConsole && that.Mode != ModeServer {
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	if that.Game.Rows <= 0 || that.Game.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", entity.ErrInvalidBoardSize, that.Game.Rows, that.Game.Cols)
	}

	if err := entity.ValidatePlayerCount(that.Game.Players); err != nil {
		return err
	}

	if !entity.IsKnownType(that.Game.Type) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidGameType, that.Game.Type)
	}

	if _, err := that.Game.ParsePieces(); err != nil {
		return err
	}

	return nil
}

// ParsePieces - the configured piece set; known shapes keep their usual names.
func (that *Game) ParsePieces() ([]entity.Piece, error) {
	if len(that.Pieces) == 0 {
		return nil, fmt.Errorf("%w: no pieces configured", entity.ErrInvalidPiece)
	}

	samples := entity.Inventory(entity.SamplePieces())
	pieces := make([]entity.Piece, 0, len(that.Pieces))

	for i, notation := range that.Pieces {
		piece, err := entity.ParsePiece(fmt.Sprintf("P%d", i), notation)
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w", i, err)
		}

		if idx := samples.Index(piece); idx >= 0 {
			piece.Name = samples[idx].Name
		}

		pieces = append(pieces, piece)
	}

	return pieces, nil
}

func (that *Redis) Enabled() bool {
	return that.Host != ""
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Mongo) Enabled() bool {
	return that.URI != ""
}
