package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/blokus-backend/internal/config"
	"github.com/rocketscienceinc/blokus-backend/internal/console"
	"github.com/rocketscienceinc/blokus-backend/internal/render"
	"github.com/rocketscienceinc/blokus-backend/internal/repository"
	"github.com/rocketscienceinc/blokus-backend/internal/repository/storage"
	"github.com/rocketscienceinc/blokus-backend/internal/service"
	"github.com/rocketscienceinc/blokus-backend/internal/usecase"
	"github.com/rocketscienceinc/blokus-backend/transport/rest"
	"github.com/rocketscienceinc/blokus-backend/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameUseCase, cleanup, err := initUseCase(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer cleanup()

	if conf.Mode == config.ModeConsole {
		return runConsole(ctx, logger, conf, gameUseCase)
	}

	return runServers(ctx, logger, conf, gameUseCase)
}

// initUseCase - Redis and MongoDB are used when configured, in-memory storage otherwise.
func initUseCase(ctx context.Context, logger *slog.Logger, conf *config.Config) (usecase.GameUseCase, func(), error) {
	log := logger.With("method", "initUseCase")

	pieces, err := conf.Game.ParsePieces()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid pieces: %w", err)
	}

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	gameRepo := repository.NewMemoryGameRepository()
	if conf.Redis.Enabled() {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closers = append(closers, func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		})

		gameRepo = repository.NewGameRepository(redisStorage, conf.Redis.TTL)
		log.Info("games are stored in redis", "addr", conf.Redis.GetRedisAddr())
	}

	resultRepo := repository.NewMemoryResultRepository()
	if conf.Mongo.Enabled() {
		mongoClient, err := storage.NewMongo(ctx, conf.Mongo.URI)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("could not connect to mongo storage: %w", err)
		}

		closers = append(closers, func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Error("could not close mongo storage", "error", err)
			}
		})

		resultRepo = repository.NewResultRepository(mongoClient, conf.Mongo.Database)
		log.Info("results are archived in mongo", "database", conf.Mongo.Database)
	}

	gameService := service.NewGameService(gameRepo, service.GameSettings{
		Rows:    conf.Game.Rows,
		Cols:    conf.Game.Cols,
		Players: conf.Game.Players,
		Pieces:  pieces,
	})
	botService := service.NewBotService(nil)
	gamePlayService := service.NewGamePlayService(logger, gameService, botService)

	return usecase.NewGameUseCase(logger, gameService, gamePlayService, resultRepo), cleanup, nil
}

// runConsole - plays one game on stdin/stdout; a signal ends it even while waiting for input.
func runConsole(ctx context.Context, logger *slog.Logger, conf *config.Config, gameUseCase usecase.GameUseCase) error {
	controller := console.NewController(logger, gameUseCase, render.New(conf.Color), os.Stdin, os.Stdout)

	errCh := make(chan error, 1)
	go func() {
		_, err := controller.Run(ctx, conf.Game.Type, conf.Game.Players)
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("console game failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return nil
	}
}

func runServers(ctx context.Context, logger *slog.Logger, conf *config.Config, gameUseCase usecase.GameUseCase) error {
	log := logger.With("component", "app")

	if conf.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "pprof", conf.Pprof)
		router := rest.NewRouter(logger, gameUseCase, conf.Pprof)
		if httpErr := rest.Start(ctx, conf.HTTPPort, router); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
