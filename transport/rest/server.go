package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - all REST routes; withPprof also mounts /debug/pprof.
func NewRouter(logger *slog.Logger, useCase gameUseCase, withPprof bool) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	if withPprof {
		pprof.Register(router)
	}

	ping := NewPingHandler()
	router.GET("/ping", ping.Ping)

	games := NewGameHandler(logger, useCase)
	router.POST("/games", games.Create)
	router.GET("/games/:id", games.Get)
	router.DELETE("/games/:id", games.Delete)
	router.GET("/games/:id/board", games.Board)
	router.POST("/games/:id/turns", games.MakeTurn)
	router.POST("/games/:id/check", games.Check)
	router.GET("/games/:id/moves", games.LegalMoves)
	router.GET("/results", games.Results)

	return router
}

// Start - serves handler until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	log := logger.With("component", "rest")

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
