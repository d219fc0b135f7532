package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"

	"github.com/rocketscienceinc/blokus-backend/internal/blokus"
	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

const (
	writeWait       = 10 * time.Second
	maxMessageSize  = 4096
	shutdownTimeout = 5 * time.Second
)

type gameUseCase interface {
	NewGame(ctx context.Context, gameType string, players int) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (*entity.Game, error)
	Check(ctx context.Context, gameID string, player entity.Player, pieceIndex int, position entity.Position) (blokus.Verdict, error)
	LegalMoves(ctx context.Context, gameID string, player entity.Player) ([]entity.Move, error)
}

type handlerFunc func(ctx context.Context, conn *client, msg *Message) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase

	upgrader ws.Upgrader
	handlers map[string]handlerFunc

	subscribersMutex sync.Mutex
	subscribers      map[string]map[*client]struct{}
}

// client - gorilla connections allow one concurrent writer.
type client struct {
	conn       *ws.Conn
	writeMutex sync.Mutex
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,

		upgrader: ws.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		handlers:    make(map[string]handlerFunc),
		subscribers: make(map[string]map[*client]struct{}),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionGameState] = server.handleGameState
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameCheck] = server.handleGameCheck
	server.handlers[actionGameMoves] = server.handleGameMoves

	return server
}

// Start - serves /ws until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
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

// ServeHTTP - upgrades the connection and processes messages until the client leaves.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{conn: conn}
	ctx := req.Context()

	defer func() {
		that.unsubscribe(c)
		_ = conn.Close()
	}()

	// hijacked connections are not closed on shutdown, so close it ourselves
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)

	if err = that.handleMessages(ctx, c); err != nil {
		log.Debug("connection closed", "error", err)
	}
}

func (that *Server) handleMessages(ctx context.Context, c *client) error {
	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		if messageType != ws.TextMessage {
			continue
		}

		msg, err := decodeMessage(data)
		if err != nil {
			if err = that.sendError(c, "invalid message format"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[msg.Action]
		if !ok {
			if err = that.sendError(c, "unknown action: "+msg.Action); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, c, msg); err != nil {
			return fmt.Errorf("failed to handle %s: %w", msg.Action, err)
		}
	}
}

func (that *Server) send(c *client, action string, payload ResponsePayload) error {
	data, err := encodeMessage(action, payload)
	if err != nil {
		return err
	}

	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()

	if err = c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = c.conn.WriteMessage(ws.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(c *client, message string) error {
	return that.send(c, actionError, ResponsePayload{Message: message})
}

func (that *Server) subscribe(c *client, gameID string) {
	that.subscribersMutex.Lock()
	defer that.subscribersMutex.Unlock()

	clients, ok := that.subscribers[gameID]
	if !ok {
		clients = make(map[*client]struct{})
		that.subscribers[gameID] = clients
	}
	clients[c] = struct{}{}
}

func (that *Server) unsubscribe(c *client) {
	that.subscribersMutex.Lock()
	defer that.subscribersMutex.Unlock()

	for gameID, clients := range that.subscribers {
		delete(clients, c)
		if len(clients) == 0 {
			delete(that.subscribers, gameID)
		}
	}
}

// broadcast - pushes the new state to every other client watching the game.
func (that *Server) broadcast(sender *client, game *entity.Game) {
	that.subscribersMutex.Lock()
	receivers := make([]*client, 0, len(that.subscribers[game.ID]))
	for c := range that.subscribers[game.ID] {
		if c != sender {
			receivers = append(receivers, c)
		}
	}
	that.subscribersMutex.Unlock()

	for _, c := range receivers {
		if err := that.send(c, actionGameState, ResponsePayload{Game: game}); err != nil {
			that.logger.Warn("failed to notify subscriber", "gameID", game.ID, "error", err)
		}
	}
}
