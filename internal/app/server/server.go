package server

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/gorilla/websocket"
	"github.com/handshake-games/roshambo/internal/aws/storage"
	"github.com/handshake-games/roshambo/internal/registry"
	"github.com/handshake-games/roshambo/pkg/logging"
	"go.uber.org/zap"
)

type server struct {
	address  string
	upgrader websocket.Upgrader

	config   Config
	registry *registry.Registry
	conns    sync.Map

	cognitoPublicKeys map[string]*rsa.PublicKey
	storageClient     *storage.Client
	lambdaClient      *lambda.Client
}

type payload struct {
	Type string            `json:"type"`
	Data map[string]string `json:"data"`
}

func NewServer() *server {
	cfg := NewConfig()
	awsCfg, _ := config.LoadDefaultConfig(context.TODO())
	srv := &server{
		address: "0.0.0.0:" + cfg.Port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
		config:            cfg,
		registry:          registry.New(),
		cognitoPublicKeys: make(map[string]*rsa.PublicKey),
		storageClient: storage.NewClient(
			dynamodb.NewFromConfig(awsCfg),
		),
		lambdaClient: lambda.NewFromConfig(awsCfg),
	}
	srv.loadCognitoPublicKeys()
	return srv
}

// Start method    starts the game server
func (s *server) Start() error {
	http.HandleFunc("/play", func(w http.ResponseWriter, r *http.Request) {
		userId, err := s.auth(r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(err.Error()))
			return
		}

		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Error(
				"failed to upgrade connection",
				zap.String("error", err.Error()),
			)
			return
		}
		defer conn.Close()

		s.conns.Store(userId, conn)
		defer s.conns.Delete(userId)
		logging.Info("player connected", zap.String("user_id", userId))

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				logging.Info(
					"connection closed",
					zap.String("remote_address", conn.RemoteAddr().String()),
					zap.Error(err),
				)
				break
			}

			payload := payload{}
			if err := json.Unmarshal(message, &payload); err != nil {
				conn.WriteJSON(errorResponse{
					Type:  "error",
					Error: ErrStatusInvalidPayload,
				})
				continue
			}
			s.handleMessage(userId, conn, payload)
		}
	})
	logging.Info("websocket server started", zap.String("port", s.config.Port))
	return http.ListenAndServe(s.address, nil)
}

// notify pushes a message to a user if it is connected, reporting
// whether delivery happened. Unconnected users pick the result up later
// via the result operation.
func (s *server) notify(userId string, message any) bool {
	value, exists := s.conns.Load(userId)
	if !exists {
		return false
	}
	conn, ok := value.(*websocket.Conn)
	if !ok {
		return false
	}
	if err := conn.WriteJSON(message); err != nil {
		logging.Error("couldn't notify player", zap.String("user_id", userId))
		return false
	}
	return true
}
