package main

import (
	"github.com/handshake-games/roshambo/internal/app/server"
	"github.com/handshake-games/roshambo/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	logging.Fatal("Game server exited: ", zap.Error(
		server.NewServer().Start(),
	))
}
