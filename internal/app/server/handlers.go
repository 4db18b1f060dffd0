package server

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/gorilla/websocket"
	"github.com/handshake-games/roshambo/internal/domains/dtos"
	"github.com/handshake-games/roshambo/internal/domains/entities"
	"github.com/handshake-games/roshambo/internal/game"
	"github.com/handshake-games/roshambo/internal/registry"
	"github.com/handshake-games/roshambo/pkg/logging"
	"go.uber.org/zap"
)

type errorResponse struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type ackResponse struct {
	Type   string `json:"type"`
	Action string `json:"action"`
}

type resultResponse struct {
	Type   string                   `json:"type"`
	Result dtos.MatchResultResponse `json:"result"`
}

// Handler for when a user sends a message
func (s *server) handleMessage(userId string, conn *websocket.Conn, payload payload) {
	var err error
	switch payload.Type {
	case "initiate":
		err = s.handleInitiate(userId, payload.Data)
	case "respond":
		err = s.handleRespond(userId, payload.Data)
	case "choice":
		err = s.handleChoice(userId, payload.Data)
	case "result":
		err = s.handleResult(userId, conn, payload.Data)
		if err != nil {
			conn.WriteJSON(errorResponse{Type: "error", Error: statusForError(err)})
		}
		return
	default:
		logging.Info("invalid payload type", zap.String("type", payload.Type))
		conn.WriteJSON(errorResponse{Type: "error", Error: ErrStatusInvalidPayload})
		return
	}
	if err != nil {
		conn.WriteJSON(errorResponse{Type: "error", Error: statusForError(err)})
		return
	}
	conn.WriteJSON(ackResponse{Type: "ack", Action: payload.Type})
	logging.Info("game data",
		zap.String("user_id", userId),
		zap.String("action", payload.Type),
	)
}

func (s *server) handleInitiate(userId string, data map[string]string) error {
	_, err := s.registry.InitiateGame(userId, data["opponentId"], data["commitment"])
	return err
}

func (s *server) handleRespond(userId string, data map[string]string) error {
	_, err := s.registry.Respond(data["opponentId"], userId, data["commitment"])
	return err
}

func (s *server) handleChoice(userId string, data map[string]string) error {
	choice, err := strconv.Atoi(data["choice"])
	if err != nil {
		return game.ErrInvalidChoiceRange
	}

	var match *game.Match
	switch data["role"] {
	case "initiator":
		match, err = s.registry.AddInitiatorChoice(userId, data["opponentId"], choice, data["secret"])
	case "responder":
		match, err = s.registry.AddResponderChoice(data["opponentId"], userId, choice, data["secret"])
	default:
		return ErrUnknownAction
	}
	if err != nil {
		return err
	}

	// The reveal that completes the pair resolves the match.
	if result, err := match.Result(); err == nil {
		s.handleMatchComplete(match, result)
	}
	return nil
}

func (s *server) handleResult(userId string, conn *websocket.Conn, data map[string]string) error {
	var result game.Result
	var err error
	var match *game.Match
	switch data["role"] {
	case "initiator":
		result, err = s.registry.GetInitiatorResult(userId, data["opponentId"])
		if err == nil {
			match, err = s.registry.Load(userId, data["opponentId"])
		}
	case "responder":
		result, err = s.registry.GetResponderResult(data["opponentId"], userId)
		if err == nil {
			match, err = s.registry.Load(data["opponentId"], userId)
		}
	default:
		return ErrUnknownAction
	}
	if err != nil {
		return err
	}
	return conn.WriteJSON(resultResponse{
		Type:   "match_result",
		Result: dtos.MatchResultResponseFromResult(match.Id(), result),
	})
}

// Handler for when a match reaches its terminal state: notify both
// players, archive the result, and dispose of the registry entry.
func (s *server) handleMatchComplete(match *game.Match, result game.Result) {
	response := resultResponse{
		Type:   "match_result",
		Result: dtos.MatchResultResponseFromResult(match.Id(), result),
	}
	initiatorNotified := s.notify(match.InitiatorId(), response)
	responderNotified := s.notify(match.ResponderId(), response)

	ctx := context.Background()
	now := time.Now()
	for _, pair := range [][2]string{
		{match.InitiatorId(), match.ResponderId()},
		{match.ResponderId(), match.InitiatorId()},
	} {
		err := s.storageClient.PutMatchResult(ctx, entities.MatchResult{
			UserId:     pair[0],
			Timestamp:  now,
			MatchId:    match.Id(),
			OpponentId: pair[1],
			WinnerId:   result.WinnerId,
			Phase:      result.Phase.String(),
			Comment:    result.Comment,
		})
		if err != nil {
			logging.Error("failed to archive match result",
				zap.String("match_id", match.Id()),
				zap.Error(err),
			)
		}
	}

	s.invokeResultArchive(ctx, match, result)
	// Dispose of the registry entry only once both sides saw the
	// outcome; a match whose result was not delivered stays queryable.
	if initiatorNotified && responderNotified {
		s.registry.Remove(match.InitiatorId(), match.ResponderId())
	}
	logging.Info("match completed",
		zap.String("match_id", match.Id()),
		zap.String("phase", result.Phase.String()),
		zap.String("winner_id", result.WinnerId),
	)
}

// invokeResultArchive fires the downstream archival function, if one is
// configured.
func (s *server) invokeResultArchive(ctx context.Context, match *game.Match, result game.Result) {
	if s.config.ResultArchiveFunctionArn == "" {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"matchId":     match.Id(),
		"initiatorId": match.InitiatorId(),
		"responderId": match.ResponderId(),
		"winnerId":    result.WinnerId,
		"phase":       result.Phase.String(),
		"comment":     result.Comment,
	})
	if err != nil {
		logging.Error("failed to marshal archive payload", zap.Error(err))
		return
	}
	_, err = s.lambdaClient.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(s.config.ResultArchiveFunctionArn),
		Payload:        payload,
		InvocationType: types.InvocationTypeEvent,
	})
	if err != nil {
		logging.Error("failed to invoke result archive", zap.Error(err))
	}
}

func statusForError(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidParticipants):
		return ErrStatusInvalidParticipants
	case errors.Is(err, game.ErrInvalidChoiceRange):
		return ErrStatusInvalidChoice
	case errors.Is(err, game.ErrAlreadyResponded),
		errors.Is(err, game.ErrInvalidRevealState),
		errors.Is(err, registry.ErrMatchAlreadyExists):
		return ErrStatusInvalidState
	case errors.Is(err, registry.ErrMatchNotFound):
		return ErrStatusMatchNotFound
	case errors.Is(err, game.ErrNotCompleted):
		return ErrStatusNotCompleted
	}
	return ErrStatusInvalidPayload
}
