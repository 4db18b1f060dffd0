package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/handshake-games/roshambo/internal/aws/auth"
	"github.com/handshake-games/roshambo/internal/aws/storage"
	"github.com/handshake-games/roshambo/internal/domains/dtos"
	"github.com/handshake-games/roshambo/internal/domains/entities"
	"github.com/handshake-games/roshambo/internal/game"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)

	var req dtos.InitiateGameRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	// One live match per ordered pair.
	_, err := storageClient.GetMatchRecord(ctx, userId, req.ResponderId)
	if err == nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict}, nil
	}
	if !errors.Is(err, storage.ErrMatchRecordNotFound) {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError},
			fmt.Errorf("failed to get match record: %w", err)
	}

	match, err := game.NewMatch(uuid.NewString(), userId, req.ResponderId, req.Commitment)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	matchRecord := entities.MatchRecordFromSnapshot(match.Snapshot())
	if err := storageClient.PutMatchRecord(ctx, matchRecord); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError},
			fmt.Errorf("failed to put match record: %w", err)
	}

	body, err := json.Marshal(map[string]string{"MatchId": match.Id()})
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError},
			fmt.Errorf("failed to marshal response: %w", err)
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusCreated, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
