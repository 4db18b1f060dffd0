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

	var req dtos.RespondRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	matchRecord, err := storageClient.GetMatchRecord(ctx, req.InitiatorId, userId)
	if err != nil {
		if errors.Is(err, storage.ErrMatchRecordNotFound) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
		}
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError},
			fmt.Errorf("failed to get match record: %w", err)
	}

	match, err := game.RestoreMatch(matchRecord.ToSnapshot())
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError},
			fmt.Errorf("failed to restore match: %w", err)
	}
	if err := match.AddResponderCommitment(req.Commitment); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict}, nil
	}

	err = storageClient.PutMatchRecordIfUnchanged(
		ctx,
		entities.MatchRecordFromSnapshot(match.Snapshot()),
		matchRecord,
	)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict},
			fmt.Errorf("failed to put match record: %w", err)
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

func main() {
	lambda.Start(handler)
}
