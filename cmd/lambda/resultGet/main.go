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
	"github.com/handshake-games/roshambo/internal/game"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)

	opponentId := event.QueryStringParameters["opponentId"]
	role := event.QueryStringParameters["role"]

	var initiatorId, responderId string
	switch role {
	case "initiator":
		initiatorId, responderId = userId, opponentId
	case "responder":
		initiatorId, responderId = opponentId, userId
	default:
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	matchRecord, err := storageClient.GetMatchRecord(ctx, initiatorId, responderId)
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
	result, err := match.Result()
	if err != nil {
		// Not an error state; the match simply has not completed.
		return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict}, nil
	}

	body, err := json.Marshal(dtos.MatchResultResponseFromResult(match.Id(), result))
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError},
			fmt.Errorf("failed to marshal response: %w", err)
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
