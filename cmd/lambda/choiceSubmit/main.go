package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/handshake-games/roshambo/internal/aws/auth"
	"github.com/handshake-games/roshambo/internal/aws/storage"
	"github.com/handshake-games/roshambo/internal/domains/dtos"
	"github.com/handshake-games/roshambo/internal/domains/entities"
	"github.com/handshake-games/roshambo/internal/game"
)

var (
	storageClient    *storage.Client
	apiGatewayClient *apigatewaymanagementapi.Client
)

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
	apiEndpoint := fmt.Sprintf(
		"https://%s.execute-api.%s.amazonaws.com/Prod",
		os.Getenv("AWS_API_ID"),
		os.Getenv("AWS_REGION"),
	)
	apiGatewayClient = apigatewaymanagementapi.New(apigatewaymanagementapi.Options{
		BaseEndpoint: aws.String(apiEndpoint),
		Region:       os.Getenv("AWS_REGION"),
		Credentials:  cfg.Credentials,
	})
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)

	var req dtos.ChoiceSubmitRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	choice, err := game.ChoiceFromInt(req.Choice)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	var initiatorId, responderId string
	switch req.Role {
	case "initiator":
		initiatorId, responderId = userId, req.OpponentId
	case "responder":
		initiatorId, responderId = req.OpponentId, userId
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

	if req.Role == "initiator" {
		err = match.RevealInitiator(choice, req.Secret)
	} else {
		err = match.RevealResponder(choice, req.Secret)
	}
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict}, nil
	}

	// The conditional put keeps resolution at-most-once across racing
	// reveal submissions: the loser of the race gets a conflict and
	// must resubmit against the fresh record.
	err = storageClient.PutMatchRecordIfUnchanged(
		ctx,
		entities.MatchRecordFromSnapshot(match.Snapshot()),
		matchRecord,
	)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict},
			fmt.Errorf("failed to put match record: %w", err)
	}

	if result, err := match.Result(); err == nil {
		archiveResult(ctx, match, result)
		notifyOpponent(ctx, req.OpponentId, match, result)
	}

	body, _ := json.Marshal(map[string]bool{"Success": true})
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(body)}, nil
}

func archiveResult(ctx context.Context, match *game.Match, result game.Result) {
	now := time.Now()
	for _, pair := range [][2]string{
		{match.InitiatorId(), match.ResponderId()},
		{match.ResponderId(), match.InitiatorId()},
	} {
		storageClient.PutMatchResult(ctx, entities.MatchResult{
			UserId:     pair[0],
			Timestamp:  now,
			MatchId:    match.Id(),
			OpponentId: pair[1],
			WinnerId:   result.WinnerId,
			Phase:      result.Phase.String(),
			Comment:    result.Comment,
		})
	}
}

// notifyOpponent pushes the outcome to the counterparty's websocket
// connection, if one is registered. Best effort; the result endpoint
// remains the source of truth.
func notifyOpponent(ctx context.Context, opponentId string, match *game.Match, result game.Result) {
	connection, err := storageClient.GetConnection(ctx, opponentId)
	if err != nil {
		return
	}
	message, err := json.Marshal(dtos.MatchResultResponseFromResult(match.Id(), result))
	if err != nil {
		return
	}
	apiGatewayClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
		ConnectionId: aws.String(connection.ConnectionId),
		Data:         message,
	})
}

func main() {
	lambda.Start(handler)
}
