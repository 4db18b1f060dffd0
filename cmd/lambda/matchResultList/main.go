package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/handshake-games/roshambo/internal/aws/auth"
	"github.com/handshake-games/roshambo/internal/aws/storage"
	"github.com/handshake-games/roshambo/internal/domains/dtos"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)
	startKey, limit, err := extractScanParameters(userId, event.QueryStringParameters)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest},
			fmt.Errorf("failed to extract parameters: %w", err)
	}

	matchResults, lastEvaluatedKey, err := storageClient.FetchMatchResults(ctx, userId, startKey, limit)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError},
			fmt.Errorf("failed to fetch match results: %w", err)
	}

	matchResultListResp := dtos.MatchResultListResponseFromEntities(matchResults)
	if lastEvaluatedKey != nil {
		matchResultListResp.NextPageToken = dtos.NextMatchResultPageToken{
			Timestamp: lastEvaluatedKey["Timestamp"].(*types.AttributeValueMemberS).Value,
		}
	}

	matchResultListJson, err := json.Marshal(matchResultListResp)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError},
			fmt.Errorf("failed to marshal response: %w", err)
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(matchResultListJson)}, nil
}

func extractScanParameters(userId string, params map[string]string) (map[string]types.AttributeValue, int32, error) {
	var limit int32
	if limitStr, ok := params["limit"]; ok {
		limitInt64, err := strconv.ParseInt(limitStr, 10, 32)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid limit: %v", err)
		}
		limit = int32(limitInt64)
	} else {
		limit = 10
	}

	// Check for startKey (optional)
	var startKey map[string]types.AttributeValue
	if startKeyStr, ok := params["startKey"]; ok {
		startKey = map[string]types.AttributeValue{
			"UserId":    &types.AttributeValueMemberS{Value: userId},
			"Timestamp": &types.AttributeValueMemberS{Value: startKeyStr},
		}
	}

	return startKey, limit, nil
}

func main() {
	lambda.Start(handler)
}
