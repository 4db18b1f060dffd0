package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/handshake-games/roshambo/internal/domains/entities"
)

var ErrMatchRecordNotFound = fmt.Errorf("match record not found")

func (client *Client) GetMatchRecord(
	ctx context.Context,
	initiatorId string,
	responderId string,
) (
	entities.MatchRecord,
	error,
) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.MatchRecordsTableName,
		Key: map[string]types.AttributeValue{
			"InitiatorId": &types.AttributeValueMemberS{
				Value: initiatorId,
			},
			"ResponderId": &types.AttributeValueMemberS{
				Value: responderId,
			},
		},
	})
	if err != nil {
		return entities.MatchRecord{}, err
	}
	if output.Item == nil {
		return entities.MatchRecord{}, ErrMatchRecordNotFound
	}
	var matchRecord entities.MatchRecord
	if err := attributevalue.UnmarshalMap(output.Item, &matchRecord); err != nil {
		return entities.MatchRecord{}, err
	}
	return matchRecord, nil
}

func (client *Client) PutMatchRecord(ctx context.Context, matchRecord entities.MatchRecord) error {
	av, err := attributevalue.MarshalMap(matchRecord)
	if err != nil {
		return fmt.Errorf("failed to marshal match record: %w", err)
	}

	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.MatchRecordsTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put match record: %w", err)
	}
	return nil
}

// PutMatchRecordIfUnchanged stores the record only if the stored item
// still carries the phases of the record the operation was applied to.
// This is the at-most-once guard for resolution across stateless
// handlers: of two racing reveals, only one condition check passes.
func (client *Client) PutMatchRecordIfUnchanged(
	ctx context.Context,
	matchRecord entities.MatchRecord,
	previous entities.MatchRecord,
) error {
	av, err := attributevalue.MarshalMap(matchRecord)
	if err != nil {
		return fmt.Errorf("failed to marshal match record: %w", err)
	}

	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.MatchRecordsTableName,
		Item:      av,
		ConditionExpression: aws.String(
			"Phase = :phase AND Initiator.Phase = :initiatorPhase AND Responder.Phase = :responderPhase",
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phase": &types.AttributeValueMemberN{
				Value: strconv.Itoa(int(previous.Phase)),
			},
			":initiatorPhase": &types.AttributeValueMemberN{
				Value: strconv.Itoa(int(previous.Initiator.Phase)),
			},
			":responderPhase": &types.AttributeValueMemberN{
				Value: strconv.Itoa(int(previous.Responder.Phase)),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put match record: %w", err)
	}
	return nil
}

func (client *Client) DeleteMatchRecord(ctx context.Context, initiatorId, responderId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.MatchRecordsTableName,
		Key: map[string]types.AttributeValue{
			"InitiatorId": &types.AttributeValueMemberS{Value: initiatorId},
			"ResponderId": &types.AttributeValueMemberS{Value: responderId},
		},
	})
	if err != nil {
		return err
	}
	return nil
}
