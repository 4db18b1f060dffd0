package storage

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/viper"
)

type Client struct {
	dynamodb *dynamodb.Client
	cfg      config
}

type config struct {
	MatchRecordsTableName *string
	MatchResultsTableName *string
	ConnectionsTableName  *string
}

func NewClient(dynamoClient *dynamodb.Client) *Client {
	return &Client{
		dynamodb: dynamoClient,
		cfg:      loadConfig(),
	}
}

func loadConfig() config {
	viper.AutomaticEnv()
	viper.SetDefault("MATCH_RECORDS_TABLE_NAME", "MatchRecords")
	viper.SetDefault("MATCH_RESULTS_TABLE_NAME", "MatchResults")
	viper.SetDefault("CONNECTIONS_TABLE_NAME", "Connections")

	return config{
		MatchRecordsTableName: aws.String(viper.GetString("MATCH_RECORDS_TABLE_NAME")),
		MatchResultsTableName: aws.String(viper.GetString("MATCH_RESULTS_TABLE_NAME")),
		ConnectionsTableName:  aws.String(viper.GetString("CONNECTIONS_TABLE_NAME")),
	}
}
