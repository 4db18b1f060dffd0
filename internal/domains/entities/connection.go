package entities

import "time"

// Connection maps a user to its API Gateway websocket connection so
// Lambda handlers can push match outcomes.
type Connection struct {
	UserId       string    `dynamodbav:"UserId"`
	ConnectionId string    `dynamodbav:"ConnectionId"`
	ConnectedAt  time.Time `dynamodbav:"ConnectedAt"`
}
