package entities

import (
	"time"

	"github.com/handshake-games/roshambo/internal/game"
)

// MatchRecord is the persisted snapshot of one commit-reveal match,
// keyed by the ordered participant pair.
type MatchRecord struct {
	InitiatorId string `dynamodbav:"InitiatorId"`
	ResponderId string `dynamodbav:"ResponderId"`
	MatchId     string `dynamodbav:"MatchId"`

	Initiator PlayerRecord `dynamodbav:"Initiator"`
	Responder PlayerRecord `dynamodbav:"Responder"`

	Phase     uint8     `dynamodbav:"Phase"`
	WinnerId  string    `dynamodbav:"WinnerId"`
	Comment   string    `dynamodbav:"Comment"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt"`
}

type PlayerRecord struct {
	Phase      uint8  `dynamodbav:"Phase"`
	Commitment string `dynamodbav:"Commitment"`
	Choice     uint8  `dynamodbav:"Choice"`
	Secret     string `dynamodbav:"Secret"`
}

// MatchResult is one per-user row of match history, newest first by
// Timestamp.
type MatchResult struct {
	UserId     string    `dynamodbav:"UserId"`
	Timestamp  time.Time `dynamodbav:"Timestamp"`
	MatchId    string    `dynamodbav:"MatchId"`
	OpponentId string    `dynamodbav:"OpponentId"`
	WinnerId   string    `dynamodbav:"WinnerId"`
	Phase      string    `dynamodbav:"Phase"`
	Comment    string    `dynamodbav:"Comment"`
}

func MatchRecordFromSnapshot(snapshot game.Snapshot) MatchRecord {
	return MatchRecord{
		InitiatorId: snapshot.InitiatorId,
		ResponderId: snapshot.ResponderId,
		MatchId:     snapshot.Id,
		Initiator:   playerRecordFromSnapshot(snapshot.Initiator),
		Responder:   playerRecordFromSnapshot(snapshot.Responder),
		Phase:       uint8(snapshot.Phase),
		WinnerId:    snapshot.WinnerId,
		Comment:     snapshot.Comment,
		UpdatedAt:   time.Now(),
	}
}

func playerRecordFromSnapshot(player game.PlayerSnapshot) PlayerRecord {
	return PlayerRecord{
		Phase:      uint8(player.Phase),
		Commitment: player.Commitment,
		Choice:     uint8(player.Choice),
		Secret:     player.Secret,
	}
}

func (record MatchRecord) ToSnapshot() game.Snapshot {
	return game.Snapshot{
		Id:          record.MatchId,
		InitiatorId: record.InitiatorId,
		ResponderId: record.ResponderId,
		Initiator:   playerSnapshotFromRecord(record.Initiator),
		Responder:   playerSnapshotFromRecord(record.Responder),
		Phase:       game.MatchPhase(record.Phase),
		WinnerId:    record.WinnerId,
		Comment:     record.Comment,
	}
}

func playerSnapshotFromRecord(player PlayerRecord) game.PlayerSnapshot {
	return game.PlayerSnapshot{
		Phase:      game.PlayerPhase(player.Phase),
		Commitment: player.Commitment,
		Choice:     game.Choice(player.Choice),
		Secret:     player.Secret,
	}
}
