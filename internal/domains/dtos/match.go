package dtos

import (
	"time"

	"github.com/handshake-games/roshambo/internal/domains/entities"
	"github.com/handshake-games/roshambo/internal/game"
)

type InitiateGameRequest struct {
	ResponderId string `json:"ResponderId"`
	Commitment  string `json:"Commitment"`
}

type RespondRequest struct {
	InitiatorId string `json:"InitiatorId"`
	Commitment  string `json:"Commitment"`
}

// ChoiceSubmitRequest reveals a choice. Role is "initiator" or
// "responder"; OpponentId names the other party. Choice is 1/2/3.
type ChoiceSubmitRequest struct {
	OpponentId string `json:"OpponentId"`
	Role       string `json:"Role"`
	Choice     int    `json:"Choice"`
	Secret     string `json:"Secret"`
}

type MatchResultResponse struct {
	MatchId  string `json:"MatchId"`
	WinnerId string `json:"WinnerId,omitempty"`
	Phase    string `json:"Phase"`
	Comment  string `json:"Comment"`
}

func MatchResultResponseFromResult(matchId string, result game.Result) MatchResultResponse {
	return MatchResultResponse{
		MatchId:  matchId,
		WinnerId: result.WinnerId,
		Phase:    result.Phase.String(),
		Comment:  result.Comment,
	}
}

type MatchResultListResponse struct {
	Results       []MatchResultHistoryResponse `json:"Results"`
	NextPageToken NextMatchResultPageToken     `json:"NextPageToken,omitempty"`
}

type MatchResultHistoryResponse struct {
	MatchId    string    `json:"MatchId"`
	OpponentId string    `json:"OpponentId"`
	WinnerId   string    `json:"WinnerId,omitempty"`
	Phase      string    `json:"Phase"`
	Comment    string    `json:"Comment"`
	Timestamp  time.Time `json:"Timestamp"`
}

type NextMatchResultPageToken struct {
	Timestamp string `json:"Timestamp,omitempty"`
}

func MatchResultListResponseFromEntities(matchResults []entities.MatchResult) MatchResultListResponse {
	resp := MatchResultListResponse{
		Results: make([]MatchResultHistoryResponse, 0, len(matchResults)),
	}
	for _, matchResult := range matchResults {
		resp.Results = append(resp.Results, MatchResultHistoryResponse{
			MatchId:    matchResult.MatchId,
			OpponentId: matchResult.OpponentId,
			WinnerId:   matchResult.WinnerId,
			Phase:      matchResult.Phase,
			Comment:    matchResult.Comment,
			Timestamp:  matchResult.Timestamp,
		})
	}
	return resp
}
