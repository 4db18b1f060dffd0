package game

import (
	"fmt"
	"sync"
)

// PlayerPhase tracks one side's progress through the commit-reveal
// protocol.
type PlayerPhase uint8

const (
	PhasePending PlayerPhase = iota
	PhaseCommitted
	PhaseRevealed
)

// MatchPhase only advances forward; Win and Draw are terminal.
type MatchPhase uint8

const (
	MatchInitiated MatchPhase = iota
	MatchBothCommitted
	MatchWin
	MatchDraw
)

func (p MatchPhase) String() string {
	switch p {
	case MatchInitiated:
		return "INITIATED"
	case MatchBothCommitted:
		return "BOTH_COMMITTED"
	case MatchWin:
		return "WIN"
	case MatchDraw:
		return "DRAW"
	}
	return "UNKNOWN"
}

type playerState struct {
	phase      PlayerPhase
	commitment string
	choice     Choice
	secret     string
}

// Match is one commit-reveal game between two parties. All mutating
// operations hold the match mutex for their full duration; a failed
// operation leaves the record unchanged.
type Match struct {
	id          string
	initiatorId string
	responderId string

	initiator playerState
	responder playerState

	phase    MatchPhase
	winnerId string
	comment  string

	mu sync.Mutex
}

// Result is the immutable outcome of a completed match. WinnerId is
// empty on draw.
type Result struct {
	WinnerId string
	Phase    MatchPhase
	Comment  string
}

// NewMatch creates a match with the initiator's commitment already in
// place and the initiator committed.
func NewMatch(id, initiatorId, responderId, initiatorCommitment string) (*Match, error) {
	if initiatorId == "" || responderId == "" || initiatorId == responderId {
		return nil, ErrInvalidParticipants
	}
	return &Match{
		id:          id,
		initiatorId: initiatorId,
		responderId: responderId,
		initiator: playerState{
			phase:      PhaseCommitted,
			commitment: initiatorCommitment,
		},
		phase: MatchInitiated,
	}, nil
}

func (m *Match) Id() string {
	return m.id
}

func (m *Match) InitiatorId() string {
	return m.initiatorId
}

func (m *Match) ResponderId() string {
	return m.responderId
}

// AddResponderCommitment installs the responder's commitment and moves
// the match to BOTH_COMMITTED. Valid exactly once, while INITIATED.
func (m *Match) AddResponderCommitment(commitment string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != MatchInitiated {
		return ErrAlreadyResponded
	}
	m.responder.phase = PhaseCommitted
	m.responder.commitment = commitment
	m.phase = MatchBothCommitted
	return nil
}

// RevealInitiator stores the initiator's revealed choice and secret.
// If the responder already revealed, this reveal triggers resolution
// before returning.
func (m *Match) RevealInitiator(choice Choice, secret string) error {
	return m.reveal(&m.initiator, &m.responder, choice, secret)
}

// RevealResponder is the mirror of RevealInitiator; the two are
// order-independent.
func (m *Match) RevealResponder(choice Choice, secret string) error {
	return m.reveal(&m.responder, &m.initiator, choice, secret)
}

func (m *Match) reveal(self, other *playerState, choice Choice, secret string) error {
	if choice != Rock && choice != Paper && choice != Scissors {
		return ErrInvalidChoiceRange
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != MatchBothCommitted || self.phase != PhaseCommitted {
		return ErrInvalidRevealState
	}
	self.choice = choice
	self.secret = secret
	self.phase = PhaseRevealed

	// The second reveal resolves the match. The check runs under the
	// same lock as the store above, so exactly one reveal sees the
	// other side already revealed.
	if other.phase == PhaseRevealed {
		m.resolve()
	}
	return nil
}

// resolve computes the terminal state. Caller holds the mutex; the
// phase guard in reveal guarantees this runs once per match.
func (m *Match) resolve() {
	initiatorOk := VerifyCommitment(m.initiator.commitment, m.initiator.choice, m.initiator.secret)
	responderOk := VerifyCommitment(m.responder.commitment, m.responder.choice, m.responder.secret)

	switch {
	case !initiatorOk && !responderOk:
		m.phase = MatchDraw
		m.comment = "Both choices invalid"
	case !initiatorOk:
		m.phase = MatchWin
		m.winnerId = m.responderId
		m.comment = "Initiator choice invalid"
	case !responderOk:
		m.phase = MatchWin
		m.winnerId = m.initiatorId
		m.comment = "Responder choice invalid"
	default:
		switch Resolve(m.initiator.choice, m.responder.choice) {
		case Draw:
			m.phase = MatchDraw
			m.comment = "Both choices are the same"
		case FirstWins:
			m.phase = MatchWin
			m.winnerId = m.initiatorId
			m.comment = fmt.Sprintf("%s beats %s", m.initiator.choice, m.responder.choice)
		case SecondWins:
			m.phase = MatchWin
			m.winnerId = m.responderId
			m.comment = fmt.Sprintf("%s beats %s", m.responder.choice, m.initiator.choice)
		default:
			// Unreachable for well-formed choices; kept as a guard.
			m.phase = MatchDraw
			m.comment = "An error occurred in game execution"
		}
	}
}

// Result returns the terminal outcome. Repeated calls after completion
// return an identical value.
func (m *Match) Result() (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != MatchWin && m.phase != MatchDraw {
		return Result{}, ErrNotCompleted
	}
	return Result{
		WinnerId: m.winnerId,
		Phase:    m.phase,
		Comment:  m.comment,
	}, nil
}
