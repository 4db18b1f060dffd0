package registry

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/handshake-games/roshambo/internal/game"
)

var (
	ErrMatchAlreadyExists = errors.New("match already exists for pair")
	ErrMatchNotFound      = errors.New("match not found")
)

// Registry maps ordered participant pairs to live matches. The pairing
// is directional: (a, b) and (b, a) are distinct matches, and querying
// a result requires knowing which role you played.
type Registry struct {
	matches sync.Map
	mu      sync.Mutex
}

func New() *Registry {
	return &Registry{}
}

func pairKey(initiatorId, responderId string) string {
	return initiatorId + "#" + responderId
}

// InitiateGame creates a match with the initiator's commitment already
// installed. One live match per ordered pair.
func (r *Registry) InitiateGame(initiatorId, responderId, commitment string) (*game.Match, error) {
	if initiatorId == "" || responderId == "" || initiatorId == responderId {
		return nil, game.ErrInvalidParticipants
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(initiatorId, responderId)
	if _, exists := r.matches.Load(key); exists {
		return nil, ErrMatchAlreadyExists
	}
	match, err := game.NewMatch(uuid.NewString(), initiatorId, responderId, commitment)
	if err != nil {
		return nil, err
	}
	r.matches.Store(key, match)
	return match, nil
}

// Respond installs the responder's commitment on the match the caller
// was invited to. callerId is the responder.
func (r *Registry) Respond(initiatorId, callerId, commitment string) (*game.Match, error) {
	match, err := r.Load(initiatorId, callerId)
	if err != nil {
		return nil, err
	}
	if err := match.AddResponderCommitment(commitment); err != nil {
		return nil, err
	}
	return match, nil
}

// AddInitiatorChoice reveals the initiator's choice. The wire choice is
// 1/2/3; anything else is rejected before it reaches the match.
func (r *Registry) AddInitiatorChoice(callerId, responderId string, choiceValue int, secret string) (*game.Match, error) {
	choice, err := game.ChoiceFromInt(choiceValue)
	if err != nil {
		return nil, err
	}
	match, err := r.Load(callerId, responderId)
	if err != nil {
		return nil, err
	}
	if err := match.RevealInitiator(choice, secret); err != nil {
		return nil, err
	}
	return match, nil
}

// AddResponderChoice is the responder-side mirror of AddInitiatorChoice.
func (r *Registry) AddResponderChoice(initiatorId, callerId string, choiceValue int, secret string) (*game.Match, error) {
	choice, err := game.ChoiceFromInt(choiceValue)
	if err != nil {
		return nil, err
	}
	match, err := r.Load(initiatorId, callerId)
	if err != nil {
		return nil, err
	}
	if err := match.RevealResponder(choice, secret); err != nil {
		return nil, err
	}
	return match, nil
}

// GetInitiatorResult returns the result of the match the caller
// initiated against responderId.
func (r *Registry) GetInitiatorResult(callerId, responderId string) (game.Result, error) {
	match, err := r.Load(callerId, responderId)
	if err != nil {
		return game.Result{}, err
	}
	return match.Result()
}

// GetResponderResult returns the result of the match initiated against
// the caller by initiatorId.
func (r *Registry) GetResponderResult(initiatorId, callerId string) (game.Result, error) {
	match, err := r.Load(initiatorId, callerId)
	if err != nil {
		return game.Result{}, err
	}
	return match.Result()
}

func (r *Registry) Load(initiatorId, responderId string) (*game.Match, error) {
	value, exists := r.matches.Load(pairKey(initiatorId, responderId))
	if !exists {
		return nil, ErrMatchNotFound
	}
	match, ok := value.(*game.Match)
	if !ok {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

// Remove is for the serving layer's disposal of archived matches; the
// core never deletes a match on its own.
func (r *Registry) Remove(initiatorId, responderId string) {
	r.matches.Delete(pairKey(initiatorId, responderId))
}
