package game

// Snapshot is the full serializable state of a match. The Lambda
// handlers load one from storage, restore the match, apply a single
// operation and store the new snapshot back.
type Snapshot struct {
	Id          string
	InitiatorId string
	ResponderId string

	Initiator PlayerSnapshot
	Responder PlayerSnapshot

	Phase    MatchPhase
	WinnerId string
	Comment  string
}

type PlayerSnapshot struct {
	Phase      PlayerPhase
	Commitment string
	Choice     Choice
	Secret     string
}

func (m *Match) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		Id:          m.id,
		InitiatorId: m.initiatorId,
		ResponderId: m.responderId,
		Initiator:   playerSnapshot(m.initiator),
		Responder:   playerSnapshot(m.responder),
		Phase:       m.phase,
		WinnerId:    m.winnerId,
		Comment:     m.comment,
	}
}

func playerSnapshot(p playerState) PlayerSnapshot {
	return PlayerSnapshot{
		Phase:      p.phase,
		Commitment: p.commitment,
		Choice:     p.choice,
		Secret:     p.secret,
	}
}

// RestoreMatch rebuilds a match from a stored snapshot, re-validating
// the invariants a live match maintains.
func RestoreMatch(snapshot Snapshot) (*Match, error) {
	if snapshot.InitiatorId == "" ||
		snapshot.ResponderId == "" ||
		snapshot.InitiatorId == snapshot.ResponderId {
		return nil, ErrInvalidParticipants
	}
	if snapshot.Phase > MatchDraw ||
		snapshot.Initiator.Phase > PhaseRevealed ||
		snapshot.Responder.Phase > PhaseRevealed {
		return nil, ErrInvalidSnapshot
	}
	// The initiator commits at creation; a pending initiator or a
	// committed responder in an INITIATED match cannot come from a
	// valid history.
	if snapshot.Initiator.Phase == PhasePending {
		return nil, ErrInvalidSnapshot
	}
	if snapshot.Phase == MatchInitiated && snapshot.Responder.Phase != PhasePending {
		return nil, ErrInvalidSnapshot
	}

	return &Match{
		id:          snapshot.Id,
		initiatorId: snapshot.InitiatorId,
		responderId: snapshot.ResponderId,
		initiator:   restorePlayer(snapshot.Initiator),
		responder:   restorePlayer(snapshot.Responder),
		phase:       snapshot.Phase,
		winnerId:    snapshot.WinnerId,
		comment:     snapshot.Comment,
	}, nil
}

func restorePlayer(p PlayerSnapshot) playerState {
	return playerState{
		phase:      p.Phase,
		commitment: p.Commitment,
		choice:     p.Choice,
		secret:     p.Secret,
	}
}
