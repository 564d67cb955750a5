package game

// Cue names a sound effect the simulation asks the client to play
type Cue string

const (
	CuePlayerHit   Cue = "player_hit"
	CuePlayerDeath Cue = "player_death"
	CueBossHit     Cue = "boss_hit"
	CuePlayerHeal  Cue = "player_heal"
	CueLevelUp     Cue = "level_up"
	CueCommBird    Cue = "comm_bird"
	CueCommBunny   Cue = "comm_bunny"
	CueCommFox     Cue = "comm_fox"
	CueCommFrog    Cue = "comm_frog"
)

// Cues lists every cue in a stable order
var Cues = []Cue{
	CuePlayerHit,
	CuePlayerDeath,
	CueBossHit,
	CuePlayerHeal,
	CueLevelUp,
	CueCommBird,
	CueCommBunny,
	CueCommFox,
	CueCommFrog,
}

// commCue picks the radio chatter played when a level starts
func commCue(level int) Cue {
	switch level%4 + 1 {
	case 1:
		return CueCommBird
	case 2:
		return CueCommFox
	case 3:
		return CueCommBunny
	default:
		return CueCommFrog
	}
}

// emit queues a cue for the client
func (s *Session) emit(c Cue) {
	s.events = append(s.events, c)
}

// DrainEvents returns the cues queued since the last call
func (s *Session) DrainEvents() []Cue {
	out := s.events
	s.events = nil
	return out
}
