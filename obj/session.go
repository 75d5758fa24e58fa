package obj

// Session is the score and game-over state of one round.
type Session struct {
	Score    int
	GameOver bool
}

// AddPoint credits one enemy that made it off screen.
func (s *Session) AddPoint() {
	s.Score++
}

// End marks the round as lost. It stays lost until Reset.
func (s *Session) End() {
	s.GameOver = true
}

func (s *Session) Reset() {
	s.Score = 0
	s.GameOver = false
}
