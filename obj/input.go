package obj

import "slices"

// Token is one active input symbol. Arrow tokens come from the keyboard,
// swipe tokens from touch gestures.
type Token string

const (
	TokenArrowUp    Token = "ArrowUp"
	TokenArrowDown  Token = "ArrowDown"
	TokenArrowLeft  Token = "ArrowLeft"
	TokenArrowRight Token = "ArrowRight"
	TokenSwipeUp    Token = "swipe up"
	TokenSwipeDown  Token = "swipe down"
	TokenSwipeLeft  Token = "swipe left"
	TokenSwipeRight Token = "swipe right"
)

var swipeTokens = [...]Token{TokenSwipeUp, TokenSwipeDown, TokenSwipeLeft, TokenSwipeRight}

// Key is a keyboard key the game reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
)

// Token returns the arrow token for k, or false for non-arrow keys.
func (k Key) Token() (Token, bool) {
	switch k {
	case KeyUp:
		return TokenArrowUp, true
	case KeyDown:
		return TokenArrowDown, true
	case KeyLeft:
		return TokenArrowLeft, true
	case KeyRight:
		return TokenArrowRight, true
	default:
		return "", false
	}
}

// DefaultTouchThreshold is the swipe distance, in surface units, that turns
// a touch drag into a swipe token.
const DefaultTouchThreshold = 30

// Input holds the tokens currently held. A token is present at most once;
// order of first press is kept.
type Input struct {
	tokens []Token

	touchX, touchY float64
	threshold      float64

	restart bool
}

func NewInput(threshold float64) *Input {
	if threshold <= 0 {
		threshold = DefaultTouchThreshold
	}
	return &Input{tokens: make([]Token, 0, 8), threshold: threshold}
}

// SetThreshold changes the swipe distance. Non-positive values restore the
// default.
func (in *Input) SetThreshold(threshold float64) {
	if threshold <= 0 {
		threshold = DefaultTouchThreshold
	}
	in.threshold = threshold
}

// Press adds the arrow token for k. Enter requests a restart; the game loop
// only acts on it after a game over.
func (in *Input) Press(k Key) {
	if k == KeyEnter {
		in.restart = true
		return
	}
	if tok, ok := k.Token(); ok {
		in.add(tok)
	}
}

// Release removes the arrow token for k. Releasing a key that is not held
// does nothing.
func (in *Input) Release(k Key) {
	if tok, ok := k.Token(); ok {
		in.remove(tok)
	}
}

// TouchStart anchors a gesture at (x, y).
func (in *Input) TouchStart(x, y float64) {
	in.touchX = x
	in.touchY = y
}

// TouchMove turns the displacement from the anchor into swipe tokens once
// it passes the threshold. A newly added swipe down requests a restart.
func (in *Input) TouchMove(x, y float64) {
	dy := y - in.touchY
	dx := x - in.touchX

	if dy < -in.threshold {
		in.add(TokenSwipeUp)
	} else if dy > in.threshold {
		if in.add(TokenSwipeDown) {
			in.restart = true
		}
	}

	if dx > in.threshold {
		in.add(TokenSwipeRight)
	} else if dx < -in.threshold {
		in.add(TokenSwipeLeft)
	}
}

// TouchEnd drops every swipe token, present or not.
func (in *Input) TouchEnd() {
	for _, tok := range swipeTokens {
		in.remove(tok)
	}
}

// Has reports whether any of toks is held.
func (in *Input) Has(toks ...Token) bool {
	for _, tok := range toks {
		if slices.Contains(in.tokens, tok) {
			return true
		}
	}
	return false
}

// Tokens returns a copy of the held tokens in press order.
func (in *Input) Tokens() []Token {
	return slices.Clone(in.tokens)
}

// TakeRestart reports whether a restart was requested since the last call
// and clears the request.
func (in *Input) TakeRestart() bool {
	r := in.restart
	in.restart = false
	return r
}

func (in *Input) add(tok Token) bool {
	if slices.Contains(in.tokens, tok) {
		return false
	}
	in.tokens = append(in.tokens, tok)
	return true
}

func (in *Input) remove(tok Token) {
	if i := slices.Index(in.tokens, tok); i >= 0 {
		in.tokens = slices.Delete(in.tokens, i, i+1)
	}
}
