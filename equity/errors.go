package equity

import "errors"

var (
	// ErrEmptyRange is returned when a simulation has no opponent hands to
	// sample, either because none were given or all collide with known cards.
	ErrEmptyRange = errors.New("opponent range is empty")
	// ErrBoardRequired is returned when classification is asked for before the flop.
	ErrBoardRequired = errors.New("board must have at least three cards")
	// ErrDrawMismatch is returned when the number of drawn cards does not
	// complete the board.
	ErrDrawMismatch = errors.New("drawn cards do not complete the board")
	// ErrDeckExhausted is returned when the deck cannot supply a draw.
	ErrDeckExhausted = errors.New("not enough live cards to draw")
	// ErrInvalidTrials is returned for a negative trial count.
	ErrInvalidTrials = errors.New("trial count must not be negative")
	// ErrCardConflict is returned when the hero's hole cards appear on the board.
	ErrCardConflict = errors.New("hole cards overlap the board")
)
