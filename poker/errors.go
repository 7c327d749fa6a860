package poker

import "errors"

var (
	// ErrInvalidCardCode is returned when a card code is not a rank glyph followed by a suit glyph.
	ErrInvalidCardCode = errors.New("invalid card code")

	// ErrDuplicateCard is returned when the same card is used twice.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrDeckEmpty is returned when drawing from an exhausted deck.
	ErrDeckEmpty = errors.New("deck empty")

	// ErrInvalidHandSize is returned when an evaluator receives the wrong number of cards.
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrBoardFull is returned when adding a sixth community card.
	ErrBoardFull = errors.New("board full")
)
