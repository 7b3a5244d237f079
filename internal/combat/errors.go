package combat

import "errors"

// Precondition errors. These reject an operation without mutating state;
// the host re-checks its gating and carries on.
var (
	ErrNotPlayerTurn      = errors.New("not the player's turn")
	ErrNotEnemyTurn       = errors.New("enemy queue is not processing")
	ErrCombatOver         = errors.New("combat is over")
	ErrInsufficientEnergy = errors.New("insufficient energy")
	ErrCardNotInHand      = errors.New("card not in hand")
	ErrUnplayable         = errors.New("card is unplayable")
	ErrInvalidTarget      = errors.New("invalid target")
)

// Content errors. An operation that hits one aborts cleanly with prior
// state intact; it never partially applies an effect list.
var (
	ErrUnknownCard      = errors.New("unknown card id")
	ErrUnknownEnemy     = errors.New("unknown enemy id")
	ErrUnknownRelic     = errors.New("unknown relic id")
	ErrUnknownEncounter = errors.New("unknown encounter id")
)
