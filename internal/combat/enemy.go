package combat

import (
	"fmt"
	"math/rand"
)

// --- Intents ---

type IntentKind int

const (
	IntentAttack IntentKind = iota
	IntentBlock
	IntentBuff
	IntentDebuff
	IntentAttackDebuff
)

// Intent is one pre-committed enemy action. Which fields are meaningful
// depends on Kind. Intents are read-only content data; the live
// strength/weak/vulnerable lookups happen at execution time.
type Intent struct {
	Kind          IntentKind
	Damage        int
	Times         int // attack repeats; 0 reads as 1
	Block         int
	Status        Status // buff/debuff status; optional buff riding on a block intent
	Value         int
	FirstTurnOnly bool // meaningful on the first intent only
}

// Hits returns the number of attack repeats, at least 1.
func (i Intent) Hits() int {
	if i.Times <= 0 {
		return 1
	}
	return i.Times
}

func (i Intent) String() string {
	switch i.Kind {
	case IntentAttack:
		if i.Hits() > 1 {
			return fmt.Sprintf("attack %dx%d", i.Damage, i.Hits())
		}
		return fmt.Sprintf("attack %d", i.Damage)
	case IntentBlock:
		if i.Status != "" {
			return fmt.Sprintf("block %d, %s %d", i.Block, i.Status, i.Value)
		}
		return fmt.Sprintf("block %d", i.Block)
	case IntentBuff:
		return fmt.Sprintf("%s %d", i.Status, i.Value)
	case IntentDebuff:
		return fmt.Sprintf("inflict %s %d", i.Status, i.Value)
	case IntentAttackDebuff:
		if i.Hits() > 1 {
			return fmt.Sprintf("attack %dx%d, inflict %s %d", i.Damage, i.Hits(), i.Status, i.Value)
		}
		return fmt.Sprintf("attack %d, inflict %s %d", i.Damage, i.Status, i.Value)
	default:
		return "unknown"
	}
}

// --- Enemy definition (static content data) ---

type EnemyDefinition struct {
	ID      string
	Name    string
	MinHP   int
	MaxHP   int
	Intents []Intent
}

// EncounterDefinition is a named enemy lineup. Enemies spawn, and later
// act, in list order.
type EncounterDefinition struct {
	ID      string
	Name    string
	Enemies []string // enemy definition ids, duplicates allowed
}

// intentIndex returns the intent position for a 1-based turn count.
// When the first intent is first-turn-only it fires exactly once on
// turn 1 and the remaining intents cycle; otherwise all intents cycle.
func (d *EnemyDefinition) intentIndex(turn int) int {
	n := len(d.Intents)
	if n <= 1 {
		return 0
	}
	if d.Intents[0].FirstTurnOnly {
		if turn <= 1 {
			return 0
		}
		return 1 + (turn-1)%(n-1)
	}
	return turn % n
}

// --- Enemy (runtime) ---

type Enemy struct {
	Actor
	Def       *EnemyDefinition
	TurnCount int // turns this enemy has taken (1-based during its own turn)
}

// SpawnEnemy rolls a fresh enemy from its definition, HP drawn
// uniformly from [MinHP, MaxHP].
func SpawnEnemy(def *EnemyDefinition, rng *rand.Rand) *Enemy {
	hp := def.MinHP
	if def.MaxHP > def.MinHP {
		hp += rng.Intn(def.MaxHP - def.MinHP + 1)
	}
	return &Enemy{
		Actor: Actor{
			Name:     def.Name,
			HP:       hp,
			MaxHP:    def.MaxHP,
			Statuses: NewStatusSet(),
		},
		Def: def,
	}
}

// NextIntent returns the intent this enemy will execute on its next
// turn: the player-visible telegraph.
func (e *Enemy) NextIntent() Intent {
	return e.Def.Intents[e.Def.intentIndex(e.TurnCount+1)]
}

// hitDamage is one hit of an attack intent against target: strength and
// weak on the attacker, vulnerable on the target, floors throughout.
func (e *Enemy) hitDamage(intent Intent, target *Actor) int {
	dmg := intent.Damage + e.Statuses.Get(StatusStrength)
	if e.Statuses.Get(StatusWeak) > 0 {
		dmg = dmg * 3 / 4
	}
	if dmg < 0 {
		dmg = 0
	}
	if target.Statuses.Get(StatusVulnerable) > 0 {
		dmg = dmg * 3 / 2
	}
	return dmg
}

// PreviewDamage is the per-hit damage the enemy's next intent will
// deal to target, 0 for non-attack intents. It accounts for what
// happens before the enemy swings: ritual converts to strength and the
// enemy's own weak ticks down, while the target's vulnerable holds
// until after the enemy phase.
func (e *Enemy) PreviewDamage(target *Actor) int {
	intent := e.NextIntent()
	if intent.Kind != IntentAttack && intent.Kind != IntentAttackDebuff {
		return 0
	}
	dmg := intent.Damage + e.Statuses.Get(StatusStrength) + e.Statuses.Get(StatusRitual)
	if e.Statuses.Get(StatusWeak) > 1 {
		dmg = dmg * 3 / 4
	}
	if dmg < 0 {
		dmg = 0
	}
	if target.Statuses.Get(StatusVulnerable) > 0 {
		dmg = dmg * 3 / 2
	}
	return dmg
}

// BeginTurn advances the enemy onto its next turn and returns the
// intent to execute.
func (e *Enemy) BeginTurn() Intent {
	e.TurnCount++
	return e.Def.Intents[e.Def.intentIndex(e.TurnCount)]
}

// StartTurn resets the enemy's block.
func (e *Enemy) StartTurn() {
	e.Block = 0
}

// TickUpkeep decays the enemy's own-turn debuffs and applies the poison
// tick (poison bypasses block, then decrements by one). Returns the HP
// the poison removed, 0 when unpoisoned.
func (e *Enemy) TickUpkeep() int {
	e.Statuses.Decay(StatusVulnerable)
	e.Statuses.Decay(StatusWeak)
	pois := e.Statuses.Get(StatusPoison)
	if pois <= 0 {
		return 0
	}
	dealt := e.LoseHP(pois)
	e.Statuses.Add(StatusPoison, -1)
	return dealt
}
