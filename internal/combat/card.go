package combat

import "fmt"

// --- Enums ---

type CardType int

const (
	CardTypeAttack CardType = iota
	CardTypeSkill
	CardTypePower
	CardTypeStatus
	CardTypeCurse
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeAttack:
		return "Attack"
	case CardTypeSkill:
		return "Skill"
	case CardTypePower:
		return "Power"
	case CardTypeStatus:
		return "Status"
	case CardTypeCurse:
		return "Curse"
	default:
		return "Unknown"
	}
}

type Rarity int

const (
	RarityStarter Rarity = iota
	RarityCommon
	RarityUncommon
	RarityRare
	RaritySpecial
)

func (r Rarity) String() string {
	switch r {
	case RarityStarter:
		return "Starter"
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RaritySpecial:
		return "Special"
	default:
		return "Unknown"
	}
}

// TargetMode selects who a damage or debuff effect applies to.
type TargetMode int

const (
	TargetSingle TargetMode = iota // the explicit target passed to PlayCard
	TargetAll                      // every live enemy
)

func (t TargetMode) String() string {
	if t == TargetAll {
		return "all"
	}
	return "single"
}

// Power names a persistent player counter consulted at fixed lifecycle
// points rather than folded into the damage math.
type Power string

const (
	PowerMetallicize Power = "metallicize" // end of turn: gain block
	PowerDemonForm   Power = "demonForm"   // start of turn: gain strength
	PowerBarricade   Power = "barricade"   // suppresses start-of-turn block reset
)

// --- Effect descriptors (the interpreter's instruction set) ---

type EffectOp int

const (
	OpDamage EffectOp = iota
	OpBlock
	OpDraw
	OpDebuff
	OpBuff
	OpTempBuff
	OpGainEnergy
	OpLoseHP
	OpAddCopy
	OpAddCard
	OpRegisterPower
	OpNoMoreDraw
	OpExhaustRandom
	OpSecondWind
	OpAddRandomAttack
	OpPlayTopDraw
	OpPutOnDraw
	OpPutBack
)

func (op EffectOp) String() string {
	switch op {
	case OpDamage:
		return "damage"
	case OpBlock:
		return "block"
	case OpDraw:
		return "draw"
	case OpDebuff:
		return "debuff"
	case OpBuff:
		return "buff"
	case OpTempBuff:
		return "tempBuff"
	case OpGainEnergy:
		return "gainEnergy"
	case OpLoseHP:
		return "loseHP"
	case OpAddCopy:
		return "addCopy"
	case OpAddCard:
		return "addCard"
	case OpRegisterPower:
		return "registerPower"
	case OpNoMoreDraw:
		return "noMoreDraw"
	case OpExhaustRandom:
		return "exhaustRandom"
	case OpSecondWind:
		return "secondWind"
	case OpAddRandomAttack:
		return "addRandomAttack"
	case OpPlayTopDraw:
		return "playTopDraw"
	case OpPutOnDraw:
		return "putOnDraw"
	case OpPutBack:
		return "putBack"
	default:
		return "unknown"
	}
}

// Effect is one instruction in a card's effect list. Which fields are
// meaningful depends on Op; unused fields stay zero.
type Effect struct {
	Op        EffectOp
	Value     int        // damage/block/draw/energy/HP amount; secondWind block per card
	Target    TargetMode // damage and debuff only
	Times     int        // damage repeats; 0 reads as 1
	Lifesteal bool       // damage only: heal the source for HP actually removed
	Status    Status     // buff/debuff/tempBuff
	CardID    string     // addCard
	Power     Power      // registerPower
}

// --- Card definition (static content data) ---

type CardDefinition struct {
	ID          string
	Name        string
	Description string
	Type        CardType
	Rarity      Rarity
	Cost        int
	Effects     []Effect
	Exhaust     bool // played card leaves combat instead of going to discard
	Ethereal    bool // exhausted at end of turn if still in hand
	Unplayable  bool // Status/Curse filler; effect list runs at end of turn while in hand
	RampUp      int  // added to the instance's RampBonus each time it is played
}

// NeedsTarget reports whether any effect in the list wants an explicit
// single target. Hosts use it to demand a target before playing.
func (d *CardDefinition) NeedsTarget() bool {
	for _, eff := range d.Effects {
		switch eff.Op {
		case OpDamage, OpDebuff:
			if eff.Target == TargetSingle {
				return true
			}
		}
	}
	return false
}

// --- CardInstance (runtime copy of a definition) ---

// CardInstance pairs a definition with per-copy mutable state. Instances
// built from the master collection share the master entry's id so ramp
// bonuses can be written back after combat; instances created mid-combat
// get fresh ids and die with the combat.
type CardInstance struct {
	ID        int
	Def       *CardDefinition
	RampBonus int
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(none)"
	}
	if ci.RampBonus > 0 {
		return fmt.Sprintf("%s(+%d)", ci.Def.Name, ci.RampBonus)
	}
	return ci.Def.Name
}

// Clone returns a fresh instance of the same definition carrying the
// same ramp bonus under a new id.
func (ci *CardInstance) Clone(id int) *CardInstance {
	return &CardInstance{ID: id, Def: ci.Def, RampBonus: ci.RampBonus}
}
