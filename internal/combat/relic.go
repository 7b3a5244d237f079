package combat

// --- Triggers ---

// Trigger names a lifecycle point the combat session dispatches relics on.
type Trigger int

const (
	TriggerCombatStart Trigger = iota
	TriggerCombatEnd
	TriggerTurnStart
	TriggerTurnEnd
	TriggerPlayAttack
	TriggerExhaust
	TriggerDamaged
	TriggerPassive
)

func (t Trigger) String() string {
	switch t {
	case TriggerCombatStart:
		return "onCombatStart"
	case TriggerCombatEnd:
		return "onCombatEnd"
	case TriggerTurnStart:
		return "onTurnStart"
	case TriggerTurnEnd:
		return "onTurnEnd"
	case TriggerPlayAttack:
		return "onPlayAttack"
	case TriggerExhaust:
		return "onExhaust"
	case TriggerDamaged:
		return "onDamaged"
	case TriggerPassive:
		return "passive"
	default:
		return "unknown"
	}
}

// --- Relic effects (the dispatcher's vocabulary, distinct from card effects) ---

type RelicOp int

const (
	RelicHeal RelicOp = iota
	RelicBlock
	RelicEnergy
	RelicStrength
	RelicDexterity
	RelicDraw
	RelicGold
	RelicRetaliate    // onDamaged: deal Value back to the attacker
	RelicDoubleAttack // onPlayAttack: every Every-th attack deals double damage
)

func (op RelicOp) String() string {
	switch op {
	case RelicHeal:
		return "heal"
	case RelicBlock:
		return "block"
	case RelicEnergy:
		return "energy"
	case RelicStrength:
		return "strength"
	case RelicDexterity:
		return "dexterity"
	case RelicDraw:
		return "draw"
	case RelicGold:
		return "gold"
	case RelicRetaliate:
		return "retaliate"
	case RelicDoubleAttack:
		return "doubleAttack"
	default:
		return "unknown"
	}
}

type RelicEffect struct {
	Op    RelicOp
	Value int
	Every int // doubleAttack period
}

// --- Relic definition (static content data) ---

type RelicDefinition struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	Trigger     Trigger
	Effect      RelicEffect
}

// RelicInstance attaches the engine-owned mutable counter to a shared
// immutable definition. Counters persist across combats.
type RelicInstance struct {
	Def     *RelicDefinition
	Counter int
}

// --- RelicSet (trigger-keyed dispatch table) ---

// RelicSet keeps relics in acquisition order and indexes them by
// trigger so the session can dispatch a lifecycle point in one lookup.
type RelicSet struct {
	relics    []*RelicInstance
	byTrigger map[Trigger][]*RelicInstance
}

func NewRelicSet() *RelicSet {
	return &RelicSet{byTrigger: make(map[Trigger][]*RelicInstance)}
}

// Add registers a relic. Dispatch order within a trigger follows
// acquisition order.
func (rs *RelicSet) Add(def *RelicDefinition) *RelicInstance {
	ri := &RelicInstance{Def: def}
	rs.relics = append(rs.relics, ri)
	rs.byTrigger[def.Trigger] = append(rs.byTrigger[def.Trigger], ri)
	return ri
}

// All returns every relic in acquisition order.
func (rs *RelicSet) All() []*RelicInstance {
	return rs.relics
}

// ForTrigger returns the relics listening on a trigger, in order.
func (rs *RelicSet) ForTrigger(t Trigger) []*RelicInstance {
	return rs.byTrigger[t]
}

// EnergyBonus sums the passive energy relics; added to base energy at
// the start of each player turn.
func (rs *RelicSet) EnergyBonus() int {
	bonus := 0
	for _, ri := range rs.byTrigger[TriggerPassive] {
		if ri.Def.Effect.Op == RelicEnergy {
			bonus += ri.Def.Effect.Value
		}
	}
	return bonus
}

// AttackDoubled reports whether a periodic relic has just reached its
// threshold, doubling the current attack's damage. Counters advance as
// part of the onPlayAttack dispatch, so this is checked right after.
func (rs *RelicSet) AttackDoubled() bool {
	for _, ri := range rs.byTrigger[TriggerPlayAttack] {
		eff := ri.Def.Effect
		if eff.Op == RelicDoubleAttack && eff.Every > 0 && ri.Counter > 0 && ri.Counter%eff.Every == 0 {
			return true
		}
	}
	return false
}
