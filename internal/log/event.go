package log

// EventType enumerates all observable combat events.
type EventType int

const (
	EventCombatStart EventType = iota
	EventTurnStart
	EventTurnEnd
	EventCardPlayed
	EventDamage
	EventBlockGain
	EventHeal
	EventStatusChange
	EventPowerGain
	EventEnergyChange
	EventDraw
	EventDiscard
	EventExhaust
	EventReshuffle
	EventAddCard
	EventReturnToDraw
	EventRelicTrigger
	EventEnemyAction
	EventPoisonTick
	EventEnemyDown
	EventVictory
	EventDefeat
)

func (e EventType) String() string {
	switch e {
	case EventCombatStart:
		return "CombatStart"
	case EventTurnStart:
		return "TurnStart"
	case EventTurnEnd:
		return "TurnEnd"
	case EventCardPlayed:
		return "CardPlayed"
	case EventDamage:
		return "Damage"
	case EventBlockGain:
		return "BlockGain"
	case EventHeal:
		return "Heal"
	case EventStatusChange:
		return "StatusChange"
	case EventPowerGain:
		return "PowerGain"
	case EventEnergyChange:
		return "EnergyChange"
	case EventDraw:
		return "Draw"
	case EventDiscard:
		return "Discard"
	case EventExhaust:
		return "Exhaust"
	case EventReshuffle:
		return "Reshuffle"
	case EventAddCard:
		return "AddCard"
	case EventReturnToDraw:
		return "ReturnToDraw"
	case EventRelicTrigger:
		return "RelicTrigger"
	case EventEnemyAction:
		return "EnemyAction"
	case EventPoisonTick:
		return "PoisonTick"
	case EventEnemyDown:
		return "EnemyDown"
	case EventVictory:
		return "Victory"
	case EventDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// CombatEvent represents a single observable event in a combat.
type CombatEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // player turn count (1-based)
	Phase   string    // phase name (e.g. "Player Turn")
	Type    EventType // event type
	Actor   string    // acting side: "player" or an enemy name
	Target  string    // affected side, when distinct from Actor
	Card    string    // card or relic id (if applicable)
	Amount  int       // damage/heal/block/energy magnitude (if applicable)
	Details string    // human-readable detail string
}
