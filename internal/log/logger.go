package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging combat events.
type EventLogger interface {
	Log(event CombatEvent)
	Events() []CombatEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []CombatEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event CombatEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []CombatEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []CombatEvent {
	var result []CombatEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// EventsSince returns all events with Seq greater than seq.
func (l *MemoryLogger) EventsSince(seq int) []CombatEvent {
	var result []CombatEvent
	for _, e := range l.events {
		if e.Seq > seq {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() CombatEvent {
	if len(l.events) == 0 {
		return CombatEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event CombatEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e CombatEvent) string {
	phase := e.Phase
	if phase == "" {
		phase = "          "
	}
	// Pad phase to 12 chars for alignment
	for len(phase) < 12 {
		phase += " "
	}

	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []CombatEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewCombatStartEvent(encounter string, enemies []string) CombatEvent {
	return CombatEvent{
		Turn:    1,
		Phase:   "Player Turn",
		Type:    EventCombatStart,
		Actor:   "player",
		Details: fmt.Sprintf("=== Combat begins: %s (%s) ===", encounter, strings.Join(enemies, ", ")),
	}
}

func NewTurnStartEvent(turn int, energy int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Player Turn",
		Type:    EventTurnStart,
		Actor:   "player",
		Amount:  energy,
		Details: fmt.Sprintf("=== Turn %d (energy %d) ===", turn, energy),
	}
}

func NewTurnEndEvent(turn int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Player Turn",
		Type:    EventTurnEnd,
		Actor:   "player",
		Details: fmt.Sprintf("player ends turn %d", turn),
	}
}

func NewCardPlayedEvent(turn int, cardID, cardName, target string, cost int) CombatEvent {
	detail := fmt.Sprintf("player plays %s (cost %d)", cardName, cost)
	if target != "" {
		detail += " on " + target
	}
	return CombatEvent{
		Turn:    turn,
		Phase:   "Player Turn",
		Type:    EventCardPlayed,
		Actor:   "player",
		Target:  target,
		Card:    cardID,
		Amount:  cost,
		Details: detail,
	}
}

func NewDamageEvent(turn int, phase string, actor, target string, amount, blocked int) CombatEvent {
	detail := fmt.Sprintf("%s hits %s for %d", actor, target, amount)
	if blocked > 0 {
		detail += fmt.Sprintf(" (%d blocked)", blocked)
	}
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventDamage,
		Actor:   actor,
		Target:  target,
		Amount:  amount,
		Details: detail,
	}
}

func NewBlockEvent(turn int, phase string, actor string, amount, total int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventBlockGain,
		Actor:   actor,
		Amount:  amount,
		Details: fmt.Sprintf("%s gains %d block (now %d)", actor, amount, total),
	}
}

func NewHealEvent(turn int, phase string, actor string, amount, hp int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventHeal,
		Actor:   actor,
		Amount:  amount,
		Details: fmt.Sprintf("%s heals %d (HP %d)", actor, amount, hp),
	}
}

func NewStatusEvent(turn int, phase string, target, status string, delta, total int) CombatEvent {
	verb := "gains"
	if delta < 0 {
		verb = "loses"
	}
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventStatusChange,
		Target:  target,
		Card:    status,
		Amount:  delta,
		Details: fmt.Sprintf("%s %s %s %d (now %d)", target, verb, status, abs(delta), total),
	}
}

func NewPowerEvent(turn int, power string, value, total int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Player Turn",
		Type:    EventPowerGain,
		Actor:   "player",
		Card:    power,
		Amount:  value,
		Details: fmt.Sprintf("player gains power %s %d (now %d)", power, value, total),
	}
}

func NewEnergyEvent(turn int, phase string, delta, total int) CombatEvent {
	verb := "gains"
	if delta < 0 {
		verb = "loses"
	}
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventEnergyChange,
		Actor:   "player",
		Amount:  delta,
		Details: fmt.Sprintf("player %s %d energy (now %d)", verb, abs(delta), total),
	}
}

func NewDrawEvent(turn int, phase string, cardName string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventDraw,
		Actor:   "player",
		Card:    cardName,
		Details: fmt.Sprintf("player draws %s", cardName),
	}
}

func NewDiscardEvent(turn int, phase string, cardName string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventDiscard,
		Actor:   "player",
		Card:    cardName,
		Details: fmt.Sprintf("player discards %s", cardName),
	}
}

func NewExhaustEvent(turn int, phase string, cardName, reason string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventExhaust,
		Actor:   "player",
		Card:    cardName,
		Details: fmt.Sprintf("%s is exhausted (%s)", cardName, reason),
	}
}

func NewReshuffleEvent(turn int, phase string, count int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventReshuffle,
		Actor:   "player",
		Amount:  count,
		Details: fmt.Sprintf("discard pile reshuffled into draw pile (%d cards)", count),
	}
}

func NewAddCardEvent(turn int, phase string, cardName, zone string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventAddCard,
		Actor:   "player",
		Card:    cardName,
		Details: fmt.Sprintf("%s is added to the %s pile", cardName, zone),
	}
}

func NewReturnToDrawEvent(turn int, cardName, from string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Player Turn",
		Type:    EventReturnToDraw,
		Actor:   "player",
		Card:    cardName,
		Details: fmt.Sprintf("%s returns from %s to the top of the draw pile", cardName, from),
	}
}

func NewRelicEvent(turn int, phase string, relicID, trigger string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventRelicTrigger,
		Actor:   "player",
		Card:    relicID,
		Details: fmt.Sprintf("relic %s triggers (%s)", relicID, trigger),
	}
}

func NewEnemyActionEvent(turn int, enemy, intent string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Enemy Turn",
		Type:    EventEnemyAction,
		Actor:   enemy,
		Details: fmt.Sprintf("%s acts: %s", enemy, intent),
	}
}

func NewPoisonEvent(turn int, enemy string, amount, hp int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Enemy Turn",
		Type:    EventPoisonTick,
		Target:  enemy,
		Amount:  amount,
		Details: fmt.Sprintf("%s takes %d poison (HP %d)", enemy, amount, hp),
	}
}

func NewEnemyDownEvent(turn int, phase string, enemy string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventEnemyDown,
		Target:  enemy,
		Details: fmt.Sprintf("%s is defeated", enemy),
	}
}

func NewVictoryEvent(turn int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Type:    EventVictory,
		Actor:   "player",
		Details: fmt.Sprintf("=== Victory on turn %d ===", turn),
	}
}

func NewDefeatEvent(turn int, phase string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventDefeat,
		Actor:   "player",
		Details: fmt.Sprintf("=== Defeat on turn %d ===", turn),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
