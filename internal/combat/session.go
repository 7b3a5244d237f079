package combat

import (
	"errors"
	"fmt"
	"math/rand"

	"deckfall/internal/log"
)

// --- Phases & Outcomes ---

type Phase int

const (
	PhasePlayerTurn Phase = iota
	PhaseEnemyTurn
)

func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "Player Turn"
	case PhaseEnemyTurn:
		return "Enemy Turn"
	default:
		return "Unknown"
	}
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// --- Library ---

// Library resolves content ids to immutable definitions. The engine holds
// no content of its own; unknown ids surface as errors, never as silent
// no-ops.
type Library interface {
	Card(id string) (*CardDefinition, error)
	Enemy(id string) (*EnemyDefinition, error)
	Relic(id string) (*RelicDefinition, error)
	Encounter(id string) (*EncounterDefinition, error)
	AttackCardIDs() []string
}

// --- Session ---

// SessionConfig describes one combat. An explicit enemy list wins over
// the encounter id; with both set, Encounter only labels the log.
// Enemies spawn in the order given; that order is the queue order for
// the enemy phase.
type SessionConfig struct {
	Player    *Player
	Enemies   []string // enemy definition ids
	Encounter string   // encounter id when Enemies is empty
	Library   Library
	Logger    log.EventLogger
	Seed      int64 // 0 picks a random seed
	NoShuffle bool  // deterministic draw order for tests
}

// Session is a single combat from start to victory or defeat. All methods
// mutate state in place and log as they go; none of them are safe for
// concurrent use.
type Session struct {
	Player  *Player
	Enemies []*Enemy
	Phase   Phase
	Outcome Outcome
	Logger  log.EventLogger

	lib   Library
	rng   *rand.Rand
	queue []*Enemy
}

// NewSession spawns the enemies, resets the player for combat, fires
// combat-start relics and runs the first player turn start. Content
// errors (unknown enemy or card ids) abort before any state changes.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Player == nil {
		return nil, errors.New("session requires a player")
	}
	if cfg.Library == nil {
		return nil, errors.New("session requires a content library")
	}

	enemyIDs := cfg.Enemies
	label := cfg.Encounter
	if len(enemyIDs) == 0 && cfg.Encounter != "" {
		enc, err := cfg.Library.Encounter(cfg.Encounter)
		if err != nil {
			return nil, err
		}
		enemyIDs = enc.Enemies
		label = enc.Name
	}
	if len(enemyIDs) == 0 {
		return nil, errors.New("session requires at least one enemy")
	}
	if label == "" {
		label = "combat"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	s := &Session{
		Player: cfg.Player,
		Phase:  PhasePlayerTurn,
		Logger: logger,
		lib:    cfg.Library,
		rng:    newRand(cfg.Seed),
	}

	names := make([]string, 0, len(enemyIDs))
	for _, id := range enemyIDs {
		def, err := cfg.Library.Enemy(id)
		if err != nil {
			return nil, err
		}
		e := SpawnEnemy(def, s.rng)
		s.Enemies = append(s.Enemies, e)
		names = append(names, e.Name)
	}

	if err := s.validateContentRefs(); err != nil {
		return nil, err
	}

	s.Player.StartCombat(s.rng, cfg.NoShuffle)
	s.log(log.NewCombatStartEvent(label, names))

	s.fireRelics(TriggerCombatStart, nil)
	s.startPlayerTurn()
	return s, nil
}

// validateContentRefs resolves every card id reachable from the master
// collection, including cards those cards can add and the random-attack
// pool, so that content errors surface here instead of mid-resolution.
func (s *Session) validateContentRefs() error {
	seen := make(map[string]bool)
	var pending []*CardDefinition
	add := func(def *CardDefinition) {
		if !seen[def.ID] {
			seen[def.ID] = true
			pending = append(pending, def)
		}
	}

	for _, ci := range s.Player.Master {
		add(ci.Def)
	}

	pooled := false
	for len(pending) > 0 {
		def := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, eff := range def.Effects {
			switch eff.Op {
			case OpAddCard:
				child, err := s.lib.Card(eff.CardID)
				if err != nil {
					return fmt.Errorf("card %s: %w", def.ID, err)
				}
				add(child)
			case OpAddRandomAttack:
				if pooled {
					continue
				}
				pooled = true
				for _, id := range s.lib.AttackCardIDs() {
					child, err := s.lib.Card(id)
					if err != nil {
						return fmt.Errorf("attack pool: %w", err)
					}
					add(child)
				}
			}
		}
	}
	return nil
}

// Over reports whether the combat has reached a terminal state.
func (s *Session) Over() bool {
	return s.Outcome != OutcomeNone
}

// Turn is the current player turn number, starting at 1.
func (s *Session) Turn() int {
	return s.Player.TurnCount
}

// PendingActions is the number of enemies still waiting to act this
// enemy phase.
func (s *Session) PendingActions() int {
	return len(s.queue)
}

func (s *Session) log(e log.CombatEvent) {
	s.Logger.Log(e)
}

// --- Player actions ---

// PlayCard plays the hand card with the given instance id. target indexes
// into Enemies and may be -1 when the card needs none. Precondition
// failures reject the action without mutating anything.
func (s *Session) PlayCard(cardID, target int) error {
	if s.Over() {
		return ErrCombatOver
	}
	if s.Phase != PhasePlayerTurn {
		return ErrNotPlayerTurn
	}
	ci := s.Player.FindInHand(cardID)
	if ci == nil {
		return ErrCardNotInHand
	}
	if ci.Def.Unplayable {
		return ErrUnplayable
	}
	if s.Player.Energy < ci.Def.Cost {
		return ErrInsufficientEnergy
	}
	var tgt *Enemy
	if target >= 0 {
		if target >= len(s.Enemies) {
			return ErrInvalidTarget
		}
		tgt = s.Enemies[target]
	}

	s.Player.Energy -= ci.Def.Cost
	s.log(log.NewEnergyEvent(s.Turn(), s.Phase.String(), -ci.Def.Cost, s.Player.Energy))

	// The card leaves the hand for the duration of its resolution, so
	// effects that inspect or move hand cards never see it there.
	s.Player.RemoveFromHand(ci)

	tgtName := ""
	if tgt != nil {
		tgtName = tgt.Name
	}
	s.log(log.NewCardPlayedEvent(s.Turn(), ci.Def.ID, ci.String(), tgtName, ci.Def.Cost))

	doubled := false
	if ci.Def.Type == CardTypeAttack {
		s.Player.AttacksPlayed++
		s.fireRelics(TriggerPlayAttack, nil)
		doubled = s.Player.Relics.AttackDoubled()
	}

	if err := s.runEffects(ci, tgt, doubled); err != nil {
		// A failed resolution must not strand the card outside the zones.
		s.Player.Discard = append(s.Player.Discard, ci)
		return err
	}

	if ci.Def.RampUp > 0 {
		ci.RampBonus += ci.Def.RampUp
		s.Player.WriteBackRamp(ci)
	}

	if ci.Def.Exhaust {
		s.exhaustCard(ci, "played")
	} else {
		s.Player.Discard = append(s.Player.Discard, ci)
	}

	s.checkOutcome()
	return nil
}

// EndPlayerTurn runs the end-of-turn sequence and hands control to the
// enemy queue.
func (s *Session) EndPlayerTurn() error {
	if s.Over() {
		return ErrCombatOver
	}
	if s.Phase != PhasePlayerTurn {
		return ErrNotPlayerTurn
	}

	s.log(log.NewTurnEndEvent(s.Turn()))
	s.fireRelics(TriggerTurnEnd, nil)

	if v := s.Player.Powers[PowerMetallicize]; v > 0 {
		s.Player.GainBlock(v)
		s.log(log.NewBlockEvent(s.Turn(), s.Phase.String(), "player", v, s.Player.Block))
	}

	for _, tb := range s.Player.RevertTempBuffs() {
		s.log(log.NewStatusEvent(s.Turn(), s.Phase.String(), tb.target.Name, string(tb.status), -tb.value, tb.target.Statuses.Get(tb.status)))
	}

	// Unplayable statuses and curses sting while they sit in hand.
	for _, ci := range snapshotHand(s.Player) {
		if !ci.Def.Unplayable || len(ci.Def.Effects) == 0 {
			continue
		}
		if ci.Def.Type != CardTypeStatus && ci.Def.Type != CardTypeCurse {
			continue
		}
		if err := s.runEffects(ci, nil, false); err != nil {
			return err
		}
		if s.Over() {
			return nil
		}
	}

	for _, ci := range snapshotHand(s.Player) {
		if ci.Def.Ethereal {
			s.Player.RemoveFromHand(ci)
			s.exhaustCard(ci, "ethereal")
		}
	}

	for _, ci := range s.Player.Hand {
		s.log(log.NewDiscardEvent(s.Turn(), s.Phase.String(), ci.String()))
		s.Player.Discard = append(s.Player.Discard, ci)
	}
	s.Player.Hand = s.Player.Hand[:0]

	s.queue = s.queue[:0]
	for _, e := range s.Enemies {
		if e.Alive() {
			s.queue = append(s.queue, e)
		}
	}
	s.Phase = PhaseEnemyTurn
	return nil
}

// AdvanceEnemyQueue processes one enemy's turn. When the last enemy has
// acted it also runs the phase rollover back to the player.
func (s *Session) AdvanceEnemyQueue() error {
	if s.Over() {
		return ErrCombatOver
	}
	if s.Phase != PhaseEnemyTurn {
		return ErrNotEnemyTurn
	}

	e := s.queue[0]
	s.queue = s.queue[1:]

	if e.Alive() {
		e.StartTurn()
		intent := e.BeginTurn()
		if dealt := e.TickUpkeep(); dealt > 0 {
			s.log(log.NewPoisonEvent(s.Turn(), e.Name, dealt, e.HP))
			if !e.Alive() {
				s.log(log.NewEnemyDownEvent(s.Turn(), s.Phase.String(), e.Name))
			}
			s.checkOutcome()
		}
		if !s.Over() && e.Alive() {
			s.executeIntent(e, intent)
		}
	}

	if s.Over() {
		return nil
	}
	if len(s.queue) == 0 {
		s.endEnemyPhase()
	}
	return nil
}

// --- Phase transitions ---

func (s *Session) startPlayerTurn() {
	bonus := s.Player.Relics.EnergyBonus()
	demon := s.Player.StartTurn(bonus)
	s.log(log.NewTurnStartEvent(s.Player.TurnCount, s.Player.Energy))
	if demon > 0 {
		// StartTurn already applied the strength; this only records it.
		s.log(log.NewStatusEvent(s.Turn(), s.Phase.String(), "player", string(StatusStrength), demon, s.Player.Statuses.Get(StatusStrength)))
	}
	s.drawCards(DefaultHandSize)
	s.fireRelics(TriggerTurnStart, nil)
}

func (s *Session) endEnemyPhase() {
	s.Player.Statuses.Decay(StatusVulnerable)
	s.Player.Statuses.Decay(StatusWeak)
	s.checkOutcome()
	if s.Over() {
		return
	}
	s.Phase = PhasePlayerTurn
	s.startPlayerTurn()
}

// checkOutcome flags victory or defeat. Defeat wins ties: a dead player
// ends the combat even if the last enemy died in the same resolution.
func (s *Session) checkOutcome() {
	if s.Over() {
		return
	}
	if !s.Player.Alive() {
		s.Outcome = OutcomeDefeat
		s.log(log.NewDefeatEvent(s.Turn(), s.Phase.String()))
		return
	}
	for _, e := range s.Enemies {
		if e.Alive() {
			return
		}
	}
	s.Outcome = OutcomeVictory
	s.log(log.NewVictoryEvent(s.Turn()))
	s.fireRelics(TriggerCombatEnd, nil)
}

// --- Relic dispatch ---

// fireRelics applies every relic registered for the trigger, in
// acquisition order. attacker is the enemy whose hit caused an
// onDamaged trigger, nil otherwise.
func (s *Session) fireRelics(t Trigger, attacker *Enemy) {
	for _, ri := range s.Player.Relics.ForTrigger(t) {
		s.applyRelic(ri, attacker)
	}
}

func (s *Session) applyRelic(ri *RelicInstance, attacker *Enemy) {
	eff := ri.Def.Effect
	turn, phase := s.Turn(), s.Phase.String()
	switch eff.Op {
	case RelicHeal:
		healed := s.Player.Heal(eff.Value)
		if healed > 0 {
			s.log(log.NewRelicEvent(turn, phase, ri.Def.ID, ri.Def.Trigger.String()))
			s.log(log.NewHealEvent(turn, phase, "player", healed, s.Player.HP))
		}
	case RelicBlock:
		s.Player.GainBlock(eff.Value)
		s.log(log.NewRelicEvent(turn, phase, ri.Def.ID, ri.Def.Trigger.String()))
		s.log(log.NewBlockEvent(turn, phase, "player", eff.Value, s.Player.Block))
	case RelicEnergy:
		if ri.Def.Trigger == TriggerPassive {
			return // folded into the turn-start refill
		}
		s.Player.Energy += eff.Value
		s.log(log.NewRelicEvent(turn, phase, ri.Def.ID, ri.Def.Trigger.String()))
		s.log(log.NewEnergyEvent(turn, phase, eff.Value, s.Player.Energy))
	case RelicStrength:
		total := s.Player.Statuses.Add(StatusStrength, eff.Value)
		s.log(log.NewRelicEvent(turn, phase, ri.Def.ID, ri.Def.Trigger.String()))
		s.log(log.NewStatusEvent(turn, phase, "player", string(StatusStrength), eff.Value, total))
	case RelicDexterity:
		total := s.Player.Statuses.Add(StatusDexterity, eff.Value)
		s.log(log.NewRelicEvent(turn, phase, ri.Def.ID, ri.Def.Trigger.String()))
		s.log(log.NewStatusEvent(turn, phase, "player", string(StatusDexterity), eff.Value, total))
	case RelicDraw:
		s.log(log.NewRelicEvent(turn, phase, ri.Def.ID, ri.Def.Trigger.String()))
		s.drawCards(eff.Value)
	case RelicGold:
		s.Player.Gold += eff.Value
		s.log(log.NewRelicEvent(turn, phase, ri.Def.ID, ri.Def.Trigger.String()))
	case RelicRetaliate:
		if attacker == nil || !attacker.Alive() {
			return
		}
		hpLost, blocked := attacker.TakeDamage(eff.Value)
		s.log(log.NewRelicEvent(turn, phase, ri.Def.ID, ri.Def.Trigger.String()))
		s.log(log.NewDamageEvent(turn, phase, "player", attacker.Name, hpLost, blocked))
		if !attacker.Alive() {
			s.log(log.NewEnemyDownEvent(turn, phase, attacker.Name))
		}
		s.checkOutcome()
	case RelicDoubleAttack:
		ri.Counter++
		if eff.Every > 0 && ri.Counter%eff.Every == 0 {
			s.log(log.NewRelicEvent(turn, phase, ri.Def.ID, ri.Def.Trigger.String()))
		}
	}
}

func snapshotHand(p *Player) []*CardInstance {
	out := make([]*CardInstance, len(p.Hand))
	copy(out, p.Hand)
	return out
}
