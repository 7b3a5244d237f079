// Package view builds the JSON-facing representations of a combat that
// the CLI, web, and MCP hosts all share. Views are plain snapshots;
// mutating them never touches the engine.
package view

import (
	"deckfall/internal/combat"
	"deckfall/internal/log"
)

// --- View types ---

// CardView describes one card instance in hand.
type CardView struct {
	ID          int    `json:"id"`
	Card        string `json:"card"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Cost        int    `json:"cost"`
	Description string `json:"description,omitempty"`
	Ramp        int    `json:"ramp,omitempty"`
	Exhaust     bool   `json:"exhaust,omitempty"`
	Ethereal    bool   `json:"ethereal,omitempty"`
	Unplayable  bool   `json:"unplayable,omitempty"`
	NeedsTarget bool   `json:"needs_target,omitempty"`
}

// EnemyView describes one enemy, including its telegraphed intent with
// a live damage preview.
type EnemyView struct {
	Index        int            `json:"index"`
	Enemy        string         `json:"enemy"`
	Name         string         `json:"name"`
	HP           int            `json:"hp"`
	MaxHP        int            `json:"max_hp"`
	Block        int            `json:"block,omitempty"`
	Alive        bool           `json:"alive"`
	Statuses     map[string]int `json:"statuses,omitempty"`
	Intent       string         `json:"intent,omitempty"`
	IntentDamage int            `json:"intent_damage,omitempty"`
	IntentHits   int            `json:"intent_hits,omitempty"`
}

// RelicView describes one equipped relic.
type RelicView struct {
	Relic       string `json:"relic"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Trigger     string `json:"trigger"`
	Counter     int    `json:"counter,omitempty"`
}

// PlayerView describes the player side of the combat.
type PlayerView struct {
	HP           int            `json:"hp"`
	MaxHP        int            `json:"max_hp"`
	Block        int            `json:"block,omitempty"`
	Energy       int            `json:"energy"`
	BaseEnergy   int            `json:"base_energy"`
	Gold         int            `json:"gold,omitempty"`
	Statuses     map[string]int `json:"statuses,omitempty"`
	Powers       map[string]int `json:"powers,omitempty"`
	Hand         []CardView     `json:"hand"`
	DrawCount    int            `json:"draw_count"`
	DiscardCount int            `json:"discard_count"`
	ExhaustCount int            `json:"exhaust_count"`
	NoDraw       bool           `json:"no_draw,omitempty"`
	Relics       []RelicView    `json:"relics,omitempty"`
}

// StateView is the whole combat from the host's point of view.
type StateView struct {
	Turn           int         `json:"turn"`
	Phase          string      `json:"phase"`
	Outcome        string      `json:"outcome,omitempty"`
	Over           bool        `json:"over,omitempty"`
	PendingEnemies int         `json:"pending_enemies,omitempty"`
	Player         PlayerView  `json:"player"`
	Enemies        []EnemyView `json:"enemies"`
}

// EventView is one combat log event for host consumption.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Phase   string `json:"phase,omitempty"`
	Type    string `json:"type"`
	Actor   string `json:"actor,omitempty"`
	Target  string `json:"target,omitempty"`
	Card    string `json:"card,omitempty"`
	Amount  int    `json:"amount,omitempty"`
	Details string `json:"details"`
}

// --- Builders ---

// BuildStateView snapshots a session.
func BuildStateView(s *combat.Session) *StateView {
	sv := &StateView{
		Turn:           s.Turn(),
		Phase:          s.Phase.String(),
		Over:           s.Over(),
		PendingEnemies: s.PendingActions(),
		Player:         buildPlayerView(s.Player),
	}
	if s.Outcome != combat.OutcomeNone {
		sv.Outcome = s.Outcome.String()
	}
	sv.Enemies = make([]EnemyView, 0, len(s.Enemies))
	for i, e := range s.Enemies {
		sv.Enemies = append(sv.Enemies, BuildEnemyView(i, e, s.Player))
	}
	return sv
}

func buildPlayerView(p *combat.Player) PlayerView {
	pv := PlayerView{
		HP:           p.HP,
		MaxHP:        p.MaxHP,
		Block:        p.Block,
		Energy:       p.Energy,
		BaseEnergy:   p.BaseEnergy,
		Gold:         p.Gold,
		Statuses:     statusMap(p.Statuses),
		Powers:       powerMap(p.Powers),
		Hand:         make([]CardView, 0, len(p.Hand)),
		DrawCount:    len(p.Draw),
		DiscardCount: len(p.Discard),
		ExhaustCount: len(p.Exhaust),
		NoDraw:       p.NoDraw,
	}
	for _, ci := range p.Hand {
		pv.Hand = append(pv.Hand, BuildCardView(ci))
	}
	for _, ri := range p.Relics.All() {
		pv.Relics = append(pv.Relics, BuildRelicView(ri))
	}
	return pv
}

// BuildCardView snapshots one card instance.
func BuildCardView(ci *combat.CardInstance) CardView {
	return CardView{
		ID:          ci.ID,
		Card:        ci.Def.ID,
		Name:        ci.Def.Name,
		Type:        ci.Def.Type.String(),
		Cost:        ci.Def.Cost,
		Description: ci.Def.Description,
		Ramp:        ci.RampBonus,
		Exhaust:     ci.Def.Exhaust,
		Ethereal:    ci.Def.Ethereal,
		Unplayable:  ci.Def.Unplayable,
		NeedsTarget: ci.Def.NeedsTarget(),
	}
}

// BuildEnemyView snapshots one enemy. Dead enemies keep their slot so
// target indices stay stable, but carry no intent.
func BuildEnemyView(index int, e *combat.Enemy, p *combat.Player) EnemyView {
	ev := EnemyView{
		Index:    index,
		Enemy:    e.Def.ID,
		Name:     e.Name,
		HP:       e.HP,
		MaxHP:    e.MaxHP,
		Block:    e.Block,
		Alive:    e.Alive(),
		Statuses: statusMap(e.Statuses),
	}
	if e.Alive() {
		intent := e.NextIntent()
		ev.Intent = intent.String()
		ev.IntentDamage = e.PreviewDamage(&p.Actor)
		if ev.IntentDamage > 0 {
			ev.IntentHits = intent.Hits()
		}
	}
	return ev
}

// BuildRelicView snapshots one relic instance.
func BuildRelicView(ri *combat.RelicInstance) RelicView {
	return RelicView{
		Relic:       ri.Def.ID,
		Name:        ri.Def.Name,
		Description: ri.Def.Description,
		Trigger:     ri.Def.Trigger.String(),
		Counter:     ri.Counter,
	}
}

// BuildEventView converts one log event.
func BuildEventView(e log.CombatEvent) EventView {
	return EventView{
		Seq:     e.Seq,
		Turn:    e.Turn,
		Phase:   e.Phase,
		Type:    e.Type.String(),
		Actor:   e.Actor,
		Target:  e.Target,
		Card:    e.Card,
		Amount:  e.Amount,
		Details: e.Details,
	}
}

// BuildEventViews converts a batch of log events. Never returns nil, so
// JSON encodes an empty list rather than null.
func BuildEventViews(events []log.CombatEvent) []EventView {
	out := make([]EventView, 0, len(events))
	for _, e := range events {
		out = append(out, BuildEventView(e))
	}
	return out
}

func statusMap(set combat.StatusSet) map[string]int {
	if len(set) == 0 {
		return nil
	}
	out := make(map[string]int, len(set))
	for k, v := range set {
		out[string(k)] = v
	}
	return out
}

func powerMap(powers map[combat.Power]int) map[string]int {
	if len(powers) == 0 {
		return nil
	}
	out := make(map[string]int, len(powers))
	for k, v := range powers {
		out[string(k)] = v
	}
	return out
}
