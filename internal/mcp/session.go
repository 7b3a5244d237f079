// Package mcp exposes deckfall combats as MCP tools, so an agent can
// fight a combat over stdio.
package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"deckfall/internal/combat"
	"deckfall/internal/content"
	"deckfall/internal/log"
	"deckfall/internal/view"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events  []view.EventView `json:"events"`
	State   *view.StateView  `json:"state,omitempty"`
	Outcome string           `json:"outcome,omitempty"`
	Over    bool             `json:"combat_over"`
}

// CombatSession holds the state of a single MCP combat session.
type CombatSession struct {
	mu      sync.Mutex
	combat  *combat.Session
	logger  *log.MemoryLogger
	lastSeq int
}

// NewCombatSession builds the player from a loadout and starts a combat
// against the given encounter, or against an explicit enemy list when
// one is provided.
func NewCombatSession(loadoutID, encounter string, enemies []string, seed int64) (*CombatSession, error) {
	lo := resolveLoadout(loadoutID)
	if lo == nil {
		return nil, fmt.Errorf("unknown loadout %q", loadoutID)
	}
	lib := content.Default()
	player, err := combat.BuildPlayer(lo.Profile(), lib)
	if err != nil {
		return nil, fmt.Errorf("build player: %w", err)
	}

	logger := log.NewMemoryLogger()
	sess, err := combat.NewSession(combat.SessionConfig{
		Player:    player,
		Enemies:   enemies,
		Encounter: encounter,
		Library:   lib,
		Logger:    logger,
		Seed:      seed,
	})
	if err != nil {
		return nil, err
	}
	return &CombatSession{combat: sess, logger: logger}, nil
}

// play runs one card play under the session lock.
func (s *CombatSession) play(card, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.combat.PlayCard(card, target)
}

// endTurn ends the player turn under the session lock.
func (s *CombatSession) endTurn() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.combat.EndPlayerTurn()
}

// advance processes one queued enemy, or the whole queue when all is
// set.
func (s *CombatSession) advance(all bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if err := s.combat.AdvanceEnemyQueue(); err != nil {
			return err
		}
		if !all || s.combat.PendingActions() == 0 || s.combat.Over() {
			return nil
		}
	}
}

// over reports whether the combat has been decided.
func (s *CombatSession) over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.combat.Over()
}

// buildResponse snapshots the state and drains the events the agent has
// not seen yet.
func (s *CombatSession) buildResponse() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.logger.EventsSince(s.lastSeq)
	if n := len(events); n > 0 {
		s.lastSeq = events[n-1].Seq
	}

	resp := &ToolResponse{
		Events: view.BuildEventViews(events),
		State:  view.BuildStateView(s.combat),
		Over:   s.combat.Over(),
	}
	if s.combat.Outcome != combat.OutcomeNone {
		resp.Outcome = s.combat.Outcome.String()
	}
	return resp
}

// resolveLoadout looks the id up in the loadouts file first, then the
// built-ins. An empty id picks the default loadout.
func resolveLoadout(id string) *content.Loadout {
	if id == "" {
		id = "vanguard"
	}
	if loadoutsFile != "" {
		if lf, err := content.ParseLoadoutFile(loadoutsFile); err == nil {
			if lo := lf.ByName(id); lo != nil {
				return lo
			}
		}
	}
	return content.Builtin(id)
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
