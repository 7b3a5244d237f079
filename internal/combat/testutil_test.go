package combat

import (
	"fmt"
	"testing"

	"deckfall/internal/log"
)

// testLibrary is an in-memory Library each test stocks with exactly the
// definitions it needs.
type testLibrary struct {
	cards      map[string]*CardDefinition
	enemies    map[string]*EnemyDefinition
	relics     map[string]*RelicDefinition
	encounters map[string]*EncounterDefinition
	attackIDs  []string
}

func newTestLibrary() *testLibrary {
	return &testLibrary{
		cards:      make(map[string]*CardDefinition),
		enemies:    make(map[string]*EnemyDefinition),
		relics:     make(map[string]*RelicDefinition),
		encounters: make(map[string]*EncounterDefinition),
	}
}

func (l *testLibrary) addCards(defs ...*CardDefinition) *testLibrary {
	for _, d := range defs {
		l.cards[d.ID] = d
		if d.Type == CardTypeAttack {
			l.attackIDs = append(l.attackIDs, d.ID)
		}
	}
	return l
}

func (l *testLibrary) addEnemies(defs ...*EnemyDefinition) *testLibrary {
	for _, d := range defs {
		l.enemies[d.ID] = d
	}
	return l
}

func (l *testLibrary) addRelics(defs ...*RelicDefinition) *testLibrary {
	for _, d := range defs {
		l.relics[d.ID] = d
	}
	return l
}

func (l *testLibrary) addEncounters(defs ...*EncounterDefinition) *testLibrary {
	for _, d := range defs {
		l.encounters[d.ID] = d
	}
	return l
}

func (l *testLibrary) Card(id string) (*CardDefinition, error) {
	if d, ok := l.cards[id]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCard, id)
}

func (l *testLibrary) Enemy(id string) (*EnemyDefinition, error) {
	if d, ok := l.enemies[id]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEnemy, id)
}

func (l *testLibrary) Relic(id string) (*RelicDefinition, error) {
	if d, ok := l.relics[id]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRelic, id)
}

func (l *testLibrary) Encounter(id string) (*EncounterDefinition, error) {
	if d, ok := l.encounters[id]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncounter, id)
}

func (l *testLibrary) AttackCardIDs() []string {
	return l.attackIDs
}

// --- Test content helpers ---

func attackDef(id string, cost, damage int) *CardDefinition {
	return &CardDefinition{
		ID:      id,
		Name:    id,
		Type:    CardTypeAttack,
		Cost:    cost,
		Effects: []Effect{{Op: OpDamage, Target: TargetSingle, Value: damage}},
	}
}

func blockDef(id string, cost, block int) *CardDefinition {
	return &CardDefinition{
		ID:      id,
		Name:    id,
		Type:    CardTypeSkill,
		Cost:    cost,
		Effects: []Effect{{Op: OpBlock, Value: block}},
	}
}

func skillDef(id string, cost int, effects ...Effect) *CardDefinition {
	return &CardDefinition{ID: id, Name: id, Type: CardTypeSkill, Cost: cost, Effects: effects}
}

// dummyDef is an enemy with fixed HP that only raises block, so turn
// rollovers never hurt the player.
func dummyDef(id string, hp int) *EnemyDefinition {
	return &EnemyDefinition{
		ID:      id,
		Name:    id,
		MinHP:   hp,
		MaxHP:   hp,
		Intents: []Intent{{Kind: IntentBlock, Block: 0}},
	}
}

func enemyDef(id string, hp int, intents ...Intent) *EnemyDefinition {
	return &EnemyDefinition{ID: id, Name: id, MinHP: hp, MaxHP: hp, Intents: intents}
}

func relicDef(id string, trigger Trigger, eff RelicEffect) *RelicDefinition {
	return &RelicDefinition{ID: id, Name: id, Trigger: trigger, Effect: eff}
}

// testPlayer builds a player whose master collection holds the given
// definitions, one instance each, in order. With NoShuffle the draw
// pile keeps this order and the top of the pile is the LAST entry, so
// the opening hand is the last five cards, last first.
func testPlayer(maxHP int, defs ...*CardDefinition) *Player {
	p := NewPlayer(maxHP)
	for _, d := range defs {
		p.AddToMaster(d)
	}
	return p
}

// startCombat builds a deterministic session: fixed seed, no shuffle,
// every event captured.
func startCombat(t *testing.T, p *Player, lib *testLibrary, enemyIDs ...string) (*Session, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	s, err := NewSession(SessionConfig{
		Player:    p,
		Enemies:   enemyIDs,
		Library:   lib,
		Logger:    logger,
		Seed:      1,
		NoShuffle: true,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, logger
}

// handCard finds a hand card by definition id.
func handCard(t *testing.T, p *Player, defID string) *CardInstance {
	t.Helper()
	for _, ci := range p.Hand {
		if ci.Def.ID == defID {
			return ci
		}
	}
	t.Fatalf("card %s not in hand %v", defID, handIDs(p))
	return nil
}

func handIDs(p *Player) []string {
	ids := make([]string, 0, len(p.Hand))
	for _, ci := range p.Hand {
		ids = append(ids, ci.Def.ID)
	}
	return ids
}

// mustPlay plays a hand card by definition id and fails the test on
// rejection.
func mustPlay(t *testing.T, s *Session, defID string, target int) {
	t.Helper()
	ci := handCard(t, s.Player, defID)
	if err := s.PlayCard(ci.ID, target); err != nil {
		t.Logf("Event log:\n%s", log.FormatAll(s.Logger.Events()))
		t.Fatalf("play %s: %v", defID, err)
	}
}

// endAndResolve ends the player turn and drains the whole enemy queue.
func endAndResolve(t *testing.T, s *Session) {
	t.Helper()
	if err := s.EndPlayerTurn(); err != nil {
		t.Fatalf("end turn: %v", err)
	}
	for s.PendingActions() > 0 && !s.Over() {
		if err := s.AdvanceEnemyQueue(); err != nil {
			t.Fatalf("advance enemy queue: %v", err)
		}
	}
}

// damageAmounts extracts the hpLost column of every damage event dealt
// by the given actor, in order.
func damageAmounts(logger *log.MemoryLogger, actor string) []int {
	var out []int
	for _, e := range logger.EventsOfType(log.EventDamage) {
		if e.Actor == actor {
			out = append(out, e.Amount)
		}
	}
	return out
}
