package content

import (
	"fmt"
	"sort"

	"deckfall/internal/combat"
)

// Library indexes the content tables and resolves ids for the engine.
// It is immutable once built and safe for concurrent reads.
type Library struct {
	cards      map[string]*combat.CardDefinition
	enemies    map[string]*combat.EnemyDefinition
	relics     map[string]*combat.RelicDefinition
	encounters map[string]*combat.EncounterDefinition
	attackIDs  []string
}

var defaultLibrary = NewLibrary(Cards, Enemies, Relics, Encounters)

// Default returns the library over the builtin content tables.
func Default() *Library {
	return defaultLibrary
}

// NewLibrary indexes the given tables. The tables are authored data, so
// a duplicate id is a content bug and panics.
func NewLibrary(cards []*combat.CardDefinition, enemies []*combat.EnemyDefinition, relics []*combat.RelicDefinition, encounters []*combat.EncounterDefinition) *Library {
	l := &Library{
		cards:      make(map[string]*combat.CardDefinition, len(cards)),
		enemies:    make(map[string]*combat.EnemyDefinition, len(enemies)),
		relics:     make(map[string]*combat.RelicDefinition, len(relics)),
		encounters: make(map[string]*combat.EncounterDefinition, len(encounters)),
	}
	for _, c := range cards {
		if _, dup := l.cards[c.ID]; dup {
			panic(fmt.Sprintf("duplicate card id %q", c.ID))
		}
		l.cards[c.ID] = c
		if c.Type == combat.CardTypeAttack {
			l.attackIDs = append(l.attackIDs, c.ID)
		}
	}
	sort.Strings(l.attackIDs)
	for _, e := range enemies {
		if _, dup := l.enemies[e.ID]; dup {
			panic(fmt.Sprintf("duplicate enemy id %q", e.ID))
		}
		l.enemies[e.ID] = e
	}
	for _, r := range relics {
		if _, dup := l.relics[r.ID]; dup {
			panic(fmt.Sprintf("duplicate relic id %q", r.ID))
		}
		l.relics[r.ID] = r
	}
	for _, enc := range encounters {
		if _, dup := l.encounters[enc.ID]; dup {
			panic(fmt.Sprintf("duplicate encounter id %q", enc.ID))
		}
		l.encounters[enc.ID] = enc
	}
	return l
}

// --- combat.Library ---

func (l *Library) Card(id string) (*combat.CardDefinition, error) {
	def, ok := l.cards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", combat.ErrUnknownCard, id)
	}
	return def, nil
}

func (l *Library) Enemy(id string) (*combat.EnemyDefinition, error) {
	def, ok := l.enemies[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", combat.ErrUnknownEnemy, id)
	}
	return def, nil
}

func (l *Library) Relic(id string) (*combat.RelicDefinition, error) {
	def, ok := l.relics[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", combat.ErrUnknownRelic, id)
	}
	return def, nil
}

func (l *Library) Encounter(id string) (*combat.EncounterDefinition, error) {
	def, ok := l.encounters[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", combat.ErrUnknownEncounter, id)
	}
	return def, nil
}

// AttackCardIDs returns the attack-card pool in a fixed sorted order,
// so random picks replay under a fixed seed. Callers must not mutate it.
func (l *Library) AttackCardIDs() []string {
	return l.attackIDs
}

// --- Listing accessors for hosts ---

func (l *Library) AllCards() []*combat.CardDefinition {
	out := make([]*combat.CardDefinition, 0, len(l.cards))
	for _, c := range l.cards {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Library) AllEnemies() []*combat.EnemyDefinition {
	out := make([]*combat.EnemyDefinition, 0, len(l.enemies))
	for _, e := range l.enemies {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Library) AllRelics() []*combat.RelicDefinition {
	out := make([]*combat.RelicDefinition, 0, len(l.relics))
	for _, r := range l.relics {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Library) AllEncounters() []*combat.EncounterDefinition {
	out := make([]*combat.EncounterDefinition, 0, len(l.encounters))
	for _, e := range l.encounters {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
