package content

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"deckfall/internal/combat"
)

// LoadoutFile is the top-level YAML structure: a file carries one or
// more loadouts.
type LoadoutFile struct {
	Loadouts []Loadout `yaml:"loadouts"`
}

// Loadout names a starting player build: collection, relics, resources.
type Loadout struct {
	Name   string        `yaml:"name"`
	MaxHP  int           `yaml:"max_hp"`
	Gold   int           `yaml:"gold"`
	Cards  []LoadoutCard `yaml:"cards"`
	Relics []string      `yaml:"relics"`
}

// LoadoutCard is a card id and its count in the collection. A missing
// count means one copy.
type LoadoutCard struct {
	Card  string `yaml:"card"`
	Count int    `yaml:"count"`
}

// ParseLoadouts parses loadout YAML. Card and relic ids are not
// resolved here; unknown ids surface when the profile is built into a
// player.
func ParseLoadouts(data []byte) (*LoadoutFile, error) {
	var lf LoadoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse loadout YAML: %w", err)
	}
	return &lf, nil
}

// ParseLoadoutFile reads and parses a loadout YAML file.
func ParseLoadoutFile(path string) (*LoadoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLoadouts(data)
}

// ByName returns the named loadout, nil when absent.
func (f *LoadoutFile) ByName(name string) *Loadout {
	for i := range f.Loadouts {
		if f.Loadouts[i].Name == name {
			return &f.Loadouts[i]
		}
	}
	return nil
}

// Profile flattens the loadout into an engine profile.
func (l *Loadout) Profile() combat.Profile {
	p := combat.Profile{
		Name:  l.Name,
		MaxHP: l.MaxHP,
		Gold:  l.Gold,
	}
	for _, lc := range l.Cards {
		count := lc.Count
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			p.Cards = append(p.Cards, combat.ProfileCard{Card: lc.Card})
		}
	}
	for _, id := range l.Relics {
		p.Relics = append(p.Relics, combat.ProfileRelic{Relic: id})
	}
	return p
}

// --- Builtin loadouts ---

// Builtins are the loadouts every host offers without a YAML file,
// keyed by id.
var Builtins = map[string]*Loadout{
	"vanguard": {
		Name:  "Vanguard",
		MaxHP: 72,
		Gold:  99,
		Cards: []LoadoutCard{
			{Card: "strike", Count: 5},
			{Card: "defend", Count: 4},
			{Card: "bash"},
		},
		Relics: []string{"blood-vial"},
	},
	"tempest": {
		Name:  "Tempest",
		MaxHP: 66,
		Gold:  50,
		Cards: []LoadoutCard{
			{Card: "twin-fangs", Count: 2},
			{Card: "cleave"},
			{Card: "echo-strike"},
			{Card: "surge"},
			{Card: "shrug", Count: 2},
			{Card: "tunnel-vision"},
			{Card: "defend", Count: 2},
		},
		Relics: []string{"war-drum", "ember-core"},
	},
	"warden": {
		Name:  "Warden",
		MaxHP: 80,
		Gold:  75,
		Cards: []LoadoutCard{
			{Card: "strike", Count: 2},
			{Card: "defend", Count: 4},
			{Card: "grit", Count: 2},
			{Card: "last-stand"},
			{Card: "recall-blow", Count: 2},
			{Card: "molten-skin"},
		},
		Relics: []string{"barbed-carapace", "frost-shell"},
	},
}

// Builtin returns the builtin loadout with the given id, nil when absent.
func Builtin(id string) *Loadout {
	return Builtins[id]
}

// BuiltinIDs lists the builtin loadout ids in sorted order.
func BuiltinIDs() []string {
	ids := make([]string, 0, len(Builtins))
	for id := range Builtins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
