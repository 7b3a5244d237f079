package combat

import "errors"

// Profile is the JSON boundary between the engine and whatever owns
// persistence: everything about a player that survives a combat. Ramp
// bonuses and relic counters carry over; combat zones do not.
type Profile struct {
	Name       string         `json:"name,omitempty"`
	HP         int            `json:"hp,omitempty"`
	MaxHP      int            `json:"max_hp"`
	BaseEnergy int            `json:"base_energy,omitempty"`
	Gold       int            `json:"gold,omitempty"`
	Cards      []ProfileCard  `json:"cards"`
	Relics     []ProfileRelic `json:"relics,omitempty"`
}

type ProfileCard struct {
	Card string `json:"card"`
	Ramp int    `json:"ramp,omitempty"`
}

type ProfileRelic struct {
	Relic   string `json:"relic"`
	Counter int    `json:"counter,omitempty"`
}

// BuildPlayer constructs a combat-ready player from a profile,
// resolving card and relic ids through the library. Unknown ids abort
// construction. Omitted HP and energy fall back to full HP and the
// default base.
func BuildPlayer(p Profile, lib Library) (*Player, error) {
	if p.MaxHP <= 0 {
		return nil, errors.New("profile requires a positive max hp")
	}
	pl := NewPlayer(p.MaxHP)
	if p.HP > 0 && p.HP <= p.MaxHP {
		pl.HP = p.HP
	}
	if p.BaseEnergy > 0 {
		pl.BaseEnergy = p.BaseEnergy
	}
	pl.Gold = p.Gold
	for _, pc := range p.Cards {
		def, err := lib.Card(pc.Card)
		if err != nil {
			return nil, err
		}
		ci := pl.AddToMaster(def)
		ci.RampBonus = pc.Ramp
	}
	for _, pr := range p.Relics {
		def, err := lib.Relic(pr.Relic)
		if err != nil {
			return nil, err
		}
		ri := pl.Relics.Add(def)
		ri.Counter = pr.Counter
	}
	return pl, nil
}

// Snapshot emits the player's current profile. Taken between combats it
// round-trips through BuildPlayer.
func (p *Player) Snapshot() Profile {
	prof := Profile{
		HP:         p.HP,
		MaxHP:      p.MaxHP,
		BaseEnergy: p.BaseEnergy,
		Gold:       p.Gold,
		Cards:      make([]ProfileCard, 0, len(p.Master)),
	}
	for _, ci := range p.Master {
		prof.Cards = append(prof.Cards, ProfileCard{Card: ci.Def.ID, Ramp: ci.RampBonus})
	}
	for _, ri := range p.Relics.All() {
		prof.Relics = append(prof.Relics, ProfileRelic{Relic: ri.Def.ID, Counter: ri.Counter})
	}
	return prof
}
