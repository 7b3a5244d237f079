package combat

import "math/rand"

const (
	DefaultHandSize   = 5
	DefaultBaseEnergy = 3
	DefaultMaxHP      = 72
)

// tempBuff records where a temporary buff landed so the owner's end of
// turn can revert exactly the magnitude that was applied.
type tempBuff struct {
	target *Actor
	status Status
	value  int
}

// Player is the deck-carrying side of a combat. The four combat zones
// (draw, hand, discard, exhaust) are rebuilt from the master collection
// at combat start; the master itself never enters play.
type Player struct {
	Actor
	Energy     int
	BaseEnergy int
	Gold       int

	Master []*CardInstance // permanent collection, template for combat zones
	Relics *RelicSet

	Draw    []*CardInstance // top of pile is last element (pop from end)
	Hand    []*CardInstance
	Discard []*CardInstance
	Exhaust []*CardInstance

	Powers        map[Power]int
	NoDraw        bool // set by noMoreDraw, cleared at start of turn
	TurnCount     int
	AttacksPlayed int

	reversals []tempBuff
	nextID    int
}

// NewPlayer creates a player with an empty master collection.
func NewPlayer(maxHP int) *Player {
	return &Player{
		Actor: Actor{
			Name:     "player",
			HP:       maxHP,
			MaxHP:    maxHP,
			Statuses: NewStatusSet(),
		},
		BaseEnergy: DefaultBaseEnergy,
		Powers:     make(map[Power]int),
		Relics:     NewRelicSet(),
	}
}

// AddToMaster appends a fresh instance of def to the master collection.
func (p *Player) AddToMaster(def *CardDefinition) *CardInstance {
	p.nextID++
	ci := &CardInstance{ID: p.nextID, Def: def}
	p.Master = append(p.Master, ci)
	return ci
}

// NextCardID allocates an instance id for a card created mid-combat.
// Such ids never collide with master ids, so ramp writeback cannot
// mistake a combat-created copy for a collection entry.
func (p *Player) NextCardID() int {
	p.nextID++
	return p.nextID
}

// StartCombat rebuilds the combat zones from the master collection and
// resets all combat-scoped state. Relic counters are left alone; they
// persist across combats.
func (p *Player) StartCombat(rng *rand.Rand, noShuffle bool) {
	p.Draw = p.Draw[:0]
	p.Hand = nil
	p.Discard = nil
	p.Exhaust = nil
	for _, m := range p.Master {
		p.Draw = append(p.Draw, &CardInstance{ID: m.ID, Def: m.Def, RampBonus: m.RampBonus})
	}
	if !noShuffle {
		rng.Shuffle(len(p.Draw), func(i, j int) {
			p.Draw[i], p.Draw[j] = p.Draw[j], p.Draw[i]
		})
	}

	p.Block = 0
	p.Statuses.Clear()
	p.Powers = make(map[Power]int)
	p.Energy = 0
	p.NoDraw = false
	p.TurnCount = 0
	p.AttacksPlayed = 0
	p.reversals = nil
}

// StartTurn runs the player's start-of-turn upkeep: block reset (unless
// barricade), energy refill, demonForm strength. Drawing is left to the
// session so each draw can be logged. Returns the strength granted by
// demonForm, 0 if none.
func (p *Player) StartTurn(bonusEnergy int) int {
	p.TurnCount++
	if p.Powers[PowerBarricade] == 0 {
		p.Block = 0
	}
	p.Energy = p.BaseEnergy + bonusEnergy
	p.NoDraw = false
	if v := p.Powers[PowerDemonForm]; v > 0 {
		p.Statuses.Add(StatusStrength, v)
		return v
	}
	return 0
}

// --- Zone movement primitives ---

// DrawOne pops the top of the draw pile into the hand, reshuffling the
// discard pile in first when the draw pile is empty. Returns the drawn
// card (nil when both piles are empty) and the number of cards
// reshuffled (0 when no reshuffle happened).
func (p *Player) DrawOne(rng *rand.Rand) (*CardInstance, int) {
	reshuffled := 0
	if len(p.Draw) == 0 {
		if len(p.Discard) == 0 {
			return nil, 0
		}
		reshuffled = len(p.Discard)
		p.Draw = append(p.Draw, p.Discard...)
		p.Discard = nil
		rng.Shuffle(len(p.Draw), func(i, j int) {
			p.Draw[i], p.Draw[j] = p.Draw[j], p.Draw[i]
		})
	}
	card := p.Draw[len(p.Draw)-1]
	p.Draw = p.Draw[:len(p.Draw)-1]
	p.Hand = append(p.Hand, card)
	return card, reshuffled
}

// PopDraw removes and returns the top card of the draw pile, nil when empty.
func (p *Player) PopDraw() *CardInstance {
	if len(p.Draw) == 0 {
		return nil
	}
	card := p.Draw[len(p.Draw)-1]
	p.Draw = p.Draw[:len(p.Draw)-1]
	return card
}

// PushDraw places a card on top of the draw pile.
func (p *Player) PushDraw(card *CardInstance) {
	p.Draw = append(p.Draw, card)
}

// PopDiscard removes and returns the most recently discarded card, nil when empty.
func (p *Player) PopDiscard() *CardInstance {
	if len(p.Discard) == 0 {
		return nil
	}
	card := p.Discard[len(p.Discard)-1]
	p.Discard = p.Discard[:len(p.Discard)-1]
	return card
}

// FindInHand returns the hand card with the given instance id, nil if absent.
func (p *Player) FindInHand(id int) *CardInstance {
	for _, c := range p.Hand {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// RemoveFromHand removes a card from the hand by instance id.
// Reports whether the card was present.
func (p *Player) RemoveFromHand(card *CardInstance) bool {
	for i, c := range p.Hand {
		if c.ID == card.ID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// --- Temp buffs ---

// RegisterReversal remembers a temporary buff for end-of-turn reversal.
func (p *Player) RegisterReversal(target *Actor, status Status, value int) {
	p.reversals = append(p.reversals, tempBuff{target: target, status: status, value: value})
}

// RevertTempBuffs undoes all pending temporary buffs and clears the
// list. Returns the reverted entries for logging.
func (p *Player) RevertTempBuffs() []tempBuff {
	applied := p.reversals
	p.reversals = nil
	for _, tb := range applied {
		tb.target.Statuses.Add(tb.status, -tb.value)
	}
	return applied
}

// --- Ramp persistence ---

// WriteBackRamp copies a combat instance's ramp bonus onto the master
// collection entry with the same id. Mid-combat copies have no master
// entry and are skipped.
func (p *Player) WriteBackRamp(ci *CardInstance) {
	for _, m := range p.Master {
		if m.ID == ci.ID {
			m.RampBonus = ci.RampBonus
			return
		}
	}
}

// CombatCardCount is the number of card instances across the four
// combat zones. Zone conservation means this only changes when a card
// is created mid-combat, never when cards move.
func (p *Player) CombatCardCount() int {
	return len(p.Draw) + len(p.Hand) + len(p.Discard) + len(p.Exhaust)
}
