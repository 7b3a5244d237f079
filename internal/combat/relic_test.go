package combat

import (
	"testing"

	"deckfall/internal/log"
)

// TestCombatStartRelicGrantsStrength: a combat-start relic fires during
// session construction, before the first card is played.
func TestCombatStartRelicGrantsStrength(t *testing.T) {
	strike := attackDef("strike", 1, 6)
	lib := newTestLibrary().
		addCards(strike).
		addEnemies(dummyDef("dummy", 20))

	p := testPlayer(50, strike, strike, strike, strike, strike)
	p.Relics.Add(relicDef("whetstone", TriggerCombatStart, RelicEffect{Op: RelicStrength, Value: 1}))
	s, logger := startCombat(t, p, lib, "dummy")

	if got := p.Statuses.Get(StatusStrength); got != 1 {
		t.Fatalf("strength = %d at combat start, want 1", got)
	}
	mustPlay(t, s, "strike", 0)
	if dmg := damageAmounts(logger, "player"); len(dmg) != 1 || dmg[0] != 7 {
		t.Errorf("damage events = %v, want [7]", dmg)
	}
	if events := logger.EventsOfType(log.EventRelicTrigger); len(events) != 1 {
		t.Errorf("relic trigger events = %d, want 1", len(events))
	}
}

// TestTurnStartRelicDrawsExtra: a turn-start draw relic widens the
// opening hand.
func TestTurnStartRelicDrawsExtra(t *testing.T) {
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(defend).
		addEnemies(dummyDef("dummy", 20))

	p := testPlayer(50, defend, defend, defend, defend, defend, defend, defend)
	p.Relics.Add(relicDef("quill", TriggerTurnStart, RelicEffect{Op: RelicDraw, Value: 1}))
	s, _ := startCombat(t, p, lib, "dummy")

	if len(p.Hand) != 6 {
		t.Errorf("hand size = %d, want 6 with the draw relic", len(p.Hand))
	}
	endAndResolve(t, s)
	if len(p.Hand) != 6 {
		t.Errorf("hand size = %d on turn two, want 6 again", len(p.Hand))
	}
}

// TestTurnEndRelicBlocks: a turn-end block relic raises block before
// the enemies act.
func TestTurnEndRelicBlocks(t *testing.T) {
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(defend).
		addEnemies(dummyDef("dummy", 20))

	p := testPlayer(50, defend, defend, defend, defend, defend)
	p.Relics.Add(relicDef("frost", TriggerTurnEnd, RelicEffect{Op: RelicBlock, Value: 3}))
	s, _ := startCombat(t, p, lib, "dummy")

	if err := s.EndPlayerTurn(); err != nil {
		t.Fatalf("end turn: %v", err)
	}
	if p.Block != 3 {
		t.Errorf("block = %d entering the enemy phase, want 3", p.Block)
	}
}

// TestPassiveEnergyRelic: a passive energy relic folds into the
// turn-start refill instead of firing as an event.
func TestPassiveEnergyRelic(t *testing.T) {
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(defend).
		addEnemies(dummyDef("dummy", 20))

	p := testPlayer(50, defend, defend, defend, defend, defend)
	p.Relics.Add(relicDef("ember", TriggerPassive, RelicEffect{Op: RelicEnergy, Value: 1}))
	s, _ := startCombat(t, p, lib, "dummy")

	if p.Energy != 4 {
		t.Errorf("energy = %d, want 4 with the passive bonus", p.Energy)
	}
	endAndResolve(t, s)
	if p.Energy != 4 {
		t.Errorf("energy = %d on turn two, want 4 again", p.Energy)
	}
}

// TestDoubleAttackEveryThird: the periodic relic counts attacks only
// and doubles exactly the third, carrying its counter across turns.
func TestDoubleAttackEveryThird(t *testing.T) {
	strike := attackDef("strike", 1, 6)
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(strike, defend).
		addEnemies(dummyDef("dummy", 100))

	p := testPlayer(50, strike, strike, strike, strike, strike, strike, defend)
	p.Relics.Add(relicDef("drum", TriggerPlayAttack, RelicEffect{Op: RelicDoubleAttack, Every: 3}))
	s, logger := startCombat(t, p, lib, "dummy")

	// Turn one: the defend does not advance the counter.
	mustPlay(t, s, "defend", -1)
	mustPlay(t, s, "strike", 0)
	mustPlay(t, s, "strike", 0)
	endAndResolve(t, s)

	// Turn two: the first strike is the third attack overall.
	mustPlay(t, s, "strike", 0)
	mustPlay(t, s, "strike", 0)
	mustPlay(t, s, "strike", 0)

	want := []int{6, 6, 12, 6, 6}
	dmg := damageAmounts(logger, "player")
	if len(dmg) != len(want) {
		t.Fatalf("damage events = %v, want %v", dmg, want)
	}
	for i := range want {
		if dmg[i] != want[i] {
			t.Errorf("hit %d = %d, want %d", i, dmg[i], want[i])
		}
	}
	if events := logger.EventsOfType(log.EventRelicTrigger); len(events) != 1 {
		t.Errorf("relic trigger events = %d, want only the doubled attack", len(events))
	}
}

// TestDoubleAttackCounterPersists: a counter carried in from an earlier
// combat keeps its progress.
func TestDoubleAttackCounterPersists(t *testing.T) {
	strike := attackDef("strike", 1, 6)
	lib := newTestLibrary().
		addCards(strike).
		addEnemies(dummyDef("dummy", 100))

	p := testPlayer(50, strike, strike, strike, strike, strike)
	ri := p.Relics.Add(relicDef("drum", TriggerPlayAttack, RelicEffect{Op: RelicDoubleAttack, Every: 3}))
	ri.Counter = 2
	s, logger := startCombat(t, p, lib, "dummy")

	mustPlay(t, s, "strike", 0)
	if dmg := damageAmounts(logger, "player"); len(dmg) != 1 || dmg[0] != 12 {
		t.Errorf("damage events = %v, want the carried counter to double the first attack", dmg)
	}
	if ri.Counter != 3 {
		t.Errorf("counter = %d, want 3", ri.Counter)
	}
}

// TestRetaliateNeedsUnblockedDamage: the spikes only answer hits that
// actually cost HP.
func TestRetaliateNeedsUnblockedDamage(t *testing.T) {
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(defend).
		addEnemies(enemyDef("biter", 20, Intent{Kind: IntentAttack, Damage: 4}))

	p := testPlayer(50, defend, defend, defend, defend, defend)
	p.Relics.Add(relicDef("spikes", TriggerDamaged, RelicEffect{Op: RelicRetaliate, Value: 5}))
	s, logger := startCombat(t, p, lib, "biter")

	// Turn one: the bite is fully blocked, so nothing comes back.
	mustPlay(t, s, "defend", -1)
	endAndResolve(t, s)
	if got := s.Enemies[0].HP; got != 20 {
		t.Errorf("enemy HP = %d after the blocked bite, want 20", got)
	}

	// Turn two: the bite lands and the spikes answer.
	endAndResolve(t, s)
	if got := s.Enemies[0].HP; got != 15 {
		t.Errorf("enemy HP = %d after retaliation, want 15", got)
	}
	if dmg := damageAmounts(logger, "player"); len(dmg) != 1 || dmg[0] != 5 {
		t.Errorf("player damage events = %v, want just the [5] retaliation", dmg)
	}
}

// TestExhaustRelicDraws: exhausting a card triggers the lantern's draw.
func TestExhaustRelicDraws(t *testing.T) {
	gamble := skillDef("gamble", 1, Effect{Op: OpExhaustRandom})
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(gamble, defend).
		addEnemies(dummyDef("dummy", 20))

	p := testPlayer(50, defend, defend, defend, defend, defend, gamble)
	p.Relics.Add(relicDef("lantern", TriggerExhaust, RelicEffect{Op: RelicDraw, Value: 1}))
	s, logger := startCombat(t, p, lib, "dummy")

	mustPlay(t, s, "gamble", -1)

	// One card exhausted from hand, one drawn back in its place.
	if len(p.Hand) != 4 {
		t.Errorf("hand size = %d, want 4", len(p.Hand))
	}
	if len(p.Exhaust) != 1 {
		t.Errorf("exhaust size = %d, want 1", len(p.Exhaust))
	}
	if events := logger.EventsOfType(log.EventRelicTrigger); len(events) != 1 {
		t.Errorf("relic trigger events = %d, want 1", len(events))
	}
}

// TestVictoryRelicsPayOut: combat-end relics fire on victory: the charm
// heals and the ring pays gold.
func TestVictoryRelicsPayOut(t *testing.T) {
	strike := attackDef("strike", 1, 6)
	lib := newTestLibrary().
		addCards(strike).
		addEnemies(dummyDef("dummy", 5))

	p := testPlayer(50, strike, strike, strike, strike, strike)
	p.Relics.Add(relicDef("charm", TriggerCombatEnd, RelicEffect{Op: RelicHeal, Value: 6}))
	p.Relics.Add(relicDef("ring", TriggerCombatEnd, RelicEffect{Op: RelicGold, Value: 20}))
	s, logger := startCombat(t, p, lib, "dummy")

	p.HP = 40
	mustPlay(t, s, "strike", 0)

	if s.Outcome != OutcomeVictory {
		t.Fatalf("Outcome = %v, want victory", s.Outcome)
	}
	if p.HP != 46 {
		t.Errorf("player HP = %d, want 46 after the charm", p.HP)
	}
	if p.Gold != 20 {
		t.Errorf("gold = %d, want 20 from the ring", p.Gold)
	}
	if events := logger.EventsOfType(log.EventVictory); len(events) != 1 {
		t.Errorf("victory events = %d, want 1", len(events))
	}
}

// TestDamagedHealRelic: the vial heals a little every time the player
// takes unblocked damage.
func TestDamagedHealRelic(t *testing.T) {
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(defend).
		addEnemies(enemyDef("biter", 20, Intent{Kind: IntentAttack, Damage: 4}))

	p := testPlayer(50, defend, defend, defend, defend, defend)
	p.Relics.Add(relicDef("vial", TriggerDamaged, RelicEffect{Op: RelicHeal, Value: 2}))
	s, logger := startCombat(t, p, lib, "biter")

	endAndResolve(t, s)

	if p.HP != 48 {
		t.Errorf("player HP = %d, want 48 after a 4 hit and a 2 heal", p.HP)
	}
	if heals := logger.EventsOfType(log.EventHeal); len(heals) != 1 || heals[0].Amount != 2 {
		t.Errorf("heal events = %v, want one heal of 2", heals)
	}
}
