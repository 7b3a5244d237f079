package combat

import (
	"testing"

	"deckfall/internal/log"
)

// TestIntentCycleModulo: with no first-turn-only intent the cycle is
// the raw turn count modulo the intent count, so a three-intent enemy
// opens on its second listed intent.
func TestIntentCycleModulo(t *testing.T) {
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(defend).
		addEnemies(enemyDef("cycler", 30,
			Intent{Kind: IntentAttack, Damage: 4},
			Intent{Kind: IntentAttack, Damage: 5},
			Intent{Kind: IntentAttack, Damage: 6},
		))

	p := testPlayer(50, defend, defend, defend, defend, defend)
	s, logger := startCombat(t, p, lib, "cycler")

	endAndResolve(t, s)
	endAndResolve(t, s)
	endAndResolve(t, s)

	if dmg := damageAmounts(logger, "cycler"); len(dmg) != 3 || dmg[0] != 5 || dmg[1] != 6 || dmg[2] != 4 {
		t.Errorf("damage events = %v, want [5 6 4]", dmg)
	}
}

// TestSingleIntentRepeats: a one-intent enemy just does the same thing
// every turn.
func TestSingleIntentRepeats(t *testing.T) {
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(defend).
		addEnemies(enemyDef("pest", 30, Intent{Kind: IntentAttack, Damage: 5}))

	p := testPlayer(50, defend, defend, defend, defend, defend)
	s, logger := startCombat(t, p, lib, "pest")

	endAndResolve(t, s)
	endAndResolve(t, s)

	if dmg := damageAmounts(logger, "pest"); len(dmg) != 2 || dmg[0] != 5 || dmg[1] != 5 {
		t.Errorf("damage events = %v, want [5 5]", dmg)
	}
}

// TestFirstTurnOnlyIntent: a first-turn-only opener fires exactly once,
// then the remaining intents cycle. The ritual it grants converts to
// strength at the start of each later action.
func TestFirstTurnOnlyIntent(t *testing.T) {
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(defend).
		addEnemies(enemyDef("cultist", 30,
			Intent{Kind: IntentBuff, Status: StatusRitual, Value: 3, FirstTurnOnly: true},
			Intent{Kind: IntentAttack, Damage: 6},
		))

	p := testPlayer(50, defend, defend, defend, defend, defend)
	s, logger := startCombat(t, p, lib, "cultist")

	e := s.Enemies[0]
	if e.NextIntent().Kind != IntentBuff {
		t.Errorf("opening telegraph = %v, want the ritual buff", e.NextIntent().Kind)
	}

	endAndResolve(t, s) // incantation only
	if p.HP != 50 {
		t.Errorf("player HP = %d after the opener, want untouched 50", p.HP)
	}
	if e.NextIntent().Kind != IntentAttack {
		t.Errorf("telegraph after the opener = %v, want the attack", e.NextIntent().Kind)
	}

	endAndResolve(t, s) // ritual 3 converts, swings for 9
	endAndResolve(t, s) // strength 6 now, swings for 12

	if dmg := damageAmounts(logger, "cultist"); len(dmg) != 2 || dmg[0] != 9 || dmg[1] != 12 {
		t.Errorf("damage events = %v, want [9 12]", dmg)
	}
	if got := e.Statuses.Get(StatusStrength); got != 6 {
		t.Errorf("strength = %d, want 6 after two conversions", got)
	}
}

// TestEnemyBlockAbsorbsUntilItsNextTurn: block an enemy raises lasts
// through the player's turn and resets when the enemy next acts.
func TestEnemyBlockAbsorbsUntilItsNextTurn(t *testing.T) {
	strike := attackDef("strike", 1, 6)
	lib := newTestLibrary().
		addCards(strike).
		addEnemies(enemyDef("turtle", 20, Intent{Kind: IntentBlock, Block: 5}))

	p := testPlayer(50, strike, strike, strike, strike, strike)
	s, logger := startCombat(t, p, lib, "turtle")

	endAndResolve(t, s)
	e := s.Enemies[0]
	if e.Block != 5 {
		t.Fatalf("enemy block = %d entering turn two, want 5", e.Block)
	}

	mustPlay(t, s, "strike", 0)
	if e.HP != 19 || e.Block != 0 {
		t.Errorf("enemy HP = %d block = %d, want 19 and 0", e.HP, e.Block)
	}
	if dmg := damageAmounts(logger, "player"); len(dmg) != 1 || dmg[0] != 1 {
		t.Errorf("damage events = %v, want [1] through the block", dmg)
	}

	endAndResolve(t, s)
	if e.Block != 5 {
		t.Errorf("enemy block = %d entering turn three, want a fresh 5", e.Block)
	}
}

// TestBlockIntentCarriesBuffRider: a block intent's optional status
// rider lands on the enemy itself.
func TestBlockIntentCarriesBuffRider(t *testing.T) {
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(defend).
		addEnemies(enemyDef("bulker", 30,
			Intent{Kind: IntentBlock, Block: 5, Status: StatusStrength, Value: 2},
		))

	p := testPlayer(50, defend, defend, defend, defend, defend)
	s, logger := startCombat(t, p, lib, "bulker")

	endAndResolve(t, s)

	e := s.Enemies[0]
	if e.Block != 5 {
		t.Errorf("enemy block = %d, want 5", e.Block)
	}
	if got := e.Statuses.Get(StatusStrength); got != 2 {
		t.Errorf("enemy strength = %d, want 2 from the rider", got)
	}

	found := false
	for _, ev := range logger.EventsOfType(log.EventStatusChange) {
		if ev.Target == "bulker" && ev.Card == string(StatusStrength) {
			found = true
		}
	}
	if !found {
		t.Error("expected a status event for the rider on the enemy")
	}
}

// TestAttackDebuffAppliesAfterHits: the debuff rider lands once, after
// all hits of the attack resolve.
func TestAttackDebuffAppliesAfterHits(t *testing.T) {
	strike := attackDef("strike", 1, 6)
	lib := newTestLibrary().
		addCards(strike).
		addEnemies(enemyDef("hexer", 30,
			Intent{Kind: IntentAttackDebuff, Damage: 4, Times: 2, Status: StatusWeak, Value: 2},
		))

	p := testPlayer(50, strike, strike, strike, strike, strike)
	s, logger := startCombat(t, p, lib, "hexer")

	endAndResolve(t, s)

	if dmg := damageAmounts(logger, "hexer"); len(dmg) != 2 || dmg[0] != 4 || dmg[1] != 4 {
		t.Errorf("damage events = %v, want [4 4]", dmg)
	}
	// The rollover already decayed one stack, leaving the weak active
	// for this player turn.
	if got := p.Statuses.Get(StatusWeak); got != 1 {
		t.Errorf("player weak = %d on turn two, want 1", got)
	}

	mustPlay(t, s, "strike", 0)
	if dmg := damageAmounts(logger, "player"); len(dmg) != 1 || dmg[0] != 4 {
		t.Errorf("weakened strike = %v, want [4]", dmg)
	}
}

// TestPoisonedEnemySkipsActionWhenItDies: the poison tick lands before
// the intent; a dead enemy never acts.
func TestPoisonedEnemySkipsActionWhenItDies(t *testing.T) {
	dart := skillDef("dart", 1, Effect{Op: OpDebuff, Target: TargetSingle, Status: StatusPoison, Value: 3})
	defend := blockDef("defend", 1, 5)
	lib := newTestLibrary().
		addCards(dart, defend).
		addEnemies(enemyDef("wisp", 3, Intent{Kind: IntentAttack, Damage: 20}), dummyDef("dummy", 20))

	p := testPlayer(50, dart, defend, defend, defend, defend)
	s, logger := startCombat(t, p, lib, "wisp", "dummy")

	mustPlay(t, s, "dart", 0)
	endAndResolve(t, s)

	if s.Enemies[0].Alive() {
		t.Fatal("the wisp should have died to its own upkeep")
	}
	if p.HP != 50 {
		t.Errorf("player HP = %d, want 50 with the attack never thrown", p.HP)
	}
	for _, ev := range logger.EventsOfType(log.EventEnemyAction) {
		if ev.Actor == "wisp" {
			t.Errorf("unexpected action from the dead wisp: %+v", ev)
		}
	}
	if downs := logger.EventsOfType(log.EventEnemyDown); len(downs) != 1 {
		t.Errorf("enemy down events = %d, want 1", len(downs))
	}
	if s.Over() {
		t.Error("combat should continue with the dummy alive")
	}
}

// TestSpawnEnemyRollsHPWithinRange: spawned HP is drawn from the
// definition's range and varies with the seed.
func TestSpawnEnemyRollsHPWithinRange(t *testing.T) {
	defend := blockDef("defend", 1, 5)
	ranged := &EnemyDefinition{
		ID:      "slime",
		Name:    "slime",
		MinHP:   10,
		MaxHP:   14,
		Intents: []Intent{{Kind: IntentBlock}},
	}
	lib := newTestLibrary().
		addCards(defend).
		addEnemies(ranged)

	seen := make(map[int]bool)
	for seed := int64(1); seed <= 16; seed++ {
		s, err := NewSession(SessionConfig{
			Player:    testPlayer(50, defend, defend, defend, defend, defend),
			Enemies:   []string{"slime"},
			Library:   lib,
			Logger:    log.NewMemoryLogger(),
			Seed:      seed,
			NoShuffle: true,
		})
		if err != nil {
			t.Fatalf("NewSession seed %d: %v", seed, err)
		}
		hp := s.Enemies[0].HP
		if hp < 10 || hp > 14 {
			t.Fatalf("seed %d rolled HP %d outside [10, 14]", seed, hp)
		}
		if s.Enemies[0].MaxHP != 14 {
			t.Fatalf("seed %d: MaxHP = %d, want 14", seed, s.Enemies[0].MaxHP)
		}
		seen[hp] = true
	}
	if len(seen) < 2 {
		t.Errorf("16 seeds produced only %d distinct rolls", len(seen))
	}
}

// TestPreviewDamageMatchesNextHit: the telegraphed number equals the
// per-hit damage the enemy actually deals, accounting for ritual
// converting and its own weak expiring before the swing.
func TestPreviewDamageMatchesNextHit(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *Player, e *Enemy)
		want  int
	}{
		{"clean", func(p *Player, e *Enemy) {}, 8},
		{"vulnerable player", func(p *Player, e *Enemy) { p.Statuses.Add(StatusVulnerable, 2) }, 12},
		{"enemy weak expiring", func(p *Player, e *Enemy) { e.Statuses.Add(StatusWeak, 1) }, 8},
		{"enemy weak lasting", func(p *Player, e *Enemy) { e.Statuses.Add(StatusWeak, 2) }, 6},
		{"ritual pending", func(p *Player, e *Enemy) { e.Statuses.Add(StatusRitual, 3) }, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defend := blockDef("defend", 1, 5)
			lib := newTestLibrary().
				addCards(defend).
				addEnemies(enemyDef("spiker", 30, Intent{Kind: IntentAttack, Damage: 8}))

			p := testPlayer(50, defend, defend, defend, defend, defend)
			s, logger := startCombat(t, p, lib, "spiker")
			e := s.Enemies[0]

			tt.setup(p, e)
			if got := e.PreviewDamage(&p.Actor); got != tt.want {
				t.Errorf("PreviewDamage = %d, want %d", got, tt.want)
			}

			endAndResolve(t, s)
			if dmg := damageAmounts(logger, "spiker"); len(dmg) != 1 || dmg[0] != tt.want {
				t.Errorf("damage events = %v, want [%d]", dmg, tt.want)
			}
		})
	}
}
