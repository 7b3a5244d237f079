package content

import "deckfall/internal/combat"

// Enemies is the full enemy table. HP is rolled per spawn from
// [MinHP, MaxHP]; the intent list cycles by the enemy's own turn count.
var Enemies = []*combat.EnemyDefinition{

	// husk repeats a single feeble swipe. Fodder for multi-enemy fights.
	{
		ID:    "husk",
		Name:  "Husk",
		MinHP: 8,
		MaxHP: 10,
		Intents: []combat.Intent{
			{Kind: combat.IntentAttack, Damage: 3},
		},
	},

	// gnawer opens by hardening, then alternates bite and shell.
	{
		ID:    "gnawer",
		Name:  "Gnawer",
		MinHP: 10,
		MaxHP: 14,
		Intents: []combat.Intent{
			{Kind: combat.IntentAttack, Damage: 7},
			{Kind: combat.IntentBlock, Block: 6, Status: combat.StatusStrength, Value: 1},
		},
	},

	// stinger leads with a venomous jab, covers up, then commits. The
	// jab applies weak 2 so one point survives the player's decay.
	{
		ID:    "stinger",
		Name:  "Stinger",
		MinHP: 12,
		MaxHP: 15,
		Intents: []combat.Intent{
			{Kind: combat.IntentAttack, Damage: 5},
			{Kind: combat.IntentAttackDebuff, Damage: 4, Status: combat.StatusWeak, Value: 2},
			{Kind: combat.IntentBlock, Block: 7},
		},
	},

	// acolyte chants once on its first turn, then attacks forever. The
	// ritual converts to strength at the start of each of its actions,
	// so the attacks grow every turn.
	{
		ID:    "acolyte",
		Name:  "Acolyte",
		MinHP: 18,
		MaxHP: 22,
		Intents: []combat.Intent{
			{Kind: combat.IntentBuff, Status: combat.StatusRitual, Value: 3, FirstTurnOnly: true},
			{Kind: combat.IntentAttack, Damage: 6},
		},
	},

	// hexer alternates a curse and a heavy swing.
	{
		ID:    "hexer",
		Name:  "Hexer",
		MinHP: 20,
		MaxHP: 24,
		Intents: []combat.Intent{
			{Kind: combat.IntentAttack, Damage: 8},
			{Kind: combat.IntentDebuff, Status: combat.StatusWeak, Value: 2},
		},
	},

	// brute winds up, then cycles flurry and slam.
	{
		ID:    "brute",
		Name:  "Brute",
		MinHP: 38,
		MaxHP: 44,
		Intents: []combat.Intent{
			{Kind: combat.IntentAttack, Damage: 9},
			{Kind: combat.IntentBuff, Status: combat.StatusStrength, Value: 2},
			{Kind: combat.IntentAttack, Damage: 3, Times: 3},
		},
	},
}
