package content

import "deckfall/internal/combat"

// Cards is the full card table. Definitions are immutable and shared;
// the engine only ever reads them.
var Cards = []*combat.CardDefinition{

	// --- Attacks ---

	{
		ID:          "strike",
		Name:        "Strike",
		Description: "Deal 6 damage.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityStarter,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpDamage, Value: 6}},
	},
	{
		ID:          "bash",
		Name:        "Bash",
		Description: "Deal 8 damage. Apply 2 vulnerable.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityStarter,
		Cost:        2,
		Effects: []combat.Effect{
			{Op: combat.OpDamage, Value: 8},
			{Op: combat.OpDebuff, Status: combat.StatusVulnerable, Value: 2},
		},
	},
	{
		ID:          "twin-fangs",
		Name:        "Twin Fangs",
		Description: "Deal 4 damage twice.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityCommon,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpDamage, Value: 4, Times: 2}},
	},
	{
		ID:          "cleave",
		Name:        "Cleave",
		Description: "Deal 5 damage to all enemies.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityCommon,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpDamage, Value: 5, Target: combat.TargetAll}},
	},
	{
		ID:          "toxin-dart",
		Name:        "Toxin Dart",
		Description: "Deal 3 damage. Apply 3 poison.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityCommon,
		Cost:        1,
		Effects: []combat.Effect{
			{Op: combat.OpDamage, Value: 3},
			{Op: combat.OpDebuff, Status: combat.StatusPoison, Value: 3},
		},
	},
	{
		ID:          "reckless-blow",
		Name:        "Reckless Blow",
		Description: "Deal 8 damage. Lose 2 HP.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityCommon,
		Cost:        0,
		Effects: []combat.Effect{
			{Op: combat.OpDamage, Value: 8},
			{Op: combat.OpLoseHP, Value: 2},
		},
	},
	{
		ID:          "recall-blow",
		Name:        "Recall Blow",
		Description: "Deal 9 damage. Put the top card of your discard pile on top of your draw pile.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityCommon,
		Cost:        1,
		Effects: []combat.Effect{
			{Op: combat.OpDamage, Value: 9},
			{Op: combat.OpPutOnDraw},
		},
	},
	// momentum grows by 5 every time it is played; the bonus survives
	// the combat.
	{
		ID:          "momentum",
		Name:        "Momentum",
		Description: "Deal 8 damage. Permanently gains 5 damage each time it is played.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityUncommon,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpDamage, Value: 8}},
		RampUp:      5,
	},
	{
		ID:          "leech-blade",
		Name:        "Leech Blade",
		Description: "Deal 9 damage. Heal for unblocked damage dealt.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityUncommon,
		Cost:        2,
		Effects:     []combat.Effect{{Op: combat.OpDamage, Value: 9, Lifesteal: true}},
	},
	{
		ID:          "echo-strike",
		Name:        "Echo Strike",
		Description: "Deal 5 damage. Add a copy of this card to your discard pile.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityUncommon,
		Cost:        1,
		Effects: []combat.Effect{
			{Op: combat.OpDamage, Value: 5},
			{Op: combat.OpAddCopy},
		},
	},
	{
		ID:          "phantom-edge",
		Name:        "Phantom Edge",
		Description: "Ethereal. Deal 7 damage.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityUncommon,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpDamage, Value: 7}},
		Ethereal:    true,
	},
	{
		ID:          "heavy-slam",
		Name:        "Heavy Slam",
		Description: "Deal 14 damage. Exhaust.",
		Type:        combat.CardTypeAttack,
		Rarity:      combat.RarityRare,
		Cost:        2,
		Effects:     []combat.Effect{{Op: combat.OpDamage, Value: 14}},
		Exhaust:     true,
	},

	// --- Skills ---

	{
		ID:          "defend",
		Name:        "Defend",
		Description: "Gain 5 block.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityStarter,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpBlock, Value: 5}},
	},
	{
		ID:          "brace",
		Name:        "Brace",
		Description: "Gain 11 block.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityCommon,
		Cost:        2,
		Effects:     []combat.Effect{{Op: combat.OpBlock, Value: 11}},
	},
	{
		ID:          "shrug",
		Name:        "Shrug",
		Description: "Gain 8 block. Draw 1 card.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityCommon,
		Cost:        1,
		Effects: []combat.Effect{
			{Op: combat.OpBlock, Value: 8},
			{Op: combat.OpDraw, Value: 1},
		},
	},
	{
		ID:          "surge",
		Name:        "Surge",
		Description: "Gain 2 strength until end of turn.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityCommon,
		Cost:        0,
		Effects:     []combat.Effect{{Op: combat.OpTempBuff, Status: combat.StatusStrength, Value: 2}},
	},
	{
		ID:          "grit",
		Name:        "Grit",
		Description: "Gain 7 block. Exhaust a random card from your hand.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityCommon,
		Cost:        1,
		Effects: []combat.Effect{
			{Op: combat.OpBlock, Value: 7},
			{Op: combat.OpExhaustRandom},
		},
	},
	{
		ID:          "improvise",
		Name:        "Improvise",
		Description: "Add a random attack card to your hand.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityCommon,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpAddRandomAttack}},
	},
	// tunnel-vision's draw resolves before the no-draw lock takes hold.
	{
		ID:          "tunnel-vision",
		Name:        "Tunnel Vision",
		Description: "Draw 3 cards. You cannot draw more cards this turn.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityUncommon,
		Cost:        0,
		Effects: []combat.Effect{
			{Op: combat.OpDraw, Value: 3},
			{Op: combat.OpNoMoreDraw},
		},
	},
	{
		ID:          "last-stand",
		Name:        "Last Stand",
		Description: "Exhaust all non-attack cards in your hand. Gain 5 block for each.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityUncommon,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpSecondWind, Value: 5}},
	},
	{
		ID:          "foresight",
		Name:        "Foresight",
		Description: "Draw 2 cards, then put the last card of your hand on top of your draw pile.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityUncommon,
		Cost:        1,
		Effects: []combat.Effect{
			{Op: combat.OpDraw, Value: 2},
			{Op: combat.OpPutBack},
		},
	},
	{
		ID:          "wild-gambit",
		Name:        "Wild Gambit",
		Description: "Play the top card of your draw pile against a random enemy, then exhaust it.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityUncommon,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpPlayTopDraw}},
	},
	// weak ticks down before the victim acts, so a useful dose is 2:
	// one eaten by the decay, one live for the attack.
	{
		ID:          "intimidate",
		Name:        "Intimidate",
		Description: "Apply 2 weak to all enemies. Exhaust.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityUncommon,
		Cost:        0,
		Effects:     []combat.Effect{{Op: combat.OpDebuff, Status: combat.StatusWeak, Value: 2, Target: combat.TargetAll}},
		Exhaust:     true,
	},
	{
		ID:          "overexert",
		Name:        "Overexert",
		Description: "Gain 12 block. Add 2 wounds to your discard pile.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityUncommon,
		Cost:        1,
		Effects: []combat.Effect{
			{Op: combat.OpBlock, Value: 12},
			{Op: combat.OpAddCard, CardID: "wound"},
			{Op: combat.OpAddCard, CardID: "wound"},
		},
	},
	{
		ID:          "inner-focus",
		Name:        "Inner Focus",
		Description: "Gain 2 strength. Exhaust.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityUncommon,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpBuff, Status: combat.StatusStrength, Value: 2}},
		Exhaust:     true,
	},
	{
		ID:          "adrenaline",
		Name:        "Adrenaline",
		Description: "Gain 1 energy. Draw 1 card. Exhaust.",
		Type:        combat.CardTypeSkill,
		Rarity:      combat.RarityRare,
		Cost:        0,
		Effects: []combat.Effect{
			{Op: combat.OpGainEnergy, Value: 1},
			{Op: combat.OpDraw, Value: 1},
		},
		Exhaust: true,
	},

	// --- Powers ---

	{
		ID:          "molten-skin",
		Name:        "Molten Skin",
		Description: "At the end of your turn, gain 3 block.",
		Type:        combat.CardTypePower,
		Rarity:      combat.RarityUncommon,
		Cost:        1,
		Effects:     []combat.Effect{{Op: combat.OpRegisterPower, Power: combat.PowerMetallicize, Value: 3}},
	},
	{
		ID:          "inner-beast",
		Name:        "Inner Beast",
		Description: "At the start of your turn, gain 2 strength.",
		Type:        combat.CardTypePower,
		Rarity:      combat.RarityRare,
		Cost:        3,
		Effects:     []combat.Effect{{Op: combat.OpRegisterPower, Power: combat.PowerDemonForm, Value: 2}},
	},
	{
		ID:          "aegis-engine",
		Name:        "Aegis Engine",
		Description: "Block no longer expires at the start of your turn.",
		Type:        combat.CardTypePower,
		Rarity:      combat.RarityRare,
		Cost:        3,
		Effects:     []combat.Effect{{Op: combat.OpRegisterPower, Power: combat.PowerBarricade, Value: 1}},
	},

	// --- Statuses & Curses ---

	{
		ID:          "wound",
		Name:        "Wound",
		Description: "Unplayable.",
		Type:        combat.CardTypeStatus,
		Rarity:      combat.RaritySpecial,
		Unplayable:  true,
	},
	// burn and void run their effect lists at end of turn while in hand.
	{
		ID:          "burn",
		Name:        "Burn",
		Description: "Unplayable. At the end of your turn, lose 2 HP.",
		Type:        combat.CardTypeStatus,
		Rarity:      combat.RaritySpecial,
		Unplayable:  true,
		Effects:     []combat.Effect{{Op: combat.OpLoseHP, Value: 2}},
	},
	{
		ID:          "void",
		Name:        "Void",
		Description: "Unplayable. Ethereal. At the end of your turn, lose 1 energy.",
		Type:        combat.CardTypeCurse,
		Rarity:      combat.RaritySpecial,
		Unplayable:  true,
		Ethereal:    true,
		Effects:     []combat.Effect{{Op: combat.OpGainEnergy, Value: -1}},
	},
}
