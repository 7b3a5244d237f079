package content

import "deckfall/internal/combat"

// Relics is the full relic table. Every trigger key the dispatcher
// knows appears at least once.
var Relics = []*combat.RelicDefinition{

	{
		ID:          "blood-vial",
		Name:        "Blood Vial",
		Description: "Heal 2 HP at the start of each combat.",
		Rarity:      combat.RarityCommon,
		Trigger:     combat.TriggerCombatStart,
		Effect:      combat.RelicEffect{Op: combat.RelicHeal, Value: 2},
	},
	{
		ID:          "whetstone",
		Name:        "Whetstone",
		Description: "Start each combat with 1 strength.",
		Rarity:      combat.RarityCommon,
		Trigger:     combat.TriggerCombatStart,
		Effect:      combat.RelicEffect{Op: combat.RelicStrength, Value: 1},
	},
	{
		ID:          "oiled-boots",
		Name:        "Oiled Boots",
		Description: "Start each combat with 1 dexterity.",
		Rarity:      combat.RarityCommon,
		Trigger:     combat.TriggerCombatStart,
		Effect:      combat.RelicEffect{Op: combat.RelicDexterity, Value: 1},
	},
	{
		ID:          "mending-charm",
		Name:        "Mending Charm",
		Description: "Heal 6 HP when you win a combat.",
		Rarity:      combat.RarityUncommon,
		Trigger:     combat.TriggerCombatEnd,
		Effect:      combat.RelicEffect{Op: combat.RelicHeal, Value: 6},
	},
	{
		ID:          "trophy-ring",
		Name:        "Trophy Ring",
		Description: "Gain 20 gold when you win a combat.",
		Rarity:      combat.RarityUncommon,
		Trigger:     combat.TriggerCombatEnd,
		Effect:      combat.RelicEffect{Op: combat.RelicGold, Value: 20},
	},
	{
		ID:          "quick-quill",
		Name:        "Quick Quill",
		Description: "Draw 1 extra card at the start of each turn.",
		Rarity:      combat.RarityUncommon,
		Trigger:     combat.TriggerTurnStart,
		Effect:      combat.RelicEffect{Op: combat.RelicDraw, Value: 1},
	},
	{
		ID:          "frost-shell",
		Name:        "Frost Shell",
		Description: "Gain 3 block at the end of each turn.",
		Rarity:      combat.RarityCommon,
		Trigger:     combat.TriggerTurnEnd,
		Effect:      combat.RelicEffect{Op: combat.RelicBlock, Value: 3},
	},
	// war-drum's counter persists across combats: attacks 1 and 2 prime
	// it, attack 3 lands doubled, wherever the combats fall.
	{
		ID:          "war-drum",
		Name:        "War Drum",
		Description: "Every 3rd attack card you play deals double damage.",
		Rarity:      combat.RarityRare,
		Trigger:     combat.TriggerPlayAttack,
		Effect:      combat.RelicEffect{Op: combat.RelicDoubleAttack, Every: 3},
	},
	{
		ID:          "soul-lantern",
		Name:        "Soul Lantern",
		Description: "Draw 1 card whenever a card is exhausted.",
		Rarity:      combat.RarityRare,
		Trigger:     combat.TriggerExhaust,
		Effect:      combat.RelicEffect{Op: combat.RelicDraw, Value: 1},
	},
	{
		ID:          "barbed-carapace",
		Name:        "Barbed Carapace",
		Description: "Deal 3 damage back to enemies that damage you.",
		Rarity:      combat.RarityUncommon,
		Trigger:     combat.TriggerDamaged,
		Effect:      combat.RelicEffect{Op: combat.RelicRetaliate, Value: 3},
	},
	{
		ID:          "ember-core",
		Name:        "Ember Core",
		Description: "Gain 1 extra energy at the start of each turn.",
		Rarity:      combat.RarityRare,
		Trigger:     combat.TriggerPassive,
		Effect:      combat.RelicEffect{Op: combat.RelicEnergy, Value: 1},
	},
}
