package content

import "deckfall/internal/combat"

// Encounters is the encounter table. Spawn order, and so enemy action
// order, follows each list.
var Encounters = []*combat.EncounterDefinition{
	{
		ID:      "first-steps",
		Name:    "First Steps",
		Enemies: []string{"gnawer"},
	},
	{
		ID:      "ritual-circle",
		Name:    "Ritual Circle",
		Enemies: []string{"acolyte", "acolyte"},
	},
	{
		ID:      "ambush",
		Name:    "Ambush",
		Enemies: []string{"stinger", "husk", "husk"},
	},
	{
		ID:      "the-pit",
		Name:    "The Pit",
		Enemies: []string{"brute", "hexer"},
	},
}
