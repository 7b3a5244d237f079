package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"deckfall/internal/content"
)

// activeSession is the singleton combat session (one per stdio process).
var activeSession *CombatSession

// loadoutsFile is the path to an optional loadout YAML file, set by main.
var loadoutsFile string

// SetLoadoutsFile sets the path to the loadout YAML file.
func SetLoadoutsFile(path string) {
	loadoutsFile = path
}

// RegisterTools adds all combat tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startCombatTool(), handleStartCombat)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(endTurnTool(), handleEndTurn)
	s.AddTool(advanceEnemiesTool(), handleAdvanceEnemies)
	s.AddTool(getStateTool(), handleGetState)
	s.AddTool(listContentTool(), handleListContent)
}

// --- Tool definitions ---

func startCombatTool() mcp.Tool {
	return mcp.NewTool("start_combat",
		mcp.WithDescription("Start a new combat. Returns the initial state: the player's hand, energy, and the enemies with their telegraphed intents. "+
			"Play cards with play_card, then end_turn, then advance_enemies until control returns to the player."),
		mcp.WithString("loadout", mcp.Description("Loadout id for the player's deck and relics (see list_content). Defaults to 'vanguard'.")),
		mcp.WithString("encounter", mcp.Description("Encounter id to fight (see list_content). Defaults to 'first-steps'.")),
		mcp.WithString("enemies", mcp.Description("Space-separated enemy ids (e.g. 'husk husk gnawer'). Overrides encounter.")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for reproducible combats. 0 or omitted picks a random seed.")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from hand. Costs the card's energy. Attack cards that need a target require the 0-based enemy index."),
		mcp.WithNumber("card", mcp.Required(), mcp.Description("Instance id of the card to play, from state.player.hand[].id")),
		mcp.WithNumber("target", mcp.Description("0-based index into state.enemies for single-target cards. Omit for untargeted cards.")),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End the player turn: end-of-turn effects run, the hand is discarded, and the enemy queue forms. Follow with advance_enemies."),
	)
}

func advanceEnemiesTool() mcp.Tool {
	return mcp.NewTool("advance_enemies",
		mcp.WithDescription("Process the enemy queue. Each step one enemy acts out its telegraphed intent; when the queue empties a new player turn begins."),
		mcp.WithBoolean("all", mcp.Description("Process the whole queue in one call instead of a single enemy")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current combat state and any events since the last call. Read-only."),
	)
}

func listContentTool() mcp.Tool {
	return mcp.NewTool("list_content",
		mcp.WithDescription("List the available cards, relics, enemies, encounters, and loadouts by id. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartCombat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil && !activeSession.over() {
		return mcp.NewToolResultError("A combat is already running. Finish it or read it with get_state; only one combat at a time is supported."), nil
	}

	loadout := request.GetString("loadout", "")
	encounter := request.GetString("encounter", "")
	var enemies []string
	if raw := strings.TrimSpace(request.GetString("enemies", "")); raw != "" {
		enemies = strings.Fields(raw)
	}
	seed := int64(request.GetInt("seed", 0))

	if encounter == "" && len(enemies) == 0 {
		encounter = "first-steps"
	}

	sess, err := NewCombatSession(loadout, encounter, enemies, seed)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start combat: %v", err), nil
	}

	activeSession = sess

	return mcp.NewToolResultText(respondJSON(sess.buildResponse())), nil
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No combat is running. Use start_combat first."), nil
	}

	card := request.GetInt("card", -1)
	if card < 0 {
		return mcp.NewToolResultError("card must be the instance id of a hand card, from state.player.hand[].id."), nil
	}
	target := request.GetInt("target", -1)

	if err := activeSession.play(card, target); err != nil {
		return mcp.NewToolResultErrorf("Cannot play card: %v", err), nil
	}

	return mcp.NewToolResultText(respondJSON(activeSession.buildResponse())), nil
}

func handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No combat is running. Use start_combat first."), nil
	}

	if err := activeSession.endTurn(); err != nil {
		return mcp.NewToolResultErrorf("Cannot end turn: %v", err), nil
	}

	return mcp.NewToolResultText(respondJSON(activeSession.buildResponse())), nil
}

func handleAdvanceEnemies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No combat is running. Use start_combat first."), nil
	}

	all := request.GetBool("all", false)
	if err := activeSession.advance(all); err != nil {
		return mcp.NewToolResultErrorf("Cannot advance enemies: %v", err), nil
	}

	return mcp.NewToolResultText(respondJSON(activeSession.buildResponse())), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No combat is running. Use start_combat first."), nil
	}

	return mcp.NewToolResultText(respondJSON(activeSession.buildResponse())), nil
}

func handleListContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type entry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	var listing struct {
		Cards      []entry  `json:"cards"`
		Relics     []entry  `json:"relics"`
		Enemies    []entry  `json:"enemies"`
		Encounters []entry  `json:"encounters"`
		Loadouts   []string `json:"loadouts"`
	}

	lib := content.Default()
	for _, d := range lib.AllCards() {
		listing.Cards = append(listing.Cards, entry{ID: d.ID, Name: d.Name})
	}
	for _, d := range lib.AllRelics() {
		listing.Relics = append(listing.Relics, entry{ID: d.ID, Name: d.Name})
	}
	for _, d := range lib.AllEnemies() {
		listing.Enemies = append(listing.Enemies, entry{ID: d.ID, Name: d.Name})
	}
	for _, d := range lib.AllEncounters() {
		listing.Encounters = append(listing.Encounters, entry{ID: d.ID, Name: d.Name})
	}
	listing.Loadouts = content.BuiltinIDs()
	if loadoutsFile != "" {
		if lf, err := content.ParseLoadoutFile(loadoutsFile); err == nil {
			for _, lo := range lf.Loadouts {
				listing.Loadouts = append(listing.Loadouts, lo.Name)
			}
		}
	}

	data, err := json.Marshal(listing)
	if err != nil {
		return mcp.NewToolResultErrorf("marshal error: %v", err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
