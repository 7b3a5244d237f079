// Command deckfall-cli runs a single combat as a terminal REPL.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"deckfall/internal/combat"
	"deckfall/internal/content"
	"deckfall/internal/log"
	"deckfall/internal/view"
)

func main() {
	loadout := flag.String("loadout", "vanguard", "loadout id (built-in or from the -loadouts file)")
	loadoutsFile := flag.String("loadouts", "", "path to a loadout YAML file")
	encounter := flag.String("encounter", "first-steps", "encounter id to fight")
	enemies := flag.String("enemies", "", "space-separated enemy ids, overrides -encounter")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks a random one)")
	quiet := flag.Bool("quiet", false, "suppress the live combat event log")
	flag.Parse()

	if err := run(*loadout, *loadoutsFile, *encounter, *enemies, *seed, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(loadoutID, loadoutsFile, encounter, enemies string, seed int64, quiet bool) error {
	lo, err := resolveLoadout(loadoutID, loadoutsFile)
	if err != nil {
		return err
	}

	lib := content.Default()
	player, err := combat.BuildPlayer(lo.Profile(), lib)
	if err != nil {
		return fmt.Errorf("build player: %w", err)
	}

	var enemyIDs []string
	if strings.TrimSpace(enemies) != "" {
		enemyIDs = strings.Fields(enemies)
		encounter = ""
	}

	var logger log.EventLogger = log.NewTextLogger(os.Stdout)
	if quiet {
		logger = log.NewMemoryLogger()
	}

	sess, err := combat.NewSession(combat.SessionConfig{
		Player:    player,
		Enemies:   enemyIDs,
		Encounter: encounter,
		Library:   lib,
		Logger:    logger,
		Seed:      seed,
	})
	if err != nil {
		return err
	}

	return runREPL(sess)
}

func resolveLoadout(id, path string) (*content.Loadout, error) {
	if path != "" {
		lf, err := content.ParseLoadoutFile(path)
		if err != nil {
			return nil, err
		}
		if lo := lf.ByName(id); lo != nil {
			return lo, nil
		}
	}
	if lo := content.Builtin(id); lo != nil {
		return lo, nil
	}
	return nil, fmt.Errorf("unknown loadout %q (built-ins: %s)", id, strings.Join(content.BuiltinIDs(), ", "))
}

// runREPL reads commands from stdin until the combat is decided or the
// player quits.
func runREPL(s *combat.Session) error {
	reader := bufio.NewReader(os.Stdin)
	renderState(s)

	for {
		if s.Over() {
			renderOutcome(s)
			return nil
		}

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "play", "p":
			playCommand(s, fields[1:])

		case "end", "e":
			if err := s.EndPlayerTurn(); err != nil {
				fmt.Printf("Cannot end turn: %v\n", err)
				continue
			}
			runEnemyQueue(s)
			if !s.Over() {
				renderState(s)
			}

		case "advance", "a":
			if err := s.AdvanceEnemyQueue(); err != nil {
				fmt.Printf("Cannot advance: %v\n", err)
				continue
			}
			renderState(s)

		case "state", "s":
			renderState(s)

		case "help", "h", "?":
			printHelp()

		case "quit", "q", "exit":
			return nil

		default:
			fmt.Printf("Unknown command %q. Type 'help' for commands.\n", fields[0])
		}
	}
}

// playCommand parses "play N [T]" with 1-indexed hand and enemy
// positions and plays the card.
func playCommand(s *combat.Session, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: play N [T]  (hand position, optional enemy position)")
		return
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < 1 || pos > len(s.Player.Hand) {
		fmt.Printf("Enter a hand position between 1 and %d\n", len(s.Player.Hand))
		return
	}
	ci := s.Player.Hand[pos-1]

	target := -1
	if len(args) > 1 {
		t, err := strconv.Atoi(args[1])
		if err != nil || t < 1 || t > len(s.Enemies) {
			fmt.Printf("Enter an enemy position between 1 and %d\n", len(s.Enemies))
			return
		}
		target = t - 1
	}

	if ci.Def.NeedsTarget() && target < 0 {
		// A single living enemy is an unambiguous target.
		if idx, ok := soleLivingEnemy(s); ok {
			target = idx
		} else {
			fmt.Printf("%s needs a target: play %d T\n", ci.Def.Name, pos)
			return
		}
	}

	if err := s.PlayCard(ci.ID, target); err != nil {
		fmt.Printf("Cannot play %s: %v\n", ci.Def.Name, err)
		return
	}
	if !s.Over() {
		renderState(s)
	}
}

func soleLivingEnemy(s *combat.Session) (int, bool) {
	idx, count := -1, 0
	for i, e := range s.Enemies {
		if e.Alive() {
			idx = i
			count++
		}
	}
	return idx, count == 1
}

// runEnemyQueue processes every queued enemy action.
func runEnemyQueue(s *combat.Session) {
	for s.PendingActions() > 0 && !s.Over() {
		if err := s.AdvanceEnemyQueue(); err != nil {
			fmt.Printf("Cannot advance: %v\n", err)
			return
		}
	}
}

func renderState(s *combat.Session) {
	sv := view.BuildStateView(s)

	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════╗")
	for _, e := range sv.Enemies {
		if !e.Alive {
			fmt.Printf("║  [%d] %-14s down\n", e.Index+1, e.Name)
			continue
		}
		line := fmt.Sprintf("║  [%d] %-14s HP %d/%d", e.Index+1, e.Name, e.HP, e.MaxHP)
		if e.Block > 0 {
			line += fmt.Sprintf("  Block %d", e.Block)
		}
		if st := formatStatuses(e.Statuses); st != "" {
			line += "  " + st
		}
		fmt.Println(line)
		if e.Intent != "" {
			intent := e.Intent
			if e.IntentDamage > 0 {
				if e.IntentHits > 1 {
					intent += fmt.Sprintf(" (would hit for %d x%d)", e.IntentDamage, e.IntentHits)
				} else {
					intent += fmt.Sprintf(" (would hit for %d)", e.IntentDamage)
				}
			}
			fmt.Printf("║      intends: %s\n", intent)
		}
	}
	fmt.Println("║──────────────────────────────────────────────────────")

	p := sv.Player
	line := fmt.Sprintf("║  YOU  HP %d/%d  Energy %d/%d", p.HP, p.MaxHP, p.Energy, p.BaseEnergy)
	if p.Block > 0 {
		line += fmt.Sprintf("  Block %d", p.Block)
	}
	fmt.Println(line)
	if st := formatStatuses(p.Statuses); st != "" {
		fmt.Printf("║  %s\n", st)
	}
	if pw := formatStatuses(p.Powers); pw != "" {
		fmt.Printf("║  powers: %s\n", pw)
	}
	fmt.Printf("║  Draw %d  Discard %d  Exhaust %d\n", p.DrawCount, p.DiscardCount, p.ExhaustCount)
	fmt.Println("╚══════════════════════════════════════════════════════╝")
	fmt.Printf("Turn %d | %s\n", sv.Turn, sv.Phase)

	if len(p.Hand) > 0 {
		fmt.Printf("\nHand: ")
		for i, cv := range p.Hand {
			fmt.Printf("[%d] %s (%d)  ", i+1, cv.Name, cv.Cost)
		}
		fmt.Println()
	}
}

func formatStatuses(statuses map[string]int) string {
	if len(statuses) == 0 {
		return ""
	}
	keys := make([]string, 0, len(statuses))
	for k := range statuses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", k, statuses[k]))
	}
	return strings.Join(parts, ", ")
}

func renderOutcome(s *combat.Session) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════")
	switch s.Outcome {
	case combat.OutcomeVictory:
		fmt.Println("            VICTORY")
	case combat.OutcomeDefeat:
		fmt.Println("            DEFEAT")
	default:
		fmt.Println("          COMBAT OVER")
	}
	fmt.Println("═══════════════════════════════════")
	fmt.Printf("HP %d/%d  Gold %d\n", s.Player.HP, s.Player.MaxHP, s.Player.Gold)
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  play N [T]   play hand card N, targeting enemy T (both 1-indexed)")
	fmt.Println("  end          end your turn; every enemy acts in order")
	fmt.Println("  advance      step a single enemy action instead")
	fmt.Println("  state        show the battlefield")
	fmt.Println("  quit         leave the combat")
}
