// Command deckfall-mcp serves combat tools over MCP stdio.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	deckfallmcp "deckfall/internal/mcp"
)

func main() {
	loadouts := flag.String("loadouts", "", "path to a loadout YAML file (optional, adds to built-ins)")
	flag.Parse()

	deckfallmcp.SetLoadoutsFile(*loadouts)

	s := server.NewMCPServer("deckfall", "1.0.0")
	deckfallmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
