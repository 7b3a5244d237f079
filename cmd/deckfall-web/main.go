// Command deckfall-web serves the combat API and an optional browser UI.
package main

import (
	"fmt"
	"log"
	"os"

	"deckfall/internal/web"
)

func main() {
	cfg, err := web.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srv, err := web.NewServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Printf("deckfall web server listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
