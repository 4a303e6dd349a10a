package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

// envFiles are loaded in this order; a variable set by an earlier file (or
// by the shell) is not overwritten by a later one.
var envFiles = []string{".env.local", ".env"}

func loadEnv() {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			pterm.Warning.Printf("cannot load %s: %v\n", f, err)
		}
	}
}

func envOr(key, dflt string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return dflt
}
