package main

import (
	"log"
	"os"

	"github.com/KirkDiggler/headfirst-patterns/internal/duck"
)

func main() {
	if err := duck.NewSimulator(os.Stdout).Run(); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}
