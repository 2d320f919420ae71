package main

import (
	"log"
	"os"

	"github.com/KirkDiggler/headfirst-patterns/internal/adventure"
	"github.com/KirkDiggler/headfirst-patterns/internal/uuid"
)

func main() {
	game := adventure.NewGame(uuid.NewGoogleUUIDGenerator(), os.Stdout)
	if err := game.Run(); err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}
