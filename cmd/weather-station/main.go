package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/headfirst-patterns/internal/config"
	"github.com/KirkDiggler/headfirst-patterns/internal/uuid"
	"github.com/KirkDiggler/headfirst-patterns/internal/weather"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	station, err := weather.NewStation(cfg.Weather.Mode)
	if err != nil {
		log.Fatalf("Failed to create station: %v", err)
	}
	log.Printf("Weather station notifying in %s mode", station.Mode())

	displayConfig := &weather.DisplayConfig{
		Station:       station,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		Out:           os.Stdout,
	}
	weather.NewCurrentConditions(displayConfig)
	weather.NewStatistics(displayConfig)
	forecast := weather.NewForecast(displayConfig)

	if err := station.SetMeasurements(1, 2, 3); err != nil {
		log.Fatalf("Failed to publish measurements: %v", err)
	}

	forecast.Unregister()

	if err := station.SetMeasurements(75, 30, 10); err != nil {
		log.Fatalf("Failed to publish measurements: %v", err)
	}
}
