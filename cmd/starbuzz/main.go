package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/headfirst-patterns/internal/beverage"
	"github.com/KirkDiggler/headfirst-patterns/internal/config"
)

func main() {
	recipe := flag.String("recipe", "", `order to price, e.g. "venti house_blend mocha whip"`)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *recipe != "" {
		if err := printRecipe(*recipe, cfg); err != nil {
			log.Fatalf("Failed to price order: %v", err)
		}
		return
	}

	fmt.Println("Starbuzz, their way:")
	printAll(cfg, []beverage.Beverage{
		beverage.NewWhip(beverage.NewMocha(beverage.NewHouseBlend(beverage.SizeTall))),
		beverage.NewMilk(beverage.NewDarkRoast(beverage.SizeTall)),
		beverage.NewDecaf(beverage.SizeTall),
		beverage.NewWhip(beverage.NewWhip(beverage.NewWhip(beverage.NewEspresso(beverage.SizeTall)))),
	})

	fmt.Println()
	fmt.Println("Starbuzz, with sizes:")
	printAll(cfg, []beverage.Beverage{
		beverage.NewWhip(beverage.NewMocha(beverage.NewHouseBlend(beverage.SizeVenti))),
		beverage.NewMilk(beverage.NewDarkRoast(beverage.SizeTall)),
		beverage.NewDecaf(beverage.SizeGrande),
		beverage.NewWhip(beverage.NewWhip(beverage.NewWhip(beverage.NewEspresso(beverage.SizeGrande)))),
	})
}

func printRecipe(order string, cfg *config.Config) error {
	r, err := beverage.ParseRecipe(order, cfg.Starbuzz.DefaultSize)
	if err != nil {
		return err
	}

	drink, err := r.Build()
	if err != nil {
		return err
	}

	line, err := beverage.Receipt(drink, cfg.Starbuzz.Currency)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", drink.Size(), line)
	return nil
}

func printAll(cfg *config.Config, drinks []beverage.Beverage) {
	for _, drink := range drinks {
		line, err := beverage.Receipt(drink, cfg.Starbuzz.Currency)
		if err != nil {
			log.Printf("Failed to price drink: %v", err)
			continue
		}
		fmt.Printf("  %-6s %s\n", strings.ToLower(drink.Size().String()), line)
	}
}
