// Command seed writes sample outlets and field reports into the configured
// document store and prints a development token for AUTH_MODE=jwt.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"fieldtrack/config"
	"fieldtrack/database"
	"fieldtrack/database/seed"
	"fieldtrack/models"
	"fieldtrack/utils"
)

func main() {
	outlets := flag.Int("outlets", 10, "number of outlets to generate")
	months := flag.Int("months", 12, "months of reports per outlet")
	role := flag.String("role", string(models.RoleAdmin), "role of the printed development token")
	flag.Parse()

	config.LoadConfig()
	if config.AppConfig.DocumentStore == "memory" {
		log.Fatal("seed: DOCUMENT_STORE=memory does not persist; the server seeds it on startup")
	}

	stores, err := database.OpenStores(config.AppConfig.DocumentStore)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ds := seed.Generate(time.Now(), *outlets, *months, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := seed.Write(ctx, stores.Writer, config.ReportCollections(), config.AppConfig.CollectionOutlets, ds); err != nil {
		log.Fatalf("seed: %v", err)
	}
	fmt.Printf("Seeded %d outlets and %d reports into %s\n", len(ds.Outlets), len(ds.Reports), config.AppConfig.DocumentStore)

	if config.AppConfig.JWTSecret != "" {
		token, err := utils.GenerateToken([]byte(config.AppConfig.JWTSecret), "seed", *role, 24*time.Hour)
		if err != nil {
			log.Fatalf("seed: failed to sign token: %v", err)
		}
		fmt.Printf("Development token (%s, 24h):\n%s\n", *role, token)
	}
}
