package main

import (
	"log"

	"opendraft/config"
	"opendraft/scripts/seed"
)

// Standalone entry point for seeding; `cmd/main.go seed` runs the same
// data set.
func main() {
	config.InitConfig()
	config.InitDB()
	defer config.CloseDB()

	if err := seed.Run(config.DB); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding completed!")
}
