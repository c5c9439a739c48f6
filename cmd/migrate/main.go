package main

import (
	"fmt"
	"log"
	"os"

	"github.com/farmlink-ke/farm_market/internal/config"
	"github.com/farmlink-ke/farm_market/internal/db"
	"github.com/farmlink-ke/farm_market/internal/migrations"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s apply|revert\n", os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) != 2 {
		usage()
	}

	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	gormDB, err := db.Open(configuration.DSN())
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}

	switch os.Args[1] {
	case "apply":
		if err := migrations.Upgrade(gormDB); err != nil {
			log.Fatalf("apply failed: %v", err)
		}
		log.Println("schema applied")
	case "revert":
		if err := migrations.Downgrade(gormDB); err != nil {
			log.Fatalf("revert failed: %v", err)
		}
		log.Println("schema reverted")
	default:
		usage()
	}
}
