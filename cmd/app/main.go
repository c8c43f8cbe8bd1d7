package main

import (
	"Smart-Grocery-Backend/cmd/config"
	migration "Smart-Grocery-Backend/cmd/database/migrate"
	"Smart-Grocery-Backend/cmd/database/seed"
	"Smart-Grocery-Backend/internal/utils"
	"flag"
	"log"
)

func main() {
	runSeed := flag.Bool("seed", false, "load sample inventory and history after migrating")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	if *runSeed {
		if err := seed.Seed(db); err != nil {
			log.Fatalf("error seeding database: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
