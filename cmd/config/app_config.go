package config

import (
	"Smart-Grocery-Backend/internal/api/handlers"
	"Smart-Grocery-Backend/internal/api/routes"
	"Smart-Grocery-Backend/internal/middleware"
	"Smart-Grocery-Backend/internal/utils"
	"Smart-Grocery-Backend/internal/utils/storage"
	"Smart-Grocery-Backend/pkg/grocery"
	"Smart-Grocery-Backend/pkg/history"
	"Smart-Grocery-Backend/pkg/recommend"
	"Smart-Grocery-Backend/pkg/snapshot"
	"Smart-Grocery-Backend/pkg/substitution"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	var objectStore storage.ObjectStore
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		objectStore = storage.NewAwsS3()
	} else {
		snapshotDir := utils.GetConfig("SNAPSHOT_DIR")
		if snapshotDir == "" {
			snapshotDir = "./snapshots"
		}
		objectStore = storage.NewLocalStore(snapshotDir)
	}

	catalog := substitution.LoadCatalog(utils.GetConfig("CATALOG_PATH"))
	seedHistory := utils.GetConfig("SEED_HISTORY_ON_CREATE") == "true"

	// Repository
	groceryRepository := grocery.NewGroceryRepository(db)
	historyRepository := history.NewHistoryRepository(db)

	// Service
	historyService := history.NewHistoryService(historyRepository)
	groceryService := grocery.NewGroceryService(groceryRepository, historyService, seedHistory)
	recommendService := recommend.NewRecommendService(historyRepository)
	substitutionService := substitution.NewSubstitutionService(catalog)
	snapshotService := snapshot.NewSnapshotService(groceryRepository, historyRepository, objectStore)

	// Handler
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	historyHandler := handlers.NewHistoryHandler(historyService, validator)
	recommendationHandler := handlers.NewRecommendationHandler(recommendService, validator)
	substitutionHandler := handlers.NewSubstitutionHandler(substitutionService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		GroceryHandler:        groceryHandler,
		HistoryHandler:        historyHandler,
		RecommendationHandler: recommendationHandler,
		SubstitutionHandler:   substitutionHandler,
		SnapshotHandler:       snapshotHandler,
		Middleware:            middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
