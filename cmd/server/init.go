package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mcweed-code/casa-fabio-parts-pro/config"
	coeffmodels "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/coefficient/models"
	ordermodels "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/orders/models"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/database"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/global"
)

// InitGlobal initializes the shared state every other init step depends on.
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

// initColNames sets the collection names used across the service.
func initColNames() {
	global.ColNames.Coefficients = "coefficients"
	global.ColNames.Orders = "orders"

	logrus.Info("Initialized collection names")
}

// initValidator registers the custom validation rules (no_xss, markup_mode).
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig loads the server configuration from the environment.
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB connects to MongoDB, ensures the collections exist
// and creates the indexes declared on the models.
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	dbName := global.ServerConfig.MongoDB_DBName
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.ColNames.Coefficients), coeffmodels.CoefficientConfig{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.ColNames.Orders), ordermodels.OrderSnapshot{})
}
