package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mcweed-code/casa-fabio-parts-pro/config"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/registry"
)

// MongoDB_CollectionName holds the MongoDB collection names.
type MongoDB_CollectionName struct {
	Coefficients string // Per-user coefficient configuration records
	Orders       string // Saved order snapshots
}

// Global singletons, set up once during server initialization.
var Validate *validator.Validate                 // Input validation
var MongoDB_Session *mongo.Client                // MongoDB connection session
var ServerConfig *config.Configuration           // Server configuration
var ColNames = *new(MongoDB_CollectionName)      // Collection names

// RegistryCollections holds the initialized mongo collections by name.
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
