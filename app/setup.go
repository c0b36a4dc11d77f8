package app

import (
	"context"
	"fmt"

	"github.com/s-204-cmd/Scholars-spotlight-india/api"
	"github.com/s-204-cmd/Scholars-spotlight-india/config"
	"github.com/s-204-cmd/Scholars-spotlight-india/database"
	"github.com/s-204-cmd/Scholars-spotlight-india/router"
	"github.com/s-204-cmd/Scholars-spotlight-india/services"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Connect to the key-value store
	store, err := database.NewRedisStore(getEnv.REDIS_URL)
	if err != nil {
		print("Check whether Redis is running or not\n")
		print("If not running, run the following command:\n")
		print("  docker run -d -p 6379:6379 redis:7-alpine\n")
		return err
	}

	// Defer closing the store
	defer store.Close()

	// Build the two stores. The session must be restored before the server
	// accepts requests, and the catalog loads (or seeds) after it.
	session := services.NewSessionService(store)
	catalog := services.NewCatalogService(store, session)

	ctx := context.Background()
	if err := session.Restore(ctx); err != nil {
		return err
	}
	if err := catalog.Load(ctx); err != nil {
		return err
	}

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes
	router.SetupRoutes(app, router.RouterConfig{
		Store:          store,
		Session:        session,
		Catalog:        catalog,
		AllowedOrigins: getEnv.ALLOWED_ORIGINS,
	})

	// Get the PORT & Start the Server
	return server.Run()

}
