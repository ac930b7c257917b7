package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"armory/internal/api/handlers"
	jwtMiddleware "armory/internal/api/middleware"
	"armory/internal/catalog"
	"armory/internal/config"
)

func SetupRoutes(e *echo.Echo, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	e.GET("/health", healthCheck)

	e.Validator = NewValidator()

	wsHandler := handlers.NewWebSocketHandler(cfg)
	e.GET("/api/ws", wsHandler.HandleConnection)

	authHandler := handlers.NewAuthHandler(db, cfg.JWTKey)
	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", authHandler.SignUp)
	authGroup.POST("/signin", authHandler.SignIn)

	catalogClient := catalog.NewClient(cfg.Catalog)
	equipmentHandler := handlers.NewEquipmentHandler(db, catalogClient)

	// Open equipment surface: catalog fetch, creation and record access do not
	// require a caller identity.
	e.GET("/equipment/fetch/:index", equipmentHandler.FetchCatalogItem)
	e.POST("/equipment", equipmentHandler.CreateEquipment)
	e.GET("/equipment/:id", equipmentHandler.GetEquipmentByID)
	e.PUT("/equipment/:id", equipmentHandler.UpdateEquipment)

	jwtConfig := echojwt.Config{
		SigningKey: []byte(cfg.JWTKey),
		ContextKey: "user",
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		},
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(echojwt.WithConfig(jwtConfig))
	apiGroup.Use(jwtMiddleware.ExtractUserIDFromJWT())

	apiGroup.GET("/equipment", equipmentHandler.GetEquipment)
	apiGroup.POST("/equipment", equipmentHandler.CreateEquipment)

	inventoryHandler := handlers.NewInventoryHandler(db, rdb)
	apiGroup.GET("/inventory", inventoryHandler.GetInventory)
	apiGroup.POST("/inventory/add", inventoryHandler.AddToInventory)
	apiGroup.PUT("/inventory/:id", inventoryHandler.UpdateInventoryItem)
	apiGroup.PUT("/inventory/:id/quantity", inventoryHandler.UpdateItemQuantity)
	apiGroup.DELETE("/inventory/:itemId", inventoryHandler.DeleteInventoryItem)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
