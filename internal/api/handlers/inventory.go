package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"

	"armory/internal/api/dto"
	"armory/internal/api/middleware"
	"armory/internal/api/services"
	"armory/internal/api/ws"
	r "armory/internal/redis"
	"armory/internal/repository"
)

type InventoryHandler struct {
	rdb              *goredis.Client
	inventoryService *services.InventoryService
	hub              *ws.Hub
}

func NewInventoryHandler(db *sqlx.DB, rdb ...*goredis.Client) *InventoryHandler {
	equipmentRepo := repository.NewEquipmentRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	equipmentService := services.NewEquipmentService(equipmentRepo)
	inventoryService := services.NewInventoryService(inventoryRepo, equipmentRepo, equipmentService)

	var redisClient *goredis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	return &InventoryHandler{
		rdb:              redisClient,
		inventoryService: inventoryService,
		hub:              ws.GetHub(),
	}
}

func (h *InventoryHandler) invalidateInventoryCache(ctx context.Context, userID uuid.UUID) {
	if h.rdb == nil {
		return
	}
	_ = r.InventoryCache(h.rdb).Delete(ctx, userID.String())
}

// GetInventory godoc
// @Summary List the caller's inventory with equipment resolved
// @Tags inventory
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.InventoryItem
// @Failure 401 {object} map[string]string
// @Router /api/inventory [get]
func (h *InventoryHandler) GetInventory(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	if h.rdb != nil {
		cached, err := r.InventoryCache(h.rdb).Get(c.Request().Context(), userID.String())
		if err == nil && cached != nil {
			return c.JSON(http.StatusOK, dto.InventoryItemsFromDomain(*cached))
		}
	}

	items, err := h.inventoryService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	if h.rdb != nil {
		_ = r.InventoryCache(h.rdb).Set(c.Request().Context(), userID.String(), &items)
	}

	return c.JSON(http.StatusOK, dto.InventoryItemsFromDomain(items))
}

// AddToInventory godoc
// @Summary Add a raw item to the caller's inventory
// @Description Same-named equipment increments the existing row; otherwise a new row is created
// @Tags inventory
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body dto.AddInventoryRequest true "Raw item"
// @Success 200 {object} dto.InventoryItem "existing row incremented"
// @Success 201 {object} dto.InventoryItem "new row created"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/inventory/add [post]
func (h *InventoryHandler) AddToInventory(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.AddInventoryRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	result, err := h.inventoryService.AddItem(c.Request().Context(), userID, &req.Item)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			return ErrBadRequest(c, "item name is required")
		}
		return ErrInternalServerError(c)
	}

	h.invalidateInventoryCache(c.Request().Context(), userID)
	_ = h.hub.SendInventoryUpdate(userID, result.Item.ID, result.Status(), result.Item.Quantity)

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, dto.InventoryItemFromDomain(result.Item))
}

// UpdateInventoryItem godoc
// @Summary Update an inventory item and optionally its equipment record
// @Tags inventory
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Inventory item id"
// @Param body body dto.UpdateInventoryRequest true "Fields to update"
// @Success 200 {object} dto.InventoryItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/inventory/{id} [put]
func (h *InventoryHandler) UpdateInventoryItem(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "inventory item not found")
	}

	var req dto.UpdateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	item, err := h.inventoryService.UpdateItem(c.Request().Context(), itemID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInventoryItemNotFound):
			return ErrNotFound(c, "inventory item not found")
		case errors.Is(err, services.ErrEquipmentNotFound):
			return ErrNotFound(c, "equipment not found")
		case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrNameRequired):
			return ErrBadRequest(c, err.Error())
		default:
			return ErrInternalServerError(c)
		}
	}

	h.invalidateInventoryCache(c.Request().Context(), userID)
	_ = h.hub.SendInventoryUpdate(userID, item.ID, "updated", item.Quantity)

	return c.JSON(http.StatusOK, dto.InventoryItemFromDomain(item))
}

// UpdateItemQuantity godoc
// @Summary Set the quantity of an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Inventory item id"
// @Param body body dto.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} dto.InventoryItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/inventory/{id}/quantity [put]
func (h *InventoryHandler) UpdateItemQuantity(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "inventory item not found")
	}

	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	item, err := h.inventoryService.UpdateQuantity(c.Request().Context(), itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			return ErrBadRequest(c, "quantity must be at least 1")
		case errors.Is(err, services.ErrInventoryItemNotFound):
			return ErrNotFound(c, "inventory item not found")
		default:
			return ErrInternalServerError(c)
		}
	}

	h.invalidateInventoryCache(c.Request().Context(), userID)
	_ = h.hub.SendInventoryUpdate(userID, item.ID, "updated", item.Quantity)

	return c.JSON(http.StatusOK, dto.InventoryItemFromDomain(item))
}

// DeleteInventoryItem godoc
// @Summary Delete an inventory item
// @Description Also deletes the equipment record when no other inventory item references it
// @Tags inventory
// @Produce json
// @Security Bearer
// @Param itemId path string true "Inventory item id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/inventory/{itemId} [delete]
func (h *InventoryHandler) DeleteInventoryItem(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return ErrNotFound(c, "inventory item not found")
	}

	if err := h.inventoryService.DeleteItem(c.Request().Context(), itemID); err != nil {
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			return ErrNotFound(c, "inventory item not found")
		}
		return ErrInternalServerError(c)
	}

	h.invalidateInventoryCache(c.Request().Context(), userID)
	_ = h.hub.SendInventoryUpdate(userID, itemID, "deleted", 0)

	return SuccessResponse(c, "item deleted successfully")
}
