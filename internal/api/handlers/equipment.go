package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"armory/internal/api/dto"
	"armory/internal/api/middleware"
	"armory/internal/api/services"
	"armory/internal/catalog"
	"armory/internal/repository"
)

type EquipmentHandler struct {
	catalogClient    *catalog.Client
	equipmentService *services.EquipmentService
}

func NewEquipmentHandler(db *sqlx.DB, catalogClient *catalog.Client) *EquipmentHandler {
	equipmentRepo := repository.NewEquipmentRepository(db)

	return &EquipmentHandler{
		catalogClient:    catalogClient,
		equipmentService: services.NewEquipmentService(equipmentRepo),
	}
}

// FetchCatalogItem godoc
// @Summary Fetch an item from the external catalog
// @Description Probes every catalog category endpoint for the slugified index and returns the first match
// @Tags equipment
// @Produce json
// @Param index path string true "Item name or slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /equipment/fetch/{index} [get]
func (h *EquipmentHandler) FetchCatalogItem(c echo.Context) error {
	index := c.Param("index")
	if index == "" {
		return ErrBadRequest(c, "item index is required")
	}

	payload, err := h.catalogClient.Lookup(c.Request().Context(), index)
	if err != nil {
		var notFound *catalog.NotFoundError
		if errors.As(err, &notFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"message": "Item not found",
				"errors":  notFound.Failures,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to fetch data",
		})
	}

	return c.JSONBlob(http.StatusOK, payload)
}

// CreateEquipment godoc
// @Summary Create an equipment record
// @Tags equipment
// @Accept json
// @Produce json
// @Param body body dto.EquipmentForm true "Equipment fields"
// @Success 201 {object} dto.Equipment
// @Failure 400 {object} map[string]string
// @Router /equipment [post]
func (h *EquipmentHandler) CreateEquipment(c echo.Context) error {
	var form dto.EquipmentForm
	if err := c.Bind(&form); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	// The route is open; an authenticated caller becomes the record owner.
	var createdBy *uuid.UUID
	if userID, err := middleware.GetUserIDFromContext(c.Request().Context()); err == nil {
		createdBy = &userID
	}

	eq, err := h.equipmentService.Create(c.Request().Context(), &form, createdBy)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			return ErrBadRequest(c, "name is required")
		}
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusCreated, dto.EquipmentFromDomain(eq))
}

// GetEquipment godoc
// @Summary List equipment created by the caller
// @Tags equipment
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.Equipment
// @Failure 401 {object} map[string]string
// @Router /api/equipment [get]
func (h *EquipmentHandler) GetEquipment(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	records, err := h.equipmentService.ListCreatedBy(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.EquipmentsFromDomain(records))
}

// GetEquipmentByID godoc
// @Summary Get one equipment record
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment id"
// @Success 200 {object} dto.Equipment
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipmentByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "equipment not found")
	}

	eq, err := h.equipmentService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEquipmentNotFound) {
			return ErrNotFound(c, "equipment not found")
		}
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.EquipmentFromDomain(eq))
}

// UpdateEquipment godoc
// @Summary Update an equipment record
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment id"
// @Param body body dto.EquipmentPatch true "Partial equipment fields"
// @Success 200 {object} dto.Equipment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "equipment not found")
	}

	var patch dto.EquipmentPatch
	if err := c.Bind(&patch); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	eq, err := h.equipmentService.Update(c.Request().Context(), id, &patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired):
			return ErrBadRequest(c, "name is required")
		case errors.Is(err, services.ErrEquipmentNotFound):
			return ErrNotFound(c, "equipment not found")
		default:
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusOK, dto.EquipmentFromDomain(eq))
}
