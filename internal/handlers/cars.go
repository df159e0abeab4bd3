package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dealership/internal/catalog"
	"dealership/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (h *Handler) GetCars(c *gin.Context) {
	cars, err := h.catalog.ListCars(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list cars", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "message": "Failed to load car catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"CarModels": cars})
}

//
// АДМИНКА КАТАЛОГА
//

func (h *Handler) ListMakes(c *gin.Context) {
	makes, err := h.catalog.ListMakes(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list car makes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load car makes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"CarMakes": makes})
}

type carMakeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Country     string `json:"country"`
}

func (h *Handler) CreateMake(c *gin.Context) {
	var req carMakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	mk := models.CarMake{Name: req.Name, Description: req.Description, Country: req.Country}
	if err := h.catalog.CreateMake(c.Request.Context(), &mk); err != nil {
		h.catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mk)
}

type carModelRequest struct {
	CarMakeID uint     `json:"carMakeId" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Type      string   `json:"type"`
	Year      *int     `json:"year"`
	Price     *float64 `json:"price"`
}

func (h *Handler) CreateModel(c *gin.Context) {
	var req carModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// без года модель считается текущей; явный 0 отклонит BeforeSave
	year := models.DefaultModelYear
	if req.Year != nil {
		year = *req.Year
	}

	m := models.CarModel{
		CarMakeID: req.CarMakeID,
		Name:      req.Name,
		Type:      models.CarType(req.Type),
		Year:      year,
		Price:     req.Price,
	}
	if err := h.catalog.CreateModel(c.Request.Context(), &m); err != nil {
		h.catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) DeleteMake(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car make id"})
		return
	}

	if err := h.catalog.DeleteMake(c.Request.Context(), uint(id)); err != nil {
		h.catalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) catalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidYear),
		errors.Is(err, models.ErrInvalidCarType),
		errors.Is(err, models.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown car make"})
	case errors.Is(err, catalog.ErrMakeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error("catalog write failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save catalog entry"})
	}
}
