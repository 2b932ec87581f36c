package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velora/storefront-admin/internal/core/ports"
)

// CatalogHandler exposes category, sub-category, carousel and postcode CRUD.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// --- Request types ---

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

type subCategoryRequest struct {
	CategoryID  string `json:"category_id" validate:"required"`
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

type carouselRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url" validate:"required"`
	Link     string `json:"link"`
	Position int    `json:"position"`
	IsActive bool   `json:"is_active"`
}

type postcodeRequest struct {
	Code          string `json:"code" validate:"required"`
	City          string `json:"city"`
	DeliveryDays  int    `json:"delivery_days"`
	IsServiceable bool   `json:"is_serviceable"`
}

// --- Categories ---

// ListCategories handles GET /v1/categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Categories fetched", categories)
}

// GetCategory handles GET /v1/categories/:id.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.catalog.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Category fetched", category)
}

// CreateCategory handles POST /v1/categories.
//
// @Summary      Create a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  Envelope
// @Failure      422   {object}  Envelope
// @Router       /v1/categories [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.catalog.CreateCategory(c.Request().Context(), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory handles PUT /v1/categories/:id.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.catalog.UpdateCategory(c.Request().Context(), c.Param("id"), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory handles DELETE /v1/categories/:id.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalog.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Category deleted", nil)
}

// --- Sub-categories ---

// ListSubCategories handles GET /v1/subcategories?category_id=.
func (h *CatalogHandler) ListSubCategories(c echo.Context) error {
	subCategories, err := h.catalog.ListSubCategories(c.Request().Context(), c.QueryParam("category_id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Sub-categories fetched", subCategories)
}

// GetSubCategory handles GET /v1/subcategories/:id.
func (h *CatalogHandler) GetSubCategory(c echo.Context) error {
	subCategory, err := h.catalog.GetSubCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Sub-category fetched", subCategory)
}

// CreateSubCategory handles POST /v1/subcategories. The parent category must exist.
func (h *CatalogHandler) CreateSubCategory(c echo.Context) error {
	var req subCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	subCategory, err := h.catalog.CreateSubCategory(c.Request().Context(), ports.SubCategoryInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Sub-category created", subCategory)
}

// UpdateSubCategory handles PUT /v1/subcategories/:id.
func (h *CatalogHandler) UpdateSubCategory(c echo.Context) error {
	var req subCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	subCategory, err := h.catalog.UpdateSubCategory(c.Request().Context(), c.Param("id"), ports.SubCategoryInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Sub-category updated", subCategory)
}

// DeleteSubCategory handles DELETE /v1/subcategories/:id.
func (h *CatalogHandler) DeleteSubCategory(c echo.Context) error {
	if err := h.catalog.DeleteSubCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Sub-category deleted", nil)
}

// --- Carousels ---

// ListCarousels handles GET /v1/carousels.
func (h *CatalogHandler) ListCarousels(c echo.Context) error {
	carousels, err := h.catalog.ListCarousels(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Carousels fetched", carousels)
}

// GetCarousel handles GET /v1/carousels/:id.
func (h *CatalogHandler) GetCarousel(c echo.Context) error {
	carousel, err := h.catalog.GetCarousel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Carousel fetched", carousel)
}

// CreateCarousel handles POST /v1/carousels.
func (h *CatalogHandler) CreateCarousel(c echo.Context) error {
	var req carouselRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	carousel, err := h.catalog.CreateCarousel(c.Request().Context(), ports.CarouselInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Link:     req.Link,
		Position: req.Position,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Carousel created", carousel)
}

// UpdateCarousel handles PUT /v1/carousels/:id.
func (h *CatalogHandler) UpdateCarousel(c echo.Context) error {
	var req carouselRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	carousel, err := h.catalog.UpdateCarousel(c.Request().Context(), c.Param("id"), ports.CarouselInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Link:     req.Link,
		Position: req.Position,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Carousel updated", carousel)
}

// DeleteCarousel handles DELETE /v1/carousels/:id.
func (h *CatalogHandler) DeleteCarousel(c echo.Context) error {
	if err := h.catalog.DeleteCarousel(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Carousel deleted", nil)
}

// --- Postcodes ---

// ListPostcodes handles GET /v1/postcodes.
func (h *CatalogHandler) ListPostcodes(c echo.Context) error {
	postcodes, err := h.catalog.ListPostcodes(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Postcodes fetched", postcodes)
}

// CheckPostcode handles GET /v1/postcodes/check/:code, the public serviceability lookup.
func (h *CatalogHandler) CheckPostcode(c echo.Context) error {
	postcode, err := h.catalog.CheckPostcode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	msg := "Delivery available"
	if !postcode.IsServiceable {
		msg = "Delivery not available"
	}
	return respond(c, http.StatusOK, msg, postcode)
}

// CreatePostcode handles POST /v1/postcodes.
func (h *CatalogHandler) CreatePostcode(c echo.Context) error {
	var req postcodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	postcode, err := h.catalog.CreatePostcode(c.Request().Context(), ports.PostcodeInput{
		Code:          req.Code,
		City:          req.City,
		DeliveryDays:  req.DeliveryDays,
		IsServiceable: req.IsServiceable,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Postcode created", postcode)
}

// UpdatePostcode handles PUT /v1/postcodes/:code.
func (h *CatalogHandler) UpdatePostcode(c echo.Context) error {
	var req postcodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	postcode, err := h.catalog.UpdatePostcode(c.Request().Context(), c.Param("code"), ports.PostcodeInput{
		Code:          req.Code,
		City:          req.City,
		DeliveryDays:  req.DeliveryDays,
		IsServiceable: req.IsServiceable,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Postcode updated", postcode)
}

// DeletePostcode handles DELETE /v1/postcodes/:code.
func (h *CatalogHandler) DeletePostcode(c echo.Context) error {
	if err := h.catalog.DeletePostcode(c.Request().Context(), c.Param("code")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Postcode deleted", nil)
}
