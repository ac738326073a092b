package handler

import (
	"net/http"

	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/services/api/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	CreateBrand(name, picture string) (model.Brand, error)
	GetBrand(brandID string) (model.Brand, error)
	GetBrands(opts repository.ListOptions) ([]model.Brand, error)
	UpdateBrand(brandID, name, picture string) (model.Brand, error)
	DeleteBrand(brandID string) error
	CreateCategory(name string) (model.Category, error)
	GetCategory(categoryID string) (model.Category, error)
	GetCategories(opts repository.ListOptions) ([]model.Category, error)
	UpdateCategory(categoryID, name string) (model.Category, error)
	DeleteCategory(categoryID string) error
	CreateModel(name, brandID string, categoryIDs []string) (model.Model, error)
	GetModel(modelID string) (model.Model, error)
	GetModels(opts repository.ListOptions) ([]model.Model, error)
	ModelsByBrand(brandID string, opts repository.ListOptions) ([]model.Model, error)
	UpdateModel(modelID, name string, categoryIDs []string) (model.Model, error)
	DeleteModel(modelID string) error
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateBrandHandler handles POST /brands
func (h *CatalogHandler) CreateBrandHandler(c *gin.Context) {
	var req helpers.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBrandHandler", err)
		return
	}

	brand, err := h.service.CreateBrand(req.Name, req.Picture)
	if err != nil {
		helpers.RespondServiceError(c, "CreateBrandHandler", err, map[string]any{"name": req.Name})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, brand, "brand created successfully")
	helpers.LogSuccess("CreateBrandHandler", "brand created successfully", map[string]any{
		"brand_id": brand.BrandID,
	})
}

// GetBrandHandler handles GET /brands/:brand_id
func (h *CatalogHandler) GetBrandHandler(c *gin.Context) {
	brandID := c.Param("brand_id")
	brand, err := h.service.GetBrand(brandID)
	if err != nil {
		helpers.RespondServiceError(c, "GetBrandHandler", err, map[string]any{"brand_id": brandID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, brand, "brand retrieved successfully")
}

// ListBrandsHandler handles GET /brands
func (h *CatalogHandler) ListBrandsHandler(c *gin.Context) {
	brands, err := h.service.GetBrands(helpers.ParseListOptions(c))
	if err != nil {
		helpers.RespondServiceError(c, "ListBrandsHandler", err, nil)
		return
	}
	if brands == nil {
		brands = []model.Brand{}
	}
	utils.JSONResponse(c, http.StatusOK, brands, "brands retrieved successfully")
}

// UpdateBrandHandler handles PUT /brands/:brand_id
func (h *CatalogHandler) UpdateBrandHandler(c *gin.Context) {
	brandID := c.Param("brand_id")
	var req helpers.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBrandHandler", err)
		return
	}

	brand, err := h.service.UpdateBrand(brandID, req.Name, req.Picture)
	if err != nil {
		helpers.RespondServiceError(c, "UpdateBrandHandler", err, map[string]any{"brand_id": brandID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, brand, "brand updated successfully")
}

// DeleteBrandHandler handles DELETE /brands/:brand_id
func (h *CatalogHandler) DeleteBrandHandler(c *gin.Context) {
	brandID := c.Param("brand_id")
	if err := h.service.DeleteBrand(brandID); err != nil {
		helpers.RespondServiceError(c, "DeleteBrandHandler", err, map[string]any{"brand_id": brandID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"brand_id": brandID}, "brand deleted successfully")
}

// CreateCategoryHandler handles POST /categories
func (h *CatalogHandler) CreateCategoryHandler(c *gin.Context) {
	var req helpers.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCategoryHandler", err)
		return
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		helpers.RespondServiceError(c, "CreateCategoryHandler", err, map[string]any{"name": req.Name})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, category, "category created successfully")
}

// GetCategoryHandler handles GET /categories/:category_id
func (h *CatalogHandler) GetCategoryHandler(c *gin.Context) {
	categoryID := c.Param("category_id")
	category, err := h.service.GetCategory(categoryID)
	if err != nil {
		helpers.RespondServiceError(c, "GetCategoryHandler", err, map[string]any{"category_id": categoryID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, category, "category retrieved successfully")
}

// ListCategoriesHandler handles GET /categories
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.GetCategories(helpers.ParseListOptions(c))
	if err != nil {
		helpers.RespondServiceError(c, "ListCategoriesHandler", err, nil)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
}

// UpdateCategoryHandler handles PUT /categories/:category_id
func (h *CatalogHandler) UpdateCategoryHandler(c *gin.Context) {
	categoryID := c.Param("category_id")
	var req helpers.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCategoryHandler", err)
		return
	}

	category, err := h.service.UpdateCategory(categoryID, req.Name)
	if err != nil {
		helpers.RespondServiceError(c, "UpdateCategoryHandler", err, map[string]any{"category_id": categoryID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, category, "category updated successfully")
}

// DeleteCategoryHandler handles DELETE /categories/:category_id
func (h *CatalogHandler) DeleteCategoryHandler(c *gin.Context) {
	categoryID := c.Param("category_id")
	if err := h.service.DeleteCategory(categoryID); err != nil {
		helpers.RespondServiceError(c, "DeleteCategoryHandler", err, map[string]any{"category_id": categoryID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"category_id": categoryID}, "category deleted successfully")
}

// CreateModelHandler handles POST /models
func (h *CatalogHandler) CreateModelHandler(c *gin.Context) {
	var req helpers.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateModelHandler", err)
		return
	}

	m, err := h.service.CreateModel(req.Name, req.BrandID, req.CategoryIDs)
	if err != nil {
		helpers.RespondServiceError(c, "CreateModelHandler", err, map[string]any{
			"name":     req.Name,
			"brand_id": req.BrandID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, m, "model created successfully")
	helpers.LogSuccess("CreateModelHandler", "model created successfully", map[string]any{
		"model_id": m.ModelID,
	})
}

// GetModelHandler handles GET /models/:model_id
func (h *CatalogHandler) GetModelHandler(c *gin.Context) {
	modelID := c.Param("model_id")
	m, err := h.service.GetModel(modelID)
	if err != nil {
		helpers.RespondServiceError(c, "GetModelHandler", err, map[string]any{"model_id": modelID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, m, "model retrieved successfully")
}

// ListModelsHandler handles GET /models
func (h *CatalogHandler) ListModelsHandler(c *gin.Context) {
	out, err := h.service.GetModels(helpers.ParseListOptions(c))
	if err != nil {
		helpers.RespondServiceError(c, "ListModelsHandler", err, nil)
		return
	}
	if out == nil {
		out = []model.Model{}
	}
	utils.JSONResponse(c, http.StatusOK, out, "models retrieved successfully")
}

// ModelsByBrandHandler handles GET /brands/:brand_id/models
func (h *CatalogHandler) ModelsByBrandHandler(c *gin.Context) {
	brandID := c.Param("brand_id")
	out, err := h.service.ModelsByBrand(brandID, helpers.ParseListOptions(c))
	if err != nil {
		helpers.RespondServiceError(c, "ModelsByBrandHandler", err, map[string]any{"brand_id": brandID})
		return
	}
	if out == nil {
		out = []model.Model{}
	}
	utils.JSONResponse(c, http.StatusOK, out, "models retrieved successfully")
}

// UpdateModelHandler handles PUT /models/:model_id
func (h *CatalogHandler) UpdateModelHandler(c *gin.Context) {
	modelID := c.Param("model_id")
	var req helpers.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateModelHandler", err)
		return
	}

	m, err := h.service.UpdateModel(modelID, req.Name, req.CategoryIDs)
	if err != nil {
		helpers.RespondServiceError(c, "UpdateModelHandler", err, map[string]any{"model_id": modelID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, m, "model updated successfully")
}

// DeleteModelHandler handles DELETE /models/:model_id
func (h *CatalogHandler) DeleteModelHandler(c *gin.Context) {
	modelID := c.Param("model_id")
	if err := h.service.DeleteModel(modelID); err != nil {
		helpers.RespondServiceError(c, "DeleteModelHandler", err, map[string]any{"model_id": modelID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"model_id": modelID}, "model deleted successfully")
}
