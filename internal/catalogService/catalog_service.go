package catalog

import (
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// CatalogService manages brand, category and model metadata. Plain CRUD:
// the only rules are referential ones (a model needs an existing brand and
// categories, and nothing referenced can be deleted).
type CatalogService struct {
	repo repository.CatalogDB
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.CatalogDB) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) CreateBrand(name, picture string) (models.Brand, error) {
	if name == "" {
		return models.Brand{}, fmt.Errorf("service: %w - empty brand name", auctionerrors.ErrInvalidInput)
	}
	now := time.Now().UTC()
	brand := models.Brand{
		BrandID:   utils.GenerateID(),
		Name:      name,
		Picture:   picture,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateBrand(brand); err != nil {
		return models.Brand{}, fmt.Errorf("service: failed to create brand %s: %w", name, err)
	}
	return brand, nil
}

func (s *CatalogService) GetBrand(brandID string) (models.Brand, error) {
	if brandID == "" {
		return models.Brand{}, fmt.Errorf("service: %w - empty brand ID", auctionerrors.ErrInvalidInput)
	}
	brand, err := s.repo.GetBrand(brandID)
	if err != nil {
		return models.Brand{}, fmt.Errorf("service: failed to get brand %s: %w", brandID, err)
	}
	return brand, nil
}

func (s *CatalogService) GetBrands(opts repository.ListOptions) ([]models.Brand, error) {
	brands, err := s.repo.GetBrands(opts)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get brands: %w", err)
	}
	return brands, nil
}

func (s *CatalogService) UpdateBrand(brandID, name, picture string) (models.Brand, error) {
	if brandID == "" {
		return models.Brand{}, fmt.Errorf("service: %w - empty brand ID", auctionerrors.ErrInvalidInput)
	}
	update := models.Brand{
		BrandID:   brandID,
		Name:      name,
		Picture:   picture,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.UpdateBrand(update); err != nil {
		return models.Brand{}, fmt.Errorf("service: failed to update brand %s: %w", brandID, err)
	}
	brand, err := s.repo.GetBrand(brandID)
	if err != nil {
		return models.Brand{}, fmt.Errorf("service: failed to get brand %s: %w", brandID, err)
	}
	return brand, nil
}

func (s *CatalogService) DeleteBrand(brandID string) error {
	if brandID == "" {
		return fmt.Errorf("service: %w - empty brand ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.DeleteBrand(brandID); err != nil {
		return fmt.Errorf("service: failed to delete brand %s: %w", brandID, err)
	}
	return nil
}

func (s *CatalogService) CreateCategory(name string) (models.Category, error) {
	if name == "" {
		return models.Category{}, fmt.Errorf("service: %w - empty category name", auctionerrors.ErrInvalidInput)
	}
	now := time.Now().UTC()
	category := models.Category{
		CategoryID: utils.GenerateID(),
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateCategory(category); err != nil {
		return models.Category{}, fmt.Errorf("service: failed to create category %s: %w", name, err)
	}
	return category, nil
}

func (s *CatalogService) GetCategory(categoryID string) (models.Category, error) {
	if categoryID == "" {
		return models.Category{}, fmt.Errorf("service: %w - empty category ID", auctionerrors.ErrInvalidInput)
	}
	category, err := s.repo.GetCategory(categoryID)
	if err != nil {
		return models.Category{}, fmt.Errorf("service: failed to get category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *CatalogService) GetCategories(opts repository.ListOptions) ([]models.Category, error) {
	categories, err := s.repo.GetCategories(opts)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) UpdateCategory(categoryID, name string) (models.Category, error) {
	if categoryID == "" {
		return models.Category{}, fmt.Errorf("service: %w - empty category ID", auctionerrors.ErrInvalidInput)
	}
	update := models.Category{
		CategoryID: categoryID,
		Name:       name,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.repo.UpdateCategory(update); err != nil {
		return models.Category{}, fmt.Errorf("service: failed to update category %s: %w", categoryID, err)
	}
	category, err := s.repo.GetCategory(categoryID)
	if err != nil {
		return models.Category{}, fmt.Errorf("service: failed to get category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(categoryID string) error {
	if categoryID == "" {
		return fmt.Errorf("service: %w - empty category ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.DeleteCategory(categoryID); err != nil {
		return fmt.Errorf("service: failed to delete category %s: %w", categoryID, err)
	}
	return nil
}

// CreateModel registers a model under a brand with a set of category tags.
// The repository verifies that the brand and every category exist.
func (s *CatalogService) CreateModel(name, brandID string, categoryIDs []string) (models.Model, error) {
	if name == "" || brandID == "" {
		return models.Model{}, fmt.Errorf("service: %w - missing model name or brandID", auctionerrors.ErrInvalidInput)
	}
	now := time.Now().UTC()
	m := models.Model{
		ModelID:     utils.GenerateID(),
		Name:        name,
		BrandID:     brandID,
		CategoryIDs: categoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateModel(m); err != nil {
		return models.Model{}, fmt.Errorf("service: failed to create model %s: %w", name, err)
	}
	return m, nil
}

func (s *CatalogService) GetModel(modelID string) (models.Model, error) {
	if modelID == "" {
		return models.Model{}, fmt.Errorf("service: %w - empty model ID", auctionerrors.ErrInvalidInput)
	}
	m, err := s.repo.GetModel(modelID)
	if err != nil {
		return models.Model{}, fmt.Errorf("service: failed to get model %s: %w", modelID, err)
	}
	return m, nil
}

func (s *CatalogService) GetModels(opts repository.ListOptions) ([]models.Model, error) {
	out, err := s.repo.GetModels(opts)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get models: %w", err)
	}
	return out, nil
}

func (s *CatalogService) ModelsByBrand(brandID string, opts repository.ListOptions) ([]models.Model, error) {
	if brandID == "" {
		return nil, fmt.Errorf("service: %w - empty brand ID", auctionerrors.ErrInvalidInput)
	}
	out, err := s.repo.GetModelsByBrand(brandID, opts)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get models of brand %s: %w", brandID, err)
	}
	return out, nil
}

// UpdateModel renames a model and/or replaces its category set. A nil
// categoryIDs leaves the set untouched; an empty non-nil slice clears it.
func (s *CatalogService) UpdateModel(modelID, name string, categoryIDs []string) (models.Model, error) {
	if modelID == "" {
		return models.Model{}, fmt.Errorf("service: %w - empty model ID", auctionerrors.ErrInvalidInput)
	}
	update := models.Model{
		ModelID:     modelID,
		Name:        name,
		CategoryIDs: categoryIDs,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.repo.UpdateModel(update); err != nil {
		return models.Model{}, fmt.Errorf("service: failed to update model %s: %w", modelID, err)
	}
	m, err := s.repo.GetModel(modelID)
	if err != nil {
		return models.Model{}, fmt.Errorf("service: failed to get model %s: %w", modelID, err)
	}
	return m, nil
}

func (s *CatalogService) DeleteModel(modelID string) error {
	if modelID == "" {
		return fmt.Errorf("service: %w - empty model ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.DeleteModel(modelID); err != nil {
		return fmt.Errorf("service: failed to delete model %s: %w", modelID, err)
	}
	return nil
}
