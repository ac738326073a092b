package catalog

import (
	"errors"
	"testing"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/repository"

	"github.com/stretchr/testify/require"
)

// The catalog rules are mostly referential, so these tests run against the
// in-memory repository instead of mocks.

func TestCatalogService_BrandLifecycle(t *testing.T) {
	service := NewCatalogService(repository.NewMemoryRepo())

	brand, err := service.CreateBrand("Nothing", "nothing_logo.jpg")
	require.NoError(t, err)
	require.NotEmpty(t, brand.BrandID)
	require.Equal(t, "Nothing", brand.Name)

	_, err = service.CreateBrand("", "x.jpg")
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))

	_, err = service.CreateBrand("Nothing", "other.jpg")
	require.True(t, errors.Is(err, auctionerrors.ErrConflict))

	got, err := service.GetBrand(brand.BrandID)
	require.NoError(t, err)
	require.Equal(t, brand.BrandID, got.BrandID)

	updated, err := service.UpdateBrand(brand.BrandID, "Nothing Tech", "")
	require.NoError(t, err)
	require.Equal(t, "Nothing Tech", updated.Name)
	require.Equal(t, "nothing_logo.jpg", updated.Picture, "empty picture should not clear the existing one")

	require.NoError(t, service.DeleteBrand(brand.BrandID))
	_, err = service.GetBrand(brand.BrandID)
	require.True(t, errors.Is(err, auctionerrors.ErrNotFound))
}

func TestCatalogService_CategoryLifecycle(t *testing.T) {
	service := NewCatalogService(repository.NewMemoryRepo())

	category, err := service.CreateCategory("Mobile")
	require.NoError(t, err)
	require.NotEmpty(t, category.CategoryID)

	_, err = service.CreateCategory("Mobile")
	require.True(t, errors.Is(err, auctionerrors.ErrConflict))

	updated, err := service.UpdateCategory(category.CategoryID, "Mobiles")
	require.NoError(t, err)
	require.Equal(t, "Mobiles", updated.Name)

	require.NoError(t, service.DeleteCategory(category.CategoryID))
	err = service.DeleteCategory(category.CategoryID)
	require.True(t, errors.Is(err, auctionerrors.ErrNotFound))
}

func TestCatalogService_ModelLifecycle(t *testing.T) {
	repo := repository.NewMemoryRepo()
	service := NewCatalogService(repo)

	brand, err := service.CreateBrand("Nothing", "")
	require.NoError(t, err)
	mobile, err := service.CreateCategory("Mobile")
	require.NoError(t, err)
	refurb, err := service.CreateCategory("Refurbished")
	require.NoError(t, err)

	m, err := service.CreateModel("Phone 1", brand.BrandID, []string{mobile.CategoryID})
	require.NoError(t, err)
	require.NotEmpty(t, m.ModelID)
	require.Equal(t, brand.BrandID, m.BrandID)
	require.Equal(t, []string{mobile.CategoryID}, m.CategoryIDs)

	t.Run("model_requires_existing_brand", func(t *testing.T) {
		_, err := service.CreateModel("Ghost Phone", "no-such-brand", nil)
		require.True(t, errors.Is(err, auctionerrors.ErrNotFound))
	})

	t.Run("model_requires_existing_categories", func(t *testing.T) {
		_, err := service.CreateModel("Phone 2", brand.BrandID, []string{"no-such-category"})
		require.True(t, errors.Is(err, auctionerrors.ErrNotFound))
	})

	t.Run("nil_categories_keep_current_set", func(t *testing.T) {
		updated, err := service.UpdateModel(m.ModelID, "Phone 1 Pro", nil)
		require.NoError(t, err)
		require.Equal(t, "Phone 1 Pro", updated.Name)
		require.Equal(t, []string{mobile.CategoryID}, updated.CategoryIDs)
	})

	t.Run("non_nil_categories_replace_set", func(t *testing.T) {
		updated, err := service.UpdateModel(m.ModelID, "", []string{mobile.CategoryID, refurb.CategoryID})
		require.NoError(t, err)
		require.Equal(t, "Phone 1 Pro", updated.Name, "empty name should not rename")
		require.Len(t, updated.CategoryIDs, 2)
	})

	t.Run("empty_non_nil_clears_set", func(t *testing.T) {
		updated, err := service.UpdateModel(m.ModelID, "", []string{})
		require.NoError(t, err)
		require.Empty(t, updated.CategoryIDs)
	})

	t.Run("brand_with_model_cannot_be_deleted", func(t *testing.T) {
		err := service.DeleteBrand(brand.BrandID)
		require.True(t, errors.Is(err, auctionerrors.ErrConflict))
	})

	t.Run("models_by_brand", func(t *testing.T) {
		out, err := service.ModelsByBrand(brand.BrandID, repository.ListOptions{Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, m.ModelID, out[0].ModelID)

		_, err = service.ModelsByBrand("ghost", repository.ListOptions{Page: 1, Limit: 10})
		require.True(t, errors.Is(err, auctionerrors.ErrNotFound))
	})

	t.Run("delete_model", func(t *testing.T) {
		require.NoError(t, service.DeleteModel(m.ModelID))
		_, err := service.GetModel(m.ModelID)
		require.True(t, errors.Is(err, auctionerrors.ErrNotFound))
	})
}

func TestCatalogService_ListBrands(t *testing.T) {
	service := NewCatalogService(repository.NewMemoryRepo())

	for _, name := range []string{"Acme", "Nothing", "Umbrella"} {
		_, err := service.CreateBrand(name, "")
		require.NoError(t, err)
	}

	t.Run("sorted_by_name_ascending", func(t *testing.T) {
		brands, err := service.GetBrands(repository.ListOptions{SortBy: "name", SortOrder: "asc", Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, brands, 3)
		require.Equal(t, "Acme", brands[0].Name)
		require.Equal(t, "Umbrella", brands[2].Name)
	})

	t.Run("search_is_case_insensitive", func(t *testing.T) {
		brands, err := service.GetBrands(repository.ListOptions{Search: "noth", Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, brands, 1)
		require.Equal(t, "Nothing", brands[0].Name)
	})

	t.Run("pagination", func(t *testing.T) {
		brands, err := service.GetBrands(repository.ListOptions{SortBy: "name", SortOrder: "asc", Page: 2, Limit: 2})
		require.NoError(t, err)
		require.Len(t, brands, 1)
		require.Equal(t, "Umbrella", brands[0].Name)
	})
}
