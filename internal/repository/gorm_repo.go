package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// GormRepo is the relational implementation of CatalogDB and AuctionDB.
// The *gorm.DB handle is injected at construction; lifecycle belongs to
// the process entry point.
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo creates a repository bound to an open database handle.
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// AutoMigrate creates or updates the schema for all domain entities.
func (r *GormRepo) AutoMigrate() error {
	return r.db.AutoMigrate(
		&model.User{},
		&model.Favorite{},
		&model.Brand{},
		&model.Category{},
		&model.Model{},
		&model.ModelCategory{},
		&model.Product{},
		&model.Room{},
		&model.Bid{},
	)
}

// translate maps a GORM error onto the shared error kinds, keeping the
// operation context in the message.
func translate(err error, context string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", context, auctionerrors.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", context, auctionerrors.ErrConflict)
	default:
		return fmt.Errorf("%s: %v: %w", context, err, auctionerrors.ErrStorage)
	}
}

func likePattern(search string) string {
	return "%" + strings.ToLower(search) + "%"
}

func (o ListOptions) apply(q *gorm.DB, orderColumn string) *gorm.DB {
	dir := "DESC"
	if !o.Descending() {
		dir = "ASC"
	}
	q = q.Order(orderColumn + " " + dir)
	if o.Limit > 0 {
		page := o.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * o.Limit).Limit(o.Limit)
	}
	return q
}

// --- users ---

func (r *GormRepo) CreateUser(user model.User) error {
	if err := r.db.Create(&user).Error; err != nil {
		return translate(err, fmt.Sprintf("create user with email %s", user.Email))
	}
	return nil
}

func (r *GormRepo) GetUser(userID string) (model.User, error) {
	var user model.User
	if err := r.db.First(&user, "user_id = ?", userID).Error; err != nil {
		return model.User{}, translate(err, fmt.Sprintf("get user %s", userID))
	}
	return user, nil
}

// --- favorites ---

func (r *GormRepo) AddFavorite(fav model.Favorite) error {
	if _, err := r.GetUser(fav.UserID); err != nil {
		return err
	}
	if _, err := r.GetProduct(fav.ProductID); err != nil {
		return err
	}
	err := r.db.Create(&fav).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil // already favorited, idempotent
	}
	if err != nil {
		return translate(err, fmt.Sprintf("add favorite %s for user %s", fav.ProductID, fav.UserID))
	}
	return nil
}

func (r *GormRepo) RemoveFavorite(userID, productID string) error {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&model.Favorite{})
	if res.Error != nil {
		return translate(res.Error, fmt.Sprintf("remove favorite %s for user %s", productID, userID))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("remove favorite %s for user %s: %w", productID, userID, auctionerrors.ErrNotFound)
	}
	return nil
}

func (r *GormRepo) GetFavoriteProducts(userID string) ([]model.Product, error) {
	if _, err := r.GetUser(userID); err != nil {
		return nil, err
	}
	products := []model.Product{}
	err := r.db.Model(&model.Product{}).
		Joins("JOIN favorites ON favorites.product_id = products.product_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("get favorites for user %s", userID))
	}
	return products, nil
}

// --- brands ---

func (r *GormRepo) CreateBrand(brand model.Brand) error {
	if err := r.db.Create(&brand).Error; err != nil {
		return translate(err, fmt.Sprintf("create brand named %s", brand.Name))
	}
	return nil
}

func (r *GormRepo) GetBrand(brandID string) (model.Brand, error) {
	var brand model.Brand
	if err := r.db.First(&brand, "brand_id = ?", brandID).Error; err != nil {
		return model.Brand{}, translate(err, fmt.Sprintf("get brand %s", brandID))
	}
	return brand, nil
}

func (r *GormRepo) GetBrands(opts ListOptions) ([]model.Brand, error) {
	brands := []model.Brand{}
	q := r.db.Model(&model.Brand{})
	if opts.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(opts.Search))
	}
	order := "created_at"
	if opts.SortBy == "name" {
		order = "name"
	}
	if err := opts.apply(q, order).Find(&brands).Error; err != nil {
		return nil, translate(err, "get brands")
	}
	return brands, nil
}

func (r *GormRepo) UpdateBrand(brand model.Brand) error {
	if _, err := r.GetBrand(brand.BrandID); err != nil {
		return err
	}
	updates := map[string]any{"updated_at": brand.UpdatedAt}
	if brand.Name != "" {
		updates["name"] = brand.Name
	}
	if brand.Picture != "" {
		updates["picture"] = brand.Picture
	}
	err := r.db.Model(&model.Brand{}).Where("brand_id = ?", brand.BrandID).Updates(updates).Error
	if err != nil {
		return translate(err, fmt.Sprintf("update brand %s", brand.BrandID))
	}
	return nil
}

func (r *GormRepo) DeleteBrand(brandID string) error {
	if _, err := r.GetBrand(brandID); err != nil {
		return err
	}
	var refs int64
	if err := r.db.Model(&model.Model{}).Where("brand_id = ?", brandID).Count(&refs).Error; err != nil {
		return translate(err, fmt.Sprintf("delete brand %s", brandID))
	}
	if refs > 0 {
		return fmt.Errorf("delete brand %s referenced by %d models: %w", brandID, refs, auctionerrors.ErrConflict)
	}
	if err := r.db.Delete(&model.Brand{}, "brand_id = ?", brandID).Error; err != nil {
		return translate(err, fmt.Sprintf("delete brand %s", brandID))
	}
	return nil
}

// --- categories ---

func (r *GormRepo) CreateCategory(category model.Category) error {
	if err := r.db.Create(&category).Error; err != nil {
		return translate(err, fmt.Sprintf("create category named %s", category.Name))
	}
	return nil
}

func (r *GormRepo) GetCategory(categoryID string) (model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "category_id = ?", categoryID).Error; err != nil {
		return model.Category{}, translate(err, fmt.Sprintf("get category %s", categoryID))
	}
	return category, nil
}

func (r *GormRepo) GetCategories(opts ListOptions) ([]model.Category, error) {
	categories := []model.Category{}
	q := r.db.Model(&model.Category{})
	if opts.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(opts.Search))
	}
	order := "created_at"
	if opts.SortBy == "name" {
		order = "name"
	}
	if err := opts.apply(q, order).Find(&categories).Error; err != nil {
		return nil, translate(err, "get categories")
	}
	return categories, nil
}

func (r *GormRepo) UpdateCategory(category model.Category) error {
	if _, err := r.GetCategory(category.CategoryID); err != nil {
		return err
	}
	updates := map[string]any{"updated_at": category.UpdatedAt}
	if category.Name != "" {
		updates["name"] = category.Name
	}
	err := r.db.Model(&model.Category{}).Where("category_id = ?", category.CategoryID).Updates(updates).Error
	if err != nil {
		return translate(err, fmt.Sprintf("update category %s", category.CategoryID))
	}
	return nil
}

func (r *GormRepo) DeleteCategory(categoryID string) error {
	if _, err := r.GetCategory(categoryID); err != nil {
		return err
	}
	var refs int64
	if err := r.db.Model(&model.ModelCategory{}).Where("category_id = ?", categoryID).Count(&refs).Error; err != nil {
		return translate(err, fmt.Sprintf("delete category %s", categoryID))
	}
	if refs > 0 {
		return fmt.Errorf("delete category %s referenced by %d models: %w", categoryID, refs, auctionerrors.ErrConflict)
	}
	if err := r.db.Delete(&model.Category{}, "category_id = ?", categoryID).Error; err != nil {
		return translate(err, fmt.Sprintf("delete category %s", categoryID))
	}
	return nil
}

// --- models ---

func (r *GormRepo) CreateModel(m model.Model) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var brand model.Brand
		if err := tx.First(&brand, "brand_id = ?", m.BrandID).Error; err != nil {
			return translate(err, fmt.Sprintf("create model under brand %s", m.BrandID))
		}
		var count int64
		if len(m.CategoryIDs) > 0 {
			if err := tx.Model(&model.Category{}).Where("category_id IN ?", m.CategoryIDs).Count(&count).Error; err != nil {
				return translate(err, fmt.Sprintf("create model named %s", m.Name))
			}
			if int(count) != len(m.CategoryIDs) {
				return fmt.Errorf("create model named %s: category %w", m.Name, auctionerrors.ErrNotFound)
			}
		}
		if err := tx.Create(&m).Error; err != nil {
			return translate(err, fmt.Sprintf("create model named %s", m.Name))
		}
		for _, id := range m.CategoryIDs {
			link := model.ModelCategory{ModelID: m.ModelID, CategoryID: id}
			if err := tx.Create(&link).Error; err != nil {
				return translate(err, fmt.Sprintf("link model %s to category %s", m.ModelID, id))
			}
		}
		return nil
	})
}

func (r *GormRepo) GetModel(modelID string) (model.Model, error) {
	var m model.Model
	if err := r.db.First(&m, "model_id = ?", modelID).Error; err != nil {
		return model.Model{}, translate(err, fmt.Sprintf("get model %s", modelID))
	}
	if err := r.loadCategoryIDs(&m); err != nil {
		return model.Model{}, err
	}
	return m, nil
}

func (r *GormRepo) loadCategoryIDs(m *model.Model) error {
	ids := []string{}
	err := r.db.Model(&model.ModelCategory{}).
		Where("model_id = ?", m.ModelID).
		Pluck("category_id", &ids).Error
	if err != nil {
		return translate(err, fmt.Sprintf("get categories of model %s", m.ModelID))
	}
	m.CategoryIDs = ids
	return nil
}

func (r *GormRepo) GetModels(opts ListOptions) ([]model.Model, error) {
	return r.listModels(opts, "")
}

func (r *GormRepo) GetModelsByBrand(brandID string, opts ListOptions) ([]model.Model, error) {
	if _, err := r.GetBrand(brandID); err != nil {
		return nil, err
	}
	return r.listModels(opts, brandID)
}

func (r *GormRepo) listModels(opts ListOptions, brandID string) ([]model.Model, error) {
	out := []model.Model{}
	q := r.db.Model(&model.Model{})
	if brandID != "" {
		q = q.Where("brand_id = ?", brandID)
	}
	if opts.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(opts.Search))
	}
	order := "created_at"
	if opts.SortBy == "name" {
		order = "name"
	}
	if err := opts.apply(q, order).Find(&out).Error; err != nil {
		return nil, translate(err, "get models")
	}
	for i := range out {
		if err := r.loadCategoryIDs(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *GormRepo) UpdateModel(m model.Model) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Model
		if err := tx.First(&existing, "model_id = ?", m.ModelID).Error; err != nil {
			return translate(err, fmt.Sprintf("update model %s", m.ModelID))
		}
		updates := map[string]any{"updated_at": m.UpdatedAt}
		if m.Name != "" {
			updates["name"] = m.Name
		}
		if err := tx.Model(&model.Model{}).Where("model_id = ?", m.ModelID).Updates(updates).Error; err != nil {
			return translate(err, fmt.Sprintf("update model %s", m.ModelID))
		}
		if m.CategoryIDs == nil {
			return nil
		}
		var count int64
		if len(m.CategoryIDs) > 0 {
			if err := tx.Model(&model.Category{}).Where("category_id IN ?", m.CategoryIDs).Count(&count).Error; err != nil {
				return translate(err, fmt.Sprintf("update model %s", m.ModelID))
			}
			if int(count) != len(m.CategoryIDs) {
				return fmt.Errorf("update model %s: category %w", m.ModelID, auctionerrors.ErrNotFound)
			}
		}
		if err := tx.Where("model_id = ?", m.ModelID).Delete(&model.ModelCategory{}).Error; err != nil {
			return translate(err, fmt.Sprintf("update model %s", m.ModelID))
		}
		for _, id := range m.CategoryIDs {
			link := model.ModelCategory{ModelID: m.ModelID, CategoryID: id}
			if err := tx.Create(&link).Error; err != nil {
				return translate(err, fmt.Sprintf("link model %s to category %s", m.ModelID, id))
			}
		}
		return nil
	})
}

func (r *GormRepo) DeleteModel(modelID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Model
		if err := tx.First(&existing, "model_id = ?", modelID).Error; err != nil {
			return translate(err, fmt.Sprintf("delete model %s", modelID))
		}
		var refs int64
		if err := tx.Model(&model.Product{}).Where("model_id = ?", modelID).Count(&refs).Error; err != nil {
			return translate(err, fmt.Sprintf("delete model %s", modelID))
		}
		if refs > 0 {
			return fmt.Errorf("delete model %s referenced by %d products: %w", modelID, refs, auctionerrors.ErrConflict)
		}
		if err := tx.Where("model_id = ?", modelID).Delete(&model.ModelCategory{}).Error; err != nil {
			return translate(err, fmt.Sprintf("delete model %s", modelID))
		}
		if err := tx.Delete(&model.Model{}, "model_id = ?", modelID).Error; err != nil {
			return translate(err, fmt.Sprintf("delete model %s", modelID))
		}
		return nil
	})
}

// --- products & rooms ---

func (r *GormRepo) CreateProductWithRoom(product model.Product, room model.Room) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var owner model.User
		if err := tx.First(&owner, "user_id = ?", product.OwnerID).Error; err != nil {
			return translate(err, fmt.Sprintf("create product for owner %s", product.OwnerID))
		}
		var m model.Model
		if err := tx.First(&m, "model_id = ?", product.ModelID).Error; err != nil {
			return translate(err, fmt.Sprintf("create product of model %s", product.ModelID))
		}
		if err := tx.Create(&product).Error; err != nil {
			return translate(err, fmt.Sprintf("create product of model %s", product.ModelID))
		}
		if err := tx.Create(&room).Error; err != nil {
			return translate(err, fmt.Sprintf("create room for product %s", product.ProductID))
		}
		return nil
	})
}

func (r *GormRepo) GetProduct(productID string) (model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "product_id = ?", productID).Error; err != nil {
		return model.Product{}, translate(err, fmt.Sprintf("get product %s", productID))
	}
	return product, nil
}

func (r *GormRepo) GetProducts(opts ListOptions) ([]model.Product, error) {
	return r.listProducts(opts, nil)
}

func (r *GormRepo) GetProductsByBrand(brandID string, opts ListOptions) ([]model.Product, error) {
	if _, err := r.GetBrand(brandID); err != nil {
		return nil, err
	}
	return r.listProducts(opts, func(q *gorm.DB) *gorm.DB {
		return q.Where("models.brand_id = ?", brandID)
	})
}

func (r *GormRepo) GetProductsByModel(modelID string, opts ListOptions) ([]model.Product, error) {
	if _, err := r.GetModel(modelID); err != nil {
		return nil, err
	}
	return r.listProducts(opts, func(q *gorm.DB) *gorm.DB {
		return q.Where("products.model_id = ?", modelID)
	})
}

// listProducts joins the catalog so search can match model or brand names
// the way the storefront search box expects.
func (r *GormRepo) listProducts(opts ListOptions, scope func(*gorm.DB) *gorm.DB) ([]model.Product, error) {
	products := []model.Product{}
	q := r.db.Model(&model.Product{}).
		Joins("JOIN models ON models.model_id = products.model_id").
		Joins("JOIN brands ON brands.brand_id = models.brand_id")
	if scope != nil {
		q = scope(q)
	}
	if opts.Search != "" {
		needle := likePattern(opts.Search)
		q = q.Where("LOWER(models.name) LIKE ? OR LOWER(brands.name) LIKE ?", needle, needle)
	}
	order := "products.created_at"
	if opts.SortBy == "name" {
		order = "models.name"
	}
	if err := opts.apply(q, order).Find(&products).Error; err != nil {
		return nil, translate(err, "get products")
	}
	return products, nil
}

func (r *GormRepo) UpdateProduct(product model.Product) error {
	if _, err := r.GetProduct(product.ProductID); err != nil {
		return err
	}
	updates := map[string]any{"updated_at": product.UpdatedAt}
	if product.Price > 0 {
		updates["price"] = product.Price
	}
	if product.Description != "" {
		updates["description"] = product.Description
	}
	err := r.db.Model(&model.Product{}).Where("product_id = ?", product.ProductID).Updates(updates).Error
	if err != nil {
		return translate(err, fmt.Sprintf("update product %s", product.ProductID))
	}
	if product.Pictures != nil {
		err = r.db.Model(&model.Product{}).Where("product_id = ?", product.ProductID).
			Update("pictures", product.Pictures).Error
		if err != nil {
			return translate(err, fmt.Sprintf("update product %s pictures", product.ProductID))
		}
	}
	return nil
}

func (r *GormRepo) DeleteProduct(productID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "product_id = ?", productID).Error; err != nil {
			return translate(err, fmt.Sprintf("delete product %s", productID))
		}
		// A room never outlives its product: cascade room and bids.
		var room model.Room
		err := tx.First(&room, "product_id = ?", productID).Error
		if err == nil {
			if err := tx.Where("room_id = ?", room.RoomID).Delete(&model.Bid{}).Error; err != nil {
				return translate(err, fmt.Sprintf("delete bids of room %s", room.RoomID))
			}
			if err := tx.Delete(&model.Room{}, "room_id = ?", room.RoomID).Error; err != nil {
				return translate(err, fmt.Sprintf("delete room %s", room.RoomID))
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return translate(err, fmt.Sprintf("delete product %s", productID))
		}
		if err := tx.Where("product_id = ?", productID).Delete(&model.Favorite{}).Error; err != nil {
			return translate(err, fmt.Sprintf("delete favorites of product %s", productID))
		}
		if err := tx.Delete(&model.Product{}, "product_id = ?", productID).Error; err != nil {
			return translate(err, fmt.Sprintf("delete product %s", productID))
		}
		return nil
	})
}

func (r *GormRepo) GetRoom(roomID string) (model.Room, error) {
	var room model.Room
	if err := r.db.First(&room, "room_id = ?", roomID).Error; err != nil {
		return model.Room{}, translate(err, fmt.Sprintf("get room %s", roomID))
	}
	return room, nil
}

func (r *GormRepo) GetRoomByProduct(productID string) (model.Room, error) {
	var room model.Room
	if err := r.db.First(&room, "product_id = ?", productID).Error; err != nil {
		return model.Room{}, translate(err, fmt.Sprintf("get room of product %s", productID))
	}
	return room, nil
}

// --- bids ---

// RecordBid runs the closed-room and highest-amount checks and the pointer
// update inside one transaction with the room row locked, so two
// concurrent bids against the same room serialize and a lower bid can
// never end up recorded as highest.
func (r *GormRepo) RecordBid(bid model.Bid) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var room model.Room
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "room_id = ?", bid.RoomID).Error
		if err != nil {
			return translate(err, fmt.Sprintf("record bid for room %s", bid.RoomID))
		}
		if !room.IsOpen(bid.CreatedAt) {
			return fmt.Errorf("record bid for room %s: %w", bid.RoomID, auctionerrors.ErrRoomClosed)
		}
		if room.HighestBidID != nil {
			var highest model.Bid
			if err := tx.First(&highest, "bid_id = ?", *room.HighestBidID).Error; err != nil {
				return translate(err, fmt.Sprintf("get highest bid of room %s", bid.RoomID))
			}
			if bid.Amount <= highest.Amount {
				return fmt.Errorf("record bid of %.2f against highest %.2f: %w", bid.Amount, highest.Amount, auctionerrors.ErrBidTooLow)
			}
		} else if bid.Amount <= 0 {
			return fmt.Errorf("record opening bid of %.2f: %w", bid.Amount, auctionerrors.ErrBidTooLow)
		}
		if err := tx.Create(&bid).Error; err != nil {
			return translate(err, fmt.Sprintf("record bid for room %s", bid.RoomID))
		}
		err = tx.Model(&model.Room{}).Where("room_id = ?", room.RoomID).
			Update("highest_bid_id", bid.BidID).Error
		if err != nil {
			return translate(err, fmt.Sprintf("advance highest bid of room %s", room.RoomID))
		}
		return nil
	})
}

func (r *GormRepo) GetBidsByRoom(roomID string, opts ListOptions) ([]model.Bid, error) {
	if _, err := r.GetRoom(roomID); err != nil {
		return nil, err
	}
	bids := []model.Bid{}
	q := r.db.Model(&model.Bid{}).Where("bids.room_id = ?", roomID)
	if opts.Search != "" {
		needle := likePattern(opts.Search)
		q = q.Joins("JOIN users ON users.user_id = bids.user_id").
			Where("LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ?", needle, needle)
	}
	if err := opts.apply(q, "bids.created_at").Find(&bids).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("get bids for room %s", roomID))
	}
	return bids, nil
}

func (r *GormRepo) GetWinningBid(roomID string) (model.Bid, error) {
	room, err := r.GetRoom(roomID)
	if err != nil {
		return model.Bid{}, err
	}
	if room.HighestBidID == nil {
		return model.Bid{}, fmt.Errorf("get winning bid for room %s: %w", roomID, auctionerrors.ErrNoBids)
	}
	var bid model.Bid
	if err := r.db.First(&bid, "bid_id = ?", *room.HighestBidID).Error; err != nil {
		return model.Bid{}, translate(err, fmt.Sprintf("get winning bid for room %s", roomID))
	}
	return bid, nil
}
