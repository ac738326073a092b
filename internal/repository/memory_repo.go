package repository

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of CatalogDB
// and AuctionDB. It backs the integration tests and the demo mode; the
// GORM repository is the production implementation.
type MemoryRepo struct {
	mu         sync.RWMutex
	users      map[string]model.User
	brands     map[string]model.Brand
	categories map[string]model.Category
	catModels  map[string]model.Model
	products   map[string]model.Product
	rooms      map[string]model.Room // key: roomID
	roomByProd map[string]string     // key: productID -> roomID
	bids       map[string][]model.Bid
	bidByID    map[string]model.Bid
	favorites  map[string][]string // key: userID -> ordered productIDs
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:      make(map[string]model.User),
		brands:     make(map[string]model.Brand),
		categories: make(map[string]model.Category),
		catModels:  make(map[string]model.Model),
		products:   make(map[string]model.Product),
		rooms:      make(map[string]model.Room),
		roomByProd: make(map[string]string),
		bids:       make(map[string][]model.Bid),
		bidByID:    make(map[string]model.Bid),
		favorites:  make(map[string][]string),
	}
}

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// --- users ---

func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user with email %s: %w", user.Email, auctionerrors.ErrConflict)
		}
	}
	r.users[user.UserID] = user
	return nil
}

func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrNotFound)
	}
	return user, nil
}

// --- favorites ---

func (r *MemoryRepo) AddFavorite(fav model.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[fav.UserID]; !ok {
		return fmt.Errorf("add favorite for user %s: %w", fav.UserID, auctionerrors.ErrNotFound)
	}
	if _, ok := r.products[fav.ProductID]; !ok {
		return fmt.Errorf("add favorite product %s: %w", fav.ProductID, auctionerrors.ErrNotFound)
	}
	for _, id := range r.favorites[fav.UserID] {
		if id == fav.ProductID {
			return nil // already favorited, idempotent
		}
	}
	r.favorites[fav.UserID] = append(r.favorites[fav.UserID], fav.ProductID)
	return nil
}

func (r *MemoryRepo) RemoveFavorite(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.favorites[userID]
	for i, id := range ids {
		if id == productID {
			r.favorites[userID] = append(ids[:i:i], ids[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove favorite %s for user %s: %w", productID, userID, auctionerrors.ErrNotFound)
}

func (r *MemoryRepo) GetFavoriteProducts(userID string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.users[userID]; !ok {
		return nil, fmt.Errorf("get favorites for user %s: %w", userID, auctionerrors.ErrNotFound)
	}
	products := make([]model.Product, 0, len(r.favorites[userID]))
	for _, id := range r.favorites[userID] {
		if p, ok := r.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// --- brands ---

func (r *MemoryRepo) CreateBrand(brand model.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.brands {
		if b.Name == brand.Name {
			return fmt.Errorf("create brand named %s: %w", brand.Name, auctionerrors.ErrConflict)
		}
	}
	r.brands[brand.BrandID] = brand
	return nil
}

func (r *MemoryRepo) GetBrand(brandID string) (model.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brand, ok := r.brands[brandID]
	if !ok {
		return model.Brand{}, fmt.Errorf("get brand %s: %w", brandID, auctionerrors.ErrNotFound)
	}
	return brand, nil
}

func (r *MemoryRepo) GetBrands(opts ListOptions) ([]model.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brands := make([]model.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		if matches(opts.Search, b.Name) {
			brands = append(brands, b)
		}
	}
	sort.SliceStable(brands, func(i, j int) bool {
		var less bool
		if opts.SortBy == "name" {
			less = brands[i].Name < brands[j].Name
		} else {
			less = brands[i].CreatedAt.Before(brands[j].CreatedAt)
		}
		if opts.Descending() {
			return !less
		}
		return less
	})
	start, end := opts.Window(len(brands))
	return brands[start:end], nil
}

func (r *MemoryRepo) UpdateBrand(brand model.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.brands[brand.BrandID]
	if !ok {
		return fmt.Errorf("update brand %s: %w", brand.BrandID, auctionerrors.ErrNotFound)
	}
	if brand.Name != "" {
		existing.Name = brand.Name
	}
	if brand.Picture != "" {
		existing.Picture = brand.Picture
	}
	existing.UpdatedAt = brand.UpdatedAt
	r.brands[brand.BrandID] = existing
	return nil
}

func (r *MemoryRepo) DeleteBrand(brandID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.brands[brandID]; !ok {
		return fmt.Errorf("delete brand %s: %w", brandID, auctionerrors.ErrNotFound)
	}
	for _, m := range r.catModels {
		if m.BrandID == brandID {
			return fmt.Errorf("delete brand %s referenced by model %s: %w", brandID, m.ModelID, auctionerrors.ErrConflict)
		}
	}
	delete(r.brands, brandID)
	return nil
}

// --- categories ---

func (r *MemoryRepo) CreateCategory(category model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name {
			return fmt.Errorf("create category named %s: %w", category.Name, auctionerrors.ErrConflict)
		}
	}
	r.categories[category.CategoryID] = category
	return nil
}

func (r *MemoryRepo) GetCategory(categoryID string) (model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[categoryID]
	if !ok {
		return model.Category{}, fmt.Errorf("get category %s: %w", categoryID, auctionerrors.ErrNotFound)
	}
	return category, nil
}

func (r *MemoryRepo) GetCategories(opts ListOptions) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if matches(opts.Search, c.Name) {
			categories = append(categories, c)
		}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		var less bool
		if opts.SortBy == "name" {
			less = categories[i].Name < categories[j].Name
		} else {
			less = categories[i].CreatedAt.Before(categories[j].CreatedAt)
		}
		if opts.Descending() {
			return !less
		}
		return less
	})
	start, end := opts.Window(len(categories))
	return categories[start:end], nil
}

func (r *MemoryRepo) UpdateCategory(category model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.categories[category.CategoryID]
	if !ok {
		return fmt.Errorf("update category %s: %w", category.CategoryID, auctionerrors.ErrNotFound)
	}
	if category.Name != "" {
		existing.Name = category.Name
	}
	existing.UpdatedAt = category.UpdatedAt
	r.categories[category.CategoryID] = existing
	return nil
}

func (r *MemoryRepo) DeleteCategory(categoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[categoryID]; !ok {
		return fmt.Errorf("delete category %s: %w", categoryID, auctionerrors.ErrNotFound)
	}
	for _, m := range r.catModels {
		for _, id := range m.CategoryIDs {
			if id == categoryID {
				return fmt.Errorf("delete category %s referenced by model %s: %w", categoryID, m.ModelID, auctionerrors.ErrConflict)
			}
		}
	}
	delete(r.categories, categoryID)
	return nil
}

// --- models ---

func (r *MemoryRepo) CreateModel(m model.Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.brands[m.BrandID]; !ok {
		return fmt.Errorf("create model under brand %s: %w", m.BrandID, auctionerrors.ErrNotFound)
	}
	for _, id := range m.CategoryIDs {
		if _, ok := r.categories[id]; !ok {
			return fmt.Errorf("create model with category %s: %w", id, auctionerrors.ErrNotFound)
		}
	}
	r.catModels[m.ModelID] = m
	return nil
}

func (r *MemoryRepo) GetModel(modelID string) (model.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.catModels[modelID]
	if !ok {
		return model.Model{}, fmt.Errorf("get model %s: %w", modelID, auctionerrors.ErrNotFound)
	}
	return m, nil
}

func (r *MemoryRepo) GetModels(opts ListOptions) ([]model.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterModels(opts, ""), nil
}

func (r *MemoryRepo) GetModelsByBrand(brandID string, opts ListOptions) ([]model.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.brands[brandID]; !ok {
		return nil, fmt.Errorf("get models of brand %s: %w", brandID, auctionerrors.ErrNotFound)
	}
	return r.filterModels(opts, brandID), nil
}

// filterModels assumes the read lock is held.
func (r *MemoryRepo) filterModels(opts ListOptions, brandID string) []model.Model {
	out := make([]model.Model, 0, len(r.catModels))
	for _, m := range r.catModels {
		if brandID != "" && m.BrandID != brandID {
			continue
		}
		if matches(opts.Search, m.Name) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		if opts.SortBy == "name" {
			less = out[i].Name < out[j].Name
		} else {
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if opts.Descending() {
			return !less
		}
		return less
	})
	start, end := opts.Window(len(out))
	return out[start:end]
}

func (r *MemoryRepo) UpdateModel(m model.Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.catModels[m.ModelID]
	if !ok {
		return fmt.Errorf("update model %s: %w", m.ModelID, auctionerrors.ErrNotFound)
	}
	if m.Name != "" {
		existing.Name = m.Name
	}
	if m.CategoryIDs != nil {
		for _, id := range m.CategoryIDs {
			if _, exists := r.categories[id]; !exists {
				return fmt.Errorf("update model %s with category %s: %w", m.ModelID, id, auctionerrors.ErrNotFound)
			}
		}
		existing.CategoryIDs = m.CategoryIDs
	}
	existing.UpdatedAt = m.UpdatedAt
	r.catModels[m.ModelID] = existing
	return nil
}

func (r *MemoryRepo) DeleteModel(modelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.catModels[modelID]; !ok {
		return fmt.Errorf("delete model %s: %w", modelID, auctionerrors.ErrNotFound)
	}
	for _, p := range r.products {
		if p.ModelID == modelID {
			return fmt.Errorf("delete model %s referenced by product %s: %w", modelID, p.ProductID, auctionerrors.ErrConflict)
		}
	}
	delete(r.catModels, modelID)
	return nil
}

// --- products & rooms ---

func (r *MemoryRepo) CreateProductWithRoom(product model.Product, room model.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[product.OwnerID]; !ok {
		return fmt.Errorf("create product for owner %s: %w", product.OwnerID, auctionerrors.ErrNotFound)
	}
	if _, ok := r.catModels[product.ModelID]; !ok {
		return fmt.Errorf("create product of model %s: %w", product.ModelID, auctionerrors.ErrNotFound)
	}
	if _, ok := r.roomByProd[product.ProductID]; ok {
		return fmt.Errorf("create room for product %s: %w", product.ProductID, auctionerrors.ErrConflict)
	}

	r.products[product.ProductID] = product
	r.rooms[room.RoomID] = room
	r.roomByProd[product.ProductID] = room.RoomID
	return nil
}

func (r *MemoryRepo) GetProduct(productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrNotFound)
	}
	return product, nil
}

func (r *MemoryRepo) GetProducts(opts ListOptions) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterProducts(opts, func(p model.Product) bool { return true }), nil
}

func (r *MemoryRepo) GetProductsByBrand(brandID string, opts ListOptions) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.brands[brandID]; !ok {
		return nil, fmt.Errorf("get products of brand %s: %w", brandID, auctionerrors.ErrNotFound)
	}
	return r.filterProducts(opts, func(p model.Product) bool {
		m, ok := r.catModels[p.ModelID]
		return ok && m.BrandID == brandID
	}), nil
}

func (r *MemoryRepo) GetProductsByModel(modelID string, opts ListOptions) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.catModels[modelID]; !ok {
		return nil, fmt.Errorf("get products of model %s: %w", modelID, auctionerrors.ErrNotFound)
	}
	return r.filterProducts(opts, func(p model.Product) bool { return p.ModelID == modelID }), nil
}

// filterProducts assumes the read lock is held. Search matches the model
// name or the brand name, case-insensitively.
func (r *MemoryRepo) filterProducts(opts ListOptions, keep func(model.Product) bool) []model.Product {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if !keep(p) {
			continue
		}
		modelName, brandName := "", ""
		if m, ok := r.catModels[p.ModelID]; ok {
			modelName = m.Name
			if b, ok := r.brands[m.BrandID]; ok {
				brandName = b.Name
			}
		}
		if matches(opts.Search, modelName, brandName) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		if opts.SortBy == "name" {
			less = r.catModels[out[i].ModelID].Name < r.catModels[out[j].ModelID].Name
		} else {
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if opts.Descending() {
			return !less
		}
		return less
	})
	start, end := opts.Window(len(out))
	return out[start:end]
}

func (r *MemoryRepo) UpdateProduct(product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ProductID]
	if !ok {
		return fmt.Errorf("update product %s: %w", product.ProductID, auctionerrors.ErrNotFound)
	}
	if product.Price > 0 {
		existing.Price = product.Price
	}
	if product.Description != "" {
		existing.Description = product.Description
	}
	if product.Pictures != nil {
		existing.Pictures = product.Pictures
	}
	existing.UpdatedAt = product.UpdatedAt
	r.products[product.ProductID] = existing
	return nil
}

func (r *MemoryRepo) DeleteProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return fmt.Errorf("delete product %s: %w", productID, auctionerrors.ErrNotFound)
	}

	// A room never outlives its product: cascade room and bids.
	if roomID, ok := r.roomByProd[productID]; ok {
		for _, b := range r.bids[roomID] {
			delete(r.bidByID, b.BidID)
		}
		delete(r.bids, roomID)
		delete(r.rooms, roomID)
		delete(r.roomByProd, productID)
	}
	delete(r.products, productID)
	for userID, ids := range r.favorites {
		for i, id := range ids {
			if id == productID {
				r.favorites[userID] = append(ids[:i:i], ids[i+1:]...)
				break
			}
		}
	}
	return nil
}

func (r *MemoryRepo) GetRoom(roomID string) (model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return model.Room{}, fmt.Errorf("get room %s: %w", roomID, auctionerrors.ErrNotFound)
	}
	return room, nil
}

func (r *MemoryRepo) GetRoomByProduct(productID string) (model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roomID, ok := r.roomByProd[productID]
	if !ok {
		return model.Room{}, fmt.Errorf("get room of product %s: %w", productID, auctionerrors.ErrNotFound)
	}
	return r.rooms[roomID], nil
}

// --- bids ---

func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[bid.RoomID]
	if !ok {
		return fmt.Errorf("record bid for room %s: %w", bid.RoomID, auctionerrors.ErrNotFound)
	}
	if !room.IsOpen(bid.CreatedAt) {
		return fmt.Errorf("record bid for room %s: %w", bid.RoomID, auctionerrors.ErrRoomClosed)
	}

	// Highest-bid check and pointer update happen under the same lock so a
	// concurrent lower bid can never be recorded as highest.
	if room.HighestBidID != nil {
		highest := r.bidByID[*room.HighestBidID]
		if bid.Amount <= highest.Amount {
			return fmt.Errorf("record bid of %.2f against highest %.2f: %w", bid.Amount, highest.Amount, auctionerrors.ErrBidTooLow)
		}
	} else if bid.Amount <= 0 {
		return fmt.Errorf("record opening bid of %.2f: %w", bid.Amount, auctionerrors.ErrBidTooLow)
	}

	r.bids[bid.RoomID] = append(r.bids[bid.RoomID], bid)
	r.bidByID[bid.BidID] = bid
	id := bid.BidID
	room.HighestBidID = &id
	r.rooms[bid.RoomID] = room
	return nil
}

func (r *MemoryRepo) GetBidsByRoom(roomID string, opts ListOptions) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.rooms[roomID]; !ok {
		return nil, fmt.Errorf("get bids for room %s: %w", roomID, auctionerrors.ErrNotFound)
	}

	bids := make([]model.Bid, 0, len(r.bids[roomID]))
	for _, b := range r.bids[roomID] {
		u := r.users[b.UserID]
		if matches(opts.Search, u.Name, u.Email) {
			bids = append(bids, b)
		}
	}
	// Chronological order, descending by default; insertion order breaks
	// ties since the ledger itself is append-only.
	sort.SliceStable(bids, func(i, j int) bool {
		if opts.Descending() {
			return bids[j].CreatedAt.Before(bids[i].CreatedAt)
		}
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
	start, end := opts.Window(len(bids))
	return bids[start:end], nil
}

func (r *MemoryRepo) GetWinningBid(roomID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get winning bid for room %s: %w", roomID, auctionerrors.ErrNotFound)
	}
	if room.HighestBidID == nil {
		return model.Bid{}, fmt.Errorf("get winning bid for room %s: %w", roomID, auctionerrors.ErrNoBids)
	}
	return r.bidByID[*room.HighestBidID], nil
}
