package repository

import (
	model "auction-house/internal/models"
)

// ListOptions carries the recognized configuration for list queries:
// substring search, sort field/direction and offset/limit pagination.
type ListOptions struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Descending reports the effective sort direction. Descending is the
// default; only an explicit "asc" flips it.
func (o ListOptions) Descending() bool {
	return o.SortOrder != "asc"
}

// Window returns the [start, end) slice bounds for a collection of n
// elements. A non-positive limit disables pagination.
func (o ListOptions) Window(n int) (int, int) {
	if o.Limit <= 0 {
		return 0, n
	}
	page := o.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * o.Limit
	if start > n {
		start = n
	}
	end := start + o.Limit
	if end > n {
		end = n
	}
	return start, end
}

// CatalogDB defines storage for brand, category and model metadata.
type CatalogDB interface {
	CreateBrand(brand model.Brand) error
	GetBrand(brandID string) (model.Brand, error)
	GetBrands(opts ListOptions) ([]model.Brand, error)
	UpdateBrand(brand model.Brand) error
	DeleteBrand(brandID string) error

	CreateCategory(category model.Category) error
	GetCategory(categoryID string) (model.Category, error)
	GetCategories(opts ListOptions) ([]model.Category, error)
	UpdateCategory(category model.Category) error
	DeleteCategory(categoryID string) error

	CreateModel(m model.Model) error
	GetModel(modelID string) (model.Model, error)
	GetModels(opts ListOptions) ([]model.Model, error)
	GetModelsByBrand(brandID string, opts ListOptions) ([]model.Model, error)
	UpdateModel(m model.Model) error
	DeleteModel(modelID string) error
}

// AuctionDB defines storage for users, products, bidding rooms and bids.
type AuctionDB interface {
	CreateUser(user model.User) error
	GetUser(userID string) (model.User, error)

	AddFavorite(fav model.Favorite) error
	RemoveFavorite(userID, productID string) error
	GetFavoriteProducts(userID string) ([]model.Product, error)

	// CreateProductWithRoom persists the product and its room in a single
	// transaction. A product must never exist without exactly one room.
	CreateProductWithRoom(product model.Product, room model.Room) error
	GetProduct(productID string) (model.Product, error)
	GetProducts(opts ListOptions) ([]model.Product, error)
	GetProductsByBrand(brandID string, opts ListOptions) ([]model.Product, error)
	GetProductsByModel(modelID string, opts ListOptions) ([]model.Product, error)
	UpdateProduct(product model.Product) error
	// DeleteProduct removes the product together with its room and bids.
	DeleteProduct(productID string) error

	GetRoom(roomID string) (model.Room, error)
	GetRoomByProduct(productID string) (model.Room, error)

	// RecordBid appends the bid and advances the room's highest-bid pointer.
	// The open-room and amount checks are re-run atomically with the update
	// so concurrent bids on the same room serialize correctly.
	RecordBid(bid model.Bid) error
	GetBidsByRoom(roomID string, opts ListOptions) ([]model.Bid, error)
	GetWinningBid(roomID string) (model.Bid, error)
}
