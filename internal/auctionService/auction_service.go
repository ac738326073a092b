package auction

import (
	"errors"
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// AuctionService owns the product/room lifecycle and the bid ledger rules:
// a product is listed together with a room holding a fixed end deadline,
// bids accumulate against the room, and the room closes once the deadline
// passes. Closure is computed from the deadline on every read; nothing is
// flipped or settled.
type AuctionService struct {
	repo repository.AuctionDB
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB) *AuctionService {
	return &AuctionService{
		repo: repo,
	}
}

// RegisterUser records a bidder. Provider is stored as given; this service
// performs no authentication.
func (s *AuctionService) RegisterUser(name, email, provider string) (models.User, error) {
	if name == "" || email == "" {
		return models.User{}, fmt.Errorf("service: %w - missing name or email", auctionerrors.ErrInvalidInput)
	}

	now := time.Now().UTC()
	user := models.User{
		UserID:    utils.GenerateID(),
		Name:      name,
		Email:     email,
		Provider:  provider,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to register user %s: %w", email, err)
	}
	return user, nil
}

// GetUser returns a user by id
func (s *AuctionService) GetUser(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	user, err := s.repo.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// CreateProduct lists a product and opens its bidding room in one storage
// transaction: end = now + duration, no bids, no highest-bid pointer.
func (s *AuctionService) CreateProduct(ownerID, modelID string, price float64, description string, pictures []string, duration time.Duration) (models.Product, models.Room, error) {
	if ownerID == "" || modelID == "" {
		return models.Product{}, models.Room{}, fmt.Errorf("service: %w - missing ownerID or modelID", auctionerrors.ErrInvalidInput)
	}
	if price <= 0 {
		return models.Product{}, models.Room{}, fmt.Errorf("service: %w - non-positive price", auctionerrors.ErrInvalidInput)
	}
	if duration <= 0 {
		return models.Product{}, models.Room{}, fmt.Errorf("service: %w - non-positive room duration", auctionerrors.ErrInvalidInput)
	}

	now := time.Now().UTC()
	product := models.Product{
		ProductID:   utils.GenerateID(),
		Price:       price,
		Description: description,
		Pictures:    pictures,
		ModelID:     modelID,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	room := models.Room{
		RoomID:    utils.GenerateID(),
		ProductID: product.ProductID,
		End:       now.Add(duration),
		CreatedAt: now,
	}

	if err := s.repo.CreateProductWithRoom(product, room); err != nil {
		return models.Product{}, models.Room{}, fmt.Errorf("service: failed to create product of model %s: %w", modelID, err)
	}
	return product, room, nil
}

// GetProduct returns a product together with its room.
func (s *AuctionService) GetProduct(productID string) (models.Product, models.Room, error) {
	if productID == "" {
		return models.Product{}, models.Room{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidInput)
	}
	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.Product{}, models.Room{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	room, err := s.repo.GetRoomByProduct(productID)
	if err != nil {
		return models.Product{}, models.Room{}, fmt.Errorf("service: failed to get room of product %s: %w", productID, err)
	}
	return product, room, nil
}

// GetProducts lists products; search matches model or brand names. An
// empty result is not an error.
func (s *AuctionService) GetProducts(opts repository.ListOptions) ([]models.Product, error) {
	products, err := s.repo.GetProducts(opts)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get products: %w", err)
	}
	return products, nil
}

// ProductsByBrand lists products whose model belongs to the brand.
func (s *AuctionService) ProductsByBrand(brandID string, opts repository.ListOptions) ([]models.Product, error) {
	if brandID == "" {
		return nil, fmt.Errorf("service: %w - empty brand ID", auctionerrors.ErrInvalidInput)
	}
	products, err := s.repo.GetProductsByBrand(brandID, opts)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get products of brand %s: %w", brandID, err)
	}
	return products, nil
}

// ProductsByModel lists products of one model.
func (s *AuctionService) ProductsByModel(modelID string, opts repository.ListOptions) ([]models.Product, error) {
	if modelID == "" {
		return nil, fmt.Errorf("service: %w - empty model ID", auctionerrors.ErrInvalidInput)
	}
	products, err := s.repo.GetProductsByModel(modelID, opts)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get products of model %s: %w", modelID, err)
	}
	return products, nil
}

// UpdateProduct changes the mutable listing fields. Price zero, empty
// description and nil pictures leave the current values untouched.
func (s *AuctionService) UpdateProduct(productID string, price float64, description string, pictures []string) (models.Product, error) {
	if productID == "" {
		return models.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidInput)
	}
	if price < 0 {
		return models.Product{}, fmt.Errorf("service: %w - negative price", auctionerrors.ErrInvalidInput)
	}

	update := models.Product{
		ProductID:   productID,
		Price:       price,
		Description: description,
		Pictures:    pictures,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.repo.UpdateProduct(update); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to update product %s: %w", productID, err)
	}
	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	return product, nil
}

// DeleteProduct removes a product and, with it, its room and all bids.
func (s *AuctionService) DeleteProduct(productID string) error {
	if productID == "" {
		return fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.DeleteProduct(productID); err != nil {
		return fmt.Errorf("service: failed to delete product %s: %w", productID, err)
	}
	return nil
}

// RoomForProduct returns the product's room and its bids, filtered on the
// bidder's name or email and paginated.
func (s *AuctionService) RoomForProduct(productID string, opts repository.ListOptions) (models.Room, []models.Bid, error) {
	if productID == "" {
		return models.Room{}, nil, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidInput)
	}
	room, err := s.repo.GetRoomByProduct(productID)
	if err != nil {
		return models.Room{}, nil, fmt.Errorf("service: failed to get room of product %s: %w", productID, err)
	}
	bids, err := s.repo.GetBidsByRoom(room.RoomID, opts)
	if err != nil {
		return models.Room{}, nil, fmt.Errorf("service: failed to get bids for room %s: %w", room.RoomID, err)
	}
	return room, bids, nil
}

// PlaceBid validates and records a user's bid in a room. The repository
// re-runs the closed-room and amount checks atomically with the append,
// so the checks here only produce friendlier early failures.
func (s *AuctionService) PlaceBid(roomID, userID string, amount float64) (models.Bid, error) {
	if roomID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing roomID or userID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	now := time.Now().UTC()
	room, err := s.repo.GetRoom(roomID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get room %s: %w", roomID, err)
	}
	if !room.IsOpen(now) {
		return models.Bid{}, fmt.Errorf("service: room %s ended at %s: %w", roomID, room.End.Format(time.RFC3339), auctionerrors.ErrRoomClosed)
	}
	if _, err := s.repo.GetUser(userID); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bidder %s: %w", userID, err)
	}
	product, err := s.repo.GetProduct(room.ProductID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get product %s: %w", room.ProductID, err)
	}
	if product.OwnerID == userID {
		return models.Bid{}, fmt.Errorf("service: user %s owns product %s: %w", userID, product.ProductID, auctionerrors.ErrSelfBid)
	}

	winning, err := s.repo.GetWinningBid(roomID)
	if err == nil {
		if amount <= winning.Amount {
			return models.Bid{}, fmt.Errorf("service: current highest bid is %.2f: %w", winning.Amount, auctionerrors.ErrBidTooLow)
		}
	} else if !errors.Is(err, auctionerrors.ErrNoBids) {
		return models.Bid{}, fmt.Errorf("service: failed to check winning bid: %w", err)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		RoomID:    roomID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: now,
	}
	if err := s.repo.RecordBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for room %s by user %s: %w", roomID, userID, err)
	}
	return bid, nil
}

// BidsForRoom returns the room's bids, newest first by default.
func (s *AuctionService) BidsForRoom(roomID string, opts repository.ListOptions) ([]models.Bid, error) {
	if roomID == "" {
		return nil, fmt.Errorf("service: %w - empty room ID", auctionerrors.ErrInvalidInput)
	}
	bids, err := s.repo.GetBidsByRoom(roomID, opts)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for room %s: %w", roomID, err)
	}
	return bids, nil
}

// WinningBid returns the room's current highest bid.
func (s *AuctionService) WinningBid(roomID string) (models.Bid, error) {
	if roomID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty room ID", auctionerrors.ErrInvalidInput)
	}
	bid, err := s.repo.GetWinningBid(roomID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for room %s: %w", roomID, err)
	}
	return bid, nil
}

// FavoriteProduct adds a product to the user's wish list.
func (s *AuctionService) FavoriteProduct(userID, productID string) error {
	if userID == "" || productID == "" {
		return fmt.Errorf("service: %w - missing userID or productID", auctionerrors.ErrInvalidInput)
	}
	fav := models.Favorite{
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddFavorite(fav); err != nil {
		return fmt.Errorf("service: failed to favorite product %s for user %s: %w", productID, userID, err)
	}
	return nil
}

// UnfavoriteProduct removes a product from the user's wish list.
func (s *AuctionService) UnfavoriteProduct(userID, productID string) error {
	if userID == "" || productID == "" {
		return fmt.Errorf("service: %w - missing userID or productID", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.RemoveFavorite(userID, productID); err != nil {
		return fmt.Errorf("service: failed to unfavorite product %s for user %s: %w", productID, userID, err)
	}
	return nil
}

// FavoriteProducts lists the products on the user's wish list.
func (s *AuctionService) FavoriteProducts(userID string) ([]models.Product, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	products, err := s.repo.GetFavoriteProducts(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get favorites for user %s: %w", userID, err)
	}
	return products, nil
}
