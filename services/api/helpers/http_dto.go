package helpers

import (
	"time"

	model "auction-house/internal/models"
)

// Request DTOs
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Provider string `json:"provider"`
}

type CreateBrandRequest struct {
	Name    string `json:"name" binding:"required"`
	Picture string `json:"picture"`
}

type UpdateBrandRequest struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

type CreateModelRequest struct {
	Name        string   `json:"name" binding:"required"`
	BrandID     string   `json:"brand_id" binding:"required"`
	CategoryIDs []string `json:"category_ids"`
}

type UpdateModelRequest struct {
	Name        string   `json:"name"`
	CategoryIDs []string `json:"category_ids"`
}

type CreateProductRequest struct {
	OwnerID         string   `json:"owner_id" binding:"required"`
	ModelID         string   `json:"model_id" binding:"required"`
	Price           float64  `json:"price" binding:"required,gt=0"`
	Description     string   `json:"description"`
	Pictures        []string `json:"pictures"`
	DurationSeconds int64    `json:"duration_seconds" binding:"required,gt=0"`
}

type UpdateProductRequest struct {
	Price       float64  `json:"price" binding:"gte=0"`
	Description string   `json:"description"`
	Pictures    []string `json:"pictures"`
}

type PlaceBidRequest struct {
	RoomID string  `json:"room_id" binding:"required"`
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type FavoriteRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Response DTOs
type BidResponse struct {
	BidID     string  `json:"bid_id"`
	RoomID    string  `json:"room_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type RoomResponse struct {
	RoomID       string        `json:"room_id"`
	ProductID    string        `json:"product_id"`
	End          string        `json:"end"`
	HighestBidID *string       `json:"highest_bid_id"`
	Open         bool          `json:"open"`
	Bids         []BidResponse `json:"bids"`
	CreatedAt    string        `json:"created_at"`
}

type ProductResponse struct {
	model.Product
	Room *RoomResponse `json:"room,omitempty"`
}

func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		RoomID:    bid.RoomID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewRoomResponse renders a room with its bids; Open is derived from the
// end deadline at the given instant, never persisted.
func NewRoomResponse(room model.Room, bids []model.Bid, now time.Time) RoomResponse {
	out := RoomResponse{
		RoomID:       room.RoomID,
		ProductID:    room.ProductID,
		End:          room.End.UTC().Format(time.RFC3339),
		HighestBidID: room.HighestBidID,
		Open:         room.IsOpen(now),
		Bids:         make([]BidResponse, 0, len(bids)),
		CreatedAt:    room.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, b := range bids {
		out.Bids = append(out.Bids, NewBidResponse(b))
	}
	return out
}
