package models

import "time"

// User represents a participant in the auction house. Auth providers are
// recorded but never verified here.
type User struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;column:user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Favorite marks a product on a user's wish list.
type Favorite struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;column:user_id"`
	ProductID string    `json:"product_id" gorm:"primaryKey;column:product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Brand is catalog metadata: a name and a picture reference.
type Brand struct {
	BrandID   string    `json:"brand_id" gorm:"primaryKey;column:brand_id"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category is a name-only tag attached to models.
type Category struct {
	CategoryID string    `json:"category_id" gorm:"primaryKey;column:category_id"`
	Name       string    `json:"name" gorm:"uniqueIndex"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Model is a product model belonging to one brand and tagged with a set of
// categories. CategoryIDs is populated by the repository from the join table.
type Model struct {
	ModelID     string    `json:"model_id" gorm:"primaryKey;column:model_id"`
	Name        string    `json:"name"`
	BrandID     string    `json:"brand_id" gorm:"index"`
	CategoryIDs []string  `json:"category_ids" gorm:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ModelCategory links a model to a category.
type ModelCategory struct {
	ModelID    string `json:"model_id" gorm:"primaryKey;column:model_id"`
	CategoryID string `json:"category_id" gorm:"primaryKey;column:category_id"`
}

// Product is a listed item. Every product has exactly one Room, created in
// the same transaction. BuyerID stays nil while the room is open.
type Product struct {
	ProductID   string    `json:"product_id" gorm:"primaryKey;column:product_id"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Pictures    []string  `json:"pictures" gorm:"serializer:json"`
	ModelID     string    `json:"model_id" gorm:"index"`
	OwnerID     string    `json:"owner_id" gorm:"index"`
	BuyerID     *string   `json:"buyer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Room is the time-bounded bidding context attached to one product. End is
// authoritative: the room is open strictly before End and closed from End
// on. There is no persisted closed flag and no reopening.
type Room struct {
	RoomID       string    `json:"room_id" gorm:"primaryKey;column:room_id"`
	ProductID    string    `json:"product_id" gorm:"uniqueIndex"`
	End          time.Time `json:"end"`
	HighestBidID *string   `json:"highest_bid_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsOpen reports whether the room still accepts bids at the given instant.
func (r Room) IsOpen(now time.Time) bool {
	return now.Before(r.End)
}

// Bid is an append-only record of a user's offer against a room.
type Bid struct {
	BidID     string    `json:"bid_id" gorm:"primaryKey;column:bid_id"`
	RoomID    string    `json:"room_id" gorm:"index"`
	UserID    string    `json:"user_id" gorm:"index"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
