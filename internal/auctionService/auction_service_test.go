package auction

import (
	"errors"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// bidForRoom matches a recorded bid by its room, so parallel cases with
// different outcomes never consume each other's expectations.
type bidForRoom string

func (m bidForRoom) Matches(x interface{}) bool {
	b, ok := x.(models.Bid)
	return ok && b.RoomID == string(m)
}

func (m bidForRoom) String() string {
	return "bid for room " + string(m)
}

// productOfModel matches a created product by its model id.
type productOfModel string

func (m productOfModel) Matches(x interface{}) bool {
	p, ok := x.(models.Product)
	return ok && p.ModelID == string(m)
}

func (m productOfModel) String() string {
	return "product of model " + string(m)
}

// userWithEmail matches a created user by email.
type userWithEmail string

func (m userWithEmail) Matches(x interface{}) bool {
	u, ok := x.(models.User)
	return ok && u.Email == string(m)
}

func (m userWithEmail) String() string {
	return "user with email " + string(m)
}

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockRepo)

	now := time.Now().UTC()
	openRoom := models.Room{RoomID: "room1", ProductID: "prod1", End: now.Add(1 * time.Hour)}
	freshRoom := models.Room{RoomID: "roomA", ProductID: "prod1", End: now.Add(1 * time.Hour)}
	flakyRoom := models.Room{RoomID: "roomB", ProductID: "prod1", End: now.Add(1 * time.Hour)}
	closedRoom := models.Room{RoomID: "room2", ProductID: "prod2", End: now.Add(-1 * time.Minute)}
	bidder := models.User{UserID: "user1", Name: "Alice", Email: "alice@example.com"}
	product := models.Product{ProductID: "prod1", OwnerID: "owner1", ModelID: "model1", Price: 500}

	// Table-driven test cases
	tests := []struct {
		name          string
		roomID        string
		userID        string
		amount        float64
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:   "valid_first_bid",
			roomID: "roomA",
			userID: "user1",
			amount: 100,
			mockSetup: func() {
				mockRepo.EXPECT().GetRoom("roomA").Return(freshRoom, nil)
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetProduct("prod1").Return(product, nil)
				mockRepo.EXPECT().GetWinningBid("roomA").Return(models.Bid{}, auctionerrors.ErrNoBids)
				mockRepo.EXPECT().RecordBid(bidForRoom("roomA")).Return(nil)
			},
			expectError:   false,
			expectedError: nil,
		},
		{
			name:   "valid_outbid",
			roomID: "room1",
			userID: "user1",
			amount: 150,
			mockSetup: func() {
				mockRepo.EXPECT().GetRoom("room1").Return(openRoom, nil)
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetProduct("prod1").Return(product, nil)
				mockRepo.EXPECT().GetWinningBid("room1").Return(models.Bid{Amount: 100}, nil)
				mockRepo.EXPECT().RecordBid(bidForRoom("room1")).Return(nil)
			},
			expectError:   false,
			expectedError: nil,
		},
		{
			name:          "empty_roomID",
			roomID:        "",
			userID:        "user1",
			amount:        50,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "empty_userID",
			roomID:        "room1",
			userID:        "",
			amount:        50,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_amount",
			roomID:        "room1",
			userID:        "user1",
			amount:        0,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:   "room_closed",
			roomID: "room2",
			userID: "user1",
			amount: 100,
			mockSetup: func() {
				mockRepo.EXPECT().GetRoom("room2").Return(closedRoom, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrRoomClosed,
		},
		{
			name:   "room_not_found",
			roomID: "missing",
			userID: "user1",
			amount: 100,
			mockSetup: func() {
				mockRepo.EXPECT().GetRoom("missing").Return(models.Room{}, auctionerrors.ErrNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrNotFound,
		},
		{
			name:   "owner_bids_on_own_product",
			roomID: "room1",
			userID: "owner1",
			amount: 600,
			mockSetup: func() {
				mockRepo.EXPECT().GetRoom("room1").Return(openRoom, nil)
				mockRepo.EXPECT().GetUser("owner1").Return(models.User{UserID: "owner1"}, nil)
				mockRepo.EXPECT().GetProduct("prod1").Return(product, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrSelfBid,
		},
		{
			name:   "bid_below_current_highest",
			roomID: "room1",
			userID: "user1",
			amount: 90,
			mockSetup: func() {
				mockRepo.EXPECT().GetRoom("room1").Return(openRoom, nil)
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetProduct("prod1").Return(product, nil)
				mockRepo.EXPECT().GetWinningBid("room1").Return(models.Bid{Amount: 100}, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:   "bid_equal_to_highest",
			roomID: "room1",
			userID: "user1",
			amount: 100,
			mockSetup: func() {
				mockRepo.EXPECT().GetRoom("room1").Return(openRoom, nil)
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetProduct("prod1").Return(product, nil)
				mockRepo.EXPECT().GetWinningBid("room1").Return(models.Bid{Amount: 100}, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:   "repo_fails",
			roomID: "roomB",
			userID: "user1",
			amount: 120,
			mockSetup: func() {
				mockRepo.EXPECT().GetRoom("roomB").Return(flakyRoom, nil)
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetProduct("prod1").Return(product, nil)
				mockRepo.EXPECT().GetWinningBid("roomB").Return(models.Bid{Amount: 100}, nil)
				mockRepo.EXPECT().RecordBid(bidForRoom("roomB")).Return(errors.New("repo write failed"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps repo error, we don't match specific error here
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			tc.mockSetup()

			bid, err := service.PlaceBid(tc.roomID, tc.userID, tc.amount)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)

				// Validate generated BidID
				require.NotEmpty(t, bid.BidID)
				_, parseErr := uuid.Parse(bid.BidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")

				// Validate bid fields
				require.Equal(t, tc.roomID, bid.RoomID)
				require.Equal(t, tc.userID, bid.UserID)
				require.Equal(t, tc.amount, bid.Amount)
				require.WithinDuration(t, now, bid.CreatedAt, 2*time.Second)
			}
		})
	}
}

// Tests CreateProduct
func TestAuctionService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockRepo)

	now := time.Now().UTC()

	tests := []struct {
		name          string
		ownerID       string
		modelID       string
		price         float64
		duration      time.Duration
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:     "valid_listing",
			ownerID:  "owner1",
			modelID:  "model1",
			price:    999.99,
			duration: 7 * 24 * time.Hour,
			mockSetup: func() {
				mockRepo.EXPECT().CreateProductWithRoom(productOfModel("model1"), gomock.Any()).Return(nil)
			},
			expectError: false,
		},
		{
			name:          "empty_ownerID",
			ownerID:       "",
			modelID:       "model1",
			price:         100,
			duration:      time.Hour,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "empty_modelID",
			ownerID:       "owner1",
			modelID:       "",
			price:         100,
			duration:      time.Hour,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_price",
			ownerID:       "owner1",
			modelID:       "model1",
			price:         0,
			duration:      time.Hour,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_duration",
			ownerID:       "owner1",
			modelID:       "model1",
			price:         100,
			duration:      0,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:     "unknown_model",
			ownerID:  "owner1",
			modelID:  "ghost",
			price:    100,
			duration: time.Hour,
			mockSetup: func() {
				mockRepo.EXPECT().CreateProductWithRoom(productOfModel("ghost"), gomock.Any()).Return(auctionerrors.ErrNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			tc.mockSetup()

			product, room, err := service.CreateProduct(tc.ownerID, tc.modelID, tc.price, "a phone", []string{"p1.jpg"}, tc.duration)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)

				require.NotEmpty(t, product.ProductID)
				require.Equal(t, tc.ownerID, product.OwnerID)
				require.Equal(t, tc.modelID, product.ModelID)
				require.Equal(t, tc.price, product.Price)

				// Room belongs to the product and ends duration from now
				require.NotEmpty(t, room.RoomID)
				require.Equal(t, product.ProductID, room.ProductID)
				require.Nil(t, room.HighestBidID)
				require.WithinDuration(t, now.Add(tc.duration), room.End, 2*time.Second)
			}
		})
	}
}

// Tests RoomForProduct
func TestAuctionService_RoomForProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockRepo)

	now := time.Now().UTC()
	room := models.Room{RoomID: "room1", ProductID: "prod1", End: now.Add(time.Hour)}
	quietRoom := models.Room{RoomID: "room2", ProductID: "prod2", End: now.Add(time.Hour)}
	bidsExample := []models.Bid{
		{BidID: "bid2", RoomID: "room1", UserID: "user2", Amount: 150, CreatedAt: now.Add(1 * time.Second)},
		{BidID: "bid1", RoomID: "room1", UserID: "user1", Amount: 100, CreatedAt: now},
	}

	tests := []struct {
		name          string
		productID     string
		mockSetup     func()
		expectError   bool
		expectedError error
		expectedRoom  models.Room
		expectedBids  []models.Bid
	}{
		{
			name:      "room_with_bids",
			productID: "prod1",
			mockSetup: func() {
				mockRepo.EXPECT().GetRoomByProduct("prod1").Return(room, nil)
				mockRepo.EXPECT().GetBidsByRoom("room1", gomock.Any()).Return(bidsExample, nil)
			},
			expectError:  false,
			expectedRoom: room,
			expectedBids: bidsExample,
		},
		{
			name:      "room_without_bids",
			productID: "prod2",
			mockSetup: func() {
				mockRepo.EXPECT().GetRoomByProduct("prod2").Return(quietRoom, nil)
				mockRepo.EXPECT().GetBidsByRoom("room2", gomock.Any()).Return([]models.Bid{}, nil)
			},
			expectError:  false,
			expectedRoom: quietRoom,
			expectedBids: []models.Bid{},
		},
		{
			name:          "empty_productID",
			productID:     "",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:      "product_without_room",
			productID: "prod9",
			mockSetup: func() {
				mockRepo.EXPECT().GetRoomByProduct("prod9").Return(models.Room{}, auctionerrors.ErrNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			tc.mockSetup()

			got, bids, err := service.RoomForProduct(tc.productID, repository.ListOptions{Page: 1, Limit: 10})

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedRoom, got)
				require.Equal(t, tc.expectedBids, bids)
			}
		})
	}
}

// Tests RegisterUser
func TestAuctionService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockRepo)

	tests := []struct {
		name          string
		userName      string
		email         string
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:     "valid_user",
			userName: "Alice",
			email:    "alice@example.com",
			mockSetup: func() {
				mockRepo.EXPECT().CreateUser(userWithEmail("alice@example.com")).Return(nil)
			},
			expectError: false,
		},
		{
			name:          "empty_name",
			userName:      "",
			email:         "alice@example.com",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "empty_email",
			userName:      "Alice",
			email:         "",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:     "duplicate_email",
			userName: "Bob",
			email:    "taken@example.com",
			mockSetup: func() {
				mockRepo.EXPECT().CreateUser(userWithEmail("taken@example.com")).Return(auctionerrors.ErrConflict)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrConflict,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			tc.mockSetup()

			user, err := service.RegisterUser(tc.userName, tc.email, "google")

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.NotEmpty(t, user.UserID)
				_, parseErr := uuid.Parse(user.UserID)
				require.NoError(t, parseErr, "UserID should be a valid UUID")
				require.Equal(t, tc.userName, user.Name)
				require.Equal(t, tc.email, user.Email)
			}
		})
	}
}

// Tests WinningBid
func TestAuctionService_WinningBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockRepo)

	tests := []struct {
		name        string
		roomID      string
		mockSetup   func()
		expectError bool
	}{
		{
			name:   "room_with_winning_bid",
			roomID: "room1",
			mockSetup: func() {
				mockRepo.EXPECT().GetWinningBid("room1").Return(models.Bid{
					BidID:  "bid1",
					RoomID: "room1",
					UserID: "user1",
					Amount: 100,
				}, nil)
			},
			expectError: false,
		},
		{
			name:        "empty_roomID",
			roomID:      "",
			mockSetup:   func() {},
			expectError: true,
		},
		{
			name:   "room_without_bids",
			roomID: "room2",
			mockSetup: func() {
				mockRepo.EXPECT().GetWinningBid("room2").Return(models.Bid{}, auctionerrors.ErrNoBids)
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			tc.mockSetup()

			bid, err := service.WinningBid(tc.roomID)

			if tc.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.roomID, bid.RoomID)
				require.Equal(t, 100.0, bid.Amount)
			}
		})
	}
}

// Tests FavoriteProduct / UnfavoriteProduct
func TestAuctionService_Favorites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockRepo)

	mockRepo.EXPECT().AddFavorite(gomock.Any()).DoAndReturn(func(fav models.Favorite) error {
		require.Equal(t, "user1", fav.UserID)
		require.Equal(t, "prod1", fav.ProductID)
		return nil
	})
	require.NoError(t, service.FavoriteProduct("user1", "prod1"))

	mockRepo.EXPECT().RemoveFavorite("user1", "prod1").Return(nil)
	require.NoError(t, service.UnfavoriteProduct("user1", "prod1"))

	err := service.FavoriteProduct("", "prod1")
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))

	err = service.UnfavoriteProduct("user1", "")
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))
}
