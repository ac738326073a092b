package handler

import (
	"encoding/json"
	"net/http"
	"time"

	model "auction-house/internal/models"
	"auction-house/internal/countdown"
	"auction-house/internal/repository"
	"auction-house/services/api/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	RegisterUser(name, email, provider string) (model.User, error)
	GetUser(userID string) (model.User, error)
	CreateProduct(ownerID, modelID string, price float64, description string, pictures []string, duration time.Duration) (model.Product, model.Room, error)
	GetProduct(productID string) (model.Product, model.Room, error)
	GetProducts(opts repository.ListOptions) ([]model.Product, error)
	ProductsByBrand(brandID string, opts repository.ListOptions) ([]model.Product, error)
	ProductsByModel(modelID string, opts repository.ListOptions) ([]model.Product, error)
	UpdateProduct(productID string, price float64, description string, pictures []string) (model.Product, error)
	DeleteProduct(productID string) error
	RoomForProduct(productID string, opts repository.ListOptions) (model.Room, []model.Bid, error)
	PlaceBid(roomID, userID string, amount float64) (model.Bid, error)
	BidsForRoom(roomID string, opts repository.ListOptions) ([]model.Bid, error)
	WinningBid(roomID string) (model.Bid, error)
	FavoriteProduct(userID, productID string) error
	UnfavoriteProduct(userID, productID string) error
	FavoriteProducts(userID string) ([]model.Product, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// RegisterUserHandler handles POST /users
func (h *AuctionHandler) RegisterUserHandler(c *gin.Context) {
	var req helpers.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}

	user, err := h.service.RegisterUser(req.Name, req.Email, req.Provider)
	if err != nil {
		helpers.RespondServiceError(c, "RegisterUserHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user registered successfully")
	helpers.LogSuccess("RegisterUserHandler", "user registered successfully", map[string]any{
		"user_id": user.UserID,
	})
}

// GetUserHandler handles GET /users/:user_id
func (h *AuctionHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.GetUser(userID)
	if err != nil {
		helpers.RespondServiceError(c, "GetUserHandler", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// CreateProductHandler handles POST /products. The product and its bidding
// room are created together; the response carries both.
func (h *AuctionHandler) CreateProductHandler(c *gin.Context) {
	var req helpers.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	duration := time.Duration(req.DurationSeconds) * time.Second
	product, room, err := h.service.CreateProduct(req.OwnerID, req.ModelID, req.Price, req.Description, req.Pictures, duration)
	if err != nil {
		helpers.RespondServiceError(c, "CreateProductHandler", err, map[string]any{
			"owner_id": req.OwnerID,
			"model_id": req.ModelID,
		})
		return
	}

	roomResp := helpers.NewRoomResponse(room, nil, time.Now().UTC())
	resp := helpers.ProductResponse{Product: product, Room: &roomResp}

	utils.JSONResponse(c, http.StatusCreated, resp, "product listed successfully")
	helpers.LogSuccess("CreateProductHandler", "product listed successfully", map[string]any{
		"product_id": product.ProductID,
		"room_id":    room.RoomID,
		"end":        room.End.UTC().Format(time.RFC3339),
	})
}

// GetProductHandler handles GET /products/:product_id
func (h *AuctionHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, room, err := h.service.GetProduct(productID)
	if err != nil {
		helpers.RespondServiceError(c, "GetProductHandler", err, map[string]any{"product_id": productID})
		return
	}

	roomResp := helpers.NewRoomResponse(room, nil, time.Now().UTC())
	resp := helpers.ProductResponse{Product: product, Room: &roomResp}
	utils.JSONResponse(c, http.StatusOK, resp, "product retrieved successfully")
}

// ListProductsHandler handles GET /products
func (h *AuctionHandler) ListProductsHandler(c *gin.Context) {
	opts := helpers.ParseListOptions(c)
	products, err := h.service.GetProducts(opts)
	if err != nil {
		helpers.RespondServiceError(c, "ListProductsHandler", err, nil)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
	helpers.LogSuccess("ListProductsHandler", "products retrieved successfully", map[string]any{
		"count":  len(products),
		"search": opts.Search,
	})
}

// ProductsByBrandHandler handles GET /brands/:brand_id/products
func (h *AuctionHandler) ProductsByBrandHandler(c *gin.Context) {
	brandID := c.Param("brand_id")
	products, err := h.service.ProductsByBrand(brandID, helpers.ParseListOptions(c))
	if err != nil {
		helpers.RespondServiceError(c, "ProductsByBrandHandler", err, map[string]any{"brand_id": brandID})
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
}

// ProductsByModelHandler handles GET /models/:model_id/products
func (h *AuctionHandler) ProductsByModelHandler(c *gin.Context) {
	modelID := c.Param("model_id")
	products, err := h.service.ProductsByModel(modelID, helpers.ParseListOptions(c))
	if err != nil {
		helpers.RespondServiceError(c, "ProductsByModelHandler", err, map[string]any{"model_id": modelID})
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
}

// UpdateProductHandler handles PUT /products/:product_id
func (h *AuctionHandler) UpdateProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	var req helpers.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProductHandler", err)
		return
	}

	product, err := h.service.UpdateProduct(productID, req.Price, req.Description, req.Pictures)
	if err != nil {
		helpers.RespondServiceError(c, "UpdateProductHandler", err, map[string]any{"product_id": productID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, product, "product updated successfully")
}

// DeleteProductHandler handles DELETE /products/:product_id
func (h *AuctionHandler) DeleteProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	if err := h.service.DeleteProduct(productID); err != nil {
		helpers.RespondServiceError(c, "DeleteProductHandler", err, map[string]any{"product_id": productID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"product_id": productID}, "product deleted successfully")
	helpers.LogSuccess("DeleteProductHandler", "product deleted successfully", map[string]any{
		"product_id": productID,
	})
}

// RoomByProductHandler handles GET /products/:product_id/room
func (h *AuctionHandler) RoomByProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	room, bids, err := h.service.RoomForProduct(productID, helpers.ParseListOptions(c))
	if err != nil {
		helpers.RespondServiceError(c, "RoomByProductHandler", err, map[string]any{"product_id": productID})
		return
	}

	resp := helpers.NewRoomResponse(room, bids, time.Now().UTC())
	utils.JSONResponse(c, http.StatusOK, resp, "room retrieved successfully")
	helpers.LogSuccess("RoomByProductHandler", "room retrieved successfully", map[string]any{
		"product_id": productID,
		"room_id":    room.RoomID,
		"bid_count":  len(bids),
	})
}

// CountdownHandler handles GET /products/:product_id/countdown. Plain GET
// returns one sample; ?watch=true streams a sample per second as NDJSON
// until the room closes or the client disconnects.
func (h *AuctionHandler) CountdownHandler(c *gin.Context) {
	productID := c.Param("product_id")
	_, room, err := h.service.GetProduct(productID)
	if err != nil {
		helpers.RespondServiceError(c, "CountdownHandler", err, map[string]any{"product_id": productID})
		return
	}

	now := time.Now().UTC()
	if c.Query("watch") != "true" {
		utils.JSONResponse(c, http.StatusOK, gin.H{
			"remaining": countdown.TimeRemaining(room.End, now),
			"open":      room.IsOpen(now),
		}, "countdown retrieved successfully")
		return
	}

	c.Writer.Header().Set("Content-Type", "application/x-ndjson")
	c.Status(http.StatusOK)
	enc := json.NewEncoder(c.Writer)
	for remaining := range countdown.Watch(c.Request.Context(), room.End) {
		if err := enc.Encode(remaining); err != nil {
			return
		}
		c.Writer.Flush()
	}
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.RoomID, req.UserID, req.Amount)
	if err != nil {
		helpers.RespondServiceError(c, "PlaceBidHandler", err, map[string]any{
			"room_id": req.RoomID,
			"user_id": req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.BidID,
		"room_id": bid.RoomID,
		"user_id": bid.UserID,
		"amount":  bid.Amount,
	})
}

// ListBidsHandler handles GET /rooms/:room_id/bids
func (h *AuctionHandler) ListBidsHandler(c *gin.Context) {
	roomID := c.Param("room_id")
	bids, err := h.service.BidsForRoom(roomID, helpers.ParseListOptions(c))
	if err != nil {
		helpers.RespondServiceError(c, "ListBidsHandler", err, map[string]any{"room_id": roomID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.NewBidResponse(b))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{
		"room_id": roomID,
		"count":   len(resp),
	})
}

// WinningBidHandler handles GET /rooms/:room_id/winning
func (h *AuctionHandler) WinningBidHandler(c *gin.Context) {
	roomID := c.Param("room_id")
	bid, err := h.service.WinningBid(roomID)
	if err != nil {
		helpers.RespondServiceError(c, "WinningBidHandler", err, map[string]any{"room_id": roomID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "winning bid retrieved successfully")
}

// FavoriteHandler handles POST /users/:user_id/favorites
func (h *AuctionHandler) FavoriteHandler(c *gin.Context) {
	userID := c.Param("user_id")
	var req helpers.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FavoriteHandler", err)
		return
	}

	if err := h.service.FavoriteProduct(userID, req.ProductID); err != nil {
		helpers.RespondServiceError(c, "FavoriteHandler", err, map[string]any{
			"user_id":    userID,
			"product_id": req.ProductID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{"product_id": req.ProductID}, "product favorited successfully")
}

// UnfavoriteHandler handles DELETE /users/:user_id/favorites/:product_id
func (h *AuctionHandler) UnfavoriteHandler(c *gin.Context) {
	userID := c.Param("user_id")
	productID := c.Param("product_id")
	if err := h.service.UnfavoriteProduct(userID, productID); err != nil {
		helpers.RespondServiceError(c, "UnfavoriteHandler", err, map[string]any{
			"user_id":    userID,
			"product_id": productID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"product_id": productID}, "product unfavorited successfully")
}

// ListFavoritesHandler handles GET /users/:user_id/favorites
func (h *AuctionHandler) ListFavoritesHandler(c *gin.Context) {
	userID := c.Param("user_id")
	products, err := h.service.FavoriteProducts(userID)
	if err != nil {
		helpers.RespondServiceError(c, "ListFavoritesHandler", err, map[string]any{"user_id": userID})
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	utils.JSONResponse(c, http.StatusOK, products, "favorites retrieved successfully")
}
