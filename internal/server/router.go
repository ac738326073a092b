package server

import (
	auction "auction-house/internal/auctionService"
	catalog "auction-house/internal/catalogService"
	handler "auction-house/services/api/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, catalogService *catalog.CatalogService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	users := router.Group("/users")
	{
		users.POST("", auctionHandler.RegisterUserHandler)
		users.GET("/:user_id", auctionHandler.GetUserHandler)
		users.GET("/:user_id/favorites", auctionHandler.ListFavoritesHandler)
		users.POST("/:user_id/favorites", auctionHandler.FavoriteHandler)
		users.DELETE("/:user_id/favorites/:product_id", auctionHandler.UnfavoriteHandler)
	}

	brands := router.Group("/brands")
	{
		brands.GET("", catalogHandler.ListBrandsHandler)
		brands.POST("", catalogHandler.CreateBrandHandler)
		brands.GET("/:brand_id", catalogHandler.GetBrandHandler)
		brands.PUT("/:brand_id", catalogHandler.UpdateBrandHandler)
		brands.DELETE("/:brand_id", catalogHandler.DeleteBrandHandler)
		brands.GET("/:brand_id/models", catalogHandler.ModelsByBrandHandler)
		brands.GET("/:brand_id/products", auctionHandler.ProductsByBrandHandler)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", catalogHandler.ListCategoriesHandler)
		categories.POST("", catalogHandler.CreateCategoryHandler)
		categories.GET("/:category_id", catalogHandler.GetCategoryHandler)
		categories.PUT("/:category_id", catalogHandler.UpdateCategoryHandler)
		categories.DELETE("/:category_id", catalogHandler.DeleteCategoryHandler)
	}

	catModels := router.Group("/models")
	{
		catModels.GET("", catalogHandler.ListModelsHandler)
		catModels.POST("", catalogHandler.CreateModelHandler)
		catModels.GET("/:model_id", catalogHandler.GetModelHandler)
		catModels.PUT("/:model_id", catalogHandler.UpdateModelHandler)
		catModels.DELETE("/:model_id", catalogHandler.DeleteModelHandler)
		catModels.GET("/:model_id/products", auctionHandler.ProductsByModelHandler)
	}

	products := router.Group("/products")
	{
		products.GET("", auctionHandler.ListProductsHandler)
		products.POST("", auctionHandler.CreateProductHandler)
		products.GET("/:product_id", auctionHandler.GetProductHandler)
		products.PUT("/:product_id", auctionHandler.UpdateProductHandler)
		products.DELETE("/:product_id", auctionHandler.DeleteProductHandler)
		products.GET("/:product_id/room", auctionHandler.RoomByProductHandler)
		products.GET("/:product_id/countdown", auctionHandler.CountdownHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	rooms := router.Group("/rooms")
	{
		rooms.GET("/:room_id/bids", auctionHandler.ListBidsHandler)
		rooms.GET("/:room_id/winning", auctionHandler.WinningBidHandler)
	}

	return router
}
