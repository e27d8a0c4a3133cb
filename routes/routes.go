package routes

import (
	"backend/controllers"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories / services
	sandwichRepo := repository.NewSandwichRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	sandwichSvc := services.NewSandwichService(db, sandwichRepo)
	orderSvc := services.NewOrderService(db, orderRepo)

	// Controllers
	sandwichCtrl := controllers.NewSandwichController(sandwichSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	customerCtrl := controllers.NewCustomerController(db)
	reviewCtrl := controllers.NewReviewController(db)
	promoCtrl := controllers.NewPromoCodeController(db)

	api := r.Group("/api")
	{
		api.GET("/sandwiches", sandwichCtrl.List)
		api.GET("/sandwiches/:id", sandwichCtrl.Get)
		api.POST("/sandwiches", sandwichCtrl.Create)
		api.PUT("/sandwiches/:id", sandwichCtrl.Update)
		api.DELETE("/sandwiches/:id", sandwichCtrl.Delete)

		api.GET("/orders", orderCtrl.List)
		api.GET("/orders/:id", orderCtrl.Get)
		api.POST("/orders", orderCtrl.Create)
		api.PUT("/orders/:id", orderCtrl.Update)
		api.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		api.DELETE("/orders/:id", orderCtrl.Delete)

		api.GET("/customers", customerCtrl.List)
		api.GET("/customers/:id", customerCtrl.Get)
		api.POST("/customers", customerCtrl.Create)
		api.PUT("/customers/:id", customerCtrl.Update)
		api.DELETE("/customers/:id", customerCtrl.Delete)

		api.GET("/reviews", reviewCtrl.List)
		api.GET("/reviews/:id", reviewCtrl.Get)
		api.POST("/reviews", reviewCtrl.Create)
		api.PUT("/reviews/:id", reviewCtrl.Update)
		api.PATCH("/reviews/:id/status", reviewCtrl.UpdateStatus)
		api.DELETE("/reviews/:id", reviewCtrl.Delete)

		api.GET("/promocodes", promoCtrl.List)
		api.GET("/promocodes/:id", promoCtrl.Get)
		api.POST("/promocodes", promoCtrl.Create)
		api.PUT("/promocodes/:id", promoCtrl.Update)
		api.DELETE("/promocodes/:id", promoCtrl.Delete)
	}
}
