package http

import (
	"github.com/gin-gonic/gin"

	"github.com/iyhunko/realtime-catalog/internal/config"
	"github.com/iyhunko/realtime-catalog/internal/http/controller"
	"github.com/iyhunko/realtime-catalog/internal/http/middleware"
	"github.com/iyhunko/realtime-catalog/internal/ws"
)

// InitRouter wires middleware, the product API, the websocket endpoint and
// the HTML views onto the given engine.
func InitRouter(_ *config.Config, server *gin.Engine, ctr *controller.Controller, productCtr *controller.ProductController, viewCtr *controller.ViewController, hub *ws.Hub) *gin.Engine {
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())
	server.Use(middleware.RequestID())
	server.Use(middleware.Logger())
	server.Use(middleware.CORS())

	server.GET("/ping", ctr.Ping)

	// Product endpoints
	products := server.Group("/api/products")
	{
		products.GET("", productCtr.ListProducts)
		products.GET("/:pid", productCtr.GetProduct)
		products.POST("", productCtr.CreateProduct)
		products.PUT("/:pid", productCtr.UpdateProduct)
		products.DELETE("/:pid", productCtr.DeleteProduct)
	}

	// Real-time observers
	server.GET("/ws", gin.WrapF(hub.Serve))

	// HTML views
	if viewCtr != nil {
		server.GET("/home", viewCtr.Home)
		server.GET("/realtimeproducts", viewCtr.RealTimeProducts)
	}

	return server
}
