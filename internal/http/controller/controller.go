package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iyhunko/realtime-catalog/internal/service"
)

// Controller handles general HTTP requests.
type Controller struct{}

// New creates a new Controller.
func New() *Controller {
	return &Controller{}
}

// Ping handles the HTTP GET request for health check endpoint.
func (con *Controller) Ping(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "pong",
	})
}

// ViewController renders the HTML product views.
type ViewController struct {
	productService *service.ProductService
}

// NewViewController creates a ViewController backed by the given service.
func NewViewController(productService *service.ProductService) *ViewController {
	return &ViewController{productService: productService}
}

// Home renders the static product listing view.
func (vc *ViewController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"products": vc.productService.ListProducts(c.Request.Context()),
	})
}

// RealTimeProducts renders the live product view; the page subscribes to the
// websocket endpoint and re-renders on every catalog change.
func (vc *ViewController) RealTimeProducts(c *gin.Context) {
	c.HTML(http.StatusOK, "realtimeproducts.html", gin.H{
		"products": vc.productService.ListProducts(c.Request.Context()),
	})
}
