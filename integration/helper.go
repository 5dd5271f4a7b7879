package integration

import (
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/iyhunko/realtime-catalog/internal/config"
	httpAPI "github.com/iyhunko/realtime-catalog/internal/http"
	"github.com/iyhunko/realtime-catalog/internal/http/controller"
	"github.com/iyhunko/realtime-catalog/internal/model"
	"github.com/iyhunko/realtime-catalog/internal/notifier"
	"github.com/iyhunko/realtime-catalog/internal/repository"
	"github.com/iyhunko/realtime-catalog/internal/service"
	"github.com/iyhunko/realtime-catalog/internal/store"
	"github.com/iyhunko/realtime-catalog/internal/ws"
)

// TestApp holds a fully wired catalog service backed by a temporary data
// directory.
type TestApp struct {
	Router      *gin.Engine
	Repo        *repository.ProductRepository
	Hub         *ws.Hub
	CatalogPath string
}

// SetupTestApp wires the repository, service, websocket hub and router the
// same way cmd/catalog-service does, minus the SQS sink and the HTML views.
func SetupTestApp(t *testing.T) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogPath := filepath.Join(t.TempDir(), config.ProductsFileName)
	doc := store.NewDocument[model.Product](catalogPath)
	repo, err := repository.NewProductRepository(doc)
	if err != nil {
		t.Fatalf("Could not load product collection: %s", err)
	}

	hub := ws.NewHub()
	productService := service.NewProductService(repo, notifier.Multi{hub})

	router := gin.New()
	router = httpAPI.InitRouter(&config.Config{}, router, controller.New(), controller.NewProductController(productService), nil, hub)

	return &TestApp{
		Router:      router,
		Repo:        repo,
		Hub:         hub,
		CatalogPath: catalogPath,
	}
}
