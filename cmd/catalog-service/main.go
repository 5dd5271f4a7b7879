package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"

	"github.com/iyhunko/realtime-catalog/internal/config"
	httpAPI "github.com/iyhunko/realtime-catalog/internal/http"
	"github.com/iyhunko/realtime-catalog/internal/http/controller"
	"github.com/iyhunko/realtime-catalog/internal/logger"
	"github.com/iyhunko/realtime-catalog/internal/metrics"
	"github.com/iyhunko/realtime-catalog/internal/model"
	"github.com/iyhunko/realtime-catalog/internal/notifier"
	"github.com/iyhunko/realtime-catalog/internal/repository"
	"github.com/iyhunko/realtime-catalog/internal/service"
	"github.com/iyhunko/realtime-catalog/internal/store"
	"github.com/iyhunko/realtime-catalog/internal/ws"
)

func main() {
	logger.InitJSONLogger()

	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	ctx := context.Background()

	// The catalog lives in one JSON document; the repository loads it once
	// at startup and writes through on every mutation.
	doc := store.NewDocument[model.Product](conf.ProductsFilePath())
	productRepository, err := repository.NewProductRepository(doc)
	handleErr("loading product collection", err)

	// Observers: websocket hub always, SQS sink only when configured.
	hub := ws.NewHub()
	sinks := notifier.Multi{hub}
	if conf.SQSEnabled() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(conf.AWS.Region),
		)
		handleErr("loading AWS config", err)

		// Override endpoint for LocalStack if specified
		if conf.AWS.Endpoint != "" {
			awsCfg.BaseEndpoint = aws.String(conf.AWS.Endpoint)
		}

		sqsClient := sqs.NewFromConfig(awsCfg)
		sinks = append(sinks, notifier.NewSQSPublisher(sqsClient, conf.AWS.SQSQueueURL))
	}

	productService := service.NewProductService(productRepository, sinks)

	// Start metrics server
	metrics.StartMetricsServer(conf.MetricsServer.Port)

	// Start HTTP server
	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	ctr := controller.New()
	productCtr := controller.NewProductController(productService)
	viewCtr := controller.NewViewController(productService)
	httpServer := gin.New()
	httpServer.LoadHTMLGlob(filepath.Join("web", "templates", "*.html"))
	httpServer = httpAPI.InitRouter(conf, httpServer, ctr, productCtr, viewCtr, hub)

	go func() {
		err = httpServer.Run(":" + conf.HTTPServer.Port)
		if err != nil {
			handleErr("listening to HTTP requests", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down gracefully...")
	// TODO: stop httpServer gracefully
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
