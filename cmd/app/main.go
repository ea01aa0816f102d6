package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ordering/cmd"
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/restaurantrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		logger,
	)
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startConsumers(ctx, &app, logger)
	startJobs(&app)

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                             goDotEnvVariable("HTTP_PORT"),
		DBHost:                               goDotEnvVariable("DB_HOST"),
		DBPort:                               goDotEnvVariable("DB_PORT"),
		DBUser:                               goDotEnvVariable("DB_USER"),
		DBPassword:                           goDotEnvVariable("DB_PASSWORD"),
		DBName:                               goDotEnvVariable("DB_NAME"),
		DBSslMode:                            goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                            goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:                   goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaPaymentRequestTopic:             goDotEnvVariable("KAFKA_PAYMENT_REQUEST_TOPIC"),
		KafkaPaymentResponseTopic:            goDotEnvVariable("KAFKA_PAYMENT_RESPONSE_TOPIC"),
		KafkaRestaurantApprovalRequestTopic:  goDotEnvVariable("KAFKA_RESTAURANT_APPROVAL_REQUEST_TOPIC"),
		KafkaRestaurantApprovalResponseTopic: goDotEnvVariable("KAFKA_RESTAURANT_APPROVAL_RESPONSE_TOPIC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startConsumers(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) {
	paymentConsumer := app.CreatePaymentResponseConsumer()
	approvalConsumer := app.CreateRestaurantApprovalResponseConsumer()

	go func() {
		if err := paymentConsumer.Run(ctx); err != nil {
			logger.ErrorContext(ctx, "Payment response consumer stopped", "error", err)
		}
	}()
	go func() {
		if err := approvalConsumer.Run(ctx); err != nil {
			logger.ErrorContext(ctx, "Restaurant approval response consumer stopped", "error", err)
		}
	}()
}

func startJobs(app *cmd.CompositionRoot) {
	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	createOrderHandler := app.CreateCreateOrderCommandHandler()
	trackOrderHandler := app.CreateTrackOrderQueryHandler()
	server := httpin.NewServer(createOrderHandler, trackOrderHandler)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
