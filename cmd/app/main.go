package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"flourmill/cmd"
	millhttp "flourmill/internal/adapters/in/http"
	"flourmill/internal/adapters/out/postgres"
	"flourmill/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if err := postgres.Seed(context.Background(), gormDB); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetAllBinsQueryHandler(),
		app.CreateGetStorageLocationsQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBDriver:   goDotEnvVariable("DB_DRIVER"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		SQLitePath: goDotEnvVariable("SQLITE_PATH"),
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

// mustConnectDB opens either a postgres or a sqlite connection depending on
// DB_DRIVER. SQLite keeps local development free of external services.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	var dialector gorm.Dialector
	switch configs.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(configs.SQLitePath)
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			configs.DBHost, configs.DBUser, configs.DBPassword,
			configs.DBName, configs.DBPort, configs.DBSslMode)
		dialector = postgresdriver.Open(dsn)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := millhttp.NewServer(millhttp.Handlers{
		CreateOrder:             app.CreateCreateOrderCommandHandler(),
		CreatePlan:              app.CreateCreatePlanCommandHandler(),
		StartBlendedTransfer:    app.CreateStartBlendedTransferCommandHandler(),
		StopBlendedTransfer:     app.CreateStopBlendedTransferCommandHandler(),
		StartSequentialTransfer: app.CreateStartSequentialTransferCommandHandler(),
		StopSequentialTransfer:  app.CreateStopSequentialTransferCommandHandler(),
		StartGrinding:           app.CreateStartGrindingCommandHandler(),
		StopGrinding:            app.CreateStopGrindingCommandHandler(),
		SubmitHourlyReport:      app.CreateSubmitHourlyReportCommandHandler(),
		SubmitLabTest:           app.CreateSubmitLabTestCommandHandler(),
		SubmitPackaging:         app.CreateSubmitPackagingCommandHandler(),
		Bins:                    app.CreateBinCommandHandler(),
		Storage:                 app.CreateStorageCommandHandler(),
		ProductCatalog:          app.CreateProductCatalogCommandHandler(),

		GetAllOrders:        app.CreateGetAllOrdersQueryHandler(),
		GetOrder:            app.CreateGetOrderQueryHandler(),
		GetAllBins:          app.CreateGetAllBinsQueryHandler(),
		GetStorageLocations: app.CreateGetStorageLocationsQueryHandler(),
		GetProductCatalog:   app.CreateGetProductCatalogQueryHandler(),
		GetPlans:            app.CreateGetPlansQueryHandler(),
		GetGrindingSummary:  app.CreateGetGrindingSummaryQueryHandler(),
		GetTimeline:         app.CreateGetTimelineQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
