package app

import (
	"fmt"

	"cleanmatch_backend/internal/config"
	"cleanmatch_backend/internal/handlers"
	"cleanmatch_backend/internal/logger"
	"cleanmatch_backend/internal/middleware"
	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/repositories"
	"cleanmatch_backend/internal/routes"
	"cleanmatch_backend/internal/services"
	"cleanmatch_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}

// Migrate keeps the schema in sync with the model set. Shared with the
// test harness, which runs it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Job{},
		&models.AvailabilitySlot{},
		&models.Favorite{},
		&models.CleanerView{},
		&models.JobReport{},
	)
}

// BuildServices wires the repository layer into the service container.
func BuildServices(cfg *config.Config) *services.ServiceContainer {
	accountRepo := repositories.NewAccountRepository()
	jobRepo := repositories.NewJobRepository()
	favoriteRepo := repositories.NewFavoriteRepository()
	viewRepo := repositories.NewViewRepository()
	availabilityRepo := repositories.NewAvailabilityRepository()
	reportRepo := repositories.NewReportRepository()

	return &services.ServiceContainer{
		AccountService:      services.NewAccountService(accountRepo),
		JobService:          services.NewJobService(jobRepo, accountRepo, reportRepo),
		FavoriteService:     services.NewFavoriteService(favoriteRepo, viewRepo),
		ListingService:      services.NewListingService(cfg.Listing.DefaultPageSize),
		AvailabilityService: services.NewAvailabilityService(availabilityRepo),
		RecordService:       services.NewRecordService(),
	}
}

// SetupRouter assembles middleware, services and routes into a ready
// gin engine. Tests call it directly with a sqlite db.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.ActorMiddleware())

	sc := BuildServices(cfg)
	appHandlers := handlers.NewAppHandlers(sc, validator.New())
	routes.RegisterRoutes(router, appHandlers)

	return router
}
