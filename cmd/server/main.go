package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ttkcys/milliyetciler/docs"
	"github.com/ttkcys/milliyetciler/internal/config"
	dergiHTTP "github.com/ttkcys/milliyetciler/internal/dergi/delivery/http"
	dergirepo "github.com/ttkcys/milliyetciler/internal/dergi/repository"
	dergiquery "github.com/ttkcys/milliyetciler/internal/dergi/usecase/query"
	listHTTP "github.com/ttkcys/milliyetciler/internal/list/delivery/http"
	listdomain "github.com/ttkcys/milliyetciler/internal/list/domain"
	listrepo "github.com/ttkcys/milliyetciler/internal/list/repository"
	"github.com/ttkcys/milliyetciler/internal/middleware"
	sayiHTTP "github.com/ttkcys/milliyetciler/internal/sayi/delivery/http"
	sayirepo "github.com/ttkcys/milliyetciler/internal/sayi/repository"
	sayiquery "github.com/ttkcys/milliyetciler/internal/sayi/usecase/query"
	searchHTTP "github.com/ttkcys/milliyetciler/internal/search/delivery/http"
	searchquery "github.com/ttkcys/milliyetciler/internal/search/usecase/query"
	uploadHTTP "github.com/ttkcys/milliyetciler/internal/upload/delivery/http"
	userHTTP "github.com/ttkcys/milliyetciler/internal/user/delivery/http"
	userrepo "github.com/ttkcys/milliyetciler/internal/user/repository"
	yazarHTTP "github.com/ttkcys/milliyetciler/internal/yazar/delivery/http"
	yazarrepo "github.com/ttkcys/milliyetciler/internal/yazar/repository"
	yazarquery "github.com/ttkcys/milliyetciler/internal/yazar/usecase/query"
	yaziHTTP "github.com/ttkcys/milliyetciler/internal/yazi/delivery/http"
	yazirepo "github.com/ttkcys/milliyetciler/internal/yazi/repository"
	yaziquery "github.com/ttkcys/milliyetciler/internal/yazi/usecase/query"
	"github.com/ttkcys/milliyetciler/kafka"
	"github.com/ttkcys/milliyetciler/pkg/database"
	"github.com/ttkcys/milliyetciler/pkg/logger"
	"github.com/ttkcys/milliyetciler/pkg/tracing"
)

const serviceName = "milliyetciler-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(serviceName, "info", true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(serviceName, cfg.Logging.Level, cfg.Server.IsDevelopment())

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer tracing.Shutdown(context.Background(), tp)
	}

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	gormDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer gormDB.Close()

	// Separate plain connection for the list store's single-column
	// read/write cycle and for health checks.
	sqlDB, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer sqlDB.Close()

	// Repositories
	userRepo := userrepo.NewGormUserRepository(db)
	yazarRepo := yazarrepo.NewGormYazarRepository(db)
	dergiRepo := dergirepo.NewGormDergiRepository(db)
	sayiRepo := sayirepo.NewGormSayiRepository(db)
	yaziRepo := yazirepo.NewGormYaziRepository(db)

	for name, migrate := range map[string]func() error{
		"users":  userRepo.AutoMigrate,
		"yazars": yazarRepo.AutoMigrate,
		"dergis": dergiRepo.AutoMigrate,
		"sayis":  sayiRepo.AutoMigrate,
		"yazis":  yaziRepo.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Str("table", name).Msg("Failed to run migrations")
		}
	}

	// Optional list event publisher
	var publisher listdomain.EventPublisher
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := kafka.NewPublisher(cfg.Kafka.BrokerList())
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka disabled, list events will not be published")
		} else {
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
		}
	}

	listStore := listrepo.NewTracingListStore(listrepo.NewSQLListStore(sqlDB))

	// Handlers
	userHandler := userHTTP.NewUserHandler(userRepo, cfg.Session.TTL, cfg.Session.CookieSecure)
	listHandler := listHTTP.NewListHandler(listStore, publisher, cfg.List.OpTimeout)
	yazarHandler := yazarHTTP.NewYazarHandler(yazarRepo)
	dergiHandler := dergiHTTP.NewDergiHandler(dergiRepo)
	sayiHandler := sayiHTTP.NewSayiHandler(sayiRepo)
	yaziHandler := yaziHTTP.NewYaziHandler(yaziRepo)
	searchHandler := searchHTTP.NewSearchHandler(searchquery.NewSearchHandler(
		dergiquery.NewListDergisHandler(dergiRepo),
		sayiquery.NewListSayisHandler(sayiRepo),
		yazarquery.NewListYazarsHandler(yazarRepo),
		yaziquery.NewListYazisHandler(yaziRepo),
		cfg.Search.FacetTimeout,
		cfg.Search.FacetLimit,
	))
	uploadHandler := uploadHTTP.NewUploadHandler(cfg.Media.Dir)

	router := mux.NewRouter()
	router.Use(middleware.RequestLogging)
	router.Use(middleware.Session)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer redisClient.Close()
		router.Use(middleware.ResponseCache(redisClient, middleware.CacheConfig{TTL: cfg.Redis.TTL}))
	}

	userHandler.RegisterRoutes(router)
	listHandler.RegisterRoutes(router)
	yazarHandler.RegisterRoutes(router)
	dergiHandler.RegisterRoutes(router)
	sayiHandler.RegisterRoutes(router)
	yaziHandler.RegisterRoutes(router)
	searchHandler.RegisterRoutes(router)
	uploadHandler.RegisterRoutes(router)

	router.HandleFunc("/health", userHandler.HealthCheck(sqlDB)).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())
	listHTTP.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), serviceName)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("addr", addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}
