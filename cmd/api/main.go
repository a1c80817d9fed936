package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/farmdesk/farmdesk-api/internal/application/auth"
	"github.com/farmdesk/farmdesk-api/internal/application/usecase"
	"github.com/farmdesk/farmdesk-api/internal/infrastructure/mongodb"
	httpRouter "github.com/farmdesk/farmdesk-api/internal/interfaces/http"
	"github.com/farmdesk/farmdesk-api/pkg/config"
	"github.com/farmdesk/farmdesk-api/pkg/logger"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := mongodb.Disconnect(client); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("creación de índices")
	}

	companyRepo := mongodb.NewCompanyRepository(db)
	cropRepo := mongodb.NewCropRepository(db)

	authUC := auth.NewAuthUseCase(companyRepo, auth.Config{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
	})
	employeeUC := usecase.NewEmployeeUseCase(companyRepo)
	cropUC := usecase.NewCropUseCase(cropRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// CORS con credenciales: el frontend manda la cookie de sesión.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FarmDesk API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		EmployeeUC: employeeUC,
		CropUC:     cropUC,
		Cookie:     cfg.Cookie,
		TokenTTL:   cfg.JWT.TTL(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
