package http

import (
	"time"

	"github.com/farmdesk/farmdesk-api/internal/application/auth"
	"github.com/farmdesk/farmdesk-api/internal/application/usecase"
	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
	"github.com/farmdesk/farmdesk-api/pkg/config"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	EmployeeUC *usecase.EmployeeUseCase
	CropUC     *usecase.CropUseCase
	Cookie     config.CookieConfig
	TokenTTL   time.Duration
}

// Router registra las rutas de la API.
//
// Las rutas de admin llevan el middleware por ruta y no como Use sobre el
// grupo /admin: un Use sobre el prefijo capturaría también /admin/login, que
// debe seguir siendo público.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, deps.TokenTTL)
	superadminHandler := NewSuperadminHandler(deps.EmployeeUC)
	officerHandler := NewOfficerHandler(deps.EmployeeUC)
	cropHandler := NewCropHandler(deps.CropUC)

	// Bootstrap (público)
	app.Post("/superadmin/create_admin", superadminHandler.CreateAdmin)

	// Logins (público)
	app.Post("/admin/login", authHandler.AdminLogin)
	app.Post("/officer/login", authHandler.OfficerLogin)

	// Sesión
	api := app.Group("/api/auth")
	api.Get("/me", authHandler.Me)
	api.Post("/logout", authHandler.Logout)

	// Rutas protegidas de admin
	authMW := AuthMiddleware(deps.AuthUC, deps.Cookie.Name)
	adminOnly := RequireRole(entity.RoleAdmin)

	app.Get("/admin/officers", authMW, adminOnly, officerHandler.List)
	app.Post("/admin/officers", authMW, adminOnly, officerHandler.Create)
	app.Delete("/admin/officers/:id", authMW, adminOnly, officerHandler.Delete)

	app.Get("/admin/crops", authMW, adminOnly, cropHandler.List)
	app.Post("/admin/crops", authMW, adminOnly, cropHandler.Add)
	app.Put("/admin/crops/:crop_name", authMW, adminOnly, cropHandler.Update)
	app.Delete("/admin/crops/:crop_name", authMW, adminOnly, cropHandler.Delete)
}
