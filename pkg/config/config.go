package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Cookie CookieConfig
	CORS   CORSConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// MongoConfig configuración de MongoDB.
type MongoConfig struct {
	URI      string // DATABASE_URL, connection string completo
	Database string
}

// JWTConfig configuración de emisión de tokens.
type JWTConfig struct {
	Secret   string
	TTLHours int
}

// TTL devuelve la vigencia del token como duración.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// CookieConfig atributos de la cookie de sesión.
// SameSite pasa a "None" automáticamente cuando Secure está activo (login
// cross-origin desde el frontend servido por otro host).
type CookieConfig struct {
	Name     string
	Secure   bool
	SameSite string // Lax, Strict, None
	Path     string
}

// CORSConfig orígenes de navegador permitidos (con credenciales).
type CORSConfig struct {
	Origins string // lista separada por comas
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Los nombres (DATABASE_URL, JWT_SECRET, COOKIE_NAME,
// BACKEND_PORT, ...) se conservan del despliegue anterior.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "farmdesk-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "DATABASE_URL", "mongodb://localhost:27017"),
			Database: getString(v, "MONGO_DB", "FarmDesk"),
		},
		JWT: JWTConfig{
			Secret:   getString(v, "JWT_SECRET", "dev_secret_change_me"),
			TTLHours: getInt(v, "JWT_TTL_HOURS", 8),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "BACKEND_PORT", 5000),
		},
		Cookie: CookieConfig{
			Name:     getString(v, "COOKIE_NAME", "auth_token"),
			Secure:   getBool(v, "COOKIE_SECURE", false),
			SameSite: getString(v, "COOKIE_SAMESITE", "Lax"),
			Path:     "/",
		},
		CORS: CORSConfig{
			Origins: getString(v, "CORS_ORIGINS",
				"http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173,http://127.0.0.1:3000"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return strings.EqualFold(v.GetString(key), "true") || v.GetString(key) == "1"
	}
	return def
}
