package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo). La misma configuración sirve a la CLI y al
// servidor de desarrollo.
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del backend REST consumido por la CLI.
// Locale fija el vocabulario del contrato: rutas y nombres de campo
// (en -> /products, /suppliers; es -> /productos, /suplidores).
type APIConfig struct {
	BaseURL string
	Locale  string // "en" | "es"
}

// SessionConfig configuración de la sesión persistida.
// Dir vacío -> directorio de configuración del usuario.
// VerifyRemote decide si el guard valida el token contra /auth/profile
// en cada arranque o confía solo en la presencia local.
type SessionConfig struct {
	Dir          string
	Prefix       string // claves <prefix>_user y <prefix>_token
	VerifyRemote bool
}

// JWTConfig configuración de JWT (solo la usa el servidor de desarrollo).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor de desarrollo.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, API_BASE_URL, API_LOCALE, SESSION_PREFIX, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", "http://localhost:4000"),
			Locale:  getString(v, "API_LOCALE", "en"),
		},
		Session: SessionConfig{
			Dir:          getString(v, "SESSION_DIR", ""),
			Prefix:       getString(v, "SESSION_PREFIX", "inventory"),
			VerifyRemote: getBool(v, "SESSION_VERIFY_REMOTE", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "inventario"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 4000),
		},
	}

	if cfg.API.Locale != "en" && cfg.API.Locale != "es" {
		return nil, fmt.Errorf("config: API_LOCALE inválido %q (esperado en|es)", cfg.API.Locale)
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
		case int:
			return v.GetInt(key)
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
		return v.GetBool(key)
	}
	return def
}
