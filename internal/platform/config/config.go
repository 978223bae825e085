// Package config carga la configuración del proceso desde variables de entorno.
// Si existe un archivo .env en el directorio de trabajo se carga primero;
// las variables ya definidas en el entorno tienen prioridad.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/platform/logger"

	"github.com/joho/godotenv"
)

type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverPostgres Driver = "postgres"
	DriverMongo    Driver = "mongo"
	DriverRedis    Driver = "redis"
)

type Config struct {
	Port  string
	Store StoreConfig

	UploadRoot       string
	InitialPetStatus pets.Status
	RequestTimeout   time.Duration
	CORSOrigins      []string
	EnableTracing    bool

	Log LogConfig
}

type StoreConfig struct {
	Driver Driver

	// Mongo: credenciales + cluster, o URI completa.
	User     string
	Password string
	Cluster  string
	Name     string
	MongoURI string

	PostgresDSN string
	RedisAddr   string
}

type LogConfig struct {
	Level  logger.Level
	Format logger.Format
	App    string
}

// Load lee .env (si existe) y el entorno. No valida; ver Validate.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return FromEnv(os.Getenv), nil
}

// FromEnv arma la configuración a partir de un lookup de variables.
func FromEnv(getenv func(string) string) *Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	return &Config{
		Port: get("PORT", "5000"),
		Store: StoreConfig{
			Driver:      Driver(strings.ToLower(get("STORE_DRIVER", string(DriverMemory)))),
			User:        get("DB_USER", ""),
			Password:    get("DB_PASS", ""),
			Cluster:     get("DB_CLUSTER", ""),
			Name:        get("DB_NAME", "petAdoptionCareDB"),
			MongoURI:    get("MONGO_URI", ""),
			PostgresDSN: get("DB_DSN", ""),
			RedisAddr:   get("REDIS_ADDR", "localhost:6379"),
		},
		UploadRoot:       get("UPLOAD_ROOT", "uploads"),
		InitialPetStatus: pets.Status(strings.ToLower(get("PET_INITIAL_STATUS", string(pets.StatusPending)))),
		RequestTimeout:   getDuration(get("REQUEST_TIMEOUT", ""), 30*time.Second),
		CORSOrigins:      splitList(get("CORS_ALLOWED_ORIGINS", "*")),
		EnableTracing:    getBool(get("ENABLE_TRACING", "")),
		Log: LogConfig{
			Level:  logger.ParseLevel(get("LOG_LEVEL", "info")),
			Format: logger.ParseFormat(get("LOG_FORMAT", "text")),
			App:    get("APP_NAME", "pet-adoption-api"),
		},
	}
}

func (c *Config) Validate() error {
	var errs []error

	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT must be numeric, got %q", c.Port))
	}
	if !c.InitialPetStatus.Valid() {
		errs = append(errs, fmt.Errorf("PET_INITIAL_STATUS %q is not a pet status", c.InitialPetStatus))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT must be positive"))
	}

	switch c.Store.Driver {
	case DriverMemory:
	case DriverMongo:
		if c.Store.MongoURI == "" && (c.Store.User == "" || c.Store.Password == "" || c.Store.Cluster == "") {
			errs = append(errs, errors.New("mongo store requires MONGO_URI or DB_USER, DB_PASS and DB_CLUSTER"))
		}
	case DriverPostgres:
		if c.Store.PostgresDSN == "" {
			errs = append(errs, errors.New("postgres store requires DB_DSN"))
		}
	case DriverRedis:
		if c.Store.RedisAddr == "" {
			errs = append(errs, errors.New("redis store requires REDIS_ADDR"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Addr es la dirección de escucha del servidor HTTP.
func (c *Config) Addr() string { return ":" + c.Port }

// MongoConnectionURI devuelve la URI explícita o la arma con credenciales + cluster (SRV).
func (s StoreConfig) MongoConnectionURI() string {
	if s.MongoURI != "" {
		return s.MongoURI
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(s.User, s.Password),
		Host:     s.Cluster,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func getDuration(v string, def time.Duration) time.Duration {
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
