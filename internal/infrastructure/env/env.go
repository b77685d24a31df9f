package env

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"ui-verifier/internal/application/port/output"

	"github.com/joho/godotenv"
)

var _ output.ConfigPort = (*EnvService)(nil)

// EnvService читает переменные окружения поверх .env и .env.<APP_ENV>.
type EnvService struct {
	files []string
}

func NewEnvService() *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	e := &EnvService{}

	// .env не перетирает уже заданные переменные, .env.<APP_ENV> перетирает
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Info: no .env file found, using process environment")
	} else {
		e.files = append(e.files, ".env")
	}

	envFile := fmt.Sprintf(".env.%s", appEnv)
	if err := godotenv.Overload(envFile); err == nil {
		e.files = append(e.files, envFile)
	}

	return e
}

// Files lists the dotenv files that were loaded, in load order.
func (e *EnvService) Files() []string {
	return e.files
}

func (e *EnvService) Get(key string) string {
	return os.Getenv(key)
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	return lookup(key, defaultValue, func(s string) (string, error) { return s, nil })
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	return lookup(key, defaultValue, strconv.ParseBool)
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	return lookup(key, defaultValue, strconv.Atoi)
}

func (e *EnvService) GetDuration(key string, defaultValue time.Duration) time.Duration {
	return lookup(key, defaultValue, time.ParseDuration)
}

// lookup returns defaultValue when key is unset, empty or unparsable.
func lookup[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return defaultValue
	}
	parsed, err := parse(val)
	if err != nil {
		log.Printf("Warning: ignoring %s=%q: %v", key, val, err)
		return defaultValue
	}
	return parsed
}
