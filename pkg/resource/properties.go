package resource

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads application properties from YAML
func init() {
	var value, ok = os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	if err := Init(value); err != nil {
		log.Printf("Properties not loaded from %s, using defaults: %v", value, err)
	}
}

// Init reads the YAML file at filepath and resolves ${ENV:default} placeholders.
// A missing file is reported but leaves previously registered defaults usable.
func Init(filepath string) error {
	mu.Lock()
	defer mu.Unlock()

	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return err
		}
		log.Fatalf("Fail to read properties: %v", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		properties.Set(key, value)
	}
	return nil
}

// SetDefault registers the value used when no property file provides the key.
func SetDefault(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	properties.SetDefault(key, value)
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolved, ok := resolveEnvVariable(v); ok {
				result[fullKey] = resolved
			}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment value or the default.
// Plain strings are returned as they are. ok is false when neither the variable nor a default exists.
func resolveEnvVariable(value string) (string, bool) {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value, true
	}

	envName := strings.TrimSpace(matches[1])
	if envValue, exists := os.LookupEnv(envName); exists {
		return envPattern.ReplaceAllLiteralString(value, envValue), true
	}
	if len(matches) > 2 && matches[2] != "" {
		return envPattern.ReplaceAllLiteralString(value, matches[2]), true
	}
	return "", false
}

func Get(key string) any {
	mu.RLock()
	defer mu.RUnlock()
	return properties.Get(key)
}

func GetString(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetString(key)
}

func GetBool(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetStringSlice(key)
}
