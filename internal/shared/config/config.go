package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config — полная конфигурация сервиса
type Config struct {
	Server    ServerConfig
	JWT       JWTConfig
	Campus    CampusConfig
	Geocoding GeocodingConfig
	Describer DescriberConfig
	Chat      ChatConfig
}

type ServerConfig struct {
	Port int
}

type JWTConfig struct {
	Secret        string
	ExpiryMinutes int
}

// CampusConfig — параметры институтского домена.
// Регистрация принимает только адреса вида <PRN>@<EmailDomain>,
// где PRN — ровно десять цифр.
type CampusConfig struct {
	EmailDomain string
}

type GeocodingConfig struct {
	BaseURL   string
	UserAgent string
	TimeoutMS int
}

type DescriberConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// ChatConfig — границы случайной задержки автоответа (мс)
type ChatConfig struct {
	ReplyMinDelayMS int
	ReplyMaxDelayMS int
}

// Load — загрузка из CONFIG_DIR (по умолчанию ./config) + ENV перекрывает
func Load() Config {
	configDir := getEnv("CONFIG_DIR", "./config")
	cfg := Config{}

	// server.yaml
	serverPath := filepath.Join(configDir, "server.yaml")
	if kv, err := parseYAML(serverPath); err == nil {
		cfg.Server.Port = getIntWithEnv("SERVER_PORT", kv, "port", 3000)
	} else {
		cfg.Server.Port = getEnvInt("SERVER_PORT", 3000)
	}

	// jwt.yaml
	jwtPath := filepath.Join(configDir, "jwt.yaml")
	if kv, err := parseYAML(jwtPath); err == nil {
		if sec, ok := kv["jwt"]; ok {
			cfg.JWT.Secret = getStrWithEnvNested("JWT_SECRET", sec, "secret", "dev_secret")
			cfg.JWT.ExpiryMinutes = getIntWithEnvNested("JWT_EXPIRY_MINUTES", sec, "expiry_minutes", 60)
		} else {
			cfg.JWT.Secret = getStrWithEnv("JWT_SECRET", kv, "secret", "dev_secret")
			cfg.JWT.ExpiryMinutes = getIntWithEnv("JWT_EXPIRY_MINUTES", kv, "expiry_minutes", 60)
		}
	} else {
		cfg.JWT.Secret = getEnv("JWT_SECRET", "dev_secret")
		cfg.JWT.ExpiryMinutes = getEnvInt("JWT_EXPIRY_MINUTES", 60)
	}

	// campus.yaml
	campusPath := filepath.Join(configDir, "campus.yaml")
	if kv, err := parseYAML(campusPath); err == nil {
		cfg.Campus.EmailDomain = getStrWithEnv("CAMPUS_EMAIL_DOMAIN", kv, "email_domain", "mitwpu.edu.in")
	} else {
		cfg.Campus.EmailDomain = getEnv("CAMPUS_EMAIL_DOMAIN", "mitwpu.edu.in")
	}

	// geocoding.yaml
	geoPath := filepath.Join(configDir, "geocoding.yaml")
	if kv, err := parseYAML(geoPath); err == nil {
		cfg.Geocoding.BaseURL = getStrWithEnv("GEOCODING_BASE_URL", kv, "base_url", "https://nominatim.openstreetmap.org")
		cfg.Geocoding.UserAgent = getStrWithEnv("GEOCODING_USER_AGENT", kv, "user_agent", "ridemate/1.0")
		cfg.Geocoding.TimeoutMS = getIntWithEnv("GEOCODING_TIMEOUT_MS", kv, "timeout_ms", 5000)
	} else {
		cfg.Geocoding.BaseURL = getEnv("GEOCODING_BASE_URL", "https://nominatim.openstreetmap.org")
		cfg.Geocoding.UserAgent = getEnv("GEOCODING_USER_AGENT", "ridemate/1.0")
		cfg.Geocoding.TimeoutMS = getEnvInt("GEOCODING_TIMEOUT_MS", 5000)
	}

	// describer.yaml
	descPath := filepath.Join(configDir, "describer.yaml")
	if kv, err := parseYAML(descPath); err == nil {
		cfg.Describer.BaseURL = getStrWithEnv("DESCRIBER_BASE_URL", kv, "base_url", "https://generativelanguage.googleapis.com")
		cfg.Describer.APIKey = getStrWithEnv("DESCRIBER_API_KEY", kv, "api_key", "")
		cfg.Describer.Model = getStrWithEnv("DESCRIBER_MODEL", kv, "model", "gemini-2.5-flash")
	} else {
		cfg.Describer.BaseURL = getEnv("DESCRIBER_BASE_URL", "https://generativelanguage.googleapis.com")
		cfg.Describer.APIKey = getEnv("DESCRIBER_API_KEY", "")
		cfg.Describer.Model = getEnv("DESCRIBER_MODEL", "gemini-2.5-flash")
	}

	// chat.yaml
	chatPath := filepath.Join(configDir, "chat.yaml")
	if kv, err := parseYAML(chatPath); err == nil {
		cfg.Chat.ReplyMinDelayMS = getIntWithEnv("CHAT_REPLY_MIN_DELAY_MS", kv, "reply_min_delay_ms", 800)
		cfg.Chat.ReplyMaxDelayMS = getIntWithEnv("CHAT_REPLY_MAX_DELAY_MS", kv, "reply_max_delay_ms", 1500)
	} else {
		cfg.Chat.ReplyMinDelayMS = getEnvInt("CHAT_REPLY_MIN_DELAY_MS", 800)
		cfg.Chat.ReplyMaxDelayMS = getEnvInt("CHAT_REPLY_MAX_DELAY_MS", 1500)
	}

	return cfg
}

// parseYAML — парсит простые YAML файлы без глубокой вложенности.
// Формат: key: value (плоский) либо section: \n  key: value
func parseYAML(path string) (map[string]map[string]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result := map[string]map[string]string{}
	section := ""

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// строка-секция: заканчивается на ':' и не содержит пробелов
		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			section = strings.TrimSuffix(line, ":")
			if result[section] == nil {
				result[section] = map[string]string{}
			}
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		val = strings.Trim(val, `"'`)

		if section != "" {
			if result[section] == nil {
				result[section] = map[string]string{}
			}
			result[section][key] = val
		} else {
			if result[""] == nil {
				result[""] = map[string]string{}
			}
			result[""][key] = val
		}
	}

	return result, sc.Err()
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getStrWithEnv(envKey string, yaml map[string]map[string]string, key, def string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if val, ok := yaml[""][key]; ok && val != "" {
		return val
	}
	return def
}

func getIntWithEnv(envKey string, yaml map[string]map[string]string, key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	if val, ok := yaml[""][key]; ok && val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}

func getStrWithEnvNested(envKey string, section map[string]string, key, def string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if val, ok := section[key]; ok && val != "" {
		return val
	}
	return def
}

func getIntWithEnvNested(envKey string, section map[string]string, key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	if val, ok := section[key]; ok && val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}
