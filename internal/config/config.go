package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения.
// Весовые коэффициенты и пороги срабатывания - операционная политика,
// а не выведенные величины, поэтому все они вынесены в именованные
// настройки с значениями по умолчанию.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Пороги срабатывания анализатора сенсоров и приращения уверенности
	AccelMagnitudeThreshold float64       `env:"ACCEL_MAGNITUDE_THRESHOLD" envDefault:"15"`
	AccelIncrement          float64       `env:"ACCEL_INCREMENT" envDefault:"0.30"`
	HeartRateHigh           float64       `env:"HEART_RATE_HIGH" envDefault:"120"`
	HeartRateLow            float64       `env:"HEART_RATE_LOW" envDefault:"50"`
	HeartRateVariabilityMax float64       `env:"HEART_RATE_VARIABILITY_MAX" envDefault:"50"`
	HeartRateIncrement      float64       `env:"HEART_RATE_INCREMENT" envDefault:"0.20"`
	MovementConsistencyMin  float64       `env:"MOVEMENT_CONSISTENCY_MIN" envDefault:"0.3"`
	MovementStopSpeedMin    float64       `env:"MOVEMENT_STOP_SPEED_MIN" envDefault:"5"`
	MovementTurnDegrees     float64       `env:"MOVEMENT_TURN_DEGREES" envDefault:"90"`
	MovementIncrement       float64       `env:"MOVEMENT_INCREMENT" envDefault:"0.15"`
	InactivityThreshold     time.Duration `env:"INACTIVITY_THRESHOLD" envDefault:"1h"`
	LowBatteryPercent       float64       `env:"LOW_BATTERY_PERCENT" envDefault:"10"`
	DeviceIncrement         float64       `env:"DEVICE_INCREMENT" envDefault:"0.25"`
	AudioVolumeThreshold    float64       `env:"AUDIO_VOLUME_THRESHOLD" envDefault:"80"`
	AudioFrequencyMin       float64       `env:"AUDIO_FREQUENCY_MIN" envDefault:"500"`
	AudioFrequencyMax       float64       `env:"AUDIO_FREQUENCY_MAX" envDefault:"2000"`
	AudioIncrement          float64       `env:"AUDIO_INCREMENT" envDefault:"0.20"`

	// Веса классификатора (сенсоры/местоположение) и пороги уровней.
	// Пороги уровней откалиброваны под эти веса, произвольная перестройка
	// одного без другого ломает калибровку.
	SensorWeight      float64 `env:"SENSOR_WEIGHT" envDefault:"0.6"`
	LocationWeight    float64 `env:"LOCATION_WEIGHT" envDefault:"0.4"`
	TierCriticalScore float64 `env:"TIER_CRITICAL_SCORE" envDefault:"0.8"`
	TierHighScore     float64 `env:"TIER_HIGH_SCORE" envDefault:"0.6"`
	TierModerateScore float64 `env:"TIER_MODERATE_SCORE" envDefault:"0.4"`
	TierLowScore      float64 `env:"TIER_LOW_SCORE" envDefault:"0.2"`

	// Веса агрегата риска местоположения, в сумме 1.0
	CrimeWeight             float64 `env:"CRIME_WEIGHT" envDefault:"0.35"`
	WeatherWeight           float64 `env:"WEATHER_WEIGHT" envDefault:"0.25"`
	IsolationWeight         float64 `env:"ISOLATION_WEIGHT" envDefault:"0.20"`
	EmergencyServicesWeight float64 `env:"EMERGENCY_SERVICES_WEIGHT" envDefault:"0.20"`

	// Внешние источники данных о рисках
	CrimeFeedURL     string        `env:"CRIME_FEED_URL"`
	WeatherFeedURL   string        `env:"WEATHER_FEED_URL"`
	IsolationFeedURL string        `env:"ISOLATION_FEED_URL"`
	EmergencyFeedURL string        `env:"EMERGENCY_FEED_URL"`
	RiskFeedAPIKey   string        `env:"RISK_FEED_API_KEY"`
	RiskFeedTimeout  time.Duration `env:"RISK_FEED_TIMEOUT" envDefault:"3s"`

	// Каналы уведомлений
	SMSGatewayURL       string        `env:"SMS_GATEWAY_URL"`
	SMSGatewayAPIKey    string        `env:"SMS_GATEWAY_API_KEY"`
	EmailGatewayURL     string        `env:"EMAIL_GATEWAY_URL"`
	EmailGatewayAPIKey  string        `env:"EMAIL_GATEWAY_API_KEY"`
	ChannelTimeout      time.Duration `env:"CHANNEL_TIMEOUT" envDefault:"5s"`
	DispatchParallelism int           `env:"DISPATCH_PARALLELISM" envDefault:"8"`

	// Внешняя экстренная служба (доставка через очередь + воркер)
	ExternalAlertURL        string        `env:"EXTERNAL_ALERT_URL"`
	ExternalAlertSecret     string        `env:"EXTERNAL_ALERT_SECRET"`
	ExternalAlertTimeout    time.Duration `env:"EXTERNAL_ALERT_TIMEOUT" envDefault:"5s"`
	ExternalAlertMaxRetries int           `env:"EXTERNAL_ALERT_MAX_RETRIES" envDefault:"3"`
	ExternalAlertBaseDelay  time.Duration `env:"EXTERNAL_ALERT_BASE_DELAY" envDefault:"1s"`

	// Кулдаун повторных срабатываний геозоны для пары (турист, зона).
	// Нулевое значение отключает подавление: тревога на каждое обновление
	// местоположения внутри зоны.
	GeofenceCooldown time.Duration `env:"GEOFENCE_COOLDOWN" envDefault:"10m"`

	// Кеширование
	AlertCacheTTL time.Duration `env:"ALERT_CACHE_TTL" envDefault:"5m"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		AccelMagnitudeThreshold: getEnvAsFloat("ACCEL_MAGNITUDE_THRESHOLD", 15),
		AccelIncrement:          getEnvAsFloat("ACCEL_INCREMENT", 0.30),
		HeartRateHigh:           getEnvAsFloat("HEART_RATE_HIGH", 120),
		HeartRateLow:            getEnvAsFloat("HEART_RATE_LOW", 50),
		HeartRateVariabilityMax: getEnvAsFloat("HEART_RATE_VARIABILITY_MAX", 50),
		HeartRateIncrement:      getEnvAsFloat("HEART_RATE_INCREMENT", 0.20),
		MovementConsistencyMin:  getEnvAsFloat("MOVEMENT_CONSISTENCY_MIN", 0.3),
		MovementStopSpeedMin:    getEnvAsFloat("MOVEMENT_STOP_SPEED_MIN", 5),
		MovementTurnDegrees:     getEnvAsFloat("MOVEMENT_TURN_DEGREES", 90),
		MovementIncrement:       getEnvAsFloat("MOVEMENT_INCREMENT", 0.15),
		InactivityThreshold:     getEnvAsDuration("INACTIVITY_THRESHOLD", time.Hour),
		LowBatteryPercent:       getEnvAsFloat("LOW_BATTERY_PERCENT", 10),
		DeviceIncrement:         getEnvAsFloat("DEVICE_INCREMENT", 0.25),
		AudioVolumeThreshold:    getEnvAsFloat("AUDIO_VOLUME_THRESHOLD", 80),
		AudioFrequencyMin:       getEnvAsFloat("AUDIO_FREQUENCY_MIN", 500),
		AudioFrequencyMax:       getEnvAsFloat("AUDIO_FREQUENCY_MAX", 2000),
		AudioIncrement:          getEnvAsFloat("AUDIO_INCREMENT", 0.20),

		SensorWeight:      getEnvAsFloat("SENSOR_WEIGHT", 0.6),
		LocationWeight:    getEnvAsFloat("LOCATION_WEIGHT", 0.4),
		TierCriticalScore: getEnvAsFloat("TIER_CRITICAL_SCORE", 0.8),
		TierHighScore:     getEnvAsFloat("TIER_HIGH_SCORE", 0.6),
		TierModerateScore: getEnvAsFloat("TIER_MODERATE_SCORE", 0.4),
		TierLowScore:      getEnvAsFloat("TIER_LOW_SCORE", 0.2),

		CrimeWeight:             getEnvAsFloat("CRIME_WEIGHT", 0.35),
		WeatherWeight:           getEnvAsFloat("WEATHER_WEIGHT", 0.25),
		IsolationWeight:         getEnvAsFloat("ISOLATION_WEIGHT", 0.20),
		EmergencyServicesWeight: getEnvAsFloat("EMERGENCY_SERVICES_WEIGHT", 0.20),

		CrimeFeedURL:     os.Getenv("CRIME_FEED_URL"),
		WeatherFeedURL:   os.Getenv("WEATHER_FEED_URL"),
		IsolationFeedURL: os.Getenv("ISOLATION_FEED_URL"),
		EmergencyFeedURL: os.Getenv("EMERGENCY_FEED_URL"),
		RiskFeedAPIKey:   os.Getenv("RISK_FEED_API_KEY"),
		RiskFeedTimeout:  getEnvAsDuration("RISK_FEED_TIMEOUT", 3*time.Second),

		SMSGatewayURL:       os.Getenv("SMS_GATEWAY_URL"),
		SMSGatewayAPIKey:    os.Getenv("SMS_GATEWAY_API_KEY"),
		EmailGatewayURL:     os.Getenv("EMAIL_GATEWAY_URL"),
		EmailGatewayAPIKey:  os.Getenv("EMAIL_GATEWAY_API_KEY"),
		ChannelTimeout:      getEnvAsDuration("CHANNEL_TIMEOUT", 5*time.Second),
		DispatchParallelism: getEnvAsInt("DISPATCH_PARALLELISM", 8),

		ExternalAlertURL:        os.Getenv("EXTERNAL_ALERT_URL"),
		ExternalAlertSecret:     os.Getenv("EXTERNAL_ALERT_SECRET"),
		ExternalAlertTimeout:    getEnvAsDuration("EXTERNAL_ALERT_TIMEOUT", 5*time.Second),
		ExternalAlertMaxRetries: getEnvAsInt("EXTERNAL_ALERT_MAX_RETRIES", 3),
		ExternalAlertBaseDelay:  getEnvAsDuration("EXTERNAL_ALERT_BASE_DELAY", time.Second),

		GeofenceCooldown: getEnvAsDuration("GEOFENCE_COOLDOWN", 10*time.Minute),

		AlertCacheTTL: getEnvAsDuration("ALERT_CACHE_TTL", 5*time.Minute),

		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
