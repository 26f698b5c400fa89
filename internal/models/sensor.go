package models

import "time"

// SensorSnapshot - разовый снимок показаний устройства туриста.
// Любое из показаний может отсутствовать: отсутствие означает
// "не оценивалось", а не "безопасно". Снимок не персистится.
type SensorSnapshot struct {
	Accelerometer *AccelerometerReading `json:"accelerometer,omitempty"`
	HeartRate     *HeartRateReading     `json:"heart_rate,omitempty"`
	Movement      *MovementReading      `json:"movement,omitempty"`
	Device        *DeviceReading        `json:"device,omitempty"`
	Audio         *AudioReading         `json:"audio,omitempty"`
}

// AccelerometerReading - вектор ускорения
type AccelerometerReading struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HeartRateReading - показания пульсометра
type HeartRateReading struct {
	Current     float64 `json:"current"`
	Average     float64 `json:"average"`
	Variability float64 `json:"variability"`
}

// MovementReading - характер перемещения
type MovementReading struct {
	Speed             float64 `json:"speed"`
	Direction         float64 `json:"direction"`
	Consistency       float64 `json:"consistency"`
	PreviousSpeed     float64 `json:"previous_speed"`
	PreviousDirection float64 `json:"previous_direction"`
}

// DeviceReading - взаимодействие с устройством
type DeviceReading struct {
	LastInteraction time.Time `json:"last_interaction"`
	BatteryPercent  float64   `json:"battery_percent"`
	ScreenTimeSec   float64   `json:"screen_time_sec"`
}

// AudioReading - акустическая обстановка
type AudioReading struct {
	Volume    float64 `json:"volume"`
	Frequency float64 `json:"frequency"`
	Pattern   string  `json:"pattern"`
}

// RiskAssessment - результат анализа сенсорных паттернов.
// Живет в рамках одного запроса.
type RiskAssessment struct {
	Patterns             []string `json:"patterns"`
	RiskFactors          []string `json:"risk_factors"`
	Confidence           float64  `json:"confidence"`
	EmergencyProbability float64  `json:"emergency_probability"`
}
