package service

import (
	"testing"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig возвращает конфигурацию с дефолтной операционной политикой
func testConfig() *config.Config {
	return &config.Config{
		AccelMagnitudeThreshold: 15,
		AccelIncrement:          0.30,
		HeartRateHigh:           120,
		HeartRateLow:            50,
		HeartRateVariabilityMax: 50,
		HeartRateIncrement:      0.20,
		MovementConsistencyMin:  0.3,
		MovementStopSpeedMin:    5,
		MovementTurnDegrees:     90,
		MovementIncrement:       0.15,
		InactivityThreshold:     time.Hour,
		LowBatteryPercent:       10,
		DeviceIncrement:         0.25,
		AudioVolumeThreshold:    80,
		AudioFrequencyMin:       500,
		AudioFrequencyMax:       2000,
		AudioIncrement:          0.20,

		SensorWeight:      0.6,
		LocationWeight:    0.4,
		TierCriticalScore: 0.8,
		TierHighScore:     0.6,
		TierModerateScore: 0.4,
		TierLowScore:      0.2,

		CrimeWeight:             0.35,
		WeatherWeight:           0.25,
		IsolationWeight:         0.20,
		EmergencyServicesWeight: 0.20,

		RiskFeedTimeout:        3 * time.Second,
		GeofenceCooldown:       10 * time.Minute,
		StatsTimeWindowMinutes: 60,
	}
}

func TestAnalyze_NilSnapshot(t *testing.T) {
	analyzer := NewSensorAnalyzer(testConfig())

	assessment, err := analyzer.Analyze(nil, time.Now())

	require.ErrorIs(t, err, models.ErrValidation)
	assert.Nil(t, assessment)
}

func TestAnalyze_EmptySnapshot_ZeroConfidence(t *testing.T) {
	// Подготовка: снимок без единого показания
	analyzer := NewSensorAnalyzer(testConfig())

	// Действие
	assessment, err := analyzer.Analyze(&models.SensorSnapshot{}, time.Now())

	// Проверки: отсутствие показаний не означает риск
	require.NoError(t, err)
	assert.Empty(t, assessment.Patterns)
	assert.Zero(t, assessment.Confidence)
	assert.Zero(t, assessment.EmergencyProbability)
}

func TestAnalyze_AccelSpike(t *testing.T) {
	// Подготовка: магнитуда sqrt(12^2+12^2+12^2) ~ 20.8 > 15
	analyzer := NewSensorAnalyzer(testConfig())
	snapshot := &models.SensorSnapshot{
		Accelerometer: &models.AccelerometerReading{X: 12, Y: 12, Z: 12},
	}

	// Действие
	assessment, err := analyzer.Analyze(snapshot, time.Now())

	// Проверки
	require.NoError(t, err)
	assert.Contains(t, assessment.Patterns, "fall_impact")
	assert.InDelta(t, 0.30, assessment.Confidence, 1e-9)
}

func TestAnalyze_AccelBelowThreshold(t *testing.T) {
	// Подготовка: магнитуда ~9.8 (покой)
	analyzer := NewSensorAnalyzer(testConfig())
	snapshot := &models.SensorSnapshot{
		Accelerometer: &models.AccelerometerReading{X: 0, Y: 0, Z: 9.8},
	}

	assessment, err := analyzer.Analyze(snapshot, time.Now())

	require.NoError(t, err)
	assert.Empty(t, assessment.Patterns)
	assert.Zero(t, assessment.Confidence)
}

func TestAnalyze_HeartRate(t *testing.T) {
	tests := []struct {
		name    string
		reading models.HeartRateReading
		fires   bool
	}{
		{"tachycardia", models.HeartRateReading{Current: 130, Average: 75, Variability: 10}, true},
		{"bradycardia", models.HeartRateReading{Current: 45, Average: 70, Variability: 10}, true},
		{"high variability", models.HeartRateReading{Current: 80, Average: 75, Variability: 60}, true},
		{"normal", models.HeartRateReading{Current: 80, Average: 75, Variability: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewSensorAnalyzer(testConfig())
			snapshot := &models.SensorSnapshot{HeartRate: &tt.reading}

			assessment, err := analyzer.Analyze(snapshot, time.Now())

			require.NoError(t, err)
			if tt.fires {
				assert.Contains(t, assessment.Patterns, "abnormal_heart_rate")
				assert.InDelta(t, 0.20, assessment.Confidence, 1e-9)
			} else {
				assert.Empty(t, assessment.Patterns)
			}
		})
	}
}

func TestAnalyze_ErraticMovement_SuddenStop(t *testing.T) {
	// Подготовка: резкая остановка с 20 км/ч
	analyzer := NewSensorAnalyzer(testConfig())
	snapshot := &models.SensorSnapshot{
		Movement: &models.MovementReading{
			Speed:         0,
			PreviousSpeed: 20,
			Consistency:   0.9,
		},
	}

	assessment, err := analyzer.Analyze(snapshot, time.Now())

	require.NoError(t, err)
	assert.Contains(t, assessment.Patterns, "erratic_movement")
	assert.InDelta(t, 0.15, assessment.Confidence, 1e-9)
}

func TestAnalyze_DeviceInactivity(t *testing.T) {
	// Подготовка: последнее взаимодействие 2 часа назад
	analyzer := NewSensorAnalyzer(testConfig())
	now := time.Now()
	snapshot := &models.SensorSnapshot{
		Device: &models.DeviceReading{
			LastInteraction: now.Add(-2 * time.Hour),
			BatteryPercent:  80,
			ScreenTimeSec:   0,
		},
	}

	assessment, err := analyzer.Analyze(snapshot, now)

	require.NoError(t, err)
	assert.Contains(t, assessment.Patterns, "prolonged_inactivity")
	assert.InDelta(t, 0.25, assessment.Confidence, 1e-9)
}

func TestAnalyze_DistressAudio(t *testing.T) {
	// Подготовка: громкий повторяющийся звук в тревожной полосе частот
	analyzer := NewSensorAnalyzer(testConfig())
	snapshot := &models.SensorSnapshot{
		Audio: &models.AudioReading{Volume: 95, Frequency: 1200, Pattern: "repetitive_high"},
	}

	assessment, err := analyzer.Analyze(snapshot, time.Now())

	require.NoError(t, err)
	assert.Contains(t, assessment.Patterns, "distress_audio")
	assert.InDelta(t, 0.20, assessment.Confidence, 1e-9)
}

func TestAnalyze_AllPatterns_ConfidenceClamped(t *testing.T) {
	// Подготовка: срабатывают все пять правил, сумма приращений 1.10
	analyzer := NewSensorAnalyzer(testConfig())
	now := time.Now()
	snapshot := &models.SensorSnapshot{
		Accelerometer: &models.AccelerometerReading{X: 12, Y: 12, Z: 12},
		HeartRate:     &models.HeartRateReading{Current: 150, Average: 80, Variability: 20},
		Movement:      &models.MovementReading{Speed: 0, PreviousSpeed: 30, Consistency: 0.1},
		Device:        &models.DeviceReading{LastInteraction: now.Add(-3 * time.Hour), BatteryPercent: 5},
		Audio:         &models.AudioReading{Volume: 95, Frequency: 1000, Pattern: "repetitive_high"},
	}

	// Действие
	assessment, err := analyzer.Analyze(snapshot, now)

	// Проверки: уверенность зажата в 1.0, все паттерны зафиксированы
	require.NoError(t, err)
	assert.Len(t, assessment.Patterns, 5)
	assert.Equal(t, 1.0, assessment.Confidence)
	assert.Equal(t, 1.0, assessment.EmergencyProbability)
}

func TestAnalyze_AbsentReading_DoesNotChangeOthers(t *testing.T) {
	// Подготовка: одинаковый пульс, один снимок с акселерометром в покое,
	// второй вовсе без акселерометра
	analyzer := NewSensorAnalyzer(testConfig())
	now := time.Now()
	hr := &models.HeartRateReading{Current: 130, Average: 80, Variability: 10}

	withAccel, err := analyzer.Analyze(&models.SensorSnapshot{
		Accelerometer: &models.AccelerometerReading{Z: 9.8},
		HeartRate:     hr,
	}, now)
	require.NoError(t, err)

	withoutAccel, err := analyzer.Analyze(&models.SensorSnapshot{HeartRate: hr}, now)
	require.NoError(t, err)

	// Проверки: вклад пульса не зависит от присутствия других показаний
	assert.Equal(t, withAccel.Confidence, withoutAccel.Confidence)
	assert.Equal(t, withAccel.Patterns, withoutAccel.Patterns)
}

func TestAnalyze_MalformedReading_WholeSnapshotRejected(t *testing.T) {
	// Подготовка: корректный акселерометр, но физически бессмысленный пульс
	analyzer := NewSensorAnalyzer(testConfig())
	snapshot := &models.SensorSnapshot{
		Accelerometer: &models.AccelerometerReading{X: 12, Y: 12, Z: 12},
		HeartRate:     &models.HeartRateReading{Current: -10},
	}

	// Действие
	assessment, err := analyzer.Analyze(snapshot, time.Now())

	// Проверки: снимок отклонен целиком, частичной оценки нет
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Nil(t, assessment)
}
