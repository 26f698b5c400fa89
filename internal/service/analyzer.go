package service

import (
	"fmt"
	"math"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// SensorAnalyzer - чистый анализатор сенсорных паттернов.
// Каждое присутствующее показание проверяется независимым пороговым
// правилом; сработавшие правила аддитивно накапливают уверенность,
// итог ограничивается 1.0. Отсутствующее показание не оценивается
// и не влияет на вклад остальных.
type SensorAnalyzer struct {
	cfg *config.Config
}

func NewSensorAnalyzer(cfg *config.Config) *SensorAnalyzer {
	return &SensorAnalyzer{cfg: cfg}
}

// Analyze анализирует снимок сенсоров и возвращает оценку риска.
// Некорректный снимок отклоняется целиком с ошибкой валидации,
// частичный пропуск битых показаний не допускается.
func (a *SensorAnalyzer) Analyze(snapshot *models.SensorSnapshot, now time.Time) (*models.RiskAssessment, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("sensor snapshot is nil: %w", models.ErrValidation)
	}
	if err := a.validate(snapshot); err != nil {
		return nil, err
	}

	assessment := &models.RiskAssessment{
		Patterns:    make([]string, 0),
		RiskFactors: make([]string, 0),
	}

	if acc := snapshot.Accelerometer; acc != nil {
		magnitude := math.Sqrt(acc.X*acc.X + acc.Y*acc.Y + acc.Z*acc.Z)
		if magnitude > a.cfg.AccelMagnitudeThreshold {
			a.hit(assessment, "fall_impact", a.cfg.AccelIncrement,
				fmt.Sprintf("sudden acceleration spike: magnitude %.1f", magnitude))
		}
	}

	if hr := snapshot.HeartRate; hr != nil {
		if hr.Current > a.cfg.HeartRateHigh || hr.Current < a.cfg.HeartRateLow || hr.Variability > a.cfg.HeartRateVariabilityMax {
			a.hit(assessment, "abnormal_heart_rate", a.cfg.HeartRateIncrement,
				fmt.Sprintf("abnormal heart rate: current %.0f bpm, variability %.0f", hr.Current, hr.Variability))
		}
	}

	if mv := snapshot.Movement; mv != nil {
		suddenStop := mv.Speed == 0 && mv.PreviousSpeed > a.cfg.MovementStopSpeedMin
		sharpTurn := math.Abs(mv.Direction-mv.PreviousDirection) > a.cfg.MovementTurnDegrees
		if mv.Consistency < a.cfg.MovementConsistencyMin || suddenStop || sharpTurn {
			a.hit(assessment, "erratic_movement", a.cfg.MovementIncrement,
				"erratic movement pattern detected")
		}
	}

	if dev := snapshot.Device; dev != nil {
		inactive := now.Sub(dev.LastInteraction) > a.cfg.InactivityThreshold
		lowBatterySilent := dev.BatteryPercent < a.cfg.LowBatteryPercent && dev.ScreenTimeSec == 0
		if inactive || lowBatterySilent {
			a.hit(assessment, "prolonged_inactivity", a.cfg.DeviceIncrement,
				fmt.Sprintf("no device interaction for %s, battery %.0f%%", now.Sub(dev.LastInteraction).Round(time.Minute), dev.BatteryPercent))
		}
	}

	if au := snapshot.Audio; au != nil {
		inBand := au.Frequency >= a.cfg.AudioFrequencyMin && au.Frequency <= a.cfg.AudioFrequencyMax
		if au.Volume > a.cfg.AudioVolumeThreshold && inBand && au.Pattern == "repetitive_high" {
			a.hit(assessment, "distress_audio", a.cfg.AudioIncrement,
				"repetitive high-volume audio in distress frequency band")
		}
	}

	if assessment.Confidence > 1.0 {
		assessment.Confidence = 1.0
	}
	assessment.EmergencyProbability = assessment.Confidence

	return assessment, nil
}

// hit фиксирует сработавший паттерн
func (a *SensorAnalyzer) hit(assessment *models.RiskAssessment, pattern string, increment float64, factor string) {
	assessment.Patterns = append(assessment.Patterns, pattern)
	assessment.RiskFactors = append(assessment.RiskFactors, factor)
	assessment.Confidence += increment
}

// validate отклоняет физически бессмысленные показания
func (a *SensorAnalyzer) validate(snapshot *models.SensorSnapshot) error {
	if hr := snapshot.HeartRate; hr != nil {
		if hr.Current < 0 || hr.Current > 300 || hr.Variability < 0 {
			return fmt.Errorf("heart rate reading out of range: %w", models.ErrValidation)
		}
	}
	if mv := snapshot.Movement; mv != nil {
		if mv.Speed < 0 || mv.PreviousSpeed < 0 || mv.Consistency < 0 || mv.Consistency > 1 {
			return fmt.Errorf("movement reading out of range: %w", models.ErrValidation)
		}
	}
	if dev := snapshot.Device; dev != nil {
		if dev.BatteryPercent < 0 || dev.BatteryPercent > 100 {
			return fmt.Errorf("battery percent out of range: %w", models.ErrValidation)
		}
	}
	if au := snapshot.Audio; au != nil {
		if au.Volume < 0 || au.Frequency < 0 {
			return fmt.Errorf("audio reading out of range: %w", models.ErrValidation)
		}
	}
	return nil
}
