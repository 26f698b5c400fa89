package service

import (
	"context"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RiskFeed определяет контракт внешнего источника данных о риске для
// координаты. Каждый вызов несет собственный таймаут; источник обязан
// возвращать unknown вместо ошибки "нет данных".
type RiskFeed interface {
	Assess(ctx context.Context, lat, lon float64) (models.FactorRisk, error)
}

// LocationRiskAssessor сводит четыре независимых источника в агрегат 0-100.
// Отказ любого источника деградирует локально до unknown с нулевым баллом,
// сам оценщик из-за недоступности источников не падает никогда.
type LocationRiskAssessor struct {
	crime     RiskFeed
	weather   RiskFeed
	isolation RiskFeed
	emergency RiskFeed
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewLocationRiskAssessor(crime, weather, isolation, emergency RiskFeed, logger *logrus.Logger, cfg *config.Config) *LocationRiskAssessor {
	return &LocationRiskAssessor{
		crime:     crime,
		weather:   weather,
		isolation: isolation,
		emergency: emergency,
		logger:    logger,
		cfg:       cfg,
	}
}

// Assess опрашивает все источники параллельно и возвращает совокупный
// риск местоположения. Ошибок не возвращает: деградация до unknown
// происходит на месте.
func (a *LocationRiskAssessor) Assess(ctx context.Context, lat, lon float64) *models.LocationRisk {
	risk := &models.LocationRisk{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		risk.Crime = a.query(gctx, "crime", a.crime, lat, lon)
		return nil
	})
	g.Go(func() error {
		risk.Weather = a.query(gctx, "weather", a.weather, lat, lon)
		return nil
	})
	g.Go(func() error {
		risk.Isolation = a.query(gctx, "isolation", a.isolation, lat, lon)
		return nil
	})
	g.Go(func() error {
		risk.EmergencyServices = a.query(gctx, "emergency_services", a.emergency, lat, lon)
		return nil
	})
	_ = g.Wait() // горутины ошибок не возвращают

	risk.Aggregate = risk.Crime.Score*a.cfg.CrimeWeight +
		risk.Weather.Score*a.cfg.WeatherWeight +
		risk.Isolation.Score*a.cfg.IsolationWeight +
		risk.EmergencyServices.Score*a.cfg.EmergencyServicesWeight

	return risk
}

// query выполняет один запрос к источнику с таймаутом и деградацией
func (a *LocationRiskAssessor) query(ctx context.Context, name string, feed RiskFeed, lat, lon float64) models.FactorRisk {
	log := a.logger.WithFields(logrus.Fields{
		"service": "location_risk",
		"feed":    name,
	})

	feedCtx, cancel := context.WithTimeout(ctx, a.cfg.RiskFeedTimeout)
	defer cancel()

	factor, err := feed.Assess(feedCtx, lat, lon)
	if err != nil {
		log.WithError(err).Warn("Risk feed unavailable, degrading to unknown")
		return models.UnknownFactor()
	}
	return factor
}
