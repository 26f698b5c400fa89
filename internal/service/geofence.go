package service

import (
	"context"
	"fmt"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

type geofenceService struct {
	zones    ZoneRepository
	alerts   AlertService
	cooldown CooldownStore
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewGeofenceService(zones ZoneRepository, alerts AlertService, cooldown CooldownStore, logger *logrus.Logger, cfg *config.Config) GeofenceService {
	return &geofenceService{
		zones:    zones,
		alerts:   alerts,
		cooldown: cooldown,
		logger:   logger,
		cfg:      cfg,
	}
}

// CheckLocation проверяет точку против всех зарегистрированных опасных
// зон. Попадание в зону создает тревогу geofence_violation уровня high
// и запускает рассылку. Повторные срабатывания той же пары (турист, зона)
// подавляются кулдауном из конфигурации; при нулевом кулдауне тревога
// создается на каждое обновление местоположения.
func (s *geofenceService) CheckLocation(ctx context.Context, touristID string, lat, lon float64) (*models.GeofenceResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "geofence",
		"method":     "CheckLocation",
		"tourist_id": touristID,
	})
	log.Info("Checking tourist location against danger zones")

	zones, err := s.zones.FindZonesContaining(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Error("Failed to find zones containing point")
		return nil, fmt.Errorf("service: could not check danger zones: %w", err)
	}

	result := &models.GeofenceResult{
		Zones:  zones,
		Alerts: make([]*models.Alert, 0, len(zones)),
	}

	for _, zone := range zones {
		if s.cfg.GeofenceCooldown > 0 {
			acquired, err := s.cooldown.AcquireZoneCooldown(ctx, touristID, zone.ID, s.cfg.GeofenceCooldown)
			if err != nil {
				// кулдаун - только подавление шума: при его недоступности
				// лучше лишняя тревога, чем пропущенная
				log.WithError(err).Warn("Cooldown store unavailable, alerting anyway")
			} else if !acquired {
				result.Suppressed++
				log.WithField("zone_id", zone.ID).Debug("Zone alert suppressed by cooldown")
				continue
			}
		}

		zoneID := zone.ID
		alert := &models.Alert{
			TouristID: touristID,
			Type:      models.AlertTypeGeofence,
			Severity:  models.SeverityHigh,
			Message:   fmt.Sprintf("tourist entered danger zone %q", zone.Name),
			Latitude:  lat,
			Longitude: lon,
			ZoneID:    &zoneID,
		}

		action := responsePolicy[models.SeverityHigh]
		created, _, err := s.alerts.CreateAndDispatch(ctx, alert, action.notifyContacts, action.notifyExternal)
		if err != nil {
			log.WithError(err).WithField("zone_id", zone.ID).Error("Failed to create geofence alert")
			return nil, err
		}
		result.Alerts = append(result.Alerts, created)
	}

	check := &models.LocationCheck{
		TouristID:   touristID,
		Latitude:    lat,
		Longitude:   lon,
		IsDangerous: len(zones) > 0,
	}
	if err := s.zones.SaveLocationCheck(ctx, check); err != nil {
		// журнал проверок вторичен по отношению к самим тревогам
		log.WithError(err).Warn("Failed to save location check")
	}

	log.WithFields(logrus.Fields{
		"zones_hit":  len(zones),
		"alerts":     len(result.Alerts),
		"suppressed": result.Suppressed,
	}).Info("Location check completed")

	return result, nil
}

// GetStats возвращает количество уникальных туристов, проверивших
// местоположение за окно из конфигурации
func (s *geofenceService) GetStats(ctx context.Context) (int, error) {
	count, err := s.zones.GetLocationCheckStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get location check stats")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}
