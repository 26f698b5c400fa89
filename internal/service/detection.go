package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// responseAction - действия, предписанные уровню серьезности
type responseAction struct {
	createAlert    bool
	notifyContacts bool
	notifyExternal bool
}

// responsePolicy - явная таблица "уровень -> действия". Политика
// реагирования определена в одном месте: critical - полный протокол,
// high - оповещение контактов без внешней службы, остальные уровни
// только журналируются.
var responsePolicy = map[models.Severity]responseAction{
	models.SeverityCritical: {createAlert: true, notifyContacts: true, notifyExternal: true},
	models.SeverityHigh:     {createAlert: true, notifyContacts: true, notifyExternal: false},
	models.SeverityModerate: {},
	models.SeverityLow:      {},
	models.SeverityMinimal:  {},
}

type detectionService struct {
	analyzer   *SensorAnalyzer
	assessor   *LocationRiskAssessor
	classifier *RiskClassifier
	alerts     AlertService
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewDetectionService(analyzer *SensorAnalyzer, assessor *LocationRiskAssessor, classifier *RiskClassifier, alerts AlertService, logger *logrus.Logger, cfg *config.Config) DetectionService {
	return &detectionService{
		analyzer:   analyzer,
		assessor:   assessor,
		classifier: classifier,
		alerts:     alerts,
		logger:     logger,
		cfg:        cfg,
	}
}

// Detect обрабатывает запрос на обнаружение: анализ сенсоров и оценка
// местоположения идут параллельно (они независимы), затем классификация
// и, если уровень того требует, создание тревоги с рассылкой.
func (s *detectionService) Detect(ctx context.Context, input *models.DetectionInput) (*models.DetectionResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "detection",
		"method":     "Detect",
		"tourist_id": input.TouristID,
	})
	log.Info("Processing detection request")

	// Ручной вызов перекрывает показания сенсоров, их отсутствие не
	// препятствие для тревоги
	if input.ManualTrigger && input.Snapshot == nil {
		input.Snapshot = &models.SensorSnapshot{}
	}

	var (
		assessment   *models.RiskAssessment
		locationRisk *models.LocationRisk
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assessment, err = s.analyzer.Analyze(input.Snapshot, time.Now())
		return err
	})
	g.Go(func() error {
		locationRisk = s.assessor.Assess(gctx, input.Latitude, input.Longitude)
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("Sensor analysis rejected the request")
		return nil, fmt.Errorf("service: sensor analysis failed: %w", err)
	}

	overall := s.classifier.Classify(assessment, locationRisk, input.ManualTrigger)
	log.WithFields(logrus.Fields{
		"severity": overall.Severity,
		"score":    overall.Score,
	}).Info("Risk classified")

	result := &models.DetectionResult{
		Assessment:      assessment,
		LocationRisk:    locationRisk,
		Overall:         overall,
		Recommendations: recommendationsFor(overall.Severity),
	}

	action := responsePolicy[overall.Severity]
	if !action.createAlert {
		return result, nil
	}

	alert := s.buildAlert(input, overall)
	created, summary, err := s.alerts.CreateAndDispatch(ctx, alert, action.notifyContacts, action.notifyExternal)
	if err != nil {
		// отказ хранилища тревог - единственный фатальный исход
		log.WithError(err).Error("Failed to create alert for detection")
		return nil, err
	}
	result.Alert = created
	result.Dispatch = summary

	return result, nil
}

// TriggerManual обрабатывает ручной вызов SOS: всегда critical,
// полный протокол оповещения независимо от показаний сенсоров.
func (s *detectionService) TriggerManual(ctx context.Context, input *models.DetectionInput) (*models.DetectionResult, error) {
	input.ManualTrigger = true
	return s.Detect(ctx, input)
}

// buildAlert собирает тревогу из результата классификации.
// Severity и Type фиксируются здесь и далее неизменяемы.
func (s *detectionService) buildAlert(input *models.DetectionInput, overall *models.OverallRisk) *models.Alert {
	alertType := models.AlertTypeAuto
	if input.ManualTrigger {
		alertType = models.AlertTypeSOS
	}
	if input.Category != "" {
		alertType = input.Category
	}

	message := input.Message
	if message == "" {
		message = fmt.Sprintf("%s risk detected for tourist %s", overall.Severity, input.TouristID)
	}

	score := overall.Score
	confidence := overall.Confidence
	return &models.Alert{
		TouristID:  input.TouristID,
		Type:       alertType,
		Severity:   overall.Severity,
		Message:    message,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		RiskScore:  &score,
		Confidence: &confidence,
	}
}

// recommendationsFor возвращает рекомендации туристу для уровня риска
func recommendationsFor(severity models.Severity) []string {
	switch severity {
	case models.SeverityCritical:
		return []string{
			"stay where you are, help is being dispatched",
			"keep your phone reachable",
		}
	case models.SeverityHigh:
		return []string{
			"move to a populated, well-lit area",
			"contact someone you trust and share your location",
		}
	case models.SeverityModerate:
		return []string{
			"stay alert and avoid isolated areas",
		}
	default:
		return []string{"no action required"}
	}
}
