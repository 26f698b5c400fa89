package models

// DetectionInput - входные данные запроса на обнаружение
type DetectionInput struct {
	TouristID     string
	Snapshot      *SensorSnapshot
	Latitude      float64
	Longitude     float64
	ManualTrigger bool
	Category      AlertType
	Message       string
}

// DetectionResult - полный результат обработки запроса на обнаружение.
// Assessment, LocationRisk и Overall возвращаются всегда; Alert и
// Dispatch присутствуют только если уровень серьезности потребовал
// создания тревоги.
type DetectionResult struct {
	Assessment      *RiskAssessment  `json:"assessment"`
	LocationRisk    *LocationRisk    `json:"location_risk"`
	Overall         *OverallRisk     `json:"overall"`
	Alert           *Alert           `json:"alert,omitempty"`
	Dispatch        *DispatchSummary `json:"dispatch,omitempty"`
	Recommendations []string         `json:"recommendations"`
}

// GeofenceResult - итог проверки местоположения против геозон
type GeofenceResult struct {
	Zones      []*DangerZone `json:"zones"`
	Alerts     []*Alert      `json:"alerts"`
	Suppressed int           `json:"suppressed"`
}
