package v1

import "github.com/shenikar/tourist_safety_system/internal/models"

// DTOToDetectionInput преобразует DTO запроса в доменную модель
func DTOToDetectionInput(dto DetectionRequest) *models.DetectionInput {
	return &models.DetectionInput{
		TouristID:     dto.TouristID,
		Snapshot:      dto.Sensors,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		ManualTrigger: dto.ManualTrigger,
		Category:      models.AlertType(dto.Category),
		Message:       dto.Message,
	}
}

// DTOToContacts преобразует DTO замены контактов в доменные модели
func DTOToContacts(dto ReplaceContactsRequest) []*models.EmergencyContact {
	contacts := make([]*models.EmergencyContact, len(dto.Contacts))
	for i, c := range dto.Contacts {
		contacts[i] = &models.EmergencyContact{
			Name:         c.Name,
			Phone:        c.Phone,
			Email:        c.Email,
			Relationship: c.Relationship,
			Priority:     c.Priority,
		}
	}
	return contacts
}

// ModelToAlertResponse преобразует доменную модель тревоги в DTO ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	if model == nil {
		return nil
	}
	return &AlertResponse{
		ID:              model.ID,
		TouristID:       model.TouristID,
		Type:            string(model.Type),
		Severity:        string(model.Severity),
		Status:          string(model.Status),
		Message:         model.Message,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		RiskScore:       model.RiskScore,
		Confidence:      model.Confidence,
		ZoneID:          model.ZoneID,
		CreatedAt:       model.CreatedAt,
		AcknowledgedAt:  model.AcknowledgedAt,
		AcknowledgedBy:  model.AcknowledgedBy,
		ResolvedAt:      model.ResolvedAt,
		ResolvedBy:      model.ResolvedBy,
		ResolutionNotes: model.ResolutionNotes,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

// ModelToDetectionResponse преобразует результат обнаружения в DTO ответа
func ModelToDetectionResponse(result *models.DetectionResult) *DetectionResponse {
	return &DetectionResponse{
		Assessment:      result.Assessment,
		LocationRisk:    result.LocationRisk,
		Overall:         result.Overall,
		Alert:           ModelToAlertResponse(result.Alert),
		Dispatch:        result.Dispatch,
		Recommendations: result.Recommendations,
	}
}

// ModelToGeofenceResponse преобразует результат проверки геозон в DTO ответа
func ModelToGeofenceResponse(result *models.GeofenceResult) *GeofenceResponse {
	return &GeofenceResponse{
		Zones:      result.Zones,
		Alerts:     ModelsToAlertResponses(result.Alerts),
		Suppressed: result.Suppressed,
	}
}

// ModelsToContactResponses преобразует контакты в DTO ответа
func ModelsToContactResponses(contacts []*models.EmergencyContact) []*ContactResponse {
	responses := make([]*ContactResponse, len(contacts))
	for i, c := range contacts {
		responses[i] = &ContactResponse{
			ID:           c.ID,
			Name:         c.Name,
			Phone:        c.Phone,
			Email:        c.Email,
			Relationship: c.Relationship,
			Priority:     c.Priority,
		}
	}
	return responses
}
