package models

import "time"

// EmergencyContact - экстренный контакт туриста. Меньший priority -
// выше приоритет, контакт оповещается раньше.
type EmergencyContact struct {
	ID           int64     `json:"id"`
	TouristID    string    `json:"tourist_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Relationship string    `json:"relationship,omitempty"`
	Priority     int       `json:"priority"`
	CreatedAt    time.Time `json:"created_at"`
}
