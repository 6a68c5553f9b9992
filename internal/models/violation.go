package models

import "time"

// Violation represents a single enforcement record issued against a property
// by a city agency. Fields mirror what the agency feeds actually provide,
// which means almost everything is optional.
type Violation struct {
	ID              string     `json:"id"`
	PropertyID      string     `json:"propertyId"`
	Agency          *string    `json:"agency,omitempty"`
	Description     *string    `json:"description,omitempty"`
	ViolationType   *string    `json:"violationType,omitempty"`
	ViolationClass  *string    `json:"violationClass,omitempty"`
	SeverityHint    *string    `json:"severityHint,omitempty"`
	IsStopWorkOrder *bool      `json:"isStopWorkOrder,omitempty"`
	IsVacateOrder   *bool      `json:"isVacateOrder,omitempty"`
	PenaltyAmount   *float64   `json:"penaltyAmount,omitempty"`
	IssuedAt        *time.Time `json:"issuedAt,omitempty"`
	Status          *string    `json:"status,omitempty"`
}
