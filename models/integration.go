package models

import "time"

// IntegrationStatus enum
type IntegrationStatus string

const (
	IntegrationConnected    IntegrationStatus = "connected"
	IntegrationDisconnected IntegrationStatus = "disconnected"
	IntegrationError        IntegrationStatus = "error"
)

// MinistryIntegration describes a connection to an external ministry system.
// Mutated only by sync and test-connection operations.
type MinistryIntegration struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Ministry string            `json:"ministry"`
	Endpoint string            `json:"endpoint"`
	Status   IntegrationStatus `json:"status"`
	LastSync time.Time         `json:"lastSync"`
}

// ExternalIssue is an issue record pulled from an external ministry system.
type ExternalIssue struct {
	ExternalID         string    `json:"externalId"`
	Source             string    `json:"source"`
	Title              string    `json:"title"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	AssignedDepartment string    `json:"assignedDepartment"`
	LastUpdated        time.Time `json:"lastUpdated"`
}
