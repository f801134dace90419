package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"janawaaz-be/models"
)

// IntegrationClient talks to external ministry systems. The clock, random
// source and simulated latency are injected so tests can run deterministically.
type IntegrationClient struct {
	mu           sync.Mutex
	integrations []models.MinistryIntegration
	now          func() time.Time
	chance       func() float64
	latency      time.Duration
}

// IntegrationOption customizes an IntegrationClient.
type IntegrationOption func(*IntegrationClient)

// WithClock overrides the time source.
func WithClock(now func() time.Time) IntegrationOption {
	return func(c *IntegrationClient) { c.now = now }
}

// WithChance overrides the random source used by connection tests.
func WithChance(chance func() float64) IntegrationOption {
	return func(c *IntegrationClient) { c.chance = chance }
}

// WithLatency overrides the simulated call latency.
func WithLatency(d time.Duration) IntegrationOption {
	return func(c *IntegrationClient) { c.latency = d }
}

// NewIntegrationClient builds a client seeded with the known ministry portals.
func NewIntegrationClient(opts ...IntegrationOption) *IntegrationClient {
	c := &IntegrationClient{
		now:     time.Now,
		chance:  rand.Float64,
		latency: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	now := c.now()
	c.integrations = []models.MinistryIntegration{
		{ID: "urban-portal", Name: "Urban Development Portal", Ministry: "urban_dev", Endpoint: "https://urban.jharkhand.gov.in/api", Status: models.IntegrationConnected, LastSync: now.Add(-2 * time.Hour)},
		{ID: "transport-mgmt", Name: "Transport Management System", Ministry: "transport", Endpoint: "https://transport.jharkhand.gov.in/api", Status: models.IntegrationConnected, LastSync: now.Add(-30 * time.Minute)},
		{ID: "water-board", Name: "Water Resources Board", Ministry: "water", Endpoint: "https://water.jharkhand.gov.in/api", Status: models.IntegrationError, LastSync: now.Add(-24 * time.Hour)},
		{ID: "env-clearance", Name: "Environment Clearance Portal", Ministry: "environment", Endpoint: "https://environment.jharkhand.gov.in/api", Status: models.IntegrationDisconnected, LastSync: now.Add(-7 * 24 * time.Hour)},
		{ID: "rural-dev", Name: "Rural Development Database", Ministry: "rural_dev", Endpoint: "https://rural.jharkhand.gov.in/api", Status: models.IntegrationConnected, LastSync: now.Add(-1 * time.Hour)},
	}
	return c
}

// List returns the known integrations, optionally filtered by ministry.
func (c *IntegrationClient) List(ministry string) []models.MinistryIntegration {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.MinistryIntegration, 0, len(c.integrations))
	for _, in := range c.integrations {
		if ministry == "" || in.Ministry == ministry {
			out = append(out, in)
		}
	}
	return out
}

// Sync pulls issue records from the external system, marks the integration
// connected and bumps its last-sync time.
func (c *IntegrationClient) Sync(integrationID string) ([]models.ExternalIssue, error) {
	c.mu.Lock()
	idx := c.find(integrationID)
	if idx < 0 {
		c.mu.Unlock()
		return nil, ErrNotFound
	}
	name := c.integrations[idx].Name
	c.mu.Unlock()

	time.Sleep(c.latency)

	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.integrations[idx].LastSync = now
	c.integrations[idx].Status = models.IntegrationConnected

	return []models.ExternalIssue{
		{
			ExternalID:         "EXT-" + uuid.NewString()[:8],
			Source:             name,
			Title:              "Road maintenance required on NH-33",
			Status:             "In Progress",
			Priority:           "High",
			AssignedDepartment: "Public Works",
			LastUpdated:        now.Add(-6 * time.Hour),
		},
		{
			ExternalID:         "EXT-" + uuid.NewString()[:8],
			Source:             name,
			Title:              "Water supply disruption in Sector 5",
			Status:             "Pending",
			Priority:           "Urgent",
			AssignedDepartment: "Water Supply",
			LastUpdated:        now.Add(-2 * time.Hour),
		},
	}, nil
}

// TestConnection probes the external system and records the resulting status.
func (c *IntegrationClient) TestConnection(integrationID string) (bool, error) {
	c.mu.Lock()
	idx := c.find(integrationID)
	c.mu.Unlock()
	if idx < 0 {
		return false, ErrNotFound
	}

	time.Sleep(c.latency)

	ok := c.chance() > 0.3

	c.mu.Lock()
	defer c.mu.Unlock()
	if ok {
		c.integrations[idx].Status = models.IntegrationConnected
	} else {
		c.integrations[idx].Status = models.IntegrationError
	}
	return ok, nil
}

func (c *IntegrationClient) find(id string) int {
	for i, in := range c.integrations {
		if in.ID == id {
			return i
		}
	}
	return -1
}
