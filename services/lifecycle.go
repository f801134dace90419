package services

import (
	"time"

	"github.com/google/uuid"

	"janawaaz-be/constants"
	"janawaaz-be/models"
)

// allowedTransitions is the forward-only lifecycle:
// submitted -> acknowledged -> in_progress -> resolved, with rejected
// reachable from any non-terminal state. Terminal states accept nothing.
var allowedTransitions = map[models.IssueStatus][]models.IssueStatus{
	models.StatusSubmitted:    {models.StatusAcknowledged, models.StatusRejected},
	models.StatusAcknowledged: {models.StatusInProgress, models.StatusRejected},
	models.StatusInProgress:   {models.StatusResolved, models.StatusRejected},
	models.StatusResolved:     {},
	models.StatusRejected:     {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to models.IssueStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status accepts no further transitions.
func IsTerminal(status models.IssueStatus) bool {
	return status == models.StatusResolved || status == models.StatusRejected
}

// ApplyStatusChange validates a status transition and applies it to the issue:
// it appends a timeline entry, sets the new status and bumps UpdatedAt.
// The issue is left unchanged when an error is returned.
func ApplyStatusChange(issue *models.Issue, newStatus models.IssueStatus, actorID, message string, now time.Time) (models.TimelineEvent, error) {
	switch newStatus {
	case models.StatusAcknowledged, models.StatusInProgress, models.StatusResolved, models.StatusRejected:
	case models.StatusSubmitted:
		return models.TimelineEvent{}, &ValidationError{Field: "status", Reason: "an issue cannot be moved back to submitted"}
	default:
		return models.TimelineEvent{}, &ValidationError{Field: "status", Reason: "unknown status " + string(newStatus)}
	}
	if message == "" {
		return models.TimelineEvent{}, &ValidationError{Field: "message", Reason: "an update message is required"}
	}
	if actorID == "" {
		return models.TimelineEvent{}, &ValidationError{Field: "actor", Reason: "an acting administrator is required"}
	}
	if !CanTransition(issue.Status, newStatus) {
		return models.TimelineEvent{}, &ValidationError{Field: "status", Reason: "cannot move from " + string(issue.Status) + " to " + string(newStatus)}
	}

	event := models.TimelineEvent{
		ID:        uuid.NewString(),
		Status:    newStatus,
		Message:   message,
		Timestamp: now,
		UpdatedBy: actorID,
	}
	issue.Timeline = append(issue.Timeline, event)
	issue.Status = newStatus
	issue.UpdatedAt = now
	return event, nil
}

// NewSubmission builds the initial timeline for a freshly reported issue.
func NewSubmission(reporterID string, now time.Time) []models.TimelineEvent {
	return []models.TimelineEvent{
		{
			ID:        uuid.NewString(),
			Status:    models.StatusSubmitted,
			Message:   "Issue reported by citizen",
			Timestamp: now,
			UpdatedBy: reporterID,
		},
	}
}

// RouteMinistry resolves the owning ministry for a category at creation time.
func RouteMinistry(category models.IssueCategory) string {
	return constants.MinistryForCategory(string(category))
}
