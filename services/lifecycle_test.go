package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janawaaz-be/models"
)

func submittedIssue(t *testing.T) *models.Issue {
	t.Helper()
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return &models.Issue{
		Title:     "Large pothole on Main Street",
		Category:  models.Pothole,
		Priority:  models.PriorityHigh,
		Status:    models.StatusSubmitted,
		Ministry:  "transport",
		CreatedAt: created,
		UpdatedAt: created,
		Timeline:  NewSubmission("citizen-1", created),
	}
}

// TestApplyStatusChange_Acknowledge covers the straightforward first transition.
func TestApplyStatusChange_Acknowledge(t *testing.T) {
	issue := submittedIssue(t)
	before := issue.UpdatedAt
	now := before.Add(time.Hour)

	event, err := ApplyStatusChange(issue, models.StatusAcknowledged, "admin-ranchi", "Report acknowledged by zonal admin", now)
	require.NoError(t, err)

	assert.Equal(t, models.StatusAcknowledged, issue.Status)
	assert.Len(t, issue.Timeline, 2)
	assert.True(t, issue.UpdatedAt.After(before))
	assert.Equal(t, models.StatusAcknowledged, event.Status)
	assert.Equal(t, "admin-ranchi", event.UpdatedBy)
	assert.NotEmpty(t, event.ID)
}

// TestApplyStatusChange_EmptyMessage rejects the change and leaves the issue alone.
func TestApplyStatusChange_EmptyMessage(t *testing.T) {
	issue := submittedIssue(t)

	_, err := ApplyStatusChange(issue, models.StatusAcknowledged, "admin-ranchi", "", time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Len(t, issue.Timeline, 1, "no partial append on failure")
	assert.Equal(t, models.StatusSubmitted, issue.Status)
}

// TestApplyStatusChange_EmptyActor requires an acting administrator.
func TestApplyStatusChange_EmptyActor(t *testing.T) {
	issue := submittedIssue(t)

	_, err := ApplyStatusChange(issue, models.StatusAcknowledged, "", "looks legitimate", time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Len(t, issue.Timeline, 1)
}

// TestApplyStatusChange_UnknownStatus rejects statuses outside the enum.
func TestApplyStatusChange_UnknownStatus(t *testing.T) {
	issue := submittedIssue(t)

	_, err := ApplyStatusChange(issue, models.IssueStatus("escalated"), "admin-ranchi", "msg", time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

// TestApplyStatusChange_BackToSubmitted is never allowed.
func TestApplyStatusChange_BackToSubmitted(t *testing.T) {
	issue := submittedIssue(t)
	issue.Status = models.StatusAcknowledged

	_, err := ApplyStatusChange(issue, models.StatusSubmitted, "admin-ranchi", "reopening", time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

// TestApplyStatusChange_ForwardOnly blocks skips and backward moves.
func TestApplyStatusChange_ForwardOnly(t *testing.T) {
	issue := submittedIssue(t)

	_, err := ApplyStatusChange(issue, models.StatusResolved, "admin-ranchi", "closing directly", time.Now())
	require.Error(t, err, "submitted -> resolved skips acknowledgement")
	assert.Equal(t, models.StatusSubmitted, issue.Status)

	issue.Status = models.StatusInProgress
	_, err = ApplyStatusChange(issue, models.StatusAcknowledged, "admin-ranchi", "stepping back", time.Now())
	require.Error(t, err, "in_progress -> acknowledged is a backward move")
}

// TestApplyStatusChange_RejectedFromAnyNonTerminal allows rejection everywhere
// except from a terminal state.
func TestApplyStatusChange_RejectedFromAnyNonTerminal(t *testing.T) {
	for _, from := range []models.IssueStatus{models.StatusSubmitted, models.StatusAcknowledged, models.StatusInProgress} {
		issue := submittedIssue(t)
		issue.Status = from

		_, err := ApplyStatusChange(issue, models.StatusRejected, "admin-ranchi", "not a civic matter", time.Now())
		require.NoError(t, err, "rejection from %s", from)
		assert.Equal(t, models.StatusRejected, issue.Status)
	}
}

// TestApplyStatusChange_TerminalStatesAreFrozen blocks every move out of
// resolved and rejected.
func TestApplyStatusChange_TerminalStatesAreFrozen(t *testing.T) {
	for _, from := range []models.IssueStatus{models.StatusResolved, models.StatusRejected} {
		for _, to := range []models.IssueStatus{models.StatusAcknowledged, models.StatusInProgress, models.StatusResolved, models.StatusRejected} {
			issue := submittedIssue(t)
			issue.Status = from

			_, err := ApplyStatusChange(issue, to, "admin-ranchi", "msg", time.Now())
			require.Error(t, err, "%s -> %s", from, to)
		}
	}
}

// TestApplyStatusChange_FullLifecycle walks submitted to resolved and checks
// the timeline stays time-ordered.
func TestApplyStatusChange_FullLifecycle(t *testing.T) {
	issue := submittedIssue(t)
	now := issue.CreatedAt

	steps := []models.IssueStatus{models.StatusAcknowledged, models.StatusInProgress, models.StatusResolved}
	for _, s := range steps {
		now = now.Add(time.Hour)
		_, err := ApplyStatusChange(issue, s, "admin-ranchi", "moving to "+string(s), now)
		require.NoError(t, err)
	}

	assert.Equal(t, models.StatusResolved, issue.Status)
	assert.Len(t, issue.Timeline, 4)
	for i := 1; i < len(issue.Timeline); i++ {
		assert.False(t, issue.Timeline[i].Timestamp.Before(issue.Timeline[i-1].Timestamp),
			"timeline timestamps must be non-decreasing")
	}
	assert.Equal(t, issue.Status, issue.Timeline[len(issue.Timeline)-1].Status,
		"status must mirror the latest timeline entry")
}

// TestNewSubmission seeds the timeline with the reporting event.
func TestNewSubmission(t *testing.T) {
	now := time.Now()
	timeline := NewSubmission("citizen-7", now)
	require.Len(t, timeline, 1)
	assert.Equal(t, models.StatusSubmitted, timeline[0].Status)
	assert.Equal(t, "citizen-7", timeline[0].UpdatedBy)
	assert.Equal(t, now, timeline[0].Timestamp)
}

// TestRouteMinistry pins the category routing table.
func TestRouteMinistry(t *testing.T) {
	assert.Equal(t, "transport", RouteMinistry(models.Pothole))
	assert.Equal(t, "urban_dev", RouteMinistry(models.Garbage))
	assert.Equal(t, "urban_dev", RouteMinistry(models.Streetlight))
	assert.Equal(t, "water", RouteMinistry(models.Water))
	assert.Equal(t, "urban_dev", RouteMinistry(models.Electricity))
	assert.Equal(t, "urban_dev", RouteMinistry(models.Other))
	assert.Equal(t, "urban_dev", RouteMinistry(models.IssueCategory("drone-strike")), "unknown categories fall back to urban_dev")
}

// TestIsTerminal covers both terminal states.
func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusResolved))
	assert.True(t, IsTerminal(models.StatusRejected))
	assert.False(t, IsTerminal(models.StatusSubmitted))
	assert.False(t, IsTerminal(models.StatusAcknowledged))
	assert.False(t, IsTerminal(models.StatusInProgress))
}
