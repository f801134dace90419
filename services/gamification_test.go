package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"janawaaz-be/constants"
	"janawaaz-be/models"
)

// TestLevelOf_Boundaries verifies tier edges on both sides.
func TestLevelOf_Boundaries(t *testing.T) {
	cases := []struct {
		points int
		level  int
		name   string
	}{
		{0, 1, "Newcomer"},
		{99, 1, "Newcomer"},
		{100, 2, "Contributor"},
		{299, 2, "Contributor"},
		{300, 3, "Advocate"},
		{599, 3, "Advocate"},
		{600, 4, "Champion"},
		{999, 4, "Champion"},
		{1000, 5, "Guardian"},
		{1999, 5, "Guardian"},
		{2000, 6, "Legend"},
		{1000000, 6, "Legend"},
	}
	for _, c := range cases {
		level, name := LevelOf(c.points)
		assert.Equal(t, c.level, level, "points=%d", c.points)
		assert.Equal(t, c.name, name, "points=%d", c.points)
	}
}

// TestLevelOf_EveryTotalMapsToOneTier walks a dense range and checks tiers
// are contiguous and non-overlapping.
func TestLevelOf_EveryTotalMapsToOneTier(t *testing.T) {
	prev, _ := LevelOf(0)
	for p := 1; p <= 2500; p++ {
		level, _ := LevelOf(p)
		assert.GreaterOrEqual(t, level, prev, "level must never decrease as points grow (p=%d)", p)
		assert.LessOrEqual(t, level-prev, 1, "levels must be contiguous (p=%d)", p)
		prev = level
	}
}

// TestLevelOf_NegativeClampsToFirstTier covers the conceptual clamp at zero.
func TestLevelOf_NegativeClampsToFirstTier(t *testing.T) {
	level, name := LevelOf(-5)
	assert.Equal(t, 1, level)
	assert.Equal(t, "Newcomer", name)
}

// TestPointsFor_FixedConstants verifies awards are user-independent constants.
func TestPointsFor_FixedConstants(t *testing.T) {
	assert.Equal(t, 10, PointsFor(constants.ReportSubmitted))
	assert.Equal(t, 5, PointsFor(constants.ReportAcknowledged))
	assert.Equal(t, 50, PointsFor(constants.IssueResolved))
	assert.Equal(t, 25, PointsFor(constants.FirstReportBonus))
	assert.Equal(t, 20, PointsFor(constants.WeeklyStreak))
	assert.Equal(t, 100, PointsFor(constants.MonthlyStreak))
	assert.Equal(t, 0, PointsFor(constants.PointEvent("NO_SUCH_EVENT")))
}

// TestApplyAward_LevelUpDetection compares the tier before and after the delta.
func TestApplyAward_LevelUpDetection(t *testing.T) {
	award := ApplyAward(95, constants.ReportSubmitted)
	assert.Equal(t, 10, award.Points)
	assert.Equal(t, 105, award.Total)
	assert.True(t, award.LeveledUp, "95 -> 105 crosses the Contributor boundary")
	assert.Equal(t, 2, award.NewLevel)
	assert.Equal(t, "Contributor", award.LevelName)

	award = ApplyAward(100, constants.ReportAcknowledged)
	assert.False(t, award.LeveledUp, "100 -> 105 stays within Contributor")
}

// TestCheckBadges_FirstReportOnly matches the exact single-badge case.
func TestCheckBadges_FirstReportOnly(t *testing.T) {
	got := CheckBadges(nil, 1, 0, 0)
	assert.Equal(t, []string{constants.BadgeFirstReport}, got)
}

// TestCheckBadges_AllFourOnce verifies each badge appears exactly once.
func TestCheckBadges_AllFourOnce(t *testing.T) {
	got := CheckBadges(nil, 10, 10, 1000)
	assert.Len(t, got, 4)
	assert.ElementsMatch(t, []string{
		constants.BadgeFirstReport,
		constants.BadgePhotoReporter,
		constants.BadgeResolutionTracker,
		constants.BadgeCommunityLeader,
	}, got)
}

// TestCheckBadges_Idempotent feeds the first result back in and expects nothing.
func TestCheckBadges_Idempotent(t *testing.T) {
	first := CheckBadges(nil, 10, 10, 1000)
	second := CheckBadges(first, 10, 10, 1000)
	assert.Empty(t, second, "earned badges must never be re-returned")
}

// TestCheckBadges_NeverRevoked keeps earned badges even below thresholds.
func TestCheckBadges_NeverRevoked(t *testing.T) {
	earned := []string{constants.BadgeCommunityLeader}
	got := CheckBadges(earned, 0, 0, 0)
	assert.Empty(t, got)
}

// TestProgressFor reports the ladder position around a citizen's total.
func TestProgressFor(t *testing.T) {
	p := ProgressFor(450, []string{constants.BadgeFirstReport})
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, "Advocate", p.LevelName)
	assert.Equal(t, 300, p.CurrentLevelPoints)
	assert.Equal(t, 600, p.NextLevelPoints)
	assert.Equal(t, []string{constants.BadgeFirstReport}, p.Badges)
}

// TestProgressFor_TopTierHasNoNextLevel pins nextLevelPoints at the total.
func TestProgressFor_TopTierHasNoNextLevel(t *testing.T) {
	p := ProgressFor(2500, nil)
	assert.Equal(t, 6, p.Level)
	assert.Equal(t, 2500, p.NextLevelPoints)
	assert.NotNil(t, p.Badges)
}

// TestLeaderboard_OrderAndExclusions ranks citizens by points, admins excluded.
func TestLeaderboard_OrderAndExclusions(t *testing.T) {
	users := []models.User{
		{ID: primitive.NewObjectID(), Name: "A", Role: models.RoleCitizen, Points: 120},
		{ID: primitive.NewObjectID(), Name: "B", Role: models.RoleCitizen, Points: 800},
		{ID: primitive.NewObjectID(), Name: "Admin", Role: models.RoleZonalAdmin, Points: 9999},
		{ID: primitive.NewObjectID(), Name: "C", Role: models.RoleCitizen, Points: 450},
	}

	board := Leaderboard(users)
	assert.Len(t, board, 3)
	assert.Equal(t, "B", board[0].Name)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, 4, board[0].Level)
	assert.Equal(t, "C", board[1].Name)
	assert.Equal(t, "A", board[2].Name)
	assert.Equal(t, 3, board[2].Rank)
}

// TestLeaderboard_TruncatesToTopFifty caps the board size.
func TestLeaderboard_TruncatesToTopFifty(t *testing.T) {
	users := make([]models.User, 60)
	for i := range users {
		users[i] = models.User{ID: primitive.NewObjectID(), Role: models.RoleCitizen, Points: i}
	}
	board := Leaderboard(users)
	assert.Len(t, board, 50)
	assert.Equal(t, 59, board[0].Points)
}
