package services

import (
	"sort"

	"janawaaz-be/constants"
	"janawaaz-be/models"
)

// LevelOf maps a point total to its tier. Every non-negative total falls in
// exactly one tier; negatives are clamped to the first.
func LevelOf(points int) (int, string) {
	for _, l := range constants.CitizenLevels {
		if points >= l.MinPoints && (l.MaxPoints < 0 || points <= l.MaxPoints) {
			return l.Level, l.Name
		}
	}
	first := constants.CitizenLevels[0]
	return first.Level, first.Name
}

// PointsFor returns the fixed award for a scoring event, 0 for unknown events.
func PointsFor(event constants.PointEvent) int {
	return constants.PointSystem[event]
}

// Award is the outcome of applying one scoring event to a point total.
type Award struct {
	Points    int
	Total     int
	LeveledUp bool
	NewLevel  int
	LevelName string
}

// ApplyAward computes the point delta for an event and detects a level-up by
// comparing the tier before and after. It persists nothing; the caller adds
// the delta to the stored total via the gateway's atomic increment.
func ApplyAward(pointsBefore int, event constants.PointEvent) Award {
	delta := PointsFor(event)
	total := pointsBefore + delta
	oldLevel, _ := LevelOf(pointsBefore)
	newLevel, name := LevelOf(total)
	return Award{
		Points:    delta,
		Total:     total,
		LeveledUp: newLevel != oldLevel,
		NewLevel:  newLevel,
		LevelName: name,
	}
}

// CheckBadges evaluates the badge predicates against current stats and returns
// the newly qualifying badge ids. Already-earned badges are never re-returned,
// so repeating the call with unchanged inputs yields nothing.
func CheckBadges(earned []string, reportCount, resolvedCount, points int) []string {
	has := make(map[string]bool, len(earned))
	for _, id := range earned {
		has[id] = true
	}

	newBadges := []string{}
	if reportCount >= 1 && !has[constants.BadgeFirstReport] {
		newBadges = append(newBadges, constants.BadgeFirstReport)
	}
	if reportCount >= 10 && !has[constants.BadgePhotoReporter] {
		newBadges = append(newBadges, constants.BadgePhotoReporter)
	}
	if resolvedCount >= 10 && !has[constants.BadgeResolutionTracker] {
		newBadges = append(newBadges, constants.BadgeResolutionTracker)
	}
	if points >= 1000 && !has[constants.BadgeCommunityLeader] {
		newBadges = append(newBadges, constants.BadgeCommunityLeader)
	}
	return newBadges
}

// Progress describes where a citizen sits on the points ladder.
type Progress struct {
	Points             int      `json:"points"`
	Level              int      `json:"level"`
	LevelName          string   `json:"levelName"`
	Badges             []string `json:"badges"`
	NextLevelPoints    int      `json:"nextLevelPoints"`
	CurrentLevelPoints int      `json:"currentLevelPoints"`
}

// ProgressFor summarizes a citizen's gamification state for display.
func ProgressFor(points int, earned []string) Progress {
	level, name := LevelOf(points)
	current := constants.CitizenLevels[0]
	for _, l := range constants.CitizenLevels {
		if l.Level == level {
			current = l
		}
	}
	next := points
	for _, l := range constants.CitizenLevels {
		if l.Level == level+1 {
			next = l.MinPoints
		}
	}
	if earned == nil {
		earned = []string{}
	}
	return Progress{
		Points:             points,
		Level:              level,
		LevelName:          name,
		Badges:             earned,
		NextLevelPoints:    next,
		CurrentLevelPoints: current.MinPoints,
	}
}

// LeaderboardEntry is one ranked citizen.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Level  int    `json:"level"`
}

const leaderboardSize = 50

// Leaderboard ranks citizens by points, highest first, truncated to the top 50.
// Non-citizen accounts are excluded.
func Leaderboard(users []models.User) []LeaderboardEntry {
	citizens := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleCitizen {
			citizens = append(citizens, u)
		}
	}
	sort.SliceStable(citizens, func(i, j int) bool {
		return citizens[i].Points > citizens[j].Points
	})
	if len(citizens) > leaderboardSize {
		citizens = citizens[:leaderboardSize]
	}

	entries := make([]LeaderboardEntry, 0, len(citizens))
	for i, u := range citizens {
		level, _ := LevelOf(u.Points)
		entries = append(entries, LeaderboardEntry{
			Rank:   i + 1,
			UserID: u.ID.Hex(),
			Name:   u.Name,
			Points: u.Points,
			Level:  level,
		})
	}
	return entries
}
