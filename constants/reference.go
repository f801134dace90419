package constants

// Zone is a geographic administrative grouping of districts.
type Zone struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Districts []string `json:"districts"`
}

// Ministry is a government department that owns issue resolution.
type Ministry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Departments []string `json:"departments"`
}

// IssueCategoryInfo maps a report category to the ministry that handles it.
type IssueCategoryInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Ministry string `json:"ministry"`
	Icon     string `json:"icon"`
}

// CitizenLevel is one tier of the points ladder. MaxPoints < 0 means open-ended.
type CitizenLevel struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	MinPoints int    `json:"minPoints"`
	MaxPoints int    `json:"maxPoints"`
}

// BadgeDefinition is a static achievement description; the grant predicate
// lives in the gamification service.
type BadgeDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var Zones = []Zone{
	{ID: "ranchi", Name: "Ranchi", Districts: []string{"Ranchi", "Khunti", "Lohardaga"}},
	{ID: "dhanbad", Name: "Dhanbad", Districts: []string{"Dhanbad", "Bokaro", "Giridih"}},
	{ID: "jamshedpur", Name: "Jamshedpur", Districts: []string{"East Singhbhum", "West Singhbhum", "Seraikela-Kharsawan"}},
	{ID: "hazaribagh", Name: "Hazaribagh", Districts: []string{"Hazaribagh", "Chatra", "Koderma"}},
	{ID: "deoghar", Name: "Deoghar", Districts: []string{"Deoghar", "Dumka", "Jamtara"}},
	{ID: "palamu", Name: "Palamu", Districts: []string{"Palamu", "Latehar", "Garhwa"}},
}

var Ministries = []Ministry{
	{ID: "urban_dev", Name: "Urban Development", Departments: []string{"Municipal Corporation", "Town Planning", "Housing"}},
	{ID: "rural_dev", Name: "Rural Development", Departments: []string{"Panchayati Raj", "Rural Infrastructure", "MGNREGA"}},
	{ID: "environment", Name: "Environment & Forest", Departments: []string{"Pollution Control", "Forest Conservation", "Wildlife"}},
	{ID: "transport", Name: "Transport", Departments: []string{"Road Transport", "Public Works", "Traffic Management"}},
	{ID: "water", Name: "Water Resources", Departments: []string{"Water Supply", "Irrigation", "Drainage"}},
}

var IssueCategories = []IssueCategoryInfo{
	{ID: "pothole", Name: "Pothole", Ministry: "transport", Icon: "🕳️"},
	{ID: "streetlight", Name: "Street Light", Ministry: "urban_dev", Icon: "💡"},
	{ID: "garbage", Name: "Garbage/Waste", Ministry: "urban_dev", Icon: "🗑️"},
	{ID: "water", Name: "Water Supply", Ministry: "water", Icon: "💧"},
	{ID: "electricity", Name: "Electricity", Ministry: "urban_dev", Icon: "⚡"},
	{ID: "other", Name: "Other", Ministry: "urban_dev", Icon: "📝"},
}

// CitizenLevels is ordered ascending; intervals are inclusive and contiguous,
// the last tier is open-ended.
var CitizenLevels = []CitizenLevel{
	{Level: 1, Name: "Newcomer", MinPoints: 0, MaxPoints: 99},
	{Level: 2, Name: "Contributor", MinPoints: 100, MaxPoints: 299},
	{Level: 3, Name: "Advocate", MinPoints: 300, MaxPoints: 599},
	{Level: 4, Name: "Champion", MinPoints: 600, MaxPoints: 999},
	{Level: 5, Name: "Guardian", MinPoints: 1000, MaxPoints: 1999},
	{Level: 6, Name: "Legend", MinPoints: 2000, MaxPoints: -1},
}

// PointEvent names a scoring action in the point system.
type PointEvent string

const (
	ReportSubmitted    PointEvent = "REPORT_SUBMITTED"
	ReportAcknowledged PointEvent = "REPORT_ACKNOWLEDGED"
	IssueResolved      PointEvent = "ISSUE_RESOLVED"
	FirstReportBonus   PointEvent = "FIRST_REPORT_BONUS"
	WeeklyStreak       PointEvent = "WEEKLY_STREAK"
	MonthlyStreak      PointEvent = "MONTHLY_STREAK"
)

var PointSystem = map[PointEvent]int{
	ReportSubmitted:    10,
	ReportAcknowledged: 5,
	IssueResolved:      50,
	FirstReportBonus:   25,
	WeeklyStreak:       20,
	MonthlyStreak:      100,
}

const (
	BadgeFirstReport       = "first_report"
	BadgePhotoReporter     = "photo_reporter"
	BadgeResolutionTracker = "resolution_tracker"
	BadgeCommunityLeader   = "community_leader"
)

var Badges = []BadgeDefinition{
	{ID: BadgeFirstReport, Name: "First Report", Description: "Submitted your first civic issue report", Icon: "🏁"},
	{ID: BadgePhotoReporter, Name: "Photo Reporter", Description: "Submitted 10 issue reports", Icon: "📷"},
	{ID: BadgeResolutionTracker, Name: "Resolution Tracker", Description: "10 of your reported issues were resolved", Icon: "✅"},
	{ID: BadgeCommunityLeader, Name: "Community Leader", Description: "Earned 1000 participation points", Icon: "🏆"},
}

// DefaultMinistry is used when a category has no routing entry. Inherited
// behavior kept for compatibility with existing issue records.
const DefaultMinistry = "urban_dev"

// MinistryForCategory returns the ministry that handles the given category.
func MinistryForCategory(category string) string {
	for _, c := range IssueCategories {
		if c.ID == category {
			return c.Ministry
		}
	}
	return DefaultMinistry
}

// IsValidCategory reports whether the category exists in reference data.
func IsValidCategory(category string) bool {
	for _, c := range IssueCategories {
		if c.ID == category {
			return true
		}
	}
	return false
}

// IsValidZone reports whether the zone id exists in reference data.
func IsValidZone(zone string) bool {
	for _, z := range Zones {
		if z.ID == zone {
			return true
		}
	}
	return false
}

// IsValidMinistry reports whether the ministry id exists in reference data.
func IsValidMinistry(ministry string) bool {
	for _, m := range Ministries {
		if m.ID == ministry {
			return true
		}
	}
	return false
}

// BadgeByID returns the badge definition for an id, if any.
func BadgeByID(id string) (BadgeDefinition, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return BadgeDefinition{}, false
}
