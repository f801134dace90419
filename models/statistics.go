package models

// Statistics is the singleton platform-wide counters document,
// stored at statistics/global. AverageResolutionTime is in days.
type Statistics struct {
	IssuesReported        int64   `bson:"issuesReported" json:"issuesReported"`
	IssuesResolved        int64   `bson:"issuesResolved" json:"issuesResolved"`
	ActiveUsers           int64   `bson:"activeUsers" json:"activeUsers"`
	AverageResolutionTime float64 `bson:"averageResolutionTime" json:"averageResolutionTime"`
}
