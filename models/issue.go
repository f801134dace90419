package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueCategory enum
type IssueCategory string

const (
	Pothole     IssueCategory = "pothole"
	Streetlight IssueCategory = "streetlight"
	Garbage     IssueCategory = "garbage"
	Water       IssueCategory = "water"
	Electricity IssueCategory = "electricity"
	Other       IssueCategory = "other"
)

// IssuePriority enum, assigned by the citizen at creation and never recomputed
type IssuePriority string

const (
	PriorityLow    IssuePriority = "low"
	PriorityMedium IssuePriority = "medium"
	PriorityHigh   IssuePriority = "high"
	PriorityUrgent IssuePriority = "urgent"
)

// IssueStatus enum
type IssueStatus string

const (
	StatusSubmitted    IssueStatus = "submitted"
	StatusAcknowledged IssueStatus = "acknowledged"
	StatusInProgress   IssueStatus = "in_progress"
	StatusResolved     IssueStatus = "resolved"
	StatusRejected     IssueStatus = "rejected"
)

// Location pins an issue to a point and its administrative zone
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address" json:"address"`
	Zone      string  `bson:"zone" json:"zone"`
}

// TimelineEvent is one immutable audit entry of an issue's status history.
// Entries are only ever appended, never mutated or reordered.
type TimelineEvent struct {
	ID        string      `bson:"id" json:"id"`
	Status    IssueStatus `bson:"status" json:"status"`
	Message   string      `bson:"message" json:"message"`
	Timestamp time.Time   `bson:"timestamp" json:"timestamp"`
	UpdatedBy string      `bson:"updatedBy" json:"updatedBy"`
}

// Issue represents a civic issue reported by a citizen.
// Ministry is derived from Category at creation and immutable afterwards;
// Status always mirrors the most recent timeline entry.
type Issue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    IssueCategory      `bson:"category" json:"category"`
	Priority    IssuePriority      `bson:"priority" json:"priority"`
	Status      IssueStatus        `bson:"status" json:"status"`
	Location    Location           `bson:"location" json:"location"`
	Images      []string           `bson:"images" json:"images"`
	VoiceNote   *string            `bson:"voiceNote,omitempty" json:"voiceNote,omitempty"`
	ReportedBy  primitive.ObjectID `bson:"reportedBy" json:"reportedBy"`
	AssignedTo  *string            `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Ministry    string             `bson:"ministry" json:"ministry"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
	Timeline    []TimelineEvent    `bson:"timeline" json:"timeline"`
}
