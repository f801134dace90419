package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// UserRole enum, fixed at registration
type UserRole string

const (
	RoleCitizen       UserRole = "citizen"
	RoleZonalAdmin    UserRole = "zonal_admin"
	RoleMinistryAdmin UserRole = "ministry_admin"
)

// EarnedBadge records a badge grant; once written it is never revoked.
type EarnedBadge struct {
	ID       string    `bson:"id" json:"id"`
	EarnedAt time.Time `bson:"earnedAt" json:"earnedAt"`
}

// User is a citizen or administrator account.
// Zone is set only for zonal admins and Ministry only for ministry admins;
// the gamification fields (Points, Level, Badges) apply to citizens only.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      UserRole           `bson:"role" json:"role"`
	Zone      string             `bson:"zone,omitempty" json:"zone,omitempty"`
	Ministry  string             `bson:"ministry,omitempty" json:"ministry,omitempty"`
	Points    int                `bson:"points" json:"points"`
	Level     int                `bson:"level" json:"level"`
	Badges    []EarnedBadge      `bson:"badges" json:"badges"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}

// BadgeIDs returns the ids of the user's earned badges.
func (u *User) BadgeIDs() []string {
	ids := make([]string, 0, len(u.Badges))
	for _, b := range u.Badges {
		ids = append(ids, b.ID)
	}
	return ids
}

// EnsureUserEmailIndex creates a unique index on email
func EnsureUserEmailIndex(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	return err
}
