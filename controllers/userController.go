package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"janawaaz-be/constants"
	"janawaaz-be/models"
	"janawaaz-be/services"
)

type UserController struct {
	users  *mongo.Collection
	issues *mongo.Collection
	rdb    *redis.Client
}

func NewUserController(db *mongo.Database, rdb *redis.Client) *UserController {
	return &UserController{
		users:  db.Collection("users"),
		issues: db.Collection("issues"),
		rdb:    rdb,
	}
}

// GetLeaderboard returns the top citizens by points. The Redis sorted set is
// consulted first; when it is cold the board is rebuilt from Mongo.
func (uc *UserController) GetLeaderboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries, err := uc.leaderboardFromRedis(ctx)
	if err != nil || len(entries) == 0 {
		if err != nil {
			log.Println("Leaderboard cache unavailable, falling back to Mongo:", err)
		}
		entries, err = uc.leaderboardFromMongo(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build leaderboard"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

func (uc *UserController) leaderboardFromRedis(ctx context.Context) ([]services.LeaderboardEntry, error) {
	scores, err := uc.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, 49).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]services.LeaderboardEntry, 0, len(scores))
	for i, z := range scores {
		idHex, ok := z.Member.(string)
		if !ok {
			continue
		}
		objID, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			continue
		}

		var user models.User
		if err := uc.users.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
			continue
		}

		points := int(z.Score)
		level, _ := services.LevelOf(points)
		entries = append(entries, services.LeaderboardEntry{
			Rank:   i + 1,
			UserID: idHex,
			Name:   user.Name,
			Points: points,
			Level:  level,
		})
	}
	return entries, nil
}

func (uc *UserController) leaderboardFromMongo(ctx context.Context) ([]services.LeaderboardEntry, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "points", Value: -1}}).
		SetLimit(50)

	cursor, err := uc.users.Find(ctx, bson.M{"role": models.RoleCitizen}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return services.Leaderboard(users), nil
}

// GetGamificationProfile returns the authenticated citizen's points, level
// progress, badges and report statistics.
func (uc *UserController) GetGamificationProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := uc.users.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Role != models.RoleCitizen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only citizens have a gamification profile"})
		return
	}

	reportCount, err := uc.issues.CountDocuments(ctx, bson.M{"reportedBy": objID})
	if err != nil {
		reportCount = 0
	}
	resolvedCount, err := uc.issues.CountDocuments(ctx, bson.M{"reportedBy": objID, "status": models.StatusResolved})
	if err != nil {
		resolvedCount = 0
	}

	badges := make([]gin.H, 0, len(user.Badges))
	for _, earned := range user.Badges {
		def, ok := constants.BadgeByID(earned.ID)
		if !ok {
			continue
		}
		badges = append(badges, gin.H{
			"id":          def.ID,
			"name":        def.Name,
			"description": def.Description,
			"icon":        def.Icon,
			"earnedAt":    earned.EarnedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"progress":      services.ProgressFor(user.Points, user.BadgeIDs()),
		"badges":        badges,
		"reportCount":   reportCount,
		"resolvedCount": resolvedCount,
	})
}

// GetReferenceData exposes the static zones/ministries/categories/levels/badges
// tables consumed by the frontend forms.
func (uc *UserController) GetReferenceData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"zones":      constants.Zones,
		"ministries": constants.Ministries,
		"categories": constants.IssueCategories,
		"levels":     constants.CitizenLevels,
		"badges":     constants.Badges,
	})
}
