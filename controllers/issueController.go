package controllers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"janawaaz-be/constants"
	"janawaaz-be/models"
	"janawaaz-be/realtime"
	"janawaaz-be/services"
)

const leaderboardKey = "leaderboard:points"

type IssueController struct {
	issues *mongo.Collection
	users  *mongo.Collection
	stats  *mongo.Collection
	rdb    *redis.Client
	hub    *realtime.Hub
}

func NewIssueController(db *mongo.Database, rdb *redis.Client, hub *realtime.Hub) *IssueController {
	return &IssueController{
		issues: db.Collection("issues"),
		users:  db.Collection("users"),
		stats:  db.Collection("statistics"),
		rdb:    rdb,
		hub:    hub,
	}
}

// CreateIssue handles a citizen reporting a new issue. The issue starts in
// submitted status with the submission timeline entry, gets routed to the
// owning ministry, and the reporter is credited participation points.
func (ic *IssueController) CreateIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reporterID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input struct {
		Title       string   `json:"title" binding:"required,max=200"`
		Description string   `json:"description" binding:"required,max=1000"`
		Category    string   `json:"category" binding:"required"`
		Priority    string   `json:"priority,omitempty"`
		Latitude    float64  `json:"latitude"`
		Longitude   float64  `json:"longitude"`
		Address     string   `json:"address" binding:"required,max=200"`
		Zone        string   `json:"zone" binding:"required"`
		Images      []string `json:"images,omitempty"`
		VoiceNote   *string  `json:"voiceNote,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !constants.IsValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}
	if !constants.IsValidZone(input.Zone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone"})
		return
	}
	if len(input.Images) > 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You can upload maximum 3 images per report"})
		return
	}

	priority := models.PriorityMedium
	if input.Priority != "" {
		switch models.IssuePriority(input.Priority) {
		case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent:
			priority = models.IssuePriority(input.Priority)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
	}

	now := time.Now()
	category := models.IssueCategory(input.Category)
	images := input.Images
	if images == nil {
		images = []string{}
	}

	issue := models.Issue{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Priority:    priority,
		Status:      models.StatusSubmitted,
		Location: models.Location{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Address:   input.Address,
			Zone:      input.Zone,
		},
		Images:     images,
		VoiceNote:  input.VoiceNote,
		ReportedBy: reporterID,
		Ministry:   services.RouteMinistry(category),
		CreatedAt:  now,
		UpdatedAt:  now,
		Timeline:   services.NewSubmission(userID.(string), now),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := ic.issues.InsertOne(ctx, issue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	ic.incrementStatistic(ctx, "issuesReported", 1)

	events := []constants.PointEvent{constants.ReportSubmitted}
	reportCount, err := ic.issues.CountDocuments(ctx, bson.M{"reportedBy": reporterID})
	if err != nil {
		reportCount = 0
	}
	if reportCount == 1 {
		events = append(events, constants.FirstReportBonus)
	}

	credit := ic.creditCitizen(ctx, reporterID, events...)

	if err := ic.hub.PublishIssue(ctx, &issue); err != nil {
		log.Println("Error publishing issue event:", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"issue":         issue,
		"pointsAwarded": credit.pointsAwarded,
		"newBadges":     credit.newBadges,
		"leveledUp":     credit.leveledUp,
		"level":         credit.level,
	})
}

// UpdateIssueStatus applies a lifecycle transition requested by an
// administrator. A resolved transition additionally credits the reporting
// citizen and bumps the global resolved counter.
func (ic *IssueController) UpdateIssueStatus(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	actorID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Status  string `json:"status" binding:"required"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a status and provide an update message"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = ic.issues.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	event, err := services.ApplyStatusChange(&issue, models.IssueStatus(input.Status), actorID.(string), input.Message, time.Now())
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		}
		return
	}

	update := bson.M{
		"$set": bson.M{
			"status":     issue.Status,
			"updatedAt":  issue.UpdatedAt,
			"assignedTo": actorID.(string),
		},
		"$push": bson.M{"timeline": event},
	}
	if _, err := ic.issues.UpdateOne(ctx, bson.M{"_id": issueID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		return
	}

	// Two independent writes: the counter bump and the citizen credit are
	// best-effort relative to the timeline append.
	switch issue.Status {
	case models.StatusResolved:
		ic.incrementStatistic(ctx, "issuesResolved", 1)
		ic.creditCitizen(ctx, issue.ReportedBy, constants.IssueResolved)
	case models.StatusAcknowledged:
		ic.creditCitizen(ctx, issue.ReportedBy, constants.ReportAcknowledged)
	}

	if err := ic.hub.PublishIssue(ctx, &issue); err != nil {
		log.Println("Error publishing issue event:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Issue status updated",
		"issue":   issue,
	})
}

// GetIssue retrieves an issue by its ID
func (ic *IssueController) GetIssue(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = ic.issues.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	c.JSON(http.StatusOK, issue)
}

// GetAllIssues retrieves issues with filtering, search, sorting and pagination
func (ic *IssueController) GetAllIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category := c.Query("category")
	status := c.Query("status")
	priority := c.Query("priority")
	zone := c.Query("zone")
	ministry := c.Query("ministry")
	search := c.Query("search")
	sortParam := c.DefaultQuery("sort", "newest")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{}
	if category != "" && category != "all" {
		filter["category"] = category
	}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	if priority != "" && priority != "all" {
		filter["priority"] = priority
	}
	if zone != "" && zone != "all" {
		filter["location.zone"] = zone
	}
	if ministry != "" && ministry != "all" {
		filter["ministry"] = ministry
	}
	if search != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": search, "$options": "i"}},
			{"description": bson.M{"$regex": search, "$options": "i"}},
			{"location.address": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	skip := (page - 1) * limit

	var sortOptions bson.D
	switch sortParam {
	case "oldest":
		sortOptions = bson.D{{Key: "createdAt", Value: 1}}
	case "newest":
		fallthrough
	default:
		sortOptions = bson.D{{Key: "createdAt", Value: -1}}
	}

	totalCount, err := ic.issues.CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count issues"})
		return
	}

	findOptions := options.Find().
		SetSort(sortOptions).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := ic.issues.Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode issues"})
		return
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": totalCount,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

// GetMyIssues retrieves the authenticated citizen's own reports
func (ic *IssueController) GetMyIssues(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reporterID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ic.listIssues(c, bson.M{"reportedBy": reporterID})
}

// GetIssuesByZone retrieves the issues located in the given zone
func (ic *IssueController) GetIssuesByZone(c *gin.Context) {
	zone := c.Param("zone")
	if !constants.IsValidZone(zone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone"})
		return
	}

	ic.listIssues(c, bson.M{"location.zone": zone})
}

// GetIssuesByMinistry retrieves the issues routed to the given ministry
func (ic *IssueController) GetIssuesByMinistry(c *gin.Context) {
	ministry := c.Param("ministry")
	if !constants.IsValidMinistry(ministry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry"})
		return
	}

	ic.listIssues(c, bson.M{"ministry": ministry})
}

func (ic *IssueController) listIssues(c *gin.Context, filter bson.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ic.issues.Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode issues"})
		return
	}

	c.JSON(http.StatusOK, issues)
}

// GetIssueAnalytics returns analytical data about issues
func (ic *IssueController) GetIssueAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Issues by category using aggregation
	categoryPipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$category",
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$project": bson.M{
				"name":  "$_id",
				"value": "$count",
				"_id":   0,
			},
		},
	}

	categoryCursor, err := ic.issues.Aggregate(ctx, categoryPipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get category analytics"})
		return
	}
	defer categoryCursor.Close(ctx)

	var issuesByCategory []bson.M
	if err := categoryCursor.All(ctx, &issuesByCategory); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode category analytics"})
		return
	}

	// Issues by status
	statusPipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$status",
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$project": bson.M{
				"name":  "$_id",
				"value": "$count",
				"_id":   0,
			},
		},
	}

	statusCursor, err := ic.issues.Aggregate(ctx, statusPipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get status analytics"})
		return
	}
	defer statusCursor.Close(ctx)

	var issuesByStatus []bson.M
	if err := statusCursor.All(ctx, &issuesByStatus); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode status analytics"})
		return
	}

	// Last 7 days data
	var last7Days []gin.H
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

		nextDate := date.AddDate(0, 0, 1)

		count, err := ic.issues.CountDocuments(ctx, bson.M{
			"createdAt": bson.M{
				"$gte": date,
				"$lt":  nextDate,
			},
		})
		if err != nil {
			count = 0
		}

		last7Days = append(last7Days, gin.H{
			"date":  date.Format("2006-01-02"),
			"count": count,
		})
	}

	totalIssues, err := ic.issues.CountDocuments(ctx, bson.M{})
	if err != nil {
		totalIssues = 0
	}

	openIssues, err := ic.issues.CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": []string{
			string(models.StatusSubmitted),
			string(models.StatusAcknowledged),
			string(models.StatusInProgress),
		}},
	})
	if err != nil {
		openIssues = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"issuesByCategory": issuesByCategory,
		"issuesByStatus":   issuesByStatus,
		"last7Days":        last7Days,
		"totalIssues":      totalIssues,
		"openIssues":       openIssues,
	})
}

// StreamIssues pushes live issue updates to the client as server-sent events
func (ic *IssueController) StreamIssues(c *gin.Context) {
	sub := ic.hub.Subscribe(c.Request.Context(), realtime.IssuesChannel)
	defer sub.Close()

	ch := sub.Channel()
	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("issue", msg.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

type creditResult struct {
	pointsAwarded int
	newBadges     []string
	leveledUp     bool
	level         int
}

// creditCitizen applies scoring events to a citizen's account: the point
// delta goes through a single atomic $inc, the derived level is stored
// alongside, new badges are granted append-only, and the Redis leaderboard
// is kept in step. Failures are logged, never surfaced to the caller.
func (ic *IssueController) creditCitizen(ctx context.Context, citizenID primitive.ObjectID, events ...constants.PointEvent) creditResult {
	result := creditResult{newBadges: []string{}}

	var user models.User
	if err := ic.users.FindOne(ctx, bson.M{"_id": citizenID}).Decode(&user); err != nil {
		log.Println("Error loading citizen for credit:", err)
		return result
	}
	if user.Role != models.RoleCitizen {
		return result
	}

	delta := 0
	leveledUp := false
	total := user.Points
	for _, e := range events {
		award := services.ApplyAward(total, e)
		delta += award.Points
		total = award.Total
		leveledUp = leveledUp || award.LeveledUp
	}
	newLevel, _ := services.LevelOf(total)
	result.pointsAwarded = delta
	result.leveledUp = leveledUp
	result.level = newLevel

	after := options.After
	var updated models.User
	err := ic.users.FindOneAndUpdate(ctx,
		bson.M{"_id": citizenID},
		bson.M{
			"$inc": bson.M{"points": delta},
			"$set": bson.M{"level": newLevel, "updatedAt": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&updated)
	if err != nil {
		log.Println("Error crediting citizen points:", err)
		return result
	}

	if err := ic.rdb.ZIncrBy(ctx, leaderboardKey, float64(delta), citizenID.Hex()).Err(); err != nil {
		log.Println("Error updating leaderboard:", err)
	}

	reportCount, err := ic.issues.CountDocuments(ctx, bson.M{"reportedBy": citizenID})
	if err != nil {
		reportCount = 0
	}
	resolvedCount, err := ic.issues.CountDocuments(ctx, bson.M{"reportedBy": citizenID, "status": models.StatusResolved})
	if err != nil {
		resolvedCount = 0
	}

	newBadges := services.CheckBadges(updated.BadgeIDs(), int(reportCount), int(resolvedCount), updated.Points)
	if len(newBadges) > 0 {
		grants := make([]models.EarnedBadge, 0, len(newBadges))
		now := time.Now()
		for _, id := range newBadges {
			grants = append(grants, models.EarnedBadge{ID: id, EarnedAt: now})
		}
		_, err := ic.users.UpdateOne(ctx,
			bson.M{"_id": citizenID},
			bson.M{"$push": bson.M{"badges": bson.M{"$each": grants}}},
		)
		if err != nil {
			log.Println("Error granting badges:", err)
		} else {
			result.newBadges = newBadges
		}
	}

	return result
}

// incrementStatistic bumps one counter on the global statistics document and
// republishes the snapshot. Best effort by design.
func (ic *IssueController) incrementStatistic(ctx context.Context, field string, delta int64) {
	_, err := ic.stats.UpdateOne(ctx,
		bson.M{"_id": "global"},
		bson.M{"$inc": bson.M{field: delta}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Println("Error updating statistics:", err)
		return
	}

	var stats models.Statistics
	if err := ic.stats.FindOne(ctx, bson.M{"_id": "global"}).Decode(&stats); err == nil {
		if err := ic.hub.PublishStats(ctx, stats); err != nil {
			log.Println("Error publishing statistics event:", err)
		}
	}
}
