package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"janawaaz-be/models"
	"janawaaz-be/realtime"
)

type StatsController struct {
	stats *mongo.Collection
	hub   *realtime.Hub
}

func NewStatsController(db *mongo.Database, hub *realtime.Hub) *StatsController {
	return &StatsController{
		stats: db.Collection("statistics"),
		hub:   hub,
	}
}

// GetStatistics returns the global counters, initializing the singleton
// document on first read.
func (sc *StatsController) GetStatistics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var stats models.Statistics
	err := sc.stats.FindOne(ctx, bson.M{"_id": "global"}).Decode(&stats)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statistics"})
			return
		}

		stats = models.Statistics{}
		_, err := sc.stats.UpdateOne(ctx,
			bson.M{"_id": "global"},
			bson.M{"$setOnInsert": stats},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize statistics"})
			return
		}
	}

	c.JSON(http.StatusOK, stats)
}

// StreamStatistics pushes live counter updates as server-sent events
func (sc *StatsController) StreamStatistics(c *gin.Context) {
	sub := sc.hub.Subscribe(c.Request.Context(), realtime.StatsChannel)
	defer sub.Close()

	ch := sub.Channel()
	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("statistics", msg.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
