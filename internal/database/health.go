package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// HealthChecker reports document-store connectivity for the health endpoint.
type HealthChecker struct {
	client *mongo.Client
}

// NewHealthChecker creates a document-store health checker.
func NewHealthChecker(client *mongo.Client) *HealthChecker {
	return &HealthChecker{client: client}
}

// Name implements handlers.HealthChecker.
func (h *HealthChecker) Name() string {
	return "database"
}

// Ping implements handlers.HealthChecker.
func (h *HealthChecker) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return h.client.Ping(ctx, readpref.Primary())
}
