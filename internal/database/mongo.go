// Package database provides the document-store connection for the service.
package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/amrsalem/go-user-service/internal/config"
)

// passwordPlaceholder is substituted in the URI template so the secret
// never lives in the template itself.
const passwordPlaceholder = "<db_password>"

// Connect establishes and verifies the document-store connection.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	uri := strings.Replace(cfg.URI, passwordPlaceholder, url.QueryEscape(cfg.Password), 1)

	timeout := time.Duration(cfg.Timeout) * time.Second
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect to document store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	return client, nil
}
