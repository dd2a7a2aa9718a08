// Package domain defines prior posts and the context port built on them
package domain

import (
	"context"
	"time"
)

// Default fetch sizes for context extraction
const (
	DefaultPosts   = 3
	DefaultReposts = 2
)

// Post is one earlier post or repost by the author
type Post struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
	IsRepost       bool      `json:"isRepost"`
	OriginalPostID string    `json:"originalPostId,omitempty"`
	OriginalUserID string    `json:"originalUserId,omitempty"`
}

// Source lists a user's recent activity, newest first
type Source interface {
	RecentPosts(ctx context.Context, userID string, limit int) ([]Post, error)
	RecentReposts(ctx context.Context, userID string, limit int) ([]Post, error)
}

// ContextPort resolves the prior-post context for a user
type ContextPort interface {
	// Extract returns the merged context; errors are the caller's to swallow
	Extract(ctx context.Context, userID string) (string, error)
}

// Resolver applies the degrade policy: a failed lookup yields empty context and used=false
type Resolver interface {
	Resolve(ctx context.Context, userID string) (context string, used bool)
}

// Ports exposed by the priorposts module
type Ports struct {
	Context  ContextPort
	Resolver Resolver
}
