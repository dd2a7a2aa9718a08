// Package repo reads prior posts from postgres
package repo

import (
	"context"

	"postguard/internal/modkit/repokit"
	"postguard/internal/platform/store"
	"postguard/internal/services/priorposts/domain"
)

// DDL creates the prior_posts table and its lookup index
const DDL = `
CREATE TABLE IF NOT EXISTS prior_posts (
	user_id          text        NOT NULL,
	post_id          text        NOT NULL,
	text             text        NOT NULL,
	created_at       timestamptz NOT NULL,
	is_repost        boolean     NOT NULL DEFAULT false,
	original_post_id text,
	original_user_id text,
	PRIMARY KEY (user_id, post_id)
);
CREATE INDEX IF NOT EXISTS prior_posts_user_created_idx ON prior_posts (user_id, created_at DESC);
`

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[domain.Source] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) domain.Source { return &pg{q: q} }

// RecentPosts returns the user's latest posts, reposts included, newest first
func (s *pg) RecentPosts(ctx context.Context, userID string, limit int) ([]domain.Post, error) {
	return store.Many(ctx, s.q, scanPost, `
		SELECT post_id, text, created_at, is_repost,
		       coalesce(original_post_id, ''), coalesce(original_user_id, '')
		FROM prior_posts
		WHERE user_id = $1
		ORDER BY created_at DESC, post_id
		LIMIT $2`, userID, limit)
}

// RecentReposts returns only reposts, newest first
func (s *pg) RecentReposts(ctx context.Context, userID string, limit int) ([]domain.Post, error) {
	return store.Many(ctx, s.q, scanPost, `
		SELECT post_id, text, created_at, is_repost,
		       coalesce(original_post_id, ''), coalesce(original_user_id, '')
		FROM prior_posts
		WHERE user_id = $1 AND is_repost
		ORDER BY created_at DESC, post_id
		LIMIT $2`, userID, limit)
}

func scanPost(r store.Row) (domain.Post, error) {
	var p domain.Post
	err := r.Scan(&p.ID, &p.Text, &p.CreatedAt, &p.IsRepost, &p.OriginalPostID, &p.OriginalUserID)
	return p, err
}
