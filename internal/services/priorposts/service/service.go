// Package service builds prior-post context from a Source
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"postguard/internal/services/priorposts/domain"

	"golang.org/x/sync/errgroup"
)

// Config for the extractor
type Config struct {
	Posts   int
	Reposts int
}

// Service implements domain.ContextPort
type Service struct {
	src domain.Source
	cfg Config
}

// New constructs the extractor; zero counts take the defaults
func New(src domain.Source, cfg Config) *Service {
	if cfg.Posts <= 0 {
		cfg.Posts = domain.DefaultPosts
	}
	if cfg.Reposts <= 0 {
		cfg.Reposts = domain.DefaultReposts
	}
	return &Service{src: src, cfg: cfg}
}

// Extract fetches posts and reposts concurrently, merges them newest first and
// joins the texts with a blank line
func (s *Service) Extract(ctx context.Context, userID string) (string, error) {
	var posts, reposts []domain.Post

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.src.RecentPosts(gctx, userID, s.cfg.Posts)
		if err != nil {
			return fmt.Errorf("priorposts: posts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reposts, err = s.src.RecentReposts(gctx, userID, s.cfg.Reposts)
		if err != nil {
			return fmt.Errorf("priorposts: reposts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	return Merge(posts, reposts), nil
}

// Merge orders all posts newest first and joins their texts.
// A post id seen in an earlier list is skipped
func Merge(lists ...[]domain.Post) string {
	var all []domain.Post
	seen := map[string]bool{}
	for _, xs := range lists {
		for _, p := range xs {
			if p.ID != "" && seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			all = append(all, p)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	texts := make([]string, len(all))
	for i, p := range all {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n\n")
}
