//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	"postguard/internal/modkit/repokit"
	"postguard/internal/platform/store/pgtest"
	"postguard/internal/services/priorposts/service"
)

func TestPG_RecentPostsAndContext(t *testing.T) {
	s := pgtest.Open(t, DDL)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	seed := []struct {
		id     string
		text   string
		age    time.Duration
		repost bool
	}{
		{"p1", "一件目", time.Hour, false},
		{"p2", "RT @a: 二件目", 90 * time.Minute, true},
		{"p3", "三件目", 2 * time.Hour, false},
		{"p4", "四件目", 3 * time.Hour, false},
		{"p5", "RT @b: 五件目", 4 * time.Hour, true},
	}
	for _, p := range seed {
		var origUser any
		if p.repost {
			origUser = "orig"
		}
		if _, err := s.PG.Exec(ctx,
			`INSERT INTO prior_posts (user_id, post_id, text, created_at, is_repost, original_user_id) VALUES ($1,$2,$3,$4,$5,$6)`,
			"alice", p.id, p.text, now.Add(-p.age), p.repost, origUser); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if _, err := s.PG.Exec(ctx,
		`INSERT INTO prior_posts (user_id, post_id, text, created_at) VALUES ('bob','x','他人の投稿',$1)`, now); err != nil {
		t.Fatalf("seed bob: %v", err)
	}

	src := repokit.MustBind(NewPG(), s.PG)

	posts, err := src.RecentPosts(ctx, "alice", 3)
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) != 3 || posts[0].ID != "p1" || posts[1].ID != "p2" || posts[2].ID != "p3" {
		t.Fatalf("posts %+v", posts)
	}

	reposts, err := src.RecentReposts(ctx, "alice", 2)
	if err != nil {
		t.Fatalf("reposts: %v", err)
	}
	if len(reposts) != 2 || reposts[1].ID != "p5" || reposts[1].OriginalUserID != "orig" {
		t.Fatalf("reposts %+v", reposts)
	}

	got, err := service.New(src, service.Config{}).Extract(ctx, "alice")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := "一件目\n\nRT @a: 二件目\n\n三件目\n\nRT @b: 五件目"
	if got != want {
		t.Fatalf("context %q", got)
	}
}
