package service

import (
	"context"
	"time"

	"postguard/internal/services/priorposts/domain"
)

// Mock is a fixed feed relative to Now; the user id is ignored
type Mock struct {
	Now func() time.Time
}

func (m Mock) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// RecentPosts satisfies domain.Source
func (m Mock) RecentPosts(_ context.Context, _ string, limit int) ([]domain.Post, error) {
	now := m.now()
	xs := []domain.Post{
		{ID: "1", Text: "新しい映画を見てきました！とても面白かったです。", CreatedAt: now.Add(-time.Hour)},
		{ID: "2", Text: "今日の天気は最高ですね！公園でピクニックするのにぴったりです。", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "3", Text: "RT @friend: 新商品が発売されました！皆さんもぜひチェックしてください！", CreatedAt: now.Add(-3 * time.Hour), IsRepost: true},
		{ID: "4", Text: "明日の予定について考えています。何かおすすめがあれば教えてください！", CreatedAt: now.Add(-4 * time.Hour)},
	}
	return head(xs, limit), nil
}

// RecentReposts satisfies domain.Source
func (m Mock) RecentReposts(_ context.Context, _ string, limit int) ([]domain.Post, error) {
	now := m.now()
	xs := []domain.Post{
		{
			ID: "5", Text: "RT @user123: 素晴らしいニュースです！新しいプロジェクトが始まります。",
			CreatedAt: now.Add(-90 * time.Minute), IsRepost: true,
			OriginalPostID: "101", OriginalUserID: "user123",
		},
		{
			ID: "6", Text: "RT @user456: 今日のイベントは大成功でした！参加してくれた皆さんありがとうございます。",
			CreatedAt: now.Add(-150 * time.Minute), IsRepost: true,
			OriginalPostID: "102", OriginalUserID: "user456",
		},
	}
	return head(xs, limit), nil
}

func head(xs []domain.Post, n int) []domain.Post {
	if n < 0 {
		n = 0
	}
	if n < len(xs) {
		return xs[:n]
	}
	return xs
}
