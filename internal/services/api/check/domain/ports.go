package domain

import "context"

// Service runs one check end to end
type Service interface {
	CheckText(ctx context.Context, in TextRequest) (CheckResponse, error)
	CheckImage(ctx context.Context, in ImageRequest) (CheckResponse, error)
	CheckVideo(ctx context.Context, in VideoRequest) (VideoResponse, error)
}
