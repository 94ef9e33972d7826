package services

import (
	"context"
	"strings"

	"companion/internal/models/response_models"
	"companion/pkg/utils"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type EntertainmentServiceInterface interface {
	SearchVideos(ctx context.Context, query string) ([]response_models.VideoResult, error)
}

type EntertainmentService struct {
	apiKey string
	logger *zap.SugaredLogger
}

func NewEntertainmentService(apiKey string, logger *zap.SugaredLogger) EntertainmentServiceInterface {
	return &EntertainmentService{apiKey: apiKey, logger: logger}
}

func (s *EntertainmentService) SearchVideos(ctx context.Context, query string) ([]response_models.VideoResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrEmptyQuery
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		s.logger.Errorw("failed to create YouTube client", "error", err)
		return nil, utils.ErrUpstreamFailure
	}

	call := service.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(10).
		Type("video")

	resp, err := call.Context(ctx).Do()
	if err != nil {
		s.logger.Errorw("YouTube search failed", "query", query, "error", err)
		return nil, utils.ErrUpstreamFailure
	}

	videos := make([]response_models.VideoResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		result := response_models.VideoResult{
			VideoID: item.Id.VideoId,
			Title:   item.Snippet.Title,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
			result.Thumbnail = item.Snippet.Thumbnails.Default.Url
		}
		videos = append(videos, result)
	}

	return videos, nil
}
