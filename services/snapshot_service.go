package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Dosada05/league-stats/models"
	"github.com/Dosada05/league-stats/storage"
)

const (
	snapshotPrefix    = "snapshots/ratings/"
	snapshotLatestKey = snapshotPrefix + "latest.json"
	snapshotStamp     = "20060102T150405Z"
)

type SnapshotService interface {
	// PublishRatings uploads the rating tables of every mode as a versioned
	// document and repoints latest.json at the same content.
	PublishRatings(ctx context.Context, scope string) (*models.SnapshotResult, error)
}

type snapshotService struct {
	stats    StatsService
	uploader storage.ObjectUploader
	logger   *slog.Logger
	now      func() time.Time
}

// NewSnapshotService accepts a nil uploader; publishing then fails with ErrSnapshotsDisabled.
func NewSnapshotService(stats StatsService, uploader storage.ObjectUploader, logger *slog.Logger) SnapshotService {
	return &snapshotService{stats: stats, uploader: uploader, logger: logger, now: time.Now}
}

func (s *snapshotService) PublishRatings(ctx context.Context, scope string) (*models.SnapshotResult, error) {
	if s.uploader == nil {
		return nil, ErrSnapshotsDisabled
	}

	tables, err := s.stats.AllRatings(ctx, scope)
	if err != nil {
		return nil, err
	}
	generatedAt := s.now().UTC()
	doc := models.RatingsSnapshot{GeneratedAt: generatedAt, Tables: tables}
	if len(tables) > 0 {
		doc.Scope = tables[0].Scope
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrSnapshotPublishFailed, err)
	}

	key := fmt.Sprintf("%s%s-%s.json", snapshotPrefix, generatedAt.Format(snapshotStamp), uuid.NewString())
	versioned, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotPublishFailed, err)
	}

	latest, err := s.uploader.Upload(ctx, snapshotLatestKey, "application/json", bytes.NewReader(body))
	if err != nil {
		// Leave no orphan that latest.json never pointed at.
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to remove orphaned snapshot", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("%w: latest: %v", ErrSnapshotPublishFailed, err)
	}

	s.logger.Info("ratings snapshot published", "key", versioned.Key, "bytes", len(body))
	return &models.SnapshotResult{
		Key:         versioned.Key,
		URL:         versioned.Location,
		LatestURL:   latest.Location,
		GeneratedAt: generatedAt,
	}, nil
}
