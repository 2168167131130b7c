package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/media"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

const (
	diaryNotesMin          = 10
	defaultMaxDiaryPhotos  = 10
	defaultDiaryPhotoBytes = media.DefaultMaxBytes
)

type DiaryServiceConfig struct {
	Bucket        string
	MaxPhotos     int
	MaxPhotoBytes int64
}

type DiaryInput struct {
	DestinationID uuid.UUID
	Notes         string
	Rating        int
	VisitDate     *time.Time
}

type DiaryService struct {
	diaries      ports.DiaryRepository
	destinations ports.DestinationRepository
	storage      ports.ObjectStorage
	logger       zerolog.Logger

	bucket        string
	maxPhotos     int
	maxPhotoBytes int64
	now           func() time.Time
}

func NewDiaryService(
	diaries ports.DiaryRepository,
	destinations ports.DestinationRepository,
	storage ports.ObjectStorage,
	logger zerolog.Logger,
	cfg DiaryServiceConfig,
) *DiaryService {
	maxPhotos := cfg.MaxPhotos
	if maxPhotos <= 0 {
		maxPhotos = defaultMaxDiaryPhotos
	}
	maxBytes := cfg.MaxPhotoBytes
	if maxBytes <= 0 {
		maxBytes = defaultDiaryPhotoBytes
	}
	return &DiaryService{
		diaries:       diaries,
		destinations:  destinations,
		storage:       storage,
		logger:        logger.With().Str("component", "diary").Logger(),
		bucket:        strings.TrimSpace(cfg.Bucket),
		maxPhotos:     maxPhotos,
		maxPhotoBytes: maxBytes,
		now:           time.Now,
	}
}

func (s *DiaryService) Create(ctx context.Context, userID uuid.UUID, input DiaryInput, photos []media.Upload) (*domain.TravelDiary, error) {
	if err := ensureDestination(ctx, s.destinations, input.DestinationID); err != nil {
		return nil, err
	}
	diary := &domain.TravelDiary{UserID: userID, DestinationID: input.DestinationID}
	if err := s.applyInput(diary, input, len(photos)); err != nil {
		return nil, err
	}
	inspected, err := s.inspectPhotos(photos)
	if err != nil {
		return nil, err
	}

	urls, err := s.uploadPhotos(ctx, userID, inspected)
	if err != nil {
		return nil, err
	}
	diary.Photos = urls

	stored, err := s.diaries.Create(ctx, diary)
	if err != nil {
		s.removePhotos(ctx, urls)
		return nil, err
	}
	return stored, nil
}

func (s *DiaryService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.TravelDiary, error) {
	return s.owned(ctx, userID, id)
}

// Update rewrites the diary fields. New photos are appended to the existing ones.
func (s *DiaryService) Update(ctx context.Context, userID, id uuid.UUID, input DiaryInput, photos []media.Upload) (*domain.TravelDiary, error) {
	diary, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if input.DestinationID != uuid.Nil && input.DestinationID != diary.DestinationID {
		if err := ensureDestination(ctx, s.destinations, input.DestinationID); err != nil {
			return nil, err
		}
		diary.DestinationID = input.DestinationID
	}
	if err := s.applyInput(diary, input, len(diary.Photos)+len(photos)); err != nil {
		return nil, err
	}
	inspected, err := s.inspectPhotos(photos)
	if err != nil {
		return nil, err
	}

	urls, err := s.uploadPhotos(ctx, userID, inspected)
	if err != nil {
		return nil, err
	}
	diary.Photos = append(diary.Photos, urls...)

	updated, err := s.diaries.Update(ctx, diary)
	if err != nil {
		s.removePhotos(ctx, urls)
		if isNotFound(err) {
			return nil, ErrDiaryNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the diary row, then its photo objects on a best-effort basis.
func (s *DiaryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	diary, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.diaries.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrDiaryNotFound
		}
		return err
	}
	s.removePhotos(ctx, diary.Photos)
	return nil
}

func (s *DiaryService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.TravelDiary, error) {
	limit, offset = normalizePage(limit, offset)
	return s.diaries.ListByUser(ctx, userID, limit, offset)
}

func (s *DiaryService) owned(ctx context.Context, userID, id uuid.UUID) (*domain.TravelDiary, error) {
	diary, err := s.diaries.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDiaryNotFound
		}
		return nil, err
	}
	if diary.UserID != userID {
		return nil, ErrDiaryForbidden
	}
	return diary, nil
}

func (s *DiaryService) applyInput(diary *domain.TravelDiary, input DiaryInput, photoCount int) error {
	fields := fieldErrors{}
	notes := strings.TrimSpace(input.Notes)
	validateLength(fields, "notes", notes, diaryNotesMin, 0)
	validateRating(fields, "rating", input.Rating)
	if input.VisitDate == nil || input.VisitDate.IsZero() {
		fields.add("visit_date", "is required")
	}
	if photoCount > s.maxPhotos {
		fields.add("photos", fmt.Sprintf("at most %d photos allowed", s.maxPhotos))
	}
	if err := fields.err(); err != nil {
		return err
	}
	diary.Notes = notes
	diary.Rating = input.Rating
	diary.VisitDate = input.VisitDate.UTC()
	return nil
}

func (s *DiaryService) inspectPhotos(photos []media.Upload) ([]*media.Photo, error) {
	inspected := make([]*media.Photo, 0, len(photos))
	for idx, upload := range photos {
		photo, err := media.Inspect(upload, s.maxPhotoBytes)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{
				"photos": fmt.Sprintf("photo %d: %s", idx+1, photoErrorMessage(err)),
			}}
		}
		inspected = append(inspected, photo)
	}
	return inspected, nil
}

func (s *DiaryService) uploadPhotos(ctx context.Context, userID uuid.UUID, photos []*media.Photo) ([]string, error) {
	if len(photos) == 0 {
		return nil, nil
	}
	if s.storage == nil {
		return nil, errors.New("diary photo storage is not configured")
	}
	stamp := s.now().UTC().Format("20060102T150405Z")
	urls := make([]string, 0, len(photos))
	for idx, photo := range photos {
		objectKey := fmt.Sprintf("diaries/%s/%s_%d_%s%s", userID.String(), stamp, idx, uuid.NewString()[:8], photo.Extension)
		url, err := s.storage.Upload(ctx, s.bucket, objectKey, photo.ContentType, bytes.NewReader(photo.Bytes), int64(len(photo.Bytes)))
		if err != nil {
			s.removePhotos(ctx, urls)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *DiaryService) removePhotos(ctx context.Context, urls []string) {
	if s.storage == nil {
		return
	}
	for _, url := range urls {
		objectKey := objectKeyFromURL(s.bucket, url)
		if objectKey == "" {
			continue
		}
		if err := s.storage.Remove(ctx, s.bucket, objectKey); err != nil {
			s.logger.Warn().Err(err).Str("object", objectKey).Msg("failed to remove diary photo")
		}
	}
}

// objectKeyFromURL recovers the object name from a URL built as
// <base>/<bucket>/<object>.
func objectKeyFromURL(bucket, url string) string {
	marker := "/" + bucket + "/"
	idx := strings.Index(url, marker)
	if bucket == "" || idx < 0 {
		return ""
	}
	return url[idx+len(marker):]
}

func photoErrorMessage(err error) string {
	switch {
	case errors.Is(err, media.ErrEmpty):
		return "file is empty"
	case errors.Is(err, media.ErrTooLarge):
		return "file is too large"
	case errors.Is(err, media.ErrUnsupported):
		return "must be a JPEG, PNG, GIF or WebP image"
	default:
		return "could not be read"
	}
}
