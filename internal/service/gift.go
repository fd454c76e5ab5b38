package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/tienchinh21/bkasim-cms/pkg/validator"
	"github.com/wb-go/wbf/logger"
)

const maxGiftImages = 5

type GiftService struct {
	giftRepo  ports.GiftRepo
	eventRepo ports.EventRepo
	storage   ports.ImageStorage
	activity  ports.ActivityRecorder
	logger    logger.Logger
	now       func() time.Time
}

func NewGiftService(
	giftRepo ports.GiftRepo,
	eventRepo ports.EventRepo,
	storage ports.ImageStorage,
	activity ports.ActivityRecorder,
	logger logger.Logger,
) *GiftService {
	return &GiftService{
		giftRepo:  giftRepo,
		eventRepo: eventRepo,
		storage:   storage,
		activity:  activity,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *GiftService) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventGift, error) {
	return s.giftRepo.ListByEvent(ctx, eventID)
}

func (s *GiftService) Create(ctx context.Context, caller domain.Caller, input domain.GiftInput) (*domain.EventGift, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	if len(input.Images) > maxGiftImages {
		return nil, fmt.Errorf("%w: tối đa %d ảnh", domain.ErrValidation, maxGiftImages)
	}
	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	images, err := s.saveImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	gift := &domain.EventGift{
		ID:        uuid.New().String(),
		EventID:   input.EventID,
		GiftName:  input.GiftName,
		Quantity:  input.Quantity,
		Images:    images,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.giftRepo.Create(ctx, gift); err != nil {
		s.removeImages(ctx, images)
		return nil, fmt.Errorf("create gift: %w", err)
	}

	s.activity.Record(ctx, caller, domain.ActionCreate, domain.EntityGift, gift.ID)
	return gift, nil
}

// Update keeps the stored images listed in KeepImages, appends new uploads and
// removes the rest from storage after the row is saved.
func (s *GiftService) Update(ctx context.Context, caller domain.Caller, id string, input domain.GiftInput) (*domain.EventGift, error) {
	gift, err := s.giftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get gift: %w", err)
	}
	input.EventID = gift.EventID
	if err = validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	kept := make([]string, 0, len(input.KeepImages))
	for _, url := range input.KeepImages {
		if slices.Contains(gift.Images, url) && !slices.Contains(kept, url) {
			kept = append(kept, url)
		}
	}
	if len(kept)+len(input.Images) > maxGiftImages {
		return nil, fmt.Errorf("%w: tối đa %d ảnh", domain.ErrValidation, maxGiftImages)
	}

	added, err := s.saveImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, url := range gift.Images {
		if !slices.Contains(kept, url) {
			removed = append(removed, url)
		}
	}

	gift.GiftName = input.GiftName
	gift.Quantity = input.Quantity
	gift.Images = append(kept, added...)
	gift.UpdatedAt = s.now().UTC()

	if err = s.giftRepo.Update(ctx, gift); err != nil {
		s.removeImages(ctx, added)
		return nil, fmt.Errorf("update gift: %w", err)
	}
	s.removeImages(ctx, removed)

	s.activity.Record(ctx, caller, domain.ActionUpdate, domain.EntityGift, gift.ID)
	return gift, nil
}

func (s *GiftService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	gift, err := s.giftRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get gift: %w", err)
	}
	if err = s.giftRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete gift: %w", err)
	}
	s.removeImages(ctx, gift.Images)

	s.activity.Record(ctx, caller, domain.ActionDelete, domain.EntityGift, id)
	return nil
}

func (s *GiftService) saveImages(ctx context.Context, uploads []domain.Upload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	for _, u := range uploads {
		url, err := s.storage.Save(ctx, u)
		if err != nil {
			s.removeImages(ctx, urls)
			return nil, fmt.Errorf("save image %q: %w", u.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// removeImages is best effort; an orphaned file never fails the request.
func (s *GiftService) removeImages(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.storage.Delete(ctx, url); err != nil {
			s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to delete gift image",
				logger.String("url", url),
				logger.String("error", err.Error()),
			)
		}
	}
}
