package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// WorkbookRenderer turns statistics into an xlsx document.
type WorkbookRenderer interface {
	Render(stats *domain.EventStatistics) ([]byte, error)
}

type StatisticsService struct {
	eventRepo ports.EventRepo
	regRepo   ports.RegistrationRepo
	guestRepo ports.GuestRepo
	fieldRepo ports.CustomFieldRepo
	valueRepo ports.CustomFieldValueRepo
	renderer  WorkbookRenderer
	logger    logger.Logger
}

func NewStatisticsService(
	eventRepo ports.EventRepo,
	regRepo ports.RegistrationRepo,
	guestRepo ports.GuestRepo,
	fieldRepo ports.CustomFieldRepo,
	valueRepo ports.CustomFieldValueRepo,
	renderer WorkbookRenderer,
	logger logger.Logger,
) *StatisticsService {
	return &StatisticsService{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		guestRepo: guestRepo,
		fieldRepo: fieldRepo,
		valueRepo: valueRepo,
		renderer:  renderer,
		logger:    logger,
	}
}

func (s *StatisticsService) Statistics(ctx context.Context, eventID string) (*domain.EventStatistics, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	regs, err := s.regRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	guests, err := s.guestRepo.ListApprovedByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list approved guests: %w", err)
	}

	fields, err := s.fieldRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list custom fields: %w", err)
	}
	liveNames := make(map[string]string, len(fields))
	for _, f := range fields {
		liveNames[f.ID] = f.FieldName
	}

	values, err := s.valuesByOwner(ctx, regs, guests, liveNames)
	if err != nil {
		return nil, err
	}

	stats := &domain.EventStatistics{
		Event:        event,
		Participants: make([]*domain.Participant, 0, len(regs)+len(guests)),
	}

	for _, r := range regs {
		p := &domain.Participant{
			Source:       domain.SourceRegistration,
			ID:           r.ID,
			Name:         r.Name,
			Phone:        r.PhoneNumber,
			Email:        r.Email,
			CheckInCode:  r.CheckInCode,
			CheckedIn:    r.Status == domain.RegistrationStatusCheckedIn,
			Cancelled:    r.Status == domain.RegistrationStatusCancelled,
			CheckInTime:  r.CheckInTime,
			RegisteredAt: r.CreatedAt,
			CustomFields: values[r.ID],
		}
		stats.Participants = append(stats.Participants, p)
	}
	for _, g := range guests {
		p := &domain.Participant{
			Source:       domain.SourceGuest,
			ID:           g.ID,
			Name:         g.GuestName,
			Phone:        g.GuestPhone,
			Email:        g.GuestEmail,
			CheckInCode:  g.CheckInCode,
			CheckedIn:    g.CheckInStatus,
			CheckInTime:  g.CheckInTime,
			RegisteredAt: g.CreatedAt,
			CustomFields: values[g.ID],
		}
		stats.Participants = append(stats.Participants, p)
	}

	names := make(map[string]struct{})
	for _, p := range stats.Participants {
		for name := range p.CustomFields {
			names[name] = struct{}{}
		}
		if p.Cancelled {
			stats.Cancelled++
			continue
		}
		stats.Registered++
		if p.CheckedIn {
			stats.CheckedIn++
		}
	}
	stats.NotCheckedIn = stats.Registered - stats.CheckedIn
	stats.AttendanceRate = domain.AttendanceRate(stats.CheckedIn, stats.Registered)
	stats.FieldNames = orderedFieldNames(fields, names)

	return stats, nil
}

// valuesByOwner loads custom field values for both participant sources, keyed
// by owner id and then by display name.
func (s *StatisticsService) valuesByOwner(
	ctx context.Context,
	regs []*domain.EventRegistration,
	guests []*domain.GuestList,
	liveNames map[string]string,
) (map[string]map[string]string, error) {
	out := make(map[string]map[string]string)
	put := func(owner string, v *domain.EventCustomFieldValue) {
		name := v.FieldName
		if live, ok := liveNames[v.EventCustomFieldID]; ok && live != "" {
			name = live
		}
		if out[owner] == nil {
			out[owner] = make(map[string]string)
		}
		out[owner][name] = v.FieldValue
	}

	if len(regs) > 0 {
		ids := make([]string, 0, len(regs))
		for _, r := range regs {
			ids = append(ids, r.ID)
		}
		values, err := s.valueRepo.ListByRegistrations(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list registration values: %w", err)
		}
		for _, v := range values {
			if v.EventRegistrationID != nil {
				put(*v.EventRegistrationID, v)
			}
		}
	}

	if len(guests) > 0 {
		ids := make([]string, 0, len(guests))
		for _, g := range guests {
			ids = append(ids, g.ID)
		}
		values, err := s.valueRepo.ListByGuests(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list guest values: %w", err)
		}
		for _, v := range values {
			if v.GuestListID != nil {
				put(*v.GuestListID, v)
			}
		}
	}

	return out, nil
}

// orderedFieldNames lists every live field name once in sort order, then the
// names only known from stored values alphabetically.
func orderedFieldNames(fields []*domain.EventCustomField, seen map[string]struct{}) []string {
	sorted := make([]*domain.EventCustomField, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SortOrder < sorted[j].SortOrder })

	out := make([]string, 0, len(sorted)+len(seen))
	emitted := make(map[string]struct{}, len(sorted))
	for _, f := range sorted {
		if _, dup := emitted[f.FieldName]; dup {
			continue
		}
		emitted[f.FieldName] = struct{}{}
		out = append(out, f.FieldName)
		delete(seen, f.FieldName)
	}
	rest := make([]string, 0, len(seen))
	for name := range seen {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Export renders the statistics workbook and a file name for download.
func (s *StatisticsService) Export(ctx context.Context, eventID string) ([]byte, string, error) {
	stats, err := s.Statistics(ctx, eventID)
	if err != nil {
		return nil, "", err
	}

	data, err := s.renderer.Render(stats)
	if err != nil {
		return nil, "", fmt.Errorf("render workbook: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "statistics exported",
		logger.String("event_id", eventID),
		logger.Int("participants", len(stats.Participants)),
	)

	return data, fmt.Sprintf("thong-ke-su-kien-%s.xlsx", eventID), nil
}
