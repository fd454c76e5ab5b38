package notification

import (
	"context"
	"errors"
	"time"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

var vietnamZone = time.FixedZone("ICT", 7*60*60)

func formatEventTime(t time.Time) string {
	return t.In(vietnamZone).Format("15:04 02/01/2006")
}

type templateSender interface {
	Enabled() bool
	Send(ctx context.Context, templateID, phone string, params map[string]string) error
}

type adminAlerter interface {
	AlertGuestAwaitingApproval(ctx context.Context, event *domain.Event, guest *domain.GuestList)
}

// Dispatcher routes participant events to admins over Telegram and to the
// participant over ZNS using the configured templates.
type Dispatcher struct {
	templates ports.TemplateRepo
	zns       templateSender
	admins    adminAlerter
	logger    logger.Logger
}

func NewDispatcher(templates ports.TemplateRepo, zns templateSender, admins adminAlerter, logger logger.Logger) *Dispatcher {
	return &Dispatcher{templates: templates, zns: zns, admins: admins, logger: logger}
}

func (d *Dispatcher) NotifyGuestAwaitingApproval(ctx context.Context, event *domain.Event, guest *domain.GuestList) {
	d.admins.AlertGuestAwaitingApproval(ctx, event, guest)
}

func (d *Dispatcher) NotifyGuestApproved(ctx context.Context, event *domain.Event, guest *domain.GuestList) {
	d.sendTemplate(ctx, domain.TriggerGuestApproved, event, domain.Recipient{
		Name:        guest.GuestName,
		Phone:       guest.GuestPhone,
		CheckInCode: guest.CheckInCode,
	})
}

func (d *Dispatcher) NotifyRegistrationCreated(ctx context.Context, event *domain.Event, reg *domain.EventRegistration) {
	d.sendTemplate(ctx, domain.TriggerRegistrationCreated, event, domain.Recipient{
		Name:        reg.Name,
		Phone:       reg.PhoneNumber,
		CheckInCode: reg.CheckInCode,
	})
}

func (d *Dispatcher) sendTemplate(ctx context.Context, key domain.TriggerKey, event *domain.Event, to domain.Recipient) {
	if !d.zns.Enabled() {
		d.logger.LogAttrs(ctx, logger.DebugLevel, "zns skipped (gateway not configured)", logger.String("trigger", string(key)))
		return
	}

	tpl, err := d.templates.GetByTrigger(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			d.logger.LogAttrs(ctx, logger.DebugLevel, "zns skipped (no template)", logger.String("trigger", string(key)))
			return
		}
		d.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to load notification template",
			logger.String("trigger", string(key)),
			logger.String("error", err.Error()),
		)
		return
	}
	if !tpl.IsEnabled {
		d.logger.LogAttrs(ctx, logger.DebugLevel, "zns skipped (template disabled)", logger.String("trigger", string(key)))
		return
	}

	params := RenderParams(tpl.ParamMapping, event, to)
	if err = d.zns.Send(ctx, tpl.TemplateID, to.Phone, params); err != nil {
		d.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to send zns message",
			logger.String("trigger", string(key)),
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	d.logger.LogAttrs(ctx, logger.InfoLevel, "zns message sent",
		logger.String("trigger", string(key)),
		logger.String("event_id", event.ID),
	)
}

// RenderParams resolves every template parameter from its mapped source.
// Unknown sources render as an empty string.
func RenderParams(mapping map[string]string, event *domain.Event, to domain.Recipient) map[string]string {
	out := make(map[string]string, len(mapping))
	for param, source := range mapping {
		var v string
		switch source {
		case domain.SourceEventTitle:
			v = event.Title
		case domain.SourceEventStartTime:
			v = formatEventTime(event.StartTime)
		case domain.SourceEventAddress:
			v = event.Address
		case domain.SourceGuestName:
			v = to.Name
		case domain.SourceGuestPhone:
			v = to.Phone
		case domain.SourceCheckInCode:
			v = to.CheckInCode
		}
		out[param] = v
	}
	return out
}
