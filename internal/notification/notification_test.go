package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/notification/mocks"
	pmocks "github.com/tienchinh21/bkasim-cms/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

var testEvent = &domain.Event{
	ID:        "e1",
	Title:     "Hội thảo",
	Address:   "Hà Nội",
	StartTime: time.Date(2026, 3, 1, 1, 30, 0, 0, time.UTC),
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0901234567", "84901234567"},
		{"+84901234567", "84901234567"},
		{"84901234567", "84901234567"},
		{" 090 123 4567 ", "84901234567"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), tt.in)
	}
}

func TestRenderParams(t *testing.T) {
	mapping := map[string]string{
		"title":   domain.SourceEventTitle,
		"time":    domain.SourceEventStartTime,
		"address": domain.SourceEventAddress,
		"name":    domain.SourceGuestName,
		"phone":   domain.SourceGuestPhone,
		"code":    domain.SourceCheckInCode,
		"other":   "event.secret",
	}
	to := domain.Recipient{Name: "An", Phone: "0901234567", CheckInCode: "ABCD2345"}

	got := RenderParams(mapping, testEvent, to)

	assert.Equal(t, map[string]string{
		"title":   "Hội thảo",
		"time":    "08:30 01/03/2026",
		"address": "Hà Nội",
		"name":    "An",
		"phone":   "0901234567",
		"code":    "ABCD2345",
		"other":   "",
	}, got)
}

func TestZNSClient_Send(t *testing.T) {
	var got znsRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, znsSendPath, r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	z := NewZNSClient(ZNSConfig{BaseURL: srv.URL + "/", APIKey: "key", Timeout: time.Second})

	err := z.Send(context.Background(), "tpl-1", "0901234567", map[string]string{"code": "ABCD2345"})

	require.NoError(t, err)
	assert.Equal(t, "Bearer key", auth)
	assert.Equal(t, "84901234567", got.Phone)
	assert.Equal(t, "tpl-1", got.TemplateID)
	assert.Equal(t, "ABCD2345", got.TemplateData["code"])
	assert.NotEmpty(t, got.TrackingID)
}

func TestZNSClient_Send_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	z := NewZNSClient(ZNSConfig{BaseURL: srv.URL, Timeout: time.Second, Retries: 2, RetryBackoff: time.Millisecond})

	err := z.Send(context.Background(), "tpl-1", "0901234567", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway down")
	assert.EqualValues(t, 3, calls.Load())
}

func TestZNSClient_Send_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad template", http.StatusBadRequest)
	}))
	defer srv.Close()

	z := NewZNSClient(ZNSConfig{BaseURL: srv.URL, Timeout: time.Second, Retries: 2, RetryBackoff: time.Millisecond})

	err := z.Send(context.Background(), "tpl-1", "0901234567", nil)

	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestZNSClient_Enabled(t *testing.T) {
	assert.False(t, NewZNSClient(ZNSConfig{}).Enabled())
	assert.True(t, NewZNSClient(ZNSConfig{BaseURL: "http://zns"}).Enabled())
}

func TestDispatcher_NotifyGuestApproved(t *testing.T) {
	templates := pmocks.NewMockTemplateRepo(t)
	sender := mocks.NewMockTemplateSender(t)
	alerter := mocks.NewMockAdminAlerter(t)

	sender.EXPECT().Enabled().Return(true)
	templates.EXPECT().GetByTrigger(mock.Anything, domain.TriggerGuestApproved).Return(&domain.NotificationTemplate{
		TriggerKey:   domain.TriggerGuestApproved,
		TemplateID:   "tpl-1",
		ParamMapping: map[string]string{"code": domain.SourceCheckInCode, "event": domain.SourceEventTitle},
		IsEnabled:    true,
	}, nil)
	sender.EXPECT().Send(mock.Anything, "tpl-1", "0901234567", map[string]string{
		"code":  "GUEST234",
		"event": "Hội thảo",
	}).Return(nil)

	d := NewDispatcher(templates, sender, alerter, newTestLogger(t))
	d.NotifyGuestApproved(context.Background(), testEvent, &domain.GuestList{
		GuestName: "An", GuestPhone: "0901234567", CheckInCode: "GUEST234",
	})
}

func TestDispatcher_NotifyRegistrationCreated_SkipCases(t *testing.T) {
	reg := &domain.EventRegistration{Name: "An", PhoneNumber: "0901234567", CheckInCode: "ABCD2345"}

	t.Run("gateway disabled", func(t *testing.T) {
		templates := pmocks.NewMockTemplateRepo(t)
		sender := mocks.NewMockTemplateSender(t)
		sender.EXPECT().Enabled().Return(false)

		NewDispatcher(templates, sender, mocks.NewMockAdminAlerter(t), newTestLogger(t)).
			NotifyRegistrationCreated(context.Background(), testEvent, reg)
	})

	t.Run("no template", func(t *testing.T) {
		templates := pmocks.NewMockTemplateRepo(t)
		sender := mocks.NewMockTemplateSender(t)
		sender.EXPECT().Enabled().Return(true)
		templates.EXPECT().GetByTrigger(mock.Anything, domain.TriggerRegistrationCreated).Return(nil, domain.ErrTemplateNotFound)

		NewDispatcher(templates, sender, mocks.NewMockAdminAlerter(t), newTestLogger(t)).
			NotifyRegistrationCreated(context.Background(), testEvent, reg)
	})

	t.Run("template disabled", func(t *testing.T) {
		templates := pmocks.NewMockTemplateRepo(t)
		sender := mocks.NewMockTemplateSender(t)
		sender.EXPECT().Enabled().Return(true)
		templates.EXPECT().GetByTrigger(mock.Anything, domain.TriggerRegistrationCreated).
			Return(&domain.NotificationTemplate{TemplateID: "tpl-2", IsEnabled: false}, nil)

		NewDispatcher(templates, sender, mocks.NewMockAdminAlerter(t), newTestLogger(t)).
			NotifyRegistrationCreated(context.Background(), testEvent, reg)
	})

	t.Run("send error is logged", func(t *testing.T) {
		templates := pmocks.NewMockTemplateRepo(t)
		sender := mocks.NewMockTemplateSender(t)
		sender.EXPECT().Enabled().Return(true)
		templates.EXPECT().GetByTrigger(mock.Anything, domain.TriggerRegistrationCreated).
			Return(&domain.NotificationTemplate{TemplateID: "tpl-2", IsEnabled: true}, nil)
		sender.EXPECT().Send(mock.Anything, "tpl-2", "0901234567", map[string]string{}).Return(errors.New("timeout"))

		NewDispatcher(templates, sender, mocks.NewMockAdminAlerter(t), newTestLogger(t)).
			NotifyRegistrationCreated(context.Background(), testEvent, reg)
	})
}

func TestDispatcher_NotifyGuestAwaitingApproval(t *testing.T) {
	alerter := mocks.NewMockAdminAlerter(t)
	guest := &domain.GuestList{ID: "g1"}
	alerter.EXPECT().AlertGuestAwaitingApproval(mock.Anything, testEvent, guest).Return()

	d := NewDispatcher(pmocks.NewMockTemplateRepo(t), mocks.NewMockTemplateSender(t), alerter, newTestLogger(t))
	d.NotifyGuestAwaitingApproval(context.Background(), testEvent, guest)
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", []int64{1, 2}, newTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		n.AlertGuestAwaitingApproval(context.Background(), testEvent, &domain.GuestList{GuestName: "An"})
	})
}

func TestAwaitingApprovalText_EscapesMarkdown(t *testing.T) {
	event := &domain.Event{Title: "Hội_thảo *AI*", StartTime: testEvent.StartTime}
	guest := &domain.GuestList{GuestName: "[Nguyễn] `An`", GuestPhone: "0901_234"}

	text := awaitingApprovalText(event, guest)

	assert.True(t, strings.HasPrefix(text, "*Khách mời chờ duyệt*\n\n"))
	assert.Contains(t, text, `Sự kiện: Hội\_thảo \*AI\*`)
	assert.Contains(t, text, "Khách: \\[Nguyễn] \\`An\\` (0901\\_234)")
	assert.Contains(t, text, "Thời gian: 08:30 01/03/2026")
}
