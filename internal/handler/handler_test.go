package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/handler/dto"
	hmocks "github.com/tienchinh21/bkasim-cms/internal/handler/mocks"
	"github.com/tienchinh21/bkasim-cms/internal/middleware"
	"github.com/tienchinh21/bkasim-cms/internal/router"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

type svcMocks struct {
	events        *hmocks.MockEventSvc
	statistics    *hmocks.MockStatisticsSvc
	registrations *hmocks.MockRegistrationSvc
	guests        *hmocks.MockGuestSvc
	customFields  *hmocks.MockCustomFieldSvc
	gifts         *hmocks.MockGiftSvc
	groups        *hmocks.MockGroupSvc
	sponsors      *hmocks.MockSponsorSvc
	templates     *hmocks.MockTemplateSvc
	activity      *hmocks.MockActivitySvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		events:        hmocks.NewMockEventSvc(t),
		statistics:    hmocks.NewMockStatisticsSvc(t),
		registrations: hmocks.NewMockRegistrationSvc(t),
		guests:        hmocks.NewMockGuestSvc(t),
		customFields:  hmocks.NewMockCustomFieldSvc(t),
		gifts:         hmocks.NewMockGiftSvc(t),
		groups:        hmocks.NewMockGroupSvc(t),
		sponsors:      hmocks.NewMockSponsorSvc(t),
		templates:     hmocks.NewMockTemplateSvc(t),
		activity:      hmocks.NewMockActivitySvc(t),
	}

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	h := NewHandler(Services{
		Events:        m.events,
		Statistics:    m.statistics,
		Registrations: m.registrations,
		Guests:        m.guests,
		CustomFields:  m.customFields,
		Gifts:         m.gifts,
		Groups:        m.groups,
		Sponsors:      m.sponsors,
		Templates:     m.templates,
		Activity:      m.activity,
	}, log)

	return m, router.InitRouter(router.Options{Mode: "test", JWTSecret: testSecret}, h)
}

func token(t *testing.T, userZaloID, role string) string {
	t.Helper()
	claims := middleware.Claims{
		UserZaloID: userZaloID,
		Phone:      "0901234567",
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func do(t *testing.T, r http.Handler, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// --- Events ---

func TestHandler_GetEventPage_Anonymous(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().List(mock.Anything, domain.Caller{}, mock.MatchedBy(func(q domain.EventQuery) bool {
		return q.Draw == 2 && q.Length == 5 && q.Keyword == "hội" && q.From != nil && q.To != nil
	})).Return(&domain.EventPage{
		Draw: 2, RecordsTotal: 1, RecordsFiltered: 1,
		Data: []*domain.EventListItem{{Event: domain.Event{ID: "e1", Title: "Hội chợ"}, Status: domain.EventStatusUpcoming}},
	}, nil)

	w := do(t, r, http.MethodGet, "/Event/GetPage?draw=2&length=5&keyword=h%E1%BB%99i&fromDate=2026-01-01&toDate=2026-01-31", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.EqualValues(t, 2, resp["draw"])
	assert.EqualValues(t, 1, resp["recordsTotal"])
	data := resp["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "upcoming", data[0].(map[string]any)["status"])
}

func TestHandler_GetEventPage_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/Event/GetPage?fromDate=01-01-2026", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestHandler_CreateEvent_RequiresAdmin(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/Event/Create", "", map[string]any{"title": "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/Event/Create", token(t, "zalo-1", domain.RoleUser), map[string]any{"title": "X"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)
	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	m.events.EXPECT().Create(mock.Anything, mock.Anything, mock.MatchedBy(func(in domain.EventInput) bool {
		return in.Title == "Hội thảo" && in.JoinCount == domain.UnlimitedJoinCount && in.IsActive
	})).Return(&domain.Event{ID: "e1", Title: "Hội thảo"}, nil)

	w := do(t, r, http.MethodPost, "/Event/Create", token(t, "admin-1", domain.RoleAdmin), map[string]any{
		"title":     "Hội thảo",
		"startTime": start.Format(time.RFC3339),
		"endTime":   start.Add(time.Hour).Format(time.RFC3339),
		"type":      2,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "e1", resp["data"].(map[string]any)["id"])
}

func TestHandler_CreateEvent_BadBody(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/Event/Create", token(t, "admin-1", domain.RoleAdmin), map[string]any{"title": ""})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, msgBadRequest, resp["message"])
}

func TestHandler_CreateEvent_ValidationDetail(t *testing.T) {
	m, r := setupRouter(t)
	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	m.events.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.Join(domain.ErrValidation, errors.New("x")))

	w := do(t, r, http.MethodPost, "/Event/Create", token(t, "admin-1", domain.RoleAdmin), map[string]any{
		"title": "X", "startTime": start.Format(time.RFC3339), "endTime": start.Format(time.RFC3339), "type": 2,
	})

	resp := decode(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["message"], msgValidation)
}

func TestHandler_GetEventDetail_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	w := do(t, r, http.MethodGet, "/Event/Detail/missing", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Không tìm thấy sự kiện", resp["message"])
}

func TestHandler_GetEventDetail_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(nil, errors.New("db down"))

	w := do(t, r, http.MethodGet, "/Event/Detail/e1", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, msgInternal, decode(t, w)["message"])
}

func TestHandler_GetCapacityInfo(t *testing.T) {
	m, r := setupRouter(t)

	info := domain.NewCapacityInfo(5, 3, 2)
	m.events.EXPECT().CapacityInfo(mock.Anything, "e1").Return(&info, nil)

	w := do(t, r, http.MethodGet, "/EventRegistrations/GetCapacityInfo/e1", "", nil)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, true, data["isFull"])
	assert.EqualValues(t, 0, data["remainingSlots"])
	assert.EqualValues(t, 5, data["totalParticipants"])
}

func TestHandler_ExportEventStatistics(t *testing.T) {
	m, r := setupRouter(t)

	m.statistics.EXPECT().Export(mock.Anything, "e1").Return([]byte("PK"), "thong-ke-su-kien-e1.xlsx", nil)

	w := do(t, r, http.MethodGet, "/Event/ExportStatistics/e1", token(t, "admin-1", domain.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="thong-ke-su-kien-e1.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", w.Body.String())
}

// --- Registrations ---

func TestHandler_Register_Full(t *testing.T) {
	m, r := setupRouter(t)

	m.registrations.EXPECT().Register(mock.Anything, mock.MatchedBy(func(c domain.Caller) bool {
		return c.UserZaloID == "zalo-1"
	}), mock.MatchedBy(func(in domain.RegisterInput) bool {
		return in.EventID == "e1" && in.Name == "A"
	})).Return(nil, domain.ErrEventFull)

	w := do(t, r, http.MethodPost, "/EventRegistrations/Register/e1", token(t, "zalo-1", domain.RoleUser),
		dto.RegisterRequest{Name: "A", PhoneNumber: "0901234567"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Sự kiện đã đủ số lượng người tham gia", resp["message"])
}

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.registrations.EXPECT().Register(mock.Anything, mock.Anything, mock.Anything).Return(&domain.EventRegistration{
		ID: "r1", CheckInCode: "ABCD2345", Status: domain.RegistrationStatusRegistered,
	}, nil)

	w := do(t, r, http.MethodPost, "/EventRegistrations/Register/e1", token(t, "zalo-1", domain.RoleUser),
		dto.RegisterRequest{Name: "A", PhoneNumber: "0901234567"})

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "ABCD2345", data["checkInCode"])
	assert.Equal(t, domain.RegistrationStatusRegistered.String(), data["statusName"])
}

func TestHandler_Register_ExpiredToken(t *testing.T) {
	_, r := setupRouter(t)

	claims := middleware.Claims{
		UserZaloID:       "zalo-1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := do(t, r, http.MethodPost, "/EventRegistrations/Register/e1", expired, dto.RegisterRequest{Name: "A", PhoneNumber: "0901234567"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CheckIn(t *testing.T) {
	m, r := setupRouter(t)

	m.registrations.EXPECT().CheckIn(mock.Anything, mock.Anything, "abcd2345").Return(&domain.CheckInResult{
		Source: domain.SourceGuest, ID: "g1", Name: "B",
	}, nil)

	w := do(t, r, http.MethodPost, "/EventRegistrations/CheckIn", token(t, "admin-1", domain.RoleAdmin),
		dto.CheckInRequest{CheckInCode: "abcd2345"})

	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "guest", resp["data"].(map[string]any)["source"])
}

func TestHandler_CheckIn_AlreadyCheckedIn(t *testing.T) {
	m, r := setupRouter(t)

	m.registrations.EXPECT().CheckIn(mock.Anything, mock.Anything, "X").Return(nil, domain.ErrAlreadyCheckedIn)

	w := do(t, r, http.MethodPost, "/EventRegistrations/CheckIn", token(t, "admin-1", domain.RoleAdmin),
		dto.CheckInRequest{CheckInCode: "X"})

	assert.Equal(t, "Đã check-in trước đó", decode(t, w)["message"])
}

// --- Guests and custom fields ---

func TestHandler_CreateGuests(t *testing.T) {
	m, r := setupRouter(t)

	m.guests.EXPECT().CreateBatch(mock.Anything, mock.Anything, "e1", "gia đình", mock.MatchedBy(func(in []domain.GuestInput) bool {
		return len(in) == 1 && in[0].GuestName == "Khách"
	})).Return(&domain.EventGuest{ID: "eg1"}, []*domain.GuestList{{ID: "g1"}}, nil)

	w := do(t, r, http.MethodPost, "/EventGuests/Create/e1", token(t, "zalo-1", domain.RoleUser), dto.CreateGuestsRequest{
		Note:   "gia đình",
		Guests: []dto.GuestRequest{{GuestName: "Khách", GuestPhone: "0912345678"}},
	})

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "eg1", data["eventGuest"].(map[string]any)["id"])
	assert.Len(t, data["guests"], 1)
}

func TestHandler_GetGuests_FilterByStatus(t *testing.T) {
	m, r := setupRouter(t)

	m.guests.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.GuestFilter) bool {
		return f.EventID == "e1" && f.Status != nil && *f.Status == domain.GuestStatusRegistered
	})).Return([]*domain.GuestList{{ID: "g1", Status: domain.GuestStatusRegistered}}, nil)

	w := do(t, r, http.MethodGet, "/EventGuests/GetAll/e1?status=5", token(t, "admin-1", domain.RoleAdmin), nil)

	data := decode(t, w)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Chờ duyệt", data[0].(map[string]any)["statusName"])
}

func TestHandler_GetGuests_BadStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/EventGuests/GetAll?status=abc", token(t, "admin-1", domain.RoleAdmin), nil)

	assert.Equal(t, msgBadRequest, decode(t, w)["message"])
}

func TestHandler_SubmitGuestValues_MissingFields(t *testing.T) {
	m, r := setupRouter(t)

	m.customFields.EXPECT().SubmitGuestValues(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.MissingFieldsError{Fields: []string{"Đơn vị"}})

	w := do(t, r, http.MethodPost, "/EventCustomFields/SubmitGuestValues", token(t, "zalo-1", domain.RoleUser),
		dto.GuestValuesRequest{GuestListID: "g1"})

	resp := decode(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, msgMissingFields+": Đơn vị", resp["message"])
	assert.Equal(t, []any{"Đơn vị"}, resp["data"].(map[string]any)["missingFields"])
}

func TestHandler_SubmitGuestValues_Approved(t *testing.T) {
	m, r := setupRouter(t)

	m.customFields.EXPECT().SubmitGuestValues(mock.Anything, mock.MatchedBy(func(c domain.Caller) bool {
		return c.UserZaloID == "zalo-1" && c.Role == domain.RoleUser
	}), domain.GuestSubmission{
		GuestListID: "g1",
		Values:      []domain.FieldValueInput{{EventCustomFieldID: "f1", FieldValue: "v"}},
	}).Return(&domain.GuestList{ID: "g1", Status: domain.GuestStatusApproved, CheckInCode: "GUEST234"}, nil)

	w := do(t, r, http.MethodPost, "/EventCustomFields/SubmitGuestValues", token(t, "zalo-1", domain.RoleUser),
		dto.GuestValuesRequest{GuestListID: "g1", Values: []domain.FieldValueInput{{EventCustomFieldID: "f1", FieldValue: "v"}}})

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "GUEST234", data["checkInCode"])
	assert.Equal(t, "Đã duyệt", data["statusName"])
}

func TestHandler_SubmitGuestValues_ForeignGuestList(t *testing.T) {
	m, r := setupRouter(t)

	m.customFields.EXPECT().SubmitGuestValues(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrForbidden)

	w := do(t, r, http.MethodPost, "/EventCustomFields/SubmitGuestValues", token(t, "zalo-2", domain.RoleUser),
		dto.GuestValuesRequest{GuestListID: "g1"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Gifts ---

func TestHandler_CreateGift_Multipart(t *testing.T) {
	m, r := setupRouter(t)

	m.gifts.EXPECT().Create(mock.Anything, mock.Anything, mock.MatchedBy(func(in domain.GiftInput) bool {
		return in.EventID == "e1" && in.GiftName == "Áo" && in.Quantity == 3 &&
			len(in.Images) == 1 && in.Images[0].Filename == "a.png"
	})).Return(&domain.EventGift{ID: "gift1"}, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("eventId", "e1"))
	require.NoError(t, mw.WriteField("giftName", "Áo"))
	require.NoError(t, mw.WriteField("quantity", "3"))
	fw, err := mw.CreateFormFile(giftImagesField, "a.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("\x89PNG"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/EventGifts/Create", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token(t, "admin-1", domain.RoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])
}

// --- Groups, admin ---

func TestHandler_JoinGroup_AlreadyMember(t *testing.T) {
	m, r := setupRouter(t)

	m.groups.EXPECT().Join(mock.Anything, mock.Anything, "grp1").Return(nil, domain.ErrAlreadyMember)

	w := do(t, r, http.MethodPost, "/Groups/Join/grp1", token(t, "zalo-1", domain.RoleUser), nil)

	assert.Equal(t, "Bạn đã gửi yêu cầu tham gia nhóm này", decode(t, w)["message"])
}

func TestHandler_SaveTemplate_AdminIsNotSuperAdmin(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/NotificationTemplates/Save", token(t, "admin-1", domain.RoleAdmin), dto.TemplateRequest{})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_SaveTemplate_SuperAdmin(t *testing.T) {
	m, r := setupRouter(t)

	m.templates.EXPECT().Save(mock.Anything, mock.Anything, mock.MatchedBy(func(in domain.TemplateInput) bool {
		return in.TriggerKey == domain.TriggerGuestApproved && in.ParamMapping["code"] == domain.SourceCheckInCode
	})).Return(&domain.NotificationTemplate{ID: "t1", TriggerKey: domain.TriggerGuestApproved}, nil)

	w := do(t, r, http.MethodPost, "/NotificationTemplates/Save", token(t, "root", domain.RoleSuperAdmin), dto.TemplateRequest{
		TriggerKey:   string(domain.TriggerGuestApproved),
		TemplateID:   "123",
		ParamMapping: map[string]string{"code": domain.SourceCheckInCode},
		IsEnabled:    true,
	})

	assert.Equal(t, true, decode(t, w)["success"])
}

func TestHandler_GetActivityPage(t *testing.T) {
	m, r := setupRouter(t)

	m.activity.EXPECT().List(mock.Anything, 1, 20, 10).Return(&domain.ActivityPage{Draw: 1, RecordsTotal: 21}, nil)

	w := do(t, r, http.MethodGet, "/ActivityLogs/GetPage?draw=1&start=20&length=10", token(t, "admin-1", domain.RoleAdmin), nil)

	resp := decode(t, w)
	assert.EqualValues(t, 1, resp["draw"])
	assert.EqualValues(t, 21, resp["recordsTotal"])
}

func TestHandler_Health(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}
