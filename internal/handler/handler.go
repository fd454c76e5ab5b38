package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type EventSvc interface {
	Create(ctx context.Context, caller domain.Caller, input domain.EventInput) (*domain.Event, error)
	Update(ctx context.Context, caller domain.Caller, id string, input domain.EventInput) (*domain.Event, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, caller domain.Caller, q domain.EventQuery) (*domain.EventPage, error)
	CapacityInfo(ctx context.Context, eventID string) (*domain.CapacityInfo, error)
}

type StatisticsSvc interface {
	Statistics(ctx context.Context, eventID string) (*domain.EventStatistics, error)
	Export(ctx context.Context, eventID string) ([]byte, string, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, caller domain.Caller, input domain.RegisterInput) (*domain.EventRegistration, error)
	Cancel(ctx context.Context, caller domain.Caller, id string) error
	CheckIn(ctx context.Context, caller domain.Caller, code string) (*domain.CheckInResult, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EventRegistration, error)
}

type GuestSvc interface {
	CreateBatch(ctx context.Context, caller domain.Caller, eventID, note string, inputs []domain.GuestInput) (*domain.EventGuest, []*domain.GuestList, error)
	List(ctx context.Context, f domain.GuestFilter) ([]*domain.GuestList, error)
	Approve(ctx context.Context, caller domain.Caller, eventGuestID string) ([]*domain.GuestList, error)
	ApproveItem(ctx context.Context, caller domain.Caller, guestListID string) (*domain.GuestList, error)
	RejectItem(ctx context.Context, caller domain.Caller, guestListID string) (*domain.GuestList, error)
	CancelItem(ctx context.Context, caller domain.Caller, guestListID string) (*domain.GuestList, error)
}

type CustomFieldSvc interface {
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EventCustomField, error)
	Create(ctx context.Context, caller domain.Caller, input domain.CustomFieldInput) (*domain.EventCustomField, error)
	Update(ctx context.Context, caller domain.Caller, id string, input domain.CustomFieldInput) (*domain.EventCustomField, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
	SubmitGuestValues(ctx context.Context, caller domain.Caller, sub domain.GuestSubmission) (*domain.GuestList, error)
	SubmitRegistrationValues(ctx context.Context, caller domain.Caller, sub domain.RegistrationSubmission) ([]*domain.EventCustomFieldValue, error)
}

type GiftSvc interface {
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EventGift, error)
	Create(ctx context.Context, caller domain.Caller, input domain.GiftInput) (*domain.EventGift, error)
	Update(ctx context.Context, caller domain.Caller, id string, input domain.GiftInput) (*domain.EventGift, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
}

type GroupSvc interface {
	List(ctx context.Context) ([]*domain.Group, error)
	Create(ctx context.Context, caller domain.Caller, input domain.GroupInput) (*domain.Group, error)
	Update(ctx context.Context, caller domain.Caller, id string, input domain.GroupInput) (*domain.Group, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
	Join(ctx context.Context, caller domain.Caller, groupID string) (*domain.MembershipGroup, error)
	ListPending(ctx context.Context) ([]*domain.PendingMember, error)
	ApproveMember(ctx context.Context, caller domain.Caller, id string) error
	RejectMember(ctx context.Context, caller domain.Caller, id string) error
	RegisterMembership(ctx context.Context, caller domain.Caller, input domain.MembershipInput) (*domain.Membership, error)
	Me(ctx context.Context, caller domain.Caller) (*domain.Membership, error)
}

type SponsorSvc interface {
	List(ctx context.Context) ([]*domain.Sponsor, error)
	Create(ctx context.Context, caller domain.Caller, input domain.SponsorInput) (*domain.Sponsor, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
}

type TemplateSvc interface {
	List(ctx context.Context) ([]*domain.NotificationTemplate, error)
	Save(ctx context.Context, caller domain.Caller, input domain.TemplateInput) (*domain.NotificationTemplate, error)
}

type ActivitySvc interface {
	List(ctx context.Context, draw, start, length int) (*domain.ActivityPage, error)
}

// Services groups the dependencies of Handler.
type Services struct {
	Events        EventSvc
	Statistics    StatisticsSvc
	Registrations RegistrationSvc
	Guests        GuestSvc
	CustomFields  CustomFieldSvc
	Gifts         GiftSvc
	Groups        GroupSvc
	Sponsors      SponsorSvc
	Templates     TemplateSvc
	Activity      ActivitySvc
}

type Handler struct {
	events        EventSvc
	statistics    StatisticsSvc
	registrations RegistrationSvc
	guests        GuestSvc
	customFields  CustomFieldSvc
	gifts         GiftSvc
	groups        GroupSvc
	sponsors      SponsorSvc
	templates     TemplateSvc
	activity      ActivitySvc
	log           logger.Logger
}

func NewHandler(s Services, log logger.Logger) *Handler {
	return &Handler{
		events:        s.Events,
		statistics:    s.Statistics,
		registrations: s.Registrations,
		guests:        s.Guests,
		customFields:  s.CustomFields,
		gifts:         s.Gifts,
		groups:        s.Groups,
		sponsors:      s.Sponsors,
		templates:     s.Templates,
		activity:      s.Activity,
		log:           log,
	}
}

func ok(c *ginext.Context, data any) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: data})
}

func okMessage(c *ginext.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Message: message, Data: data})
}

// badRequest reports a malformed payload in the same envelope as domain errors.
func badRequest(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.JSON(http.StatusOK, dto.Response{Success: false, Message: msgBadRequest})
}

func queryInt(c *ginext.Context, key string, def int) int {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

const (
	msgBadRequest    = "Dữ liệu gửi lên không hợp lệ"
	msgInternal      = "Đã có lỗi xảy ra, vui lòng thử lại sau"
	msgValidation    = "Dữ liệu không hợp lệ"
	msgMissingFields = "Vui lòng nhập đầy đủ các trường bắt buộc"
)

var notFoundMessages = []struct {
	err error
	msg string
}{
	{domain.ErrEventNotFound, "Không tìm thấy sự kiện"},
	{domain.ErrRegistrationNotFound, "Không tìm thấy đăng ký"},
	{domain.ErrGuestNotFound, "Không tìm thấy khách mời"},
	{domain.ErrEventGuestNotFound, "Không tìm thấy danh sách khách mời"},
	{domain.ErrCustomFieldNotFound, "Không tìm thấy trường thông tin"},
	{domain.ErrGiftNotFound, "Không tìm thấy quà tặng"},
	{domain.ErrGroupNotFound, "Không tìm thấy nhóm"},
	{domain.ErrMembershipNotFound, "Bạn chưa đăng ký hội viên"},
	{domain.ErrMembershipGroupNotFound, "Không tìm thấy yêu cầu tham gia nhóm"},
	{domain.ErrSponsorNotFound, "Không tìm thấy nhà tài trợ"},
	{domain.ErrTemplateNotFound, "Không tìm thấy mẫu thông báo"},
	{domain.ErrCheckInCodeNotFound, "Mã check-in không hợp lệ"},
}

var conflictMessages = []struct {
	err error
	msg string
}{
	{domain.ErrEventFull, "Sự kiện đã đủ số lượng người tham gia"},
	{domain.ErrEventClosed, "Sự kiện không còn nhận đăng ký"},
	{domain.ErrAlreadyRegistered, "Bạn đã đăng ký sự kiện này"},
	{domain.ErrAlreadyMember, "Bạn đã gửi yêu cầu tham gia nhóm này"},
	{domain.ErrAlreadyCheckedIn, "Đã check-in trước đó"},
	{domain.ErrInvalidStatusTransition, "Trạng thái hiện tại không cho phép thao tác này"},
	{domain.ErrCheckInCodeExhausted, "Không thể tạo mã check-in, vui lòng thử lại"},
}

// handleError renders err in the {success:false} envelope. Domain errors keep
// HTTP 200 for the mini-app; auth failures use 401/403 and unknown errors 500.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var missing *domain.MissingFieldsError
	if errors.As(err, &missing) {
		c.JSON(http.StatusOK, dto.Response{
			Success: false,
			Message: msgMissingFields + ": " + strings.Join(missing.Fields, ", "),
			Data:    ginext.H{"missingFields": missing.Fields},
		})
		return
	}

	if errors.Is(err, domain.ErrValidation) {
		msg := msgValidation
		if detail := domain.ValidationDetail(err); detail != "" {
			msg += ": " + detail
		}
		c.JSON(http.StatusOK, dto.Response{Success: false, Message: msg})
		return
	}

	for _, m := range notFoundMessages {
		if errors.Is(err, m.err) {
			c.JSON(http.StatusOK, dto.Response{Success: false, Message: m.msg})
			return
		}
	}
	for _, m := range conflictMessages {
		if errors.Is(err, m.err) {
			c.JSON(http.StatusOK, dto.Response{Success: false, Message: m.msg})
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Response{Success: false, Message: "Vui lòng đăng nhập"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Response{Success: false, Message: "Bạn không có quyền thực hiện thao tác này"})
	default:
		h.log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "request failed",
			logger.String("path", c.FullPath()),
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, dto.Response{Success: false, Message: msgInternal})
	}
}
