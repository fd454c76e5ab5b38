package handler

import (
	"fmt"
	"strconv"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/handler/dto"
	"github.com/tienchinh21/bkasim-cms/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateGuests(c *ginext.Context) {
	var req dto.CreateGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	eg, guests, err := h.guests.CreateBatch(c.Request.Context(), middleware.CallerFrom(c), c.Param("eventId"), req.Note, req.ToInputs())
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Đăng ký khách mời thành công", dto.CreateGuestsResponse{EventGuest: eg, Guests: guests})
}

// GetGuests lists guest rows, optionally narrowed to one event by path.
func (h *Handler) GetGuests(c *ginext.Context) {
	f := domain.GuestFilter{
		EventID: c.Param("eventId"),
		Keyword: c.Query("keyword"),
	}
	if raw := c.Query("status"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 8)
		if err != nil {
			badRequest(c, fmt.Errorf("invalid status %q", raw))
			return
		}
		status := domain.GuestStatus(n)
		f.Status = &status
	}

	guests, err := h.guests.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, dto.ToGuestResponses(guests))
}

func (h *Handler) ApproveGuests(c *ginext.Context) {
	guests, err := h.guests.Approve(c.Request.Context(), middleware.CallerFrom(c), c.Param("eventGuestId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Duyệt khách mời thành công", dto.ToGuestResponses(guests))
}

func (h *Handler) ApproveGuestItem(c *ginext.Context) {
	guest, err := h.guests.ApproveItem(c.Request.Context(), middleware.CallerFrom(c), c.Param("guestListId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Duyệt khách mời thành công", dto.ToGuestResponse(guest))
}

func (h *Handler) RejectGuestItem(c *ginext.Context) {
	guest, err := h.guests.RejectItem(c.Request.Context(), middleware.CallerFrom(c), c.Param("guestListId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Đã từ chối khách mời", dto.ToGuestResponse(guest))
}

func (h *Handler) CancelGuestItem(c *ginext.Context) {
	guest, err := h.guests.CancelItem(c.Request.Context(), middleware.CallerFrom(c), c.Param("guestListId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Đã hủy khách mời", dto.ToGuestResponse(guest))
}
