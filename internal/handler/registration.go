package handler

import (
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/handler/dto"
	"github.com/tienchinh21/bkasim-cms/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	reg, err := h.registrations.Register(c.Request.Context(), middleware.CallerFrom(c), domain.RegisterInput{
		EventID:     c.Param("eventId"),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Đăng ký sự kiện thành công", dto.ToRegistrationResponse(reg))
}

func (h *Handler) CancelRegistration(c *ginext.Context) {
	if err := h.registrations.Cancel(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Hủy đăng ký thành công", nil)
}

func (h *Handler) CheckIn(c *ginext.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.registrations.CheckIn(c.Request.Context(), middleware.CallerFrom(c), req.CheckInCode)
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Check-in thành công", result)
}

func (h *Handler) GetRegistrationsByEvent(c *ginext.Context) {
	regs, err := h.registrations.ListByEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, dto.ToRegistrationResponses(regs))
}
