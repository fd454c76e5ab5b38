package handler

import (
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/handler/dto"
	"github.com/tienchinh21/bkasim-cms/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetCustomFieldsByEvent(c *ginext.Context) {
	fields, err := h.customFields.ListByEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, fields)
}

func (h *Handler) CreateCustomField(c *ginext.Context) {
	var req dto.CustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	field, err := h.customFields.Create(c.Request.Context(), middleware.CallerFrom(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Tạo trường thông tin thành công", field)
}

func (h *Handler) UpdateCustomField(c *ginext.Context) {
	var req dto.CustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	field, err := h.customFields.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Cập nhật trường thông tin thành công", field)
}

func (h *Handler) DeleteCustomField(c *ginext.Context) {
	if err := h.customFields.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Xóa trường thông tin thành công", nil)
}

func (h *Handler) SubmitGuestValues(c *ginext.Context) {
	var req dto.GuestValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	guest, err := h.customFields.SubmitGuestValues(c.Request.Context(), middleware.CallerFrom(c), domain.GuestSubmission{
		GuestListID: req.GuestListID,
		Values:      req.Values,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Gửi thông tin thành công", dto.ToGuestResponse(guest))
}

func (h *Handler) SubmitRegistrationValues(c *ginext.Context) {
	var req dto.RegistrationValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	values, err := h.customFields.SubmitRegistrationValues(c.Request.Context(), middleware.CallerFrom(c), domain.RegistrationSubmission{
		EventRegistrationID: req.EventRegistrationID,
		Values:              req.Values,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Gửi thông tin thành công", values)
}
