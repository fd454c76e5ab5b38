package handler

import (
	"net/http"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/handler/dto"
	"github.com/tienchinh21/bkasim-cms/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// Sponsors

func (h *Handler) GetSponsors(c *ginext.Context) {
	sponsors, err := h.sponsors.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, sponsors)
}

func (h *Handler) CreateSponsor(c *ginext.Context) {
	var req dto.SponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sponsor, err := h.sponsors.Create(c.Request.Context(), middleware.CallerFrom(c), domain.SponsorInput{
		SponsorName: req.SponsorName,
		Logo:        req.Logo,
		Website:     req.Website,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Thêm nhà tài trợ thành công", sponsor)
}

func (h *Handler) DeleteSponsor(c *ginext.Context) {
	if err := h.sponsors.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Xóa nhà tài trợ thành công", nil)
}

// Notification templates

func (h *Handler) GetTemplates(c *ginext.Context) {
	templates, err := h.templates.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, templates)
}

func (h *Handler) SaveTemplate(c *ginext.Context) {
	var req dto.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tpl, err := h.templates.Save(c.Request.Context(), middleware.CallerFrom(c), domain.TemplateInput{
		TriggerKey:   domain.TriggerKey(req.TriggerKey),
		TemplateID:   req.TemplateID,
		ParamMapping: req.ParamMapping,
		IsEnabled:    req.IsEnabled,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Lưu mẫu thông báo thành công", tpl)
}

// Activity logs

func (h *Handler) GetActivityPage(c *ginext.Context) {
	page, err := h.activity.List(c.Request.Context(),
		queryInt(c, "draw", 0),
		queryInt(c, "start", 0),
		queryInt(c, "length", 0),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
