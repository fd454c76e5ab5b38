package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/handler/dto"
	"github.com/tienchinh21/bkasim-cms/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetEventPage answers the admin table and the mini-app list in DataTables shape.
func (h *Handler) GetEventPage(c *ginext.Context) {
	var q dto.EventPageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	query := domain.EventQuery{
		Keyword:   q.Keyword,
		GroupID:   q.GroupID,
		Type:      domain.EventType(q.Type),
		Status:    domain.EventStatus(q.Status),
		GroupType: q.GroupType,
		Draw:      q.Draw,
		Start:     q.Start,
		Length:    q.Length,
	}
	var err error
	if query.From, err = parseDate(q.FromDate, false); err != nil {
		badRequest(c, err)
		return
	}
	if query.To, err = parseDate(q.ToDate, true); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.events.List(c.Request.Context(), middleware.CallerFrom(c), query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// parseDate accepts RFC3339 or a bare date. A bare end date covers the whole day.
func parseDate(v string, endOfDay bool) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", v)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func (h *Handler) GetEventDetail(c *ginext.Context) {
	event, err := h.events.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, event)
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	event, err := h.events.Create(c.Request.Context(), middleware.CallerFrom(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Tạo sự kiện thành công", event)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	event, err := h.events.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Cập nhật sự kiện thành công", event)
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	if err := h.events.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Xóa sự kiện thành công", nil)
}

func (h *Handler) GetCapacityInfo(c *ginext.Context) {
	info, err := h.events.CapacityInfo(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, info)
}

func (h *Handler) GetEventStatistics(c *ginext.Context) {
	stats, err := h.statistics.Statistics(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, stats)
}

func (h *Handler) ExportEventStatistics(c *ginext.Context) {
	data, filename, err := h.statistics.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
