package handler

import (
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/handler/dto"
	"github.com/tienchinh21/bkasim-cms/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetGroups(c *ginext.Context) {
	groups, err := h.groups.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, groups)
}

func (h *Handler) CreateGroup(c *ginext.Context) {
	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	group, err := h.groups.Create(c.Request.Context(), middleware.CallerFrom(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Tạo nhóm thành công", group)
}

func (h *Handler) UpdateGroup(c *ginext.Context) {
	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	group, err := h.groups.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Cập nhật nhóm thành công", group)
}

func (h *Handler) DeleteGroup(c *ginext.Context) {
	if err := h.groups.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Xóa nhóm thành công", nil)
}

func (h *Handler) JoinGroup(c *ginext.Context) {
	mg, err := h.groups.Join(c.Request.Context(), middleware.CallerFrom(c), c.Param("groupId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Đã gửi yêu cầu tham gia nhóm", mg)
}

func (h *Handler) GetPendingMembers(c *ginext.Context) {
	pending, err := h.groups.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, pending)
}

func (h *Handler) ApproveMember(c *ginext.Context) {
	if err := h.groups.ApproveMember(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Đã duyệt thành viên", nil)
}

func (h *Handler) RejectMember(c *ginext.Context) {
	if err := h.groups.RejectMember(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Đã từ chối thành viên", nil)
}

func (h *Handler) RegisterMembership(c *ginext.Context) {
	var req dto.MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	m, err := h.groups.RegisterMembership(c.Request.Context(), middleware.CallerFrom(c), domain.MembershipInput{
		Fullname:    req.Fullname,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Đăng ký hội viên thành công", m)
}

func (h *Handler) GetMyMembership(c *ginext.Context) {
	m, err := h.groups.Me(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, m)
}
