package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/tienchinh21/bkasim-cms/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetEventPage(c *ginext.Context)
	GetEventDetail(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	GetEventStatistics(c *ginext.Context)
	ExportEventStatistics(c *ginext.Context)

	GetCapacityInfo(c *ginext.Context)
	Register(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	CheckIn(c *ginext.Context)
	GetRegistrationsByEvent(c *ginext.Context)

	CreateGuests(c *ginext.Context)
	GetGuests(c *ginext.Context)
	ApproveGuests(c *ginext.Context)
	ApproveGuestItem(c *ginext.Context)
	RejectGuestItem(c *ginext.Context)
	CancelGuestItem(c *ginext.Context)

	GetCustomFieldsByEvent(c *ginext.Context)
	CreateCustomField(c *ginext.Context)
	UpdateCustomField(c *ginext.Context)
	DeleteCustomField(c *ginext.Context)
	SubmitGuestValues(c *ginext.Context)
	SubmitRegistrationValues(c *ginext.Context)

	GetGiftsByEvent(c *ginext.Context)
	CreateGift(c *ginext.Context)
	UpdateGift(c *ginext.Context)
	DeleteGift(c *ginext.Context)

	GetGroups(c *ginext.Context)
	CreateGroup(c *ginext.Context)
	UpdateGroup(c *ginext.Context)
	DeleteGroup(c *ginext.Context)
	JoinGroup(c *ginext.Context)
	GetPendingMembers(c *ginext.Context)
	ApproveMember(c *ginext.Context)
	RejectMember(c *ginext.Context)
	RegisterMembership(c *ginext.Context)
	GetMyMembership(c *ginext.Context)

	GetSponsors(c *ginext.Context)
	CreateSponsor(c *ginext.Context)
	DeleteSponsor(c *ginext.Context)
	GetTemplates(c *ginext.Context)
	SaveTemplate(c *ginext.Context)
	GetActivityPage(c *ginext.Context)
}

type Options struct {
	Mode         string
	AllowOrigins []string
	JWTSecret    string
	UploadDir    string
	UploadPrefix string
}

func InitRouter(opts Options, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(opts.Mode)
	router.Use(mw...)
	router.Use(corsMiddleware(opts.AllowOrigins))
	router.Use(middleware.Authenticate(opts.JWTSecret))

	auth := middleware.RequireAuth()
	admin := middleware.RequireAdmin()
	superAdmin := middleware.RequireSuperAdmin()

	events := router.Group("/Event")
	{
		events.GET("/GetPage", h.GetEventPage)
		events.GET("/Detail/:id", h.GetEventDetail)
		events.POST("/Create", admin, h.CreateEvent)
		events.POST("/Update/:id", admin, h.UpdateEvent)
		events.POST("/Delete/:id", admin, h.DeleteEvent)
		events.GET("/Statistics/:id", admin, h.GetEventStatistics)
		events.GET("/ExportStatistics/:id", admin, h.ExportEventStatistics)
	}

	registrations := router.Group("/EventRegistrations")
	{
		registrations.GET("/GetCapacityInfo/:eventId", h.GetCapacityInfo)
		registrations.POST("/Register/:eventId", auth, h.Register)
		registrations.POST("/Cancel/:id", auth, h.CancelRegistration)
		registrations.POST("/CheckIn", admin, h.CheckIn)
		registrations.GET("/GetByEvent/:eventId", admin, h.GetRegistrationsByEvent)
	}

	guests := router.Group("/EventGuests")
	{
		guests.POST("/Create/:eventId", auth, h.CreateGuests)
		guests.GET("/GetAll", admin, h.GetGuests)
		guests.GET("/GetAll/:eventId", admin, h.GetGuests)
		guests.POST("/Approve/:eventGuestId", admin, h.ApproveGuests)
		guests.POST("/ApproveGuestItem/:guestListId", admin, h.ApproveGuestItem)
		guests.POST("/RejectGuestItem/:guestListId", admin, h.RejectGuestItem)
		guests.POST("/CancelGuestItem/:guestListId", admin, h.CancelGuestItem)
	}

	fields := router.Group("/EventCustomFields")
	{
		fields.GET("/GetByEvent/:eventId", h.GetCustomFieldsByEvent)
		fields.POST("/Create", admin, h.CreateCustomField)
		fields.POST("/Update/:id", admin, h.UpdateCustomField)
		fields.POST("/Delete/:id", admin, h.DeleteCustomField)
		fields.POST("/SubmitGuestValues", auth, h.SubmitGuestValues)
		fields.POST("/SubmitRegistrationValues", auth, h.SubmitRegistrationValues)
	}

	gifts := router.Group("/EventGifts")
	{
		gifts.GET("/GetByEvent/:eventId", h.GetGiftsByEvent)
		gifts.POST("/Create", admin, h.CreateGift)
		gifts.POST("/Update/:id", admin, h.UpdateGift)
		gifts.POST("/Delete/:id", admin, h.DeleteGift)
	}

	groups := router.Group("/Groups")
	{
		groups.GET("/GetAll", h.GetGroups)
		groups.POST("/Create", admin, h.CreateGroup)
		groups.POST("/Update/:id", admin, h.UpdateGroup)
		groups.POST("/Delete/:id", admin, h.DeleteGroup)
		groups.POST("/Join/:groupId", auth, h.JoinGroup)
	}

	memberGroups := router.Group("/MembershipGroups", admin)
	{
		memberGroups.GET("/GetPending", h.GetPendingMembers)
		memberGroups.POST("/Approve/:id", h.ApproveMember)
		memberGroups.POST("/Reject/:id", h.RejectMember)
	}

	memberships := router.Group("/Memberships", auth)
	{
		memberships.POST("/Register", h.RegisterMembership)
		memberships.GET("/Me", h.GetMyMembership)
	}

	router.GET("/Sponsors/GetAll", h.GetSponsors)
	router.POST("/Sponsors/Create", admin, h.CreateSponsor)
	router.POST("/Sponsors/Delete/:id", admin, h.DeleteSponsor)

	router.GET("/NotificationTemplates/GetAll", superAdmin, h.GetTemplates)
	router.POST("/NotificationTemplates/Save", superAdmin, h.SaveTemplate)

	router.GET("/ActivityLogs/GetPage", admin, h.GetActivityPage)

	if opts.UploadDir != "" {
		router.Static(opts.UploadPrefix, opts.UploadDir)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

func corsMiddleware(origins []string) ginext.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	cfg.AddExposeHeaders(middleware.RequestIDHeader, "Content-Disposition")
	return cors.New(cfg)
}
