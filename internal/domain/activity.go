package domain

import "time"

const (
	EntityEvent           = "event"
	EntityGuestList       = "guest_list"
	EntityEventGuest      = "event_guest"
	EntityMembershipGroup = "membership_group"
	EntityRegistration    = "event_registration"
	EntityCustomField     = "event_custom_field"
	EntityGift            = "event_gift"
	EntityGroup           = "group"
	EntitySponsor         = "sponsor"
	EntityTemplate        = "notification_template"
)

const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionCancel  = "cancel"
	ActionCheckIn = "check_in"
)

type ActivityLog struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ActivityPage struct {
	Draw            int            `json:"draw"`
	RecordsTotal    int            `json:"recordsTotal"`
	RecordsFiltered int            `json:"recordsFiltered"`
	Data            []*ActivityLog `json:"data"`
}
