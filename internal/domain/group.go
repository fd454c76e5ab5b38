package domain

import "time"

type Group struct {
	ID          string    `json:"id"`
	GroupName   string    `json:"groupName"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type GroupInput struct {
	GroupName   string `validate:"required,max=255"`
	Description string
	Logo        string
	IsActive    bool
}

type Membership struct {
	ID          string    `json:"id"`
	UserZaloID  string    `json:"userZaloId"`
	Fullname    string    `json:"fullname"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MembershipInput struct {
	UserZaloID  string `validate:"required"`
	Fullname    string `validate:"required,max=255"`
	PhoneNumber string `validate:"required,phone_vn"`
	Email       string `validate:"omitempty,email"`
}

type MembershipStatus int8

const (
	MembershipStatusPending  MembershipStatus = 0
	MembershipStatusApproved MembershipStatus = 1
	MembershipStatusRejected MembershipStatus = 2
)

type MembershipGroup struct {
	ID         string           `json:"id"`
	UserZaloID string           `json:"userZaloId"`
	GroupID    string           `json:"groupId"`
	Status     MembershipStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// PendingMember is a join request joined with the applicant's profile.
type PendingMember struct {
	MembershipGroup
	GroupName   string `json:"groupName"`
	Fullname    string `json:"fullname"`
	PhoneNumber string `json:"phoneNumber"`
}
