package dto

import "github.com/tienchinh21/bkasim-cms/internal/domain"

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type CreateGuestsResponse struct {
	EventGuest *domain.EventGuest  `json:"eventGuest"`
	Guests     []*domain.GuestList `json:"guests"`
}

type RegistrationResponse struct {
	*domain.EventRegistration
	StatusName string `json:"statusName"`
}

func ToRegistrationResponse(r *domain.EventRegistration) RegistrationResponse {
	return RegistrationResponse{EventRegistration: r, StatusName: r.Status.String()}
}

func ToRegistrationResponses(regs []*domain.EventRegistration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, ToRegistrationResponse(r))
	}
	return out
}

type GuestResponse struct {
	*domain.GuestList
	StatusName string `json:"statusName"`
}

func ToGuestResponse(g *domain.GuestList) GuestResponse {
	return GuestResponse{GuestList: g, StatusName: g.Status.String()}
}

func ToGuestResponses(guests []*domain.GuestList) []GuestResponse {
	out := make([]GuestResponse, 0, len(guests))
	for _, g := range guests {
		out = append(out, ToGuestResponse(g))
	}
	return out
}
