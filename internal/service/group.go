package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
	"github.com/tienchinh21/bkasim-cms/pkg/validator"
	"github.com/wb-go/wbf/logger"
)

type GroupService struct {
	groupRepo      ports.GroupRepo
	membershipRepo ports.MembershipRepo
	memberRepo     ports.MembershipGroupRepo
	activity       ports.ActivityRecorder
	logger         logger.Logger
	now            func() time.Time
}

func NewGroupService(
	groupRepo ports.GroupRepo,
	membershipRepo ports.MembershipRepo,
	memberRepo ports.MembershipGroupRepo,
	activity ports.ActivityRecorder,
	logger logger.Logger,
) *GroupService {
	return &GroupService{
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		memberRepo:     memberRepo,
		activity:       activity,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *GroupService) List(ctx context.Context) ([]*domain.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *GroupService) Create(ctx context.Context, caller domain.Caller, input domain.GroupInput) (*domain.Group, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	now := s.now().UTC()
	group := &domain.Group{
		ID:          uuid.New().String(),
		GroupName:   strings.TrimSpace(input.GroupName),
		Description: input.Description,
		Logo:        input.Logo,
		IsActive:    input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionCreate, domain.EntityGroup, group.ID)
	return group, nil
}

func (s *GroupService) Update(ctx context.Context, caller domain.Caller, id string, input domain.GroupInput) (*domain.Group, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	group.GroupName = strings.TrimSpace(input.GroupName)
	group.Description = input.Description
	group.Logo = input.Logo
	group.IsActive = input.IsActive
	group.UpdatedAt = s.now().UTC()

	if err = s.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionUpdate, domain.EntityGroup, group.ID)
	return group, nil
}

func (s *GroupService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	s.activity.Record(ctx, caller, domain.ActionDelete, domain.EntityGroup, id)
	return nil
}

// Join files a pending request for the caller. The caller needs a member
// profile first so admins can see who is asking.
func (s *GroupService) Join(ctx context.Context, caller domain.Caller, groupID string) (*domain.MembershipGroup, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if !group.IsActive {
		return nil, domain.ErrGroupNotFound
	}

	if _, err = s.membershipRepo.GetByUserZaloID(ctx, caller.UserZaloID); err != nil {
		return nil, fmt.Errorf("get membership: %w", err)
	}

	now := s.now().UTC()
	mg := &domain.MembershipGroup{
		ID:         uuid.New().String(),
		UserZaloID: caller.UserZaloID,
		GroupID:    group.ID,
		Status:     domain.MembershipStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.memberRepo.Create(ctx, mg); err != nil {
		return nil, fmt.Errorf("create join request: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "group join requested",
		logger.String("group_id", group.ID),
		logger.String("user_zalo_id", caller.UserZaloID),
	)
	return mg, nil
}

func (s *GroupService) ListPending(ctx context.Context) ([]*domain.PendingMember, error) {
	return s.memberRepo.ListPending(ctx)
}

func (s *GroupService) ApproveMember(ctx context.Context, caller domain.Caller, id string) error {
	return s.decide(ctx, caller, id, domain.MembershipStatusApproved, domain.ActionApprove)
}

func (s *GroupService) RejectMember(ctx context.Context, caller domain.Caller, id string) error {
	return s.decide(ctx, caller, id, domain.MembershipStatusRejected, domain.ActionReject)
}

func (s *GroupService) decide(ctx context.Context, caller domain.Caller, id string, status domain.MembershipStatus, action string) error {
	mg, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get membership group: %w", err)
	}
	if mg.Status != domain.MembershipStatusPending {
		return domain.ErrInvalidStatusTransition
	}

	if err = s.memberRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update membership group: %w", err)
	}
	s.activity.Record(ctx, caller, action, domain.EntityMembershipGroup, id)
	return nil
}

// RegisterMembership creates or refreshes the caller's member profile.
func (s *GroupService) RegisterMembership(ctx context.Context, caller domain.Caller, input domain.MembershipInput) (*domain.Membership, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	input.UserZaloID = caller.UserZaloID
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	if err := validator.Validate(ctx, input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	now := s.now().UTC()
	m := &domain.Membership{
		ID:          uuid.New().String(),
		UserZaloID:  input.UserZaloID,
		Fullname:    strings.TrimSpace(input.Fullname),
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.membershipRepo.Upsert(ctx, m); err != nil {
		return nil, fmt.Errorf("upsert membership: %w", err)
	}
	return m, nil
}

func (s *GroupService) Me(ctx context.Context, caller domain.Caller) (*domain.Membership, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.membershipRepo.GetByUserZaloID(ctx, caller.UserZaloID)
}
