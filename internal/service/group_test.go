package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports/mocks"
)

type groupDeps struct {
	groups      *mocks.MockGroupRepo
	memberships *mocks.MockMembershipRepo
	members     *mocks.MockMembershipGroupRepo
	activity    *mocks.MockActivityRecorder
}

func newGroupService(t *testing.T) (*GroupService, groupDeps) {
	d := groupDeps{
		groups:      mocks.NewMockGroupRepo(t),
		memberships: mocks.NewMockMembershipRepo(t),
		members:     mocks.NewMockMembershipGroupRepo(t),
		activity:    mocks.NewMockActivityRecorder(t),
	}
	return NewGroupService(d.groups, d.memberships, d.members, d.activity, newTestLogger(t)), d
}

func TestGroupService_Create(t *testing.T) {
	svc, d := newGroupService(t)

	d.groups.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionCreate, domain.EntityGroup, mock.Anything).Return()

	group, err := svc.Create(context.Background(), admin, domain.GroupInput{GroupName: "  CLB Chạy bộ ", IsActive: true})

	require.NoError(t, err)
	assert.Equal(t, "CLB Chạy bộ", group.GroupName)
	assert.NotEmpty(t, group.ID)
}

func TestGroupService_Create_MissingName(t *testing.T) {
	svc, _ := newGroupService(t)

	_, err := svc.Create(context.Background(), admin, domain.GroupInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGroupService_Join_Pending(t *testing.T) {
	svc, d := newGroupService(t)

	d.groups.EXPECT().GetByID(mock.Anything, "grp1").Return(&domain.Group{ID: "grp1", IsActive: true}, nil)
	d.memberships.EXPECT().GetByUserZaloID(mock.Anything, member.UserZaloID).Return(&domain.Membership{ID: "m1"}, nil)
	d.members.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	mg, err := svc.Join(context.Background(), member, "grp1")

	require.NoError(t, err)
	assert.Equal(t, domain.MembershipStatusPending, mg.Status)
	assert.Equal(t, "grp1", mg.GroupID)
}

func TestGroupService_Join_WithoutProfile(t *testing.T) {
	svc, d := newGroupService(t)

	d.groups.EXPECT().GetByID(mock.Anything, "grp1").Return(&domain.Group{ID: "grp1", IsActive: true}, nil)
	d.memberships.EXPECT().GetByUserZaloID(mock.Anything, member.UserZaloID).Return(nil, domain.ErrMembershipNotFound)

	_, err := svc.Join(context.Background(), member, "grp1")

	assert.ErrorIs(t, err, domain.ErrMembershipNotFound)
}

func TestGroupService_Join_Duplicate(t *testing.T) {
	svc, d := newGroupService(t)

	d.groups.EXPECT().GetByID(mock.Anything, "grp1").Return(&domain.Group{ID: "grp1", IsActive: true}, nil)
	d.memberships.EXPECT().GetByUserZaloID(mock.Anything, member.UserZaloID).Return(&domain.Membership{ID: "m1"}, nil)
	d.members.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyMember)

	_, err := svc.Join(context.Background(), member, "grp1")

	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
}

func TestGroupService_Join_InactiveGroup(t *testing.T) {
	svc, d := newGroupService(t)

	d.groups.EXPECT().GetByID(mock.Anything, "grp1").Return(&domain.Group{ID: "grp1"}, nil)

	_, err := svc.Join(context.Background(), member, "grp1")

	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}

func TestGroupService_ApproveMember(t *testing.T) {
	svc, d := newGroupService(t)

	d.members.EXPECT().GetByID(mock.Anything, "mg1").Return(&domain.MembershipGroup{ID: "mg1", Status: domain.MembershipStatusPending}, nil)
	d.members.EXPECT().UpdateStatus(mock.Anything, "mg1", domain.MembershipStatusApproved).Return(nil)
	d.activity.EXPECT().Record(mock.Anything, admin, domain.ActionApprove, domain.EntityMembershipGroup, "mg1").Return()

	require.NoError(t, svc.ApproveMember(context.Background(), admin, "mg1"))
}

func TestGroupService_RejectMember_AlreadyDecided(t *testing.T) {
	svc, d := newGroupService(t)

	d.members.EXPECT().GetByID(mock.Anything, "mg1").Return(&domain.MembershipGroup{ID: "mg1", Status: domain.MembershipStatusApproved}, nil)

	err := svc.RejectMember(context.Background(), admin, "mg1")

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestGroupService_RegisterMembership_UsesCallerID(t *testing.T) {
	svc, d := newGroupService(t)

	d.memberships.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(m *domain.Membership) bool {
		return m.UserZaloID == member.UserZaloID && m.PhoneNumber == "0901234567"
	})).Return(nil)

	m, err := svc.RegisterMembership(context.Background(), member, domain.MembershipInput{
		UserZaloID: "spoofed", Fullname: "Trần B", PhoneNumber: " 0901234567 ",
	})

	require.NoError(t, err)
	assert.Equal(t, member.UserZaloID, m.UserZaloID)
}

func TestGroupService_Me_Anonymous(t *testing.T) {
	svc, _ := newGroupService(t)

	_, err := svc.Me(context.Background(), domain.Caller{})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
