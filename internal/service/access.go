package service

import (
	"context"
	"errors"
	"sort"

	"github.com/anmicius0/instructor-dashboard-api/internal/client"
	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"go.uber.org/zap"
)

// AccessManager grants and lists course staff roles and forum roles.
type AccessManager struct {
	access client.AccessClient
	users  client.UserClient
}

// NewAccessManager creates a new AccessManager.
func NewAccessManager(access client.AccessClient, users client.UserClient) *AccessManager {
	return &AccessManager{access: access, users: users}
}

// UpdateCourseAccess allows or revokes a course role for the user with the given email.
func (am *AccessManager) UpdateCourseAccess(ctx context.Context, courseID, email, rolename, mode string) error {
	if err := ValidateCourseRole(rolename); err != nil {
		return err
	}
	if err := ValidateMode(mode); err != nil {
		return err
	}

	user, err := am.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if mode == ModeAllow {
		err = am.access.AllowAccess(ctx, courseID, user.Username, rolename)
	} else {
		err = am.access.RevokeAccess(ctx, courseID, user.Username, rolename)
	}
	if err != nil {
		return err
	}

	utils.WithComponent("access").Info("Course access updated",
		zap.String(utils.FieldCourseID, courseID),
		zap.String(utils.FieldUsername, user.Username),
		zap.String(utils.FieldRole, rolename),
		zap.String(utils.FieldMode, mode))
	return nil
}

// ListCourseRoleMembers lists the users holding a course role.
func (am *AccessManager) ListCourseRoleMembers(ctx context.Context, courseID, rolename string) ([]client.User, error) {
	if err := ValidateCourseRole(rolename); err != nil {
		return nil, err
	}
	users, err := am.access.ListWithLevel(ctx, courseID, rolename)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []client.User{}
	}
	return users, nil
}

// ListForumMembers lists the members of a forum role sorted by username. A role
// the course has never populated has no members.
func (am *AccessManager) ListForumMembers(ctx context.Context, courseID, rolename string) ([]client.User, error) {
	if err := ValidateForumRole(rolename); err != nil {
		return nil, err
	}
	users, err := am.access.ListForumRoleMembers(ctx, courseID, rolename)
	if errors.Is(err, client.ErrRoleNotFound) {
		return []client.User{}, nil
	}
	if err != nil {
		return nil, err
	}

	members := make([]client.User, len(users))
	copy(members, users)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Username < members[j].Username
	})
	return members, nil
}

// UpdateForumRoleMembership adds or removes the user with the given email from a forum role.
func (am *AccessManager) UpdateForumRoleMembership(ctx context.Context, courseID, email, rolename, mode string) error {
	if err := ValidateForumRole(rolename); err != nil {
		return err
	}
	if err := ValidateMode(mode); err != nil {
		return err
	}

	user, err := am.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := am.access.UpdateForumRoleMembership(ctx, courseID, user.Username, rolename, mode); err != nil {
		return err
	}

	utils.WithComponent("access").Info("Forum role membership updated",
		zap.String(utils.FieldCourseID, courseID),
		zap.String(utils.FieldUsername, user.Username),
		zap.String(utils.FieldRole, rolename),
		zap.String(utils.FieldMode, mode))
	return nil
}
