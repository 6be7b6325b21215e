// internal/service/roles.go
package service

import "slices"

// Course staff roles.
const (
	RoleInstructor = "instructor"
	RoleStaff      = "staff"
	RoleBeta       = "beta"
)

// Forum roles, named as the discussion service stores them.
const (
	ForumRoleAdministrator = "Administrator"
	ForumRoleModerator     = "Moderator"
	ForumRoleCommunityTA   = "Community TA"
)

// Modes for granting or removing a role.
const (
	ModeAllow  = "allow"
	ModeRevoke = "revoke"
)

// Access levels checked against the requester before a handler runs.
const (
	AccessStaff      = "staff"
	AccessInstructor = "instructor"
)

var (
	courseRoles = []string{RoleInstructor, RoleStaff, RoleBeta}
	forumRoles  = []string{ForumRoleAdministrator, ForumRoleModerator, ForumRoleCommunityTA}
	roleModes   = []string{ModeAllow, ModeRevoke}
)

// IsCourseRole reports whether name is a course staff role.
func IsCourseRole(name string) bool {
	return slices.Contains(courseRoles, name)
}

// IsForumRole reports whether name is a forum role.
func IsForumRole(name string) bool {
	return slices.Contains(forumRoles, name)
}

// ValidateCourseRole rejects anything but instructor, staff or beta.
func ValidateCourseRole(name string) error {
	if !IsCourseRole(name) {
		return invalidParameter("rolename", name)
	}
	return nil
}

// ValidateForumRole rejects anything but the three forum roles.
func ValidateForumRole(name string) error {
	if !IsForumRole(name) {
		return invalidParameter("rolename", name)
	}
	return nil
}

// ValidateMode rejects anything but allow or revoke.
func ValidateMode(mode string) error {
	if !slices.Contains(roleModes, mode) {
		return invalidParameter("mode", mode)
	}
	return nil
}
