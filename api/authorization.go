package api

import (
	"context"
	"fmt"

	"github.com/userportal/userportal"
)

// Authorization contains authorization configuration.
type Authorization struct {
	// StaffList is the set of logins always considered staff
	StaffList map[string]struct{}
	// StaffGroup is the directory group whose members are staff, disabled when empty
	StaffGroup string
}

// IsStaffListed checks whether given login is in configured staff list.
func (auth *Authorization) IsStaffListed(login string) bool {
	_, ok := auth.StaffList[login]
	return ok
}

// IsStaff resolves whether given login belongs to a staff member. Anonymous users are never staff.
func (auth *Authorization) IsStaff(ctx context.Context, directory userportal.Directory, login string) (bool, error) {
	if login == "" {
		return false, nil
	}
	if auth.IsStaffListed(login) {
		return true, nil
	}
	if auth.StaffGroup == "" {
		return false, nil
	}

	isMember, err := directory.IsGroupMember(ctx, auth.StaffGroup, login)
	if err != nil {
		return false, fmt.Errorf("failed to check %s membership of %s: %w", auth.StaffGroup, login, err)
	}
	return isMember, nil
}

// The Role is an enumeration that represents the scope of user's permissions.
type Role string

var (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleStaff     Role = "staff"
)

// GetRole returns the role of the requester.
func GetRole(login string, isStaff bool) Role {
	switch {
	case login == "":
		return RoleAnonymous
	case isStaff:
		return RoleStaff
	default:
		return RoleUser
	}
}
