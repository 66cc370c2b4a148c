package ldap

import (
	"fmt"
	"strconv"
	"strings"

	goldap "github.com/go-ldap/ldap/v3"

	"github.com/userportal/userportal"
)

func equalityFilter(attribute, value string) string {
	return fmt.Sprintf("(%s=%s)", attribute, goldap.EscapeFilter(value))
}

func andFilter(filters ...string) string {
	if len(filters) == 1 {
		return filters[0]
	}
	return "(&" + strings.Join(filters, "") + ")"
}

func allocationSearchFilter(attributes Attributes, filter userportal.AllocationFilter) string {
	filters := []string{equalityFilter("objectClass", attributes.AllocationObjectClass)}
	if filter.Name != "" {
		filters = append(filters, equalityFilter(attributes.AllocationName, filter.Name))
	}
	if filter.Member != "" {
		filters = append(filters, equalityFilter(attributes.AllocationMembers, filter.Member))
	}
	if filter.Status != "" {
		filters = append(filters, equalityFilter(attributes.AllocationStatus, filter.Status))
	}
	return andFilter(filters...)
}

func userByUsernameFilter(attributes Attributes, username string) string {
	return andFilter(
		equalityFilter("objectClass", attributes.UserObjectClass),
		equalityFilter(attributes.Username, username),
	)
}

func userByUIDFilter(attributes Attributes, uid int) string {
	return andFilter(
		equalityFilter("objectClass", attributes.UserObjectClass),
		equalityFilter(attributes.UID, strconv.Itoa(uid)),
	)
}

func groupMemberFilter(attributes Attributes, group, username string) string {
	return andFilter(
		equalityFilter("objectClass", attributes.GroupObjectClass),
		equalityFilter(attributes.GroupName, group),
		equalityFilter(attributes.GroupMembers, username),
	)
}
