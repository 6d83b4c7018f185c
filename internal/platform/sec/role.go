// Copyright (c) 2026 Kasane. All rights reserved.

package sec

// Role is the access level attached to a user account.
type Role string

const (
	// RoleReader is the default role for registered users.
	RoleReader Role = "reader"

	// RoleModerator can manage catalog metadata (tags, series, collections).
	RoleModerator Role = "moderator"

	// RoleAdmin has unrestricted access, including book lifecycle management.
	RoleAdmin Role = "admin"
)

// rank orders roles from least to most privileged.
var rank = map[Role]int{
	RoleReader:    1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// IsValid reports whether r is a recognised [Role] value.
func (r Role) IsValid() bool {
	_, ok := rank[r]
	return ok
}

// AtLeast reports whether r meets or exceeds the target role's privilege.
// Unknown roles never satisfy any requirement.
func (r Role) AtLeast(target Role) bool {
	have, ok := rank[r]
	if !ok {
		return false
	}
	want, ok := rank[target]
	if !ok {
		return false
	}
	return have >= want
}
