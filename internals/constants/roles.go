package constants

import "fmt"

const (
	RoleLearner            = "learner"
	RoleMasterPractitioner = "master_practitioner"
	RoleAdmin              = "admin"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess     = "❌ Only admins may access the %s feature."
	ErrOnlyPrivilegedCanAccess = "❌ Only admins or master practitioners may access the %s feature."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorPrivileged(feature string) string {
	return fmt.Sprintf(ErrOnlyPrivilegedCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleLearner,
		RoleMasterPractitioner,
		RoleAdmin,
	}

	// Roles allowed to read other users' results and manage tests.
	PrivilegedRoles = []string{
		RoleAdmin,
		RoleMasterPractitioner,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsPrivileged reports whether role may act on other users' data.
func IsPrivileged(role string) bool {
	for _, r := range PrivilegedRoles {
		if role == r {
			return true
		}
	}
	return false
}
