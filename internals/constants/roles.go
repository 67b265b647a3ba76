package constants

import "fmt"

// Role values carried in the JWT "role" claim. These match the identity
// provider's role set one-to-one; the engine never invents roles.
const (
	RoleParent     = "PARENT"
	RoleAccountant = "ACCOUNTANT"
	RoleWarden     = "WARDEN"
	RoleHM         = "HM"
	RoleGateStaff  = "GATE_STAFF"
	RoleAdmin      = "ADMIN"
)

// Error message templates per role group
const (
	ErrOnlyParentsCanAccess   = "❌ Only parents may access %s."
	ErrOnlyStaffCanAccess     = "❌ Only staff may access %s."
	ErrOnlyGateStaffCanAccess = "❌ Only gate staff may access %s."
	ErrOnlyAdminsCanAccess    = "❌ Only admins may access %s."
)

func RoleErrorParent(feature string) string {
	return fmt.Sprintf(ErrOnlyParentsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorGateStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyGateStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleParent,
		RoleAccountant,
		RoleWarden,
		RoleHM,
		RoleGateStaff,
		RoleAdmin,
	}

	// Every non-parent role; the staff dashboard is shared by all of them.
	StaffRoles = []string{
		RoleAccountant,
		RoleWarden,
		RoleHM,
		RoleGateStaff,
		RoleAdmin,
	}

	ParentOnly = []string{
		RoleParent,
	}

	GateStaffOnly = []string{
		RoleGateStaff,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
