package domain

// Role is the closed set of dashboard roles.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleLandlord    Role = "landlord"
	RoleTenant      Role = "tenant"
	RoleMaintenance Role = "maintenance"
)

// roleDescriptions is the static permission table. It is total: every Role
// constant has an entry, and TestRoleDescriptionsTotal enforces that a new
// role cannot be added without one.
var roleDescriptions = map[Role]string{
	RoleAdmin:       "Full system access",
	RoleManager:     "Payments, invoices, tenant onboarding",
	RoleLandlord:    "Portfolio & cashflow visibility",
	RoleMaintenance: "Maintenance queue & updates",
	RoleTenant:      "Self-service portal",
}

// Roles returns all declared roles.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleLandlord, RoleTenant, RoleMaintenance}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	_, ok := roleDescriptions[r]
	return ok
}

// Describe returns the capability description for r. Unknown roles get a
// generic description rather than an error.
func (r Role) Describe() string {
	if d, ok := roleDescriptions[r]; ok {
		return d
	}
	return "Team member"
}

// CanManageCashflow reports whether r may record payments and issue
// invoices or rent reminders.
func (r Role) CanManageCashflow() bool {
	return r == RoleAdmin || r == RoleManager
}

// IsAuthorized reports whether r is one of the allowed roles. An empty
// allowed set means any authenticated role passes.
func (r Role) IsAuthorized(allowed ...Role) bool {
	if len(allowed) == 0 {
		return r != ""
	}
	for _, a := range allowed {
		if a == r {
			return true
		}
	}
	return false
}
