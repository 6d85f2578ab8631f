package domain

import "testing"

func TestRoleDescriptionsTotal(t *testing.T) {
	for _, r := range Roles() {
		if !r.Valid() {
			t.Fatalf("role %q missing from permission table", r)
		}
		if r.Describe() == "Team member" {
			t.Fatalf("role %q has no dedicated description", r)
		}
	}
}

func TestDescribeUnknownRole(t *testing.T) {
	if got := Role("intern").Describe(); got != "Team member" {
		t.Fatalf("expected generic description, got %q", got)
	}
}

func TestCanManageCashflow(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleManager, true},
		{RoleLandlord, false},
		{RoleTenant, false},
		{RoleMaintenance, false},
		{Role("intern"), false},
	}
	for _, tc := range cases {
		if got := tc.role.CanManageCashflow(); got != tc.want {
			t.Errorf("CanManageCashflow(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestIsAuthorized(t *testing.T) {
	if RoleTenant.IsAuthorized(RoleAdmin, RoleManager) {
		t.Fatalf("tenant should not pass an admin/manager gate")
	}
	if !RoleManager.IsAuthorized(RoleAdmin, RoleManager) {
		t.Fatalf("manager should pass an admin/manager gate")
	}
	if !RoleLandlord.IsAuthorized() {
		t.Fatalf("any authenticated role should pass an empty gate")
	}
	if Role("").IsAuthorized() {
		t.Fatalf("missing role should not pass even an empty gate")
	}
}

func TestTicketPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() || PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Fatalf("priority ranks out of order: %d %d %d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
	if TicketPriority("Urgent").Rank() <= PriorityLow.Rank() {
		t.Fatalf("unknown priority should sort last")
	}
}
