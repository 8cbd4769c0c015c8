package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"lux/permissions"
	"lux/shared/constant"
)

func TestHasAccess(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		module string
		want   bool
	}{
		{"admin opens settings", constant.RoleAdmin, constant.ModuleSettings, true},
		{"admin opens staff", constant.RoleAdmin, constant.ModuleStaff, true},
		{"manager opens analytics", "manager", constant.ModuleAnalytics, true},
		{"manager has no settings", "manager", constant.ModuleSettings, false},
		{"receptionist opens check-in", "receptionist", constant.ModuleCheckIn, true},
		{"receptionist has no staff", "receptionist", constant.ModuleStaff, false},
		{"housekeeping opens housekeeping", "housekeeping", constant.ModuleHousekeeping, true},
		{"housekeeping has no bookings", "housekeeping", constant.ModuleBookings, false},
		{"employee has no payments", constant.RoleEmployee, constant.ModulePayments, false},
		{"unknown role has nothing", "bellhop", constant.ModuleDashboard, false},
		{"role lookup ignores case", "Manager", constant.ModuleDashboard, true},
		{"upper-cased staff role opens its modules", "HOUSEKEEPING", constant.ModuleHousekeeping, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permissions.HasAccess(tt.role, tt.module))
		})
	}
}

func TestModules(t *testing.T) {
	adminModules := permissions.Modules(constant.RoleAdmin)
	assert.Contains(t, adminModules, constant.ModuleSettings)
	assert.Contains(t, adminModules, constant.ModuleDashboard)

	assert.Empty(t, permissions.Modules("bellhop"))

	assert.Equal(t, permissions.Modules("receptionist"), permissions.Modules("Receptionist"))

	// The returned slice is a copy; mutating it must not leak back.
	clone := permissions.Modules("housekeeping")
	for i := range clone {
		clone[i] = "tampered"
	}
	assert.Contains(t, permissions.Modules("housekeeping"), constant.ModuleHousekeeping)
}

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantRole string
	}{
		{"health check is public", "/health", http.MethodGet, true, ""},
		{"room listing is public", "/v1/rooms/", http.MethodGet, true, ""},
		{"guest booking is public", "/v1/bookings/", http.MethodPost, true, ""},
		{"staff management is admin only", "/v1/erp/staff/", http.MethodPost, false, constant.RoleAdmin},
		{"room creation allows managers", "/v1/erp/rooms/", http.MethodPost, false, "manager"},
		{"housekeeping status allows housekeepers", "/v1/erp/housekeeping/{id}/status", http.MethodPatch, false, "housekeeping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, p.Skip)
			if tt.wantRole != "" {
				assert.Contains(t, p.Permissions, tt.wantRole)
			}
		})
	}
}

func TestFindPermissions_UnknownEndpoint(t *testing.T) {
	data := permissions.Get()

	p := data.FindPermissions("/v1/erp/unknown", http.MethodGet)

	assert.False(t, p.Skip)
	assert.Empty(t, p.Permissions)
}
