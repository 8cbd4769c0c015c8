package permissions

import (
	"slices"
	"strings"

	"lux/shared/constant"
)

// moduleAccess maps a role to the ERP modules it may open. Staff roles beyond
// admin/employee mirror the front-desk org chart; a role not listed here gets
// nothing.
var moduleAccess = map[string][]string{
	constant.RoleAdmin: {
		constant.ModuleDashboard,
		constant.ModuleBookings,
		constant.ModuleRooms,
		constant.ModuleCheckIn,
		constant.ModuleHousekeeping,
		constant.ModuleStaff,
		constant.ModuleGuests,
		constant.ModulePayments,
		constant.ModuleAnalytics,
		constant.ModuleSettings,
	},
	constant.RoleEmployee: {
		constant.ModuleDashboard,
		constant.ModuleBookings,
		constant.ModuleRooms,
		constant.ModuleCheckIn,
		constant.ModuleHousekeeping,
		constant.ModuleGuests,
	},
	"manager": {
		constant.ModuleDashboard,
		constant.ModuleBookings,
		constant.ModuleRooms,
		constant.ModuleCheckIn,
		constant.ModuleHousekeeping,
		constant.ModuleStaff,
		constant.ModuleGuests,
		constant.ModulePayments,
		constant.ModuleAnalytics,
	},
	"receptionist": {
		constant.ModuleDashboard,
		constant.ModuleBookings,
		constant.ModuleRooms,
		constant.ModuleCheckIn,
		constant.ModuleGuests,
	},
	"housekeeping": {
		constant.ModuleDashboard,
		constant.ModuleRooms,
		constant.ModuleHousekeeping,
	},
}

// HasAccess reports whether a role may open an ERP module. The role is
// lower-cased before the lookup; unknown roles have no access at all.
func HasAccess(role, module string) bool {
	return slices.Contains(moduleAccess[strings.ToLower(role)], module)
}

// Modules returns the module set of a role. The slice is a copy.
func Modules(role string) []string {
	return slices.Clone(moduleAccess[strings.ToLower(role)])
}
