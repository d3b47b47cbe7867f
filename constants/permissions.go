package constants

// Staff permissions carried in the admin JWT "permissions" claim
const (
	PermAdminFull   = "museum-booking.admin.full-permit"
	PermCuratorRead = "museum-booking.curator.read-permit"
)

// Permission groups for convenience
var (
	DashboardPermissions = []string{
		PermAdminFull,
		PermCuratorRead,
	}
)
