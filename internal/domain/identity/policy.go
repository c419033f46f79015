package identity

// Resource is a guarded capability a caller may be granted view access to.
type Resource string

const (
	ResourceDashboardStats Resource = "report:dashboard"
	ResourceQuantityByTime Resource = "report:quantity"
	ResourceTopItems       Resource = "report:top-items"
	ResourceOrderSummary   Resource = "report:summary"
	ResourceReceipt        Resource = "report:receipt"
	ResourcePeriodReport   Resource = "report:period"
	ResourceOrderManage    Resource = "order:manage"
	ResourceOrderCook      Resource = "order:cook"
	ResourceInventory      Resource = "inventory:manage"
	ResourceUserManage     Resource = "user:manage"
)

// CanView reports whether a role may access the given resource. The policy
// is deliberately centralized here so every transport consults the same
// table instead of inlining role checks.
func CanView(role Role, resource Resource) bool {
	switch resource {
	case ResourceDashboardStats, ResourceQuantityByTime, ResourceTopItems, ResourceOrderSummary, ResourceReceipt:
		return role == RoleAdmin
	case ResourcePeriodReport:
		return role == RoleCashier || role == RoleChef
	case ResourceOrderManage:
		return role == RoleStaff || role == RoleCashier || role == RoleAdmin
	case ResourceOrderCook:
		return role == RoleChef || role == RoleAdmin
	case ResourceInventory:
		return role == RoleStaff || role == RoleAdmin
	case ResourceUserManage:
		return role == RoleAdmin
	}
	return false
}
