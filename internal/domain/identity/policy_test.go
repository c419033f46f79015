package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanViewDashboardResources(t *testing.T) {
	adminOnly := []Resource{
		ResourceDashboardStats,
		ResourceQuantityByTime,
		ResourceTopItems,
		ResourceOrderSummary,
		ResourceReceipt,
	}

	for _, res := range adminOnly {
		assert.True(t, CanView(RoleAdmin, res), "admin should view %s", res)
		assert.False(t, CanView(RoleCashier, res), "cashier should not view %s", res)
		assert.False(t, CanView(RoleChef, res), "chef should not view %s", res)
		assert.False(t, CanView(RoleStaff, res), "staff should not view %s", res)
	}
}

func TestCanViewPeriodReport(t *testing.T) {
	assert.True(t, CanView(RoleCashier, ResourcePeriodReport))
	assert.True(t, CanView(RoleChef, ResourcePeriodReport))
	assert.False(t, CanView(RoleAdmin, ResourcePeriodReport))
	assert.False(t, CanView(RoleStaff, ResourcePeriodReport))
}

func TestCanViewOrderResources(t *testing.T) {
	assert.True(t, CanView(RoleStaff, ResourceOrderManage))
	assert.True(t, CanView(RoleCashier, ResourceOrderManage))
	assert.True(t, CanView(RoleAdmin, ResourceOrderManage))
	assert.False(t, CanView(RoleChef, ResourceOrderManage))

	assert.True(t, CanView(RoleChef, ResourceOrderCook))
	assert.False(t, CanView(RoleCashier, ResourceOrderCook))
}

func TestCanViewUnknownResource(t *testing.T) {
	assert.False(t, CanView(RoleAdmin, Resource("report:unknown")))
}
