// Package policy contains stateless role and ownership checks.
// Every check takes the actor and the resource explicitly.
package policy

import (
	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// Policy stateless access rules
type Policy struct{}

// New creates a policy
func New() Policy {
	return Policy{}
}

// IsAdmin admin or super admin
func (Policy) IsAdmin(actor *domain.User) bool {
	return actor != nil && (actor.Role == domain.RoleAdmin || actor.Role == domain.RoleSuperAdmin)
}

// IsAdminOrManager admin, super admin or manager
func (p Policy) IsAdminOrManager(actor *domain.User) bool {
	return p.IsAdmin(actor) || (actor != nil && actor.Role == domain.RoleManager)
}

// IsReceptionist receptionist or any role above it
func (p Policy) IsReceptionist(actor *domain.User) bool {
	return p.IsAdminOrManager(actor) || (actor != nil && actor.Role == domain.RoleReceptionist)
}

// CanAccessProperty admins always, others through property assignment
func (p Policy) CanAccessProperty(actor *domain.User, propertyID int64) bool {
	if p.IsAdmin(actor) {
		return true
	}
	return actor != nil && actor.IsAssignedTo(propertyID)
}

// CanManageApartments admin/manager may book any apartment, receptionists only at assigned properties
func (p Policy) CanManageApartments(actor *domain.User, apartments []*domain.Apartment) bool {
	if p.IsAdminOrManager(actor) {
		return true
	}
	if !p.IsReceptionist(actor) {
		return false
	}
	for _, apt := range apartments {
		if !actor.IsAssignedTo(apt.PropertyID) {
			return false
		}
	}
	return true
}

// CanAccessBooking admin, or assignment to the property of any of the booking's apartments
func (p Policy) CanAccessBooking(actor *domain.User, apartments []*domain.Apartment) bool {
	if p.IsAdmin(actor) {
		return true
	}
	for _, apt := range apartments {
		if p.CanAccessProperty(actor, apt.PropertyID) {
			return true
		}
	}
	return false
}

// CanApproveRefund receptionists may only request refunds
func (p Policy) CanApproveRefund(actor *domain.User) bool {
	return p.IsReceptionist(actor) && actor.Role != domain.RoleReceptionist
}

// CanViewSchedulesOf admin/manager see everyone, staff only themselves
func (p Policy) CanViewSchedulesOf(actor *domain.User, staffID int64) bool {
	return p.IsAdminOrManager(actor) || (actor != nil && actor.ID == staffID)
}

// CanDeleteSchedule admin/manager, the staff member or the author of the shift
func (p Policy) CanDeleteSchedule(actor *domain.User, schedule *domain.StaffSchedule) bool {
	if p.IsAdminOrManager(actor) {
		return true
	}
	if actor == nil {
		return false
	}
	return schedule.StaffID == actor.ID || (schedule.AddedBy != nil && *schedule.AddedBy == actor.ID)
}

// CanUpdateTask assignees and the creator
func (Policy) CanUpdateTask(actor *domain.User, task *domain.Task) bool {
	return actor != nil && (task.IsAssignedTo(actor.ID) || task.IsCreatedBy(actor.ID))
}
