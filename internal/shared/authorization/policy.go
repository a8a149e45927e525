// Package authorization centralizes every permission decision as pure
// functions over an actor's role and id plus the relevant entity snapshot.
// Mutation sites call into this table instead of re-deriving conditions,
// and nothing here touches a store.
package authorization

import "helpdesk/internal/shared/constants"

// IsStaff reports whether the role is agent or admin.
func IsStaff(role string) bool {
	return role == constants.RoleAgent || role == constants.RoleAdmin
}

// IsAdmin reports whether the role is admin.
func IsAdmin(role string) bool {
	return role == constants.RoleAdmin
}

// CanManageTickets reports whether the actor may edit ticket fields,
// status, priority or assignment.
func CanManageTickets(role string) bool {
	return IsStaff(role)
}

// CanDeleteTicket reports whether the actor may delete a ticket.
func CanDeleteTicket(role string) bool {
	return IsAdmin(role)
}

// CanViewInternalComments reports whether internal comments may be
// returned to the actor.
func CanViewInternalComments(role string) bool {
	return IsStaff(role)
}

// CanDeleteComment reports whether the actor may delete a comment:
// the comment's author, an admin, or the agent assigned to the ticket.
func CanDeleteComment(actorID uint, actorRole string, authorID uint, ticketAssigneeID *uint) bool {
	if actorID == authorID {
		return true
	}
	if IsAdmin(actorRole) {
		return true
	}
	if actorRole == constants.RoleAgent && ticketAssigneeID != nil && *ticketAssigneeID == actorID {
		return true
	}
	return false
}

// CanDeleteAttachment reports whether the actor may delete an attachment:
// the uploader, an admin, or the agent assigned to the ticket.
func CanDeleteAttachment(actorID uint, actorRole string, uploaderID uint, ticketAssigneeID *uint) bool {
	if actorID == uploaderID {
		return true
	}
	if IsAdmin(actorRole) {
		return true
	}
	if actorRole == constants.RoleAgent && ticketAssigneeID != nil && *ticketAssigneeID == actorID {
		return true
	}
	return false
}

// CanChangeRole reports whether the actor may change another user's role.
func CanChangeRole(role string) bool {
	return IsAdmin(role)
}

// CanDeleteNotification reports whether the actor may delete a
// notification: its recipient or an admin.
func CanDeleteNotification(actorID uint, actorRole string, recipientID uint) bool {
	return actorID == recipientID || IsAdmin(actorRole)
}
