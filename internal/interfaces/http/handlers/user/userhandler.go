// Package user exposes user directory and role administration over HTTP.
package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type InviteUserRequest struct {
	Email string `json:"email" binding:"required"`
	Role  string `json:"role"`
}

type UserHandler struct {
	setRoleUC    usecases.SetUserRoleExecutor
	listUsersUC  usecases.ListUsersExecutor
	listAgentsUC usecases.ListAgentsExecutor
	inviteUserUC usecases.InviteUserExecutor
	logger       logger.Interface
}

func NewUserHandler(
	setRoleUC usecases.SetUserRoleExecutor,
	listUsersUC usecases.ListUsersExecutor,
	listAgentsUC usecases.ListAgentsExecutor,
	inviteUserUC usecases.InviteUserExecutor,
) *UserHandler {
	return &UserHandler{
		setRoleUC:    setRoleUC,
		listUsersUC:  listUsersUC,
		listAgentsUC: listAgentsUC,
		inviteUserUC: inviteUserUC,
		logger:       logger.NewLogger(),
	}
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"id":          c.GetUint(constants.ContextKeyUserID),
		"role":        c.GetString(constants.ContextKeyUserRole),
		"external_id": c.GetString(constants.ContextKeyExternalID),
	})
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Users)
}

// ListAgents handles GET /users/agents
func (h *UserHandler) ListAgents(c *gin.Context) {
	result, err := h.listAgentsUC.Execute(c.Request.Context(), usecases.ListAgentsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Agents)
}

// SetRole handles PATCH /users/:id/role
func (h *UserHandler) SetRole(c *gin.Context) {
	targetID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set role", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.setRoleUC.Execute(c.Request.Context(), usecases.SetUserRoleCommand{
		TargetUserID: targetID,
		Role:         req.Role,
		ActorID:      c.GetUint(constants.ContextKeyUserID),
		ActorRole:    c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", result)
}

// InviteUser handles POST /users/invite
func (h *UserHandler) InviteUser(c *gin.Context) {
	var req InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for invite user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.inviteUserUC.Execute(c.Request.Context(), usecases.InviteUserCommand{
		Email:     req.Email,
		Role:      req.Role,
		ActorID:   c.GetUint(constants.ContextKeyUserID),
		ActorRole: c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invitation sent successfully", result)
}
