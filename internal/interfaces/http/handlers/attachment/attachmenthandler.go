// Package attachment exposes the two-phase upload flow and attachment
// management over HTTP.
package attachment

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/attachment/usecases"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// 25 MiB, matching the web client's upload cap.
const maxUploadBytes = 25 << 20

type RegisterAttachmentRequest struct {
	BlobRef  string `json:"blob_ref" binding:"required"`
	FileName string `json:"file_name" binding:"required"`
	FileSize int64  `json:"file_size"`
}

type AttachmentHandler struct {
	requestUploadUC usecases.RequestUploadExecutor
	registerUC      usecases.RegisterAttachmentExecutor
	listUC          usecases.ListAttachmentsExecutor
	deleteUC        usecases.DeleteAttachmentExecutor
	blobStore       *storage.LocalBlobStore
	logger          logger.Interface
}

func NewAttachmentHandler(
	requestUploadUC usecases.RequestUploadExecutor,
	registerUC usecases.RegisterAttachmentExecutor,
	listUC usecases.ListAttachmentsExecutor,
	deleteUC usecases.DeleteAttachmentExecutor,
	blobStore *storage.LocalBlobStore,
) *AttachmentHandler {
	return &AttachmentHandler{
		requestUploadUC: requestUploadUC,
		registerUC:      registerUC,
		listUC:          listUC,
		deleteUC:        deleteUC,
		blobStore:       blobStore,
		logger:          logger.NewLogger(),
	}
}

// RequestUpload handles POST /attachments/upload-url
func (h *AttachmentHandler) RequestUpload(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.requestUploadUC.Execute(c.Request.Context(), usecases.RequestUploadCommand{ActorID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Target)
}

// Upload handles PUT /files/upload/:ref with the raw file body.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	ref := c.Param("ref")

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes+1))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read upload body")
		return
	}
	if len(data) > maxUploadBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "file exceeds upload limit")
		return
	}

	if err := h.blobStore.Store(c.Request.Context(), ref, data); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Upload complete", gin.H{"blob_ref": ref})
}

// Download handles GET /files/:ref
func (h *AttachmentHandler) Download(c *gin.Context) {
	path, err := h.blobStore.Open(c.Param("ref"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.File(path)
}

// RegisterAttachment handles POST /tickets/:id/attachments
func (h *AttachmentHandler) RegisterAttachment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RegisterAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register attachment", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterAttachmentCommand{
		TicketID:   ticketID,
		BlobRef:    req.BlobRef,
		FileName:   req.FileName,
		FileSize:   req.FileSize,
		UploadedBy: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment registered successfully")
}

// ListAttachments handles GET /tickets/:id/attachments
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Attachments)
}

// DeleteAttachment handles DELETE /attachments/:id
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	attachmentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		AttachmentID: attachmentID,
		ActorID:      c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment deleted successfully", result)
}
