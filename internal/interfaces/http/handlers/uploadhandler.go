package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inqboard/internal/application/inquiry/usecases"
	"inqboard/internal/infrastructure/storage"
	"inqboard/internal/shared/constants"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/utils"
)

type UploadHandler struct {
	store           *storage.LocalFileStore
	addAttachmentUC *usecases.AddAttachmentUseCase
	logger          logger.Interface
}

func NewUploadHandler(store *storage.LocalFileStore, addAttachmentUC *usecases.AddAttachmentUseCase) *UploadHandler {
	return &UploadHandler{
		store:           store,
		addAttachmentUC: addAttachmentUC,
		logger:          logger.NewLogger(),
	}
}

// Upload stores one multipart file and links it to the inquiry. The stored
// file is removed again when the database link fails.
func (h *UploadHandler) Upload(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "no file uploaded")
		return
	}

	stored, err := h.store.Save(header)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		InquiryID:  id,
		FileName:   stored.FileName,
		StoredPath: stored.StoredPath,
		SizeBytes:  stored.SizeBytes,
		UserID:     c.GetUint(constants.ContextKeyUserID),
		UserRole:   c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		if removeErr := h.store.Remove(stored.StoredPath); removeErr != nil {
			h.logger.Warnw("failed to clean up stored file", "path", stored.StoredPath, "error", removeErr)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"attachment": dto,
		"file_type":  stored.FileType,
	}, "file uploaded successfully")
}
