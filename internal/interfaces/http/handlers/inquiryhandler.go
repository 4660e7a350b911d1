package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inqboard/internal/application/inquiry/usecases"
	"inqboard/internal/shared/constants"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/services/markdown"
	"inqboard/internal/shared/utils"
)

type InquiryHandler struct {
	createUC        *usecases.CreateInquiryUseCase
	getUC           *usecases.GetInquiryUseCase
	listUC          *usecases.ListInquiriesUseCase
	updateUC        *usecases.UpdateInquiryUseCase
	deleteUC        *usecases.DeleteInquiryUseCase
	addCommentUC    *usecases.AddCommentUseCase
	deleteCommentUC *usecases.DeleteCommentUseCase
	askAIUC         *usecases.AskAIUseCase
	processUC       *usecases.ProcessInquiryUseCase
	listLogsUC      *usecases.ListProcessLogsUseCase
	markdown        markdown.MarkdownService
	logger          logger.Interface
}

func NewInquiryHandler(
	createUC *usecases.CreateInquiryUseCase,
	getUC *usecases.GetInquiryUseCase,
	listUC *usecases.ListInquiriesUseCase,
	updateUC *usecases.UpdateInquiryUseCase,
	deleteUC *usecases.DeleteInquiryUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	deleteCommentUC *usecases.DeleteCommentUseCase,
	askAIUC *usecases.AskAIUseCase,
	processUC *usecases.ProcessInquiryUseCase,
	listLogsUC *usecases.ListProcessLogsUseCase,
) *InquiryHandler {
	return &InquiryHandler{
		createUC:        createUC,
		getUC:           getUC,
		listUC:          listUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		addCommentUC:    addCommentUC,
		deleteCommentUC: deleteCommentUC,
		askAIUC:         askAIUC,
		processUC:       processUC,
		listLogsUC:      listLogsUC,
		markdown:        markdown.NewMarkdownService(),
		logger:          logger.NewLogger(),
	}
}

type CreateInquiryRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

type UpdateInquiryRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type AskAIRequest struct {
	Question string `json:"question"`
}

type ProcessRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (h *InquiryHandler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create inquiry", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "title and content are required")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateInquiryCommand{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		AuthorID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *InquiryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dto, err := h.getUC.Execute(c.Request.Context(), usecases.GetInquiryQuery{
		InquiryID: id,
		UserID:    c.GetUint(constants.ContextKeyUserID),
		UserRole:  c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *InquiryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListInquiriesQuery{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Keyword:  c.Query("keyword"),
		Page:     page,
		PageSize: pageSize,
		UserID:   c.GetUint(constants.ContextKeyUserID),
		UserRole: c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Inquiries, result.Total, result.Page, result.PageSize)
}

func (h *InquiryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "title and content are required")
		return
	}

	dto, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateInquiryCommand{
		InquiryID: id,
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		UserID:    c.GetUint(constants.ContextKeyUserID),
		UserRole:  c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "inquiry updated", dto)
}

func (h *InquiryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteInquiryCommand{
		InquiryID: id,
		UserID:    c.GetUint(constants.ContextKeyUserID),
		UserRole:  c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *InquiryHandler) AddComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	dto, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		InquiryID: id,
		Content:   req.Content,
		UserID:    c.GetUint(constants.ContextKeyUserID),
		UserRole:  c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto)
}

func (h *InquiryHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		CommentID: commentID,
		UserID:    c.GetUint(constants.ContextKeyUserID),
		UserRole:  c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *InquiryHandler) AskAI(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AskAIRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.askAIUC.Execute(c.Request.Context(), usecases.AskAICommand{
		InquiryID: id,
		Question:  req.Question,
		UserID:    c.GetUint(constants.ContextKeyUserID),
		UserRole:  c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The model answers in markdown; ship a sanitized rendering for clients
	// that embed it directly.
	contentHTML, err := h.markdown.ToHTMLSanitized(dto.Content)
	if err != nil {
		h.logger.Warnw("failed to render answer markdown", "comment_id", dto.ID, "error", err)
		contentHTML = ""
	}

	utils.CreatedResponse(c, gin.H{
		"comment":      dto,
		"content_html": contentHTML,
	}, "answer published")
}

func (h *InquiryHandler) Process(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	result, err := h.processUC.Execute(c.Request.Context(), usecases.ProcessInquiryCommand{
		InquiryID:    id,
		TargetStatus: req.Status,
		Note:         req.Note,
		UserRole:     c.GetString(constants.ContextKeyUserRole),
		Username:     c.GetString(constants.ContextKeyUsername),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "inquiry processed", result)
}

func (h *InquiryHandler) ListProcessLogs(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	logs, err := h.listLogsUC.Execute(c.Request.Context(), usecases.ListProcessLogsQuery{
		InquiryID: id,
		UserID:    c.GetUint(constants.ContextKeyUserID),
		UserRole:  c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", logs)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
