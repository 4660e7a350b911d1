package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inqboard/internal/application/user/usecases"
	"inqboard/internal/shared/constants"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/utils"
)

type UserHandler struct {
	createUC *usecases.CreateUserUseCase
	updateUC *usecases.UpdateUserUseCase
	deleteUC *usecases.DeleteUserUseCase
	listUC   *usecases.ListUsersUseCase
	logger   logger.Interface
}

func NewUserHandler(
	createUC *usecases.CreateUserUseCase,
	updateUC *usecases.UpdateUserUseCase,
	deleteUC *usecases.DeleteUserUseCase,
	listUC *usecases.ListUsersUseCase,
) *UserHandler {
	return &UserHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Role     string `json:"role" binding:"required,oneof=admin user"`
	SiteTag  string `json:"site_tag"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	SiteTag  string `json:"site_tag"`
	Password string `json:"password"`
	Active   *bool  `json:"active"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "username, password and role are required")
		return
	}

	dto, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		SiteTag:  req.SiteTag,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:   id,
		Name:     req.Name,
		SiteTag:  req.SiteTag,
		Password: req.Password,
		Active:   req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated", dto)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.deleteUC.Execute(c.Request.Context(), id, c.GetUint(constants.ContextKeyUserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := h.listUC.Execute(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}
