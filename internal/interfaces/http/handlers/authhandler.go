package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inqboard/internal/application/user/usecases"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/utils"
)

type AuthHandler struct {
	loginUC *usecases.LoginUseCase
	logger  logger.Interface
}

func NewAuthHandler(loginUC *usecases.LoginUseCase) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger.NewLogger(),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}
