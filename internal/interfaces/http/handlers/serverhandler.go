package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inqboard/internal/application/server/usecases"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/utils"
)

type ServerHandler struct {
	createUC *usecases.CreateServerUseCase
	updateUC *usecases.UpdateServerUseCase
	getUC    *usecases.GetServerUseCase
	listUC   *usecases.ListServersUseCase
	deleteUC *usecases.DeleteServerUseCase
	logger   logger.Interface
}

func NewServerHandler(
	createUC *usecases.CreateServerUseCase,
	updateUC *usecases.UpdateServerUseCase,
	getUC *usecases.GetServerUseCase,
	listUC *usecases.ListServersUseCase,
	deleteUC *usecases.DeleteServerUseCase,
) *ServerHandler {
	return &ServerHandler{
		createUC: createUC,
		updateUC: updateUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type CreateServerRequest struct {
	SiteName     string `json:"site_name" binding:"required"`
	DisplayName  string `json:"display_name" binding:"required"`
	Host         string `json:"host" binding:"required"`
	Port         int    `json:"port" binding:"required"`
	SSHUser      string `json:"ssh_user"`
	SSHPass      string `json:"ssh_pass"`
	DBUser       string `json:"db_user"`
	DBPass       string `json:"db_pass"`
	SiteURL      string `json:"site_url"`
	SiteLoginID  string `json:"site_login_id"`
	SiteLoginPW  string `json:"site_login_pw"`
	AdminURL     string `json:"admin_url"`
	AdminLoginID string `json:"admin_login_id"`
	AdminLoginPW string `json:"admin_login_pw"`
	Notes        string `json:"notes"`
}

type UpdateServerRequest struct {
	DisplayName  string `json:"display_name" binding:"required"`
	Host         string `json:"host" binding:"required"`
	Port         int    `json:"port" binding:"required"`
	SSHUser      string `json:"ssh_user" binding:"required"`
	SSHPass      string `json:"ssh_pass"`
	DBUser       string `json:"db_user"`
	DBPass       string `json:"db_pass"`
	SiteURL      string `json:"site_url"`
	SiteLoginID  string `json:"site_login_id"`
	SiteLoginPW  string `json:"site_login_pw"`
	AdminURL     string `json:"admin_url"`
	AdminLoginID string `json:"admin_login_id"`
	AdminLoginPW string `json:"admin_login_pw"`
	Notes        string `json:"notes"`
	Enabled      *bool  `json:"enabled"`
}

func (h *ServerHandler) Create(c *gin.Context) {
	var req CreateServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create server", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "site_name, display_name, host and port are required")
		return
	}

	dto, err := h.createUC.Execute(c.Request.Context(), usecases.CreateServerCommand{
		SiteName:     req.SiteName,
		DisplayName:  req.DisplayName,
		Host:         req.Host,
		Port:         req.Port,
		SSHUser:      req.SSHUser,
		SSHPass:      req.SSHPass,
		DBUser:       req.DBUser,
		DBPass:       req.DBPass,
		SiteURL:      req.SiteURL,
		SiteLoginID:  req.SiteLoginID,
		SiteLoginPW:  req.SiteLoginPW,
		AdminURL:     req.AdminURL,
		AdminLoginID: req.AdminLoginID,
		AdminLoginPW: req.AdminLoginPW,
		Notes:        req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto)
}

func (h *ServerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "display_name, host, port and ssh_user are required")
		return
	}

	dto, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateServerCommand{
		ServerID:     id,
		DisplayName:  req.DisplayName,
		Host:         req.Host,
		Port:         req.Port,
		SSHUser:      req.SSHUser,
		SSHPass:      req.SSHPass,
		DBUser:       req.DBUser,
		DBPass:       req.DBPass,
		SiteURL:      req.SiteURL,
		SiteLoginID:  req.SiteLoginID,
		SiteLoginPW:  req.SiteLoginPW,
		AdminURL:     req.AdminURL,
		AdminLoginID: req.AdminLoginID,
		AdminLoginPW: req.AdminLoginPW,
		Notes:        req.Notes,
		Enabled:      req.Enabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "server updated", dto)
}

func (h *ServerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dto, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *ServerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := h.listUC.Execute(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Servers, result.Total, result.Page, result.PageSize)
}

func (h *ServerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
