package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	inquiryUC "inqboard/internal/application/inquiry/usecases"
	serverUC "inqboard/internal/application/server/usecases"
	userUC "inqboard/internal/application/user/usecases"
	"inqboard/internal/application/workflow"
	"inqboard/internal/infrastructure/analysis"
	"inqboard/internal/infrastructure/auth"
	"inqboard/internal/infrastructure/config"
	"inqboard/internal/infrastructure/repository"
	"inqboard/internal/infrastructure/storage"
	"inqboard/internal/infrastructure/telegram"
	"inqboard/internal/infrastructure/vault"
	"inqboard/internal/interfaces/http/handlers"
	"inqboard/internal/interfaces/http/middleware"
	"inqboard/internal/interfaces/http/routes"
	sharedDB "inqboard/internal/shared/db"
	"inqboard/internal/shared/logger"
	"inqboard/internal/shared/version"
)

// Router wires repositories, use cases and handlers into one Gin engine.
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	inquiryHandler *handlers.InquiryHandler
	uploadHandler  *handlers.UploadHandler
	serverHandler  *handlers.ServerHandler
	userHandler    *handlers.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(gormDB *gorm.DB, cfg *config.Config) (*Router, error) {
	log := logger.NewLogger()

	inquiryRepo := repository.NewInquiryRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	logRepo := repository.NewProcessLogRepository(gormDB)
	attachmentRepo := repository.NewAttachmentRepository(gormDB)
	serverRepo := repository.NewServerRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	txManager := sharedDB.NewTransactionManager(gormDB)
	wfEngine := workflow.NewEngine(inquiryRepo, logRepo, txManager, log)

	credentialVault := vault.New(cfg.Vault.Key)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	notifier := telegram.NewNotifier(cfg.Telegram, log)

	analysisClient, err := analysis.NewClient(&cfg.Analysis, log)
	if err != nil {
		return nil, err
	}

	fileStore, err := storage.NewLocalFileStore(cfg.Upload, log)
	if err != nil {
		return nil, err
	}

	authHandler := handlers.NewAuthHandler(
		userUC.NewLoginUseCase(userRepo, hasher, jwtService, log),
	)

	inquiryHandler := handlers.NewInquiryHandler(
		inquiryUC.NewCreateInquiryUseCase(inquiryRepo, logRepo, userRepo, notifier, log),
		inquiryUC.NewGetInquiryUseCase(inquiryRepo, commentRepo, logRepo, log),
		inquiryUC.NewListInquiriesUseCase(inquiryRepo, log),
		inquiryUC.NewUpdateInquiryUseCase(inquiryRepo, log),
		inquiryUC.NewDeleteInquiryUseCase(inquiryRepo, commentRepo, logRepo, attachmentRepo, txManager, fileStore, log),
		inquiryUC.NewAddCommentUseCase(inquiryRepo, commentRepo, userRepo, log),
		inquiryUC.NewDeleteCommentUseCase(commentRepo, log),
		inquiryUC.NewAskAIUseCase(inquiryRepo, commentRepo, analysisClient, log),
		inquiryUC.NewProcessInquiryUseCase(inquiryRepo, wfEngine, notifier, log),
		inquiryUC.NewListProcessLogsUseCase(inquiryRepo, logRepo, log),
	)

	uploadHandler := handlers.NewUploadHandler(
		fileStore,
		inquiryUC.NewAddAttachmentUseCase(inquiryRepo, attachmentRepo, log),
	)

	serverHandler := handlers.NewServerHandler(
		serverUC.NewCreateServerUseCase(serverRepo, credentialVault, log),
		serverUC.NewUpdateServerUseCase(serverRepo, credentialVault, log),
		serverUC.NewGetServerUseCase(serverRepo, credentialVault, log),
		serverUC.NewListServersUseCase(serverRepo, log),
		serverUC.NewDeleteServerUseCase(serverRepo, log),
	)

	userHandler := handlers.NewUserHandler(
		userUC.NewCreateUserUseCase(userRepo, hasher, log),
		userUC.NewUpdateUserUseCase(userRepo, hasher, log),
		userUC.NewDeleteUserUseCase(userRepo, log),
		userUC.NewListUsersUseCase(userRepo, log),
	)

	return &Router{
		engine:         gin.New(),
		authHandler:    authHandler,
		inquiryHandler: inquiryHandler,
		uploadHandler:  uploadHandler,
		serverHandler:  serverHandler,
		userHandler:    userHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupInquiryRoutes(r.engine, &routes.InquiryRouteConfig{
		InquiryHandler: r.inquiryHandler,
		UploadHandler:  r.uploadHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupServerRoutes(r.engine, &routes.ServerRouteConfig{
		ServerHandler:  r.serverHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
