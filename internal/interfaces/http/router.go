package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	licenseUC "modgate/internal/application/license/usecases"
	registryUC "modgate/internal/application/registry/usecases"
	"modgate/internal/infrastructure/auth"
	"modgate/internal/infrastructure/config"
	"modgate/internal/infrastructure/email"
	"modgate/internal/infrastructure/repository"
	"modgate/internal/interfaces/http/handlers"
	"modgate/internal/interfaces/http/middleware"
	"modgate/internal/shared/db"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/services/markdown"

	"modgate/internal/interfaces/http/routes"
)

// Router holds the HTTP engine and its wired dependencies.
type Router struct {
	engine      *gin.Engine
	cfg         *config.Config
	redisClient *redis.Client

	authorizeHandler *handlers.AuthorizeHandler
	sessionHandler   *handlers.SessionHandler
	adminHandler     *handlers.AdminHandler
	fileHandler      *handlers.FileHandler
	healthHandler    *handlers.HealthHandler
	adminTokens      *auth.AdminTokenService
	rateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies wired.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	storeTimeout := time.Duration(cfg.Database.QueryTimeoutSeconds) * time.Second

	keyRepo := repository.NewLicenseKeyRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	fileRepo := repository.NewFileEntryRepository(database)
	txManager := db.NewTransactionManager(database)

	identity := auth.NewGoogleIdentityVerifier(auth.GoogleIdentityVerifierConfig{
		ClientID: cfg.OAuth.Google.ClientID,
	})
	credentials := auth.NewSessionTokenService(cfg.Auth.SessionToken.Secret)
	adminTokens := auth.NewAdminTokenService(cfg.Auth.Admin.TokenSecret, cfg.Auth.Admin.TokenExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(0)

	var sender licenseUC.KeySender
	if cfg.Email.Enabled {
		sender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
	}

	authorizeUC := licenseUC.NewAuthorizeUseCase(
		identity, keyRepo, sessionRepo, fileRepo,
		credentials, txManager, storeTimeout, log,
	)
	statusUC := licenseUC.NewStatusUseCase(identity, sessionRepo, storeTimeout, log)
	verifyUC := licenseUC.NewVerifySessionUseCase(credentials, log)
	createKeysUC := licenseUC.NewCreateKeysUseCase(keyRepo, sender, cfg.Auth.KeyLength, storeTimeout, log)
	listKeysUC := licenseUC.NewListKeysUseCase(keyRepo, storeTimeout, log)
	revokeUC := licenseUC.NewRevokeSessionUseCase(sessionRepo, storeTimeout, log)

	markdownService := markdown.NewService()
	upsertFileUC := registryUC.NewUpsertFileUseCase(fileRepo, storeTimeout, log)
	listFilesUC := registryUC.NewListFilesUseCase(fileRepo, storeTimeout, log)
	deleteFileUC := registryUC.NewDeleteFileUseCase(fileRepo, storeTimeout, log)
	renderNotesUC := registryUC.NewRenderNotesUseCase(fileRepo, markdownService, storeTimeout, log)

	var redisClient *redis.Client
	var rateLimiter *middleware.RateLimiter
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimiter = middleware.NewRateLimiter(
			redisClient,
			cfg.Redis.RateLimit.Requests,
			time.Duration(cfg.Redis.RateLimit.WindowSeconds)*time.Second,
		)
	}

	return &Router{
		engine:      engine,
		cfg:         cfg,
		redisClient: redisClient,

		authorizeHandler: handlers.NewAuthorizeHandler(authorizeUC, statusUC, log),
		sessionHandler:   handlers.NewSessionHandler(verifyUC, log),
		adminHandler: handlers.NewAdminHandler(
			createKeysUC, listKeysUC, revokeUC,
			hasher, adminTokens, cfg.Auth.Admin.PasswordHash, log,
		),
		fileHandler: handlers.NewFileHandler(
			upsertFileUC, listFilesUC, deleteFileUC, renderNotesUC, log,
		),
		healthHandler: handlers.NewHealthHandler(database, redisClient, log),
		adminTokens:   adminTokens,
		rateLimiter:   rateLimiter,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", r.healthHandler.Health)

	routes.SetupAPIRoutes(r.engine, &routes.APIRouteConfig{
		AuthorizeHandler: r.authorizeHandler,
		SessionHandler:   r.sessionHandler,
		FileHandler:      r.fileHandler,
		RateLimiter:      r.rateLimiter,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler: r.adminHandler,
		FileHandler:  r.fileHandler,
		AdminTokens:  r.adminTokens,
		RateLimiter:  r.rateLimiter,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Close releases router-owned resources.
func (r *Router) Close() error {
	if r.redisClient != nil {
		return r.redisClient.Close()
	}
	return nil
}
