// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	_ "nhaf/docs" // swagger docs
	"nhaf/internal/cache"
	"nhaf/internal/config"
	"nhaf/internal/database"
	"nhaf/internal/featureflags"
	"nhaf/internal/memberid"
	"nhaf/internal/middleware"
	"nhaf/internal/models"
	"nhaf/internal/notifications"
	"nhaf/internal/repository"
	"nhaf/internal/service"
	"nhaf/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Rate limits for the public write endpoints.
const (
	formLimit      = 10
	chatLimit      = 20
	loginLimit     = 10
	rateLimitSpan  = time.Minute
	chatCookieName = "chat_session_id"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc

	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository

	notifier     *notifications.Notifier
	hub          *notifications.Hub
	publisher    *notifications.Fanout
	featureFlags *featureflags.Manager
	store        storage.Storage

	userService         *service.UserService
	memberService       *service.MemberService
	applicationService  *service.ApplicationService
	promotionService    *service.PromotionService
	donationService     *service.DonationService
	notificationService *service.NotificationService
	chatService         *service.ChatService
	settingsService     *service.SettingsService
	contactService      *service.ContactService
	mediaService        *service.MediaService
	dashboardService    *service.DashboardService
	siteContentService  *service.SiteContentService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// The bootstrap layer establishes DB/Redis and performs any explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	store, err := storage.NewStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}
	s := newServer(cfg, db, redisClient, store)
	s.promMiddleware = middleware.InitMetrics("nhaf-api")
	return s, nil
}

// newServer wires repositories and services. It registers no global metrics,
// so tests can build as many servers as they need.
func newServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store storage.Storage) *Server {
	s := &Server{
		config:       cfg,
		db:           db,
		redis:        redisClient,
		store:        store,
		featureFlags: featureflags.NewManager(cfg.FeatureFlags),
		userRepo:     repository.NewUserRepository(db),
		settingsRepo: repository.NewSettingsRepository(db),
	}

	s.hub = notifications.NewHub()
	if redisClient != nil {
		s.notifier = notifications.NewNotifier(redisClient)
	}
	s.publisher = notifications.NewFanout(s.hub, s.notifier)
	s.hub.OnStaffActivity(s.touchAdminLastSeen, time.Minute)

	memberRepo := repository.NewMemberRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	contentRepo := repository.NewContentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatRepository(db)
	contactRepo := repository.NewContactRepository(db)

	ids := memberid.NewEngine(memberRepo, cfg.MemberIDPrefix)
	gateways := service.NewGateways(cfg, s.featureFlags)

	s.userService = service.NewUserService(s.userRepo)
	s.notificationService = service.NewNotificationService(notificationRepo, s.publisher)
	s.settingsService = service.NewSettingsService(s.settingsRepo)
	s.memberService = service.NewMemberService(memberRepo, ids, s.settingsService)
	s.applicationService = service.NewApplicationService(applicationRepo, contentRepo, gateways, s.notificationService, s.publisher)
	s.promotionService = service.NewPromotionService(applicationRepo, memberRepo, ids, s.notificationService, s.publisher)
	s.donationService = service.NewDonationService(donationRepo, contentRepo, gateways, s.notificationService, s.publisher)
	s.chatService = service.NewChatService(chatRepo, s.settingsRepo, s.featureFlags, s.notificationService, s.publisher)
	s.contactService = service.NewContactService(contactRepo, s.notificationService)
	s.mediaService = service.NewMediaService(store, cfg)
	s.siteContentService = service.NewSiteContentService(repository.NewSiteContentRepository(db), s.settingsService)
	s.dashboardService = service.NewDashboardService(memberRepo, donationRepo, contactRepo, applicationRepo, notificationRepo, chatRepo)
	return s
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New(), requestid.New(), middleware.ContextMiddleware())
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}
	app.Use(helmet.New(), middleware.StructuredLogger())

	// CORS sits in front of the limiter so a 429 still carries CORS headers.
	app.Use(cors.New(s.corsConfig()), globalLimiter())
}

const (
	defaultOrigins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	globalLimit    = 100
)

func (s *Server) corsConfig() cors.Config {
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = defaultOrigins
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowCredentials: true,
		MaxAge:           int((24 * time.Hour).Seconds()),
	}
}

// globalLimiter caps each client IP at globalLimit requests per minute.
// Preflight requests are never counted.
func globalLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        globalLimit,
		Expiration: rateLimitSpan,
		Next:       func(c *fiber.Ctx) bool { return c.Method() == fiber.MethodOptions },
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return models.RespondWithError(c, fiber.StatusTooManyRequests,
				models.NewRateLimitError("Too many requests, please try again later."))
		},
	})
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/swagger/*", swagger.HandlerDefault)

	if s.config.StorageBackend == "" || s.config.StorageBackend == "local" {
		app.Static(publicMediaPrefix(s.config), s.config.StorageLocalPath)
	}

	formLimiter := middleware.RateLimit(s.redis, middleware.Limit{
		Name: "public_form", Limit: formLimit, Window: rateLimitSpan,
	})

	// Public site
	api.Get("/settings", s.GetPublicSettings)
	api.Get("/team", s.GetTeamDirectory)
	api.Get("/donations/page", s.GetDonationPage)
	api.Post("/donations", formLimiter, s.CreateDonation)
	api.Post("/volunteers", formLimiter, s.SubmitVolunteer)
	api.Get("/memberships/fees", s.GetMembershipFees)
	api.Post("/memberships", formLimiter, s.SubmitMembership)
	api.Post("/contact", formLimiter, s.SubmitContact)

	pages := api.Group("/pages")
	pages.Get("/home", s.GetHomePage)
	pages.Get("/about", s.GetAboutPage)
	pages.Get("/impact", s.GetImpactPage)
	pages.Get("/contact", s.GetContactInfo)
	api.Get("/programs", s.ListPublicPrograms)
	api.Get("/programs/:slug", s.GetProgram)
	api.Get("/gallery", s.GetGallery)
	api.Get("/navigation", s.GetNavigation)
	api.Get("/collaborations", s.ListPublicCollaborations)
	api.Get("/collaborations/:id", s.GetCollaboration)

	chat := api.Group("/chat")
	chat.Get("/status", s.GetChatStatus)
	chat.Post("/messages", middleware.RateLimit(s.redis, middleware.Limit{
		Name: "chat_send", Limit: chatLimit, Window: rateLimitSpan,
		Key: middleware.KeyByCookie(chatCookieName),
	}), s.SendChatMessage)
	chat.Get("/messages", s.PollChatMessages)

	// Gateway callbacks; the payer's browser lands here.
	payments := api.Group("/payments")
	payments.Get("/esewa/donations/:token/success", s.DonationEsewaSuccess)
	payments.Get("/esewa/donations/:token/failure", s.DonationEsewaFailure)
	payments.Get("/khalti/donations/return", s.DonationKhaltiReturn)
	payments.Get("/esewa/memberships/:token/success", s.MembershipEsewaSuccess)
	payments.Get("/esewa/memberships/:token/failure", s.MembershipEsewaFailure)
	payments.Get("/khalti/memberships/return", s.MembershipKhaltiReturn)

	// Staff auth
	auth := api.Group("/auth")
	auth.Post("/login", middleware.RateLimit(s.redis, middleware.Limit{
		Name: "login", Limit: loginLimit, Window: 5 * time.Minute,
	}), s.Login)
	auth.Post("/logout", s.AuthRequired(), s.Logout)
	auth.Get("/me", s.AuthRequired(), s.Me)
	auth.Put("/password", s.AuthRequired(), s.ChangePassword)

	api.Post("/ws/ticket", s.AuthRequired(), s.IssueWSTicket)
	api.Get("/ws/admin", s.AuthRequired(), s.AdminWebsocketHandler())

	// Staff console
	admin := api.Group("/admin", s.AuthRequired())
	admin.Get("/dashboard", s.GetDashboard)
	admin.Get("/metrics/monitor", monitor.New(monitor.Config{Title: "NHAF API Monitor"}))

	members := admin.Group("/members")
	members.Get("/", s.ListMembers)
	members.Post("/", s.CreateMember)
	members.Get("/:id", s.GetMember)
	members.Put("/:id", s.UpdateMember)
	members.Delete("/:id", s.DeleteMember)

	chapters := admin.Group("/chapters")
	chapters.Get("/", s.ListChapters)
	chapters.Post("/", s.SaveChapter)
	chapters.Put("/:id", s.SaveChapter)
	chapters.Delete("/:id", s.DeleteChapter)

	applications := admin.Group("/applications")
	applications.Get("/", s.GetReviewQueue)
	applications.Get("/volunteers/:id", s.GetVolunteerApplication)
	applications.Post("/volunteers/:id/approve", s.ApproveVolunteer)
	applications.Post("/volunteers/:id/reject", s.RejectVolunteer)
	applications.Get("/memberships/:id", s.GetMembershipApplication)
	applications.Post("/memberships/:id/approve", s.ApproveMembership)
	applications.Post("/memberships/:id/reject", s.RejectMembership)
	applications.Post("/memberships/:id/payment", s.ConfirmMembershipPayment)

	fees := admin.Group("/membership-fees")
	fees.Get("/", s.GetMembershipFees)
	fees.Post("/", s.SaveMembershipFee)
	fees.Put("/:id", s.SaveMembershipFee)
	fees.Delete("/:id", s.DeleteMembershipFee)

	donations := admin.Group("/donations")
	donations.Get("/", s.ListDonations)
	donations.Get("/:id", s.GetDonation)
	donations.Post("/:id/confirm", s.ConfirmDonation)

	tiers := admin.Group("/donation-tiers")
	tiers.Post("/", s.SaveDonationTier)
	tiers.Put("/:id", s.SaveDonationTier)
	tiers.Delete("/:id", s.DeleteDonationTier)

	banks := admin.Group("/bank-details")
	banks.Post("/", s.SaveBankDetail)
	banks.Put("/:id", s.SaveBankDetail)
	banks.Delete("/:id", s.DeleteBankDetail)

	notes := admin.Group("/notifications")
	notes.Get("/", s.GetNotificationFeed)
	notes.Get("/all", s.ListNotifications)
	notes.Post("/read-all", s.MarkAllNotificationsRead)
	notes.Post("/:id/read", s.MarkNotificationRead)

	adminChat := admin.Group("/chat")
	adminChat.Get("/sessions", s.ListChatSessions)
	adminChat.Get("/sessions/:session", s.ViewChatSession)
	adminChat.Post("/sessions/:session/reply", s.ReplyToChat)
	adminChat.Get("/unread", s.GetChatUnreadCount)
	adminChat.Get("/settings", s.GetChatSettings)
	adminChat.Put("/settings", s.UpdateChatSettings)
	adminChat.Get("/quick-responses", s.ListQuickResponses)
	adminChat.Post("/quick-responses", s.SaveQuickResponse)
	adminChat.Post("/quick-responses/reorder", s.ReorderQuickResponses)
	adminChat.Put("/quick-responses/:id", s.SaveQuickResponse)
	adminChat.Delete("/quick-responses/:id", s.DeleteQuickResponse)

	settings := admin.Group("/settings")
	settings.Put("/site", s.UpdateSiteIdentity)
	settings.Put("/theme", s.UpdateSiteTheme)
	settings.Get("/team-page", s.GetTeamPageSettings)
	settings.Put("/team-page", s.UpdateTeamPageSettings)
	settings.Post("/team-page/reset", s.ResetTeamPageSettings)

	content := admin.Group("/content")
	content.Get("/organization", s.GetOrganizationInfo)
	content.Put("/organization", s.UpdateOrganizationInfo)
	content.Get("/contact-info", s.GetContactInfo)
	content.Put("/contact-info", s.UpdateContactInfo)
	crud := func(path string, list, save, del fiber.Handler) fiber.Router {
		g := content.Group(path)
		g.Get("/", list)
		g.Post("/", save)
		g.Put("/:id", save)
		g.Delete("/:id", del)
		return g
	}
	crud("/program-categories", s.ListProgramCategories, s.SaveProgramCategory, s.DeleteProgramCategory)
	crud("/programs", s.ListPrograms, s.SaveProgram, s.DeleteProgram)
	crud("/impact-stats", s.ListImpactStats, s.SaveImpactStat, s.DeleteImpactStat)
	crud("/founders", s.ListFounders, s.SaveFounder, s.DeleteFounder)
	crud("/chapter-locations", s.ListChapterLocations, s.SaveChapterLocation, s.DeleteChapterLocation)
	crud("/achievements", s.ListAchievements, s.SaveAchievement, s.DeleteAchievement)
	crud("/hero-banners", s.ListHeroBanners, s.SaveHeroBanner, s.DeleteHeroBanner)
	crud("/home-content", s.ListHomeContent, s.SaveHomeContent, s.DeleteHomeContent)
	crud("/announcements", s.ListAnnouncements, s.SaveAnnouncement, s.DeleteAnnouncement)
	crud("/gallery", s.ListGalleryImages, s.SaveGalleryImage, s.DeleteGalleryImage)
	crud("/collaborations", s.ListCollaborations, s.SaveCollaboration, s.DeleteCollaboration)
	nav := crud("/navigation", s.ListNavItems, s.SaveNavItem, s.DeleteNavItem)
	nav.Post("/reorder", s.ReorderNavItems)
	nav.Post("/restore-defaults", s.RestoreDefaultNav)

	admin.Get("/contact", s.ListContactMessages)
	admin.Post("/media", s.UploadMedia)
	admin.Delete("/media", s.DeleteMedia)

	// Account management and flags are admin-only.
	users := admin.Group("/users", s.AdminRequired())
	users.Get("/", s.ListUsers)
	users.Post("/", s.CreateUser)
	users.Post("/:id/promote-admin", s.PromoteToAdmin)
	users.Post("/:id/demote-admin", s.DemoteFromAdmin)
	users.Delete("/:id", s.DeleteUser)
	admin.Get("/feature-flags", s.AdminRequired(), s.GetFeatureFlags)
}

// LivenessCheck handles liveness check requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness check requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis backs caching, rate limits and realtime fan-out; the API still
	// serves without it.
	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	} else if redisStatus != "healthy" {
		overallStatus = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	app := fiber.New(fiber.Config{
		AppName:   "NHAF API",
		BodyLimit: bodyLimit(s.config),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
			}
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", slog.String("error", err.Error()))
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	if s.notifier != nil {
		go func() {
			if err := s.hub.Relay(s.shutdownCtx, s.notifier); err != nil {
				middleware.Logger.Error("admin relay stopped", slog.String("error", err.Error()))
			}
		}()
	}

	middleware.Logger.Info("server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// bodyLimit leaves room for multipart overhead on top of the largest upload.
func bodyLimit(cfg *config.Config) int {
	mb := cfg.ImageMaxUploadSizeMB
	if mb <= 0 {
		mb = 5
	}
	return (mb + 1) << 20
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	if err := s.hub.Shutdown(ctx); err != nil {
		middleware.Logger.Error("error shutting down hub", slog.String("error", err.Error()))
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", slog.String("error", cerr.Error()))
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", slog.String("error", rerr.Error()))
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}

const wsTicketPrefix = "ws_ticket:"

// AdminRequired allows only staff accounts flagged as admin.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		user, err := s.userService.GetUserByID(c.UserContext(), userID)
		if err != nil {
			return s.respondError(c, err)
		}
		if !user.IsAdmin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Admin access required"))
		}
		c.Locals("user", user)
		return c.Next()
	}
}

// AuthRequired returns the authentication middleware
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isWSPath := strings.HasPrefix(c.Path(), "/api/ws/")

		// 1. WebSocket ticket (short-lived, single-use)
		if ticket := c.Query("ticket"); ticket != "" && s.redis != nil {
			userIDStr, err := s.redis.GetDel(c.Context(), wsTicketPrefix+ticket).Result()
			if err == nil {
				if userID, parseErr := strconv.ParseUint(userIDStr, 10, 32); parseErr == nil {
					return s.authenticated(c, uint(userID), "")
				}
			}
			if isWSPath {
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("Invalid or expired WebSocket ticket"))
			}
		}

		// 2. Bearer token. Websocket upgrades must use a ticket.
		if isWSPath && c.Get("Authorization") == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("WebSocket ticket required"))
		}
		tokenString, err := middleware.BearerToken(c.Get("Authorization"))
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		claims, err := middleware.ParseToken(s.config.JWTSecret, tokenString)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		if s.redis != nil && claims.JTI != "" {
			revoked, err := s.redis.Exists(c.Context(), cache.BlacklistKey(claims.JTI)).Result()
			if err != nil {
				middleware.Logger.WarnContext(c.UserContext(), "token blacklist check failed",
					slog.String("error", err.Error()))
			} else if revoked > 0 {
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("Token has been revoked"))
			}
		}

		c.Locals("jti", claims.JTI)
		c.Locals("tokenExpiresAt", claims.ExpiresAt)
		return s.authenticated(c, claims.UserID, claims.Username)
	}
}

func (s *Server) authenticated(c *fiber.Ctx, userID uint, username string) error {
	c.Locals("userID", userID)
	if username != "" {
		c.Locals("username", username)
	}
	// Sync to UserContext for logging and downstream services
	ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
	c.SetUserContext(ctx)
	return c.Next()
}
