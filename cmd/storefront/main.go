package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/apparel-storefront/docs"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/cache"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/config"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/health"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/apparel-storefront/internal/services"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/storage"
	"github.com/aaravmahajanofficial/apparel-storefront/pkg/sendgrid"
	"github.com/aaravmahajanofficial/apparel-storefront/pkg/tracing"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

//	@title						Apparel Storefront API
//	@version					1.0
//	@description				Bilingual (English/Arabic) apparel storefront: catalog, cart, wishlist, reviews and account security.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	tp, err := tracing.InitTracer(ctx, cfg.Otel, version)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer func() {
		if err := productCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	avatars, err := storage.NewDiskAvatarStore(cfg.Uploads.AvatarDir, cfg.Uploads.AvatarBaseURL)
	if err != nil {
		slog.Error("❌ Error preparing avatar storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid API key not set, security notices will only be logged")
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	securityRepo := repository.NewSecurityRepo(redisClient)
	notifier := service.NewSecurityNotifier(emailService, repos.Notification)

	productService := service.NewProductService(repos.Product, repos.Category, productCache)
	cartService := service.NewCartService(repos.Cart, productService)
	wishlistService := service.NewWishlistService(repos.Wishlist, productService, cartService)
	reviewService := service.NewReviewService(repos.Review, repos.User, productService)
	userService := service.NewUserService(repos.User, rateLimitRepo, securityRepo, avatars, notifier, jwtKey, tokenTTL)
	securityService := service.NewSecurityService(securityRepo, repos.User, notifier, cfg.Security.CSRFTokenTTL, cfg.Security.MFAIssuer)
	notificationService := service.NewNotificationService(repos.Notification)

	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	userHandler := handlers.NewUserHandler(userService, cfg.Uploads.MaxAvatarBytes)
	securityHandler := handlers.NewSecurityHandler(securityService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	authMiddleware := middleware.NewAuthMiddleware(jwtKey, securityRepo)

	healthHandler, err := health.NewHealthHandler(version, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Signed-in routes. CSRF only checks mutating methods.
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Authenticate(middleware.CSRF(securityService, h))
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Authenticate(middleware.RequireRole(models.RoleAdmin, middleware.CSRF(securityService, h)))
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// Setup router
	routerMux := http.NewServeMux()

	// Catalog
	routerMux.HandleFunc("GET /api/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/products/{slug}", productHandler.GetProduct())
	routerMux.HandleFunc("POST /api/products/{slug}/availability", productHandler.CheckAvailability())
	routerMux.HandleFunc("GET /api/categories", productHandler.ListCategories())

	// Reviews
	routerMux.HandleFunc("GET /api/products/{slug}/reviews", authMiddleware.OptionalAuthenticate(reviewHandler.ListReviews()))
	routerMux.HandleFunc("POST /api/products/{slug}/reviews", protected(reviewHandler.CreateReview()))

	// Cart
	routerMux.HandleFunc("GET /api/cart", protected(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/cart/items", protected(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/cart/items", protected(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/cart/items/{lineKey}", protected(cartHandler.RemoveItem()))

	// Wishlist
	routerMux.HandleFunc("GET /api/account/wishlist", protected(wishlistHandler.ListItems()))
	routerMux.HandleFunc("POST /api/account/wishlist", protected(wishlistHandler.AddItem()))
	routerMux.HandleFunc("DELETE /api/account/wishlist/{productId}", protected(wishlistHandler.RemoveItem()))
	routerMux.HandleFunc("POST /api/account/wishlist/cart", protected(wishlistHandler.AddAllToCart()))

	// Auth and account
	routerMux.HandleFunc("POST /api/auth/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/auth/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/auth/csrf", authMiddleware.Authenticate(securityHandler.CSRFToken()))
	routerMux.HandleFunc("PUT /api/auth/password", protected(userHandler.ChangePassword()))
	routerMux.HandleFunc("GET /api/account/profile", protected(userHandler.Profile()))
	routerMux.HandleFunc("PATCH /api/account/profile", protected(userHandler.UpdateProfile()))
	routerMux.HandleFunc("POST /api/account/profile/avatar", protected(userHandler.UploadAvatar()))

	// MFA
	routerMux.HandleFunc("GET /api/auth/mfa/status", protected(securityHandler.MFAStatus()))
	routerMux.HandleFunc("POST /api/auth/mfa/setup", protected(securityHandler.SetupMFA()))
	routerMux.HandleFunc("POST /api/auth/mfa/verify-setup", protected(securityHandler.VerifyMFASetup()))
	routerMux.HandleFunc("POST /api/auth/mfa/toggle", protected(securityHandler.ToggleMFA()))

	// Admin
	routerMux.HandleFunc("GET /api/admin/products", admin(productHandler.AdminListProducts()))
	routerMux.HandleFunc("POST /api/admin/products", admin(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/admin/products/{id}", admin(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/admin/products/{id}", admin(productHandler.DeleteProduct()))
	routerMux.HandleFunc("GET /api/admin/categories", admin(productHandler.ListCategories()))
	routerMux.HandleFunc("POST /api/admin/categories", admin(productHandler.CreateCategory()))
	routerMux.HandleFunc("DELETE /api/admin/categories/{id}", admin(productHandler.DeleteCategory()))
	routerMux.HandleFunc("GET /api/admin/reviews", admin(reviewHandler.AdminListReviews()))
	routerMux.HandleFunc("PATCH /api/admin/reviews/{id}", admin(reviewHandler.ModerateReview()))
	routerMux.HandleFunc("DELETE /api/admin/reviews/{id}", admin(reviewHandler.DeleteReview()))
	routerMux.HandleFunc("GET /api/admin/users", admin(userHandler.AdminListUsers()))
	routerMux.HandleFunc("PATCH /api/admin/users/{id}", admin(userHandler.AdminUpdateUser()))
	routerMux.HandleFunc("GET /api/admin/notifications", admin(notificationHandler.AdminListNotifications()))

	// Operations
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	avatarPrefix := strings.TrimSuffix(cfg.Uploads.AvatarBaseURL, "/") + "/"
	routerMux.Handle("GET "+avatarPrefix, http.StripPrefix(avatarPrefix, http.FileServer(http.Dir(cfg.Uploads.AvatarDir))))

	// Middleware chaining, innermost first
	var handler http.Handler = routerMux
	handler = middleware.Language(handler)
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(routerMux, handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)
	handler = cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept-Language", middleware.CSRFHeader},
		AllowCredentials: true,
	}).Handler(handler)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := tp.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
