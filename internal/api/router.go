package api

import (
	"time" // Clock for token issue

	"adept_play/internal/auth"       // Credential checks
	"adept_play/internal/domain"     // Role names
	"adept_play/internal/ledger"     // Ledger mutations
	"adept_play/internal/middleware" // Auth middleware
	"adept_play/internal/query"      // Read views
	"adept_play/internal/store"      // Persistence
	"adept_play/internal/titlegen"   // Title suggestions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Services are the components the routes are served from
type Services struct {
	Store     *store.Store        // Install and reset
	Engine    *ledger.Engine      // Mutations
	Queries   *query.Queries      // Read views
	Gate      *auth.Gate          // Login
	Suggester *titlegen.Suggester // Title generation
	JWTSecret string              // Token signing key
	Now       func() time.Time    // Clock, time.Now when nil
}

// Register mounts every route on r
func Register(r gin.IRouter, s Services) {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	jwtAuth := middleware.JWTAuthMiddleware(s.JWTSecret) // Token check shared by protected groups

	// Install routes
	r.GET("/install", InstallStatusHandler(s.Store))
	r.POST("/install", InstallHandler(s.Store))

	// Auth routes
	r.POST("/user", SignupHandler(s.Engine))                                         // Registration endpoint
	r.POST("/user/login", LoginHandler(s.Gate, domain.RoleUser, s.JWTSecret, now))   // Player login endpoint
	r.POST("/admin/login", LoginHandler(s.Gate, domain.RoleAdmin, s.JWTSecret, now)) // Admin login endpoint

	// Account routes (any role)
	me := r.Group("/me", jwtAuth)
	me.GET("", MeHandler(s.Queries))
	me.PUT("/password", ChangePasswordHandler(s.Engine))

	// Player routes
	players := r.Group("", jwtAuth, middleware.UserOnlyMiddleware(s.Queries))
	players.GET("/tournaments/upcoming", UpcomingHandler(s.Queries))
	players.GET("/tournaments/mine", MyTournamentsHandler(s.Queries))
	players.POST("/tournaments/:id/join", JoinTournamentHandler(s.Engine, s.Queries))
	players.GET("/wallet/transactions", TransactionHistoryHandler(s.Queries))

	// Admin routes (protected, admin only)
	admin := r.Group("/admin", jwtAuth, middleware.AdminOnlyMiddleware(s.Queries))
	admin.GET("/stats", StatsHandler(s.Queries))
	admin.GET("/users", ListUsersHandler(s.Queries))
	admin.GET("/tournaments", ListTournamentsHandler(s.Queries))
	admin.POST("/tournaments", CreateTournamentHandler(s.Engine))
	admin.GET("/tournaments/:id", TournamentDetailHandler(s.Queries))
	admin.PUT("/tournaments/:id/room", UpdateRoomHandler(s.Engine))
	admin.POST("/tournaments/:id/winner", DeclareWinnerHandler(s.Engine))
	admin.POST("/suggest-title", SuggestTitleHandler(s.Suggester))
	admin.POST("/reset", ResetHandler(s.Store))
}
