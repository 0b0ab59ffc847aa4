package api

import (
	"net/http" // HTTP status codes

	"adept_play/internal/domain"   // Importing domain models
	"adept_play/internal/ledger"   // Ledger mutations
	"adept_play/internal/query"    // Read views
	"adept_play/internal/titlegen" // Title suggestions

	"github.com/gin-gonic/gin" // Gin web framework
)

// RoomRequest is the body of PUT /admin/tournaments/:id/room
type RoomRequest struct {
	RoomID       string `json:"roomId" binding:"required"` // Match room identifier
	RoomPassword string `json:"roomPassword"`              // Match room password
}

// WinnerRequest is the body of POST /admin/tournaments/:id/winner
type WinnerRequest struct {
	WinnerID int64 `json:"winnerId" binding:"required,gt=0"` // Account receiving the prize
}

// SuggestTitleRequest is the body of POST /admin/suggest-title
type SuggestTitleRequest struct {
	GameName string `json:"gameName" binding:"required"` // Game to title
}

// StatsHandler returns the dashboard totals
func StatsHandler(q *query.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := q.AdminStats(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// ListUsersHandler lists player accounts
func ListUsersHandler(q *query.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := q.AllUsers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		paginate(c, "users", users)
	}
}

// ListTournamentsHandler lists every tournament, latest match first
func ListTournamentsHandler(q *query.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		ts, err := q.AllTournaments(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		paginate(c, "tournaments", ts)
	}
}

// CreateTournamentHandler adds an Upcoming tournament
func CreateTournamentHandler(engine *ledger.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.NewTournament // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		t, err := engine.CreateTournament(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"tournament": t})
	}
}

// TournamentDetailHandler returns a tournament with its participants
func TournamentDetailHandler(q *query.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		detail, err := q.TournamentDetail(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// UpdateRoomHandler publishes room details and takes the tournament Live
func UpdateRoomHandler(engine *ledger.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req RoomRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		t, err := engine.UpdateRoom(c.Request.Context(), id, req.RoomID, req.RoomPassword)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tournament": t})
	}
}

// DeclareWinnerHandler completes the tournament and pays out the prize pool
func DeclareWinnerHandler(engine *ledger.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req WinnerRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		t, err := engine.DeclareWinner(c.Request.Context(), id, req.WinnerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tournament": t})
	}
}

// SuggestTitleHandler proposes a title and description for a game. It never fails
// once the request is valid
func SuggestTitleHandler(s *titlegen.Suggester) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SuggestTitleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		c.JSON(http.StatusOK, s.Suggest(c.Request.Context(), req.GameName))
	}
}
