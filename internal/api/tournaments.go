package api

import (
	"errors"   // Empty body detection
	"io"       // EOF on an empty body
	"net/http" // HTTP status codes

	"adept_play/internal/ledger" // Ledger mutations
	"adept_play/internal/query"  // Read views

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Fixed-point money
)

// JoinRequest is the optional body of POST /tournaments/:id/join
type JoinRequest struct {
	EntryFee *decimal.Decimal `json:"entryFee"` // Fee the player was shown
}

// UpcomingHandler lists tournaments the caller can still join
func UpcomingHandler(q *query.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		ts, err := q.UpcomingFor(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tournaments": ts})
	}
}

// MyTournamentsHandler lists tournaments the caller has joined
func MyTournamentsHandler(q *query.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		ts, err := q.MyTournaments(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tournaments": ts})
	}
}

// JoinTournamentHandler debits the entry fee and registers the caller
func JoinTournamentHandler(engine *ledger.Engine, q *query.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		tournamentID, ok := pathID(c)
		if !ok {
			return
		}
		var req JoinRequest // Body is optional
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		fee := req.EntryFee
		if fee == nil {
			// No quote from the client, so quote the recorded fee
			detail, err := q.TournamentDetail(c.Request.Context(), tournamentID)
			if err != nil {
				respondError(c, err)
				return
			}
			fee = &detail.Tournament.EntryFee
		}
		profile, err := engine.JoinTournament(c.Request.Context(), userID, tournamentID, *fee)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Joined tournament", "user": profile})
	}
}
