package api

import (
	"adept_play/internal/query" // Read views

	"github.com/gin-gonic/gin" // Gin web framework
)

// TransactionHistoryHandler returns the caller's transactions, newest first
func TransactionHistoryHandler(q *query.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		txs, err := q.TransactionsFor(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		paginate(c, "transactions", txs)
	}
}
