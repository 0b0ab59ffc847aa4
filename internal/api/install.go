package api

import (
	"net/http" // HTTP status codes

	"adept_play/internal/store" // Persistence

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// InstallStatusHandler reports whether the store has been initialised
func InstallStatusHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		installed, err := st.Exists(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"installed": installed})
	}
}

// InstallHandler seeds the store once; later calls are refused
func InstallHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		installed, err := st.Exists(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		if installed {
			c.JSON(http.StatusConflict, gin.H{"error": "Already installed"})
			return
		}
		if _, err := st.Load(ctx); err != nil { // Load seeds an empty store
			respondError(c, err)
			return
		}
		logrus.Info("Store installed")
		c.JSON(http.StatusCreated, gin.H{"message": "Installed"})
	}
}

// ResetHandler discards all data and reseeds
func ResetHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := st.Reset(ctx); err != nil {
			respondError(c, err)
			return
		}
		if _, err := st.Load(ctx); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Data reset"})
	}
}
