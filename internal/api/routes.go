package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/sessions", h.createSession)

		s := api.Group("/sessions/:id", h.loadSession)
		{
			s.GET("", h.view)
			s.DELETE("", h.deleteSession)
			s.PUT("/name", h.rename)
			s.GET("/search", h.search)
			s.DELETE("/search", h.closeSearch)
			s.POST("/cards", h.addCard)
			s.DELETE("/cards/:entry", h.removeCard)
			s.GET("/selected", h.selected)
			s.PUT("/selected", h.selectCard)
			s.GET("/export", h.export)
			s.GET("/image", h.deckImage)
			s.GET("/qr", h.qr)
		}
	}
}
