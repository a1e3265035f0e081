package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/qr", s.qrHandler)

		d := api.Group("/deck", s.limitBody)
		d.POST("/decode", s.decodeHandler)
		d.POST("/encode", s.encodeHandler)
		d.GET("/raw", s.rawHandler)
		d.GET("/qr", s.deckQRHandler)
		d.POST("/image", s.deckImageHandler)
	}
}
