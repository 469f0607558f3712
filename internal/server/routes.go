package server

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	h := s.iconHandler

	s.E.GET("/", h.GalleryGet)
	s.E.GET("/icons", h.GalleryGet)
	s.E.GET("/icons/:name", h.SVGGet)
	s.E.GET("/components/:tag", h.ComponentGet)

	api := s.E.Group("/api")
	api.GET("/icons", h.ListAPI)
	api.GET("/icons/:name", h.GetAPI)

	s.E.GET("/health", h.HealthGet)
}
