package server

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteIndex, ChainMiddleware(s.IndexHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("GET "+RoutePing, s.PingHandler())

	// LOGIN
	s.RegisterRouteFunc("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("POST "+RouteLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("GET "+RouteLogout, s.LogoutHandler())

	// SIGNUP
	for _, route := range []string{RouteRegister, RouteSignup} {
		s.RegisterRouteFunc("GET "+route, ChainMiddleware(s.SignupGetHandler(), s.HTMLMiddleWare()...))
		s.RegisterRouteFunc("POST "+route, ChainMiddleware(s.SignupPostHandler(), s.HTMLMiddleWare()...))
	}

	// Dashboard and job pages (require a resolved user)
	s.RegisterRouteFunc("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleWare(s.RequireUser)...))
	s.RegisterRouteFunc("GET "+RouteStatusChart, ChainMiddleware(s.StatusChartHandler(), s.RequireUser))
	s.RegisterRouteFunc("GET "+RouteTimelineChart, ChainMiddleware(s.TimelineChartHandler(), s.RequireUser))
	s.RegisterRouteFunc("GET "+RouteAddJob, ChainMiddleware(s.AddJobGetHandler(), s.HTMLMiddleWare(s.RequireUser)...))
	s.RegisterRouteFunc("POST "+RouteAddJob, ChainMiddleware(s.AddJobPostHandler(), s.HTMLMiddleWare(s.RequireUser)...))
	s.RegisterRouteFunc("GET "+RouteEditJob, ChainMiddleware(s.EditJobGetHandler(), s.HTMLMiddleWare(s.RequireUser)...))
	s.RegisterRouteFunc("POST "+RouteEditJob, ChainMiddleware(s.EditJobPostHandler(), s.HTMLMiddleWare(s.RequireUser)...))
	s.RegisterRouteFunc("POST "+RouteDeleteJob, ChainMiddleware(s.DeleteJobPostHandler(), s.HTMLMiddleWare(s.RequireUser)...))
	s.RegisterRouteFunc("GET "+RouteExportPDF, ChainMiddleware(s.ExportPDFHandler(), s.RequireUser))
	s.RegisterRouteFunc("GET "+RouteExportCSV, ChainMiddleware(s.ExportCSVHandler(), s.RequireUser))

	// API routes
	s.RegisterRouteFunc("POST "+RouteAPIRegister, ChainMiddleware(s.APIRegisterHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteAPILogin, ChainMiddleware(s.APILoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAPIMe, ChainMiddleware(s.MeHandler(), s.APIMiddleware(s.RequireUser)...))
	for _, route := range []string{RouteAPIJobs, RouteAPIJobs + "/"} {
		s.RegisterRouteFunc("GET "+route, ChainMiddleware(s.APIListJobsHandler(), s.APIMiddleware(s.RequireUser)...))
		s.RegisterRouteFunc("POST "+route, ChainMiddleware(s.APICreateJobHandler(), s.APIMiddleware(s.RequireUser)...))
	}
	s.RegisterRouteFunc("GET "+RouteAPIJob, ChainMiddleware(s.APIGetJobHandler(), s.APIMiddleware(s.RequireUser)...))
	s.RegisterRouteFunc("PUT "+RouteAPIJob, ChainMiddleware(s.APIUpdateJobHandler(), s.APIMiddleware(s.RequireUser)...))
	s.RegisterRouteFunc("PATCH "+RouteAPIJob, ChainMiddleware(s.APIUpdateJobHandler(), s.APIMiddleware(s.RequireUser)...))
	s.RegisterRouteFunc("DELETE "+RouteAPIJob, ChainMiddleware(s.APIDeleteJobHandler(), s.APIMiddleware(s.RequireUser)...))

	s.RegisterRouteFunc("GET "+RouteStatic, ChainMiddleware(s.serveFileHandler(), s.CacheMiddleware))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/static/")
		if filePath == "" || strings.Contains(filePath, "..") {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		err := StreamFile(w, r, filePath)
		if err != nil {
			hlog.FromRequest(r).Warn().Err(err).Str("file", filePath).Msg("static file not served")
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}
