package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteIndex = "/"
	RoutePing  = "/ping"

	// Auth Routes - Login & Logout
	RouteLogin    = "/login"
	RouteLogout   = "/logout"
	RouteRegister = "/register"
	RouteSignup   = "/signup"

	// Dashboard
	RouteDashboard     = "/dashboard"
	RouteStatusChart   = "/dashboard/charts/status.png"
	RouteTimelineChart = "/dashboard/charts/timeline.png"
	RouteAddJob        = "/jobs/add-job"
	RouteEditJob       = "/jobs/edit-job/{id}"
	RouteDeleteJob     = "/jobs/delete-job/{id}"
	RouteExportPDF     = "/jobs/export/pdf"
	RouteExportCSV     = "/jobs/export/csv"
	editJobPathPrefix  = "/jobs/edit-job/"

	// API Routes
	RouteAPILogin    = "/api/login"
	RouteAPIRegister = "/api/register"
	RouteAPIMe       = "/api/me"
	RouteAPIJobs     = "/api/jobs"
	RouteAPIJob      = "/api/jobs/{id}"

	// Static Asset Routes (patterns)
	RouteStatic = "/static/*"
)
