package server

// Route path constants
const (
	// Auth Routes - Login & Logout
	RouteLogin      = "/login"
	RouteAuthLogin  = "/auth/login"
	RouteAuthLogout = "/auth/logout"

	// Dashboards, one per role
	RouteManagerDashboard = "/manager/dashboard"
	RouteRenterDashboard  = "/renter/dashboard"

	// API Routes
	RouteAPISession = "/api/session"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"

	loginTemplate            = "login.html"
	managerDashboardTemplate = "manager_dashboard.html"
	renterDashboardTemplate  = "renter_dashboard.html"
)

// User facing messages
const (
	msgCredentialsRequired = "Username and password are required."
	msgLoginFailed         = "Login failed. Please check your credentials."
	msgUnknownRole         = "Unknown user role."
	msgLoginRequired       = "Please log in to continue."
)
