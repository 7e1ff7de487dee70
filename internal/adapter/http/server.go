package adapthttp

import (
	"net/http"

	"projecttracker/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth     *app.AuthService
	managers *app.ManagerService
	clients  *app.ClientService
	projects *app.ProjectService
	team     *app.TeamMemberService
	feedback *app.FeedbackService

	secureCookies bool
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, managers *app.ManagerService, clients *app.ClientService,
	projects *app.ProjectService, team *app.TeamMemberService, feedback *app.FeedbackService,
	secureCookies bool) *Server {
	return &Server{
		auth:          auth,
		managers:      managers,
		clients:       clients,
		projects:      projects,
		team:          team,
		feedback:      feedback,
		secureCookies: secureCookies,
	}
}

// Handler returns the root http.Handler. Login, setup, and health are
// reachable without a session; every resource route sits behind the auth
// middleware.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/managers/", s.handleManagers)
	api.HandleFunc("/clients/", s.handleClients)
	api.HandleFunc("/projects/", s.handleProjects)
	api.HandleFunc("/techteam/", s.handleTechTeam)
	api.HandleFunc("/feedback/", s.handleFeedback)

	root := http.NewServeMux()
	root.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	root.HandleFunc("/login/", s.handleLogin)
	root.HandleFunc("/login/firebase/", s.handleFirebaseLogin)
	root.HandleFunc("/setup/", s.handleSetup)
	root.Handle("/", s.authMiddleware(api))

	return s.loggingMiddleware(root)
}
