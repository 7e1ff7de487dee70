// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"projecttracker/internal/domain"
)

// DB implements all domain repositories in memory.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	managers []domain.Manager
	clients  []domain.Client
	projects []domain.Project
	members  []domain.TeamMember
	feedback []domain.Feedback

	userIDCounter     int64
	managerIDCounter  int64
	clientIDCounter   int64
	projectIDCounter  int64
	memberIDCounter   int64
	feedbackIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ManagerRepository = (*DB)(nil)
var _ domain.ClientRepository = (*DB)(nil)
var _ domain.ProjectRepository = (*DB)(nil)
var _ domain.TeamMemberRepository = (*DB)(nil)
var _ domain.FeedbackRepository = (*DB)(nil)

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.findUserLocked(func(u *domain.User) bool { return u.Username == username }), nil
}

// GetByID retrieves a user by id.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.findUserLocked(func(u *domain.User) bool { return u.ID == id }), nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.createUserLocked(username, passwordHash), nil
}

// GetOrCreateByExternalID maps a subject id to a user, creating one on
// first sight. The mutex serializes racing first logins.
func (db *DB) GetOrCreateByExternalID(ctx context.Context, subjectID string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if u := db.findUserLocked(func(u *domain.User) bool { return u.Username == subjectID }); u != nil {
		return u, nil
	}
	return db.createUserLocked(subjectID, ""), nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

func (db *DB) findUserLocked(match func(*domain.User) bool) *domain.User {
	for _, u := range db.users {
		if match(u) {
			copied := *u
			return &copied
		}
	}
	return nil
}

func (db *DB) createUserLocked(username, passwordHash string) *domain.User {
	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	db.users = append(db.users, u)
	copied := *u
	return &copied
}

// --- ManagerRepository ---

// ListManagers returns all managers.
func (db *DB) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]domain.Manager{}, db.managers...), nil
}

// CreateManager adds a manager.
func (db *DB) CreateManager(ctx context.Context, m domain.Manager) (*domain.Manager, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.managerIDCounter++
	m.ID = db.managerIDCounter
	db.managers = append(db.managers, m)
	return &m, nil
}

// GetManager retrieves a manager by id.
func (db *DB) GetManager(ctx context.Context, id int64) (*domain.Manager, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, m := range db.managers {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, nil
}

// UpdateManager replaces a manager record.
func (db *DB) UpdateManager(ctx context.Context, m domain.Manager) (*domain.Manager, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.managers {
		if db.managers[i].ID == m.ID {
			db.managers[i] = m
			return &m, nil
		}
	}
	return nil, nil
}

// DeleteManager removes a manager by id.
func (db *DB) DeleteManager(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.managers {
		if db.managers[i].ID == id {
			db.managers = append(db.managers[:i], db.managers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- ClientRepository ---

// ListClients returns all clients.
func (db *DB) ListClients(ctx context.Context) ([]domain.Client, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]domain.Client{}, db.clients...), nil
}

// CreateClient adds a client.
func (db *DB) CreateClient(ctx context.Context, c domain.Client) (*domain.Client, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.clientIDCounter++
	c.ID = db.clientIDCounter
	db.clients = append(db.clients, c)
	return &c, nil
}

// GetClient retrieves a client by id.
func (db *DB) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, c := range db.clients {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

// UpdateClient replaces a client record.
func (db *DB) UpdateClient(ctx context.Context, c domain.Client) (*domain.Client, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.clients {
		if db.clients[i].ID == c.ID {
			db.clients[i] = c
			return &c, nil
		}
	}
	return nil, nil
}

// DeleteClient removes a client by id.
func (db *DB) DeleteClient(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.clients {
		if db.clients[i].ID == id {
			db.clients = append(db.clients[:i], db.clients[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- ProjectRepository ---

// ListProjects returns all projects.
func (db *DB) ListProjects(ctx context.Context) ([]domain.Project, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]domain.Project{}, db.projects...), nil
}

// CreateProject adds a project.
func (db *DB) CreateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.projectIDCounter++
	p.ID = db.projectIDCounter
	db.projects = append(db.projects, p)
	return &p, nil
}

// GetProject retrieves a project by id.
func (db *DB) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, p := range db.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

// UpdateProject replaces a project record.
func (db *DB) UpdateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.projects {
		if db.projects[i].ID == p.ID {
			db.projects[i] = p
			return &p, nil
		}
	}
	return nil, nil
}

// DeleteProject removes a project by id.
func (db *DB) DeleteProject(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.projects {
		if db.projects[i].ID == id {
			db.projects = append(db.projects[:i], db.projects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- TeamMemberRepository ---

// ListTeamMembers returns all tech-team members.
func (db *DB) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]domain.TeamMember{}, db.members...), nil
}

// CreateTeamMember adds a tech-team member.
func (db *DB) CreateTeamMember(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.memberIDCounter++
	m.ID = db.memberIDCounter
	db.members = append(db.members, m)
	return &m, nil
}

// GetTeamMember retrieves a tech-team member by id.
func (db *DB) GetTeamMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, m := range db.members {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, nil
}

// UpdateTeamMember replaces a tech-team member record.
func (db *DB) UpdateTeamMember(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.members {
		if db.members[i].ID == m.ID {
			db.members[i] = m
			return &m, nil
		}
	}
	return nil, nil
}

// DeleteTeamMember removes a tech-team member by id.
func (db *DB) DeleteTeamMember(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.members {
		if db.members[i].ID == id {
			db.members = append(db.members[:i], db.members[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- FeedbackRepository ---

// ListFeedback returns all feedback entries.
func (db *DB) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]domain.Feedback{}, db.feedback...), nil
}

// CreateFeedback adds a feedback entry.
func (db *DB) CreateFeedback(ctx context.Context, f domain.Feedback) (*domain.Feedback, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.feedbackIDCounter++
	f.ID = db.feedbackIDCounter
	f.CreatedAt = time.Now().UTC()
	db.feedback = append(db.feedback, f)
	return &f, nil
}

// GetFeedback retrieves a feedback entry by id.
func (db *DB) GetFeedback(ctx context.Context, id int64) (*domain.Feedback, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, f := range db.feedback {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, nil
}

// UpdateFeedback replaces a feedback record, keeping its creation time.
func (db *DB) UpdateFeedback(ctx context.Context, f domain.Feedback) (*domain.Feedback, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.feedback {
		if db.feedback[i].ID == f.ID {
			f.CreatedAt = db.feedback[i].CreatedAt
			db.feedback[i] = f
			return &f, nil
		}
	}
	return nil, nil
}

// DeleteFeedback removes a feedback entry by id.
func (db *DB) DeleteFeedback(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range db.feedback {
		if db.feedback[i].ID == id {
			db.feedback = append(db.feedback[:i], db.feedback[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
