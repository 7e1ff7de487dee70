package domain

import "context"

// TeamMember represents a tech-team member assigned to a project.
type TeamMember struct {
	ID        int64  `json:"member_id"`
	Name      string `json:"name"`
	Roll      string `json:"roll"`
	Email     string `json:"email"`
	ProjectID int64  `json:"project"`
}

// TeamMemberRepository is the port for tech-team persistence.
type TeamMemberRepository interface {
	ListTeamMembers(ctx context.Context) ([]TeamMember, error)
	CreateTeamMember(ctx context.Context, m TeamMember) (*TeamMember, error)
	GetTeamMember(ctx context.Context, id int64) (*TeamMember, error)
	UpdateTeamMember(ctx context.Context, m TeamMember) (*TeamMember, error)
	DeleteTeamMember(ctx context.Context, id int64) (bool, error)
}
