package memory

import (
	"context"
	"sync"
	"testing"

	"projecttracker/internal/domain"
)

func TestGetOrCreateByExternalIDConcurrent(t *testing.T) {
	t.Parallel()

	db := New()
	ctx := context.Background()

	const n = 32
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := db.GetOrCreateByExternalID(ctx, "uid-racing")
			if err != nil {
				t.Errorf("GetOrCreateByExternalID error: %v", err)
				return
			}
			ids[i] = u.ID
		}(i)
	}
	wg.Wait()

	count, err := db.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 user record, got %d", count)
	}
	for i := 1; i < n; i++ {
		if ids[i] != ids[0] {
			t.Fatalf("racing logins resolved different ids: %d vs %d", ids[0], ids[i])
		}
	}
}

func TestGetOrCreateByExternalIDIdempotent(t *testing.T) {
	t.Parallel()

	db := New()
	ctx := context.Background()

	first, err := db.GetOrCreateByExternalID(ctx, "uid-1")
	if err != nil {
		t.Fatalf("first call error: %v", err)
	}
	second, err := db.GetOrCreateByExternalID(ctx, "uid-1")
	if err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("ids differ: %d vs %d", first.ID, second.ID)
	}
	if first.PasswordHash != "" {
		t.Fatalf("provider user has password hash %q", first.PasswordHash)
	}
}

func TestUserLookup(t *testing.T) {
	t.Parallel()

	db := New()
	ctx := context.Background()

	created, err := db.Create(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	byName, err := db.GetByUsername(ctx, "alice")
	if err != nil || byName == nil || byName.ID != created.ID {
		t.Fatalf("GetByUsername = %v, %v", byName, err)
	}

	byID, err := db.GetByID(ctx, created.ID)
	if err != nil || byID == nil || byID.Username != "alice" {
		t.Fatalf("GetByID = %v, %v", byID, err)
	}

	missing, err := db.GetByUsername(ctx, "bob")
	if err != nil || missing != nil {
		t.Fatalf("expected nil for unknown user, got %v, %v", missing, err)
	}
}

func TestManagerCRUD(t *testing.T) {
	t.Parallel()

	db := New()
	ctx := context.Background()

	created, err := db.CreateManager(ctx, domain.Manager{Name: "Priya", Email: "priya@example.com"})
	if err != nil {
		t.Fatalf("CreateManager error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	created.Phone = "555-0101"
	updated, err := db.UpdateManager(ctx, *created)
	if err != nil || updated == nil {
		t.Fatalf("UpdateManager = %v, %v", updated, err)
	}

	got, err := db.GetManager(ctx, created.ID)
	if err != nil || got == nil || got.Phone != "555-0101" {
		t.Fatalf("GetManager = %v, %v", got, err)
	}

	list, err := db.ListManagers(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListManagers = %v, %v", list, err)
	}

	deleted, err := db.DeleteManager(ctx, created.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteManager = %v, %v", deleted, err)
	}
	deleted, err = db.DeleteManager(ctx, created.ID)
	if err != nil || deleted {
		t.Fatalf("second DeleteManager = %v, %v", deleted, err)
	}
}

func TestProjectAndTeamCRUD(t *testing.T) {
	t.Parallel()

	db := New()
	ctx := context.Background()

	project, err := db.CreateProject(ctx, domain.Project{Name: "CRM Revamp", Status: "active"})
	if err != nil {
		t.Fatalf("CreateProject error: %v", err)
	}

	member, err := db.CreateTeamMember(ctx, domain.TeamMember{Name: "Dev", Roll: "backend", ProjectID: project.ID})
	if err != nil {
		t.Fatalf("CreateTeamMember error: %v", err)
	}

	fb, err := db.CreateFeedback(ctx, domain.Feedback{ProjectID: project.ID, Message: "great", Rating: 5})
	if err != nil {
		t.Fatalf("CreateFeedback error: %v", err)
	}
	if fb.CreatedAt.IsZero() {
		t.Fatal("feedback created_at not set")
	}

	fb.Rating = 4
	updated, err := db.UpdateFeedback(ctx, *fb)
	if err != nil || updated == nil {
		t.Fatalf("UpdateFeedback = %v, %v", updated, err)
	}
	if updated.CreatedAt != fb.CreatedAt {
		t.Fatal("update changed created_at")
	}

	gotMember, err := db.GetTeamMember(ctx, member.ID)
	if err != nil || gotMember == nil || gotMember.ProjectID != project.ID {
		t.Fatalf("GetTeamMember = %v, %v", gotMember, err)
	}

	missing, err := db.GetProject(ctx, 999)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for unknown project, got %v, %v", missing, err)
	}
}
