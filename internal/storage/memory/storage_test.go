package memory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/learnhub/learnhub/internal/domain/errors"
	"github.com/learnhub/learnhub/internal/domain/model"
	"github.com/learnhub/learnhub/internal/domain/repository"
)

func newTestStorage() *Storage {
	return New(0, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestUserCreateAssignsMonotonicIDs(t *testing.T) {
	storage := newTestStorage()
	users := storage.Users()
	ctx := context.Background()

	first, err := users.Create(ctx, "Alice", "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("create first user: %v", err)
	}
	second, err := users.Create(ctx, "Bob", "bob@example.com", "pw")
	if err != nil {
		t.Fatalf("create second user: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.Role != model.RoleFree {
		t.Fatalf("expected new user to default to free, got %q", first.Role)
	}
	if first.IsAdmin {
		t.Fatal("new user should not be admin")
	}
}

func TestUserCreateNeverReusesIDs(t *testing.T) {
	storage := newTestStorage()
	users := storage.Users()
	ctx := context.Background()

	for _, email := range []string{"a@x.io", "b@x.io", "c@x.io"} {
		if _, err := users.Create(ctx, "u", email, "pw"); err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
	}
	if err := users.Delete(ctx, 3); err != nil {
		t.Fatalf("delete highest id: %v", err)
	}

	created, err := users.Create(ctx, "u", "d@x.io", "pw")
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if created.ID != 4 {
		t.Fatalf("expected id 4 after deleting id 3, got %d", created.ID)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	storage := newTestStorage()
	users := storage.Users()
	ctx := context.Background()

	if _, err := users.Create(ctx, "Alice", "alice@example.com", "pw"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := users.Create(ctx, "Other", "alice@example.com", "pw2"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	all, err := users.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("duplicate create must not grow the store, got %d users", len(all))
	}
}

func TestUserGetters(t *testing.T) {
	storage := newTestStorage()
	users := storage.Users()
	ctx := context.Background()

	created, err := users.Create(ctx, "Alice", "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	byEmail, err := users.GetByEmail(ctx, "alice@example.com")
	if err != nil || byEmail.ID != created.ID {
		t.Fatalf("get by email: %v, %+v", err, byEmail)
	}
	byID, err := users.GetByID(ctx, created.ID)
	if err != nil || byID.Email != "alice@example.com" {
		t.Fatalf("get by id: %v, %+v", err, byID)
	}

	if _, err := users.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := users.GetByID(ctx, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserGetReturnsCopy(t *testing.T) {
	storage := newTestStorage()
	users := storage.Users()
	ctx := context.Background()

	created, err := users.Create(ctx, "Alice", "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created.Name = "Mutated"

	fetched, err := users.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Name != "Alice" {
		t.Fatalf("mutating a returned record must not touch the store, got %q", fetched.Name)
	}
}

func TestUserUpdate(t *testing.T) {
	storage := newTestStorage()
	users := storage.Users()
	ctx := context.Background()

	created, err := users.Create(ctx, "Alice", "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Alicia"
	role := model.RoleMaster
	isAdmin := true
	updated, err := users.Update(ctx, created.ID, repository.UserUpdate{Name: &name, Role: &role, IsAdmin: &isAdmin})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Alicia" || updated.Role != model.RoleMaster || !updated.IsAdmin {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("update must not touch unrelated fields, got email %q", updated.Email)
	}

	if _, err := users.Update(ctx, 99, repository.UserUpdate{Name: &name}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserUpdatePartial(t *testing.T) {
	storage := newTestStorage()
	users := storage.Users()
	ctx := context.Background()

	created, err := users.Create(ctx, "Alice", "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	role := model.RoleMember
	updated, err := users.Update(ctx, created.ID, repository.UserUpdate{Role: &role})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Alice" {
		t.Fatalf("nil fields must be left alone, got name %q", updated.Name)
	}
	if updated.Role != model.RoleMember {
		t.Fatalf("expected role member, got %q", updated.Role)
	}
}

func TestUserDelete(t *testing.T) {
	storage := newTestStorage()
	users := storage.Users()
	ctx := context.Background()

	created, err := users.Create(ctx, "Alice", "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := users.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := users.GetByID(ctx, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := users.Delete(ctx, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSeedAdvancesCounter(t *testing.T) {
	storage := newTestStorage()
	storage.Seed(DefaultUsers(), DefaultPrograms())
	users := storage.Users()
	ctx := context.Background()

	seeded, err := users.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var maxID int64
	for _, u := range seeded {
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	created, err := users.Create(ctx, "New", "new@example.com", "pw")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID <= maxID {
		t.Fatalf("expected id above seeded maximum %d, got %d", maxID, created.ID)
	}
}

func TestSeededFixtures(t *testing.T) {
	storage := newTestStorage()
	storage.Seed(DefaultUsers(), DefaultPrograms())
	ctx := context.Background()

	admin, err := storage.Users().GetByEmail(ctx, "admin@learnhub.io")
	if err != nil {
		t.Fatalf("expected seeded admin account: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatal("seeded admin account must carry the admin flag")
	}

	programs, err := storage.Programs().List(ctx)
	if err != nil {
		t.Fatalf("list programs: %v", err)
	}
	if len(programs) == 0 {
		t.Fatal("expected seeded programs")
	}
}

func TestProgramLookups(t *testing.T) {
	storage := newTestStorage()
	storage.Seed(nil, []model.Program{
		{ID: 1, Slug: "money-insight", Title: "Money Insight", Tier: model.RoleFree},
		{ID: 2, Slug: "master-class", Title: "Master Class", Tier: model.RoleMaster},
	})
	programs := storage.Programs()
	ctx := context.Background()

	byID, err := programs.GetByID(ctx, 2)
	if err != nil || byID.Slug != "master-class" {
		t.Fatalf("get by id: %v, %+v", err, byID)
	}
	bySlug, err := programs.GetBySlug(ctx, "money-insight")
	if err != nil || bySlug.ID != 1 {
		t.Fatalf("get by slug: %v, %+v", err, bySlug)
	}
	if _, err := programs.GetBySlug(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLatencyHonorsCancellation(t *testing.T) {
	storage := New(time.Minute, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	users := storage.Users()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := users.GetByID(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLatencyDelaysOperations(t *testing.T) {
	storage := New(20*time.Millisecond, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	users := storage.Users()

	start := time.Now()
	if _, err := users.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected at least 20ms of simulated latency, took %v", elapsed)
	}
}
