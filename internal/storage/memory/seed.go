package memory

import (
	"time"

	"github.com/learnhub/learnhub/internal/domain/model"
)

var seedTime = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// DefaultUsers are the demo accounts shipped with the in-memory backend.
func DefaultUsers() []model.User {
	return []model.User{
		{ID: 1, Email: "admin@learnhub.io", Password: "admin123", Name: "Platform Admin", Role: model.RoleFree, IsAdmin: true, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: 2, Email: "sarah@example.com", Password: "member123", Name: "Sarah Chen", Role: model.RoleMember, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: 3, Email: "marcus@example.com", Password: "master123", Name: "Marcus Webb", Role: model.RoleMaster, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: 4, Email: "elena@example.com", Password: "both123", Name: "Elena Petrova", Role: model.RoleBoth, CreatedAt: seedTime, UpdatedAt: seedTime},
	}
}

// DefaultPrograms is the demo catalog served without a database.
func DefaultPrograms() []model.Program {
	return []model.Program{
		{ID: 1, Slug: "money-insight", Title: "Money Insight", Description: "Foundations of personal finance and budgeting.", Tier: model.RoleFree, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: 2, Slug: "wealth-builder", Title: "Wealth Builder", Description: "Structured investing track for members.", Tier: model.RoleMember, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: 3, Slug: "master-class", Title: "Master Class", Description: "Advanced strategies with live reviews.", Tier: model.RoleMaster, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: 4, Slug: "full-access", Title: "Full Access", Description: "Everything on the platform, both tracks.", Tier: model.RoleBoth, CreatedAt: seedTime, UpdatedAt: seedTime},
	}
}
