package usecase

import (
	"context"

	"github.com/learnhub/learnhub/internal/domain/model"
	"github.com/learnhub/learnhub/internal/domain/repository"
)

// CatalogUseCase serves the program catalog.
type CatalogUseCase struct {
	programs repository.ProgramRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(programs repository.ProgramRepository) *CatalogUseCase {
	return &CatalogUseCase{programs: programs}
}

// Programs lists the catalog.
func (u *CatalogUseCase) Programs(ctx context.Context) ([]model.Program, error) {
	return u.programs.List(ctx)
}

// ProgramByID fetches a program by identifier.
func (u *CatalogUseCase) ProgramByID(ctx context.Context, id int64) (*model.Program, error) {
	return u.programs.GetByID(ctx, id)
}

// ProgramBySlug fetches a program by its URL slug.
func (u *CatalogUseCase) ProgramBySlug(ctx context.Context, slug string) (*model.Program, error) {
	return u.programs.GetBySlug(ctx, slug)
}
