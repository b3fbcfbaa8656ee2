package repository

import (
	"context"

	"github.com/learnhub/learnhub/internal/domain/model"
)

// ProgramRepository describes read access to the program catalog.
type ProgramRepository interface {
	List(ctx context.Context) ([]model.Program, error)
	GetByID(ctx context.Context, id int64) (*model.Program, error)
	GetBySlug(ctx context.Context, slug string) (*model.Program, error)
}
