package usecase

import (
	"classsync/internal/task/repository"
	"classsync/pkg/gemini"
	pkgLog "classsync/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	llm  gemini.Generator
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, llm gemini.Generator) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		llm:  llm,
	}
}
