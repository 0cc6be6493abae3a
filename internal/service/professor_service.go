package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/repository"
)

type ProfessorService interface {
	List(ctx context.Context) ([]model.ProfessorWithInstitution, error)
	Get(ctx context.Context, id int) (*model.Professor, error)
	Create(ctx context.Context, in *model.ProfessorInput) (*model.Professor, error)
	Update(ctx context.Context, id int, in *model.ProfessorInput) (*model.Professor, error)
	Delete(ctx context.Context, id int) error
}

type professorService struct {
	professorRepo repository.ProfessorRepository
	log           zerolog.Logger
}

func NewProfessorService(professorRepo repository.ProfessorRepository, log zerolog.Logger) ProfessorService {
	return &professorService{
		professorRepo: professorRepo,
		log:           log.With().Str("component", "professor_service").Logger(),
	}
}

func (s *professorService) List(ctx context.Context) ([]model.ProfessorWithInstitution, error) {
	professors, err := s.professorRepo.List(ctx)
	logFailure(s.log, err, "list", 0)
	return professors, err
}

func (s *professorService) Get(ctx context.Context, id int) (*model.Professor, error) {
	professor, err := s.professorRepo.GetByID(ctx, id)
	logFailure(s.log, err, "get", id)
	return professor, err
}

// Create stores a professor with sex lowercased and marital status uppercased.
func (s *professorService) Create(ctx context.Context, in *model.ProfessorInput) (*model.Professor, error) {
	in.Normalize()
	professor, err := s.professorRepo.Create(ctx, in)
	logFailure(s.log, err, "create", 0)
	return professor, err
}

// Update replaces every field of a professor, normalizing like Create.
func (s *professorService) Update(ctx context.Context, id int, in *model.ProfessorInput) (*model.Professor, error) {
	in.Normalize()
	professor, err := s.professorRepo.Update(ctx, id, in)
	logFailure(s.log, err, "update", id)
	return professor, err
}

func (s *professorService) Delete(ctx context.Context, id int) error {
	err := s.professorRepo.Delete(ctx, id)
	logFailure(s.log, err, "delete", id)
	return err
}
