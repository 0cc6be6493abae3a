package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/repository"
)

type InstitutionService interface {
	List(ctx context.Context) ([]model.Institution, error)
	Get(ctx context.Context, id int) (*model.Institution, error)
	Create(ctx context.Context, in *model.InstitutionInput) (*model.Institution, error)
	Update(ctx context.Context, id int, in *model.InstitutionInput) (*model.Institution, error)
	Delete(ctx context.Context, id int) error
}

type institutionService struct {
	institutionRepo repository.InstitutionRepository
	log             zerolog.Logger
}

func NewInstitutionService(institutionRepo repository.InstitutionRepository, log zerolog.Logger) InstitutionService {
	return &institutionService{
		institutionRepo: institutionRepo,
		log:             log.With().Str("component", "institution_service").Logger(),
	}
}

func (s *institutionService) List(ctx context.Context) ([]model.Institution, error) {
	institutions, err := s.institutionRepo.List(ctx)
	logFailure(s.log, err, "list", 0)
	return institutions, err
}

func (s *institutionService) Get(ctx context.Context, id int) (*model.Institution, error) {
	institution, err := s.institutionRepo.GetByID(ctx, id)
	logFailure(s.log, err, "get", id)
	return institution, err
}

func (s *institutionService) Create(ctx context.Context, in *model.InstitutionInput) (*model.Institution, error) {
	institution, err := s.institutionRepo.Create(ctx, in)
	logFailure(s.log, err, "create", 0)
	return institution, err
}

func (s *institutionService) Update(ctx context.Context, id int, in *model.InstitutionInput) (*model.Institution, error) {
	institution, err := s.institutionRepo.Update(ctx, id, in)
	logFailure(s.log, err, "update", id)
	return institution, err
}

// Delete removes an institution. Courses or professors still pointing at it
// make the database reject the statement.
func (s *institutionService) Delete(ctx context.Context, id int) error {
	err := s.institutionRepo.Delete(ctx, id)
	logFailure(s.log, err, "delete", id)
	return err
}
