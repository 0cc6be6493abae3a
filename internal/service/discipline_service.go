package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/repository"
)

type DisciplineService interface {
	List(ctx context.Context) ([]model.Discipline, error)
	ListByCourse(ctx context.Context, courseID int) ([]model.Discipline, error)
	Get(ctx context.Context, id int) (*model.Discipline, error)
	Create(ctx context.Context, in *model.DisciplineInput) (*model.Discipline, error)
	Update(ctx context.Context, id int, in *model.DisciplineInput) (*model.Discipline, error)
	Delete(ctx context.Context, id int) error
}

type disciplineService struct {
	disciplineRepo repository.DisciplineRepository
	log            zerolog.Logger
}

func NewDisciplineService(disciplineRepo repository.DisciplineRepository, log zerolog.Logger) DisciplineService {
	return &disciplineService{
		disciplineRepo: disciplineRepo,
		log:            log.With().Str("component", "discipline_service").Logger(),
	}
}

func (s *disciplineService) List(ctx context.Context) ([]model.Discipline, error) {
	disciplines, err := s.disciplineRepo.List(ctx)
	logFailure(s.log, err, "list", 0)
	return disciplines, err
}

func (s *disciplineService) ListByCourse(ctx context.Context, courseID int) ([]model.Discipline, error) {
	disciplines, err := s.disciplineRepo.ListByCourse(ctx, courseID)
	logFailure(s.log, err, "list_by_course", courseID)
	return disciplines, err
}

func (s *disciplineService) Get(ctx context.Context, id int) (*model.Discipline, error) {
	discipline, err := s.disciplineRepo.GetByID(ctx, id)
	logFailure(s.log, err, "get", id)
	return discipline, err
}

func (s *disciplineService) Create(ctx context.Context, in *model.DisciplineInput) (*model.Discipline, error) {
	discipline, err := s.disciplineRepo.Create(ctx, in)
	logFailure(s.log, err, "create", 0)
	return discipline, err
}

func (s *disciplineService) Update(ctx context.Context, id int, in *model.DisciplineInput) (*model.Discipline, error) {
	discipline, err := s.disciplineRepo.Update(ctx, id, in)
	logFailure(s.log, err, "update", id)
	return discipline, err
}

func (s *disciplineService) Delete(ctx context.Context, id int) error {
	err := s.disciplineRepo.Delete(ctx, id)
	logFailure(s.log, err, "delete", id)
	return err
}
