package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/repository"
)

type StudentService interface {
	List(ctx context.Context) ([]model.Student, error)
	Get(ctx context.Context, id int) (*model.Student, error)
	Create(ctx context.Context, in *model.StudentInput) (*model.Student, error)
	Update(ctx context.Context, id int, in *model.StudentInput) (*model.Student, error)
	Delete(ctx context.Context, id int) error
}

type studentService struct {
	studentRepo repository.StudentRepository
	log         zerolog.Logger
}

func NewStudentService(studentRepo repository.StudentRepository, log zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		log:         log.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.studentRepo.List(ctx)
	logFailure(s.log, err, "list", 0)
	return students, err
}

func (s *studentService) Get(ctx context.Context, id int) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	logFailure(s.log, err, "get", id)
	return student, err
}

func (s *studentService) Create(ctx context.Context, in *model.StudentInput) (*model.Student, error) {
	student, err := s.studentRepo.Create(ctx, in)
	logFailure(s.log, err, "create", 0)
	return student, err
}

func (s *studentService) Update(ctx context.Context, id int, in *model.StudentInput) (*model.Student, error) {
	student, err := s.studentRepo.Update(ctx, id, in)
	logFailure(s.log, err, "update", id)
	return student, err
}

func (s *studentService) Delete(ctx context.Context, id int) error {
	err := s.studentRepo.Delete(ctx, id)
	logFailure(s.log, err, "delete", id)
	return err
}
