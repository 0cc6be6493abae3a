package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/repository"
)

type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	Get(ctx context.Context, id int) (*model.Course, error)
	Create(ctx context.Context, in *model.CourseInput) (*model.Course, error)
	Update(ctx context.Context, id int, in *model.CourseInput) (*model.Course, error)
	Delete(ctx context.Context, id int) error
}

type courseService struct {
	courseRepo repository.CourseRepository
	log        zerolog.Logger
}

func NewCourseService(courseRepo repository.CourseRepository, log zerolog.Logger) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		log:        log.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	logFailure(s.log, err, "list", 0)
	return courses, err
}

func (s *courseService) Get(ctx context.Context, id int) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	logFailure(s.log, err, "get", id)
	return course, err
}

func (s *courseService) Create(ctx context.Context, in *model.CourseInput) (*model.Course, error) {
	course, err := s.courseRepo.Create(ctx, in)
	logFailure(s.log, err, "create", 0)
	return course, err
}

func (s *courseService) Update(ctx context.Context, id int, in *model.CourseInput) (*model.Course, error) {
	course, err := s.courseRepo.Update(ctx, id, in)
	logFailure(s.log, err, "update", id)
	return course, err
}

func (s *courseService) Delete(ctx context.Context, id int) error {
	err := s.courseRepo.Delete(ctx, id)
	logFailure(s.log, err, "delete", id)
	return err
}
