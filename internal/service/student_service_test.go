package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/repository"
)

func TestStudentService_CreateThenGetReturnsSameRow(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.StudentInput{
		Name:      strPtr("João"),
		Sex:       strPtr("m"),
		BirthDate: model.Date{Time: time.Date(2002, 5, 17, 0, 0, 0, 0, time.UTC), Valid: true},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != created.ID || *got.Name != *created.Name || !got.BirthDate.Time.Equal(created.BirthDate.Time) {
		t.Errorf("rows differ: %+v vs %+v", got, created)
	}
}

func TestStudentService_SecondDeleteIsNotFound(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), zerolog.Nop())
	ctx := context.Background()

	s, _ := svc.Create(ctx, &model.StudentInput{Name: strPtr("Lia")})
	if err := svc.Delete(ctx, s.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(ctx, s.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestStudentService_ListEmpty(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), zerolog.Nop())

	students, err := svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if students == nil || len(students) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", students)
	}
}

func TestStudentService_CreatePropagatesConstraintError(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), &model.StudentInput{})
	if err == nil || errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected database error, got %v", err)
	}
}
