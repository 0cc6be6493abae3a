package service

import (
	"context"
	"errors"

	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/repository"
)

// ── Mock ProfessorRepository ──

type mockProfessorRepo struct {
	nextID     int
	professors map[int]*model.Professor
	err        error
}

func newMockProfessorRepo() *mockProfessorRepo {
	return &mockProfessorRepo{nextID: 1, professors: make(map[int]*model.Professor)}
}

func (m *mockProfessorRepo) row(id int, in *model.ProfessorInput) *model.Professor {
	return &model.Professor{
		ID:            id,
		InstitutionID: in.InstitutionID,
		Name:          in.Name,
		Sex:           in.Sex,
		MaritalStatus: in.MaritalStatus,
		BirthDate: in.BirthDate.PgDate(),
		Phone:         in.Phone,
	}
}

func (m *mockProfessorRepo) List(_ context.Context) ([]model.ProfessorWithInstitution, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.ProfessorWithInstitution, 0, len(m.professors))
	for _, p := range m.professors {
		out = append(out, model.ProfessorWithInstitution{Professor: *p})
	}
	return out, nil
}

func (m *mockProfessorRepo) GetByID(_ context.Context, id int) (*model.Professor, error) {
	if p, ok := m.professors[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockProfessorRepo) Create(_ context.Context, in *model.ProfessorInput) (*model.Professor, error) {
	if m.err != nil {
		return nil, m.err
	}
	p := m.row(m.nextID, in)
	m.professors[p.ID] = p
	m.nextID++
	return p, nil
}

func (m *mockProfessorRepo) Update(_ context.Context, id int, in *model.ProfessorInput) (*model.Professor, error) {
	if _, ok := m.professors[id]; !ok {
		return nil, repository.ErrNotFound
	}
	p := m.row(id, in)
	m.professors[id] = p
	return p, nil
}

func (m *mockProfessorRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.professors[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.professors, id)
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	nextID   int
	students map[int]model.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{nextID: 1, students: make(map[int]model.Student)}
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	out := make([]model.Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int) (*model.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (m *mockStudentRepo) Create(_ context.Context, in *model.StudentInput) (*model.Student, error) {
	if in.Name == nil {
		return nil, errors.New(`null value in column "tx_nome" violates not-null constraint`)
	}
	s := model.Student{ID: m.nextID, Name: in.Name, Sex: in.Sex, BirthDate: in.BirthDate.PgDate()}
	m.students[s.ID] = s
	m.nextID++
	return &s, nil
}

func (m *mockStudentRepo) Update(_ context.Context, id int, in *model.StudentInput) (*model.Student, error) {
	if _, ok := m.students[id]; !ok {
		return nil, repository.ErrNotFound
	}
	s := model.Student{ID: id, Name: in.Name, Sex: in.Sex, BirthDate: in.BirthDate.PgDate()}
	m.students[id] = s
	return &s, nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.students[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.students, id)
	return nil
}
