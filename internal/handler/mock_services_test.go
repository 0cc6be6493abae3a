package handler

import (
	"context"
	"sync"

	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/repository"
)

// memService is an in-memory stand-in for the per-entity services. Rows get
// sequential ids; setting err makes every call fail like a database error.
type memService[R any, I any] struct {
	mu     sync.Mutex
	rows   map[int]R
	nextID int
	err    error
	build  func(id int, in *I) R
}

func newMemService[R any, I any](build func(id int, in *I) R) *memService[R, I] {
	return &memService[R, I]{rows: make(map[int]R), nextID: 1, build: build}
}

func (m *memService[R, I]) List(ctx context.Context) ([]R, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]R, 0, len(m.rows))
	for id := 1; id < m.nextID; id++ {
		if row, ok := m.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memService[R, I]) Get(ctx context.Context, id int) (*R, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (m *memService[R, I]) Create(ctx context.Context, in *I) (*R, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row := m.build(m.nextID, in)
	m.rows[m.nextID] = row
	m.nextID++
	return &row, nil
}

func (m *memService[R, I]) Update(ctx context.Context, id int, in *I) (*R, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.rows[id]; !ok {
		return nil, repository.ErrNotFound
	}
	row := m.build(id, in)
	m.rows[id] = row
	return &row, nil
}

func (m *memService[R, I]) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memService[R, I]) setErr(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

func (m *memService[R, I]) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func newMockStudentService() *memService[model.Student, model.StudentInput] {
	return newMemService(func(id int, in *model.StudentInput) model.Student {
		return model.Student{ID: id, Name: in.Name, Sex: in.Sex, BirthDate: in.BirthDate.PgDate()}
	})
}

func newMockInstitutionService() *memService[model.Institution, model.InstitutionInput] {
	return newMemService(func(id int, in *model.InstitutionInput) model.Institution {
		return model.Institution{ID: id, Acronym: in.Acronym, Description: in.Description}
	})
}

func newMockCourseService() *memService[model.Course, model.CourseInput] {
	return newMemService(func(id int, in *model.CourseInput) model.Course {
		return model.Course{ID: id, InstitutionID: in.InstitutionID, CourseTypeID: in.CourseTypeID, Description: in.Description}
	})
}

type mockDisciplineService struct {
	*memService[model.Discipline, model.DisciplineInput]
}

func newMockDisciplineService() *mockDisciplineService {
	return &mockDisciplineService{newMemService(func(id int, in *model.DisciplineInput) model.Discipline {
		return model.Discipline{
			ID: id, CourseID: in.CourseID, DisciplineTypeID: in.DisciplineTypeID, Acronym: in.Acronym,
			Description: in.Description, Period: in.Period, WorkloadHours: in.WorkloadHours,
		}
	})}
}

func (m *mockDisciplineService) ListByCourse(ctx context.Context, courseID int) ([]model.Discipline, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Discipline, 0)
	for _, d := range all {
		if d.CourseID != nil && *d.CourseID == courseID {
			out = append(out, d)
		}
	}
	return out, nil
}

type mockProfessorService struct {
	*memService[model.Professor, model.ProfessorInput]
}

func newMockProfessorService() *mockProfessorService {
	return &mockProfessorService{newMemService(func(id int, in *model.ProfessorInput) model.Professor {
		return model.Professor{
			ID: id, InstitutionID: in.InstitutionID, Name: in.Name, Sex: in.Sex,
			MaritalStatus: in.MaritalStatus, BirthDate: in.BirthDate.PgDate(), Phone: in.Phone,
		}
	})}
}

func (m *mockProfessorService) List(ctx context.Context) ([]model.ProfessorWithInstitution, error) {
	all, err := m.memService.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.ProfessorWithInstitution, 0, len(all))
	for _, p := range all {
		out = append(out, model.ProfessorWithInstitution{Professor: p})
	}
	return out, nil
}

type mockPinger struct{ err error }

func (m mockPinger) Ping(ctx context.Context) error { return m.err }
