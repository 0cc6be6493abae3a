package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/der-api/internal/model"
)

const studentColumns = `id_aluno, tx_nome, tx_sexo, dt_nascimento`

// StudentRepository handles data access for the aluno table.
type StudentRepository interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id int) (*model.Student, error)
	Create(ctx context.Context, in *model.StudentInput) (*model.Student, error)
	Update(ctx context.Context, id int, in *model.StudentInput) (*model.Student, error)
	Delete(ctx context.Context, id int) error
}

type studentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a StudentRepository backed by the pool.
func NewStudentRepository(pool *pgxpool.Pool) StudentRepository {
	return &studentRepository{pool: pool}
}

func scanStudent(row pgx.Row) (*model.Student, error) {
	s := &model.Student{}
	if err := row.Scan(&s.ID, &s.Name, &s.Sex, &s.BirthDate); err != nil {
		return nil, translate(err)
	}
	return s, nil
}

func (r *studentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+studentColumns+` FROM aluno ORDER BY id_aluno`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]model.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

func (r *studentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM aluno WHERE id_aluno = $1`, id))
}

func (r *studentRepository) Create(ctx context.Context, in *model.StudentInput) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`INSERT INTO aluno (tx_nome, tx_sexo, dt_nascimento)
		 VALUES ($1, $2, $3)
		 RETURNING `+studentColumns,
		in.Name, in.Sex, in.BirthDate.PgDate(),
	))
}

func (r *studentRepository) Update(ctx context.Context, id int, in *model.StudentInput) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`UPDATE aluno SET tx_nome = $1, tx_sexo = $2, dt_nascimento = $3
		 WHERE id_aluno = $4
		 RETURNING `+studentColumns,
		in.Name, in.Sex, in.BirthDate.PgDate(), id,
	))
}

func (r *studentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM aluno WHERE id_aluno = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
