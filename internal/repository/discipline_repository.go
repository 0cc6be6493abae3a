package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/der-api/internal/model"
)

const disciplineColumns = `id_disciplina, id_curso, id_tipo_disciplina, tx_sigla, tx_descricao, in_periodo, in_carga_horaria`

// DisciplineRepository handles data access for the disciplina table.
type DisciplineRepository interface {
	List(ctx context.Context) ([]model.Discipline, error)
	ListByCourse(ctx context.Context, courseID int) ([]model.Discipline, error)
	GetByID(ctx context.Context, id int) (*model.Discipline, error)
	Create(ctx context.Context, in *model.DisciplineInput) (*model.Discipline, error)
	Update(ctx context.Context, id int, in *model.DisciplineInput) (*model.Discipline, error)
	Delete(ctx context.Context, id int) error
}

type disciplineRepository struct {
	pool *pgxpool.Pool
}

func NewDisciplineRepository(pool *pgxpool.Pool) DisciplineRepository {
	return &disciplineRepository{pool: pool}
}

func scanDiscipline(row pgx.Row) (*model.Discipline, error) {
	d := &model.Discipline{}
	err := row.Scan(&d.ID, &d.CourseID, &d.DisciplineTypeID, &d.Acronym, &d.Description, &d.Period, &d.WorkloadHours)
	if err != nil {
		return nil, translate(err)
	}
	return d, nil
}

func (r *disciplineRepository) collect(rows pgx.Rows) ([]model.Discipline, error) {
	defer rows.Close()

	disciplines := make([]model.Discipline, 0)
	for rows.Next() {
		d, err := scanDiscipline(rows)
		if err != nil {
			return nil, err
		}
		disciplines = append(disciplines, *d)
	}
	return disciplines, rows.Err()
}

func (r *disciplineRepository) List(ctx context.Context) ([]model.Discipline, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+disciplineColumns+` FROM disciplina ORDER BY id_disciplina`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// ListByCourse returns the disciplines owned by a course. An unknown course yields an empty slice.
func (r *disciplineRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Discipline, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+disciplineColumns+` FROM disciplina
		 WHERE id_curso = $1
		 ORDER BY in_periodo, id_disciplina`, courseID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *disciplineRepository) GetByID(ctx context.Context, id int) (*model.Discipline, error) {
	return scanDiscipline(r.pool.QueryRow(ctx,
		`SELECT `+disciplineColumns+` FROM disciplina WHERE id_disciplina = $1`, id))
}

func (r *disciplineRepository) Create(ctx context.Context, in *model.DisciplineInput) (*model.Discipline, error) {
	return scanDiscipline(r.pool.QueryRow(ctx,
		`INSERT INTO disciplina (id_curso, id_tipo_disciplina, tx_sigla, tx_descricao, in_periodo, in_carga_horaria)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+disciplineColumns,
		in.CourseID, in.DisciplineTypeID, in.Acronym, in.Description, in.Period, in.WorkloadHours,
	))
}

func (r *disciplineRepository) Update(ctx context.Context, id int, in *model.DisciplineInput) (*model.Discipline, error) {
	return scanDiscipline(r.pool.QueryRow(ctx,
		`UPDATE disciplina
		 SET id_curso = $1, id_tipo_disciplina = $2, tx_sigla = $3, tx_descricao = $4, in_periodo = $5, in_carga_horaria = $6
		 WHERE id_disciplina = $7
		 RETURNING `+disciplineColumns,
		in.CourseID, in.DisciplineTypeID, in.Acronym, in.Description, in.Period, in.WorkloadHours, id,
	))
}

func (r *disciplineRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM disciplina WHERE id_disciplina = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
