package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/der-api/internal/model"
)

const courseColumns = `id_curso, id_instituicao, id_tipo_curso, tx_descricao`

// CourseRepository handles data access for the curso table.
type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id int) (*model.Course, error)
	Create(ctx context.Context, in *model.CourseInput) (*model.Course, error)
	Update(ctx context.Context, id int, in *model.CourseInput) (*model.Course, error)
	Delete(ctx context.Context, id int) error
}

type courseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) CourseRepository {
	return &courseRepository{pool: pool}
}

func scanCourse(row pgx.Row) (*model.Course, error) {
	c := &model.Course{}
	if err := row.Scan(&c.ID, &c.InstitutionID, &c.CourseTypeID, &c.Description); err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+courseColumns+` FROM curso ORDER BY id_curso`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]model.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

func (r *courseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM curso WHERE id_curso = $1`, id))
}

func (r *courseRepository) Create(ctx context.Context, in *model.CourseInput) (*model.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx,
		`INSERT INTO curso (id_instituicao, id_tipo_curso, tx_descricao)
		 VALUES ($1, $2, $3)
		 RETURNING `+courseColumns,
		in.InstitutionID, in.CourseTypeID, in.Description,
	))
}

func (r *courseRepository) Update(ctx context.Context, id int, in *model.CourseInput) (*model.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx,
		`UPDATE curso SET id_instituicao = $1, id_tipo_curso = $2, tx_descricao = $3
		 WHERE id_curso = $4
		 RETURNING `+courseColumns,
		in.InstitutionID, in.CourseTypeID, in.Description, id,
	))
}

func (r *courseRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM curso WHERE id_curso = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
