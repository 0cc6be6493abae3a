package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/der-api/internal/model"
)

const institutionColumns = `id_instituicao, tx_sigla, tx_descricao`

// InstitutionRepository handles data access for the instituicao table.
type InstitutionRepository interface {
	List(ctx context.Context) ([]model.Institution, error)
	GetByID(ctx context.Context, id int) (*model.Institution, error)
	Create(ctx context.Context, in *model.InstitutionInput) (*model.Institution, error)
	Update(ctx context.Context, id int, in *model.InstitutionInput) (*model.Institution, error)
	Delete(ctx context.Context, id int) error
}

type institutionRepository struct {
	pool *pgxpool.Pool
}

func NewInstitutionRepository(pool *pgxpool.Pool) InstitutionRepository {
	return &institutionRepository{pool: pool}
}

func scanInstitution(row pgx.Row) (*model.Institution, error) {
	i := &model.Institution{}
	if err := row.Scan(&i.ID, &i.Acronym, &i.Description); err != nil {
		return nil, translate(err)
	}
	return i, nil
}

func (r *institutionRepository) List(ctx context.Context) ([]model.Institution, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+institutionColumns+` FROM instituicao ORDER BY id_instituicao`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	institutions := make([]model.Institution, 0)
	for rows.Next() {
		i, err := scanInstitution(rows)
		if err != nil {
			return nil, err
		}
		institutions = append(institutions, *i)
	}
	return institutions, rows.Err()
}

func (r *institutionRepository) GetByID(ctx context.Context, id int) (*model.Institution, error) {
	return scanInstitution(r.pool.QueryRow(ctx,
		`SELECT `+institutionColumns+` FROM instituicao WHERE id_instituicao = $1`, id))
}

func (r *institutionRepository) Create(ctx context.Context, in *model.InstitutionInput) (*model.Institution, error) {
	return scanInstitution(r.pool.QueryRow(ctx,
		`INSERT INTO instituicao (tx_sigla, tx_descricao)
		 VALUES ($1, $2)
		 RETURNING `+institutionColumns,
		in.Acronym, in.Description,
	))
}

func (r *institutionRepository) Update(ctx context.Context, id int, in *model.InstitutionInput) (*model.Institution, error) {
	return scanInstitution(r.pool.QueryRow(ctx,
		`UPDATE instituicao SET tx_sigla = $1, tx_descricao = $2
		 WHERE id_instituicao = $3
		 RETURNING `+institutionColumns,
		in.Acronym, in.Description, id,
	))
}

func (r *institutionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM instituicao WHERE id_instituicao = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
