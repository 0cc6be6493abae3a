package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/der-api/internal/model"
)

const professorColumns = `id_professor, id_instituicao, tx_nome, tx_sexo, tx_estado_civil, dt_nascimento, tx_telefone`

// ProfessorRepository handles data access for the professor table.
type ProfessorRepository interface {
	List(ctx context.Context) ([]model.ProfessorWithInstitution, error)
	GetByID(ctx context.Context, id int) (*model.Professor, error)
	Create(ctx context.Context, in *model.ProfessorInput) (*model.Professor, error)
	Update(ctx context.Context, id int, in *model.ProfessorInput) (*model.Professor, error)
	Delete(ctx context.Context, id int) error
}

type professorRepository struct {
	pool *pgxpool.Pool
}

func NewProfessorRepository(pool *pgxpool.Pool) ProfessorRepository {
	return &professorRepository{pool: pool}
}

func scanProfessor(row pgx.Row) (*model.Professor, error) {
	p := &model.Professor{}
	err := row.Scan(&p.ID, &p.InstitutionID, &p.Name, &p.Sex, &p.MaritalStatus, &p.BirthDate, &p.Phone)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// List returns every professor along with the acronym and description of
// its institution. Professors whose institution is missing still appear.
func (r *professorRepository) List(ctx context.Context) ([]model.ProfessorWithInstitution, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id_professor, p.id_instituicao, p.tx_nome, p.tx_sexo, p.tx_estado_civil,
		        p.dt_nascimento, p.tx_telefone, i.tx_sigla, i.tx_descricao
		 FROM professor p
		 LEFT JOIN instituicao i ON p.id_instituicao = i.id_instituicao
		 ORDER BY p.id_professor`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	professors := make([]model.ProfessorWithInstitution, 0)
	for rows.Next() {
		var p model.ProfessorWithInstitution
		if err := rows.Scan(
			&p.ID, &p.InstitutionID, &p.Name, &p.Sex, &p.MaritalStatus, &p.BirthDate, &p.Phone,
			&p.InstitutionAcronym, &p.InstitutionDescription,
		); err != nil {
			return nil, err
		}
		professors = append(professors, p)
	}
	return professors, rows.Err()
}

func (r *professorRepository) GetByID(ctx context.Context, id int) (*model.Professor, error) {
	return scanProfessor(r.pool.QueryRow(ctx,
		`SELECT `+professorColumns+` FROM professor WHERE id_professor = $1`, id))
}

func (r *professorRepository) Create(ctx context.Context, in *model.ProfessorInput) (*model.Professor, error) {
	return scanProfessor(r.pool.QueryRow(ctx,
		`INSERT INTO professor (id_instituicao, tx_nome, tx_sexo, tx_estado_civil, dt_nascimento, tx_telefone)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+professorColumns,
		in.InstitutionID, in.Name, in.Sex, in.MaritalStatus, in.BirthDate.PgDate(), in.Phone,
	))
}

func (r *professorRepository) Update(ctx context.Context, id int, in *model.ProfessorInput) (*model.Professor, error) {
	return scanProfessor(r.pool.QueryRow(ctx,
		`UPDATE professor
		 SET id_instituicao = $1, tx_nome = $2, tx_sexo = $3, tx_estado_civil = $4, dt_nascimento = $5, tx_telefone = $6
		 WHERE id_professor = $7
		 RETURNING `+professorColumns,
		in.InstitutionID, in.Name, in.Sex, in.MaritalStatus, in.BirthDate.PgDate(), in.Phone, id,
	))
}

func (r *professorRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM professor WHERE id_professor = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
