package model

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Professor is a row of the professor table.
type Professor struct {
	ID            int         `json:"id_professor"`
	InstitutionID *int        `json:"id_instituicao"`
	Name          *string     `json:"tx_nome"`
	Sex           *string     `json:"tx_sexo"`
	MaritalStatus *string     `json:"tx_estado_civil"`
	BirthDate     pgtype.Date `json:"dt_nascimento"`
	Phone         *string     `json:"tx_telefone"`
}

// ProfessorWithInstitution is a professor row joined with its institution's
// acronym and description, as returned by the professor listing.
type ProfessorWithInstitution struct {
	Professor
	InstitutionAcronym     *string `json:"tx_sigla"`
	InstitutionDescription *string `json:"tx_descricao"`
}

// ProfessorInput is the full set of mutable professor fields.
type ProfessorInput struct {
	InstitutionID *int    `json:"id_instituicao"`
	Name          *string `json:"tx_nome"`
	Sex           *string `json:"tx_sexo"`
	MaritalStatus *string `json:"tx_estado_civil"`
	BirthDate     Date    `json:"dt_nascimento"`
	Phone         *string `json:"tx_telefone"`
}

// Normalize lowercases the sex and uppercases the marital status in place.
// Absent fields stay absent.
func (in *ProfessorInput) Normalize() {
	if in.Sex != nil {
		s := strings.ToLower(*in.Sex)
		in.Sex = &s
	}
	if in.MaritalStatus != nil {
		m := strings.ToUpper(*in.MaritalStatus)
		in.MaritalStatus = &m
	}
}
