package model

import "github.com/jackc/pgx/v5/pgtype"

// Student is a row of the aluno table.
type Student struct {
	ID        int         `json:"id_aluno"`
	Name      *string     `json:"tx_nome"`
	Sex       *string     `json:"tx_sexo"`
	BirthDate pgtype.Date `json:"dt_nascimento"`
}

// StudentInput is the full set of mutable student fields accepted by create and update.
type StudentInput struct {
	Name      *string `json:"tx_nome"`
	Sex       *string `json:"tx_sexo"`
	BirthDate Date    `json:"dt_nascimento"`
}
