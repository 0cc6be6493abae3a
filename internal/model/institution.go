package model

// Institution is a row of the instituicao table.
type Institution struct {
	ID          int     `json:"id_instituicao"`
	Acronym     *string `json:"tx_sigla"`
	Description *string `json:"tx_descricao"`
}

// InstitutionInput is the full set of mutable institution fields.
type InstitutionInput struct {
	Acronym     *string `json:"tx_sigla"`
	Description *string `json:"tx_descricao"`
}
