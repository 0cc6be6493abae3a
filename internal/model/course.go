package model

// Course is a row of the curso table.
type Course struct {
	ID            int     `json:"id_curso"`
	InstitutionID *int    `json:"id_instituicao"`
	CourseTypeID  *int    `json:"id_tipo_curso"`
	Description   *string `json:"tx_descricao"`
}

// CourseInput is the full set of mutable course fields.
type CourseInput struct {
	InstitutionID *int    `json:"id_instituicao"`
	CourseTypeID  *int    `json:"id_tipo_curso"`
	Description   *string `json:"tx_descricao"`
}
