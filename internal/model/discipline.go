package model

// Discipline is a row of the disciplina table.
type Discipline struct {
	ID               int     `json:"id_disciplina"`
	CourseID         *int    `json:"id_curso"`
	DisciplineTypeID *int    `json:"id_tipo_disciplina"`
	Acronym          *string `json:"tx_sigla"`
	Description      *string `json:"tx_descricao"`
	Period           *int    `json:"in_periodo"`
	WorkloadHours    *int    `json:"in_carga_horaria"`
}

// DisciplineInput is the full set of mutable discipline fields.
type DisciplineInput struct {
	CourseID         *int    `json:"id_curso"`
	DisciplineTypeID *int    `json:"id_tipo_disciplina"`
	Acronym          *string `json:"tx_sigla"`
	Description      *string `json:"tx_descricao"`
	Period           *int    `json:"in_periodo"`
	WorkloadHours    *int    `json:"in_carga_horaria"`
}
