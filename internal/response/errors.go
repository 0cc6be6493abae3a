package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Request ───────────────────────────────────────────────────────
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrDatabase ErrCode = "DATABASE_ERROR"
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidID:
		return "Formato de ID inválido."
	case ErrInvalidPayload:
		return "Corpo da requisição inválido."

	case ErrNotFound:
		return "Registro não encontrado."

	case ErrRateLimitExceeded:
		return "Muitas requisições. Tente novamente mais tarde."

	case ErrDatabase:
		return "Erro ao executar a operação no banco de dados."
	case ErrInternal:
		return "Erro interno do servidor."
	default:
		return "Ocorreu um erro inesperado."
	}
}
