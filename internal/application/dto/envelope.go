package dto

// Envelope es el sobre uniforme de todas las respuestas del API:
// {success, message, data?, error?}. Las listas legítimamente vacías se
// reportan como success:false con HTTP 200; 404 queda reservado para
// búsquedas por id que no encuentran la entidad.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK construye un sobre de éxito.
func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Empty construye el sobre de "sin datos" (no es un error).
func Empty(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// Fail construye un sobre de error.
func Fail(message, errText string) Envelope {
	return Envelope{Success: false, Message: message, Error: errText}
}

// Pagination metadatos de página al estilo del API original.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// NewPagination calcula los metadatos; last_page nunca baja de 1.
func NewPagination(page, perPage, total int) Pagination {
	last := 1
	if perPage > 0 {
		last = (total + perPage - 1) / perPage
		if last < 1 {
			last = 1
		}
	}
	return Pagination{CurrentPage: page, PerPage: perPage, Total: total, LastPage: last}
}
