package catalogservice

// Service модель услуги из каталога
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    *string `json:"category,omitempty"`
	Duration    *string `json:"duration,omitempty"` // "01:00:00"
	Price       float64 `json:"price"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Professional модель мастера из каталога
type Professional struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	ImageURL   *string `json:"imageUrl,omitempty"`
}

// ErrorResponse модель ошибки каталога
type ErrorResponse struct {
	Error string `json:"error"`
}
