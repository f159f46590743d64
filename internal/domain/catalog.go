package domain

// Service is an immutable service catalog entry.
// Снимок каталога загружается один раз на сессию и дальше не меняется
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Duration    string  `json:"duration"` // HH:MM:SS
	Price       float64 `json:"price"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Professional is an immutable professional catalog entry
type Professional struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	ImageURL   *string `json:"imageUrl,omitempty"`
}
