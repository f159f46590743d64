package domain

import "time"

// CustomerIdentity is a resolved customer identifier used for commit.
// IsTemporary=true помечает синтетический идентификатор "temp_<phone>",
// выданный при недоступности реестра клиентов; такие идентификаторы
// уникальны только в пределах значения телефона
type CustomerIdentity struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	IsTemporary bool   `json:"isTemporary"`
}

// NewTemporaryIdentity синтезирует временный идентификатор из телефона
func NewTemporaryIdentity(name, phone string) *CustomerIdentity {
	return &CustomerIdentity{
		ID:          TempCustomerIDPrefix + phone,
		Name:        name,
		Phone:       phone,
		IsTemporary: true,
	}
}

// Customer is a persisted customer registry record
type Customer struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
}
