package identity

import "errors"

var (
	// ErrMissingContactInfo возникает когда нет ни телефона, ни ранее
	// определенного клиента, к которому можно привязать запись
	ErrMissingContactInfo = errors.New("missing customer contact info")
)
