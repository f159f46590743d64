package register_customer

// Request модель запроса на регистрацию клиента
type Request struct {
	Name  string // Имя клиента
	Phone string // Телефон клиента
}

// Response модель ответа с идентификатором клиента
type Response struct {
	CustomerID     string // ID клиента (существующего или созданного)
	Message        string // Человекочитаемое описание исхода
	AlreadyExisted bool   // true, если клиент с таким телефоном уже был
}
