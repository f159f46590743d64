package customerservice

// RegisterCustomerRequest тело запроса на регистрацию клиента
type RegisterCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// RegisterCustomerResult ответ реестра клиентов
type RegisterCustomerResult struct {
	Success    bool   `json:"success"`
	CustomerID string `json:"customerId,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}
