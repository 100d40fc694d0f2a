package dto

type AppointmentListDTO struct {
	ID           uint   `json:"id"`
	Reference    string `json:"reference"`
	Date         string `json:"date"`
	TimeFrom     string `json:"time_from"`
	TimeTo       string `json:"time_to"`
	Status       string `json:"status"`
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	ServiceID    uint   `json:"service_id"`
	ServiceName  string `json:"service_name"`
	CustomerID   uint   `json:"customer_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Description  string `json:"description"`
}
