package handlers

type IntakeRequest struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	Category     string  `json:"category"`
}

type ProductResponse struct {
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	Category     string  `json:"category"`
	LowStock     bool    `json:"low_stock,omitempty"`
}

type IntakeResponse struct {
	Product  ProductResponse `json:"product"`
	Created  bool            `json:"created"`
	Warnings []string        `json:"warnings,omitempty"`
}

type AssistantRequest struct {
	Question string `json:"question"`
}

type AssistantResponse struct {
	Answer string `json:"answer"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
