package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SellerResponse vendedor autenticado (sin contraseña).
type SellerResponse struct {
	Login      string `json:"login"`
	SellerCode string `json:"seller_code"`
	IsExempt   bool   `json:"is_exempt"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token  string         `json:"token"`
	Seller SellerResponse `json:"seller"`
}
