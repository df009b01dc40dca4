package entity

// Seller asocia un login con su código de vendedor.
// Se define una vez al arrancar y no se modifica en tiempo de ejecución.
type Seller struct {
	Login      string // login canónico (minúsculas, sin espacios)
	Password   string
	SellerCode string
	IsExempt   bool // true si no se aplica el descuento fijo por período
}
