package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SellerEntry una fila de la tabla de credenciales.
type SellerEntry struct {
	Login    string `mapstructure:"login"`
	Password string `mapstructure:"password"`
	Code     string `mapstructure:"code"` // TOML puede traerlo como número; viper lo convierte
}

// SellersTable tabla fija de vendedores autorizados y logins exentos del descuento.
// Un login en Exempt no necesita estar en Sellers.
type SellersTable struct {
	Sellers []SellerEntry `mapstructure:"sellers"`
	Exempt  []string      `mapstructure:"exempt"`
}

// LoadSellers lee la tabla de vendedores desde un archivo (toml, yaml o json,
// según la extensión). Se lee una sola vez al arrancar.
func LoadSellers(path string) (*SellersTable, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("leer tabla de vendedores %s: %w", path, err)
	}
	var table SellersTable
	if err := v.Unmarshal(&table); err != nil {
		return nil, fmt.Errorf("decodificar tabla de vendedores %s: %w", path, err)
	}
	if len(table.Sellers) == 0 {
		return nil, fmt.Errorf("tabla de vendedores %s vacía", path)
	}
	return &table, nil
}
