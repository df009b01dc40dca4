// Package memory contiene adaptadores en memoria, construidos una vez al arrancar.
package memory

import (
	"fmt"

	"github.com/zerograu/comisiones-api/internal/domain"
	"github.com/zerograu/comisiones-api/internal/domain/commission"
	"github.com/zerograu/comisiones-api/internal/domain/entity"
	"github.com/zerograu/comisiones-api/internal/domain/repository"
	"github.com/zerograu/comisiones-api/pkg/config"
)

var _ repository.SellerDirectory = (*SellerDirectory)(nil)

// SellerDirectory tabla fija de vendedores indexada por login canónico.
// Es de solo lectura después de construida, segura para uso concurrente.
type SellerDirectory struct {
	byLogin map[string]entity.Seller
}

// NewSellerDirectory construye el directorio. Los logins se normalizan con
// commission.CanonicalLogin; dos entradas que colapsan al mismo login son un error.
// unmatchedExempt devuelve los logins exentos que no tienen credenciales (se ignoran).
func NewSellerDirectory(entries []config.SellerEntry, exempt []string) (dir *SellerDirectory, unmatchedExempt []string, err error) {
	exemptSet := make(map[string]bool, len(exempt))
	for _, login := range exempt {
		exemptSet[commission.CanonicalLogin(login)] = true
	}

	byLogin := make(map[string]entity.Seller, len(entries))
	for i, e := range entries {
		login := commission.CanonicalLogin(e.Login)
		if login == "" {
			return nil, nil, fmt.Errorf("vendedor #%d sin login: %w", i+1, domain.ErrInvalidInput)
		}
		code := commission.CanonicalCode(e.Code)
		if code == "" {
			return nil, nil, fmt.Errorf("vendedor %q sin código: %w", login, domain.ErrInvalidInput)
		}
		if _, dup := byLogin[login]; dup {
			return nil, nil, fmt.Errorf("login %q duplicado: %w", login, domain.ErrInvalidInput)
		}
		byLogin[login] = entity.Seller{
			Login:      login,
			Password:   e.Password,
			SellerCode: code,
			IsExempt:   exemptSet[login],
		}
	}

	for login := range exemptSet {
		if _, ok := byLogin[login]; !ok {
			unmatchedExempt = append(unmatchedExempt, login)
		}
	}
	return &SellerDirectory{byLogin: byLogin}, unmatchedExempt, nil
}

// Lookup busca el vendedor sin distinguir mayúsculas ni espacios alrededor.
// Devuelve una copia; el directorio no se puede modificar desde fuera.
func (d *SellerDirectory) Lookup(login string) (*entity.Seller, error) {
	s, ok := d.byLogin[commission.CanonicalLogin(login)]
	if !ok {
		return nil, domain.ErrUnknownSeller
	}
	return &s, nil
}

// Len cantidad de vendedores cargados.
func (d *SellerDirectory) Len() int {
	return len(d.byLogin)
}
