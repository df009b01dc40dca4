package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/zerograu/comisiones-api/internal/application/dto"
	"github.com/zerograu/comisiones-api/internal/domain"
	"github.com/zerograu/comisiones-api/internal/domain/entity"
	"github.com/zerograu/comisiones-api/internal/domain/repository"
	"github.com/zerograu/comisiones-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación contra la tabla fija de vendedores.
type AuthUseCase struct {
	sellers repository.SellerDirectory
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(sellers repository.SellerDirectory, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{sellers: sellers, jwtCfg: jwtCfg}
}

// Login verifica login/contraseña y emite un JWT.
// Login desconocido y contraseña incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Login) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	seller, err := uc.sellers.Lookup(in.Login)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSeller) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(seller.Password), []byte(in.Password)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, seller.Login, seller.SellerCode, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		Seller: ToSellerResponse(seller),
	}, nil
}

// ToSellerResponse proyecta el vendedor sin la contraseña.
func ToSellerResponse(s *entity.Seller) dto.SellerResponse {
	return dto.SellerResponse{
		Login:      s.Login,
		SellerCode: s.SellerCode,
		IsExempt:   s.IsExempt,
	}
}
