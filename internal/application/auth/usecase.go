package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/gyt-equipos/panol-api/internal/application/dto"
	"github.com/gyt-equipos/panol-api/internal/domain"
	"github.com/gyt-equipos/panol-api/pkg/jwt"
)

// GateConfig clave compartida del sector. Si KeyHash (bcrypt) está cargada se
// compara contra el hash; si no, contra Key en texto plano con comparación de
// tiempo constante. No es un mecanismo de autenticación real: solo decide si
// se muestra la vista del pañol, igual que el gate original.
type GateConfig struct {
	Key     string
	KeyHash string
}

// JWTConfig emisión del token de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// GateUseCase intercambia la clave del sector por un token de sesión.
type GateUseCase struct {
	gate   GateConfig
	jwtCfg JWTConfig
}

// NewGateUseCase construye el caso de uso.
func NewGateUseCase(gate GateConfig, jwtCfg JWTConfig) *GateUseCase {
	return &GateUseCase{gate: gate, jwtCfg: jwtCfg}
}

// Login valida la clave y devuelve un token. Clave incorrecta o gate sin
// configurar → ErrUnauthorized.
func (uc *GateUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.keyMatches(in.Key) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, "panol", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

func (uc *GateUseCase) keyMatches(key string) bool {
	if key == "" {
		return false
	}
	if uc.gate.KeyHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(uc.gate.KeyHash), []byte(key)) == nil
	}
	if uc.gate.Key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(uc.gate.Key), []byte(key)) == 1
}
