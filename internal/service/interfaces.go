package service

import (
	"context"

	"github.com/MKhiriev/go-humans/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=HumanServiceWrapper

// HumanService exposes CRUD operations over [models.Human] records.
type HumanService interface {
	List(ctx context.Context) ([]models.Human, error)
	Get(ctx context.Context, id int64) (models.Human, error)
	Create(ctx context.Context, input models.HumanInput) (models.Human, error)
	Update(ctx context.Context, id int64, input models.HumanInput) (models.Human, error)
	Delete(ctx context.Context, id int64) error
}

// HumanServiceWrapper defines middleware composition for HumanService.
// Implementations wrap an existing HumanService to add behavior such as
// logging or validating.
type HumanServiceWrapper interface {
	Wrap(HumanService) HumanService // returns a decorated HumanService applying additional behavior
}

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	CreateToken(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialVerifier decides whether a username/password pair may log in.
// Verify returns nil on success and [ErrInvalidCredentials] otherwise.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) error
}

type AppInfoService interface {
	Greeting(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
