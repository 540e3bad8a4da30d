package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is an access token issued by POST /login.
//
// On the server side Token and RegisteredClaims are filled from the signed
// or parsed JWT. The client only knows SignedString and Username.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is sent back as {"token": ...} and later presented as
	// "Authorization: Bearer <SignedString>".
	SignedString string `json:"-"`

	// Username is the "sub" claim.
	Username string `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
