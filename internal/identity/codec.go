// Package identity translates between the opaque entity token handed to
// callers and the internal structured identity. Tokens are signed, not
// merely encoded, so a tampered token fails resolution instead of steering
// the workflow at a different entity.
package identity

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
)

// Codec issues and resolves opaque entity tokens. The workflow engine calls
// it once per operation that needs an identity; there is no caching.
type Codec interface {
	Resolve(ctx context.Context, token string) (domain.EntityIdentity, error)
	Issue(ctx context.Context, id domain.EntityIdentity) (string, error)
}

// Machine-readable reasons for codec failures.
const (
	ReasonDecode = "NON_BUSINESS_ID_ERROR_DECRYPTION"
	ReasonEncode = "NON_BUSINESS_ID_ERROR_ENCRYPTION"
)

const componentName = "alta/internal/identity"

type entityClaims struct {
	OwnerCountry         string `json:"oc"`
	OwnerDocumentType    string `json:"ot"`
	OwnerDocument        string `json:"od"`
	BusinessCountry      string `json:"bc"`
	BusinessDocumentType string `json:"bt"`
	BusinessDocument     string `json:"bd"`
	jwt.RegisteredClaims
}

// JWTCodec signs entity identities as HS256 tokens.
type JWTCodec struct {
	signingKey []byte
}

func NewJWTCodec(signingKey string) *JWTCodec {
	return &JWTCodec{signingKey: []byte(signingKey)}
}

func (c *JWTCodec) Issue(_ context.Context, id domain.EntityIdentity) (string, error) {
	if !id.Complete() {
		return "", dErrors.New(dErrors.CodeInternal, "encryption error").
			WithReason(ReasonEncode).WithComponent(componentName)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, entityClaims{
		OwnerCountry:         id.OwnerCountry,
		OwnerDocumentType:    id.OwnerDocumentType,
		OwnerDocument:        id.OwnerDocument,
		BusinessCountry:      id.BusinessCountry,
		BusinessDocumentType: id.BusinessDocumentType,
		BusinessDocument:     id.BusinessDocument,
	})
	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "encryption error").
			WithReason(ReasonEncode).WithComponent(componentName)
	}
	return signed, nil
}

func (c *JWTCodec) Resolve(_ context.Context, token string) (domain.EntityIdentity, error) {
	var claims entityClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return domain.EntityIdentity{}, dErrors.Wrap(err, dErrors.CodeUnauthorized, "decryption error").
			WithReason(ReasonDecode).WithComponent(componentName)
	}
	id := domain.EntityIdentity{
		OwnerCountry:         claims.OwnerCountry,
		OwnerDocumentType:    claims.OwnerDocumentType,
		OwnerDocument:        claims.OwnerDocument,
		BusinessCountry:      claims.BusinessCountry,
		BusinessDocumentType: claims.BusinessDocumentType,
		BusinessDocument:     claims.BusinessDocument,
	}
	if !id.Complete() {
		return domain.EntityIdentity{}, dErrors.New(dErrors.CodeUnauthorized, "decryption error").
			WithReason(ReasonDecode).WithComponent(componentName)
	}
	return id, nil
}
