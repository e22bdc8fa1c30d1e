package google

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/idtoken"
)

func newTestVerifier(validate validateFunc) *Verifier {
	return &Verifier{clientID: "client-id", validate: validate}
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		payload    *idtoken.Payload
		verifyErr  error
		wantClaims *Claims
		wantErr    error
	}{
		{
			name: "valid token",
			payload: &idtoken.Payload{
				Issuer: "accounts.google.com",
				Claims: map[string]interface{}{"email": "john@example.com", "name": "John Doe"},
			},
			wantClaims: &Claims{Email: "john@example.com", Name: "John Doe"},
		},
		{
			name: "valid token with https issuer",
			payload: &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]interface{}{"email": "john@example.com"},
			},
			wantClaims: &Claims{Email: "john@example.com"},
		},
		{
			name:      "provider rejects token",
			verifyErr: errors.New("idtoken: token expired"),
			wantErr:   ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			payload: &idtoken.Payload{
				Issuer: "evil.example.com",
				Claims: map[string]interface{}{"email": "john@example.com"},
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing email",
			payload: &idtoken.Payload{
				Issuer: "accounts.google.com",
				Claims: map[string]interface{}{"name": "John Doe"},
			},
			wantErr: ErrEmailNotProvided,
		},
		{
			name: "empty email claim",
			payload: &idtoken.Payload{
				Issuer: "accounts.google.com",
				Claims: map[string]interface{}{"email": ""},
			},
			wantErr: ErrEmailNotProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "some-token", token)
				assert.Equal(t, "client-id", audience)
				return tt.payload, tt.verifyErr
			})

			claims, err := v.Verify(ctx, "some-token")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantClaims, claims)
			}
		})
	}
}

func TestVerifier_VerifyNeverLeaksCause(t *testing.T) {
	// All provider-side failures collapse to the same generic error.
	causes := []error{
		errors.New("idtoken: signature mismatch"),
		errors.New("idtoken: audience provided does not match"),
		errors.New("connection refused"),
	}

	for _, cause := range causes {
		v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return nil, cause
		})
		_, err := v.Verify(context.Background(), "some-token")
		assert.Equal(t, ErrInvalidToken, err)
	}
}
