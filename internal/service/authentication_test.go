package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, _ := HashPassword("pw")
	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(context.Background(), u, "pw"))
	require.Error(t, AuthenticateUser(context.Background(), u, "bad"))
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := IssueAccessToken(model.User{}, time.Minute)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	tok, err := IssueAccessToken(model.User{ID: "u5", Role: model.RoleVendor}, time.Minute)
	require.NoError(t, err)
	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, "u5", claims.UserID)
	require.Equal(t, model.RoleVendor, claims.Role)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "s")

	tok, err := IssueAccessToken(model.User{ID: "u1", Role: model.RoleAdmin}, time.Minute)
	require.NoError(t, err)
	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, model.RoleAdmin, claims.Role)

	_, err = VerifyAccessToken("garbage")
	require.Error(t, err)

	// wrong secret
	t.Setenv("JWT_SECRET", "other")
	_, err = VerifyAccessToken(tok)
	require.Error(t, err)
	t.Setenv("JWT_SECRET", "s")

	// missing secret
	os.Unsetenv("JWT_SECRET")
	_, err = VerifyAccessToken(tok)
	require.Error(t, err)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "s")

	// issued more than two days ago, presented now
	timeNow = func() time.Time { return time.Now().Add(-49 * time.Hour) }
	tok, err := IssueAccessToken(model.User{ID: "u1", Role: model.RoleUser}, 48*time.Hour)
	require.NoError(t, err)

	timeNow = time.Now
	_, err = VerifyAccessToken(tok)
	require.Error(t, err)
}

func TestVerifyAccessTokenWrongAlg(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "s")

	tok := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{UserID: "u1"})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = VerifyAccessToken(signed)
	require.Error(t, err)
}
