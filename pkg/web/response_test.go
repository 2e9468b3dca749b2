package web

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	got := Error(errors.New("boom"))
	require.Equal(t, Response{Error: "boom"}, got)
}

func TestGetErrorMsg(t *testing.T) {
	type request struct {
		Name  string `validate:"required"`
		Limit int    `validate:"min=1"`
		Size  int    `validate:"max=3"`
	}

	err := validator.New().Struct(request{Size: 4})

	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve, 3)

	got := make(map[string]string, len(ve))
	for _, fe := range ve {
		got[fe.Field()] = fe.Field() + GetErrorMsg(fe)
	}

	require.Equal(t, "Name field is required", got["Name"])
	require.Equal(t, "Limit must be at least 1", got["Limit"])
	require.Equal(t, "Size must be at most 3", got["Size"])
}

func TestBindingErrorMsg(t *testing.T) {
	type request struct {
		Amount string `validate:"required"`
	}

	err := validator.New().Struct(request{})
	require.Equal(t, "Amount field is required", BindingErrorMsg(err))

	require.Equal(t, "malformed request", BindingErrorMsg(errors.New("unexpected EOF")))
}

func TestResponseAccessTokenExpiresAt(t *testing.T) {
	expiresAt := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)

	body, err := json.Marshal(Response{AccessToken: "token", AccessTokenExpiresAt: expiresAt})
	require.NoError(t, err)
	require.Contains(t, string(body), `"access_token_expires_at":"`+expiresAt.Format(time.RFC3339)+`"`)

	var got Response
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "token", got.AccessToken)
	require.True(t, expiresAt.Equal(got.AccessTokenExpiresAt))
}
