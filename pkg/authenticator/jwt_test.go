package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenEngine(t *testing.T) {
	type tokenObject struct {
		ID string `json:"id"`
	}

	engine := NewTokenEngine[tokenObject]("secret", time.Minute)
	token, err := engine.Generate("sub", tokenObject{ID: "user1"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user1", obj.ID)

	_, err = engine.Verify(token + "broken")
	require.Error(t, err)
}
