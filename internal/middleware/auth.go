package middleware

import (
	"context"
	"strings"

	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

// VerifyToken resolves the caller from the Authorization header. Requests
// without a valid bearer token pass through anonymously, handlers decide with
// Authenticate whether that is acceptable.
func VerifyToken(ctx context.Context) (context.Context, error) {
	header := xcontext.HTTPRequest(ctx).Header.Get("Authorization")
	if header == "" {
		return ctx, nil
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid authorization header")
	}

	token := strings.TrimPrefix(header, "Bearer ")

	accessToken, err := xcontext.TokenEngine(ctx).Verify(token)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
	}

	return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
}

// Authenticate rejects anonymous requests.
func Authenticate(ctx context.Context) (context.Context, error) {
	if xcontext.RequestUserID(ctx) == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	return ctx, nil
}
