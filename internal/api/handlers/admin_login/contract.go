package admin_login

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/integrations/lineauth"
)

// TokenVerifier checks a LIFF id token with the LINE platform
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*lineauth.Profile, error)
}

// AdminChecker consults the operator allow-list
type AdminChecker interface {
	IsAdmin(ctx context.Context, lineUserID string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
