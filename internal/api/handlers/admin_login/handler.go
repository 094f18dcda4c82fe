package admin_login

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
	"github.com/mulelash/MB-BeautyService/internal/api/middleware"
	"github.com/mulelash/MB-BeautyService/internal/integrations/lineauth"
)

const (
	msgInvalidRequestBody = "請求內容格式錯誤"
	msgTokenInvalid       = "登入憑證無效，請重新登入"
	msgVerifyUnavailable  = "暫時無法驗證登入，請稍後再試"
	msgNotAdmin           = "此帳號沒有管理權限"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	IDToken string `json:"idToken"`
}

// LoginResponse carries the session token the console uses on protected
// routes
type LoginResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	ExpiresAt   string `json:"expiresAt"`
}

type Handler struct {
	verifier  TokenVerifier
	admins    AdminChecker
	jwtSecret string
	tokenTTL  time.Duration
	logger    Logger
}

func NewHandler(verifier TokenVerifier, admins AdminChecker, jwtSecret string, tokenTTL time.Duration, logger Logger) *Handler {
	return &Handler{
		verifier:  verifier,
		admins:    admins,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.verifier.VerifyIDToken(r.Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, lineauth.ErrTokenInvalid):
			h.logger.Warn("POST /auth/login - token rejected: %v", err)
			handlers.RespondUnauthorized(w, msgTokenInvalid)
		case errors.Is(err, lineauth.ErrVerifyUnavailable):
			h.logger.Error("POST /auth/login - verify unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgVerifyUnavailable)
		default:
			h.logger.Error("POST /auth/login - %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	isAdmin, err := h.admins.IsAdmin(r.Context(), profile.UserID)
	if err != nil {
		h.logger.Error("POST /auth/login - allow-list check for %s: %v", profile.UserID, err)
		handlers.RespondInternalError(w)
		return
	}
	if !isAdmin {
		h.logger.Warn("POST /auth/login - user %s is not on the operator allow-list", profile.UserID)
		handlers.RespondForbidden(w, msgNotAdmin)
		return
	}

	expiresAt := time.Now().Add(h.tokenTTL)
	claims := middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.UserID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		DisplayName: profile.DisplayName,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtSecret))
	if err != nil {
		h.logger.Error("POST /auth/login - sign session token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - operator %s logged in", profile.UserID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:       token,
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		ExpiresAt:   expiresAt.Format(time.RFC3339),
	})
}
