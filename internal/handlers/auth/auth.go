package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/dto"
	authservice "github.com/i2u-ai/platform/internal/service/authservice"
	pkgauth "github.com/i2u-ai/platform/pkg/auth"
	"github.com/i2u-ai/platform/pkg/utils"
	"github.com/i2u-ai/platform/pkg/validate"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=auth

type Service interface {
	Register(ctx context.Context, in authservice.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new account with login, password, stakeholder type and currency, optionally attributed to a referrer
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		422		{object}	utils.Response	"Unknown referral code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.StakeholderType == "" {
		req.StakeholderType = string(domain.StakeholderEcosystem)
	}
	if req.Currency == "" {
		req.Currency = string(domain.CurrencyINR)
	}
	stakeholderType, err := domain.ParseStakeholderType(req.StakeholderType)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid stakeholder type")
		return
	}
	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid currency")
		return
	}
	if req.ReferralCode != "" && !validate.IsReferralCode(req.ReferralCode) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid referral code")
		return
	}

	user, err := h.authService.Register(r.Context(), authservice.RegisterInput{
		Login:           req.Login,
		Password:        req.Password,
		StakeholderType: stakeholderType,
		Currency:        currency,
		ReferralCode:    req.ReferralCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrLoginTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authservice.ErrUnknownReferralCode):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, pkgauth.ErrPasswordTooShort):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message:      "User successfully registered",
		ReferralCode: user.ReferralCode,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with a user account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
	})
}
