package profile

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	authDelivery "mattespel/internal/delivery/auth"
	profileDomain "mattespel/internal/domain/profile"
	userDomain "mattespel/internal/domain/user"
	errs "mattespel/internal/errors"
	"mattespel/internal/httpresponse"
	profileUC "mattespel/internal/usecase/profile"
	"mattespel/internal/utils"
)

type ProfileHandler struct {
	log     *zap.SugaredLogger
	auth    *authDelivery.AuthHandler
	gateway *profileUC.GatewayHandler
}

type ProfileResponse struct {
	Profile profileDomain.Profile `json:"profile"`
	User    userDomain.Public     `json:"user"`
}

type ProfileOnlyResponse struct {
	Profile profileDomain.Profile `json:"profile"`
}

func NewProfileHandler(log *zap.SugaredLogger, auth *authDelivery.AuthHandler, gateway *profileUC.GatewayHandler) *ProfileHandler {
	return &ProfileHandler{
		log:     log,
		auth:    auth,
		gateway: gateway,
	}
}

// GetProfile godoc
// @Summary Fetch the caller's profile
// @Description Returns the profile, lazily creating the zero-state record on first access
// @Tags profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} httpresponse.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.auth.UserFromRequest(w, r)
	if !ok {
		return
	}

	p, err := h.gateway.FetchOrInit(r.Context(), u.ID)
	if err != nil {
		h.log.Errorf("GetProfile: failed to load profile for user %s: %v", u.ID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, ProfileResponse{
		Profile: p,
		User:    u.Public(),
	})
}

// UpdateProfile godoc
// @Summary Merge a partial profile update
// @Description Validates the patch field-wise and merges it all-or-nothing
// @Tags profile
// @Accept json
// @Produce json
// @Param patch body profileUC.Patch true "Partial profile fields"
// @Success 200 {object} ProfileOnlyResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 401 {object} httpresponse.ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.auth.UserFromRequest(w, r)
	if !ok {
		return
	}

	var patch profileUC.Patch
	if err := utils.DecodeJSONRequest(r, &patch); err != nil {
		h.log.Error("UpdateProfile: malformed JSON: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	p, err := h.gateway.ApplyPatch(r.Context(), u.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput), errors.Is(err, errs.ErrNotOwned):
			h.log.Errorf("UpdateProfile: rejected patch for user %s: %v", u.ID, err)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		default:
			h.log.Errorf("UpdateProfile: failed to update profile for user %s: %v", u.ID, err)
			httpresponse.WriteInternalErrorResponse(w)
			return
		}
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, ProfileOnlyResponse{Profile: p})
}
