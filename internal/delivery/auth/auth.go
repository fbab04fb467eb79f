package auth

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	userDomain "mattespel/internal/domain/user"
	errs "mattespel/internal/errors"
	"mattespel/internal/httpresponse"
	authUC "mattespel/internal/usecase/auth"
	"mattespel/internal/utils"
)

type AuthHandler struct {
	usecaseHandler *authUC.AuthUsecaseHandler
	log            *zap.SugaredLogger
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token string          `json:"token"`
	User  userDomain.Public `json:"user"`
}

func NewAuthHandler(users authUC.UserStorage, sessions authUC.SessionStorage, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		usecaseHandler: authUC.NewAuthUsecaseHandler(users, sessions),
		log:            log,
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Creates an identity record and opens a bearer session
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body SignupRequest true "Signup data"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 500 {object} httpresponse.ErrorResponse
// @Router /signup [post]
func (a *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var signupData SignupRequest
	if err := utils.DecodeJSONRequest(r, &signupData); err != nil {
		a.log.Error("Signup: malformed JSON: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	if signupData.Email == "" || signupData.Password == "" || signupData.Name == "" {
		a.log.Error("Signup: missing required fields")
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "email, password and name are required"})
		return
	}

	token, newUser, err := a.usecaseHandler.RegisterUser(r.Context(), signupData.Email, signupData.Name, signupData.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUserExists) {
			a.log.Errorf("Signup: user already exists: %s", signupData.Email)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: "User with this email already exists"})
			return
		}
		a.log.Error("Signup: internal error: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, SessionResponse{
		Token: token,
		User:  newUser.Public(),
	})
}

// Login godoc
// @Summary Log a user in
// @Description Verifies the password and opens a bearer session
// @Tags auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Login data"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 500 {object} httpresponse.ErrorResponse
// @Router /login [post]
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginData LoginRequest
	if err := utils.DecodeJSONRequest(r, &loginData); err != nil {
		a.log.Error("Login: malformed JSON: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	token, loggedIn, err := a.usecaseHandler.LoginUser(r.Context(), loginData.Email, loginData.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			a.log.Errorf("Login: user not found: %s", loginData.Email)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: "User not found"})
			return
		case errors.Is(err, errs.ErrWrongPassword):
			a.log.Errorf("Login: wrong password for user: %s", loginData.Email)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: "Wrong password"})
			return
		default:
			a.log.Error("Login: internal error: ", err)
			httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, SessionResponse{
		Token: token,
		User:  loggedIn.Public(),
	})
}

// Logout godoc
// @Summary Log a user out
// @Description Deletes the session behind the bearer token
// @Tags auth
// @Produce json
// @Success 200 {string} string "OK"
// @Failure 401 {object} httpresponse.ErrorResponse
// @Router /logout [delete]
func (a *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := BearerToken(r)
	if !ok {
		a.log.Warn("Logout: no bearer token provided")
		httpresponse.WriteResponseWithStatus(w, http.StatusUnauthorized,
			httpresponse.ErrorResponse{ErrorDescription: "Unauthorized"})
		return
	}

	if err := a.usecaseHandler.LogoutUser(r.Context(), token); err != nil {
		a.log.Errorf("Logout: failed to logout session: %v", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusUnauthorized,
			httpresponse.ErrorResponse{ErrorDescription: "Unauthorized"})
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

// UserFromRequest resolves the bearer credential into a user. On
// failure it writes the 401 response itself and returns ok=false.
func (a *AuthHandler) UserFromRequest(w http.ResponseWriter, r *http.Request) (userDomain.User, bool) {
	token, ok := BearerToken(r)
	if !ok {
		a.log.Warn("UserFromRequest: no bearer token provided")
		httpresponse.WriteResponseWithStatus(w, http.StatusUnauthorized,
			httpresponse.ErrorResponse{ErrorDescription: "Unauthorized"})
		return userDomain.User{}, false
	}

	u, err := a.usecaseHandler.ResolveUser(r.Context(), token)
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			a.log.Warn("UserFromRequest: session not found or expired")
			httpresponse.WriteResponseWithStatus(w, http.StatusUnauthorized,
				httpresponse.ErrorResponse{ErrorDescription: "Unauthorized"})
			return userDomain.User{}, false
		}
		a.log.Error("UserFromRequest: internal error: ", err)
		httpresponse.WriteInternalErrorResponse(w)
		return userDomain.User{}, false
	}

	return u, true
}

// BearerToken extracts the credential from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
