package question

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	authDelivery "mattespel/internal/delivery/auth"
	gameDomain "mattespel/internal/domain/game"
	profileDomain "mattespel/internal/domain/profile"
	questionDomain "mattespel/internal/domain/question"
	errs "mattespel/internal/errors"
	"mattespel/internal/httpresponse"
	profileUC "mattespel/internal/usecase/profile"
	questionUC "mattespel/internal/usecase/question"
	"mattespel/internal/utils"
)

type QuestionHandler struct {
	log     *zap.SugaredLogger
	auth    *authDelivery.AuthHandler
	bank    *questionUC.Bank
	gateway *profileUC.GatewayHandler
}

type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	Mode       string `json:"mode"`
}

type AnswerResponse struct {
	Correct bool                  `json:"correct"`
	Profile profileDomain.Profile `json:"profile"`
}

type GameResultRequest struct {
	Mode  string `json:"mode"`
	Score int    `json:"score"`
}

type GameResultResponse struct {
	Profile  profileDomain.Profile `json:"profile"`
	Unlocked []string              `json:"unlocked"`
}

type QuestionResponse struct {
	Question questionDomain.Question `json:"question"`
}

type AchievementsResponse struct {
	Achievements []gameDomain.Achievement `json:"achievements"`
}

func NewQuestionHandler(log *zap.SugaredLogger, auth *authDelivery.AuthHandler, bank *questionUC.Bank, gateway *profileUC.GatewayHandler) *QuestionHandler {
	return &QuestionHandler{
		log:     log,
		auth:    auth,
		bank:    bank,
		gateway: gateway,
	}
}

// GetQuestion godoc
// @Summary Fetch a random question
// @Description Picks uniformly from the level pool, optionally filtered by topic type
// @Tags questions
// @Produce json
// @Param level query string true "Difficulty tier (A, B, C, University)"
// @Param type query string false "Topic type"
// @Success 200 {object} QuestionResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 401 {object} httpresponse.ErrorResponse
// @Router /question [get]
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.auth.UserFromRequest(w, r); !ok {
		return
	}

	level, err := questionDomain.ParseLevel(r.URL.Query().Get("level"))
	if err != nil {
		h.log.Error("GetQuestion: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	var qType questionDomain.Type
	if raw := r.URL.Query().Get("type"); raw != "" {
		qType, err = questionDomain.ParseType(raw)
		if err != nil {
			h.log.Error("GetQuestion: ", err)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
	}

	q, err := h.bank.RandomQuestion(level, qType)
	if err != nil {
		h.log.Error("GetQuestion: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, QuestionResponse{Question: q})
}

// SubmitAnswer godoc
// @Summary Grade a submitted answer
// @Description Grades the answer with the mode's tolerance and applies the streak ledger
// @Tags questions
// @Accept json
// @Produce json
// @Param answer body AnswerRequest true "Submitted answer"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 401 {object} httpresponse.ErrorResponse
// @Router /answer [post]
func (h *QuestionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	u, ok := h.auth.UserFromRequest(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("SubmitAnswer: malformed JSON: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	mode, err := gameDomain.ModeByID(req.Mode)
	if err != nil {
		h.log.Error("SubmitAnswer: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	q, err := h.bank.QuestionByID(req.QuestionID)
	if err != nil {
		h.log.Error("SubmitAnswer: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	correct := questionUC.Grade(q, req.Answer, mode.Tolerance)

	p, err := h.gateway.RecordAnswer(r.Context(), u.ID, correct)
	if err != nil {
		h.log.Errorf("SubmitAnswer: failed to record answer for user %s: %v", u.ID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, AnswerResponse{
		Correct: correct,
		Profile: p,
	})
}

// GameResult godoc
// @Summary Settle a finished round
// @Description Awards XP/credits at the mode rates and unlocks threshold achievements
// @Tags questions
// @Accept json
// @Produce json
// @Param result body GameResultRequest true "Round result"
// @Success 200 {object} GameResultResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 401 {object} httpresponse.ErrorResponse
// @Router /game/result [post]
func (h *QuestionHandler) GameResult(w http.ResponseWriter, r *http.Request) {
	u, ok := h.auth.UserFromRequest(w, r)
	if !ok {
		return
	}

	var req GameResultRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("GameResult: malformed JSON: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	p, unlocked, err := h.gateway.SettleRound(r.Context(), u.ID, req.Mode, req.Score)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidInput) {
			h.log.Error("GameResult: ", err)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
		h.log.Errorf("GameResult: failed to settle round for user %s: %v", u.ID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	if unlocked == nil {
		unlocked = []string{}
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, GameResultResponse{
		Profile:  p,
		Unlocked: unlocked,
	})
}

// Achievements godoc
// @Summary List the achievement catalog
// @Tags questions
// @Produce json
// @Success 200 {object} AchievementsResponse
// @Router /achievements [get]
func (h *QuestionHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, AchievementsResponse{
		Achievements: gameDomain.Achievements,
	})
}
