package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authDelivery "mattespel/internal/delivery/auth"
	profileDelivery "mattespel/internal/delivery/profile"
	questionDelivery "mattespel/internal/delivery/question"
	shopDelivery "mattespel/internal/delivery/shop"
	"mattespel/internal/repository"
	profileUC "mattespel/internal/usecase/profile"
	questionUC "mattespel/internal/usecase/question"
	shopUC "mattespel/internal/usecase/shop"
)

// newTestRouter wires the full route table against in-memory storages.
func newTestRouter() *chi.Mux {
	log := zap.NewNop().Sugar()

	userStorage := repository.NewMemoryUserStorage()
	sessionStorage := repository.NewMemorySessionStorage()
	profileStorage := repository.NewMemoryProfileStorage()

	gateway := profileUC.NewGatewayHandler(profileStorage)
	bank := questionUC.NewBank(42)

	authHandler := authDelivery.NewAuthHandler(userStorage, sessionStorage, log)
	handlers := &mainDeliveryHandler{
		auth:     authHandler,
		profile:  profileDelivery.NewProfileHandler(log, authHandler, gateway),
		shop:     shopDelivery.NewShopHandler(log, authHandler, shopUC.NewShopUsecaseHandler(profileStorage)),
		question: questionDelivery.NewQuestionHandler(log, authHandler, bank, gateway),
	}

	r := chi.NewRouter()
	handlers.Router(r, false)
	return r
}

type envelope struct {
	Status int             `json:"Status"`
	Body   json.RawMessage `json:"Body"`
}

func do(t *testing.T, r *chi.Mux, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec.Code, env
}

func errorDescription(t *testing.T, env envelope) string {
	t.Helper()
	var body struct {
		ErrorDescription string `json:"ErrorDescription"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &body))
	return body.ErrorDescription
}

func signup(t *testing.T, r *chi.Mux, email string) string {
	t.Helper()
	code, env := do(t, r, http.MethodPost, "/signup", "", map[string]string{
		"email":    email,
		"password": "hunter2",
		"name":     "Elsa",
	})
	require.Equal(t, http.StatusOK, code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestUnauthorizedRequests(t *testing.T) {
	r := newTestRouter()

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/profile"},
		{http.MethodPost, "/purchase"},
		{http.MethodGet, "/question?level=A"},
		{http.MethodDelete, "/logout"},
	} {
		code, env := do(t, r, req.method, req.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, "%s %s", req.method, req.path)
		assert.Equal(t, http.StatusUnauthorized, env.Status)
	}

	code, _ := do(t, r, http.MethodGet, "/profile", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestProfileLifecycle(t *testing.T) {
	r := newTestRouter()
	token := signup(t, r, "elsa@example.com")

	code, env := do(t, r, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, code)

	var body struct {
		Profile struct {
			XP      int `json:"xp"`
			Level   int `json:"level"`
			Credits int `json:"credits"`
		} `json:"profile"`
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &body))
	assert.Equal(t, 0, body.Profile.XP)
	assert.Equal(t, 1, body.Profile.Level)
	assert.Equal(t, 0, body.Profile.Credits)
	assert.Equal(t, "elsa@example.com", body.User.Email)
}

func TestQuestionHidesAnswer(t *testing.T) {
	r := newTestRouter()
	token := signup(t, r, "elsa@example.com")

	code, env := do(t, r, http.MethodGet, "/question?level=A&type=geometry", token, nil)
	require.Equal(t, http.StatusOK, code)

	var body struct {
		Question map[string]any `json:"question"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &body))
	assert.Equal(t, "A", body.Question["level"])
	assert.Equal(t, "geometry", body.Question["type"])
	_, leaked := body.Question["answer"]
	assert.False(t, leaked, "canonical answer must not be serialized")

	code, _ = do(t, r, http.MethodGet, "/question?level=Z", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAnswerAndRoundFlow(t *testing.T) {
	r := newTestRouter()
	token := signup(t, r, "elsa@example.com")

	// a_08 is a quick math question with answer 43.
	code, env := do(t, r, http.MethodPost, "/answer", token, map[string]string{
		"questionId": "a_08",
		"answer":     "43",
		"mode":       "quickmath",
	})
	require.Equal(t, http.StatusOK, code)

	var answer struct {
		Correct bool `json:"correct"`
		Profile struct {
			Streak         int `json:"streak"`
			CorrectAnswers int `json:"correctAnswers"`
			XP             int `json:"xp"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &answer))
	assert.True(t, answer.Correct)
	assert.Equal(t, 1, answer.Profile.Streak)
	assert.Equal(t, 1, answer.Profile.CorrectAnswers)
	assert.Equal(t, 0, answer.Profile.XP, "answers pay out at round settlement, not per answer")

	code, env = do(t, r, http.MethodPost, "/game/result", token, map[string]any{
		"mode":  "algebra",
		"score": 8,
	})
	require.Equal(t, http.StatusOK, code)

	var result struct {
		Profile struct {
			XP          int `json:"xp"`
			Level       int `json:"level"`
			Credits     int `json:"credits"`
			GamesPlayed int `json:"gamesPlayed"`
		} `json:"profile"`
		Unlocked []string `json:"unlocked"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &result))
	assert.Equal(t, 160, result.Profile.XP)
	assert.Equal(t, 2, result.Profile.Level)
	assert.Equal(t, 24, result.Profile.Credits)
	assert.Equal(t, 1, result.Profile.GamesPlayed)
	assert.Equal(t, []string{"algebra_master"}, result.Unlocked)

	code, env = do(t, r, http.MethodPost, "/game/result", token, map[string]any{
		"mode":  "chess",
		"score": 8,
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestShopFlow(t *testing.T) {
	r := newTestRouter()
	token := signup(t, r, "elsa@example.com")

	// Fresh profile, 24 credits after one settled round.
	_, _ = do(t, r, http.MethodPost, "/game/result", token, map[string]any{
		"mode":  "algebra",
		"score": 8,
	})

	code, env := do(t, r, http.MethodPost, "/purchase", token, map[string]any{
		"itemId": "title_beginner",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Not enough credits", errorDescription(t, env))

	code, env = do(t, r, http.MethodPost, "/equip", token, map[string]any{
		"itemId": "frame_gold",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Item not purchased", errorDescription(t, env))

	// Grind enough credits and go through the purchase/equip round trip.
	_, _ = do(t, r, http.MethodPost, "/profile", token, map[string]any{
		"credits": 500,
	})

	code, env = do(t, r, http.MethodPost, "/purchase", token, map[string]any{
		"itemId": "title_beginner",
		"price":  50,
	})
	require.Equal(t, http.StatusOK, code)

	var purchase struct {
		Profile struct {
			Credits        int      `json:"credits"`
			PurchasedItems []string `json:"purchasedItems"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &purchase))
	assert.Equal(t, 450, purchase.Profile.Credits)
	assert.Contains(t, purchase.Profile.PurchasedItems, "title_beginner")

	code, env = do(t, r, http.MethodPost, "/purchase", token, map[string]any{
		"itemId": "title_beginner",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Item already purchased", errorDescription(t, env))

	code, env = do(t, r, http.MethodPost, "/equip", token, map[string]any{
		"itemId":   "title_beginner",
		"category": "title",
	})
	require.Equal(t, http.StatusOK, code)

	var equip struct {
		Profile struct {
			EquippedItems map[string]string `json:"equippedItems"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &equip))
	assert.Equal(t, "title_beginner", equip.Profile.EquippedItems["title"])
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter()

	code, env := do(t, r, http.MethodGet, "/shop/items", "", nil)
	require.Equal(t, http.StatusOK, code)
	var items struct {
		Items []struct {
			ID    string `json:"id"`
			Price int    `json:"price"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &items))
	assert.Len(t, items.Items, 13)

	code, env = do(t, r, http.MethodGet, "/achievements", "", nil)
	require.Equal(t, http.StatusOK, code)
	var achievements struct {
		Achievements []struct {
			ID string `json:"id"`
		} `json:"achievements"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &achievements))
	assert.Len(t, achievements.Achievements, 7)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r := newTestRouter()
	token := signup(t, r, "elsa@example.com")

	code, _ := do(t, r, http.MethodDelete, "/logout", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, r, http.MethodGet, "/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, r, http.MethodDelete, "/logout", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
