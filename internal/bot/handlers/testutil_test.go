package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"github.com/vmaleev/nutriplan-bot/internal/services"
)

// apiRecorder captures every call the handlers make against the bot API.
type apiRecorder struct {
	mu    sync.Mutex
	calls []apiCall
}

type apiCall struct {
	Method string
	Params url.Values
}

func (r *apiRecorder) record(method string, params url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, apiCall{Method: method, Params: params})
}

// lastText returns the text of the most recent sendMessage call.
func (r *apiRecorder) lastText() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].Method == "sendMessage" {
			return r.calls[i].Params.Get("text")
		}
	}
	return ""
}

func (r *apiRecorder) texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.calls {
		if c.Method == "sendMessage" {
			out = append(out, c.Params.Get("text"))
		}
	}
	return out
}

// newTestBot builds a bot API client against a local fake telegram server.
func newTestBot(t *testing.T) (*tgbotapi.BotAPI, *apiRecorder) {
	t.Helper()

	recorder := &apiRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := path.Base(r.URL.Path)
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		recorder.record(method, r.PostForm)

		w.Header().Set("Content-Type", "application/json")
		switch method {
		case "getMe":
			w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"nutriplan","username":"nutriplan_bot"}}`))
		case "answerCallbackQuery":
			w.Write([]byte(`{"ok":true,"result":true}`))
		default:
			w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":1,"type":"private"}}}`))
		}
	}))
	t.Cleanup(srv.Close)

	api, err := tgbotapi.NewBotAPIWithClient("test-token", srv.URL+"/bot%s/%s", srv.Client())
	if err != nil {
		t.Fatalf("failed to build bot API client: %v", err)
	}
	return api, recorder
}

// Fake services for driving the handlers without storage.

type fakeUserService struct{}

func (s *fakeUserService) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*domain.User, error) {
	return &domain.User{TelegramID: telegramID, Username: username, FirstName: firstName, LastName: lastName}, nil
}

func (s *fakeUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

type fakeQuotaService struct {
	adminID   int64
	eligible  bool
	remaining int
	recorded  []int64
	resetIDs  []int64
	resetAll  int
	resetErr  error
}

func (s *fakeQuotaService) IsAdmin(userID int64) bool {
	return s.adminID != 0 && userID == s.adminID
}

func (s *fakeQuotaService) IsEligible(ctx context.Context, userID int64) bool {
	return s.IsAdmin(userID) || s.eligible
}

func (s *fakeQuotaService) RemainingCooldownDays(ctx context.Context, userID int64) int {
	if s.IsAdmin(userID) || s.eligible {
		return 0
	}
	return s.remaining
}

func (s *fakeQuotaService) RecordSuccessfulPlan(ctx context.Context, userID int64) {
	if !s.IsAdmin(userID) {
		s.recorded = append(s.recorded, userID)
	}
}

func (s *fakeQuotaService) ResetLimit(ctx context.Context, userID int64) error {
	if s.resetErr != nil {
		return s.resetErr
	}
	s.resetIDs = append(s.resetIDs, userID)
	return nil
}

func (s *fakeQuotaService) ResetAllLimits(ctx context.Context) error {
	if s.resetErr != nil {
		return s.resetErr
	}
	s.resetAll++
	return nil
}

type fakePlanService struct {
	generated []domain.PlanAttributes
	genErr    error
	latest    *domain.PlanArtifact
}

func (s *fakePlanService) Generate(ctx context.Context, userID int64, attrs domain.PlanAttributes) (*domain.PlanArtifact, error) {
	if s.genErr != nil {
		return nil, s.genErr
	}
	s.generated = append(s.generated, attrs)
	artifact := &domain.PlanArtifact{
		ID:         "plan-1",
		Attributes: attrs,
		Days: []domain.DayPlan{{
			Day:      "Понедельник",
			Meals:    []domain.Meal{{Type: "Завтрак", Time: "08:00", Name: "Овсяная каша", Calories: 350}},
			Calories: 350,
		}},
		ShoppingList: "Овсянка",
		WaterAdvice:  "Пейте воду",
		CreatedAt:    time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	s.latest = artifact
	return artifact, nil
}

func (s *fakePlanService) Latest(ctx context.Context, userID int64) *domain.PlanArtifact {
	return s.latest
}

type fakeCheckInService struct {
	records []domain.CheckIn
	recErr  error
	history []domain.CheckIn
}

func (s *fakeCheckInService) Record(ctx context.Context, userID int64, weight float64, waist, wellbeing, sleep int) error {
	if s.recErr != nil {
		return s.recErr
	}
	s.records = append(s.records, domain.CheckIn{
		UserID: userID, Weight: weight, Waist: waist, Wellbeing: wellbeing, Sleep: sleep,
	})
	return nil
}

func (s *fakeCheckInService) History(ctx context.Context, userID int64, limit int) []domain.CheckIn {
	return s.history
}

type fakeStatsService struct {
	stats services.Stats
	err   error
}

func (s *fakeStatsService) Stats(ctx context.Context) (*services.Stats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.stats, nil
}
