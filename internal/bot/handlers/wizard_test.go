package handlers

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vmaleev/nutriplan-bot/internal/bot/state"
	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"github.com/vmaleev/nutriplan-bot/internal/services"
)

const testUserID int64 = 100

type fixture struct {
	handler  *UpdateHandler
	sm       *state.MemoryManager
	quota    *fakeQuotaService
	plans    *fakePlanService
	checkIns *fakeCheckInService
	rec      *apiRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	api, rec := newTestBot(t)
	quota := &fakeQuotaService{eligible: true}
	plans := &fakePlanService{}
	checkIns := &fakeCheckInService{}
	deps := Dependencies{
		UserSvc:    &fakeUserService{},
		QuotaSvc:   quota,
		PlanSvc:    plans,
		CheckInSvc: checkIns,
		StatsSvc:   &fakeStatsService{stats: services.Stats{Users: 3, Plans: 5, CheckIns: 7}},
	}
	sm := state.NewMemoryManager()
	return &fixture{
		handler:  NewUpdateHandler(api, deps, sm),
		sm:       sm,
		quota:    quota,
		plans:    plans,
		checkIns: checkIns,
		rec:      rec,
	}
}

func (f *fixture) handle(t *testing.T, update tgbotapi.Update) {
	t.Helper()
	if err := f.handler.Handle(context.Background(), update); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
}

func callbackUpdate(userID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: userID, FirstName: "Test", UserName: "test"},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: userID}},
		Data:    data,
	}}
}

func textUpdate(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, FirstName: "Test", UserName: "test"},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: text,
	}}
}

func commandUpdate(userID int64, command string) tgbotapi.Update {
	update := textUpdate(userID, command)
	update.Message.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(command)},
	}
	return update
}

func TestWizardFullFlow(t *testing.T) {
	f := newFixture(t)

	f.handle(t, callbackUpdate(testUserID, "new_plan"))
	if got := f.sm.Get(testUserID).Step; got != state.StepGender {
		t.Fatalf("expected StepGender after wizard start, got %q", got)
	}

	f.handle(t, callbackUpdate(testUserID, "gender_male"))
	if got := f.sm.Get(testUserID).Step; got != state.StepGoal {
		t.Fatalf("expected StepGoal, got %q", got)
	}

	f.handle(t, callbackUpdate(testUserID, "goal_loss"))
	if got := f.sm.Get(testUserID).Step; got != state.StepActivity {
		t.Fatalf("expected StepActivity, got %q", got)
	}

	f.handle(t, callbackUpdate(testUserID, "activity_medium"))
	session := f.sm.Get(testUserID)
	if session.Step != state.StepAwaitingDetails {
		t.Fatalf("expected StepAwaitingDetails, got %q", session.Step)
	}
	wantCollected := map[string]string{"gender": "male", "goal": "loss", "activity": "medium"}
	if !reflect.DeepEqual(session.Collected, wantCollected) {
		t.Errorf("collected = %v, want %v", session.Collected, wantCollected)
	}

	f.handle(t, textUpdate(testUserID, "30, 180, 75.5"))

	if len(f.plans.generated) != 1 {
		t.Fatalf("expected one generated plan, got %d", len(f.plans.generated))
	}
	want := domain.PlanAttributes{
		Gender: "male", Goal: "loss", Activity: "medium",
		Age: 30, Height: 180, Weight: 75.5,
	}
	if f.plans.generated[0] != want {
		t.Errorf("generated attributes %+v, want %+v", f.plans.generated[0], want)
	}

	if !reflect.DeepEqual(f.quota.recorded, []int64{testUserID}) {
		t.Errorf("expected one quota stamp for the user, got %v", f.quota.recorded)
	}

	if got := f.sm.Get(testUserID).Step; got != state.StepNone {
		t.Errorf("expected session cleared after generation, got %q", got)
	}
}

func TestWizardQuotaBlockedEntry(t *testing.T) {
	f := newFixture(t)
	f.quota.eligible = false
	f.quota.remaining = 4

	f.handle(t, commandUpdate(testUserID, "/plan"))

	if got := f.sm.Get(testUserID).Step; got != state.StepNone {
		t.Errorf("expected no session for a blocked user, got %q", got)
	}
	if text := f.rec.lastText(); !strings.Contains(text, "4 дн") {
		t.Errorf("expected the remaining cooldown in the reply, got %q", text)
	}
	if len(f.plans.generated) != 0 {
		t.Errorf("expected no plan generation for a blocked user")
	}
}

func TestWizardBackNavigationKeepsAnswers(t *testing.T) {
	f := newFixture(t)

	f.handle(t, callbackUpdate(testUserID, "new_plan"))
	f.handle(t, callbackUpdate(testUserID, "gender_female"))
	f.handle(t, callbackUpdate(testUserID, "goal_maintain"))

	f.handle(t, callbackUpdate(testUserID, "wizard_back"))
	session := f.sm.Get(testUserID)
	if session.Step != state.StepGoal {
		t.Fatalf("expected StepGoal after going back, got %q", session.Step)
	}
	if session.Collected["gender"] != "female" || session.Collected["goal"] != "maintain" {
		t.Errorf("expected collected answers kept, got %v", session.Collected)
	}

	f.handle(t, callbackUpdate(testUserID, "wizard_back"))
	if got := f.sm.Get(testUserID).Step; got != state.StepGender {
		t.Fatalf("expected StepGender after going back twice, got %q", got)
	}

	// At the first step there is nowhere further back: return to the menu.
	f.handle(t, callbackUpdate(testUserID, "wizard_back"))
	if got := f.sm.Get(testUserID).Step; got != state.StepNone {
		t.Errorf("expected session cleared at the menu, got %q", got)
	}
}

func TestWizardCorrectedAnswerOverwrites(t *testing.T) {
	f := newFixture(t)

	f.handle(t, callbackUpdate(testUserID, "new_plan"))
	f.handle(t, callbackUpdate(testUserID, "gender_male"))
	f.handle(t, callbackUpdate(testUserID, "wizard_back"))
	f.handle(t, callbackUpdate(testUserID, "gender_female"))

	session := f.sm.Get(testUserID)
	if session.Collected["gender"] != "female" {
		t.Errorf("expected corrected answer to win, got %q", session.Collected["gender"])
	}
	if session.Step != state.StepGoal {
		t.Errorf("expected StepGoal after re-answering, got %q", session.Step)
	}
}

func TestUnknownTokenLeavesSessionUntouched(t *testing.T) {
	f := newFixture(t)

	f.handle(t, callbackUpdate(testUserID, "new_plan"))
	f.handle(t, callbackUpdate(testUserID, "gender_male"))

	f.handle(t, callbackUpdate(testUserID, "bogus_token"))

	session := f.sm.Get(testUserID)
	if session.Step != state.StepGoal {
		t.Errorf("expected step unchanged after unknown token, got %q", session.Step)
	}
	if session.Collected["gender"] != "male" {
		t.Errorf("expected collected answers unchanged, got %v", session.Collected)
	}
	if text := f.rec.lastText(); text == "" {
		t.Errorf("expected a reply after unknown token")
	}
}

func TestStaleChoiceIgnored(t *testing.T) {
	f := newFixture(t)

	f.handle(t, callbackUpdate(testUserID, "new_plan"))
	f.handle(t, callbackUpdate(testUserID, "gender_male"))

	// Pressing an old gender keyboard while already past that step.
	f.handle(t, callbackUpdate(testUserID, "gender_female"))

	session := f.sm.Get(testUserID)
	if session.Step != state.StepGoal {
		t.Errorf("expected step unchanged after stale choice, got %q", session.Step)
	}
	if session.Collected["gender"] != "male" {
		t.Errorf("expected original answer kept, got %q", session.Collected["gender"])
	}
}

func TestDetailsValidationKeepsStep(t *testing.T) {
	f := newFixture(t)

	f.handle(t, callbackUpdate(testUserID, "new_plan"))
	f.handle(t, callbackUpdate(testUserID, "gender_male"))
	f.handle(t, callbackUpdate(testUserID, "goal_mass"))
	f.handle(t, callbackUpdate(testUserID, "activity_high"))

	f.handle(t, textUpdate(testUserID, "30, 180"))

	if got := f.sm.Get(testUserID).Step; got != state.StepAwaitingDetails {
		t.Errorf("expected to stay on the details step, got %q", got)
	}
	if len(f.plans.generated) != 0 {
		t.Errorf("expected no generation on invalid input")
	}

	// A corrected answer still completes the wizard.
	f.handle(t, textUpdate(testUserID, "30, 180, 90"))
	if len(f.plans.generated) != 1 {
		t.Errorf("expected generation after the corrected answer")
	}
}

func TestGenerationFailureClearsSession(t *testing.T) {
	f := newFixture(t)
	f.plans.genErr = errors.New("connection refused")

	f.handle(t, callbackUpdate(testUserID, "new_plan"))
	f.handle(t, callbackUpdate(testUserID, "gender_male"))
	f.handle(t, callbackUpdate(testUserID, "goal_loss"))
	f.handle(t, callbackUpdate(testUserID, "activity_low"))
	f.handle(t, textUpdate(testUserID, "30, 180, 75.5"))

	if got := f.sm.Get(testUserID).Step; got != state.StepNone {
		t.Errorf("expected session cleared after generation failure, got %q", got)
	}
	if len(f.quota.recorded) != 0 {
		t.Errorf("expected no quota stamp after a failed generation, got %v", f.quota.recorded)
	}
}

func TestCancelTextAbortsWizard(t *testing.T) {
	f := newFixture(t)

	f.handle(t, callbackUpdate(testUserID, "new_plan"))
	f.handle(t, callbackUpdate(testUserID, "gender_male"))

	f.handle(t, textUpdate(testUserID, "Отмена"))

	if got := f.sm.Get(testUserID).Step; got != state.StepNone {
		t.Errorf("expected session cleared after cancel, got %q", got)
	}
}

func TestCheckInFlow(t *testing.T) {
	f := newFixture(t)

	f.handle(t, callbackUpdate(testUserID, "new_checkin"))
	if got := f.sm.Get(testUserID).Step; got != state.StepAwaitingCheckIn {
		t.Fatalf("expected StepAwaitingCheckIn, got %q", got)
	}

	f.handle(t, textUpdate(testUserID, "75.5, 85, 4, 3"))

	if len(f.checkIns.records) != 1 {
		t.Fatalf("expected one stored check-in, got %d", len(f.checkIns.records))
	}
	got := f.checkIns.records[0]
	want := domain.CheckIn{UserID: testUserID, Weight: 75.5, Waist: 85, Wellbeing: 4, Sleep: 3}
	if got != want {
		t.Errorf("stored check-in %+v, want %+v", got, want)
	}
	if step := f.sm.Get(testUserID).Step; step != state.StepNone {
		t.Errorf("expected session cleared after check-in, got %q", step)
	}
}

func TestCheckInWriteFailureKeepsStep(t *testing.T) {
	f := newFixture(t)
	f.checkIns.recErr = errors.New("connection refused")

	f.handle(t, callbackUpdate(testUserID, "new_checkin"))
	f.handle(t, textUpdate(testUserID, "75.5, 85, 4, 3"))

	if got := f.sm.Get(testUserID).Step; got != state.StepAwaitingCheckIn {
		t.Errorf("expected to stay on the check-in step for a retry, got %q", got)
	}
}

func TestMyPlanWithoutStoredPlan(t *testing.T) {
	f := newFixture(t)

	f.handle(t, callbackUpdate(testUserID, "my_plan"))

	if text := f.rec.lastText(); !strings.Contains(text, "нет плана") {
		t.Errorf("expected a no-plan message, got %q", text)
	}
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t)

	f.handle(t, commandUpdate(testUserID, "/frobnicate"))

	if text := f.rec.lastText(); !strings.Contains(text, "Неизвестная команда") {
		t.Errorf("expected an unknown-command reply, got %q", text)
	}
}

func TestStartCancelsWizard(t *testing.T) {
	f := newFixture(t)

	f.handle(t, callbackUpdate(testUserID, "new_plan"))
	f.handle(t, commandUpdate(testUserID, "/start"))

	if got := f.sm.Get(testUserID).Step; got != state.StepNone {
		t.Errorf("expected session cleared by /start, got %q", got)
	}
}
