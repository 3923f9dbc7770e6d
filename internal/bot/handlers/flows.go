package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vmaleev/nutriplan-bot/internal/bot/keyboards"
	"github.com/vmaleev/nutriplan-bot/internal/bot/menus"
	"github.com/vmaleev/nutriplan-bot/internal/bot/state"
)

// Flows shared between the command and callback handlers. Every flow
// leaves the user in a known state: either a named wizard step or the
// main menu.

func sendText(api *tgbotapi.BotAPI, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := api.Send(msg)
	return err
}

func sendWithMenu(api *tgbotapi.BotAPI, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.BackToMenu()
	_, err := api.Send(msg)
	return err
}

// openMainMenu cancels any in-progress wizard and shows the menu.
func openMainMenu(deps Dependencies, sm state.Manager, api *tgbotapi.BotAPI, chatID, userID int64) error {
	sm.Clear(userID)
	return menus.SendMainMenu(api, chatID, deps.QuotaSvc.IsAdmin(userID))
}

// startWizard consults the quota gate and, if the user is eligible, opens
// the first wizard step. An ineligible user gets the remaining cooldown
// and no session is created.
func startWizard(ctx context.Context, deps Dependencies, sm state.Manager, api *tgbotapi.BotAPI, chatID, userID int64) error {
	if !deps.QuotaSvc.IsEligible(ctx, userID) {
		days := deps.QuotaSvc.RemainingCooldownDays(ctx, userID)
		return sendWithMenu(api, chatID,
			fmt.Sprintf("⏳ Новый план можно будет собрать через %d дн. Текущий план доступен в \"Мой план\".", days))
	}

	sm.Set(userID, state.NewSession(state.StepGender))
	return menus.SendGenderStep(api, chatID)
}

// openCheckIn opens the check-in free-text prompt.
func openCheckIn(sm state.Manager, api *tgbotapi.BotAPI, chatID, userID int64) error {
	sm.Set(userID, state.NewSession(state.StepAwaitingCheckIn))
	return menus.SendCheckInPrompt(api, chatID)
}

// sendLatestPlan shows the most recent stored plan.
func sendLatestPlan(ctx context.Context, deps Dependencies, api *tgbotapi.BotAPI, chatID, userID int64) error {
	artifact := deps.PlanSvc.Latest(ctx, userID)
	if artifact == nil {
		return sendWithMenu(api, chatID, "У вас пока нет плана. Соберите первый через \"Новый план питания\".")
	}
	return sendWithMenu(api, chatID, menus.FormatPlan(artifact))
}

// sendHistory shows recent check-ins, newest first.
func sendHistory(ctx context.Context, deps Dependencies, api *tgbotapi.BotAPI, chatID, userID int64) error {
	checkIns := deps.CheckInSvc.History(ctx, userID, 0)
	return sendWithMenu(api, chatID, menus.FormatHistory(checkIns))
}

// sendStats shows aggregate counters to the admin.
func sendStats(ctx context.Context, deps Dependencies, api *tgbotapi.BotAPI, chatID int64) error {
	stats, err := deps.StatsSvc.Stats(ctx)
	if err != nil {
		return sendWithMenu(api, chatID, "Не удалось получить статистику, попробуйте позже.")
	}
	return sendWithMenu(api, chatID, fmt.Sprintf(
		"📊 Статистика:\n\nПользователей: %d\nПланов: %d\nЧек-инов: %d",
		stats.Users, stats.Plans, stats.CheckIns))
}

// openAdminReset opens the limit-reset prompt for the admin.
func openAdminReset(sm state.Manager, api *tgbotapi.BotAPI, chatID, userID int64) error {
	sm.Set(userID, state.NewSession(state.StepAwaitingAdminInput))
	return menus.SendAdminResetPrompt(api, chatID)
}
