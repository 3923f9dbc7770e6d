package keyboards

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback tokens. Wizard choices follow the category_value pattern and
// are dispatched by category prefix; menu tokens are matched exactly.
const (
	TokenMainMenu   = "main_menu"
	TokenNewPlan    = "new_plan"
	TokenNewCheckIn = "new_checkin"
	TokenMyPlan     = "my_plan"
	TokenHistory    = "history"
	TokenHelp       = "help"
	TokenBack       = "wizard_back"
	TokenAdminStats = "admin_stats"
	TokenAdminReset = "admin_reset"

	GenderMale   = "gender_male"
	GenderFemale = "gender_female"

	GoalLoss     = "goal_loss"
	GoalMaintain = "goal_maintain"
	GoalMass     = "goal_mass"

	ActivityLow    = "activity_low"
	ActivityMedium = "activity_medium"
	ActivityHigh   = "activity_high"
)

// MainMenu creates the main menu keyboard
func MainMenu(isAdmin bool) tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🥗 Новый план питания", TokenNewPlan),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Мой план", TokenMyPlan),
			tgbotapi.NewInlineKeyboardButtonData("⚖️ Чек-ин", TokenNewCheckIn),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 История", TokenHistory),
			tgbotapi.NewInlineKeyboardButtonData("❓ Помощь", TokenHelp),
		),
	)

	if isAdmin {
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", TokenAdminStats),
				tgbotapi.NewInlineKeyboardButtonData("🔄 Сброс лимитов", TokenAdminReset),
			),
		)
	}

	return keyboard
}

// GenderMenu creates the gender selection keyboard
func GenderMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👨 Мужской", GenderMale),
			tgbotapi.NewInlineKeyboardButtonData("👩 Женский", GenderFemale),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ В меню", TokenMainMenu),
		),
	)
}

// GoalMenu creates the goal selection keyboard
func GoalMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📉 Похудение", GoalLoss),
			tgbotapi.NewInlineKeyboardButtonData("⚖️ Поддержание", GoalMaintain),
			tgbotapi.NewInlineKeyboardButtonData("📈 Набор массы", GoalMass),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", TokenBack),
		),
	)
}

// ActivityMenu creates the activity level selection keyboard
func ActivityMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🪑 Низкая", ActivityLow),
			tgbotapi.NewInlineKeyboardButtonData("🚶 Средняя", ActivityMedium),
			tgbotapi.NewInlineKeyboardButtonData("🏃 Высокая", ActivityHigh),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", TokenBack),
		),
	)
}

// CancelMenu creates a keyboard with a single return-to-menu button
func CancelMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Отмена", TokenMainMenu),
		),
	)
}

// BackToMenu creates a keyboard with a single main-menu button
func BackToMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Главное меню", TokenMainMenu),
		),
	)
}
