package menus

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vmaleev/nutriplan-bot/internal/bot/keyboards"
)

// SendMainMenu sends the main menu to a chat
func SendMainMenu(api *tgbotapi.BotAPI, chatID int64, isAdmin bool) error {
	text := `🥗 *НутриПлан* — персональный план питания на неделю

Я задам несколько вопросов и соберу для вас меню на 7 дней:
• 5 приемов пищи в день с калорийностью
• список покупок на неделю
• рекомендации по воде

⚖️ Раз в несколько дней отмечайте вес и самочувствие через чек-ин — так виден прогресс.

Новый план можно собирать раз в 7 дней.

Выберите действие:`

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.MainMenu(isAdmin)
	_, err := api.Send(msg)
	return err
}

// SendGenderStep asks for gender, the first wizard question.
func SendGenderStep(api *tgbotapi.BotAPI, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Шаг 1 из 4. Укажите ваш пол:")
	msg.ReplyMarkup = keyboards.GenderMenu()
	_, err := api.Send(msg)
	return err
}

// SendGoalStep asks for the goal.
func SendGoalStep(api *tgbotapi.BotAPI, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Шаг 2 из 4. Какая у вас цель?")
	msg.ReplyMarkup = keyboards.GoalMenu()
	_, err := api.Send(msg)
	return err
}

// SendActivityStep asks for the activity level.
func SendActivityStep(api *tgbotapi.BotAPI, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Шаг 3 из 4. Насколько вы активны в течение дня?")
	msg.ReplyMarkup = keyboards.ActivityMenu()
	_, err := api.Send(msg)
	return err
}

// SendDetailsPrompt asks for the free-text age, height and weight.
func SendDetailsPrompt(api *tgbotapi.BotAPI, chatID int64) error {
	text := `Шаг 4 из 4. Введите через запятую возраст, рост (см) и вес (кг).

Например: 30, 180, 75.5`

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.CancelMenu()
	_, err := api.Send(msg)
	return err
}

// SendCheckInPrompt asks for the free-text check-in tuple.
func SendCheckInPrompt(api *tgbotapi.BotAPI, chatID int64) error {
	text := `Введите через запятую: вес (кг), обхват талии (см), самочувствие (1-5), качество сна (1-5).

Например: 75.5, 85, 4, 3`

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.CancelMenu()
	_, err := api.Send(msg)
	return err
}

// SendAdminResetPrompt asks which limits to reset.
func SendAdminResetPrompt(api *tgbotapi.BotAPI, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Введите ID пользователя для сброса лимита или \"all\" для сброса всех:")
	msg.ReplyMarkup = keyboards.CancelMenu()
	_, err := api.Send(msg)
	return err
}

// SendHelp sends the help text.
func SendHelp(api *tgbotapi.BotAPI, chatID int64) error {
	text := `❓ *Как пользоваться ботом*

🥗 *План питания:*
• Нажмите "Новый план питания" и ответьте на 4 вопроса
• Готовый план сохраняется — его всегда можно открыть через "Мой план"
• Новый план доступен раз в 7 дней

⚖️ *Чек-ин:*
• Отмечайте вес, талию, самочувствие и сон
• Последние 7 записей видны в "Истории"

Команды: /start, /plan, /checkin, /history, /myplan, /help`

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.BackToMenu()
	_, err := api.Send(msg)
	return err
}
