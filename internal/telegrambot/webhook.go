package telegrambot

import (
	tele "gopkg.in/telebot.v3"
)

// SetupWebhook регистрирует вебхук у Telegram. Ошибки логируются,
// но не прерывают запуск: сервис должен продолжать отвечать на
// проверки здоровья даже без вебхука.
func (qb *QRBot) SetupWebhook() {
	if qb.config.Token == "" || qb.config.BaseURL == "" {
		qb.logger.Error("Вебхук не зарегистрирован: не заданы токен или базовый URL")
		return
	}

	webhookURL := qb.config.BaseURL + "/webhook"
	qb.logger.Infof("Регистрация вебхука: %s", webhookURL)

	// Сначала удаляем старый вебхук вместе с накопившимися обновлениями
	if err := qb.bot.RemoveWebhook(true); err != nil {
		qb.logger.Errorf("Ошибка удаления старого вебхука: %v", err)
	}

	webhook := &tele.Webhook{
		Endpoint: &tele.WebhookEndpoint{PublicURL: webhookURL},
	}
	if err := qb.bot.SetWebhook(webhook); err != nil {
		qb.logger.Errorf("Ошибка регистрации вебхука: %v", err)
		return
	}

	qb.logger.Info("Вебхук зарегистрирован успешно")
}

// Stop освобождает сетевые ресурсы бота
func (qb *QRBot) Stop() {
	qb.logger.Info("Остановка бота")

	if qb.client != nil {
		qb.client.CloseIdleConnections()
	}
}
