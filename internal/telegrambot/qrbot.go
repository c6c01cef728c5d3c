package telegrambot

import (
	"bytes"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/qrmaster/qr-master-bot/internal/keyboard"
	"github.com/qrmaster/qr-master-bot/internal/logger"
	"github.com/qrmaster/qr-master-bot/internal/qrcode"
	tele "gopkg.in/telebot.v3"
)

// Config представляет конфигурацию Telegram-бота
type Config struct {
	Token       string // Токен бота
	BaseURL     string // Внешний URL сервиса (для веб-приложений и вебхука)
	HelpEnabled bool   // Показывать ли кнопку помощи в меню
}

// QRBot представляет бота для работы с QR-кодами. Состояния между
// сообщениями не хранятся: каждый обработчик — чистая функция от
// входящего обновления и конфигурации.
type QRBot struct {
	bot    *tele.Bot
	client *http.Client
	logger logger.Logger
	config Config
}

// NewQRBot создает нового бота
func NewQRBot(config Config, log logger.Logger) (*QRBot, error) {
	client := &http.Client{Timeout: time.Minute}

	pref := tele.Settings{
		Token:     config.Token,
		Client:    client,
		ParseMode: tele.ModeHTML,
		// Обновления приходят через вебхук, обрабатываем их синхронно,
		// чтобы ответ вебхука отражал результат диспетчеризации
		Synchronous: true,
		OnError: func(err error, c tele.Context) {
			log.Errorf("Ошибка обработчика: %v", err)
		},
	}

	return newQRBot(config, log, client, pref)
}

// newQRBot создает бота с произвольными настройками telebot (для тестов)
func newQRBot(config Config, log logger.Logger, client *http.Client, pref tele.Settings) (*QRBot, error) {
	bot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	qb := &QRBot{
		bot:    bot,
		client: client,
		logger: log,
		config: config,
	}
	qb.registerHandlers()

	return qb, nil
}

// registerHandlers регистрирует обработчики обновлений
func (qb *QRBot) registerHandlers() {
	// Обработчик команды /start
	qb.bot.Handle("/start", qb.handleStart)

	// Обработчик кнопки быстрой генерации
	qb.bot.Handle(&keyboard.BtnQuickGenerate, qb.handleQuickGenerate)

	// Обработчик кнопки помощи
	if qb.config.HelpEnabled {
		qb.bot.Handle(&keyboard.BtnHelp, qb.handleHelp)
	}

	// Обработчик текста для генерации QR-кода
	qb.bot.Handle(tele.OnText, qb.handleText)

	// Обработчик данных из веб-приложения
	qb.bot.Handle(tele.OnWebApp, qb.handleWebAppData)
}

// ProcessUpdate передает одно обновление диспетчеру бота
func (qb *QRBot) ProcessUpdate(u tele.Update) {
	qb.bot.ProcessUpdate(u)
}

// handleStart обрабатывает команду /start
func (qb *QRBot) handleStart(c tele.Context) error {
	qb.logger.Infof("Пользователь %d запустил бота", c.Sender().ID)

	menu := keyboard.MainMenu(qb.config.BaseURL, qb.config.HelpEnabled)
	return c.Send(WelcomeText, menu)
}

// handleQuickGenerate обрабатывает нажатие кнопки быстрой генерации
func (qb *QRBot) handleQuickGenerate(c tele.Context) error {
	qb.logger.Infof("Пользователь %d запросил быструю генерацию", c.Sender().ID)

	if err := c.Send(QuickGenerateText); err != nil {
		qb.logger.Errorf("Ошибка отправки инструкции: %v", err)
		return c.Respond()
	}

	return c.Respond()
}

// handleHelp обрабатывает нажатие кнопки помощи
func (qb *QRBot) handleHelp(c tele.Context) error {
	qb.logger.Infof("Пользователь %d запросил помощь", c.Sender().ID)

	if err := c.Send(HelpText); err != nil {
		qb.logger.Errorf("Ошибка отправки помощи: %v", err)
	}

	return c.Respond()
}

// handleText обрабатывает текстовые сообщения: любой текст,
// не являющийся командой, превращается в QR-код
func (qb *QRBot) handleText(c tele.Context) error {
	text := c.Text()

	// Команды пропускаем
	if strings.HasPrefix(text, "/") {
		return nil
	}

	qb.logger.Infof("Пользователь %d запросил QR-код (%d символов)", c.Sender().ID, len(text))

	if !qrcode.IsValidPayload(text) {
		qb.logger.Errorf("Невалидные данные для QR-кода от пользователя %d", c.Sender().ID)
		return c.Send(ErrorText)
	}

	if err := c.Send(GeneratingText); err != nil {
		qb.logger.Errorf("Ошибка отправки сообщения о генерации: %v", err)
	}

	// Генерируем QR-код
	image, err := qrcode.Generate(text, qrcode.DefaultSize)
	if err != nil {
		qb.logger.Errorf("Ошибка генерации QR-кода: %v", err)
		return c.Send(ErrorText)
	}

	// Создаем объект фото для отправки
	photo := &tele.Photo{
		File: tele.File{
			FileReader: bytes.NewReader(image),
		},
		Caption: QRGeneratedText,
	}

	if _, err := c.Bot().Send(c.Recipient(), photo); err != nil {
		qb.logger.Errorf("Ошибка отправки QR-кода: %v", err)
		return c.Send(ErrorText)
	}

	return nil
}

// handleWebAppData обрабатывает данные, пришедшие из веб-приложения
func (qb *QRBot) handleWebAppData(c tele.Context) error {
	data := c.Message().WebAppData.Data
	qb.logger.Infof("Пользователь %d прислал данные из веб-приложения", c.Sender().ID)

	return c.Send(fmt.Sprintf(ScanResultText, html.EscapeString(data)))
}
