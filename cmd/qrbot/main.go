package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/qrmaster/qr-master-bot/internal/botserver"
	"github.com/qrmaster/qr-master-bot/internal/config"
	"github.com/qrmaster/qr-master-bot/internal/handlers"
	"github.com/qrmaster/qr-master-bot/internal/logger"
	"github.com/qrmaster/qr-master-bot/internal/middleware"
	"github.com/qrmaster/qr-master-bot/internal/telegrambot"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "c", "config.yaml", "config path")
	flag.Parse()

	conf, err := config.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.NewZapLogger(conf)
	if err != nil {
		panic(err)
	}
	log.Info("Initialized logger")

	// Без токена бота процесс не запускается
	if err := conf.Validate(); err != nil {
		log.Errorf("Ошибка конфигурации: %v", err)
		_ = log.Close()
		os.Exit(1)
	}

	log.Infof("Bot configured with BASE_URL: %s", conf.Bot.BaseURL)

	// Инициализация бота
	bot, err := telegrambot.NewQRBot(telegrambot.Config{
		Token:       conf.Bot.Token,
		BaseURL:     conf.Bot.BaseURL,
		HelpEnabled: conf.Bot.HelpEnabled,
	}, log)
	if err != nil {
		log.Errorf("Ошибка создания бота: %v", err)
		_ = log.Close()
		os.Exit(1)
	}
	log.Info("Бот инициализирован")

	// Инициализация HTTP-обработчиков
	router := handlers.NewRouter(log, bot, conf)

	qrserver := botserver.NewBotServer(conf.RunAddress(), router, log)

	hLogger := middleware.NewHTTPLogger(log)
	compressor := middleware.NewGzipCompressor(log)
	qrserver.AddMiddleware(hLogger.HTTPLogHandler, compressor.CompressHandler, middleware.CacheHeaders)
	log.Info("Initialized middleware functions")

	go qrserver.RunServer()

	// Регистрация вебхука: сбой не мешает серверу отвечать на проверки здоровья
	bot.SetupWebhook()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Initialized shutdown")
	if err := qrserver.Shutdown(context.Background()); err != nil {
		log.Errorf("Cann't stop server %s", err)
	}

	bot.Stop()

	// Закрываем логгер перед завершением программы
	if err := log.Close(); err != nil {
		panic(err)
	}
}
