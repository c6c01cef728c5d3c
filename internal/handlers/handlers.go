package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/qrmaster/qr-master-bot/internal/config"
	"github.com/qrmaster/qr-master-bot/internal/logger"
	"github.com/qrmaster/qr-master-bot/internal/qrcode"
	tele "gopkg.in/telebot.v3"
)

// UpdateProcessor передает входящее обновление диспетчеру бота
type UpdateProcessor interface {
	ProcessUpdate(u tele.Update)
}

type Handler struct {
	logger       logger.Logger
	processor    UpdateProcessor
	webhookURL   string
	webhookReady bool
	staticDir    string
}

func NewHandler(log logger.Logger, processor UpdateProcessor, conf *config.Config) *Handler {
	return &Handler{
		logger:       log,
		processor:    processor,
		webhookURL:   conf.WebhookURL(),
		webhookReady: conf.WebhookReady(),
		staticDir:    conf.Server.StaticDir,
	}
}

func NewRouter(log logger.Logger, processor UpdateProcessor, conf *config.Config) chi.Router {
	r := chi.NewRouter()

	handler := NewHandler(log, processor, conf)

	return r.Route("/", func(r chi.Router) {
		r.Get("/", handler.RootHandler)
		r.Get("/health", handler.HealthHandler)
		r.Get("/scanner", handler.ScannerPageHandler)
		r.Get("/generator", handler.GeneratorPageHandler)
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(handler.staticDir))))
		r.Post("/webhook", handler.WebhookHandler)
		r.Post("/api/generate", handler.GenerateHandler)
	})
}

// RootHandler сообщает статус сервиса и адрес вебхука
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "QR Bot is running!",
		"webhook_url": h.webhookURL,
	})
}

// HealthHandler отвечает на проверки здоровья
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"service":     "QR Telegram Bot",
		"webhook_set": h.webhookReady,
	})
}

// ScannerPageHandler отдает страницу сканера
func (h *Handler) ScannerPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "scanner.html"))
}

// GeneratorPageHandler отдает страницу генератора
func (h *Handler) GeneratorPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "generator.html"))
}

// WebhookHandler принимает обновление от Telegram и передает его боту.
// Любой сбой возвращается со статусом 200: ошибка в теле ответа,
// иначе Telegram начнет бесконечно повторять доставку
func (h *Handler) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Entered WebhookHandler")

	var update tele.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Errorf("Ошибка разбора обновления: %v", err)
		h.writeJSON(w, http.StatusOK, map[string]any{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Errorf("Паника при обработке обновления: %v", rec)
			h.writeJSON(w, http.StatusOK, map[string]any{
				"status":  "error",
				"message": fmt.Sprint(rec),
			})
		}
	}()

	h.processor.ProcessUpdate(update)

	h.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

type generateRequest struct {
	Data string `json:"data"`
	Size int    `json:"size"`
}

type generateResponse struct {
	Status  string `json:"status"`
	Image   string `json:"image,omitempty"`
	Message string `json:"message,omitempty"`
}

// GenerateHandler генерирует QR-код для страницы генератора и
// возвращает его в base64
func (h *Handler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Errorf("Ошибка разбора запроса генерации: %v", err)
		h.writeJSON(w, http.StatusBadRequest, generateResponse{
			Status:  "error",
			Message: "некорректный запрос",
		})
		return
	}

	image, err := qrcode.GenerateBase64(req.Data, req.Size)
	if err != nil {
		if errors.Is(err, qrcode.ErrEmptyPayload) || errors.Is(err, qrcode.ErrPayloadTooLarge) {
			h.writeJSON(w, http.StatusBadRequest, generateResponse{
				Status:  "error",
				Message: err.Error(),
			})
			return
		}

		h.logger.Errorf("Ошибка генерации QR-кода: %v", err)
		h.writeJSON(w, http.StatusInternalServerError, generateResponse{
			Status:  "error",
			Message: "ошибка генерации QR-кода",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, generateResponse{
		Status: "ok",
		Image:  image,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Errorf("Ошибка записи ответа: %v", err)
	}
}
