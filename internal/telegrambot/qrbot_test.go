package telegrambot

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// MockLogger реализует интерфейс logger.Logger для тестирования
type MockLogger struct{}

func (m *MockLogger) Info(msg string)                           {}
func (m *MockLogger) Infof(format string, args ...interface{})  {}
func (m *MockLogger) Error(msg string)                          {}
func (m *MockLogger) Errorf(format string, args ...interface{}) {}
func (m *MockLogger) Debug(msg string)                          {}
func (m *MockLogger) Debugf(format string, args ...interface{}) {}

// apiCall одно обращение к Telegram API
type apiCall struct {
	method string
	body   string
}

// apiRecorder поднимает поддельный Telegram API и записывает все вызовы
type apiRecorder struct {
	mu    sync.Mutex
	calls []apiCall
}

func (rec *apiRecorder) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("ошибка чтения тела запроса: %v", err)
		}

		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

		rec.mu.Lock()
		rec.calls = append(rec.calls, apiCall{method: method, body: string(body)})
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if method == "sendPhoto" {
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"chat":{"id":1,"type":"private"},"photo":[{"file_id":"1","file_unique_id":"1","width":1,"height":1}]}}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"chat":{"id":1,"type":"private"}}}`))
	}
}

func (rec *apiRecorder) methods() []string {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	methods := make([]string, 0, len(rec.calls))
	for _, call := range rec.calls {
		methods = append(methods, call.method)
	}
	return methods
}

func (rec *apiRecorder) bodyOf(method string) string {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	for _, call := range rec.calls {
		if call.method == method {
			return call.body
		}
	}
	return ""
}

// newTestBot создает бота, работающего против поддельного Telegram API
func newTestBot(t *testing.T, helpEnabled bool) (*QRBot, *apiRecorder) {
	t.Helper()

	rec := &apiRecorder{}
	server := httptest.NewServer(rec.handler(t))
	t.Cleanup(server.Close)

	config := Config{
		Token:       "test-token",
		BaseURL:     "https://example.com",
		HelpEnabled: helpEnabled,
	}

	pref := tele.Settings{
		URL:         server.URL,
		Token:       config.Token,
		Offline:     true,
		Synchronous: true,
		ParseMode:   tele.ModeHTML,
		Client:      server.Client(),
	}

	qb, err := newQRBot(config, &MockLogger{}, nil, pref)
	require.NoError(t, err)

	return qb, rec
}

func messageUpdate(text string) tele.Update {
	return tele.Update{
		ID: 1,
		Message: &tele.Message{
			ID:     1,
			Text:   text,
			Sender: &tele.User{ID: 10},
			Chat:   &tele.Chat{ID: 10},
		},
	}
}

func TestHandleStart(t *testing.T) {
	qb, rec := newTestBot(t, false)

	qb.ProcessUpdate(messageUpdate("/start"))

	require.Equal(t, []string{"sendMessage"}, rec.methods())

	body := rec.bodyOf("sendMessage")
	assert.Contains(t, body, "Добро пожаловать")
	// Меню содержит кнопки сканера и генератора
	assert.Contains(t, body, "https://example.com/scanner")
	assert.Contains(t, body, "https://example.com/generator")
	assert.Contains(t, body, "quick_generate")
}

func TestHandleTextSendsPhoto(t *testing.T) {
	qb, rec := newTestBot(t, false)

	qb.ProcessUpdate(messageUpdate("https://example.com"))

	// Сначала сообщение о генерации, затем фото с QR-кодом
	require.Equal(t, []string{"sendMessage", "sendPhoto"}, rec.methods())
	assert.Contains(t, rec.bodyOf("sendMessage"), "Создаю QR-код")
	assert.NotContains(t, rec.bodyOf("sendMessage"), "Произошла ошибка")
}

func TestHandleTextTooLong(t *testing.T) {
	qb, rec := newTestBot(t, false)

	qb.ProcessUpdate(messageUpdate(strings.Repeat("a", 200)))

	// Валидация срабатывает до кодирования, фото не отправляется
	require.Equal(t, []string{"sendMessage"}, rec.methods())
	assert.Contains(t, rec.bodyOf("sendMessage"), "Произошла ошибка")
}

func TestHandleTextIgnoresCommands(t *testing.T) {
	qb, rec := newTestBot(t, false)

	qb.ProcessUpdate(messageUpdate("/unknown"))

	assert.Empty(t, rec.methods())
}

func TestHandleQuickGenerate(t *testing.T) {
	qb, rec := newTestBot(t, false)

	qb.ProcessUpdate(tele.Update{
		ID: 2,
		Callback: &tele.Callback{
			ID:     "callback-1",
			Sender: &tele.User{ID: 10},
			Message: &tele.Message{
				ID:   2,
				Chat: &tele.Chat{ID: 10},
			},
			Data: "\fquick_generate",
		},
	})

	assert.Equal(t, []string{"sendMessage", "answerCallbackQuery"}, rec.methods())
	assert.Contains(t, rec.bodyOf("sendMessage"), "Быстрая генерация")
}

func TestHandleHelp(t *testing.T) {
	qb, rec := newTestBot(t, true)

	qb.ProcessUpdate(tele.Update{
		ID: 3,
		Callback: &tele.Callback{
			ID:     "callback-2",
			Sender: &tele.User{ID: 10},
			Message: &tele.Message{
				ID:   3,
				Chat: &tele.Chat{ID: 10},
			},
			Data: "\fhelp",
		},
	})

	assert.Equal(t, []string{"sendMessage", "answerCallbackQuery"}, rec.methods())
	assert.Contains(t, rec.bodyOf("sendMessage"), "Как пользоваться ботом")
}

func TestHandleWebAppData(t *testing.T) {
	qb, rec := newTestBot(t, false)

	qb.ProcessUpdate(tele.Update{
		ID: 4,
		Message: &tele.Message{
			ID:     4,
			Sender: &tele.User{ID: 10},
			Chat:   &tele.Chat{ID: 10},
			WebAppData: &tele.WebAppData{
				Data: "scanned-payload",
			},
		},
	})

	require.Equal(t, []string{"sendMessage"}, rec.methods())
	body := rec.bodyOf("sendMessage")
	assert.Contains(t, body, "Результат сканирования")
	assert.Contains(t, body, "scanned-payload")
}

func TestSetupWebhook(t *testing.T) {
	qb, rec := newTestBot(t, false)

	qb.SetupWebhook()

	// Старый вебхук удаляется вместе с накопившимися обновлениями,
	// затем регистрируется новый
	assert.Equal(t, []string{"deleteWebhook", "setWebhook"}, rec.methods())
	assert.Contains(t, rec.bodyOf("setWebhook"), "https://example.com/webhook")
}

func TestSetupWebhookNotConfigured(t *testing.T) {
	rec := &apiRecorder{}
	server := httptest.NewServer(rec.handler(t))
	t.Cleanup(server.Close)

	pref := tele.Settings{
		URL:         server.URL,
		Token:       "test-token",
		Offline:     true,
		Synchronous: true,
		Client:      server.Client(),
	}

	qb, err := newQRBot(Config{Token: "test-token"}, &MockLogger{}, nil, pref)
	require.NoError(t, err)

	qb.SetupWebhook()

	// Без базового URL вебхук не регистрируется
	assert.Empty(t, rec.methods())
}
