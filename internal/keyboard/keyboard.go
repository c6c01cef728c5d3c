package keyboard

import (
	tele "gopkg.in/telebot.v3"
)

// Кнопки с callback-данными. Экспортируются, чтобы бот мог
// зарегистрировать на них обработчики.
var (
	BtnQuickGenerate = tele.Btn{
		Unique: "quick_generate",
		Text:   "🚀 Быстрая генерация",
	}

	BtnHelp = tele.Btn{
		Unique: "help",
		Text:   "❓ Помощь",
	}
)

// MainMenu создает главное меню с инлайн-кнопками. Чистая функция от
// baseURL: кнопки веб-приложений открывают страницы сканера и генератора.
func MainMenu(baseURL string, withHelp bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}

	btnScanner := menu.WebApp("📷 Сканировать QR-код", &tele.WebApp{
		URL: baseURL + "/scanner",
	})
	btnGenerator := menu.WebApp("🔄 Сгенерировать QR-код", &tele.WebApp{
		URL: baseURL + "/generator",
	})

	if withHelp {
		menu.Inline(
			menu.Row(btnScanner, btnGenerator),
			menu.Row(BtnQuickGenerate, BtnHelp),
		)
	} else {
		menu.Inline(
			menu.Row(btnScanner, btnGenerator),
			menu.Row(BtnQuickGenerate),
		)
	}

	return menu
}
