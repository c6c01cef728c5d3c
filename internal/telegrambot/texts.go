package telegrambot

// Тексты бота. HTML-разметка, как и все исходящие сообщения.
const (
	WelcomeText = `🎉 <b>Добро пожаловать в QR Master Bot!</b>

✨ <i>Многофункциональный бот для работы с QR-кодами</i>

🛠 <b>Что умеет этот бот:</b>
• 📷 <b>Сканировать</b> QR-коды через камеру
• 🔄 <b>Генерировать</b> QR-коды из текста и ссылок
• 💾 <b>Создавать</b> красивые QR-коды в разных стилях
• ⚡ <b>Быстро работать</b> и просто использовать

👇 <b>Выберите действие:</b>`

	QRGeneratedText = `✅ <b>QR-код успешно создан!</b>

📊 <b>Информация:</b>
• 📏 Размер: 300x300 пикселей
• 🎨 Версия: QR Code v7
• 💾 Коррекция ошибок: 30%

💡 <i>Сохраните изображение или поделитесь им!</i>`

	ErrorText = `❌ <b>Произошла ошибка!</b>

⚠️ <i>Пожалуйста, попробуйте еще раз или обратитесь в поддержку.</i>`

	GeneratingText = "⏳ <i>Создаю QR-код...</i>"

	QuickGenerateText = `🚀 <b>Быстрая генерация QR-кода</b>

📝 <i>Отправьте мне текст или ссылку, и я создам QR-код!</i>

💡 <b>Примеры:</b>
• https://example.com
• Ваш текст здесь
• +79991234567
• YOUR_WIFI_NAME;WPA;PASSWORD`

	HelpText = `❓ <b>Как пользоваться ботом</b>

• 📷 <b>Сканер</b> — откройте страницу сканера и наведите камеру на QR-код
• 🔄 <b>Генератор</b> — откройте страницу генератора или просто отправьте текст
• 🚀 <b>Быстрая генерация</b> — отправьте текст или ссылку прямо в чат

⚠️ <i>Максимальная длина текста — 154 символа.</i>`

	ScanResultText = `✅ <b>Результат сканирования:</b>

<code>%s</code>

💡 <i>Отправьте этот текст мне, чтобы создать QR-код!</i>`
)
