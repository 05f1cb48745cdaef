package i18n

// messages holds the user-facing strings per locale. Keys are shared with
// the handlers; values cover the three shipped locales.
var messages = map[string]map[string]string{
	"uz": {
		"error.unauthorized":         "Avtorizatsiyadan o'tilmagan",
		"error.auth_header_missing":  "Authorization sarlavhasi topilmadi",
		"error.auth_header_invalid":  "Authorization sarlavhasi noto'g'ri",
		"error.token_invalid":        "Token yaroqsiz",
		"error.jwt_secret_missing":   "Server autentifikatsiya sozlanmagan",
		"error.invalid_credentials":  "Login yoki parol noto'g'ri",
		"error.account_not_active":   "Hisobingiz faol emas. Administrator tasdig'ini kuting.",
		"error.forbidden":            "Bu amal uchun ruxsat yo'q",
		"error.seller_required":      "Sotuvchi huquqi talab qilinadi",
		"error.admin_required":       "Administrator huquqi talab qilinadi",
		"error.not_found":            "Ma'lumot topilmadi",
		"error.validation":           "Yuborilgan ma'lumotlar noto'g'ri",
		"error.conflict":             "Bunday yozuv allaqachon mavjud",
		"error.email_taken":          "Bu email band",
		"error.internal":             "Ichki xatolik yuz berdi",
		"error.login_too_many":       "Urinishlar soni oshib ketdi. Birozdan so'ng qayta urinib ko'ring.",
		"error.rate_limit_unavailable": "Xizmat vaqtincha mavjud emas",
		"error.password_min_length":    "Parol kamida %d ta belgidan iborat bo'lishi kerak",
		"error.password_require_upper":  "Parolda kamida bitta katta harf bo'lishi kerak",
		"error.password_require_lower":  "Parolda kamida bitta kichik harf bo'lishi kerak",
		"error.password_require_number": "Parolda kamida bitta raqam bo'lishi kerak",
		"error.password_require_special": "Parolda kamida bitta maxsus belgi bo'lishi kerak",
		"msg.seller_registered":      "Ro'yxatdan o'tdingiz. Administrator tasdig'ini kuting.",
		"msg.logged_in":              "Tizimga kirdingiz",
		"msg.logged_out":             "Tizimdan chiqdingiz",
		"msg.product_created":        "Mahsulot yaratildi va tasdiqlashni kutmoqda",
		"msg.product_updated":        "Mahsulot yangilandi",
		"msg.product_deleted":        "Mahsulot o'chirildi",
		"msg.stock_updated":          "Zaxira yangilandi",
		"msg.stock_retrieved":        "Zaxira ma'lumotlari olindi",
		"msg.order_status_updated":   "Buyurtma holati yangilandi",
		"msg.attribute_deleted":      "Xususiyat o'chirildi",
		"msg.review_replied":         "Javob qo'shildi",
		"msg.review_reported":        "Sharh shikoyat qilindi",
		"msg.seller_approved":        "Sotuvchi tasdiqlandi",
		"msg.seller_rejected":        "Sotuvchi rad etildi",
	},
	"ru": {
		"error.unauthorized":         "Требуется авторизация",
		"error.auth_header_missing":  "Отсутствует заголовок Authorization",
		"error.auth_header_invalid":  "Неверный заголовок Authorization",
		"error.token_invalid":        "Недействительный токен",
		"error.jwt_secret_missing":   "Аутентификация сервера не настроена",
		"error.invalid_credentials":  "Неверный логин или пароль",
		"error.account_not_active":   "Ваш аккаунт не активен. Дождитесь подтверждения администратора.",
		"error.forbidden":            "Нет прав на это действие",
		"error.seller_required":      "Требуются права продавца",
		"error.admin_required":       "Требуются права администратора",
		"error.not_found":            "Запись не найдена",
		"error.validation":           "Переданы некорректные данные",
		"error.conflict":             "Такая запись уже существует",
		"error.email_taken":          "Этот email уже занят",
		"error.internal":             "Внутренняя ошибка сервера",
		"error.login_too_many":       "Слишком много попыток. Повторите позже.",
		"error.rate_limit_unavailable": "Сервис временно недоступен",
		"error.password_min_length":    "Пароль должен содержать не менее %d символов",
		"error.password_require_upper":  "Пароль должен содержать хотя бы одну заглавную букву",
		"error.password_require_lower":  "Пароль должен содержать хотя бы одну строчную букву",
		"error.password_require_number": "Пароль должен содержать хотя бы одну цифру",
		"error.password_require_special": "Пароль должен содержать хотя бы один специальный символ",
		"msg.seller_registered":      "Регистрация прошла успешно. Дождитесь подтверждения администратора.",
		"msg.logged_in":              "Вход выполнен",
		"msg.logged_out":             "Выход выполнен",
		"msg.product_created":        "Товар создан и ожидает подтверждения",
		"msg.product_updated":        "Товар обновлён",
		"msg.product_deleted":        "Товар удалён",
		"msg.stock_updated":          "Остаток обновлён",
		"msg.stock_retrieved":        "Данные об остатках получены",
		"msg.order_status_updated":   "Статус заказа обновлён",
		"msg.attribute_deleted":      "Атрибут удалён",
		"msg.review_replied":         "Ответ добавлен",
		"msg.review_reported":        "Жалоба на отзыв отправлена",
		"msg.seller_approved":        "Продавец подтверждён",
		"msg.seller_rejected":        "Продавец отклонён",
	},
	"en": {
		"error.unauthorized":         "Authentication required",
		"error.auth_header_missing":  "Authorization header missing",
		"error.auth_header_invalid":  "Authorization header invalid",
		"error.token_invalid":        "Invalid token",
		"error.jwt_secret_missing":   "Server authentication is not configured",
		"error.invalid_credentials":  "Invalid credentials",
		"error.account_not_active":   "Your account is not active. Please wait for admin approval.",
		"error.forbidden":            "You are not allowed to perform this action",
		"error.seller_required":      "Seller access required",
		"error.admin_required":       "Admin access required",
		"error.not_found":            "Not found",
		"error.validation":           "The given data is invalid",
		"error.conflict":             "A record with this value already exists",
		"error.email_taken":          "This email is already taken",
		"error.internal":             "Internal server error",
		"error.login_too_many":       "Too many attempts. Please try again later.",
		"error.rate_limit_unavailable": "Service temporarily unavailable",
		"error.password_min_length":    "Password must be at least %d characters long",
		"error.password_require_upper":  "Password must contain at least one uppercase letter",
		"error.password_require_lower":  "Password must contain at least one lowercase letter",
		"error.password_require_number": "Password must contain at least one digit",
		"error.password_require_special": "Password must contain at least one special character",
		"msg.seller_registered":      "Registration successful. Please wait for admin approval.",
		"msg.logged_in":              "Logged in successfully",
		"msg.logged_out":             "Logged out successfully",
		"msg.product_created":        "Product created successfully and waiting for approval",
		"msg.product_updated":        "Product updated successfully",
		"msg.product_deleted":        "Product deleted successfully",
		"msg.stock_updated":          "Stock updated successfully",
		"msg.stock_retrieved":        "Stock retrieved successfully",
		"msg.order_status_updated":   "Order status updated successfully",
		"msg.attribute_deleted":      "Attribute deleted successfully",
		"msg.review_replied":         "Reply added successfully",
		"msg.review_reported":        "Review reported successfully",
		"msg.seller_approved":        "Seller approved successfully",
		"msg.seller_rejected":        "Seller rejected successfully",
	},
}
