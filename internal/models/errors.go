package models

import "errors"

// Доменные ошибки подсистемы. Хэндлеры сопоставляют их с HTTP-статусами
// через errors.Is.
var (
	// ErrValidation - некорректные входные данные (сенсоры, координаты, контакты)
	ErrValidation = errors.New("validation error")
	// ErrStateConflict - недопустимый обратный переход жизненного цикла тревоги
	ErrStateConflict = errors.New("alert state conflict")
	// ErrAlertNotFound - тревога с указанным id не найдена
	ErrAlertNotFound = errors.New("alert not found")
	// ErrProviderUnavailable - внешний источник данных о рисках недоступен
	ErrProviderUnavailable = errors.New("risk provider unavailable")
)
