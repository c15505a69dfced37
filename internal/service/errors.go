package service

import "errors"

// Терминальные ошибки доменных операций. Автоматических повторов внутри
// сервиса нет: повтор, если нужен, остаётся за вызывающей стороной.
var (
	// ErrUnauthenticated - вызывающая сторона не предъявила идентификатор
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound - тревога или уведомление с указанным id не существует
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized - мутация, доступная только автору тревоги, запрошена другим пользователем
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlertClosed - операция над тревогой в терминальном статусе (resolved/false-alarm)
	ErrAlertClosed = errors.New("alert closed")

	// ErrInvalidLocation - отсутствующая или некорректная координата
	ErrInvalidLocation = errors.New("invalid location")
)
