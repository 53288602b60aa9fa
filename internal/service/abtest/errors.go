package abtest

import "errors"

var (
	// ErrTestNotFound возвращается, когда эксперимент не найден
	ErrTestNotFound = errors.New("experiment not found")

	// ErrVariantNotFound возвращается, когда вариант не принадлежит эксперименту
	ErrVariantNotFound = errors.New("variant not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
