package main

import (
	"errors"
	"fmt"
)

// ErrInvalidUsage - неверное число аргументов или неизвестная операция.
var ErrInvalidUsage = errors.New("неверное использование")

// ErrInvalidConfig - пустой маркер или префикс не из двух символов.
var ErrInvalidConfig = errors.New("неверная конфигурация")

// ErrOutput оборачивает ошибки записи результата, в отличие от ошибок чтения.
var ErrOutput = errors.New("ошибка вывода")

// ResourceError возвращается, когда файл, буфер обмена или конфиг
// нельзя открыть или прочитать.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
