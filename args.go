package main

import (
	"fmt"
	"io"
)

// parseArgs разбирает позиционные аргументы, оставшиеся после флагов.
func parseArgs(args []string, useClipboard bool) (fileName string, mode Mode, err error) {
	var op string

	switch {
	case useClipboard && len(args) == 1:
		// nolog --clipboard <операция>
		op = args[0]
	case !useClipboard && len(args) == 2:
		// nolog <файл> <операция>
		fileName, op = args[0], args[1]
	default:
		return "", 0, fmt.Errorf("%w: неверное число аргументов (%d)", ErrInvalidUsage, len(args))
	}

	mode, err = ParseMode(op)
	if err != nil {
		return "", 0, err
	}
	return fileName, mode, nil
}

func showUsage(w io.Writer) {
	fmt.Fprintf(w, "Использование: nolog <FileName> <Operation: delete | comment>\n")
	fmt.Fprintf(w, "  nolog <файл> delete                      # Удалить выражения с std::cout\n")
	fmt.Fprintf(w, "  nolog <файл> comment                     # Закомментировать их\n")
	fmt.Fprintf(w, "  nolog --clipboard <операция>             # Исходник из буфера обмена\n")
	fmt.Fprintf(w, "  nolog <файл> <операция> --to-clipboard   # Результат в буфер обмена\n")
	fmt.Fprintln(w, "\nПримеры:")
	fmt.Fprintln(w, "  nolog src/myFTL.cpp delete > myFTL.clean.cpp")
	fmt.Fprintln(w, "  nolog 'src/**/*.cpp' comment")
	fmt.Fprintln(w, "  nolog --trigger printf --prefix '# ' main.c delete")
}
