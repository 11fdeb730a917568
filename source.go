package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bmatcuk/doublestar/v4"
)

// Подменяются в тестах: в CI буфера обмена нет.
var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

var errEmptyClipboard = errors.New("буфер обмена пуст")

// readerSource делит поток на строки по "\n", "\r\n" и одиночному "\r".
// Длина строки не ограничена.
type readerSource struct {
	r       *bufio.Reader
	pending []string
	line    string
	err     error
	done    bool
}

func newReaderSource(r io.Reader) *readerSource {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) Scan() bool {
	for len(s.pending) == 0 {
		if s.done {
			return false
		}
		chunk, err := s.r.ReadString('\n')
		if err != nil {
			s.done = true
			if err != io.EOF {
				s.err = err
				return false
			}
			if chunk == "" {
				return false
			}
		}
		chunk = strings.TrimSuffix(chunk, "\n")
		chunk = strings.TrimSuffix(chunk, "\r")
		s.pending = strings.Split(chunk, "\r")
	}

	s.line, s.pending = s.pending[0], s.pending[1:]
	return true
}

func (s *readerSource) Text() string { return s.line }
func (s *readerSource) Err() error   { return s.err }

// wrapProcessErr отделяет ошибки записи результата от ошибок чтения источника.
func wrapProcessErr(readOp, path string, err error) error {
	if errors.Is(err, ErrOutput) {
		return &ResourceError{Op: "ошибка записи результата", Err: err}
	}
	return &ResourceError{Op: readOp, Path: path, Err: err}
}

// processFile открывает файл только на чтение и гарантированно закрывает его.
func processFile(ss *StatementScanner, filename string, w io.Writer, mode Mode) (*Report, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &ResourceError{Op: "не удалось открыть файл", Path: filename, Err: err}
	}
	defer file.Close()

	report, err := ss.Process(file, w, mode)
	if err != nil {
		return report, wrapProcessErr("ошибка чтения файла", filename, err)
	}
	return report, nil
}

func processClipboard(ss *StatementScanner, w io.Writer, mode Mode) (*Report, error) {
	content, err := readClipboard()
	if err != nil {
		return nil, &ResourceError{Op: "не удалось прочитать из буфера обмена", Err: err}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &ResourceError{Op: "не удалось прочитать из буфера обмена", Err: errEmptyClipboard}
	}

	report, err := ss.Process(strings.NewReader(content), w, mode)
	if err != nil {
		return report, wrapProcessErr("ошибка чтения буфера обмена", "", err)
	}
	return report, nil
}

func isGlobPattern(name string) bool {
	return strings.ContainsAny(name, "*?[{")
}

// expandInput раскрывает шаблон вида src/**/*.cpp. Существующий файл
// с таким именем, как log[1].cpp, имеет приоритет над шаблоном.
func expandInput(name string) ([]string, error) {
	if !isGlobPattern(name) {
		return []string{name}, nil
	}
	if _, err := os.Stat(name); err == nil {
		return []string{name}, nil
	}

	matches, err := doublestar.FilepathGlob(name, doublestar.WithFilesOnly())
	if err != nil {
		return nil, &ResourceError{Op: "неверный шаблон", Path: name, Err: err}
	}
	if len(matches) == 0 {
		return nil, &ResourceError{Op: "нет файлов по шаблону", Path: name, Err: os.ErrNotExist}
	}

	sort.Strings(matches)
	return matches, nil
}
