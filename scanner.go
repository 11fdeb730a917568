package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	defaultTrigger = "std::cout"
	defaultPrefix  = "//"
)

// Mode определяет, что делать со строками найденного выражения.
type Mode int

const (
	ModeDelete Mode = iota
	ModeComment
)

func (m Mode) String() string {
	switch m {
	case ModeDelete:
		return "delete"
	case ModeComment:
		return "comment"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode принимает только литералы "delete" и "comment".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "delete":
		return ModeDelete, nil
	case "comment":
		return ModeComment, nil
	}
	return 0, fmt.Errorf("%w: неизвестная операция %q", ErrInvalidUsage, s)
}

// Statement описывает одно найденное выражение (номера строк с 1).
type Statement struct {
	StartLine  int
	EndLine    int
	Terminated bool
}

// Report собирает статистику одного прохода.
type Report struct {
	Statements []Statement
	LinesRead  int
	Emitted    int
	Suppressed int
}

// lineSource - однонаправленный источник строк (readerSource, sliceSource).
type lineSource interface {
	Scan() bool
	Text() string
	Err() error
}

type sliceSource struct {
	lines []string
	pos   int
}

func (s *sliceSource) Scan() bool {
	if s.pos >= len(s.lines) {
		return false
	}
	s.pos++
	return true
}

func (s *sliceSource) Text() string { return s.lines[s.pos-1] }
func (s *sliceSource) Err() error   { return nil }

type StatementScanner struct {
	trigger string
	prefix  string
}

func NewStatementScanner(trigger, prefix string) *StatementScanner {
	return &StatementScanner{
		trigger: trigger,
		prefix:  prefix,
	}
}

// isTerminated проверяет только первую точку с запятой в строке:
// хвост строки начиная с неё после обрезки пробелов должен быть ровно ";".
func isTerminated(line string) bool {
	idx := strings.Index(line, ";")
	if idx == -1 {
		return false
	}
	return trimControl(line[idx:]) == ";"
}

// trimControl обрезает с обоих концов все символы с кодом <= ' '.
func trimControl(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

func (ss *StatementScanner) scan(src lineSource, mode Mode, emit func(string) error) (*Report, error) {
	report := &Report{}

	mark := func(line string) error {
		if mode == ModeDelete {
			report.Suppressed++
			return nil
		}
		report.Emitted++
		return emit(ss.prefix + line)
	}

	for src.Scan() {
		report.LinesRead++
		line := src.Text()

		if !strings.Contains(line, ss.trigger) {
			report.Emitted++
			if err := emit(line); err != nil {
				return report, err
			}
			continue
		}

		stmt := Statement{StartLine: report.LinesRead}
		if err := mark(line); err != nil {
			return report, err
		}

		for !isTerminated(line) {
			if !src.Scan() {
				// Ввод закончился внутри выражения: это не ошибка, просто конец.
				stmt.EndLine = report.LinesRead
				report.Statements = append(report.Statements, stmt)
				return report, src.Err()
			}
			report.LinesRead++
			line = src.Text()
			if err := mark(line); err != nil {
				return report, err
			}
		}

		stmt.EndLine = report.LinesRead
		stmt.Terminated = true
		report.Statements = append(report.Statements, stmt)
	}

	return report, src.Err()
}

// Process читает строки из r и пишет результат в w, по одной строке с "\n".
func (ss *StatementScanner) Process(r io.Reader, w io.Writer, mode Mode) (*Report, error) {
	bw := bufio.NewWriter(w)

	report, err := ss.scan(newReaderSource(r), mode, func(line string) error {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		return nil
	})

	// Уже выведенные строки сбрасываем даже при ошибке чтения.
	if flushErr := bw.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("%w: %w", ErrOutput, flushErr)
	}

	return report, err
}

// StripLines - чистая версия для готового набора строк.
func (ss *StatementScanner) StripLines(lines []string, mode Mode) []string {
	var out []string
	// sliceSource и emit не возвращают ошибок
	_, _ = ss.scan(&sliceSource{lines: lines}, mode, func(line string) error {
		out = append(out, line)
		return nil
	})
	return out
}
