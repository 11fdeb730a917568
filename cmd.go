package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type options struct {
	configPath    string
	trigger       string
	prefix        string
	fromClipboard bool
	toClipboard   bool
	verbose       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "nolog <FileName> <delete|comment>",
		Short: "Удаляет или комментирует выражения вывода в исходниках",
		Long: `nolog построчно читает исходный файл и удаляет (delete) или комментирует (comment)
каждое выражение, содержащее маркер (по умолчанию std::cout). Выражение может занимать
несколько строк и заканчивается строкой, у которой первая ';' стоит последней.
Результат печатается в стандартный вывод.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidUsage, err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "f", "", "Путь к конфигу (.yaml или .toml)")
	flags.StringVar(&opts.trigger, "trigger", defaultTrigger, "Маркер выражения")
	flags.StringVar(&opts.prefix, "prefix", defaultPrefix, "Префикс комментария (два символа)")
	flags.BoolVarP(&opts.fromClipboard, "clipboard", "c", false, "Читать исходник из буфера обмена")
	flags.BoolVar(&opts.toClipboard, "to-clipboard", false, "Записать результат в буфер обмена")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Печатать найденные выражения в stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	fileName, mode, err := parseArgs(args, opts.fromClipboard)
	if err != nil {
		return err
	}

	config, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	// Флаги важнее конфига.
	if cmd.Flags().Changed("trigger") {
		config.Trigger = opts.trigger
	}
	if cmd.Flags().Changed("prefix") {
		config.Prefix = opts.prefix
	}
	if err := config.validate(); err != nil {
		return err
	}

	logger := log.New(io.Discard, "[nolog] ", 0)
	if opts.verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	ss := NewStatementScanner(config.Trigger, config.Prefix)

	out := cmd.OutOrStdout()
	var collected strings.Builder
	if opts.toClipboard {
		out = &collected
	}

	if opts.fromClipboard {
		report, err := processClipboard(ss, out, mode)
		if err != nil {
			return err
		}
		logReport(logger, "буфер обмена", mode, report)
	} else {
		files, err := expandInput(fileName)
		if err != nil {
			return err
		}
		for _, file := range files {
			report, err := processFile(ss, file, out, mode)
			if err != nil {
				return err
			}
			logReport(logger, file, mode, report)
		}
	}

	if opts.toClipboard {
		if err := writeClipboard(collected.String()); err != nil {
			return &ResourceError{Op: "не удалось записать в буфер обмена", Err: err}
		}
		logger.Printf("результат скопирован в буфер обмена")
	}

	return nil
}

func logReport(logger *log.Logger, name string, mode Mode, report *Report) {
	logger.Printf("%s: %s, прочитано строк %d, выражений %d", name, mode, report.LinesRead, len(report.Statements))
	for _, stmt := range report.Statements {
		if stmt.Terminated {
			logger.Printf("  строки %d-%d", stmt.StartLine, stmt.EndLine)
		} else {
			logger.Printf("  строки %d-%d (нет завершающей ';' до конца файла)", stmt.StartLine, stmt.EndLine)
		}
	}
}

// execute запускает команду и возвращает код выхода процесса.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	// Неверное использование: только справка, код выхода не меняется.
	if errors.Is(err, ErrInvalidUsage) {
		showUsage(stdout)
		return 0
	}

	color.New(color.FgRed, color.Bold).Fprint(stderr, "Ошибка: ")
	fmt.Fprintln(stderr, err)
	return 1
}
