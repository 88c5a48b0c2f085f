package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"rowdb/dberr"
	"rowdb/row"
	"rowdb/table"
)

// runREPL reads lines until .exit or EOF, dispatching each to a
// meta-command or a statement, and returns the process exit code.
// EOF on input is treated the same as .exit. The caller is
// responsible for calling os.Exit with the returned code once this
// function has returned, so that rl.Close() below has already run and
// the terminal is out of raw mode.
func runREPL(tbl *table.Table, logger *zap.Logger) int {
	rl, err := readline.New("db > ")
	if err != nil {
		fmt.Printf("Could not start input reader: %v\n", err)
		return closeTable(tbl, logger, 1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			// Ctrl-C aborts the in-progress line only, matching how
			// every REPL in the corpus treats it.
			continue
		}
		if errors.Is(err, io.EOF) {
			return closeTable(tbl, logger, 0)
		}
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			continue
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, ".") {
			switch handleMetaCommand(input, tbl) {
			case MetaCommandExit:
				return closeTable(tbl, logger, 0)
			case MetaCommandUnrecognizedCommand:
				fmt.Printf("Unrecognized command '%s'\n", input)
			}
			continue
		}

		var stmt Statement
		switch prepareStatement(input, &stmt) {
		case PrepareUnrecognizedStatement:
			fmt.Printf("Unrecognized keyword at start of %s\n", input)
			continue
		case PrepareSyntaxError:
			fmt.Println("Syntax error: could not parse statement.")
			continue
		case PrepareNegativeID:
			fmt.Println("ID must be positive.")
			continue
		case PrepareStringTooLong:
			fmt.Println("String is too long.")
			continue
		}

		executeAndReport(&stmt, tbl, logger)
	}
}

func executeAndReport(stmt *Statement, tbl *table.Table, logger *zap.Logger) {
	switch stmt.Type {
	case StatementInsert:
		err := executeInsert(stmt, tbl)
		switch {
		case err == nil:
			fmt.Println("Executed.")
		case errors.Is(err, dberr.ErrTableFull):
			fmt.Println("Error: Table full.")
		case errors.Is(err, dberr.ErrDuplicateKey):
			fmt.Println("Error: Duplicate key.")
		default:
			logger.Warn("insert failed", zap.Error(err))
			fmt.Printf("Error: %v\n", err)
		}
	case StatementSelect:
		err := executeSelect(tbl, func(r row.Row) error {
			fmt.Println(FormatRow(r))
			return nil
		})
		if err != nil {
			logger.Warn("select failed", zap.Error(err))
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Executed.")
	}
}

// closeTable flushes and closes tbl and returns the exit code the
// caller should propagate. It does not itself exit the process, so
// runREPL's own deferred cleanup (closing readline) still runs.
func closeTable(tbl *table.Table, logger *zap.Logger, code int) int {
	if err := tbl.Close(); err != nil {
		fmt.Printf("Error closing database: %v\n", err)
		logger.Warn("close failed", zap.Error(err))
		if code == 0 {
			code = 1
		}
	} else {
		logger.Info("closed database")
	}
	return code
}
