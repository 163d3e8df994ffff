package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tinylang/gotiny/internal/globals"
	"github.com/tinylang/gotiny/internal/scanner"
	"github.com/tinylang/gotiny/internal/token"
)

// NormalizeSourceName appends the .tny extension when the file name has
// none.
func NormalizeSourceName(name string) string {
	if !strings.Contains(filepath.Base(name), ".") {
		name += ".tny"
	}
	return name
}

// scanFile drives the scanner over one source file until the end-of-file
// token, reporting each lexical error as it is seen. Returns the number of
// error tokens encountered.
func scanFile(name string, echo, trace bool, listing io.Writer) (int, error) {
	source, err := os.Open(name)
	if err != nil {
		return 0, fmt.Errorf("could not open source: %w", err)
	}
	defer source.Close()

	scan := scanner.New(source, scanner.Options{Echo: echo, Trace: trace, Listing: listing})
	errors := 0
	for {
		tok := scan.GetToken()
		if tok.Type == token.ENDFILE {
			break
		}
		if tok.Type == token.ERROR {
			errors++
			globals.ReportError(tok.Line, fmt.Sprintf("invalid token %q", tok.Lexeme))
		}
	}
	return errors, nil
}

func runCompile(name string) error {
	return compile(name, os.Stdout)
}

func compile(name string, listing io.Writer) error {
	logger := logrus.StandardLogger()

	name = NormalizeSourceName(name)
	if _, err := os.Stat(name); err != nil {
		logger.Errorf("File %s not found", name)
		return err
	}

	cfg, err := LoadConfig(filepath.Dir(name))
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	echo, trace := true, true
	if cfg.Echo != nil {
		echo = *cfg.Echo
	}
	if cfg.Trace != nil {
		trace = *cfg.Trace
	}
	if noEcho {
		echo = false
	}
	if noTrace {
		trace = false
	}

	globals.HadError = false
	fmt.Fprintf(listing, "\nCOMPILATION: %s\n", name)

	errors, err := scanFile(name, echo, trace, listing)
	if err != nil {
		return err
	}
	if globals.HadError {
		logger.Warnf("%d lexical errors in %s", errors, name)
	}
	return nil
}
