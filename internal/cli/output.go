// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-psyche-vault/internal/service"
)

// errReported marks an error that was already printed.
var errReported = errors.New("error reported")

type printer struct {
	out    io.Writer
	errOut io.Writer
	json   bool
}

// render prints the outcome of one service call. On failure the returned
// error wraps errReported so that the caller does not print it again.
func render[T any](p *printer, data T, err error, text func(w io.Writer, data T)) error {
	if p.json {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(service.ToResult(data, err)); encErr != nil {
			return fmt.Errorf("encode result: %w", encErr)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", errReported, err)
		}
		return nil
	}

	if err != nil {
		p.failure(err)
		return fmt.Errorf("%w: %w", errReported, err)
	}
	text(p.out, data)
	return nil
}

func (p *printer) failure(err error) {
	fmt.Fprintf(p.errOut, "%s %s\n", color.RedString("✗"), service.MessageOf(err))

	var coded *service.CodedError
	if errors.As(err, &coded) {
		fmt.Fprintf(p.errOut, "  %s %s\n", color.HiBlackString("code:"), color.YellowString(string(coded.Code)))
		return
	}
	fmt.Fprintf(p.errOut, "  %s %v\n", color.HiBlackString("detail:"), err)
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

func field(w io.Writer, name string, value any) {
	fmt.Fprintf(w, "  %-20s %v\n", name+":", value)
}
