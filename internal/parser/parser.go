// Package parser converts raw wire event arguments into typed records.
// It is pure string-to-struct conversion: no registry lookups, no storage,
// no callbacks. The worker layer owns those.
package parser

import (
	"fmt"
	"log/slog"
	"strconv"
)

// parseUintFromFloat parses a string that may be an integer ("32") or float
// ("32.00") into uint64. The simulation scripting layer has no integer type,
// so numbers may arrive serialized as floats.
func parseUintFromFloat(s string) (uint64, error) {
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || f != float64(uint64(f)) {
		return 0, fmt.Errorf("parseUintFromFloat: %q is not a valid uint64", s)
	}
	return uint64(f), nil
}

// parseFloat32 parses a string into float32.
func parseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// Parser provides pure []string -> record conversion.
// It has zero external dependencies beyond a logger.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new parser with only a logger dependency.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}
