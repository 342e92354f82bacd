//go:build tools
// +build tools

package tools

// Tool dependencies tracked in go.mod; used by make targets, not by the binaries.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
)
