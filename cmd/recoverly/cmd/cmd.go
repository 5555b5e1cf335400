package cmd

import (
	"encoding/json"
	"io"

	"github.com/recoverly/recoverly/internal/config"
)

// ConfigLoader is called lazily so --help works without a configured environment.
type ConfigLoader func() *config.Config

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
