package boards

import (
	_ "embed"

	"github.com/vovakirdan/astrobots/internal/boards/formats"
)

//go:embed builtin/classic.yaml
var classicYAML []byte

// Classic returns the built-in 5x5 board shipped with the binary, used by
// `astrobots play --default`.
func Classic() Board {
	// The embedded file is validated by tests; a parse failure here is a
	// build defect, not a runtime condition.
	parsed, err := formats.ParseYAML(classicYAML)
	if err != nil {
		panic("boards: embedded classic board is invalid: " + err.Error())
	}

	return Board{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Metadata: parsed.Metadata,
	}
}
