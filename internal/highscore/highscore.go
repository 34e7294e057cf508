// Package highscore persists best scores and finished games for the game
// package's ScoreKeeper and ResultRecorder hooks.
package highscore

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/game"
)

// ErrUnknownBackend is returned by Open for a backend name it does not know.
var ErrUnknownBackend = errors.New("unknown score backend")

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Store is a ScoreKeeper that holds a resource until closed.
type Store interface {
	game.ScoreKeeper
	Close() error
}

// Open returns the store named by backend, rooted at path.
func Open(backend, path string, logger zerolog.Logger) (Store, error) {
	switch backend {
	case BackendFile:
		return NewFileStore(path, logger), nil
	case BackendSQLite:
		return OpenSQLite(path, logger)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
