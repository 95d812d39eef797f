// Package clipboard moves elements between the editor session and the system clipboard as JSON,
// so elements can be shared between overlay instances or pasted into chat.
package clipboard

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/KirkDiggler/overlay-engine/internal/document"
	"github.com/KirkDiggler/overlay-engine/internal/domain/edit"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/atotto/clipboard"
)

//go:generate mockgen -destination=mock/mock.go -package=mockclipboard -source=clipboard.go

// Board is a text clipboard
type Board interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBoard struct{}

// System returns the operating system clipboard
func System() Board {
	return systemBoard{}
}

func (systemBoard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ovlerr.New(ovlerr.CodeUnavailable, "no clipboard utility available")
	}
	return clipboard.ReadAll()
}

func (systemBoard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ovlerr.New(ovlerr.CodeUnavailable, "no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

type envelope struct {
	Schema  string           `json:"schema"`
	Element *element.Element `json:"element"`
}

// Bridge copies session clipboard contents to and from a Board
type Bridge struct {
	board Board
}

// NewBridge creates a bridge over board, the system clipboard when nil
func NewBridge(board Board) *Bridge {
	if board == nil {
		board = System()
	}
	return &Bridge{board: board}
}

// Export writes the element to the board
func (b *Bridge) Export(e *element.Element) error {
	if e == nil {
		return ovlerr.InvalidArgument("nothing to export")
	}
	data, err := json.Marshal(envelope{Schema: document.SchemaV1, Element: e})
	if err != nil {
		return ovlerr.Wrap(err, "failed to encode element")
	}
	if err := b.board.WriteAll(string(data)); err != nil {
		return ovlerr.Unavailable(err, "failed to write clipboard")
	}
	log.Printf("[CLIPBOARD] Exported %s", e.DisplayName(e.Type()))
	return nil
}

// Import reads an element from the board. The element gets fresh ids.
func (b *Bridge) Import() (*element.Element, error) {
	text, err := b.board.ReadAll()
	if err != nil {
		return nil, ovlerr.Unavailable(err, "failed to read clipboard")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ovlerr.NotFoundf("clipboard is empty")
	}

	var env struct {
		Schema  *string         `json:"schema"`
		Element json.RawMessage `json:"element"`
	}
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return nil, ovlerr.Malformed(err, "clipboard does not hold an element")
	}
	if env.Element == nil {
		return nil, ovlerr.New(ovlerr.CodeMalformed, "clipboard does not hold an element")
	}
	if env.Schema != nil && *env.Schema != document.SchemaV1 {
		return nil, ovlerr.Schemaf("unsupported element schema %q", *env.Schema).
			WithMeta("schema", *env.Schema)
	}

	var e element.Element
	if err := json.Unmarshal(env.Element, &e); err != nil {
		return nil, ovlerr.Malformed(err, "failed to decode element")
	}
	return &e, nil
}

// ExportSession writes the session clipboard to the board
func (b *Bridge) ExportSession(s *edit.Session) error {
	clip := s.Clipboard()
	if clip == nil {
		return ovlerr.NotFoundf("session clipboard is empty")
	}
	return b.Export(clip)
}

// ImportSession replaces the session clipboard with the board's element
func (b *Bridge) ImportSession(s *edit.Session) error {
	e, err := b.Import()
	if err != nil {
		return err
	}
	s.SetClipboard(e)
	return nil
}
