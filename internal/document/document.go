// Package document reads and writes the persisted pack format: a pack object with a
// "schema" key. Documents written before the key existed are read as v1.
package document

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	"github.com/KirkDiggler/overlay-engine/internal/domain/jsonshape"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
)

// SchemaV1 is the only schema this build reads and writes
const SchemaV1 = "v1"

type envelope struct {
	Schema string `json:"schema"`
}

// Load decodes a pack document. Elements that fail to decode are skipped inside the pack;
// a document that is not a pack at all is an error.
func Load(data []byte) (*element.Pack, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ovlerr.InvalidArgument("document is empty")
	}

	raw, ok, err := jsonshape.Field(data, "schema")
	if err != nil {
		return nil, ovlerr.Malformed(err, "document is not a JSON object")
	}

	schema := SchemaV1
	if ok {
		if err := json.Unmarshal(raw, &schema); err != nil {
			return nil, ovlerr.Malformed(err, "schema must be a string")
		}
	}
	if schema != SchemaV1 {
		return nil, ovlerr.Schemaf("unsupported document schema %q", schema).
			WithMeta("schema", schema)
	}

	var pack element.Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, ovlerr.Malformed(err, "failed to decode pack")
	}
	return &pack, nil
}

// Read loads a document from r
func Read(r io.Reader) (*element.Pack, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ovlerr.Wrap(err, "failed to read document")
	}
	return Load(data)
}

// Save encodes a pack as an indented v1 document
func Save(pack *element.Pack) ([]byte, error) {
	if pack == nil {
		return nil, ovlerr.InvalidArgument("pack cannot be nil")
	}

	data, err := jsonshape.Merge(envelope{Schema: SchemaV1}, pack)
	if err != nil {
		return nil, ovlerr.WrapWithCode(err, ovlerr.CodeInternal, "failed to encode pack")
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, ovlerr.WrapWithCode(err, ovlerr.CodeInternal, "failed to indent document")
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Write saves a document to w
func Write(w io.Writer, pack *element.Pack) error {
	data, err := Save(pack)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return ovlerr.Wrap(err, "failed to write document")
	}
	return nil
}
