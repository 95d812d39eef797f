package packs

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/document"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
)

// Data is the serialized form of a record in Redis and on disk
type Data struct {
	Key       string          `json:"key"`
	Name      string          `json:"name"`
	Layer     int             `json:"layer"`
	Document  json.RawMessage `json:"document"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toData(key string, pack *element.Pack, now time.Time) ([]byte, error) {
	doc, err := document.Save(pack)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(Data{
		Key:       key,
		Name:      pack.Name,
		Layer:     pack.Layer,
		Document:  doc,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, ovlerr.WrapWithCode(err, ovlerr.CodeInternal, "failed to marshal pack record")
	}
	return data, nil
}

func fromData(raw []byte) (*Record, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, ovlerr.Malformed(err, "failed to unmarshal pack record")
	}
	pack, err := document.Load(data.Document)
	if err != nil {
		return nil, ovlerr.Wrapf(err, "pack %q", data.Key).WithMeta("pack_key", data.Key)
	}
	return &Record{Key: data.Key, Pack: pack, UpdatedAt: data.UpdatedAt}, nil
}

func validate(key string, pack *element.Pack) error {
	if key == "" {
		return ovlerr.InvalidArgument("pack key is required")
	}
	if pack == nil {
		return ovlerr.InvalidArgument("pack cannot be nil")
	}
	return nil
}

func sortRecords(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Pack.Layer != records[j].Pack.Layer {
			return records[i].Pack.Layer < records[j].Pack.Layer
		}
		return records[i].Key < records[j].Key
	})
}
