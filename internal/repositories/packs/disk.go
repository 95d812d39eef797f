package packs

import (
	"context"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/KirkDiggler/overlay-engine/internal/uuid"
	"github.com/peterbourgon/diskv/v3"
)

const fileExt = ".json"

// DiskRepository stores one file per pack below a base directory, sharded by the first two
// characters of the key.
type DiskRepository struct {
	mu    sync.Mutex
	d     *diskv.Diskv
	uuid  uuid.Generator
	clock TimeProvider
}

// NewDiskRepository opens a disk repository rooted at dir
func NewDiskRepository(dir string, generator uuid.Generator, clock TimeProvider) *DiskRepository {
	if generator == nil {
		generator = uuid.NewGoogleGenerator()
	}
	if clock == nil {
		clock = SystemTime()
	}
	return &DiskRepository{
		d: diskv.New(diskv.Options{
			BasePath:          dir,
			AdvancedTransform: keyToPath,
			InverseTransform:  pathToKey,
			CacheSizeMax:      1024 * 1024,
		}),
		uuid:  generator,
		clock: clock,
	}
}

func keyToPath(key string) *diskv.PathKey {
	shard := key
	if len(shard) > 2 {
		shard = shard[:2]
	}
	return &diskv.PathKey{Path: []string{shard}, FileName: key + fileExt}
}

func pathToKey(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, fileExt)
}

func validKey(key string) error {
	if key == "" {
		return ovlerr.InvalidArgument("pack key is required")
	}
	if strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return ovlerr.InvalidArgumentf("pack key %q is not a valid file name", key)
	}
	return nil
}

func (r *DiskRepository) Create(ctx context.Context, pack *element.Pack) (string, error) {
	key := r.uuid.New()
	if err := validate(key, pack); err != nil {
		return "", err
	}
	if err := validKey(key); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.d.Has(key) {
		return "", ovlerr.AlreadyExistsf("pack %q already exists", key).WithMeta("pack_key", key)
	}
	return key, r.write(key, pack)
}

func (r *DiskRepository) Get(ctx context.Context, key string) (*Record, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}

	data, err := r.d.Read(key)
	if os.IsNotExist(err) {
		return nil, ovlerr.NotFoundf("pack %q not found", key).WithMeta("pack_key", key)
	}
	if err != nil {
		return nil, ovlerr.Unavailable(err, "failed to read pack")
	}
	return fromData(data)
}

func (r *DiskRepository) Save(ctx context.Context, key string, pack *element.Pack) error {
	if err := validate(key, pack); err != nil {
		return err
	}
	if err := validKey(key); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(key, pack)
}

func (r *DiskRepository) write(key string, pack *element.Pack) error {
	data, err := toData(key, pack, r.clock.Now())
	if err != nil {
		return err
	}
	if err := r.d.Write(key, data); err != nil {
		return ovlerr.Unavailable(err, "failed to write pack")
	}
	return nil
}

func (r *DiskRepository) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.d.Has(key) {
		return ovlerr.NotFoundf("pack %q not found", key).WithMeta("pack_key", key)
	}
	if err := r.d.Erase(key); err != nil {
		return ovlerr.Unavailable(err, "failed to delete pack")
	}
	return nil
}

// List reads every pack file. Files that fail to decode are logged and skipped.
func (r *DiskRepository) List(ctx context.Context) ([]*Record, error) {
	var records []*Record
	for key := range r.d.Keys(ctx.Done()) {
		record, err := r.Get(ctx, key)
		if err != nil {
			log.Printf("[PACKS] Skipping %s: %v", key, err)
			continue
		}
		records = append(records, record)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sortRecords(records)
	return records, nil
}
