package overlay

import (
	"context"
	"os"

	"github.com/KirkDiggler/overlay-engine/internal/document"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"golang.org/x/sync/errgroup"
)

const maxParallelLoads = 8

// LoadFiles decodes pack documents concurrently. The result keeps the order of paths;
// the first failure cancels the rest.
func LoadFiles(ctx context.Context, paths []string) ([]*element.Pack, error) {
	loaded := make([]*element.Pack, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pack, err := loadFile(path)
			if err != nil {
				return ovlerr.Wrapf(err, "failed to load %s", path).WithMeta("path", path)
			}
			loaded[i] = pack
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}

func loadFile(path string) (*element.Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ovlerr.NotFoundf("file %s does not exist", path)
		}
		return nil, ovlerr.Unavailable(err, "failed to open file")
	}
	defer f.Close()
	return document.Read(f)
}
