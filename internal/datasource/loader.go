package datasource

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-pages/internal/markdown"
	"github.com/goliatone/go-pages/pkg/interfaces"
)

// Loader discovers and reads front-matter documents from a filesystem root.
type Loader struct {
	fs        fs.FS
	extension string
}

// NewLoader constructs a Loader over the provided filesystem. The extension
// filter defaults to "md" and is matched without a leading dot.
func NewLoader(filesystem fs.FS, extension string) *Loader {
	ext := strings.TrimPrefix(strings.TrimSpace(extension), ".")
	if ext == "" {
		ext = "md"
	}
	return &Loader{
		fs:        filesystem,
		extension: ext,
	}
}

// List enumerates the files directly under dir whose extension matches the
// loader's filter. Enumeration order is not a contract; callers that need a
// specific order must sort explicitly.
func (l *Loader) List(dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("datasource list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.TrimPrefix(path.Ext(entry.Name()), ".") != l.extension {
			continue
		}
		names = append(names, path.Join(dir, entry.Name()))
	}
	return names, nil
}

// rawFile pairs a discovered path with its raw bytes.
type rawFile struct {
	path string
	data []byte
}

// ReadAll reads every named file concurrently and waits for all reads before
// returning. The fan-out is uncapped; the runtime's I/O scheduler decides
// actual parallelism. A single failed read aborts the whole batch.
func (l *Loader) ReadAll(ctx context.Context, names []string) ([]rawFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := make([]rawFile, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(l.fs, name)
			if err != nil {
				return fmt.Errorf("datasource read %s: %w", name, err)
			}
			raw[i] = rawFile{path: name, data: data}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return raw, nil
}

// buildRecord parses one raw file into a record, rendering its body to HTML.
func buildRecord(file rawFile, parser interfaces.MarkdownParser, opts interfaces.ParseOptions) (interfaces.Record, error) {
	attributes, body, err := markdown.ParseFrontMatter(file.data)
	if err != nil {
		return interfaces.Record{}, fmt.Errorf("datasource parse %s: %w", file.path, err)
	}

	html, err := parser.ParseWithOptions(body, opts)
	if err != nil {
		return interfaces.Record{}, fmt.Errorf("datasource render %s: %w", file.path, err)
	}

	base := path.Base(file.path)
	ext := strings.TrimPrefix(path.Ext(base), ".")

	return interfaces.Record{
		Meta: interfaces.RecordMeta{
			Path:      file.path,
			Handle:    strings.TrimSuffix(base, path.Ext(base)),
			Extension: ext,
		},
		Attributes: attributes,
		Original:   string(file.data),
		Content:    string(body),
		HTML:       string(html),
	}, nil
}
