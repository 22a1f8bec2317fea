package datasource

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-pages/internal/logging"
	"github.com/goliatone/go-pages/internal/markdown"
	"github.com/goliatone/go-pages/pkg/interfaces"
)

// Config controls where the service discovers documents and how bodies are
// rendered.
type Config struct {
	// BasePath is the directory containing the source documents.
	BasePath string
	// Extension filters discovered files (defaults to "md").
	Extension string
	// Parser holds default Markdown render options.
	Parser interfaces.ParseOptions
}

// Service implements interfaces.Datasource over a directory of front-matter
// Markdown documents. Each Load operates on its own local data; the service
// holds no mutable state across requests.
type Service struct {
	cfg    Config
	loader *Loader
	parser interfaces.MarkdownParser
	logger interfaces.Logger
}

// NewService constructs a datasource service. When parser is nil, a goldmark
// parser with the configured defaults is created; a nil logger falls back to
// the no-op implementation.
func NewService(cfg Config, parser interfaces.MarkdownParser, logger interfaces.Logger) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}

	if parser == nil {
		parser = markdown.NewGoldmarkParser(cfg.Parser)
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		cfg:    cfg,
		loader: NewLoader(filesystem, cfg.Extension),
		parser: parser,
		logger: logger,
	}, nil
}

// Load reads every matching document, parses it into a record, and runs the
// query pipeline. It returns the result envelope or an error, never both; a
// single failed read or parse aborts the whole load.
func (s *Service) Load(ctx context.Context, query interfaces.Query) (*interfaces.ResultSet, error) {
	if err := query.Validate(); err != nil {
		return nil, wrapQueryError(err)
	}

	names, err := s.loader.List(".")
	if err != nil {
		return nil, wrapReadError(err)
	}

	raw, err := s.loader.ReadAll(ctx, names)
	if err != nil {
		return nil, wrapReadError(err)
	}

	records := make([]interfaces.Record, 0, len(raw))
	for _, file := range raw {
		record, err := buildRecord(file, s.parser, s.cfg.Parser)
		if err != nil {
			return nil, wrapParseError(err)
		}
		records = append(records, record)
	}

	results, pagination := Apply(records, query)

	s.logger.Debug("datasource load complete",
		"files", len(raw),
		"results", len(results),
		"paginated", pagination != nil,
	)

	return &interfaces.ResultSet{
		Results:    results,
		Pagination: pagination,
	}, nil
}

var _ interfaces.Datasource = (*Service)(nil)

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, ErrBasePathRequired
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("datasource: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
