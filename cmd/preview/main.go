package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	pages "github.com/goliatone/go-pages"
)

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the content root")
		ext        = flag.String("ext", "md", "File extension applied when discovering documents")
		sortSpec   = flag.String("sort", "", "Comma separated sort fields, e.g. date:-1,title:1")
		fields     = flag.String("fields", "", "Comma separated field projection, e.g. title,author.name")
		count      = flag.Int("count", 0, "Page size (0 disables pagination)")
		page       = flag.Int("page", 1, "Page number")
		logLevel   = flag.String("log-level", "", "Enable console logging at the given level")
	)

	flag.Parse()

	cfg := pages.DefaultConfig()
	cfg.Datasource.BasePath = *contentDir
	cfg.Datasource.Extension = *ext
	if *logLevel != "" {
		cfg.Logging = pages.LoggingConfig{
			Provider: "gologger",
			Level:    *logLevel,
			Format:   "console",
		}
	}

	module, err := pages.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	query := pages.Query{
		Sort:   parseSort(*sortSpec),
		Fields: splitList(*fields),
		Count:  *count,
		Page:   *page,
	}

	results, err := module.Datasource().Load(context.Background(), query)
	if err != nil {
		log.Fatalf("load documents: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		log.Fatalf("encode results: %v", err)
	}
}

func parseSort(spec string) []pages.SortField {
	var sorts []pages.SortField
	for _, part := range splitList(spec) {
		field, direction, found := strings.Cut(part, ":")
		entry := pages.SortField{Field: field, Direction: pages.SortAscending}
		if found {
			parsed, err := strconv.Atoi(direction)
			if err != nil {
				log.Fatalf("invalid sort direction %q: %v", part, err)
			}
			entry.Direction = parsed
		}
		sorts = append(sorts, entry)
	}
	return sorts
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
