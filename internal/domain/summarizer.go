package domain

import (
	"context"
	"errors"
	"unicode/utf8"

	"pycodemap.dev/pkg/pycodemap/internal/adapter"
	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// ErrInvalidEncoding is wrapped in an IOFailure for files that are not UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// Summarizer runs the per-file pipeline: read, parse, extract, render.
type Summarizer interface {
	// Summarize returns the report block of one file, "" when nothing in it
	// qualifies. It fails with *model.IOFailure or *model.ParseFailure.
	Summarize(ctx context.Context, path m.Path, opts m.Options) (string, error)

	// Model returns the extracted FileModel of one file.
	Model(ctx context.Context, path m.Path, opts m.Options) (m.FileModel, error)
}

type summarizer struct {
	adapter.SourceFSAdapter
	Extractor
}

// NewSummarizer creates a Summarizer reading through fsAdapter.
func NewSummarizer(fsAdapter adapter.SourceFSAdapter, extractor Extractor) Summarizer {
	return &summarizer{
		SourceFSAdapter: fsAdapter,
		Extractor:       extractor,
	}
}

func (s *summarizer) Summarize(ctx context.Context, path m.Path, opts m.Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	file, err := s.Model(ctx, path, opts)
	if err != nil {
		return "", err
	}

	return Render(file, opts), nil
}

func (s *summarizer) Model(ctx context.Context, path m.Path, opts m.Options) (m.FileModel, error) {
	src, err := s.ReadFile(path)
	if err != nil {
		return m.FileModel{}, &m.IOFailure{Path: path, Err: err}
	}

	if !utf8.Valid(src) {
		return m.FileModel{}, &m.IOFailure{Path: path, Err: ErrInvalidEncoding}
	}

	return s.Extract(ctx, path, src, opts)
}
