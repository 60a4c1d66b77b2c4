package osmload

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

type Format int

const (
	FormatXML Format = iota + 1
	FormatPBF
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatPBF:
		return "pbf"
	}
	return "unknown"
}

// DetectFormat guesses the encoding from the file name. A trailing ".zst"
// marks zstd compression on top of either format.
func DetectFormat(name string) (format Format, compressed bool, err error) {
	name = strings.ToLower(name)
	if trimmed, ok := strings.CutSuffix(name, ".zst"); ok {
		name = trimmed
		compressed = true
	}

	switch {
	case strings.HasSuffix(name, ".pbf"):
		return FormatPBF, compressed, nil
	case strings.HasSuffix(name, ".osm"), strings.HasSuffix(name, ".xml"):
		return FormatXML, compressed, nil
	}
	return 0, compressed, fmt.Errorf("file extension of '%s' is not handled", name)
}

type osmScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

func newScanner(ctx context.Context, r io.Reader, format Format, threads int) (osmScanner, error) {
	switch format {
	case FormatXML:
		return osmxml.New(ctx, r), nil
	case FormatPBF:
		scanner := osmpbf.New(ctx, r, threads)
		scanner.SkipRelations = true
		return scanner, nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
