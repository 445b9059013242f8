package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ntyt123/stock-manager-sub001/renderer"
)

// Output formats.
const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatPretty   = "pretty"
	formatHTML     = "html"
	formatMsgpack  = "msgpack"
)

var formats = []string{formatJSON, formatMarkdown, formatPretty, formatHTML, formatMsgpack}

// output holds the flags shared by the report commands.
type output struct {
	format string
	query  string
	style  string
	width  int
}

func (o *output) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.format, "format", formatPretty, "Output format: json, markdown, pretty, html or msgpack")
	f.StringVar(&o.query, "query", "", "JSONPath expression selecting part of the report, json and msgpack formats only")
	f.StringVar(&o.style, "style", "", "Terminal style of the pretty format (dark, light, notty...), detected by default")
	f.IntVar(&o.width, "width", 100, "Word wrap width of the pretty format")
}

// check validates the flags before any work is done.
func (o *output) check() error {
	if !slices.Contains(formats, o.format) {
		return fmt.Errorf("unknown format %q, want one of %v", o.format, formats)
	}
	if o.query != "" && o.format != formatJSON && o.format != formatMsgpack {
		return fmt.Errorf("-query requires the json or msgpack format")
	}
	return nil
}

// write prints report in the selected format. markdown renders the report
// in the session currency.
func (o *output) write(w io.Writer, report any, title string, markdown func() string) error {
	switch o.format {
	case formatJSON, formatMsgpack:
		v, err := o.tree(report)
		if err != nil {
			return err
		}
		if o.format == formatMsgpack {
			data, err := msgpack.Marshal(v)
			if err != nil {
				return fmt.Errorf("could not encode msgpack: %w", err)
			}
			_, err = w.Write(data)
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatMarkdown:
		_, err := io.WriteString(w, markdown())
		return err
	case formatHTML:
		page, err := renderer.HTMLPage(title, markdown())
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	default:
		text, err := renderer.Terminal(markdown(), o.style, o.width)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	}
}

// tree returns the generic JSON form of report, narrowed by the query.
func (o *output) tree(report any) (any, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("could not encode report: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	if o.query == "" {
		return v, nil
	}
	v, err = jsonpath.Get(o.query, v)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", o.query, err)
	}
	return v, nil
}
