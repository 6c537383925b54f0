// Package transfer moves quote lists between the store and JSON files.
package transfer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/quotes/pkg/app"
)

// Stdio is the file name that selects stdin or stdout.
const Stdio = "-"

// Export writes every quote to File, app.ExportFileName by default.
type Export struct {
	Service *app.Service
	File    string
	Out     io.Writer
}

func (e *Export) Do(ctx context.Context) error {
	if e.Service == nil {
		return app.ErrNoPersistence
	}
	out := output(e.Out)
	if e.File == Stdio {
		return e.Service.Export(ctx, out)
	}

	name := e.File
	if name == "" {
		name = app.ExportFileName
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := e.Service.Export(ctx, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	list, err := e.Service.Quotes(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Exported %d quotes to %s\n", len(list), name)
	return nil
}

// Import appends the quotes in File, which must hold a JSON array.
type Import struct {
	Service *app.Service
	File    string
	In      io.Reader
	Out     io.Writer
}

func (i *Import) Do(ctx context.Context) error {
	if i.Service == nil {
		return app.ErrNoPersistence
	}

	var r io.Reader
	if i.File == Stdio {
		r = i.In
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(i.File)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		defer f.Close()
		r = f
	}

	n, err := i.Service.Import(ctx, r)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(output(i.Out), "Quotes imported successfully! (%d added)\n", n)
	return nil
}

func output(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return color.Output
}
