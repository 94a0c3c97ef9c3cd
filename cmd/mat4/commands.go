// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/schollz/progressbar/v3"

	"github.com/katalvlaran/mat4/matrix"
	"github.com/katalvlaran/mat4/matrix/batch"
	"github.com/katalvlaran/mat4/store"
)

// newFlagSet returns a ContinueOnError flag set that reports to e.stderr.
func newFlagSet(name string, e env) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	return fs
}

// parseArgs parses args into fs and requires exactly one positional argument.
func parseArgs(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", errUsage
	}
	if fs.NArg() != 1 {
		return "", errUsage
	}

	return fs.Arg(0), nil
}

// epsilonOption validates a user supplied threshold before it reaches
// matrix.WithEpsilon, which panics on bad input.
func epsilonOption(eps float64) (matrix.Option, error) {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, fmt.Errorf("-eps %v: must be finite and >= 0: %w", eps, errUsage)
	}

	return matrix.WithEpsilon(eps), nil
}

// runDet prints "name<TAB>det" for every matrix of a document.
func runDet(_ context.Context, e env, args []string) error {
	fs := newFlagSet("det", e)
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	doc, err := readDocument(path, e.stdin)
	if err != nil {
		return err
	}
	for _, m := range doc.Matrices {
		fmt.Fprintf(e.stdout, "%s\t%g\n", m.Name, m.Cells.Determinant())
	}

	return nil
}

// runInvert writes a document holding the inverse of every invertible input
// matrix. Matrices that cannot be inverted (singular, or with an inverse
// outside the float32 range) are logged and omitted, and make the command
// fail once the output is written. The output always decodes again.
func runInvert(_ context.Context, e env, args []string) error {
	fs := newFlagSet("invert", e)
	eps := fs.Float64("eps", matrix.DefaultEpsilon, "treat |det| <= eps as singular")
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	epsOpt, err := epsilonOption(*eps)
	if err != nil {
		return err
	}

	doc, err := readDocument(path, e.stdin)
	if err != nil {
		return err
	}
	out := Document{Matrices: make([]Entry, 0, len(doc.Matrices))}
	failed := 0
	for _, m := range doc.Matrices {
		inv, err := m.Cells.Inverse(epsOpt)
		if err != nil {
			e.log.Warn("skipping matrix", "name", m.Name, "err", err)
			failed++
			continue
		}
		out.Matrices = append(out.Matrices, Entry{Name: m.Name, Cells: inv})
	}
	if err = writeDocument(e.stdout, out); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d matrices could not be inverted", failed, len(doc.Matrices))
	}

	return nil
}

// runPack creates a store sized for the document (or -cap) and appends every
// matrix in document order.
func runPack(_ context.Context, e env, args []string) (err error) {
	fs := newFlagSet("pack", e)
	dst := fs.String("o", "", "output store path")
	capacity := fs.Int("cap", 0, "store capacity (default: number of matrices)")
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if *dst == "" || *capacity < 0 {
		return errUsage
	}

	doc, err := readDocument(path, e.stdin)
	if err != nil {
		return err
	}
	n := *capacity
	if n == 0 {
		n = max(len(doc.Matrices), 1)
	}

	s, err := store.Create(*dst, n, store.WithLogger(e.log))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	for _, m := range doc.Matrices {
		if _, err = s.Append(m.Cells); err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
	}
	e.log.Info("packed", "path", *dst, "len", s.Len(), "cap", s.Cap())

	return nil
}

// runInvertStore inverts every record of a store on a worker pool and writes
// the results back in place. Records that cannot be inverted are left
// untouched. Every result is checked before the first write, so a failure
// never leaves the store partly inverted.
func runInvertStore(ctx context.Context, e env, args []string) (err error) {
	fs := newFlagSet("invert-store", e)
	eps := fs.Float64("eps", matrix.DefaultEpsilon, "treat |det| <= eps as singular")
	workers := fs.Int("workers", batch.DefaultWorkers, "worker count (0: GOMAXPROCS)")
	progress := fs.Bool("progress", false, "show a progress bar while writing back")
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if *workers < 0 {
		return errUsage
	}
	epsOpt, err := epsilonOption(*eps)
	if err != nil {
		return err
	}

	s, err := store.Open(path, store.WithLogger(e.log))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()

	in, err := s.All()
	if err != nil {
		return err
	}
	opts := []batch.Option{batch.WithMatrixOptions(epsOpt)}
	if *workers > 0 {
		opts = append(opts, batch.WithWorkers(*workers))
	}
	out, err := batch.Invert(ctx, in, opts...)
	failed := make(map[int]bool)
	for _, ie := range batch.ItemErrors(err) {
		e.log.Warn("leaving record untouched", "index", ie.Index, "err", ie.Err)
		failed[ie.Index] = true
	}
	if err != nil && len(failed) == 0 {
		return err
	}
	for i, m := range out {
		if !failed[i] && !m.IsFinite() {
			e.log.Warn("leaving record untouched", "index", i, "err", matrix.ErrNaNInf)
			failed[i] = true
		}
	}

	var bar *progressbar.ProgressBar
	if *progress {
		bar = progressbar.NewOptions(len(out),
			progressbar.OptionSetWriter(e.stderr),
			progressbar.OptionSetDescription("write back"),
		)
	}
	for i, m := range out {
		if !failed[i] {
			if err = s.Put(i, m); err != nil {
				return err
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(e.stderr)
	}
	if err = s.Flush(); err != nil {
		return err
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d records could not be inverted", len(failed), len(out))
	}

	return nil
}

// runDump prints every record of a store as a document, naming records by
// index.
func runDump(_ context.Context, e env, args []string) error {
	fs := newFlagSet("dump", e)
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	s, err := store.Open(path, store.WithReadOnly(), store.WithLogger(e.log))
	if err != nil {
		return err
	}
	defer s.Close()

	all, err := s.All()
	if err != nil {
		return err
	}

	return writeDump(e.stdout, all)
}

func writeDump(w io.Writer, all []matrix.Matrix4) error {
	doc := Document{Matrices: make([]Entry, len(all))}
	for i, m := range all {
		doc.Matrices[i] = Entry{Name: fmt.Sprintf("m%d", i), Cells: m}
	}

	return writeDocument(w, doc)
}
