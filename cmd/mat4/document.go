// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mat4/matrix"
)

// Document is the YAML interchange format of the CLI:
//
//	matrices:
//	  - name: camera
//	    cells: [1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, -5, 1]
//
// cells are flat column-major, exactly as matrix.Matrix4 encodes itself.
type Document struct {
	Matrices []Entry `yaml:"matrices"`
}

// Entry is one named matrix of a Document.
type Entry struct {
	Name  string         `yaml:"name"`
	Cells matrix.Matrix4 `yaml:"cells"`
}

// readDocument decodes a Document from path, or from stdin when path is "-".
func readDocument(path string, stdin io.Reader) (Document, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return Document{}, err
		}
		defer f.Close()
		r = f
	}

	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("%s: empty document", path)
		}
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// writeDocument encodes doc to w with two-space indentation.
func writeDocument(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
