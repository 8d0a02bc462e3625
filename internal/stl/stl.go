// Package stl encodes meshes in the ASCII STL interchange format and
// decodes them back for round-trip verification.
package stl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rcliao/stl-forge/internal/geometry"
)

// Encode renders mesh as an ASCII STL solid with the given name. Numbers
// are written with six fixed decimals, which is stable and round-trips
// through Decode within 1e-6 for the supported coordinate range.
func Encode(m geometry.Mesh, name string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "solid %s\n", name)
	for _, t := range m {
		fmt.Fprintf(&b, "  facet normal %.6f %.6f %.6f\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		b.WriteString("    outer loop\n")
		for _, v := range [3]geometry.Vertex{t.V0, t.V1, t.V2} {
			fmt.Fprintf(&b, "      vertex %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
		}
		b.WriteString("    endloop\n")
		b.WriteString("  endfacet\n")
	}
	fmt.Fprintf(&b, "endsolid %s\n", name)
	return b.Bytes()
}

// Decode parses an ASCII STL payload into a mesh and its solid name. It
// accepts any whitespace layout the format allows and keeps the encoded
// normals rather than recomputing them.
func Decode(data []byte) (geometry.Mesh, string, error) {
	d := &decoder{sc: bufio.NewScanner(bytes.NewReader(data))}

	f, err := d.next()
	if err != nil || f[0] != "solid" {
		return nil, "", fmt.Errorf("stl: missing solid header")
	}
	var name string
	if len(f) > 1 {
		name = strings.Join(f[1:], " ")
	}

	var m geometry.Mesh
	for {
		f, err = d.next()
		if err != nil {
			return nil, "", fmt.Errorf("stl: line %d: %w", d.line, err)
		}
		switch f[0] {
		case "endsolid":
			return m, name, nil
		case "facet":
			t, err := d.facet(f)
			if err != nil {
				return nil, "", err
			}
			m = append(m, t)
		default:
			return nil, "", fmt.Errorf("stl: line %d: unexpected token %q", d.line, f[0])
		}
	}
}

type decoder struct {
	sc   *bufio.Scanner
	line int
}

// next returns the fields of the next non-blank line.
func (d *decoder) next() ([]string, error) {
	for d.sc.Scan() {
		d.line++
		if f := strings.Fields(d.sc.Text()); len(f) > 0 {
			return f, nil
		}
	}
	if err := d.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

// facet parses one facet block. f holds the already-read facet line.
func (d *decoder) facet(f []string) (geometry.Triangle, error) {
	var t geometry.Triangle

	if len(f) != 5 || f[1] != "normal" {
		return t, fmt.Errorf("stl: line %d: malformed facet line", d.line)
	}
	n, err := d.vec(f[2:])
	if err != nil {
		return t, err
	}
	t.Normal = n

	if err := d.expect("outer", "loop"); err != nil {
		return t, err
	}
	for _, v := range [3]*geometry.Vertex{&t.V0, &t.V1, &t.V2} {
		f, err := d.next()
		if err != nil {
			return t, fmt.Errorf("stl: line %d: %w", d.line, err)
		}
		if len(f) != 4 || f[0] != "vertex" {
			return t, fmt.Errorf("stl: line %d: malformed vertex line", d.line)
		}
		*v, err = d.vec(f[1:])
		if err != nil {
			return t, err
		}
	}
	if err := d.expect("endloop"); err != nil {
		return t, err
	}
	if err := d.expect("endfacet"); err != nil {
		return t, err
	}
	return t, nil
}

func (d *decoder) expect(words ...string) error {
	f, err := d.next()
	if err != nil {
		return fmt.Errorf("stl: line %d: %w", d.line, err)
	}
	if len(f) != len(words) {
		return fmt.Errorf("stl: line %d: expected %q", d.line, strings.Join(words, " "))
	}
	for i, w := range words {
		if f[i] != w {
			return fmt.Errorf("stl: line %d: expected %q", d.line, strings.Join(words, " "))
		}
	}
	return nil
}

func (d *decoder) vec(f []string) (geometry.Vertex, error) {
	var v geometry.Vertex
	for i, p := range [3]*float64{&v.X, &v.Y, &v.Z} {
		x, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return v, fmt.Errorf("stl: line %d: bad number %q", d.line, f[i])
		}
		*p = x
	}
	return v, nil
}
