package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrMalformed = errors.New("malformed obj")

// LoadOBJ reads a mesh from the OBJ file at path.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model %q: %w", path, err)
	}
	defer f.Close()
	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", path, err)
	}
	return m, nil
}

// ParseOBJ reads v, vt, vn and f statements. Faces with more than three
// corners are split into a triangle fan. Identical position/uv/normal
// triples share one vertex. Other statements are ignored.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions []mgl32.Vec3
		uvs       []mgl32.Vec2
		normals   []mgl32.Vec3
		mesh      = &Mesh{}
		seen      = make(map[[3]int]uint32)
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			uvs = append(uvs, mgl32.Vec2{v[0], v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})
		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, lineErr(lineNo, fmt.Errorf("%w: face needs at least 3 vertices, got %d", ErrMalformed, len(corners)))
			}
			face := make([]uint32, len(corners))
			for i, c := range corners {
				key, err := parseCorner(c, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, lineErr(lineNo, err)
				}
				idx, ok := seen[key]
				if !ok {
					v := Vertex{Position: positions[key[0]]}
					if key[1] >= 0 {
						v.UV = uvs[key[1]]
					}
					if key[2] >= 0 {
						v.Normal = normals[key[2]]
					}
					idx = uint32(len(mesh.Vertices))
					mesh.Vertices = append(mesh.Vertices, v)
					seen[key] = idx
				}
				face[i] = idx
			}
			for i := 1; i+1 < len(face); i++ {
				mesh.Indices = append(mesh.Indices, face[0], face[i], face[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("%w: no faces", ErrMalformed)
	}
	return mesh, nil
}

func lineErr(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrMalformed, n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseCorner turns "p", "p/t", "p//n" or "p/t/n" into zero-based indices,
// -1 marking an absent uv or normal.
func parseCorner(s string, np, nt, nn int) ([3]int, error) {
	key := [3]int{-1, -1, -1}
	parts := strings.Split(s, "/")
	if len(parts) > 3 || parts[0] == "" {
		return key, fmt.Errorf("%w: bad face vertex %q", ErrMalformed, s)
	}
	counts := [3]int{np, nt, nn}
	for i, p := range parts {
		if p == "" {
			continue
		}
		idx, err := strconv.Atoi(p)
		if err != nil {
			return key, fmt.Errorf("%w: bad face vertex %q", ErrMalformed, s)
		}
		switch {
		case idx > 0:
			idx--
		case idx < 0:
			idx += counts[i]
		default:
			return key, fmt.Errorf("%w: zero index in %q", ErrMalformed, s)
		}
		if idx < 0 || idx >= counts[i] {
			return key, fmt.Errorf("%w: index out of range in %q", ErrMalformed, s)
		}
		key[i] = idx
	}
	return key, nil
}
