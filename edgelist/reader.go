package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/quickunion/unionfind"
)

// Read parses an edge list from r.
//
// Error Conditions:
//   - ErrEmptyInput       : no tokens at all.
//   - ErrMalformedToken   : a token is not an integer (the error names its 1-based position).
//   - ErrNegativeVertices : the vertex count is negative.
//   - ErrDanglingVertex   : an odd number of endpoint tokens.
//   - any read error from r, wrapped.
//
// Complexity: O(T) for T tokens.
func Read(r io.Reader) (*EdgeList, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// 1. Vertex count.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("edgelist: read: %w", err)
		}
		return nil, ErrEmptyInput
	}
	n, err := parseToken(sc.Text(), 1)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeVertices, n)
	}

	// 2. Endpoint pairs until EOF.
	list := &EdgeList{NumVertices: n}
	pos := 1
	var (
		pending int
		half    bool
	)
	for sc.Scan() {
		pos++
		v, err := parseToken(sc.Text(), pos)
		if err != nil {
			return nil, err
		}
		if !half {
			pending, half = v, true
			continue
		}
		list.Edges = append(list.Edges, unionfind.Edge{P: pending, Q: v})
		half = false
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if half {
		return nil, fmt.Errorf("%w: token %d (%d)", ErrDanglingVertex, pos, pending)
	}

	return list, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	defer f.Close()

	return Read(f)
}

// parseToken converts one token, tagging failures with its position.
func parseToken(tok string, pos int) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q", ErrMalformedToken, pos, tok)
	}

	return v, nil
}
