package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gopartition/metis"
)

// graphFile is a graph read from the METIS ASCII format: a header line
// "n m [fmt [ncon]]" followed by one line per vertex listing its
// neighbours with one-based ids. The fmt field is a three-digit flag
// word: 100 marks vertex sizes, 010 vertex weights, 001 edge weights.
// Lines starting with '%' are comments.
type graphFile struct {
	ncon   metis.Idx
	xadj   []metis.Idx
	adjncy []metis.Idx
	vwgt   []metis.Idx // ncon weights per vertex, nil when absent
	vsize  []metis.Idx // one size per vertex, nil when absent
	adjwgt []metis.Idx // one weight per adjacency entry, nil when absent
}

func (gf *graphFile) vertexCount() int { return len(gf.xadj) - 1 }

// request builds a validated partitioning request from the parsed
// arrays, attaching whatever optional weights the file carried.
func (gf *graphFile) request(nparts metis.Idx) (*metis.Graph, error) {
	g, err := metis.NewGraph(gf.ncon, nparts, gf.xadj, gf.adjncy)
	if err != nil {
		return nil, err
	}
	if gf.vwgt != nil {
		g.SetVwgt(gf.vwgt)
	}
	if gf.vsize != nil {
		g.SetVsize(gf.vsize)
	}
	if gf.adjwgt != nil {
		g.SetAdjwgt(gf.adjwgt)
	}
	return g, nil
}

func readGraphFile(path string) (*graphFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	gf, err := parseGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gf, nil
}

func parseGraph(r io.Reader) (*graphFile, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	header, err := nextLine(sc)
	if err != nil {
		return nil, fmt.Errorf("missing header line")
	}
	fields := strings.Fields(header)
	if len(fields) < 2 || len(fields) > 4 {
		return nil, fmt.Errorf("header: want \"n m [fmt [ncon]]\", got %q", header)
	}

	nvtxs, err := parseCount(fields[0])
	if err != nil {
		return nil, fmt.Errorf("header: vertex count: %w", err)
	}
	nedges, err := parseCount(fields[1])
	if err != nil {
		return nil, fmt.Errorf("header: edge count: %w", err)
	}

	var hasVsize, hasVwgt, hasAdjwgt bool
	if len(fields) >= 3 {
		if len(fields[2]) > 3 || strings.Trim(fields[2], "01") != "" {
			return nil, fmt.Errorf("header: bad fmt field %q", fields[2])
		}
		flags, _ := strconv.Atoi(fields[2])
		hasVsize = flags/100%10 == 1
		hasVwgt = flags/10%10 == 1
		hasAdjwgt = flags%10 == 1
	}
	ncon := 1
	if len(fields) == 4 {
		if ncon, err = parseCount(fields[3]); err != nil || ncon < 1 {
			return nil, fmt.Errorf("header: bad ncon field %q", fields[3])
		}
	}

	gf := &graphFile{
		ncon:   metis.Idx(ncon),
		xadj:   make([]metis.Idx, 1, nvtxs+1),
		adjncy: make([]metis.Idx, 0, 2*nedges),
	}
	if hasVwgt {
		gf.vwgt = make([]metis.Idx, 0, ncon*nvtxs)
	}
	if hasVsize {
		gf.vsize = make([]metis.Idx, 0, nvtxs)
	}
	if hasAdjwgt {
		gf.adjwgt = make([]metis.Idx, 0, 2*nedges)
	}

	for v := 0; v < nvtxs; v++ {
		line, err := nextLine(sc)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", v+1, err)
		}
		tokens := strings.Fields(line)
		i := 0

		if hasVsize {
			if i >= len(tokens) {
				return nil, fmt.Errorf("vertex %d: missing size", v+1)
			}
			s, err := parseIdx(tokens[i])
			if err != nil {
				return nil, fmt.Errorf("vertex %d: size: %w", v+1, err)
			}
			gf.vsize = append(gf.vsize, s)
			i++
		}
		if hasVwgt {
			for c := 0; c < ncon; c++ {
				if i >= len(tokens) {
					return nil, fmt.Errorf("vertex %d: want %d weights", v+1, ncon)
				}
				w, err := parseIdx(tokens[i])
				if err != nil {
					return nil, fmt.Errorf("vertex %d: weight: %w", v+1, err)
				}
				gf.vwgt = append(gf.vwgt, w)
				i++
			}
		}

		for i < len(tokens) {
			u, err := parseIdx(tokens[i])
			if err != nil {
				return nil, fmt.Errorf("vertex %d: neighbour: %w", v+1, err)
			}
			if u < 1 || int(u) > nvtxs {
				return nil, fmt.Errorf("vertex %d: neighbour %d out of range 1..%d", v+1, u, nvtxs)
			}
			gf.adjncy = append(gf.adjncy, u-1) // file is one-based
			i++
			if hasAdjwgt {
				if i >= len(tokens) {
					return nil, fmt.Errorf("vertex %d: neighbour %d: missing edge weight", v+1, u)
				}
				w, err := parseIdx(tokens[i])
				if err != nil {
					return nil, fmt.Errorf("vertex %d: edge weight: %w", v+1, err)
				}
				gf.adjwgt = append(gf.adjwgt, w)
				i++
			}
		}
		gf.xadj = append(gf.xadj, metis.Idx(len(gf.adjncy)))
	}

	if got := len(gf.adjncy); got != 2*nedges {
		return nil, fmt.Errorf("header claims %d edges but lists %d adjacency entries (want %d)", nedges, got, 2*nedges)
	}
	return gf, nil
}

// nextLine returns the next non-comment line, skipping '%' lines and
// blank-padding around them. A line of only whitespace is a valid
// (isolated) vertex line and is returned as-is.
func nextLine(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "%") {
			continue
		}
		return line, nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad count %q", s)
	}
	return n, nil
}

func parseIdx(s string) (metis.Idx, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad integer %q", s)
	}
	return metis.Idx(n), nil
}

// writePartition writes one part id per line, vertex order, the layout
// downstream METIS tooling expects from a .part.<nparts> file.
func writePartition(path string, part []metis.Idx) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, p := range part {
		fmt.Fprintln(w, p)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
