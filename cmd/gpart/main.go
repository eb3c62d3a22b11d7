// Command gpart partitions a graph stored in the METIS ASCII format and
// writes the resulting assignment next to it as <graph>.part.<nparts>.
//
//	gpart mesh.graph 8
//	gpart --recursive --seed 42 mesh.graph 8
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gopartition/metis"
)

type gpartOpts struct {
	recursive bool
	contig    bool
	seed      int32
	niter     int32
	ncuts     int32
	out       string
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := gpartOpts{seed: -1, niter: 10, ncuts: 1}

	cmd := &cobra.Command{
		Use:   "gpart <graphfile> <nparts>",
		Short: "Partition a METIS-format graph into k parts",
		Long: `gpart reads a graph in the METIS ASCII format (header "n m [fmt [ncon]]",
one neighbour list per vertex, one-based ids) and partitions it into the
requested number of parts, honouring any vertex or edge weights the file
carries. The assignment is written one part id per line.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.verbose)
			nparts, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil || nparts < 1 {
				return fmt.Errorf("nparts: want a positive integer, got %q", args[1])
			}
			return runPart(logger, args[0], metis.Idx(nparts), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "use recursive bisection instead of k-way")
	cmd.Flags().BoolVar(&opts.contig, "contig", false, "force contiguous parts (k-way only)")
	cmd.Flags().Int32Var(&opts.seed, "seed", -1, "random seed (-1 for the solver default)")
	cmd.Flags().Int32Var(&opts.niter, "niter", 10, "refinement iterations per uncoarsening level")
	cmd.Flags().Int32Var(&opts.ncuts, "ncuts", 1, "number of cuts to compute, keeping the best")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output path (default <graphfile>.part.<nparts>)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func runPart(logger *log.Logger, path string, nparts metis.Idx, opts gpartOpts) error {
	gf, err := readGraphFile(path)
	if err != nil {
		return err
	}
	n := gf.vertexCount()
	logger.Debug("graph loaded",
		"vertices", n,
		"edges", len(gf.adjncy)/2,
		"ncon", gf.ncon,
		"weighted", gf.vwgt != nil || gf.adjwgt != nil)

	g, err := gf.request(nparts)
	if err != nil {
		return err
	}
	if opts.seed >= 0 {
		g.SetOption(metis.Seed(opts.seed))
	}
	g.SetOption(metis.NIter(opts.niter)).
		SetOption(metis.NCuts(opts.ncuts))
	if opts.contig {
		g.SetOption(metis.Contiguous(true))
	}

	part := make([]metis.Idx, n)
	var edgecut metis.Idx
	if opts.recursive {
		edgecut, err = g.PartRecursive(part)
	} else {
		edgecut, err = g.PartKway(part)
	}
	if err != nil {
		return err
	}
	logger.Info("partitioned", "nparts", nparts, "edgecut", edgecut)

	out := opts.out
	if out == "" {
		out = fmt.Sprintf("%s.part.%d", path, nparts)
	}
	if err := writePartition(out, part); err != nil {
		return err
	}
	logger.Info("wrote assignment", "path", out)
	return nil
}
