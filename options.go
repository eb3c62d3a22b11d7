package metis

// Fine-tuning parameter types for the METIS options vector.
//
// Each recognized parameter is its own type occupying a fixed slot in the
// [NOptions]Idx vector; slot indices and enum encodings are bridged from
// metis.h in capi.go, so the Go side cannot drift from the solver ABI.
// The set is closed: Option has an unexported method, so no type outside
// this package can claim a slot.
//
// No cross-parameter consistency is validated here. METIS is the
// authority on which combinations are meaningful; a slot left at -1 means
// "use the solver default".

// Option is a single fine-tuning parameter, settable on a Graph or Mesh
// via SetOption. The set of implementations is sealed.
type Option interface {
	// slot is the fixed index of this parameter in the options vector.
	slot() int
	// encode converts the parameter to METIS' integer representation.
	encode() Idx
}

// boolIdx encodes a flag option the way METIS expects (0 or 1).
func boolIdx(b bool) Idx {
	if b {
		return 1
	}
	return 0
}

// PartitioningMethod selects the multilevel partitioning scheme
// (METIS_OPTION_PTYPE).
type PartitioningMethod Idx

const (
	// MethodRecursive selects multilevel recursive bisectioning.
	MethodRecursive PartitioningMethod = PartitioningMethod(ptypeRB)
	// MethodKway selects multilevel k-way partitioning.
	MethodKway PartitioningMethod = PartitioningMethod(ptypeKway)
)

func (PartitioningMethod) slot() int { return optPType }
func (m PartitioningMethod) encode() Idx { return Idx(m) }

// ObjectiveType selects the quantity the partitioning minimizes
// (METIS_OPTION_OBJTYPE).
type ObjectiveType Idx

const (
	// ObjectiveEdgeCut minimizes the edge-cut.
	ObjectiveEdgeCut ObjectiveType = ObjectiveType(objtypeCut)
	// ObjectiveVolume minimizes the total communication volume.
	ObjectiveVolume ObjectiveType = ObjectiveType(objtypeVol)
)

func (ObjectiveType) slot() int { return optObjType }
func (o ObjectiveType) encode() Idx { return Idx(o) }

// CoarseningType selects the matching scheme used during coarsening
// (METIS_OPTION_CTYPE).
type CoarseningType Idx

const (
	// CoarsenRandomMatching uses random matching.
	CoarsenRandomMatching CoarseningType = CoarseningType(ctypeRM)
	// CoarsenSortedHeavyEdge uses sorted heavy-edge matching.
	CoarsenSortedHeavyEdge CoarseningType = CoarseningType(ctypeShem)
)

func (CoarseningType) slot() int { return optCType }
func (c CoarseningType) encode() Idx { return Idx(c) }

// InitialPartitioningType selects the algorithm computing the initial
// partitioning (METIS_OPTION_IPTYPE).
type InitialPartitioningType Idx

const (
	// InitialGrow grows a bisection using a greedy strategy.
	InitialGrow InitialPartitioningType = InitialPartitioningType(iptypeGrow)
	// InitialRandom computes a random bisection followed by refinement.
	InitialRandom InitialPartitioningType = InitialPartitioningType(iptypeRandom)
	// InitialEdge derives a separator from an edge cut.
	InitialEdge InitialPartitioningType = InitialPartitioningType(iptypeEdge)
	// InitialNode grows a bisection using a greedy node-based strategy.
	InitialNode InitialPartitioningType = InitialPartitioningType(iptypeNode)
)

func (InitialPartitioningType) slot() int { return optIPType }
func (i InitialPartitioningType) encode() Idx { return Idx(i) }

// RefinementType selects the refinement algorithm
// (METIS_OPTION_RTYPE).
type RefinementType Idx

const (
	// RefineFM uses FM-based cut refinement.
	RefineFM RefinementType = RefinementType(rtypeFM)
	// RefineGreedy uses greedy-based cut and volume refinement.
	RefineGreedy RefinementType = RefinementType(rtypeGreedy)
	// RefineTwoSidedFM uses two-sided node FM refinement.
	RefineTwoSidedFM RefinementType = RefinementType(rtypeSep2Sided)
	// RefineOneSidedFM uses one-sided node FM refinement.
	RefineOneSidedFM RefinementType = RefinementType(rtypeSep1Sided)
)

func (RefinementType) slot() int { return optRType }
func (r RefinementType) encode() Idx { return Idx(r) }

// NCuts is the number of different partitionings METIS computes, keeping
// the one with the best objective. Default 1 (METIS_OPTION_NCUTS).
type NCuts Idx

func (NCuts) slot() int { return optNCuts }
func (n NCuts) encode() Idx { return Idx(n) }

// NSeps is the number of different separators METIS computes at each
// level of nested dissection, keeping the smallest. Default 1
// (METIS_OPTION_NSEPS).
type NSeps Idx

func (NSeps) slot() int { return optNSeps }
func (n NSeps) encode() Idx { return Idx(n) }

// Numbering selects the numbering convention of the adjacency arrays
// (METIS_OPTION_NUMBERING). Terminal Part* calls force NumberingC, since
// everything this package validates is zero-based; a caller-set value is
// overridden.
type Numbering Idx

const (
	// NumberingC is 0-based, C-style numbering.
	NumberingC Numbering = 0
	// NumberingFortran is 1-based, Fortran-style numbering.
	NumberingFortran Numbering = 1
)

func (Numbering) slot() int { return optNumbering }
func (n Numbering) encode() Idx { return Idx(n) }

// NIter is the number of refinement iterations at each uncoarsening
// stage. Default 10 (METIS_OPTION_NITER).
type NIter Idx

func (NIter) slot() int { return optNIter }
func (n NIter) encode() Idx { return Idx(n) }

// Seed seeds the METIS random number generator (METIS_OPTION_SEED).
type Seed Idx

func (Seed) slot() int { return optSeed }
func (s Seed) encode() Idx { return Idx(s) }

// MinConn asks METIS to minimize the maximum degree of the subdomain
// graph (METIS_OPTION_MINCONN).
type MinConn bool

func (MinConn) slot() int { return optMinConn }
func (m MinConn) encode() Idx { return boolIdx(bool(m)) }

// No2Hop disables 2-hop matchings during coarsening. 2-hop matching is
// effective on graphs with power-law degree distributions
// (METIS_OPTION_NO2HOP).
type No2Hop bool

func (No2Hop) slot() int { return optNo2Hop }
func (n No2Hop) encode() Idx { return boolIdx(bool(n)) }

// Contiguous asks METIS to produce contiguous partitions; ignored when
// the input graph is not connected (METIS_OPTION_CONTIG).
type Contiguous bool

func (Contiguous) slot() int { return optContig }
func (c Contiguous) encode() Idx { return boolIdx(bool(c)) }

// Compress asks METIS to compress the graph by combining vertices with
// identical adjacency lists (METIS_OPTION_COMPRESS).
type Compress bool

func (Compress) slot() int { return optCompress }
func (c Compress) encode() Idx { return boolIdx(bool(c)) }

// CCOrder asks METIS to identify and order connected components
// separately (METIS_OPTION_CCORDER).
type CCOrder bool

func (CCOrder) slot() int { return optCCOrder }
func (c CCOrder) encode() Idx { return boolIdx(bool(c)) }

// PFactor controls dense-vertex removal before ordering: with value
// x > 0, vertices of degree greater than 0.1*x*(average degree) are
// removed first and ordered last. Default 0, no removal
// (METIS_OPTION_PFACTOR).
type PFactor Idx

func (PFactor) slot() int { return optPFactor }
func (p PFactor) encode() Idx { return Idx(p) }

// UFactor is the maximum allowed load imbalance among partitions, in
// thousandths: a value x allows an imbalance of (1+x)/1000. Defaults to 1
// for recursive bisection and 30 for k-way (METIS_OPTION_UFACTOR).
type UFactor Idx

func (UFactor) slot() int { return optUFactor }
func (u UFactor) encode() Idx { return Idx(u) }

// DebugLevel selects which progress/debugging information METIS prints
// (METIS_OPTION_DBGLVL). The fields are independent flags OR-ed into a
// bitmask; the bit positions are fixed by METIS and intentionally skip
// bit 3 (values 1,2,4,8,...,256).
type DebugLevel struct {
	// Info prints various diagnostic messages.
	Info bool
	// Time performs timing analysis.
	Time bool
	// Coarsen displays statistics during coarsening.
	Coarsen bool
	// Refine displays statistics during refinement.
	Refine bool
	// InitialPartition displays statistics during initial partitioning.
	InitialPartition bool
	// MoveInfo displays detailed info about vertex moves during refinement.
	MoveInfo bool
	// SeparatorInfo displays detailed info about vertex separators.
	SeparatorInfo bool
	// ConnectivityInfo displays info about minimizing subdomain connectivity.
	ConnectivityInfo bool
	// ContiguityInfo displays info about eliminating connected components.
	ContiguityInfo bool
}

func (DebugLevel) slot() int { return optDbgLvl }

func (d DebugLevel) encode() Idx {
	var lvl Idx
	if d.Info {
		lvl |= 1
	}
	if d.Time {
		lvl |= 2
	}
	if d.Coarsen {
		lvl |= 4
	}
	if d.Refine {
		lvl |= 8
	}
	if d.InitialPartition {
		lvl |= 16
	}
	if d.MoveInfo {
		lvl |= 32
	}
	if d.SeparatorInfo {
		lvl |= 64
	}
	if d.ConnectivityInfo {
		lvl |= 128
	}
	if d.ContiguityInfo {
		lvl |= 256
	}
	return lvl
}
