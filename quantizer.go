package voyager

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// QuantizationConfig holds the bin widths used to collapse a continuous
// StateVertex into a DiscreteState (spec.md 4.G).
type QuantizationConfig struct {
	BinX float64 // position bin, applied to each of x,y independently
	BinV float64 // velocity bin, applied to each of vx,vy independently
	BinT float64 // global-time bin
	BinF float64 // fuel bin
}

// NewQuantizationConfig validates and constructs a QuantizationConfig;
// every bin width must be strictly positive or the quantizer would
// divide by zero.
func NewQuantizationConfig(binX, binV, binT, binF float64) (QuantizationConfig, error) {
	for name, v := range map[string]float64{"BinX": binX, "BinV": binV, "BinT": binT, "BinF": binF} {
		if v <= 0 {
			return QuantizationConfig{}, newConfigError("QuantizationConfig."+name, "must be > 0")
		}
	}
	return QuantizationConfig{BinX: binX, BinV: binV, BinT: binT, BinF: binF}, nil
}

// DiscreteState is the quantized map key of spec.md 4.G: a StateVertex
// collapsed to integer bin indices plus a canonical, order-independent
// encoding of the collected-artifact set. Every field is a comparable
// scalar, so DiscreteState is itself usable directly as a Go map key --
// no separate hashing step is needed.
type DiscreteState struct {
	QX, QY   int64
	QVX, QVY int64
	QT       int64
	QF       int64
	Coll     string
}

// roundBin rounds v/bin to the nearest integer, canonicalizing -0 to +0
// so that two values that differ only in the sign of an exact zero
// quantize identically (spec.md 9: quantizer must not distinguish -0.0
// from 0.0). A NaN input indicates the upstream integration produced an
// invalid state; that is an invariant violation, not a recoverable input
// error, so it is asserted rather than threaded through an error return.
func roundBin(v, bin float64) int64 {
	if math.IsNaN(v) {
		panic(fmt.Sprintf("voyager: quantizer received NaN (bin=%g)", bin))
	}
	q := math.Round(v / bin)
	if q == 0 {
		q = 0 // canonicalize -0 -> +0
	}
	return int64(q)
}

// collectedKey encodes a Collected set as a sorted, comma-joined string
// of artifact IDs, so that two StateVertex values with the same members
// collected in different orders quantize to the same DiscreteState
// (spec.md 4.G: collected-set comparison is order-independent).
func collectedKey(collected map[ArtifactID]struct{}) string {
	ids := make([]int, 0, len(collected))
	for id := range collected {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}

// Quantize maps a StateVertex to its DiscreteState under cfg (spec.md
// 4.G). Quantize is idempotent: quantizing a DiscreteState's own
// midpoint reconstruction yields the same DiscreteState.
func Quantize(s StateVertex, cfg QuantizationConfig) DiscreteState {
	return DiscreteState{
		QX:  roundBin(s.X.X(), cfg.BinX),
		QY:  roundBin(s.X.Y(), cfg.BinX),
		QVX: roundBin(s.V.X(), cfg.BinV),
		QVY: roundBin(s.V.Y(), cfg.BinV),
		QT:  roundBin(s.TU, cfg.BinT),
		QF:  roundBin(s.Fuel, cfg.BinF),
		Coll: collectedKey(s.Collected),
	}
}
