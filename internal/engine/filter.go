package engine

import (
	"fmt"
	"strings"

	"github.com/audiocut/audiocut/internal/plan"
)

// FilterOp is one typed audio filter step. Ops are composed into chains by the
// planning layer and rendered into ffmpeg filter syntax here, keeping the
// planners free of string concatenation.
type FilterOp interface {
	render() string
}

// FadeIn fades a stream in from silence over DurationMs, starting at the
// stream's own origin. The quarter-sine curve pairs with FadeOut so the
// squared gains of an overlapping pair sum to one (equal-power crossfade).
type FadeIn struct {
	DurationMs int64
}

func (f FadeIn) render() string {
	return fmt.Sprintf("afade=t=in:st=0:d=%s:curve=qsin", plan.FormatSeconds(f.DurationMs))
}

// FadeOut fades a stream out to silence over DurationMs beginning at StartMs.
type FadeOut struct {
	StartMs    int64
	DurationMs int64
}

func (f FadeOut) render() string {
	return fmt.Sprintf("afade=t=out:st=%s:d=%s:curve=qsin",
		plan.FormatSeconds(f.StartMs), plan.FormatSeconds(f.DurationMs))
}

// Delay shifts a stream later on the timeline by Ms milliseconds of leading
// silence, on all channels.
type Delay struct {
	Ms int64
}

func (d Delay) render() string {
	return fmt.Sprintf("adelay=%d:all=1", d.Ms)
}

// Pad appends Ms milliseconds of trailing silence.
type Pad struct {
	Ms int64
}

func (p Pad) render() string {
	return fmt.Sprintf("apad=pad_dur=%s", plan.FormatSeconds(p.Ms))
}

// Trim keeps the [StartMs, EndMs) window of a stream.
type Trim struct {
	StartMs int64
	EndMs   int64
}

func (t Trim) render() string {
	return fmt.Sprintf("atrim=start=%s:end=%s,asetpts=PTS-STARTPTS",
		plan.FormatSeconds(t.StartMs), plan.FormatSeconds(t.EndMs))
}

// Chain applies a sequence of ops to the audio of one input stream.
type Chain struct {
	// Input is the zero-based index of the -i input the chain reads from.
	Input int
	Ops   []FilterOp
}

// renderOps joins the chain's ops; an empty chain renders as anull so the
// stream still gets a graph label.
func (c Chain) renderOps() string {
	if len(c.Ops) == 0 {
		return "anull"
	}
	parts := make([]string, len(c.Ops))
	for i, op := range c.Ops {
		parts[i] = op.render()
	}
	return strings.Join(parts, ",")
}

// Filter renders the chain as a plain -af filter string (single input, no
// stream labels).
func (c Chain) Filter() string {
	return c.renderOps()
}

// MixGraph is a full -filter_complex graph: one chain per input, summed by
// amix into a single labelled output. Mixing is done without loudness
// normalization; the fade curves alone keep levels constant at the seams.
type MixGraph struct {
	Chains []Chain
	// OutputLabel is the mixed stream's label, mapped with -map. Defaults
	// to "out" when empty.
	OutputLabel string
}

// FilterComplex renders the graph in ffmpeg -filter_complex syntax.
func (g MixGraph) FilterComplex() string {
	out := g.OutputLabel
	if out == "" {
		out = "out"
	}

	var sb strings.Builder
	labels := make([]string, len(g.Chains))
	for i, c := range g.Chains {
		labels[i] = fmt.Sprintf("[a%d]", i)
		fmt.Fprintf(&sb, "[%d:a]%s%s;", c.Input, c.renderOps(), labels[i])
	}

	sb.WriteString(strings.Join(labels, ""))
	fmt.Fprintf(&sb, "amix=inputs=%d:duration=longest:normalize=0[%s]", len(g.Chains), out)
	return sb.String()
}
