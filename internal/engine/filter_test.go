package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterOps_Render(t *testing.T) {
	tests := []struct {
		name string
		op   FilterOp
		want string
	}{
		{"fade in", FadeIn{DurationMs: 200}, "afade=t=in:st=0:d=0.200:curve=qsin"},
		{"fade out", FadeOut{StartMs: 4000, DurationMs: 1000}, "afade=t=out:st=4.000:d=1.000:curve=qsin"},
		{"delay", Delay{Ms: 2800}, "adelay=2800:all=1"},
		{"pad", Pad{Ms: 1500}, "apad=pad_dur=1.500"},
		{"trim", Trim{StartMs: 3000, EndMs: 7000}, "atrim=start=3.000:end=7.000,asetpts=PTS-STARTPTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.render())
		})
	}
}

func TestChain_Filter(t *testing.T) {
	c := Chain{Ops: []FilterOp{Delay{Ms: 500}, Pad{Ms: 250}}}
	assert.Equal(t, "adelay=500:all=1,apad=pad_dur=0.250", c.Filter())

	assert.Equal(t, "anull", Chain{}.Filter())
}

func TestMixGraph_FilterComplex(t *testing.T) {
	// Two 5s tracks crossfaded over 1s: first fades out at 4s, second fades
	// in and is delayed to 4s on the shared timeline.
	g := MixGraph{
		Chains: []Chain{
			{Input: 0, Ops: []FilterOp{FadeOut{StartMs: 4000, DurationMs: 1000}}},
			{Input: 1, Ops: []FilterOp{FadeIn{DurationMs: 1000}, Delay{Ms: 4000}}},
		},
	}

	want := "[0:a]afade=t=out:st=4.000:d=1.000:curve=qsin[a0];" +
		"[1:a]afade=t=in:st=0:d=1.000:curve=qsin,adelay=4000:all=1[a1];" +
		"[a0][a1]amix=inputs=2:duration=longest:normalize=0[out]"
	assert.Equal(t, want, g.FilterComplex())
}

func TestMixGraph_EmptyChainGetsLabel(t *testing.T) {
	g := MixGraph{
		Chains:      []Chain{{Input: 0}, {Input: 1, Ops: []FilterOp{Delay{Ms: 3000}}}},
		OutputLabel: "mixed",
	}

	want := "[0:a]anull[a0];" +
		"[1:a]adelay=3000:all=1[a1];" +
		"[a0][a1]amix=inputs=2:duration=longest:normalize=0[mixed]"
	assert.Equal(t, want, g.FilterComplex())
}
