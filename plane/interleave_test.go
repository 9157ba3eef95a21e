package plane

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	buf := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := Split(buf, 3)
	want := [][]uint8{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Split mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	got := Merge([][]uint8{{1, 5}, {2, 6}, {3, 7}, {4, 8}})
	want := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_MismatchedLengths(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Merge with unequal channel lengths should panic")
		}
	}()
	Merge([][]uint8{{1, 2}, {3}})
}

func TestSplitMergeRoundTrip(t *testing.T) {
	for _, channels := range []int{1, 3, 4} {
		for _, pixels := range []int{0, 1, 7, 64} {
			buf := make([]uint8, pixels*channels)
			for i := range buf {
				buf[i] = uint8(i*37 + channels)
			}
			got := Merge(Split(buf, channels))
			if len(buf) == 0 && len(got) == 0 {
				continue
			}
			if diff := cmp.Diff(buf, got); diff != "" {
				t.Errorf("channels=%d pixels=%d: round trip mismatch (-want +got):\n%s", channels, pixels, diff)
			}
		}
	}
}
