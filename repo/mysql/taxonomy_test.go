package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffTagSet(t *testing.T) {
	cases := []struct {
		name       string
		current    []uint64
		target     []uint64
		wantAdd    []uint64
		wantRemove []uint64
	}{
		{"部分重叠替换", []uint64{1, 2}, []uint64{2, 3}, []uint64{3}, []uint64{1}},
		{"首次关联", nil, []uint64{1, 2}, []uint64{1, 2}, nil},
		{"清空关联", []uint64{1, 2}, nil, nil, []uint64{1, 2}},
		{"目标与现状相同", []uint64{1, 2}, []uint64{2, 1}, nil, nil},
		{"目标重复ID去重", []uint64{1}, []uint64{2, 2, 1}, []uint64{2}, nil},
		{"完全替换", []uint64{1, 2}, []uint64{3, 4}, []uint64{3, 4}, []uint64{1, 2}},
		{"双空", nil, nil, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toAdd, toRemove := diffTagSet(tc.current, tc.target)
			assert.ElementsMatch(t, tc.wantAdd, toAdd)
			assert.ElementsMatch(t, tc.wantRemove, toRemove)

			// 差集应用到现状后剩下的恰好是目标集合。
			final := make(map[uint64]struct{})
			for _, id := range tc.current {
				final[id] = struct{}{}
			}
			for _, id := range toRemove {
				delete(final, id)
			}
			for _, id := range toAdd {
				final[id] = struct{}{}
			}
			want := make(map[uint64]struct{})
			for _, id := range tc.target {
				want[id] = struct{}{}
			}
			assert.Equal(t, want, final)
		})
	}
}
