// Copyright 2020 Enea Guidi (hmny). All rights reserved.
// This files are distributed under the General Public License v3.0.
// A copy of abovesaid license can be found in the LICENSE file.

package optimize

import "github.com/nightingale-lzh/fsm-compiler/internal/fsm"

// MaxLevel is the highest optimization level the pipeline knows about;
// requests above it are clamped, matching assembler.py's
// min(opt_level, len(OPTIMIZATION_STRATEGIES)).
const MaxLevel = 5

// strategies lists the five rewrite passes in the fixed order the
// pipeline walks them, indexed 1..MaxLevel (index 0 unused) so a
// requested level L maps directly to strategies[1:L+1].
var strategies = [MaxLevel + 1]func(*fsm.Node) bool{
	1: CollapseConsecutiveStates,
	2: BypassChainedEmptyState,
	3: FlattenChainedBranching,
	4: ChainedMergingThroughJunction,
	5: OpportunisticMergeViaTrulyCollapsible,
}

// Pipeline runs strategies 1..level, in order, each to its own internal
// fix-point; any strategy firing restarts the whole sweep at level 1.
// Terminates once a full sweep through every requested level makes no
// change anywhere. level 0 is a no-op; levels above MaxLevel are
// clamped down to it.
func Pipeline(start *fsm.Node, level int) {
	if level > MaxLevel {
		level = MaxLevel
	}

	changed := true
	for changed {
		changed = false
		for l := 1; l <= level; l++ {
			if strategies[l](start) {
				changed = true
				break
			}
		}
	}
}
