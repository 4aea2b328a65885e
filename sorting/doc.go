// Package sorting implements six comparison sorts as resumable steppers.
//
// Each algorithm is re-expressed as a flat state machine that satisfies
// stepper.SortStepper: one Step call performs one observable unit of work and
// leaves the run paused with its cursors, sorted region and metrics readable.
//
// Algorithms and their unit of work:
//
//   - Bubble:    one adjacent comparison (and swap), or closing a pass.
//   - Selection: one comparison against the running minimum, or the swap that
//     closes a pass.
//   - Insertion: one comparison (and swap toward the front) of the key being
//     inserted, or closing an insertion.
//   - Quick:     discarding a trivial range, initializing a partition, one scan
//     comparison, or placing the pivot. Recursion is replaced by an explicit
//     stack of ranges.
//   - Heap:      one full sift-down (heapify phase) or one root extraction plus
//     sift-down (sort-down phase). Coarser than the others on purpose: a
//     sift-down has no natural pause point short of exposing its own cursor.
//   - Merge:     one placement into the active task's scratch buffer, or the
//     copy-back that retires a task. Recursion is replaced by a bottom-up task
//     list built once at construction.
//
// Every stepper finishes with a certify step that sets Completed and marks the
// whole index range sorted. Inputs of length 0 or 1 are completed at
// construction with zero comparisons and swaps.
//
// Quick sort reports no sorted indices until completion: its partial order is
// not index-stable mid-run, so intermediate claims would be misleading.
//
// Estimated totals: n·(n−1) for the quadratic family, round(n·log₂n·1.5) for
// quick, heap and merge.
package sorting
