/*
Package search composes sub-patterns into a single CNF problem.

A Problem owns a global spacetime bounds and an ordered list of
(sub-pattern, mask) entries. The mask decides which points an entry
provides values for; entries may overlap, and the first entry whose mask
accepts a point wins, so an interaction region can be layered over a
stable background simply by adding it first.

Build checks that the masks cover every in-bounds point, builds each
sub-pattern, assigns each entry a contiguous slice of the global variable
namespace, and then merges variables across the whole problem by
transition signature: two rule-following cells whose (center, sorted
8-neighbor multiset) ids coincide must evolve identically, so their
output variables are one and the same. For symmetric searches this is the
single biggest clause-count reduction: one transition is emitted per
signature orbit instead of per cell.

After Build, CellValue reports the final (deduplicated) variable id of
any point, Clauses emits the transition CNF, and Decode lifts a solver
model back into a KnownPattern over the problem's bounds.
*/
package search
