// SPDX-License-Identifier: MIT

// Package rank aggregates private orderings into shared standings.
//
// Every ranker (a left id of an assign.Engine) orders the p items it was
// assigned, best first. Position i earns p-i points. Each ranked item (a
// right id) is reviewed by exactly k rankers, so its average score is
// comparable across items even though no ranker saw them all.
//
//	eng, _ := assign.New(2, 10, 8)
//	r, _ := rank.New(eng)
//	_ = r.SetRanking(0, []skeleton.Right{5, 1})
//	...
//	positions, _, err := r.Results(false)
//
// Results groups items whose averages differ by less than Epsilon into a
// single Position. Passing force=true lets the aggregation proceed when
// some rankers have no valid ordering: their items receive the neutral
// score (p+1)/2 and a Warning is returned for each such ranker.
//
// A Ranking can be restricted to a subset of rankers or items with
// ReduceRankers and ReduceRanked; labels are carried, orderings are not.
package rank
