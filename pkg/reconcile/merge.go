// Package reconcile merges a remote quote collection into the local list.
// The remote side wins: unknown texts are appended and known texts take the
// remote category. Nothing is ever removed.
package reconcile

import "tableflip.dev/quotes/pkg/quote"

// Result counts what a merge changed.
type Result struct {
	Added   int
	Updated int
}

// Merge applies remote onto a copy of local and returns the merged list.
// local is not modified. Duplicate texts within remote collapse onto the first
// occurrence, so only that one counts as added.
func Merge(local, remote []quote.Quote) ([]quote.Quote, Result) {
	merged := quote.Clone(local)
	if merged == nil {
		merged = make([]quote.Quote, 0, len(remote))
	}
	var res Result
	for _, rq := range remote {
		i := quote.Find(merged, rq.Text)
		switch {
		case i < 0:
			merged = append(merged, rq)
			res.Added++
		case merged[i].Category != rq.Category:
			merged[i].Category = rq.Category
			res.Updated++
		}
	}
	return merged, res
}
