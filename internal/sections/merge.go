package sections

import "sort"

// mergeDuplicates collapses repeated detections of the same logical section.
// Candidates are grouped by target name; for a group whose occurrences are
// all close together the largest occurrence wins and the rest are treated as
// TOC/sidebar echoes, while a group with any page gap beyond the
// non-contiguity threshold is merged into one section whose later
// occurrences are kept as continuation ranges. The decision is a
// page-distance heuristic, not a content check.
func (e *Engine) mergeDuplicates(cands []Candidate) []Section {
	// Group by target, preserving first-seen order so the output is
	// deterministic regardless of map iteration.
	var order []string
	byTarget := make(map[string][]Candidate)
	for _, c := range cands {
		if _, seen := byTarget[c.Target]; !seen {
			order = append(order, c.Target)
		}
		byTarget[c.Target] = append(byTarget[c.Target], c)
	}

	var sections []Section
	for _, target := range order {
		occurrences := byTarget[target]
		if len(occurrences) == 1 {
			sections = append(sections, occurrences[0].section())
			continue
		}

		sort.SliceStable(occurrences, func(i, j int) bool {
			if occurrences[i].StartPage != occurrences[j].StartPage {
				return occurrences[i].StartPage < occurrences[j].StartPage
			}
			return occurrences[i].StartLine < occurrences[j].StartLine
		})

		if e.hasNonContiguousGap(occurrences) {
			sections = append(sections, e.mergeNonContiguous(target, occurrences))
		} else {
			sections = append(sections, e.keepLargest(target, occurrences))
		}
	}

	sort.Slice(sections, func(i, j int) bool {
		return sections[i].StartLine < sections[j].StartLine
	})
	return sections
}

// hasNonContiguousGap reports whether any consecutive pair of occurrences is
// separated by more than the non-contiguity page threshold.
func (e *Engine) hasNonContiguousGap(occurrences []Candidate) bool {
	for i := 0; i < len(occurrences)-1; i++ {
		if occurrences[i+1].StartPage-occurrences[i].StartPage > e.cfg.NonContiguousPageGap {
			return true
		}
	}
	return false
}

// mergeNonContiguous keeps the first occurrence as the primary span and
// records every other occurrence as a continuation range. Nothing is
// discarded: the section's content legitimately recurs at disjoint
// locations.
func (e *Engine) mergeNonContiguous(target string, occurrences []Candidate) Section {
	primary := occurrences[0].section()
	for _, secondary := range occurrences[1:] {
		primary.Continuations = append(primary.Continuations, Span{
			StartLine: secondary.StartLine,
			EndLine:   secondary.endLine,
			StartPage: secondary.StartPage,
			EndPage:   secondary.endPage,
		})
		e.log.Info("non-contiguous content detected",
			"target", target,
			"primary_pages", pageRange(primary.StartPage, primary.EndPage),
			"continuation_pages", pageRange(secondary.StartPage, secondary.endPage),
			"gap", secondary.StartPage-primary.StartPage,
		)
	}
	e.log.Info("merged non-contiguous occurrences",
		"target", target, "occurrences", len(occurrences))
	return primary
}

// keepLargest discards all but the occurrence covering the most lines; ties
// resolve by earliest start line so repeated runs are reproducible.
func (e *Engine) keepLargest(target string, occurrences []Candidate) Section {
	largest := occurrences[0]
	for _, occ := range occurrences[1:] {
		if occ.lineSpan() > largest.lineSpan() ||
			(occ.lineSpan() == largest.lineSpan() && occ.StartLine < largest.StartLine) {
			largest = occ
		}
	}
	e.log.Info("deduplicated near-duplicate occurrences",
		"target", target,
		"kept_lines", largest.lineSpan(),
		"discarded", len(occurrences)-1,
	)
	return largest.section()
}
