package term

import (
	"strings"

	"github.com/atomicstack/taskdialog-control/internal/native"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// filterButtons returns the custom buttons matching the query, keeping
// caller order. An empty query matches everything.
func filterButtons(defs []native.ButtonDef, query string) []native.ButtonDef {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return defs
	}
	labels := make([]string, len(defs))
	for i, def := range defs {
		labels[i] = def.Text
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]native.ButtonDef, 0, len(matches))
		for idx, def := range defs {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, def)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]native.ButtonDef, 0, len(defs))
	for _, def := range defs {
		if strings.Contains(strings.ToLower(def.Text), lower) {
			filtered = append(filtered, def)
		}
	}
	return filtered
}

// bestButtonMatch returns the index of the best match for the query
// among the provided buttons, or -1 when there is none.
func bestButtonMatch(defs []native.ButtonDef, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		if len(defs) == 0 {
			return -1
		}
		return 0
	}
	for i, def := range defs {
		if strings.EqualFold(def.Text, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, def := range defs {
		if strings.HasPrefix(strings.ToLower(def.Text), lower) {
			return i
		}
	}
	labels := make([]string, len(defs))
	for i, def := range defs {
		labels[i] = def.Text
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(defs) {
		return -1
	}
	return best.OriginalIndex
}
