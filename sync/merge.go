package sync

import (
	"sort"

	"github.com/researchaccelerator-hub/youtube-catalog-sync/model"
)

// applyDetails overwrites the volatile fields of every record whose ID
// appears in details, and leaves the rest untouched. It returns the number
// of records updated. This one merge-by-key step serves both hydration of
// new records and refresh of existing ones.
func applyDetails(records []*model.VideoRecord, details []*model.VideoDetails) int {
	if len(details) == 0 {
		return 0
	}

	byID := make(map[string]*model.VideoDetails, len(details))
	for _, d := range details {
		byID[d.ID] = d
	}

	updated := 0
	for _, rec := range records {
		d, ok := byID[rec.ID]
		if !ok {
			continue
		}
		rec.Duration = d.Duration
		rec.ViewCount = d.ViewCount
		rec.LikeCount = d.LikeCount
		updated++
	}
	return updated
}

// mergeAndSort concatenates the refreshed existing records with the newly
// discovered ones and orders the union by publish time, newest first. The
// fetcher already excluded known identifiers, so no deduplication happens
// here. The sort is stable: equal timestamps keep their input order. Every
// title is normalized before the result is handed to the store.
func mergeAndSort(existing, fresh []*model.VideoRecord) []*model.VideoRecord {
	merged := make([]*model.VideoRecord, 0, len(existing)+len(fresh))
	merged = append(merged, existing...)
	merged = append(merged, fresh...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedTime().After(merged[j].PublishedTime())
	})

	for _, rec := range merged {
		rec.Title = NormalizeTitle(rec.Title)
	}
	return merged
}
