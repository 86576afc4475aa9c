// Package suggest picks the day's gentle actions for a mood and keeps the
// assignment stable while the user checks items off.
package suggest

import (
	"time"

	"github.com/julianstephens/anchor/internal/catalog"
	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/utils"
)

// TargetCount is how many actions a mood gets per day.
func TargetCount(mood models.Mood) int {
	if mood.IsElevated() {
		return constants.ElevatedTargetCount
	}
	return constants.DefaultTargetCount
}

// Seed derives the shuffle seed for a day, refresh count and mood.
// The mood contributes only through the length of its name.
func Seed(day time.Time, refreshNonce int, mood models.Mood) int {
	return utils.DaySeed(day) +
		refreshNonce*constants.SeedRefreshFactor +
		len(mood.String())*constants.SeedMoodFactor
}

// shuffle permutes ids in place. The output is part of the persisted
// contract: the same seed must always give the same order.
func shuffle(ids []string, seed int) {
	for i := len(ids) - 1; i > 0; i-- {
		j := mod(seed+i*constants.ShuffleStride, i+1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}

// Select returns the first TargetCount(mood) actions of the mood's pool
// after a seeded shuffle. Pool ids missing from the catalog are dropped, so
// the result may be shorter than the target.
func Select(mood models.Mood, seed int) []models.Action {
	ids := catalog.Pool(mood)
	shuffle(ids, seed)

	n := TargetCount(mood)
	if n > len(ids) {
		n = len(ids)
	}
	return catalog.Resolve(ids[:n])
}

// SelectIDs is Select reduced to action ids.
func SelectIDs(mood models.Mood, seed int) []string {
	picked := Select(mood, seed)
	ids := make([]string, len(picked))
	for i, a := range picked {
		ids[i] = a.ID
	}
	return ids
}

// Reconcile rebuilds the assigned id list after a load, toggle or refresh.
//
// Checked ids already in previous stay first, in their previous order.
// Fresh picks for the seed fill the rest, skipping anything checked, and if
// the pool runs dry the list is backfilled by striding through the catalog.
// The result never exceeds TargetCount(mood).
func Reconcile(mood models.Mood, seed int, checked map[string]bool, previous []string) []string {
	target := TargetCount(mood)

	result := make([]string, 0, target)
	taken := make(map[string]bool, target)
	add := func(id string) {
		result = append(result, id)
		taken[id] = true
	}

	for _, id := range previous {
		if catalog.Contains(id) && checked[id] && !taken[id] {
			add(id)
		}
	}

	for _, id := range SelectIDs(mood, seed) {
		if len(result) >= target {
			break
		}
		if checked[id] || taken[id] {
			continue
		}
		add(id)
	}

	if len(result) < target {
		all, n := catalog.IDs(), catalog.Size()
		for i := 0; i < n && len(result) < target; i++ {
			id := all[mod(seed+i*constants.BackfillStride, n)]
			if !checked[id] && !taken[id] {
				add(id)
			}
		}
	}

	if len(result) > target {
		result = result[:target]
	}
	return result
}

// mod is the non-negative remainder, so a negative seed still indexes safely.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
