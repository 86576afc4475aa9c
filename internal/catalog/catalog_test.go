package catalog

import (
	"testing"

	"github.com/julianstephens/anchor/internal/models"
)

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range All() {
		if a.ID == "" || a.Title == "" {
			t.Errorf("catalog entry has empty field: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate catalog id %q", a.ID)
		}
		seen[a.ID] = true
	}
	if Size() != 35 {
		t.Errorf("Size() = %d, want 35", Size())
	}
}

func TestPoolsReferenceCatalog(t *testing.T) {
	for _, mood := range models.Moods {
		t.Run(string(mood), func(t *testing.T) {
			pool := Pool(mood)
			if len(pool) != 6 {
				t.Fatalf("Pool(%s) has %d ids, want 6", mood, len(pool))
			}
			for _, id := range pool {
				if !Contains(id) {
					t.Errorf("Pool(%s) references unknown id %q", mood, id)
				}
			}
		})
	}
}

func TestPoolFallsBackToUnknown(t *testing.T) {
	got := Pool(models.Mood("elated"))
	want := Pool(models.MoodUnknown)
	if len(got) != len(want) {
		t.Fatalf("Pool(elated) len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pool(elated)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPoolReturnsCopy(t *testing.T) {
	p := Pool(models.MoodHappy)
	p[0] = "mutated"
	if Pool(models.MoodHappy)[0] == "mutated" {
		t.Error("Pool() exposed internal slice")
	}
}

func TestResolveDropsUnknownIDs(t *testing.T) {
	got := Resolve([]string{"water", "nope", "tea"})
	if len(got) != 2 {
		t.Fatalf("Resolve() len = %d, want 2", len(got))
	}
	if got[0].ID != "water" || got[1].ID != "tea" {
		t.Errorf("Resolve() = %v, want [water tea]", got)
	}
}

func TestIDsOrder(t *testing.T) {
	ids := IDs()
	if ids[0] != "breath_30" || ids[len(ids)-1] != "3_good_things" {
		t.Errorf("IDs() order changed: first=%q last=%q", ids[0], ids[len(ids)-1])
	}
}
