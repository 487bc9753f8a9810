package catalog

import "testing"

func TestFilter(t *testing.T) {
	monuments := SeedMonuments()

	t.Run("no filters returns everything", func(t *testing.T) {
		got := Filter(monuments, "", FilterAll, FilterAll)
		if len(got) != len(monuments) {
			t.Errorf("expected %d monuments, got %d", len(monuments), len(got))
		}
	})

	t.Run("era filter matches exactly", func(t *testing.T) {
		got := Filter(monuments, "", FilterAll, "Medieval")
		if len(got) == 0 {
			t.Fatal("expected Medieval monuments")
		}
		for _, m := range got {
			if m.Era != "Medieval" {
				t.Errorf("monument %s has era %q, expected Medieval", m.ID, m.Era)
			}
		}

		// Result must equal exactly the monuments whose era is Medieval
		want := 0
		for _, m := range monuments {
			if m.Era == "Medieval" {
				want++
			}
		}
		if len(got) != want {
			t.Errorf("expected %d Medieval monuments, got %d", want, len(got))
		}
	})

	t.Run("state filter matches exactly", func(t *testing.T) {
		got := Filter(monuments, "", "Delhi", FilterAll)
		if len(got) != 2 {
			t.Fatalf("expected 2 Delhi monuments, got %d", len(got))
		}
		for _, m := range got {
			if m.State != "Delhi" {
				t.Errorf("monument %s has state %q, expected Delhi", m.ID, m.State)
			}
		}
	})

	t.Run("text query is case-insensitive", func(t *testing.T) {
		got := Filter(monuments, "TAJ MAHAL", FilterAll, FilterAll)
		if len(got) != 1 || got[0].ID != "m1" {
			t.Errorf("expected [m1], got %v", ids(got))
		}
	})

	t.Run("text query matches description", func(t *testing.T) {
		got := Filter(monuments, "palace of winds", FilterAll, FilterAll)
		if len(got) != 1 || got[0].ID != "m5" {
			t.Errorf("expected [m5], got %v", ids(got))
		}
	})

	t.Run("filters are AND-ed with the text match", func(t *testing.T) {
		// "fort" matches Red Fort (Mughal) and Amber Fort (Medieval) among
		// others; the era filter must prune to the Medieval ones only
		got := Filter(monuments, "fort", FilterAll, "Medieval")
		for _, m := range got {
			if m.Era != "Medieval" {
				t.Errorf("monument %s leaked through era filter", m.ID)
			}
		}
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		got := Filter(monuments, "colosseum", FilterAll, FilterAll)
		if len(got) != 0 {
			t.Errorf("expected no matches, got %v", ids(got))
		}
	})
}

func TestDistinctFilterValues(t *testing.T) {
	monuments := SeedMonuments()

	states := States(monuments)
	if len(states) != 11 {
		t.Errorf("expected 11 distinct states, got %d: %v", len(states), states)
	}
	if states[0] != "Uttar Pradesh" {
		t.Errorf("expected first-seen order, got %v", states)
	}

	eras := Eras(monuments)
	if len(eras) != 4 {
		t.Errorf("expected 4 distinct eras, got %d: %v", len(eras), eras)
	}
	seen := map[string]int{}
	for _, e := range eras {
		seen[e]++
		if seen[e] > 1 {
			t.Errorf("era %q appears more than once", e)
		}
	}
}

func ids(monuments []Monument) []string {
	out := make([]string, len(monuments))
	for i, m := range monuments {
		out[i] = m.ID
	}
	return out
}
