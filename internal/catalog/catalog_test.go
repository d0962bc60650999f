package catalog

import "testing"

func TestEveryProcessTypeHasLabel(t *testing.T) {
	types := ProcessTypes()
	if len(types) != 22 {
		t.Errorf("Expected 22 process types, got %d", len(types))
	}
	for _, pt := range types {
		if !ValidProcessType(pt) {
			t.Errorf("Expected %s to be valid", pt)
		}
		if Label(pt) == "" {
			t.Errorf("Expected non-empty label for %s", pt)
		}
	}
}

func TestUnknownTypeFallsBackToOutro(t *testing.T) {
	if got := Label("penal_internacional"); got != "Outro" {
		t.Errorf("Expected Outro fallback, got %s", got)
	}
	if ValidProcessType("penal_internacional") {
		t.Error("Expected unknown type to be invalid")
	}
}

func TestEveryTypeBelongsToExactlyOneGroup(t *testing.T) {
	counts := make(map[ProcessType]int)
	for _, g := range Groups() {
		for _, pt := range g.Types {
			counts[pt]++
		}
	}
	for _, pt := range ProcessTypes() {
		if counts[pt] != 1 {
			t.Errorf("Expected %s in exactly one group, got %d", pt, counts[pt])
		}
	}
}

func TestGroupsReturnsCopy(t *testing.T) {
	g := Groups()
	g[0].Types[0] = "mutated"
	if Groups()[0].Types[0] != TypeTrabalhista {
		t.Error("Expected Groups to return an isolated copy")
	}
}

func TestStatuses(t *testing.T) {
	for _, s := range Statuses() {
		if !ValidStatus(s) {
			t.Errorf("Expected %s to be valid", s)
		}
	}
	if ValidStatus("deleted") {
		t.Error("Expected unknown status to be invalid")
	}
	if StatusLabel(StatusArchived) != "Arquivado" {
		t.Errorf("Expected Arquivado, got %s", StatusLabel(StatusArchived))
	}
}
