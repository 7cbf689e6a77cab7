package records

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestGenerateTechnologiesShape(t *testing.T) {
	techs := GenerateTechnologies(rand.New(rand.NewSource(42)))
	if len(techs) != 1000 {
		t.Fatalf("expected 1000 technologies, got %d", len(techs))
	}

	first := techs[0]
	if first["id"] != "0" {
		t.Errorf("expected first id \"0\", got %v", first["id"])
	}
	if first["docket"] != "Technology / 26179J" {
		t.Errorf("expected docket \"Technology / 26179J\", got %v", first["docket"])
	}
	if first["name"] != "Technology 1" {
		t.Errorf("expected name \"Technology 1\", got %v", first["name"])
	}

	for i, tech := range techs {
		if tech["id"] != strconv.Itoa(i) {
			t.Fatalf("record %d: expected sequential id, got %v", i, tech["id"])
		}
		trl := tech["trl"].(int)
		if trl < 1 || trl > 9 {
			t.Fatalf("record %d: trl out of range: %d", i, trl)
		}
		if len(tech["advantages"].([]string)) != 3 {
			t.Fatalf("record %d: expected 3 advantages", i)
		}
		if len(tech["applications"].([]string)) != 3 {
			t.Fatalf("record %d: expected 3 applications", i)
		}
		if len(tech["useCases"].([]string)) != 2 {
			t.Fatalf("record %d: expected 2 use cases", i)
		}
		if len(tech["relatedLinks"].([]Record)) != 2 {
			t.Fatalf("record %d: expected 2 related links", i)
		}
	}
}

func TestGenerateTechnologiesPoolsCycle(t *testing.T) {
	techs := GenerateTechnologies(rand.New(rand.NewSource(1)))

	if techs[0]["genre"] != "AI" || techs[5]["genre"] != "AI" {
		t.Errorf("genre must cycle through the pool by index")
	}
	if techs[3]["overview"] != overviews[3] {
		t.Errorf("overview must cycle through the pool by index")
	}
	if techs[4]["technicalSpecifications"] != technicalSpecs[1] {
		t.Errorf("technical specs must cycle through the pool by index")
	}
}

func TestGenerateTechnologiesSampleWithoutReplacement(t *testing.T) {
	techs := GenerateTechnologies(rand.New(rand.NewSource(7)))
	for i, tech := range techs[:50] {
		seen := map[string]bool{}
		for _, adv := range tech["advantages"].([]string) {
			if seen[adv] {
				t.Fatalf("record %d: duplicate advantage %q", i, adv)
			}
			seen[adv] = true
		}
	}
}

func TestGenerateTechnologiesDeterministicWithSeed(t *testing.T) {
	a := GenerateTechnologies(rand.New(rand.NewSource(99)))
	b := GenerateTechnologies(rand.New(rand.NewSource(99)))

	for i := range a {
		if a[i]["innovators"] != b[i]["innovators"] || a[i]["trl"] != b[i]["trl"] {
			t.Fatalf("record %d: same seed must produce same content", i)
		}
	}
}

func TestGenerateTechnologiesInnovators(t *testing.T) {
	techs := GenerateTechnologies(rand.New(rand.NewSource(3)))
	for i, tech := range techs[:100] {
		names := strings.Split(tech["innovators"].(string), " / ")
		if len(names) < 1 || len(names) > 3 {
			t.Fatalf("record %d: expected 1-3 innovators, got %d", i, len(names))
		}
		for _, name := range names {
			found := false
			for _, pooled := range innovatorsList {
				if name == pooled {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("record %d: innovator %q not in pool", i, name)
			}
		}
	}
}

func TestGenerateEvents(t *testing.T) {
	events := GenerateEvents()
	if len(events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(events))
	}
	for i, event := range events {
		if event["id"] != strconv.Itoa(i+1) {
			t.Errorf("event %d: expected id %q, got %v", i, strconv.Itoa(i+1), event["id"])
		}
		for _, field := range []string{"eventTitle", "fieldCategory", "briefDescription", "venue", "eventDate"} {
			if event[field] == "" || event[field] == nil {
				t.Errorf("event %d: missing %s", i, field)
			}
		}
	}
	if events[0]["eventTitle"] != "AI Summit" {
		t.Errorf("expected first event AI Summit, got %v", events[0]["eventTitle"])
	}
}
