package defaults

import (
	"encoding/json"
	"reflect"
	"testing"

	"academy-cms/internal/domain/pages"
)

func TestBundleCoversAllPairs(t *testing.T) {
	for _, key := range pages.All() {
		for _, locale := range pages.Locales() {
			doc, ok := Get(key, locale)
			if !ok {
				t.Errorf("no default content for %s/%s", key, locale)
				continue
			}
			if len(doc) == 0 {
				t.Errorf("default content for %s/%s is empty", key, locale)
			}
		}
	}
}

func TestGetUnknownPair(t *testing.T) {
	if _, ok := Get("not-a-real-page", "en"); ok {
		t.Error("expected no default for unknown page")
	}
	if _, ok := Get("home", "fr"); ok {
		t.Error("expected no default for unknown locale")
	}
}

// Repeated reads must hand back the same document, byte for byte.
func TestGetStableAcrossCalls(t *testing.T) {
	first, ok := Get("home", "en")
	if !ok {
		t.Fatal("missing home/en default")
	}
	second, _ := Get("home", "en")
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Get returned different documents")
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("repeated Get not byte-stable")
	}
}

// Locale variants of a page should share a shape: same top-level keys.
func TestLocaleVariantsShareShape(t *testing.T) {
	for _, key := range pages.All() {
		en, ok1 := Get(key, pages.LocaleEN)
		hy, ok2 := Get(key, pages.LocaleHY)
		if !ok1 || !ok2 {
			continue
		}
		for k := range en {
			if _, ok := hy[k]; !ok {
				t.Errorf("%s: key %q present in en but missing in hy", key, k)
			}
		}
		for k := range hy {
			if _, ok := en[k]; !ok {
				t.Errorf("%s: key %q present in hy but missing in en", key, k)
			}
		}
	}
}
