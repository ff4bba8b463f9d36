// Package defaults carries the static content bundle compiled into the binary.
// It is the fallback tier of content resolution: the database is checked first,
// these documents answer when no persisted override exists.
package defaults

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"

	"academy-cms/internal/domain/pages"
)

//go:embed bundle/*.json
var bundleFS embed.FS

var bundle = map[string]map[string]interface{}{}

func init() {
	for _, key := range pages.All() {
		for _, locale := range pages.Locales() {
			name := fmt.Sprintf("bundle/%s.%s.json", key, locale)
			raw, err := bundleFS.ReadFile(name)
			if err != nil {
				// A missing pair is allowed; resolution just has no fallback for it.
				continue
			}
			var doc map[string]interface{}
			if err := json.Unmarshal(raw, &doc); err != nil {
				log.Fatalf("invalid default content bundle %s: %v", name, err)
			}
			bundle[key+"/"+locale] = doc
		}
	}
}

// Get returns the bundled default content for a page/locale pair. The document
// is parsed once at startup, so repeated calls return the same value.
func Get(pageKey, locale string) (map[string]interface{}, bool) {
	doc, ok := bundle[pageKey+"/"+locale]
	return doc, ok
}
