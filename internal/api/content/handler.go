package content

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"academy-cms/internal/domain/content/defaults"
	"academy-cms/internal/domain/pages"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetContent resolves a page's content: the persisted override wins, the
// bundled default answers otherwise.
//
// GET /api/content/:pageKey?locale=
func GetContent(c *gin.Context) {
	pageKey := c.Param("pageKey")
	if !pages.IsValid(pageKey) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	locale := pages.NormalizeLocale(c.Query("locale"))

	doc, err := findPageContent(c.Request.Context(), pageKey, locale)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"content": doc.Data})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("❌ Content lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	if fallback, ok := defaults.Get(pageKey, locale); ok {
		c.JSON(http.StatusOK, gin.H{"content": fallback})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
}

// UpdateContent overwrites the persisted content for one page/locale pair.
// The payload is stored opaquely; its shape is not validated.
//
// PUT /api/admin/content/:pageKey?locale=
func UpdateContent(c *gin.Context) {
	pageKey := c.Param("pageKey")
	if !pages.IsValid(pageKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page key"})
		return
	}
	locale := pages.NormalizeLocale(c.Query("locale"))

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON body"})
		return
	}

	if err := upsertPageContent(c.Request.Context(), pageKey, locale, data); err != nil {
		log.Println("❌ Content upsert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListPages returns the known page keys and locales for the admin UI.
//
// GET /api/admin/pages
func ListPages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pages":   pages.All(),
		"locales": pages.Locales(),
	})
}

// MigrateContent seeds the persisted store from the bundled defaults for every
// page/locale pair. Safe to re-run: each pair is an upsert of the same static
// document. A failure partway leaves earlier pairs written; re-invoking
// completes the rest.
//
// POST /api/admin/migrate-content
func MigrateContent(c *gin.Context) {
	migrated := 0
	for _, key := range pages.All() {
		for _, locale := range pages.Locales() {
			data, ok := defaults.Get(key, locale)
			if !ok {
				continue
			}
			if err := upsertPageContent(c.Request.Context(), key, locale, data); err != nil {
				log.Println("❌ Migration failed at", key, locale, ":", err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": fmt.Sprintf("Migration failed at %s/%s; re-run to complete", key, locale),
				})
				return
			}
			migrated++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  fmt.Sprintf("Migrated %d page/locale pairs", migrated),
		"migrated": migrated,
	})
}
