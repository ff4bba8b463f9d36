package forms

import (
	"errors"
	"log"
	"net/http"

	"academy-cms/internal/domain/forms"
	"academy-cms/internal/domain/pages"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// GET /api/admin/forms
func ListForms(c *gin.Context) {
	defs, err := listForms(c.Request.Context())
	if err != nil {
		log.Println("❌ Failed to list forms:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load forms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"forms": defs})
}

// CreateForm registers a new form for an allow-listed page. The existence
// check and insert are two round trips; a concurrent duplicate create can slip
// through, which the unique pageKey index then rejects. Accepted for a
// single-admin tool.
//
// POST /api/admin/forms
func CreateForm(c *gin.Context) {
	var req CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON body"})
		return
	}
	if req.PageKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pageKey is required"})
		return
	}
	if !pages.IsFormAllowed(req.PageKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This page cannot have a form"})
		return
	}

	ctx := c.Request.Context()
	if _, err := findForm(ctx, req.PageKey); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Form already exists for this page"})
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("❌ Form lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing form"})
		return
	}

	def := forms.FormDefinition{
		PageKey: req.PageKey,
		Steps:   toSteps(req.Steps),
	}
	if err := insertForm(ctx, &def); err != nil {
		log.Println("❌ Form insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create form"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": def, "success": true})
}

// GET /api/admin/forms/:pageKey
func GetForm(c *gin.Context) {
	pageKey := c.Param("pageKey")
	if !pages.IsFormAllowed(pageKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This page cannot have a form"})
		return
	}

	def, err := findForm(c.Request.Context(), pageKey)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}
	if err != nil {
		log.Println("❌ Form lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load form"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": def})
}

// PUT /api/admin/forms/:pageKey
func UpdateForm(c *gin.Context) {
	pageKey := c.Param("pageKey")
	if !pages.IsFormAllowed(pageKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This page cannot have a form"})
		return
	}

	var req UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON body"})
		return
	}

	def, err := upsertFormSteps(c.Request.Context(), pageKey, toSteps(req.Steps))
	if err != nil {
		log.Println("❌ Form upsert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save form"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": def, "success": true})
}

// DeleteForm removes a form if it exists. Deleting a missing form succeeds;
// prior submissions are kept.
//
// DELETE /api/admin/forms/:pageKey
func DeleteForm(c *gin.Context) {
	pageKey := c.Param("pageKey")
	if !pages.IsFormAllowed(pageKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This page cannot have a form"})
		return
	}

	if err := deleteForm(c.Request.Context(), pageKey); err != nil {
		log.Println("❌ Form delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete form"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetPublicForm serves a form to anonymous visitors. Pages outside the
// allow-list read as 404 here since no form can exist for them.
//
// GET /api/forms/:pageKey
func GetPublicForm(c *gin.Context) {
	pageKey := c.Param("pageKey")
	if !pages.IsFormAllowed(pageKey) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}

	def, err := findForm(c.Request.Context(), pageKey)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}
	if err != nil {
		log.Println("❌ Form lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load form"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": def})
}

// Submit validates a visitor's answers against the form schema and persists
// them. Validation has no side effects; nothing is written until it passes.
//
// POST /api/forms/:pageKey/submit
func Submit(c *gin.Context) {
	pageKey := c.Param("pageKey")

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON body"})
		return
	}

	ctx := c.Request.Context()
	def, err := findForm(ctx, pageKey)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}
	if err != nil {
		log.Println("❌ Form lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load form"})
		return
	}

	if err := forms.ValidateSubmission(def, data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := forms.FormSubmission{
		FormID:  def.ID,
		PageKey: pageKey,
		Data:    data,
	}
	if err := insertSubmission(ctx, &sub); err != nil {
		log.Println("❌ Submission insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Submission received",
		"submissionId": sub.ID,
	})
}

// ListSubmissions returns submissions newest first, optionally filtered by
// pageKey, each with its form's schema joined in.
//
// GET /api/admin/submissions?pageKey=
func ListSubmissions(c *gin.Context) {
	ctx := c.Request.Context()

	subs, err := listSubmissions(ctx, c.Query("pageKey"))
	if err != nil {
		log.Println("❌ Failed to list submissions:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	defs, err := listForms(ctx)
	if err != nil {
		log.Println("❌ Failed to list forms:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load forms"})
		return
	}
	byKey := make(map[string]*forms.FormDefinition, len(defs))
	for i := range defs {
		byKey[defs[i].PageKey] = &defs[i]
	}

	out := make([]SubmissionWithForm, 0, len(subs))
	for _, s := range subs {
		out = append(out, SubmissionWithForm{FormSubmission: s, Form: byKey[s.PageKey]})
	}
	c.JSON(http.StatusOK, gin.H{"submissions": out})
}
