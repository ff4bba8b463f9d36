package forms

import (
	"strings"
	"testing"
)

func twoStepForm() *FormDefinition {
	return &FormDefinition{
		PageKey: "membership",
		Steps: []Step{
			{
				ID:    "personal",
				Title: map[string]string{"en": "Personal details"},
				Fields: []Field{
					{ID: "name", Type: FieldInput, Label: map[string]string{"en": "Name"}, Required: true},
					{ID: "email", Type: FieldInput, Label: map[string]string{"en": "Email"}, Required: true},
					{ID: "notes", Type: FieldTextarea, Label: map[string]string{"en": "Notes"}},
				},
			},
			{
				ID:    "plan",
				Title: map[string]string{"en": "Plan"},
				Fields: []Field{
					{ID: "plan", Type: FieldSelect, Label: map[string]string{"en": "Plan"}, Required: true,
						Options: []Option{
							{Value: "family", Label: map[string]string{"en": "Family"}},
							{Value: "student", Label: map[string]string{"en": "Student"}},
						}},
				},
			},
		},
	}
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name    string
		def     *FormDefinition
		data    map[string]interface{}
		wantErr string
	}{
		{
			name:    "no steps",
			def:     &FormDefinition{PageKey: "contact"},
			data:    map[string]interface{}{},
			wantErr: "form has no steps",
		},
		{
			name:    "nil data",
			def:     twoStepForm(),
			data:    nil,
			wantErr: "invalid submission data",
		},
		{
			name: "complete submission passes",
			def:  twoStepForm(),
			data: map[string]interface{}{
				"step_0": map[string]interface{}{"field_0": "Ani", "field_1": "ani@example.com"},
				"step_1": map[string]interface{}{"field_0": "family"},
			},
		},
		{
			name: "missing required field in first step",
			def:  twoStepForm(),
			data: map[string]interface{}{
				"step_0": map[string]interface{}{"field_0": "Ani"},
				"step_1": map[string]interface{}{"field_0": "family"},
			},
			wantErr: `Field "Email" in step 1 is required`,
		},
		{
			name: "blank string counts as missing",
			def:  twoStepForm(),
			data: map[string]interface{}{
				"step_0": map[string]interface{}{"field_0": "  ", "field_1": "ani@example.com"},
				"step_1": map[string]interface{}{"field_0": "family"},
			},
			wantErr: `Field "Name" in step 1 is required`,
		},
		{
			name: "missing step reported with 1-based index",
			def:  twoStepForm(),
			data: map[string]interface{}{
				"step_0": map[string]interface{}{"field_0": "Ani", "field_1": "ani@example.com"},
			},
			wantErr: `Field "Plan" in step 2 is required`,
		},
		{
			name: "first failing field wins over later ones",
			def:  twoStepForm(),
			data: map[string]interface{}{},
			// step 0 field 0 fails before step 0 field 1 and step 1 field 0
			wantErr: `Field "Name" in step 1 is required`,
		},
		{
			name: "optional field may be absent",
			def:  twoStepForm(),
			data: map[string]interface{}{
				"step_0": map[string]interface{}{"field_0": "Ani", "field_1": "ani@example.com"},
				"step_1": map[string]interface{}{"field_0": "family"},
			},
		},
		{
			name: "select accepts any value",
			def:  twoStepForm(),
			data: map[string]interface{}{
				"step_0": map[string]interface{}{"field_0": "Ani", "field_1": "ani@example.com"},
				"step_1": map[string]interface{}{"field_0": "not-an-option"},
			},
		},
		{
			name: "non-string value satisfies required",
			def:  twoStepForm(),
			data: map[string]interface{}{
				"step_0": map[string]interface{}{"field_0": 42.0, "field_1": true},
				"step_1": map[string]interface{}{"field_0": []interface{}{"family"}},
			},
		},
		{
			name: "explicit null counts as missing",
			def:  twoStepForm(),
			data: map[string]interface{}{
				"step_0": map[string]interface{}{"field_0": nil, "field_1": "ani@example.com"},
				"step_1": map[string]interface{}{"field_0": "family"},
			},
			wantErr: `Field "Name" in step 1 is required`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.def, tt.data)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidationErrorNamesLabelAndStep(t *testing.T) {
	def := twoStepForm()
	err := ValidateSubmission(def, map[string]interface{}{
		"step_0": map[string]interface{}{"field_0": "Ani", "field_1": ""},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Email") {
		t.Errorf("error %q should name the field label", err.Error())
	}
	if !strings.Contains(err.Error(), "step 1") {
		t.Errorf("error %q should name the 1-based step", err.Error())
	}
}

func TestFieldLabelLocaleOrder(t *testing.T) {
	def := &FormDefinition{
		Steps: []Step{{
			Fields: []Field{{
				ID:       "name",
				Type:     FieldInput,
				Label:    map[string]string{"en": "", "hy": "Անուն"},
				Required: true,
			}},
		}},
	}
	// With no English label the Armenian one is reported, every time.
	for i := 0; i < 10; i++ {
		err := ValidateSubmission(def, map[string]interface{}{})
		if err == nil {
			t.Fatal("expected validation error")
		}
		want := `Field "Անուն" in step 1 is required`
		if err.Error() != want {
			t.Fatalf("error = %q, want %q", err.Error(), want)
		}
	}
}

func TestFieldLabelFallback(t *testing.T) {
	def := &FormDefinition{
		Steps: []Step{{
			Fields: []Field{{ID: "phone", Type: FieldInput, Required: true}},
		}},
	}
	err := ValidateSubmission(def, map[string]interface{}{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "phone") {
		t.Errorf("error %q should fall back to the field id", err.Error())
	}
}
