package forms

import "academy-cms/internal/domain/forms"

// ---------- requests

type OptionInput struct {
	Value string            `json:"value"`
	Label map[string]string `json:"label"`
}

type FieldInput struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Label       map[string]string `json:"label"`
	Placeholder map[string]string `json:"placeholder"`
	Required    bool              `json:"required"`
	Options     []OptionInput     `json:"options"`
}

type StepInput struct {
	ID     string            `json:"id"`
	Title  map[string]string `json:"title"`
	Fields []FieldInput      `json:"fields"`
}

type CreateFormRequest struct {
	PageKey string      `json:"pageKey"`
	Steps   []StepInput `json:"steps"`
}

type UpdateFormRequest struct {
	Steps []StepInput `json:"steps"`
}

// ---------- responses

// SubmissionWithForm is a submission row with its form's schema joined in, so
// the admin UI can label the synthetic step/field keys. Form is null for
// submissions whose form has since been deleted.
type SubmissionWithForm struct {
	forms.FormSubmission
	Form *forms.FormDefinition `json:"form"`
}

func toSteps(inputs []StepInput) []forms.Step {
	steps := make([]forms.Step, 0, len(inputs))
	for _, s := range inputs {
		step := forms.Step{
			ID:     s.ID,
			Title:  s.Title,
			Fields: make([]forms.Field, 0, len(s.Fields)),
		}
		for _, f := range s.Fields {
			field := forms.Field{
				ID:          f.ID,
				Type:        f.Type,
				Label:       f.Label,
				Placeholder: f.Placeholder,
				Required:    f.Required,
			}
			for _, o := range f.Options {
				field.Options = append(field.Options, forms.Option{Value: o.Value, Label: o.Label})
			}
			step.Fields = append(step.Fields, field)
		}
		steps = append(steps, step)
	}
	return steps
}
