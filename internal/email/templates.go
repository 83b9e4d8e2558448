package email

import (
	"fmt"

	"github.com/osteele/liquid"
)

const confirmationHTML = `<p>Welcome to our newsletter, {{ name }}!</p>
<p>Visit <a href="{{ confirmation_link }}">this link</a> to confirm your subscription.</p>`

const confirmationText = `Welcome to our newsletter, {{ name }}!
Visit {{ confirmation_link }} to confirm your subscription.`

// Templates renders email bodies from Liquid templates. Templates are parsed
// once at construction, rendering only binds variables.
type Templates struct {
	confirmationHTML *liquid.Template
	confirmationText *liquid.Template
}

func NewTemplates() (*Templates, error) {
	engine := liquid.NewEngine()

	html, err := engine.ParseString(confirmationHTML)
	if err != nil {
		return nil, fmt.Errorf("parse confirmation html template: %w", err)
	}
	text, err := engine.ParseString(confirmationText)
	if err != nil {
		return nil, fmt.Errorf("parse confirmation text template: %w", err)
	}
	return &Templates{
		confirmationHTML: html,
		confirmationText: text,
	}, nil
}

// RenderConfirmation produces the HTML and plain-text bodies of the
// confirmation email.
func (t *Templates) RenderConfirmation(name, confirmationLink string) (string, string, error) {
	bindings := map[string]any{
		"name":              name,
		"confirmation_link": confirmationLink,
	}
	html, err := t.confirmationHTML.RenderString(bindings)
	if err != nil {
		return "", "", fmt.Errorf("render confirmation html: %w", err)
	}
	text, err := t.confirmationText.RenderString(bindings)
	if err != nil {
		return "", "", fmt.Errorf("render confirmation text: %w", err)
	}
	return html, text, nil
}
