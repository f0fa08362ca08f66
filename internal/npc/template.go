package npc

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

var templateFuncs = sprig.TxtFuncMap()

// ExpandTemplate expands a template string using the provided data.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

const questTemplate = `{{ .Giver }} needs {{ .Amount }} {{ .Item | lower }}. Reward: {{ .RewardAmount }} {{ .RewardItem | lower }}.`

var dialogueTemplates = []string{
	`Hello, I am {{ .Name }}. This island is not as empty as it looks.`,
	`{{ .Name | upper }} SURVIVED THE WRECK. So did you, it seems.`,
	`Keep an eye on the tree line, {{ .Name }} has heard wolves at night.`,
}
