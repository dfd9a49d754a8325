// Package prompt renders prompt text from a registry of versioned
// templates. Each render also yields a generation Spec (temperature and
// token budget) so callers never hardcode model parameters next to
// business logic.
package prompt

import (
	"fmt"
	"strings"
	"text/template"
)

// Spec carries generation parameters for a rendered prompt.
type Spec struct {
	Temperature float32
	MaxTokens   int
}

// Params holds named template parameters.
type Params map[string]string

// Template identifiers accepted by Render.
const (
	FewShot      = "few_shot.v1"
	ZeroShot     = "zero_shot.v1"
	CoTReasoning = "cot_reasoning.v1"
	ToTReasoning = "tot_reasoning.v1"
	JSONExtract  = "json_extract.v1"
)

type registered struct {
	tmpl *template.Template
	spec Spec
}

var registry = map[string]registered{
	FewShot: {
		tmpl: mustParse(FewShot, `You are a {{.role}}.

Study the following examples and answer in exactly the same format.

{{.examples}}

{{.constraints}}

Answer format: {{.format}}

{{.query}}`),
		spec: Spec{Temperature: 0.2, MaxTokens: 256},
	},

	ZeroShot: {
		tmpl: mustParse(ZeroShot, `You are a {{.role}}.

{{.instruction}}

{{.constraints}}

Answer format: {{.format}}`),
		spec: Spec{Temperature: 0, MaxTokens: 64},
	},

	CoTReasoning: {
		tmpl: mustParse(CoTReasoning, `You are a {{.role}}.

Think through the following problem step by step. Lay out your
reasoning before stating the conclusion.

{{.problem}}`),
		spec: Spec{Temperature: 0, MaxTokens: 1024},
	},

	ToTReasoning: {
		tmpl: mustParse(ToTReasoning, `You are a {{.role}}.

Explore {{.branches}} distinct strategies for the problem below. For
each strategy, reason through its consequences, then compare the
strategies and commit to the best one.

{{.problem}}`),
		spec: Spec{Temperature: 0.7, MaxTokens: 2048},
	},

	JSONExtract: {
		tmpl: mustParse(JSONExtract, `You are a {{.role}}.

Extract the information below into a single JSON object matching this
schema. Return only the JSON object, no commentary.

Schema:
{{.schema}}

Text:
{{.text}}`),
		spec: Spec{Temperature: 0, MaxTokens: 512},
	},
}

// Render produces prompt text plus its generation spec for a template
// identifier. Unknown identifiers and missing parameters are errors.
func Render(templateID string, params Params) (string, Spec, error) {
	entry, ok := registry[templateID]
	if !ok {
		return "", Spec{}, fmt.Errorf("unknown prompt template: %s", templateID)
	}

	var sb strings.Builder
	if err := entry.tmpl.Execute(&sb, params); err != nil {
		return "", Spec{}, fmt.Errorf("render %s: %w", templateID, err)
	}
	return sb.String(), entry.spec, nil
}

func mustParse(name, body string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=error").Parse(body))
}
