// Package prompts holds the model prompt templates. Defaults are embedded
// so the binary works out of the box; a prompts.yaml in the working
// directory overrides them.
package prompts

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

//go:embed prompts.yaml
var defaultPrompts []byte

type Prompts struct {
	System    SystemPrompts    `yaml:"system"`
	Outline   OutlinePrompts   `yaml:"outline"`
	Keywords  KeywordPrompts   `yaml:"keywords"`
	Assistant AssistantPrompts `yaml:"assistant"`
}

type SystemPrompts struct {
	Outline   string `yaml:"outline"`
	Keywords  string `yaml:"keywords"`
	Assistant string `yaml:"assistant"`
}

type OutlinePrompts struct {
	Generate string `yaml:"generate"`
}

type KeywordPrompts struct {
	Generate string `yaml:"generate"`
}

type AssistantPrompts struct {
	Answer string `yaml:"answer"`
}

type OutlineParams struct {
	Topic            string
	ReferenceText    string
	MinContentSlides int
	MaxContentSlides int
}

type KeywordParams struct {
	Title   string
	Bullets string
}

type AssistantParams struct {
	Question string
}

// Load returns the embedded defaults, overridden by prompts.yaml when one
// exists in the working directory.
func Load() (*Prompts, error) {
	if data, err := os.ReadFile(defaultPromptsPath); err == nil {
		return parse(data)
	}
	return parse(defaultPrompts)
}

func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Prompts, error) {
	var p Prompts
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse prompts: %w", err)
	}
	return &p, nil
}

func (p *Prompts) RenderOutline(params OutlineParams) (string, error) {
	return render(p.Outline.Generate, params)
}

func (p *Prompts) RenderKeywords(params KeywordParams) (string, error) {
	return render(p.Keywords.Generate, params)
}

func (p *Prompts) RenderAssistant(params AssistantParams) (string, error) {
	return render(p.Assistant.Answer, params)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
