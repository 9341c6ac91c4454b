// Package outreach generates personalized direct messages for new prospects
// and writes simulated-send transcripts so the full pipeline can be exercised
// without messaging anyone.
package outreach

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template is one outreach message layout. Bodies use {name}, {group},
// {trade}, {preview_file}, and {payment_link} placeholders.
type Template struct {
	Name string `yaml:"name"`
	Body string `yaml:"body"`
}

type templatesFile struct {
	Templates []Template `yaml:"templates"`
}

// builtinTemplateA is the best performer from manual testing, used when no
// template file exists.
var builtinTemplateA = Template{
	Name: "template_a",
	Body: `Hey {name}! 👋

Saw your post in {group} — looks like you do great {trade} work! I actually do business card and brand design for contractors here in Tennessee.

I took a few minutes and mocked up what a refreshed version of your card could look like (totally free, no strings attached). Thought you might like to see it:

📎 [ATTACHED: {preview_file}]

If you want the full print-ready files, it's just $50 and I can have them to you today. Includes 3 different design options + unlimited tweaks until you love it.

Payment link: {payment_link}

Either way, keep crushing it! 💪`,
}

// LoadTemplates reads the message templates from a YAML file, falling back to
// the built-in template when the file is absent.
func LoadTemplates(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Template{builtinTemplateA}, nil
		}
		return nil, fmt.Errorf("read DM templates: %w", err)
	}

	var file templatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse DM templates %s: %w", path, err)
	}
	if len(file.Templates) == 0 {
		return []Template{builtinTemplateA}, nil
	}
	return file.Templates, nil
}
