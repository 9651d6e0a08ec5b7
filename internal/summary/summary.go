// Package summary holds the encyclopedia summary record shown next to a recipe.
package summary

import "encoding/json"

const (
	NoTitle       = "No Wiki Title"
	NoDescription = "No Wiki Description"
	NoExtract     = "No Wiki Summary"
)

// Summary is an immutable encyclopedia summary. Its fields are never empty.
type Summary struct {
	title       string
	description string
	extract     string
}

// New applies the same defaulting as decoding: empty values become sentinels.
func New(title, description, extract string) Summary {
	return Summary{
		title:       orDefault(title, NoTitle),
		description: orDefault(description, NoDescription),
		extract:     orDefault(extract, NoExtract),
	}
}

func orDefault(value, sentinel string) string {
	if value == "" {
		return sentinel
	}
	return value
}

func (s Summary) Title() string {
	return s.title
}

func (s Summary) Description() string {
	return s.description
}

// Extract is the summary text itself.
func (s Summary) Extract() string {
	return s.extract
}

// Cost estimates the bytes held by the summary.
func (s Summary) Cost() int {
	return 48 + len(s.title) + len(s.description) + len(s.extract)
}

type summaryWire struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Extract     *string `json:"extract"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// UnmarshalJSON decodes the summary endpoint payload. Unknown keys are ignored.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var w summaryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = New(deref(w.Title), deref(w.Description), deref(w.Extract))
	return nil
}

func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summaryWire{
		Title:       &s.title,
		Description: &s.description,
		Extract:     &s.extract,
	})
}

func Decode(data []byte) (Summary, error) {
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// Sample is a canned summary for previews and tests.
func Sample() Summary {
	return New(
		"Apam balik",
		"Asian pancake",
		"Apam balik also known as martabak manis, terang bulan, peanut pancake or mànjiānguǒ, "+
			"is a sweet dessert originating in Fujian cuisine which now consists of many varieties "+
			"at specialist roadside stalls or restaurants throughout Brunei, Indonesia, Malaysia and Singapore.",
	)
}
