package notion

import (
	"time"
)

// RichText is one fragment of a title or rich_text property.
type RichText struct {
	Type      string    `json:"type,omitempty"`
	Text      *TextSpan `json:"text,omitempty"`
	PlainText string    `json:"plain_text,omitempty"`
}

// TextSpan is the writable part of a rich text fragment.
type TextSpan struct {
	Content string `json:"content"`
}

// SelectOption is a select property value.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue is a date property value. Start uses the civil date form
// (YYYY-MM-DD); times of day never appear in this schema.
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// PropertyValue is one property of a page, reading or writing. Only
// the field matching Type is populated.
type PropertyValue struct {
	Type   string         `json:"type,omitempty"`
	Title  []RichText     `json:"title,omitempty"`
	Number *float64       `json:"number,omitempty"`
	Select *SelectOption  `json:"select,omitempty"`
	Date   *DateValue     `json:"date,omitempty"`
}

// NewTitle builds a title property value.
func NewTitle(content string) PropertyValue {
	return PropertyValue{Title: []RichText{{Text: &TextSpan{Content: content}}}}
}

// NewNumber builds a number property value.
func NewNumber(n float64) PropertyValue {
	return PropertyValue{Number: &n}
}

// NewSelect builds a select property value.
func NewSelect(name string) PropertyValue {
	return PropertyValue{Select: &SelectOption{Name: name}}
}

// NewDate builds a date property value from a civil date string.
func NewDate(start string) PropertyValue {
	return PropertyValue{Date: &DateValue{Start: start}}
}

// TitleText flattens a title property to plain text.
func (p PropertyValue) TitleText() string {
	out := ""
	for _, rt := range p.Title {
		if rt.PlainText != "" {
			out += rt.PlainText
		} else if rt.Text != nil {
			out += rt.Text.Content
		}
	}
	return out
}

// NumberValue returns the number, zero when unset.
func (p PropertyValue) NumberValue() float64 {
	if p.Number == nil {
		return 0
	}
	return *p.Number
}

// SelectName returns the selected option name, empty when unset.
func (p PropertyValue) SelectName() string {
	if p.Select == nil {
		return ""
	}
	return p.Select.Name
}

// DateStart parses the date start as a civil date.
func (p PropertyValue) DateStart() (time.Time, bool) {
	if p.Date == nil || p.Date.Start == "" {
		return time.Time{}, false
	}
	// Date starts may carry a full timestamp; the civil prefix is all
	// this schema uses.
	s := p.Date.Start
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Page is a database row.
type Page struct {
	ID         string                   `json:"id"`
	Properties map[string]PropertyValue `json:"properties"`
}

// Property returns the named property, zero value when absent.
func (p *Page) Property(name string) PropertyValue {
	return p.Properties[name]
}

// Filter is a database query filter. Exactly one of Property-scoped
// conditions or the And/Or compounds should be set.
type Filter struct {
	Property string        `json:"property,omitempty"`
	Select   *SelectFilter `json:"select,omitempty"`
	Date     *DateFilter   `json:"date,omitempty"`
	And      []*Filter     `json:"and,omitempty"`
	Or       []*Filter     `json:"or,omitempty"`
}

// SelectFilter matches select properties.
type SelectFilter struct {
	Equals       string `json:"equals,omitempty"`
	DoesNotEqual string `json:"does_not_equal,omitempty"`
}

// DateFilter matches date properties with civil date strings.
type DateFilter struct {
	Equals     string `json:"equals,omitempty"`
	Before     string `json:"before,omitempty"`
	After      string `json:"after,omitempty"`
	OnOrBefore string `json:"on_or_before,omitempty"`
	OnOrAfter  string `json:"on_or_after,omitempty"`
}

// SelectEquals filters property == value.
func SelectEquals(property, value string) *Filter {
	return &Filter{Property: property, Select: &SelectFilter{Equals: value}}
}

// DateBefore filters property strictly before the civil date.
func DateBefore(property, date string) *Filter {
	return &Filter{Property: property, Date: &DateFilter{Before: date}}
}

// DateOnOrAfter filters property >= the civil date.
func DateOnOrAfter(property, date string) *Filter {
	return &Filter{Property: property, Date: &DateFilter{OnOrAfter: date}}
}

// DateOnOrBefore filters property <= the civil date.
func DateOnOrBefore(property, date string) *Filter {
	return &Filter{Property: property, Date: &DateFilter{OnOrBefore: date}}
}

// DateEquals filters property == the civil date.
func DateEquals(property, date string) *Filter {
	return &Filter{Property: property, Date: &DateFilter{Equals: date}}
}

// And combines filters conjunctively.
func And(filters ...*Filter) *Filter {
	return &Filter{And: filters}
}

// Sort orders query results by one property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// Sort directions.
const (
	Ascending  = "ascending"
	Descending = "descending"
)
