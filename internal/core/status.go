package core

import "strconv"

// StatusField is a single labelled value shown by HUDs and remote clients.
type StatusField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Status captures what a game wants to report about itself between ticks.
type Status struct {
	Game   string        `json:"game"`
	Phase  string        `json:"phase"`
	Fields []StatusField `json:"fields,omitempty"`
}

// Field returns the value stored under key.
func (s Status) Field(key string) (string, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// IntField builds an integer-valued status field.
func IntField(key, label string, value int) StatusField {
	return StatusField{Key: key, Label: label, Value: strconv.Itoa(value)}
}

// TextField builds a string-valued status field.
func TextField(key, label, value string) StatusField {
	return StatusField{Key: key, Label: label, Value: value}
}
