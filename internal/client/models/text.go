package models

// Text is one localized UI string.
type Text struct {
	Key     string `json:"key"`
	Content string `json:"content"`
}
