package models

// Text is a localized UI string keyed for the browser client.
type Text struct {
	Key     string `json:"key"`
	Content string `json:"content"`
}
