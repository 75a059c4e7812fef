package models

// Terms is a localized terms-of-service document.
type Terms struct {
	Language string `json:"language"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}
