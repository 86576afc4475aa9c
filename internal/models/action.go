package models

// Action is a single catalog-defined wellness suggestion
type Action struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
