// Package models defines the newsletter publishing request shapes.
package models

// IssueContent carries both renderings of an issue body.
type IssueContent struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

// Issue is the inbound publish request.
type Issue struct {
	Title   string       `json:"title"`
	Content IssueContent `json:"content"`
}

// Validate reports whether the issue has everything needed to send.
func (i Issue) Validate() bool {
	return i.Title != "" && i.Content.HTML != "" && i.Content.Text != ""
}
