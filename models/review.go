package models

// Review is immutable once created.
type Review struct {
	ID       string `json:"id" yaml:"id"`
	DesignID string `json:"designId" yaml:"design_id"`
	UserID   string `json:"userId" yaml:"user_id"`
	UserName string `json:"userName" yaml:"user_name"`
	Rating   int    `json:"rating" yaml:"rating"` // 1..5, enforced by callers
	Comment  string `json:"comment" yaml:"comment"`
	Date     string `json:"date" yaml:"date"`
}
