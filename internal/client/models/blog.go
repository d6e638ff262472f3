package models

type Blog struct {
	ID      string `json:"_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (b Blog) EntityID() string { return b.ID }

type BlogDraft struct {
	Title   string
	Content string
}

func DraftOfBlog(b Blog) BlogDraft {
	return BlogDraft{Title: b.Title, Content: b.Content}
}
