package news

// ArticleDTO mirrors the create-article form.
type ArticleDTO struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Status   string   `json:"status"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d ArticleDTO) Validate() error {
	if d.Title == "" {
		return ValidationError{Msg: "title is required"}
	}
	if d.Content == "" {
		return ValidationError{Msg: "content is required"}
	}
	switch d.Status {
	case "", "draft", "published":
	default:
		return ValidationError{Msg: "status must be draft or published"}
	}
	return nil
}
