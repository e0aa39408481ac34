package dto

type CreatePostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Thumbnail string `json:"thumbnail"`
}

// UpdatePostRequest различает отсутствующее поле и пустую строку:
// nil означает "оставить как было".
type UpdatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Thumbnail *string `json:"thumbnail"`
}

type CreateReplyRequest struct {
	Content string `json:"content"`
}
