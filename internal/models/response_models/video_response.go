package response_models

// VideoResult is the trimmed-down YouTube search hit the frontend renders.
type VideoResult struct {
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}
