package dto

// ThemeRequest and ThemeResponse carry the display-theme preference.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}
