package model

type UserID = int64

const EmptyUserID UserID = 0

type User struct {
	ID             UserID  `json:"user_id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	SelectedGenres []int64 `json:"selected_genres,omitempty"`
}
