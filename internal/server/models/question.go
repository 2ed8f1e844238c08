package models

import "time"

// Question is stored as one document with its responses and favorites
// embedded. UserName is denormalised at write time.
type Question struct {
	ID        string
	UserID    string
	UserName  string
	Body      string
	CreatedAt time.Time
	Responses []Response
	Favorites []Favorite
}

func (q *Question) ResponseCount() int { return len(q.Responses) }

func (q *Question) FavoriteCount() int { return len(q.Favorites) }

// Response is owned by exactly one question.
type Response struct {
	ID        string    `json:"id"`
	UserName  string    `json:"username"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Favorite marks a question for a user; at most one per user per question.
type Favorite struct {
	ID        string    `json:"id"`
	UserName  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// FavoriteIndex returns the position of username's favorite or -1.
func (q *Question) FavoriteIndex(username string) int {
	for i, f := range q.Favorites {
		if f.UserName == username {
			return i
		}
	}
	return -1
}

// ResponseIndex returns the position of the response with id or -1.
func (q *Question) ResponseIndex(id string) int {
	for i, r := range q.Responses {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can mutate the nested slices freely.
func (q *Question) Clone() *Question {
	c := *q
	c.Responses = append([]Response(nil), q.Responses...)
	c.Favorites = append([]Favorite(nil), q.Favorites...)
	return &c
}
