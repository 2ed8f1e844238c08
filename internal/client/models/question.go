// Package models holds the client-side view of API objects, shaped after
// the GraphQL selection sets the client sends.
package models

// Question as returned by the API. Timestamps stay in their wire form.
type Question struct {
	ID            string     `json:"id"`
	Body          string     `json:"body"`
	CreatedAt     string     `json:"createdAt"`
	UserName      string     `json:"username"`
	Responses     []Response `json:"responses"`
	ResponseCount int        `json:"responseCount"`
	Favorites     []Favorite `json:"favorites"`
	FavoriteCount int        `json:"favoriteCount"`
}

type Response struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
	UserName  string `json:"username"`
}

type Favorite struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UserName  string `json:"username"`
}

// FavoritedBy reports whether username has favorited q.
func (q *Question) FavoritedBy(username string) bool {
	for _, f := range q.Favorites {
		if f.UserName == username {
			return true
		}
	}
	return false
}
