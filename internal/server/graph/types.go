package graph

import (
	"time"

	"github.com/dmitrijs2005/qaboard/internal/server/models"
	graphql "github.com/graph-gophers/graphql-go"
)

// isoLayout renders RFC 3339 timestamps with millisecond precision.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

type userResolver struct {
	u     *models.User
	token string
}

func (r *userResolver) ID() graphql.ID    { return graphql.ID(r.u.ID) }
func (r *userResolver) Email() string     { return r.u.Email }
func (r *userResolver) Token() string     { return r.token }
func (r *userResolver) Username() string  { return r.u.UserName }
func (r *userResolver) CreatedAt() string { return formatTime(r.u.CreatedAt) }

type questionResolver struct {
	q *models.Question
}

func (r *questionResolver) ID() graphql.ID    { return graphql.ID(r.q.ID) }
func (r *questionResolver) Body() string      { return r.q.Body }
func (r *questionResolver) CreatedAt() string { return formatTime(r.q.CreatedAt) }
func (r *questionResolver) Username() string  { return r.q.UserName }

func (r *questionResolver) Responses() []*responseResolver {
	out := make([]*responseResolver, 0, len(r.q.Responses))
	for i := range r.q.Responses {
		out = append(out, &responseResolver{r: &r.q.Responses[i]})
	}
	return out
}

func (r *questionResolver) ResponseCount() int32 { return int32(r.q.ResponseCount()) }

func (r *questionResolver) Favorites() []*favoriteResolver {
	out := make([]*favoriteResolver, 0, len(r.q.Favorites))
	for i := range r.q.Favorites {
		out = append(out, &favoriteResolver{f: &r.q.Favorites[i]})
	}
	return out
}

func (r *questionResolver) FavoriteCount() int32 { return int32(r.q.FavoriteCount()) }

type responseResolver struct {
	r *models.Response
}

func (r *responseResolver) ID() graphql.ID    { return graphql.ID(r.r.ID) }
func (r *responseResolver) CreatedAt() string { return formatTime(r.r.CreatedAt) }
func (r *responseResolver) Username() string  { return r.r.UserName }
func (r *responseResolver) Body() string      { return r.r.Body }

type favoriteResolver struct {
	f *models.Favorite
}

func (r *favoriteResolver) ID() graphql.ID    { return graphql.ID(r.f.ID) }
func (r *favoriteResolver) CreatedAt() string { return formatTime(r.f.CreatedAt) }
func (r *favoriteResolver) Username() string  { return r.f.UserName }
