package backend

import (
	"net/http"
	"net/url"
	"strconv"
)

// DatatableQuery carries the server-side paging parameters the datatable
// list endpoints expect.
type DatatableQuery struct {
	Draw   int
	Start  int
	Length int
	Search string
}

func (q DatatableQuery) Values() url.Values {
	v := url.Values{}
	draw := q.Draw
	if draw <= 0 {
		draw = 1
	}
	length := q.Length
	if length <= 0 {
		length = 10
	}
	v.Set("draw", strconv.Itoa(draw))
	v.Set("start", strconv.Itoa(q.Start))
	v.Set("length", strconv.Itoa(length))
	v.Set("search[value]", q.Search)
	return v
}

// DatatableQueryFromRequest parses the paging parameters off an incoming
// gateway request so they can be forwarded unchanged.
func DatatableQueryFromRequest(r *http.Request) DatatableQuery {
	q := r.URL.Query()
	draw, _ := strconv.Atoi(q.Get("draw"))
	start, _ := strconv.Atoi(q.Get("start"))
	length, _ := strconv.Atoi(q.Get("length"))
	return DatatableQuery{
		Draw:   draw,
		Start:  start,
		Length: length,
		Search: q.Get("search[value]"),
	}
}
