package pagination

import (
	"encoding/json"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   Request
		want Request
	}{
		{in: Request{}, want: Request{Limit: 10}},
		{in: Request{Limit: -4, Offset: -1}, want: Request{Limit: 10}},
		{in: Request{Limit: 1, Offset: 3}, want: Request{Limit: 1, Offset: 3}},
		{in: Request{Limit: 100}, want: Request{Limit: 100}},
		{in: Request{Limit: 101}, want: Request{Limit: 100}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Normalize())
	}
	assert.Equal(t, Request{Limit: 25, Offset: 5}, NewRequest(25, 5))
}

func TestBuildLinks(t *testing.T) {
	t.Parallel()

	base := mustParse(t, "/people?sort=name")

	cases := []struct {
		name     string
		req      Request
		total    int
		next     string
		previous string
	}{
		{name: "first page", req: Request{Limit: 10, Offset: 0}, total: 35,
			next: "/people?limit=10&offset=10&sort=name"},
		{name: "middle page", req: Request{Limit: 10, Offset: 20}, total: 35,
			next: "/people?limit=10&offset=30&sort=name", previous: "/people?limit=10&offset=10&sort=name"},
		{name: "last page", req: Request{Limit: 10, Offset: 30}, total: 35,
			previous: "/people?limit=10&offset=20&sort=name"},
		{name: "offset within first page", req: Request{Limit: 10, Offset: 4}, total: 35,
			next: "/people?limit=10&offset=14&sort=name", previous: "/people?limit=10&offset=0&sort=name"},
		{name: "offset past the end", req: Request{Limit: 10, Offset: 50}, total: 35,
			previous: "/people?limit=10&offset=25&sort=name"},
		{name: "offset past a short collection", req: Request{Limit: 10, Offset: 50}, total: 3,
			previous: "/people?limit=10&offset=0&sort=name"},
		{name: "exact fit", req: Request{Limit: 10, Offset: 0}, total: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			links := BuildLinks(base, tc.req, tc.total)

			require.NotNil(t, links.Self)
			assert.Equal(t, tc.req.Offset, mustOffset(t, links.Self))

			if tc.next == "" {
				assert.Nil(t, links.Next)
			} else {
				require.NotNil(t, links.Next)
				assert.Equal(t, tc.next, links.Next.String())
			}

			if tc.previous == "" {
				assert.Nil(t, links.Previous)
			} else {
				require.NotNil(t, links.Previous)
				assert.Equal(t, tc.previous, links.Previous.String())
			}
		})
	}
}

func mustOffset(t *testing.T, u *url.URL) int {
	t.Helper()
	offset, err := strconv.Atoi(u.Query().Get("offset"))
	require.NoError(t, err)
	return offset
}

func TestBuildLinks_DoesNotTouchBase(t *testing.T) {
	t.Parallel()

	base := mustParse(t, "/people")
	BuildLinks(base, Request{Limit: 5, Offset: 5}, 20)

	assert.Equal(t, "/people", base.String())
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c", "d", "e"}
	base := mustParse(t, "/letters")

	page := Paginate(base, Request{Limit: 2, Offset: 2}, items)

	assert.Equal(t, []string{"c", "d"}, page.Results)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 2, page.Offset)
	assert.Equal(t, "/letters?limit=2&offset=4", page.Links.Next.String())
	assert.Equal(t, "/letters?limit=2&offset=0", page.Links.Previous.String())

	empty := Paginate(base, Request{Limit: 2, Offset: 10}, items)
	assert.Empty(t, empty.Results)
	assert.Nil(t, empty.Links.Next)
}

func TestResponse_JSON(t *testing.T) {
	t.Parallel()

	page := Paginate(mustParse(t, "/letters"), Request{Limit: 2}, []string{"a", "b", "c"})

	raw, err := json.Marshal(page)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"links": {"self": "/letters?limit=2&offset=0", "next": "/letters?limit=2&offset=2"},
		"limit": 2,
		"offset": 0,
		"total": 3,
		"results": ["a", "b"]
	}`, string(raw))
}
