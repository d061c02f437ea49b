package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		query    string
		expected Params
	}{
		{name: "defaults", query: "", expected: Params{Page: 1, Limit: 20, Offset: 0}},
		{name: "explicit", query: "?page=3&limit=10", expected: Params{Page: 3, Limit: 10, Offset: 20}},
		{name: "limit clamped", query: "?limit=1000", expected: Params{Page: 1, Limit: MaxLimit, Offset: 0}},
		{name: "garbage", query: "?page=abc&limit=-4", expected: Params{Page: 1, Limit: 20, Offset: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/"+tc.query, nil)

			assert.Equal(t, tc.expected, Parse(c))
		})
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage([]string{"a", "b"}, 41, New(2, 20))
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 2, page.Page)

	empty := NewPage[string](nil, 0, New(1, 20))
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.Pages)
}
