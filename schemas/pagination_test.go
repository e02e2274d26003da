package schemas

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    *Pagination
		wantErr string
	}{
		{
			name:  "no params means unpaginated",
			query: "",
			want:  nil,
		},
		{
			name:  "page alone gets defaults",
			query: "page=2",
			want:  &Pagination{Page: 2, Limit: 10, OrderBy: "uploaded_at", Direction: "DESC"},
		},
		{
			name:  "all params",
			query: "page=3&limit=25&orderBy=size&direction=ASC",
			want:  &Pagination{Page: 3, Limit: 25, OrderBy: "size", Direction: "ASC"},
		},
		{
			name:  "limit alone",
			query: "limit=100",
			want:  &Pagination{Page: 1, Limit: 100, OrderBy: "uploaded_at", Direction: "DESC"},
		},
		{
			name:    "zero page rejected",
			query:   "page=0",
			wantErr: "page must be a positive integer",
		},
		{
			name:    "negative page rejected",
			query:   "page=-1",
			wantErr: "page must be a positive integer",
		},
		{
			name:    "non numeric page rejected",
			query:   "page=abc",
			wantErr: "page must be a positive integer",
		},
		{
			name:    "limit over max rejected not clamped",
			query:   "limit=101",
			wantErr: "limit must be an integer between 1 and 100",
		},
		{
			name:    "zero limit rejected",
			query:   "limit=0",
			wantErr: "limit must be an integer between 1 and 100",
		},
		{
			name:    "unknown orderBy rejected",
			query:   "orderBy=password",
			wantErr: "orderBy must be one of name, size, uploaded_at",
		},
		{
			name:    "sql in orderBy rejected",
			query:   "orderBy=name%3B+DROP+TABLE+files",
			wantErr: "orderBy must be one of name, size, uploaded_at",
		},
		{
			name:    "lowercase direction rejected",
			query:   "direction=asc",
			wantErr: "direction must be ASC or DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			p, err := ParsePagination(values)
			if tt.wantErr != "" {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantErr, verr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestPaginationDerived(t *testing.T) {
	p := &Pagination{Page: 3, Limit: 10, OrderBy: "name", Direction: "ASC"}
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, "name ASC", p.OrderClause())

	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(1))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 2, p.TotalPages(11))
	assert.Equal(t, 3, p.TotalPages(30))
}
