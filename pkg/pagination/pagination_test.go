package pagination

import (
	"testing"
	"time"
)

func TestPaginationParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied", 0, 0, 1, 15},
		{"negative page", -3, 20, 1, 20},
		{"per page capped", 2, 500, 2, 100},
		{"valid unchanged", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PaginationParams{Page: tt.page, PerPage: tt.perPage}
			p.Validate()
			if p.Page != tt.wantPage || p.PerPage != tt.wantPerPage {
				t.Errorf("got page=%d per_page=%d, want page=%d per_page=%d",
					p.Page, p.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 15}
	if got := p.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30", got)
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page, perPage  int
		total          int64
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"first of many", 1, 10, 45, 5, true, false},
		{"middle page", 3, 10, 45, 5, true, true},
		{"last page", 5, 10, 45, 5, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"empty", 1, 10, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.perPage, tt.total)
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantHasNext)
			}
			if p.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantHasPrev)
			}
		})
	}
}

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", createdAt)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	if err != nil {
		t.Fatalf("DecodeCursor() error = %v", err)
	}
	if cursor.ID != "abc-123" {
		t.Errorf("cursor ID = %q, want %q", cursor.ID, "abc-123")
	}
	if !cursor.CreatedAt.Equal(createdAt) {
		t.Errorf("cursor CreatedAt = %v, want %v", cursor.CreatedAt, createdAt)
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	params := &CursorParams{Cursor: "not-base64!!"}
	if _, err := params.DecodeCursor(); err == nil {
		t.Error("expected error for malformed cursor")
	}

	empty := &CursorParams{}
	cursor, err := empty.DecodeCursor()
	if err != nil || cursor != nil {
		t.Errorf("empty cursor should decode to (nil, nil), got (%v, %v)", cursor, err)
	}
}

func TestNewCursorPagination(t *testing.T) {
	type row struct {
		ID        string
		CreatedAt time.Time
	}
	now := time.Now()
	items := []row{
		{"a", now},
		{"b", now.Add(time.Minute)},
		{"c", now.Add(2 * time.Minute)},
	}

	// Fetched limit+1 rows, so there is a next page and the extra row is trimmed.
	p, trimmed := NewCursorPagination(items, 2,
		func(r row) string { return r.ID },
		func(r row) time.Time { return r.CreatedAt })

	if len(trimmed) != 2 {
		t.Fatalf("trimmed length = %d, want 2", len(trimmed))
	}
	if !p.HasNext {
		t.Error("HasNext = false, want true")
	}
	if p.NextCursor == nil || p.PrevCursor == nil {
		t.Fatal("expected both cursors to be set")
	}

	next := &CursorParams{Cursor: *p.NextCursor}
	decoded, err := next.DecodeCursor()
	if err != nil {
		t.Fatalf("DecodeCursor() error = %v", err)
	}
	if decoded.ID != "b" {
		t.Errorf("next cursor points at %q, want last returned row %q", decoded.ID, "b")
	}
}
