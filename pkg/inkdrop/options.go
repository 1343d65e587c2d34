package inkdrop

// NoteSort is a field notes can be ordered by.
type NoteSort string

const (
	SortUpdatedAt NoteSort = "updatedAt"
	SortCreatedAt NoteSort = "createdAt"
	SortTitle     NoteSort = "title"
)

// NoteListOptions are the filters understood by GET /notes. Zero values are
// left out of the request.
type NoteListOptions struct {
	// Keyword is a search query using the app's search syntax, for example
	// `book:Blog tag:draft status:active`.
	Keyword    string
	Limit      int
	Skip       int
	Sort       NoteSort
	Descending bool
}

// Params converts o to query parameters.
func (o NoteListOptions) Params() *Params {
	p := NewParams()
	if o.Keyword != "" {
		p.Set("keyword", o.Keyword)
	}
	if o.Limit > 0 {
		p.Set("limit", o.Limit)
	}
	if o.Skip > 0 {
		p.Set("skip", o.Skip)
	}
	if o.Sort != "" {
		p.Set("sort", string(o.Sort))
	}
	if o.Descending {
		p.Set("descending", true)
	}
	return p
}

// ListOptions page through books, tags and files.
type ListOptions struct {
	Limit int
	Skip  int
}

// Params converts o to query parameters.
func (o ListOptions) Params() *Params {
	p := NewParams()
	if o.Limit > 0 {
		p.Set("limit", o.Limit)
	}
	if o.Skip > 0 {
		p.Set("skip", o.Skip)
	}
	return p
}

// GetOptions are the read options for a single document.
type GetOptions struct {
	// Rev fetches a specific revision instead of the latest.
	Rev string

	// Attachments includes attachment data in files.
	Attachments bool

	// Conflicts includes conflicting revisions.
	Conflicts bool
}

// Params converts o to query parameters.
func (o GetOptions) Params() *Params {
	p := NewParams()
	if o.Rev != "" {
		p.Set("rev", o.Rev)
	}
	if o.Attachments {
		p.Set("attachments", true)
	}
	if o.Conflicts {
		p.Set("conflicts", true)
	}
	return p
}
