package client

import "context"

// TodoPager walks a project's todos page by page, keeping the cursor
// between calls.
type TodoPager struct {
	client    *Client
	projectID int64
	limit     int
	cursor    int64
	done      bool
}

// NewTodoPager returns a pager over projectID. limit 0 uses the server
// default page size.
func (c *Client) NewTodoPager(projectID int64, limit int) *TodoPager {
	return &TodoPager{client: c, projectID: projectID, limit: limit}
}

// HasMore reports whether Next can return another page.
func (p *TodoPager) HasMore() bool { return !p.done }

// Next fetches the next page and advances the cursor. After the last page
// it returns an empty slice.
func (p *TodoPager) Next(ctx context.Context) ([]Todo, error) {
	if p.done {
		return []Todo{}, nil
	}

	page, err := p.client.TodoPage(ctx, p.projectID, p.cursor, p.limit)
	if err != nil {
		return nil, err
	}
	if page.NextCursor == nil {
		p.done = true
	} else {
		p.cursor = *page.NextCursor
	}
	return page.Todos, nil
}

// Reset rewinds the pager to the first page.
func (p *TodoPager) Reset() {
	p.cursor = 0
	p.done = false
}

// AllTodos drains every page of projectID.
func AllTodos(ctx context.Context, c *Client, projectID int64, pageSize int) ([]Todo, error) {
	pager := c.NewTodoPager(projectID, pageSize)
	out := make([]Todo, 0, 16)
	for pager.HasMore() {
		todos, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, todos...)
	}
	return out, nil
}
