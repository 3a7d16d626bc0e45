package akahu

// Response envelopes used by the API: a single item, a plain list, or a
// paginated list with a cursor. Pagination beyond passing the cursor through
// is the caller's concern.

type itemResponse[T any] struct {
	Success bool `json:"success"`
	Item    T    `json:"item"`
}

type listResponse[T any] struct {
	Success bool `json:"success"`
	Items   []T  `json:"items"`
}

type pageResponse[T any] struct {
	Success bool         `json:"success"`
	Items   []T          `json:"items"`
	Cursor  cursorObject `json:"cursor"`
}

type cursorObject struct {
	Next *Cursor `json:"next"`
}

// errorResponse is the API's error envelope: {"success": false, "message": "..."}.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
