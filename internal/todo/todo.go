// Package todo holds the record shapes the API documents.
// Nothing constructs or stores these at runtime: TodoPartial types the POST
// payload, which is decoded and discarded, and both shapes are reflected into
// the OpenAPI schema.
package todo

// Todo is a single todo item.
type Todo struct {
	// The todo id
	ID int `json:"id"`
	// The todo title
	Title string `json:"title"`
	// The todo completed status
	Completed bool `json:"completed"`
}

// TodoPartial is the creation payload: a Todo without its server-assigned fields.
type TodoPartial struct {
	// The todo title
	Title string `json:"title"`
}
