package entity

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// PageSnapshot is the DOM state captured when a step fails.
type PageSnapshot struct {
	URL   string
	Title string
	HTML  string
}
