package layout

// PageData holds data shared by every page
type PageData struct {
	Title string
}
