package classify

// Category pairs a destination folder name with the extensions it captures.
type Category struct {
	Name       string
	Extensions []string
}

// Fallback is the catch-all folder for extensions absent from the table.
const Fallback = "outros"

// table is consulted in declared order; the first category claiming an
// extension wins.
var table = []Category{
	{
		Name:       "images",
		Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp"},
	},
	{
		Name:       "documents",
		Extensions: []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".txt", ".csv", ".rtf"},
	},
	{
		Name:       "videos",
		Extensions: []string{".mp4", ".mkv", ".avi", ".mov", ".wmv"},
	},
	{
		Name:       "audio",
		Extensions: []string{".mp3", ".wav", ".aac", ".flac"},
	},
	{
		Name:       "archives",
		Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz"},
	},
	{
		Name:       "code",
		Extensions: []string{".js", ".html", ".css", ".py", ".java", ".c", ".cpp", ".json", ".xml"},
	},
}

// Categories returns the table in declared order. The returned slice is a
// copy; the extension lists are shared and must not be mutated.
func Categories() []Category {
	out := make([]Category, len(table))
	copy(out, table)
	return out
}
