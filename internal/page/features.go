package page

// Feature is one card in the row under the hero.
type Feature struct {
	Title       string
	Description string // markdown
}

// features is fixed; the page always shows these three cards in this order.
var features = []Feature{
	{"🌌 Galactic Tutorials", "Explore programming concepts through interactive space-themed lessons"},
	{"🛸 Code Challenges", "Solve coding problems in different planetary environments"},
	{"🌠 Community Hub", "Connect with fellow space coders in our interstellar forum"},
}

// Features returns a copy of the feature cards.
func Features() []Feature {
	return append([]Feature(nil), features...)
}

// Fixed page copy.
const (
	heroTitle      = "Cosmic Code Explorer"
	heroSubtitle   = "Discover the universe of programming through an interstellar journey"
	editorLabel    = "🚀 Launch Code Editor"
	inputLabel     = "Enter your code here:"
	successMessage = "Launching code into space..."
	previewHeading = "Code Preview:"
)
