package directory

// NoResultsMessage is shown instead of cards when nothing matches.
const NoResultsMessage = "No results match your search / filter."

// Renderer projects a user list onto the Screen.
type Renderer struct {
	screen *Screen
}

func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render shows one card per user in order, or the empty-state message.
// Rendering the same list twice leaves the Screen unchanged.
func (r *Renderer) Render(users []User) {
	if len(users) == 0 {
		r.screen.ClearCards()
		r.screen.ShowMessage(NoResultsMessage, false)
		return
	}
	r.screen.ShowMessage("", false)
	r.screen.SetCards(users)
}
