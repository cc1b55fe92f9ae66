package domain

// Page names a UI state. The backend only arbitrates transitions; rendering
// belongs to the client.
type Page string

const (
	PageBoot         Page = "BOOT"
	PageHome         Page = "HOME"
	PageLogin        Page = "LOGIN"
	PageRegister     Page = "REGISTER"
	PageTerminal     Page = "TERMINAL"
	PageHistory      Page = "HISTORY"
	PageAbout        Page = "ABOUT"
	PageTestimonials Page = "TESTIMONIALS"
	PageAdmin        Page = "ADMIN"
	PageMaintenance  Page = "MAINTENANCE"
	PageCodeView     Page = "CODE_VIEW"
)

var knownPages = map[Page]struct{}{
	PageBoot: {}, PageHome: {}, PageLogin: {}, PageRegister: {},
	PageTerminal: {}, PageHistory: {}, PageAbout: {}, PageTestimonials: {},
	PageAdmin: {}, PageMaintenance: {}, PageCodeView: {},
}

func (p Page) Valid() bool {
	_, ok := knownPages[p]
	return ok
}
