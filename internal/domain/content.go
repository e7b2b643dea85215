package domain

// ComingSoon is shown under every topic that has no article yet
const ComingSoon = "coming soon"

// LinkKind identifies an external profile link
type LinkKind string

const (
	LinkGitHub   LinkKind = "github"
	LinkLinkedIn LinkKind = "linkedin"
	LinkEmail    LinkKind = "email"
	LinkResume   LinkKind = "resume"
)

// Link is an external reference. URL is passed through unchanged.
type Link struct {
	Kind  LinkKind
	Label string
	URL   string
}

// Skill is a tool shown on the profile panel
type Skill struct {
	Name string
	Logo string // placeholder caption until a real logo exists
}

// Profile is the content of the home panel
type Profile struct {
	Name        string
	Roles       []string
	Affiliation string
	About       string
	Skills      []Skill
	Photo       string
	ResumeURL   string
	Links       []Link
}

// Link returns the profile link of the given kind
func (p Profile) Link(kind LinkKind) (Link, bool) {
	for _, l := range p.Links {
		if l.Kind == kind {
			return l, true
		}
	}
	return Link{}, false
}

// Project is an entry on the projects panel
type Project struct {
	Title       string
	Description string
	Tags        []string
	Link        string
	Status      string
}

// Topic is an entry on the technical writings panel
type Topic struct {
	Title      string
	Subtitle   string
	ComingSoon bool
}

// Shelf is one tab of the writings panel
type Shelf struct {
	Key    string // "books" or "games"
	Title  string
	Intro  string
	Topics []string
}

// Portfolio is the full static content of the site
type Portfolio struct {
	Profile Profile

	ProjectsIntro string
	Projects      []Project
	Placeholder   string

	TechnicalIntro string
	Technical      []Topic
	TechnicalNote  string

	WritingsIntro string
	Shelves       []Shelf
}

// Shelf returns the writings tab with the given key
func (p Portfolio) Shelf(key string) (Shelf, bool) {
	for _, s := range p.Shelves {
		if s.Key == key {
			return s, true
		}
	}
	return Shelf{}, false
}
