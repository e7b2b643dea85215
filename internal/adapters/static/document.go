package static

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"starfolio/internal/domain"
)

// document mirrors content.yaml
type document struct {
	Portfolio portfolioDoc      `yaml:"portfolio"`
	Skies     map[string]skyDoc `yaml:"skies"`
}

type portfolioDoc struct {
	Profile        profileDoc   `yaml:"profile"`
	ProjectsIntro  string       `yaml:"projects_intro"`
	Projects       []projectDoc `yaml:"projects"`
	Placeholder    string       `yaml:"placeholder"`
	TechnicalIntro string       `yaml:"technical_intro"`
	Technical      []topicDoc   `yaml:"technical"`
	TechnicalNote  string       `yaml:"technical_note"`
	WritingsIntro  string       `yaml:"writings_intro"`
	Shelves        []shelfDoc   `yaml:"shelves"`
}

type profileDoc struct {
	Name        string     `yaml:"name"`
	Roles       []string   `yaml:"roles"`
	Affiliation string     `yaml:"affiliation"`
	About       string     `yaml:"about"`
	Photo       string     `yaml:"photo"`
	ResumeURL   string     `yaml:"resume_url"`
	Skills      []skillDoc `yaml:"skills"`
	Links       []linkDoc  `yaml:"links"`
}

type skillDoc struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
}

type linkDoc struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type projectDoc struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Link        string   `yaml:"link"`
	Status      string   `yaml:"status"`
}

type topicDoc struct {
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	ComingSoon bool   `yaml:"coming_soon"`
}

type shelfDoc struct {
	Key    string   `yaml:"key"`
	Title  string   `yaml:"title"`
	Intro  string   `yaml:"intro"`
	Topics []string `yaml:"topics"`
}

type skyDoc struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Stars  []starDoc  `yaml:"stars"`
	Decor  []decorDoc `yaml:"decor"`
	Edges  []edgeDoc  `yaml:"edges"`
}

type starDoc struct {
	Key   string  `yaml:"key"`
	View  string  `yaml:"view"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Label string  `yaml:"label"`
	Group string  `yaml:"group"`
}

type decorDoc struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Radius  float64 `yaml:"radius"`
	Fill    string  `yaml:"fill"`
	Opacity float64 `yaml:"opacity"`
	Glow    string  `yaml:"glow"`
}

type edgeDoc struct {
	From    endpointDoc `yaml:"from"`
	To      endpointDoc `yaml:"to"`
	Stroke  string      `yaml:"stroke"`
	Opacity float64     `yaml:"opacity"`
	Width   float64     `yaml:"width"`
}

// endpointDoc accepts a star key ("vega") or a coordinate pair ([120, 110])
type endpointDoc domain.Endpoint

// UnmarshalYAML implements yaml.Unmarshaler
func (e *endpointDoc) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var key string
		if err := value.Decode(&key); err != nil {
			return err
		}
		if key == "" {
			return fmt.Errorf("line %d: empty star reference", value.Line)
		}
		*e = endpointDoc(domain.StarRef(key))
		return nil

	case yaml.SequenceNode:
		var xy []float64
		if err := value.Decode(&xy); err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: coordinate needs 2 values, got %d", value.Line, len(xy))
		}
		*e = endpointDoc(domain.At(xy[0], xy[1]))
		return nil
	}
	return fmt.Errorf("line %d: endpoint must be a star key or [x, y]", value.Line)
}

func (d portfolioDoc) toDomain() domain.Portfolio {
	p := domain.Portfolio{
		Profile: domain.Profile{
			Name:        d.Profile.Name,
			Roles:       d.Profile.Roles,
			Affiliation: d.Profile.Affiliation,
			About:       d.Profile.About,
			Photo:       d.Profile.Photo,
			ResumeURL:   d.Profile.ResumeURL,
		},
		ProjectsIntro:  d.ProjectsIntro,
		Placeholder:    d.Placeholder,
		TechnicalIntro: d.TechnicalIntro,
		TechnicalNote:  d.TechnicalNote,
		WritingsIntro:  d.WritingsIntro,
	}
	for _, s := range d.Profile.Skills {
		p.Profile.Skills = append(p.Profile.Skills, domain.Skill(s))
	}
	for _, l := range d.Profile.Links {
		p.Profile.Links = append(p.Profile.Links, domain.Link{
			Kind:  domain.LinkKind(l.Kind),
			Label: l.Label,
			URL:   l.URL,
		})
	}
	for _, pr := range d.Projects {
		p.Projects = append(p.Projects, domain.Project(pr))
	}
	for _, t := range d.Technical {
		p.Technical = append(p.Technical, domain.Topic(t))
	}
	for _, s := range d.Shelves {
		p.Shelves = append(p.Shelves, domain.Shelf(s))
	}
	return p
}

func (d skyDoc) toDomain(name string) *domain.Sky {
	sky := &domain.Sky{
		Name:   name,
		Width:  d.Width,
		Height: d.Height,
	}
	for _, s := range d.Stars {
		sky.Stars = append(sky.Stars, domain.Point{
			Key:   s.Key,
			View:  domain.ViewID(s.View),
			X:     s.X,
			Y:     s.Y,
			Label: s.Label,
			Group: s.Group,
		})
	}
	for _, dc := range d.Decor {
		sky.Decor = append(sky.Decor, domain.Decor(dc))
	}
	for _, e := range d.Edges {
		sky.Edges = append(sky.Edges, domain.Edge{
			From:    domain.Endpoint(e.From),
			To:      domain.Endpoint(e.To),
			Stroke:  e.Stroke,
			Opacity: e.Opacity,
			Width:   e.Width,
		})
	}
	return sky
}
