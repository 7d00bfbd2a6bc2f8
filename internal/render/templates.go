package render

import (
	"html/template"

	"github.com/evan/sports-club-website/internal/domain"
)

// View models handed to the templates. Renderers fill these from collection
// records; empty fields make the template skip the element.

type heroView struct {
	Type     domain.HeroType
	Tagline  string
	Headline string
	MediaURL string
	Links    []domain.Link
}

type headerView struct {
	SiteName string
	NavItems []domain.Link
	CTA      *domain.Link
}

type footerView struct {
	Columns     []domain.FooterColumn
	SocialLinks []domain.Link
	Copyright   string
}

type pageView struct {
	SiteName string
	Title    string
	Header   headerView
	Hero     *heroView
	Body     template.HTML
	Footer   footerView
}

type programCardView struct {
	Title     string
	Subtitle  string
	DetailURL string // empty when the program has no slug; no anchor rendered
	TypeLabel string
	Location  string
	Gender    string
	Ages      string
	Dates     string
	Duration  string
	Price     string
	Schedule  string
	CoachName string
	Featured  bool
}

type programGridView struct {
	Heading string
	Cards   []programCardView
	Failed  bool
}

type coachView struct {
	Name     string
	Role     string
	Bio      template.HTML
	PhotoURL string
}

type coachListView struct {
	Heading string
	Coaches []coachView
	Failed  bool
}

type testimonialView struct {
	Name       string
	Occupation string
	Quote      string
	Location   string
}

type testimonialsView struct {
	Heading      string
	Testimonials []testimonialView
	Failed       bool
}

type faqItemView struct {
	Question string
	Answer   template.HTML
}

type faqView struct {
	Heading string
	Items   []faqItemView
}

type galleryView struct {
	Heading string
	Images  []galleryImage
}

type sponsorTiersView struct {
	Heading string
	Tiers   []sponsorTier
}

type ctaView struct {
	Heading string
	Body    template.HTML
	Links   []domain.Link
}

type tournamentView struct {
	Name        string
	Description template.HTML
	Date        string
	Location    string
	Link        string
	ImageURL    string
}

type tournamentListView struct {
	Heading     string
	Tournaments []tournamentView
	Failed      bool
}

type contentView struct {
	Heading string
	Body    template.HTML
}

type programDetailView struct {
	Card        programCardView
	Description template.HTML
	Coach       *coachView
}

var tmpl = template.Must(template.New("site").Parse(`
{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} | {{.SiteName}}</title>
</head>
<body>
{{template "header" .Header}}
{{with .Hero}}{{template "hero" .}}{{end}}
<main>{{.Body}}</main>
{{template "footer" .Footer}}
</body>
</html>{{end}}

{{define "header"}}<header class="site-header">
<a class="brand" href="/">{{.SiteName}}</a>
<nav>{{range .NavItems}}{{if .URL}}<a href="{{.URL}}">{{.Label}}</a>{{end}}{{end}}</nav>
{{with .CTA}}{{if .URL}}<a class="cta" href="{{.URL}}">{{.Label}}</a>{{end}}{{end}}
</header>{{end}}

{{define "footer"}}<footer class="site-footer">
{{range .Columns}}<div class="footer-column">
{{if .Heading}}<h4>{{.Heading}}</h4>{{end}}
{{range .Links}}{{if .URL}}<a href="{{.URL}}">{{.Label}}</a>{{end}}{{end}}
</div>{{end}}
{{if .SocialLinks}}<div class="social">{{range .SocialLinks}}{{if .URL}}<a href="{{.URL}}">{{.Label}}</a>{{end}}{{end}}</div>{{end}}
{{if .Copyright}}<p class="copyright">{{.Copyright}}</p>{{end}}
</footer>{{end}}

{{define "hero"}}<section class="hero hero-{{.Type}}">
{{if .Tagline}}<p class="tagline">{{.Tagline}}</p>{{end}}
{{if .Headline}}<h1>{{.Headline}}</h1>{{end}}
{{if .MediaURL}}<img src="{{.MediaURL}}" alt="">{{end}}
{{range .Links}}{{if .URL}}<a class="hero-link" href="{{.URL}}">{{.Label}}</a>{{end}}{{end}}
</section>{{end}}

{{define "content"}}<section class="block block-content">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{.Body}}
</section>{{end}}

{{define "programCard"}}<article class="program-card{{if .Featured}} featured{{end}}">
{{if .DetailURL}}<a href="{{.DetailURL}}"><h3>{{.Title}}</h3></a>{{else}}<h3>{{.Title}}</h3>{{end}}
{{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
<ul class="program-meta">
{{if .TypeLabel}}<li>{{.TypeLabel}}</li>{{end}}
{{if .Location}}<li>{{.Location}}</li>{{end}}
{{if .Gender}}<li>{{.Gender}}</li>{{end}}
{{if .Ages}}<li>{{.Ages}}</li>{{end}}
{{if .Dates}}<li>{{.Dates}}</li>{{end}}
{{if .Duration}}<li>{{.Duration}}</li>{{end}}
{{if .Schedule}}<li>{{.Schedule}}</li>{{end}}
{{if .Price}}<li>{{.Price}}</li>{{end}}
{{if .CoachName}}<li>Coach {{.CoachName}}</li>{{end}}
</ul>
</article>{{end}}

{{define "programGrid"}}<section class="block block-programs">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{if .Failed}}<p class="error">Something went wrong. Please try again later.</p>
{{else if not .Cards}}<p class="empty">No programs available.</p>
{{else}}<div class="program-grid">{{range .Cards}}{{template "programCard" .}}{{end}}</div>{{end}}
</section>{{end}}

{{define "coachList"}}<section class="block block-coaches">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{if .Failed}}<p class="error">Something went wrong. Please try again later.</p>
{{else if not .Coaches}}<p class="empty">No coaches listed.</p>
{{else}}<div class="coach-list">{{range .Coaches}}<article class="coach">
{{if .PhotoURL}}<img src="{{.PhotoURL}}" alt="{{.Name}}">{{end}}
<h3>{{.Name}}</h3>
{{if .Role}}<p class="role">{{.Role}}</p>{{end}}
{{if .Bio}}<div class="bio">{{.Bio}}</div>{{end}}
</article>{{end}}</div>{{end}}
</section>{{end}}

{{define "testimonials"}}<section class="block block-testimonials">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{if .Failed}}<p class="error">Something went wrong. Please try again later.</p>
{{else if not .Testimonials}}<p class="empty">No testimonials yet.</p>
{{else}}{{range .Testimonials}}<blockquote class="testimonial">
<p>{{.Quote}}</p>
<cite>{{.Name}}{{if .Occupation}}, {{.Occupation}}{{end}}{{if .Location}} &mdash; {{.Location}}{{end}}</cite>
</blockquote>{{end}}{{end}}
</section>{{end}}

{{define "faq"}}<section class="block block-faq">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{range .Items}}<details class="faq-item">
<summary>{{.Question}}</summary>
<div>{{.Answer}}</div>
</details>{{end}}
</section>{{end}}

{{define "gallery"}}<section class="block block-gallery">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div class="gallery">{{range .Images}}{{if .URL}}<figure>
<img src="{{.URL}}" alt="{{.Caption}}">
{{if .Caption}}<figcaption>{{.Caption}}</figcaption>{{end}}
</figure>{{end}}{{end}}</div>
</section>{{end}}

{{define "sponsorTiers"}}<section class="block block-sponsors">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{range .Tiers}}<div class="sponsor-tier">
{{if .Name}}<h3>{{.Name}}</h3>{{end}}
<div class="sponsors">{{range .Sponsors}}
{{if .URL}}<a href="{{.URL}}">{{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.Name}}">{{else}}{{.Name}}{{end}}</a>
{{else}}{{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.Name}}">{{else}}<span>{{.Name}}</span>{{end}}{{end}}
{{end}}</div>
</div>{{end}}
</section>{{end}}

{{define "cta"}}<section class="block block-cta">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{if .Body}}<div>{{.Body}}</div>{{end}}
{{range .Links}}{{if .URL}}<a class="button" href="{{.URL}}">{{.Label}}</a>{{end}}{{end}}
</section>{{end}}

{{define "tournamentList"}}<section class="block block-tournaments">
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{if .Failed}}<p class="error">Something went wrong. Please try again later.</p>
{{else if not .Tournaments}}<p class="empty">No upcoming tournaments.</p>
{{else}}{{range .Tournaments}}<article class="tournament">
{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}
<h3>{{.Name}}</h3>
{{if .Date}}<p class="date">{{.Date}}</p>{{end}}
{{if .Location}}<p class="location">{{.Location}}</p>{{end}}
{{if .Description}}<div>{{.Description}}</div>{{end}}
{{if .Link}}<a href="{{.Link}}">Tournament details</a>{{end}}
</article>{{end}}{{end}}
</section>{{end}}

{{define "programDetail"}}<section class="program-detail">
{{template "programCard" .Card}}
{{if .Description}}<div class="description">{{.Description}}</div>{{end}}
{{with .Coach}}<aside class="coach">
{{if .PhotoURL}}<img src="{{.PhotoURL}}" alt="{{.Name}}">{{end}}
<h3>Coach {{.Name}}</h3>
{{if .Role}}<p class="role">{{.Role}}</p>{{end}}
{{if .Bio}}<div class="bio">{{.Bio}}</div>{{end}}
</aside>{{end}}
</section>{{end}}

{{define "notFound"}}<section class="not-found">
<h1>Page not found</h1>
<p>The page you are looking for does not exist.</p>
<a href="/">Back to home</a>
</section>{{end}}
`))
