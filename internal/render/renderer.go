// Package render turns page documents into HTML. A page is an ordered list
// of typed blocks; each block type has a renderer, and unknown types are
// skipped without affecting neighbors.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"

	"github.com/evan/sports-club-website/internal/config"
	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/format"
	"github.com/evan/sports-club-website/internal/service"
	"github.com/yuin/goldmark"
)

type Renderer struct {
	programs     *service.ProgramService
	coaches      *service.CoachService
	testimonials *service.TestimonialService
	tournaments  *service.TournamentService
	globals      *service.GlobalService
	markdown     goldmark.Markdown
	siteName     string
}

func NewRenderer(services *service.Services, cfg *config.Config) *Renderer {
	return &Renderer{
		programs:     services.Program,
		coaches:      services.Coach,
		testimonials: services.Testimonial,
		tournaments:  services.Tournament,
		globals:      services.Global,
		markdown:     goldmark.New(),
		siteName:     cfg.SiteName,
	}
}

// RenderPage produces the full HTML document for a page: header and footer
// from the global documents, the hero, then each block in stored order.
func (r *Renderer) RenderPage(ctx context.Context, page *domain.Page) (template.HTML, error) {
	body, err := r.RenderBlocks(ctx, page.Blocks)
	if err != nil {
		return "", err
	}

	view := pageView{
		SiteName: r.siteName,
		Title:    page.Title,
		Header:   r.headerView(ctx),
		Hero:     heroViewOf(page),
		Body:     body,
		Footer:   r.footerView(ctx),
	}

	return execute("layout", view)
}

// RenderBlocks renders an ordered block list into one HTML fragment.
// Rendering is deterministic: the same list yields the same output.
func (r *Renderer) RenderBlocks(ctx context.Context, data []byte) (template.HTML, error) {
	blocks, err := domain.DecodeBlocks(data)
	if err != nil {
		return "", fmt.Errorf("decode blocks: %w", err)
	}

	var out bytes.Buffer
	for _, block := range blocks {
		fragment := r.renderBlock(ctx, block)
		out.WriteString(string(fragment))
	}
	return template.HTML(out.String()), nil
}

// renderBlock dispatches on the discriminant. The default arm is an explicit
// no-op: an unrecognized type renders nothing and the surrounding blocks are
// unaffected.
func (r *Renderer) renderBlock(ctx context.Context, block domain.Block) template.HTML {
	switch block.BlockType {
	case domain.BlockContent:
		return r.renderContent(block)
	case domain.BlockProgramGrid:
		return r.renderProgramGrid(ctx, block)
	case domain.BlockCoachList:
		return r.renderCoachList(ctx, block)
	case domain.BlockTestimonials:
		return r.renderTestimonials(ctx, block)
	case domain.BlockFAQ:
		return r.renderFAQ(block)
	case domain.BlockGallery:
		return r.renderGallery(block)
	case domain.BlockSponsorTiers:
		return r.renderSponsorTiers(block)
	case domain.BlockCTA:
		return r.renderCTA(block)
	case domain.BlockTournamentList:
		return r.renderTournamentList(ctx, block)
	default:
		log.Printf("WARN [render.Block] skipping unknown block type %q", block.BlockType)
		return ""
	}
}

func (r *Renderer) renderContent(block domain.Block) template.HTML {
	var b contentBlock
	if err := decodeBlock(block, &b); err != nil {
		return ""
	}
	return execQuiet("content", contentView{
		Heading: b.Heading,
		Body:    r.markdownHTML(b.Body),
	})
}

func (r *Renderer) renderProgramGrid(ctx context.Context, block domain.Block) template.HTML {
	var b programGridBlock
	if err := decodeBlock(block, &b); err != nil {
		return ""
	}

	input := service.ListInput{
		ProgramType: b.ProgramType,
		Location:    b.Location,
		Limit:       b.Limit,
		Depth:       1,
	}
	if b.FeaturedOnly {
		featured := true
		input.Featured = &featured
	}

	view := programGridView{Heading: b.Heading}
	programs, err := r.programs.List(ctx, input)
	if err != nil {
		log.Printf("ERROR [render.ProgramGrid]: %v", err)
		view.Failed = true
	} else {
		facets := domain.ProgramFacets{ProgramType: b.ProgramType, Location: b.Location}
		for _, p := range domain.FilterPrograms(programs, facets) {
			view.Cards = append(view.Cards, buildProgramCard(p))
		}
	}

	return execQuiet("programGrid", view)
}

func (r *Renderer) renderCoachList(ctx context.Context, block domain.Block) template.HTML {
	var b coachListBlock
	if err := decodeBlock(block, &b); err != nil {
		return ""
	}

	view := coachListView{Heading: b.Heading}
	coaches, err := r.coaches.List(ctx, b.Limit)
	if err != nil {
		log.Printf("ERROR [render.CoachList]: %v", err)
		view.Failed = true
	} else {
		for _, c := range coaches {
			view.Coaches = append(view.Coaches, coachView{
				Name:     c.Name,
				Role:     c.Role,
				Bio:      r.markdownHTML(c.Bio),
				PhotoURL: c.PhotoURL,
			})
		}
	}

	return execQuiet("coachList", view)
}

func (r *Renderer) renderTestimonials(ctx context.Context, block domain.Block) template.HTML {
	var b testimonialsBlock
	if err := decodeBlock(block, &b); err != nil {
		return ""
	}

	view := testimonialsView{Heading: b.Heading}
	testimonials, err := r.testimonials.List(ctx, b.Limit)
	if err != nil {
		log.Printf("ERROR [render.Testimonials]: %v", err)
		view.Failed = true
	} else {
		for _, t := range testimonials {
			view.Testimonials = append(view.Testimonials, testimonialView{
				Name:       t.Name,
				Occupation: t.Occupation,
				Quote:      t.Quote,
				Location:   t.Location,
			})
		}
	}

	return execQuiet("testimonials", view)
}

func (r *Renderer) renderFAQ(block domain.Block) template.HTML {
	var b faqBlock
	if err := decodeBlock(block, &b); err != nil {
		return ""
	}
	view := faqView{Heading: b.Heading}
	for _, item := range b.Items {
		if item.Question == "" {
			continue
		}
		view.Items = append(view.Items, faqItemView{
			Question: item.Question,
			Answer:   r.markdownHTML(item.Answer),
		})
	}
	return execQuiet("faq", view)
}

func (r *Renderer) renderGallery(block domain.Block) template.HTML {
	var b galleryBlock
	if err := decodeBlock(block, &b); err != nil {
		return ""
	}
	return execQuiet("gallery", galleryView{Heading: b.Heading, Images: b.Images})
}

func (r *Renderer) renderSponsorTiers(block domain.Block) template.HTML {
	var b sponsorTiersBlock
	if err := decodeBlock(block, &b); err != nil {
		return ""
	}
	return execQuiet("sponsorTiers", sponsorTiersView{Heading: b.Heading, Tiers: b.Tiers})
}

func (r *Renderer) renderCTA(block domain.Block) template.HTML {
	var b ctaBlock
	if err := decodeBlock(block, &b); err != nil {
		return ""
	}
	return execQuiet("cta", ctaView{
		Heading: b.Heading,
		Body:    r.markdownHTML(b.Body),
		Links:   b.Links,
	})
}

func (r *Renderer) renderTournamentList(ctx context.Context, block domain.Block) template.HTML {
	var b tournamentListBlock
	if err := decodeBlock(block, &b); err != nil {
		return ""
	}

	view := tournamentListView{Heading: b.Heading}
	tournaments, err := r.tournaments.List(ctx, b.Limit)
	if err != nil {
		log.Printf("ERROR [render.TournamentList]: %v", err)
		view.Failed = true
	} else {
		for _, t := range tournaments {
			view.Tournaments = append(view.Tournaments, tournamentView{
				Name:        t.Name,
				Description: r.markdownHTML(t.Description),
				Date:        format.DateRange(t.Date, t.Date),
				Location:    t.Location,
				Link:        t.ExternalLink,
				ImageURL:    t.ImageURL,
			})
		}
	}

	return execQuiet("tournamentList", view)
}

// RenderProgramDetail produces the full HTML document for /programs/{slug}.
func (r *Renderer) RenderProgramDetail(ctx context.Context, program *domain.Program) (template.HTML, error) {
	detail := programDetailView{
		Card:        buildProgramCard(program),
		Description: r.markdownHTML(program.Description),
	}
	if program.Coach != nil {
		detail.Coach = &coachView{
			Name:     program.Coach.Name,
			Role:     program.Coach.Role,
			Bio:      r.markdownHTML(program.Coach.Bio),
			PhotoURL: program.Coach.PhotoURL,
		}
	}

	body, err := execute("programDetail", detail)
	if err != nil {
		return "", err
	}

	view := pageView{
		SiteName: r.siteName,
		Title:    program.Title,
		Header:   r.headerView(ctx),
		Body:     body,
		Footer:   r.footerView(ctx),
	}
	return execute("layout", view)
}

// RenderNotFound produces the not-found document for unknown slugs.
func (r *Renderer) RenderNotFound(ctx context.Context) (template.HTML, error) {
	body, err := execute("notFound", nil)
	if err != nil {
		return "", err
	}
	view := pageView{
		SiteName: r.siteName,
		Title:    "Not Found",
		Header:   r.headerView(ctx),
		Body:     body,
		Footer:   r.footerView(ctx),
	}
	return execute("layout", view)
}

// buildProgramCard maps a program record to its card view. A program with no
// slug gets no detail URL and the card renders without a navigable anchor.
func buildProgramCard(p *domain.Program) programCardView {
	card := programCardView{
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		TypeLabel: format.ProgramTypeLabel(p.ProgramType),
		Location:  format.LocationLabel(p.Location),
		Gender:    format.GenderLabel(p.Gender),
		Ages:      format.AgeRange(p.MinAge, p.MaxAge),
		Dates:     format.DateRange(p.StartDate, p.EndDate),
		Duration:  format.Duration(p.StartDate, p.EndDate),
		Price:     p.Price,
		Schedule:  p.WeeklySchedule,
		Featured:  p.Featured,
	}
	if p.Slug != "" {
		card.DetailURL = "/programs/" + p.Slug
	}
	if p.Coach != nil {
		card.CoachName = p.Coach.Name
	}
	return card
}

func heroViewOf(page *domain.Page) *heroView {
	if page.HeroType == "" || page.HeroType == domain.HeroNone {
		return nil
	}
	links, err := domain.DecodeLinks(page.HeroLinks)
	if err != nil {
		log.Printf("ERROR [render.Hero] bad hero links on page %q: %v", page.Slug, err)
	}
	return &heroView{
		Type:     page.HeroType,
		Tagline:  page.HeroTagline,
		Headline: page.HeroHeadline,
		MediaURL: page.HeroMediaURL,
		Links:    links,
	}
}

func (r *Renderer) headerView(ctx context.Context) headerView {
	view := headerView{SiteName: r.siteName}
	global, err := r.globals.Get(ctx, domain.GlobalHeader)
	if err != nil {
		log.Printf("ERROR [render.Header]: %v", err)
		return view
	}
	var data domain.HeaderData
	if err := unmarshalGlobal(global, &data); err != nil {
		log.Printf("ERROR [render.Header] bad header document: %v", err)
		return view
	}
	view.NavItems = data.NavItems
	view.CTA = data.CTA
	return view
}

func (r *Renderer) footerView(ctx context.Context) footerView {
	var view footerView
	global, err := r.globals.Get(ctx, domain.GlobalFooter)
	if err != nil {
		log.Printf("ERROR [render.Footer]: %v", err)
		return view
	}
	var data domain.FooterData
	if err := unmarshalGlobal(global, &data); err != nil {
		log.Printf("ERROR [render.Footer] bad footer document: %v", err)
		return view
	}
	view.Columns = data.Columns
	view.SocialLinks = data.SocialLinks
	view.Copyright = data.Copyright
	return view
}

func unmarshalGlobal(global *domain.SiteGlobal, into any) error {
	if len(global.Data) == 0 {
		return nil
	}
	return json.Unmarshal(global.Data, into)
}

func (r *Renderer) markdownHTML(md string) template.HTML {
	if md == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(md), &buf); err != nil {
		log.Printf("ERROR [render.Markdown]: %v", err)
		return ""
	}
	return template.HTML(buf.String())
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// execQuiet is for block fragments: a template failure degrades to an empty
// fragment so the rest of the page still renders.
func execQuiet(name string, data any) template.HTML {
	out, err := execute(name, data)
	if err != nil {
		log.Printf("ERROR [render.%s]: %v", name, err)
		return ""
	}
	return out
}
