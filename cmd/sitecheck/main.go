// sitecheck exercises a running content server the way a site frontend
// would: it fetches each collection, applies facet queries, resolves a page,
// and reports the resulting fetch states.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/evan/sports-club-website/internal/apiclient"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the content server")
	pageSlug := flag.String("page", "home", "page slug to resolve")
	programType := flag.String("type", "", "program type facet (empty = all)")
	location := flag.String("location", "", "location facet (empty = all)")
	flag.Parse()

	client := apiclient.New(*baseURL)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	failures := 0

	// Featured programs, the home-page grid query.
	featured := true
	programs := &apiclient.LatestFetcher[apiclient.Program]{}
	<-programs.Fetch(ctx, func(ctx context.Context) ([]apiclient.Program, error) {
		return client.ListPrograms(ctx, apiclient.ProgramQuery{
			Featured: &featured,
			Limit:    6,
			Depth:    1,
		})
	})
	failures += report("featured programs", programs.Snapshot())

	// Faceted program listing, the programs-page query.
	faceted := &apiclient.LatestFetcher[apiclient.Program]{}
	<-faceted.Fetch(ctx, func(ctx context.Context) ([]apiclient.Program, error) {
		return client.ListPrograms(ctx, apiclient.ProgramQuery{
			ProgramType: *programType,
			Location:    *location,
			Depth:       1,
		})
	})
	failures += report("faceted programs", faceted.Snapshot())

	coaches := &apiclient.LatestFetcher[apiclient.Coach]{}
	<-coaches.Fetch(ctx, func(ctx context.Context) ([]apiclient.Coach, error) {
		return client.ListCoaches(ctx, 8)
	})
	failures += report("coaches", coaches.Snapshot())

	testimonials := &apiclient.LatestFetcher[apiclient.Testimonial]{}
	<-testimonials.Fetch(ctx, func(ctx context.Context) ([]apiclient.Testimonial, error) {
		return client.ListTestimonials(ctx)
	})
	failures += report("testimonials", testimonials.Snapshot())

	page, err := client.GetPage(ctx, *pageSlug)
	if err != nil {
		log.Printf("ERROR [sitecheck.Page] slug=%s: %v", *pageSlug, err)
		failures++
	} else {
		fmt.Printf("page %-24s ok (published=%v)\n", page.Slug, page.Published)
	}

	if failures > 0 {
		fmt.Printf("%d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("all checks passed")
}

func report[T any](name string, snap apiclient.Snapshot[T]) int {
	switch snap.Status {
	case apiclient.StatusError:
		fmt.Printf("%-24s error: %v\n", name, snap.Err)
		return 1
	case apiclient.StatusEmpty:
		fmt.Printf("%-24s empty\n", name)
	default:
		fmt.Printf("%-24s %d doc(s)\n", name, len(snap.Docs))
	}
	return 0
}
