package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"ropboard/internal/ai"
	"ropboard/internal/catalog"
	"ropboard/internal/concurrency"
	"ropboard/internal/config"
	"ropboard/internal/devutil"
	"ropboard/internal/domain"
)

func main() {
	var (
		source  = flag.String("catalog", "", "posting JSON url or path (default ROP_CATALOG)")
		outPath = flag.String("out", "ROP_Courses_enriched.json", "output path for the enriched catalog")
		workers = flag.Int("workers", 4, "parallel generation workers")
		force   = flag.Bool("force", false, "regenerate even if a posting already has variants")
		debug   = flag.Bool("debug", false, "log each rewritten posting")
	)
	flag.Parse()

	cfg := config.Load()
	src := *source
	if src == "" {
		src = cfg.CatalogSource
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("variants: missing env GEMINI_API_KEY")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	courses, err := catalog.Load(ctx, nil, src)
	if err != nil {
		log.Fatal(err)
	}

	gen, err := ai.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiRPM)
	if err != nil {
		log.Fatal(err)
	}

	bar := progressbar.Default(int64(len(courses)), "rewriting")

	results, errs := concurrency.ProcessParallel(ctx, courses,
		concurrency.ParallelOptions{MaxWorkers: *workers},
		func(ctx context.Context, index int, c domain.Course) (domain.Course, error) {
			defer bar.Add(1)

			if !*force && hasVariants(c) {
				return c, nil
			}

			v, err := gen.Rewrite(ctx, c)
			if err != nil {
				// Keep the original; a partial enrichment run is still useful.
				return c, err
			}
			ai.Apply(&c, v)
			if *debug {
				log.Printf("rewrote %v", devutil.Pick(c, "ID", "Title"))
			}
			return c, nil
		})

	for _, err := range errs {
		log.Printf("WARN: %v", err)
	}

	// An interrupted run leaves unprocessed zero-value entries; never
	// persist those as the enriched catalog.
	if err := ctx.Err(); err != nil {
		log.Fatalf("variants: aborted, not writing %s: %v", *outPath, err)
	}

	if err := catalog.SaveFile(*outPath, results); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d postings to %s (%d failures)", len(results), *outPath, len(errs))
}

func hasVariants(c domain.Course) bool {
	return c.StudentRolesAlt != "" || c.AcademicOutcomesAlt != "" ||
		c.TrainingMentorshipAlt != "" || c.SelectionCriteriaAlt != ""
}
