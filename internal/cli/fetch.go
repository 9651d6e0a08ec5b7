package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rohmanhakim/recipebox/internal/fetcher"
	"github.com/rohmanhakim/recipebox/internal/recipe"
	"github.com/rohmanhakim/recipebox/pkg/failure"
	"github.com/rohmanhakim/recipebox/pkg/fileutil"
	"github.com/rohmanhakim/recipebox/pkg/retry"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	endpointArgs  []string
	fetchAll      bool
	concurrency   int
	searchText    string
	sortOrder     string
	favoriteUUIDs []string
	favoritesOnly bool
	outputPath    string
	outputDir     string
	useSample     bool
)

// presetOrder fixes the listing order of fetch --all
var presetOrder = []string{"complete", "malformed", "empty"}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a recipe collection and list it.",
	Long: `fetch downloads the recipe collection served at an endpoint and lists it.

--endpoint takes a URL or one of the presets complete, malformed and empty.
It can be repeated; a repeated endpoint is answered from the cache when
--concurrency 1 makes the fetches run one after another.
Missing recipe fields are shown as placeholders rather than failing the fetch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := InitConfigWithError(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		order, err := parseSortFlag(sortOrder)
		if err != nil {
			return err
		}

		a := newApp(cfg, cmd.ErrOrStderr())
		return a.runFetch(cmd.Context(), cmd.OutOrStdout(), order)
	},
}

func init() {
	fetchCmd.Flags().StringArrayVar(&endpointArgs, "endpoint", []string{}, "endpoint URL or preset: complete, malformed, empty (can be repeated; defaults to the configured endpoint)")
	fetchCmd.Flags().BoolVar(&fetchAll, "all", false, "fetch every preset endpoint concurrently")
	fetchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "maximum fetches in flight (0 means no limit)")
	fetchCmd.Flags().StringVar(&searchText, "search", "", "keep recipes whose name or cuisine contains this text")
	fetchCmd.Flags().StringVar(&sortOrder, "sort", "", "name-asc, name-desc, cuisine-asc or cuisine-desc")
	fetchCmd.Flags().StringArrayVar(&favoriteUUIDs, "favorite", []string{}, "mark the recipe with this uuid as favorite (can be repeated)")
	fetchCmd.Flags().BoolVar(&favoritesOnly, "favorites-only", false, "list favorite recipes only")
	fetchCmd.Flags().StringVar(&outputPath, "output", "", "also write the listed recipes as JSON to this file")
	fetchCmd.Flags().StringVar(&outputDir, "output-dir", "", "write a JSON snapshot of each fetched collection into this directory")
	fetchCmd.Flags().BoolVar(&useSample, "sample", false, "use built-in sample data instead of the network")
}

func parseSortFlag(value string) (recipe.SortOrder, error) {
	if value == "" {
		return "", nil
	}
	return recipe.ParseSortOrder(value)
}

// resolveEndpoint expands presets; anything else is used verbatim.
func resolveEndpoint(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	if preset, ok := fetcher.Presets[value]; ok {
		return preset
	}
	return value
}

type fetchOutcome struct {
	endpoint   string
	collection *recipe.Collection
}

func (a *app) runFetch(ctx context.Context, out io.Writer, order recipe.SortOrder) error {
	endpoints := []string{a.cfg.RecipesEndpoint()}
	if len(endpointArgs) > 0 {
		endpoints = make([]string, 0, len(endpointArgs))
		for _, value := range endpointArgs {
			endpoints = append(endpoints, resolveEndpoint(value, a.cfg.RecipesEndpoint()))
		}
	}
	if fetchAll {
		endpoints = make([]string, 0, len(presetOrder))
		for _, name := range presetOrder {
			endpoints = append(endpoints, fetcher.Presets[name])
		}
	}

	outcomes := make([]fetchOutcome, len(endpoints))
	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, target := range endpoints {
		g.Go(func() error {
			collection, err := a.fetchCollection(gctx, target)
			if err != nil {
				return fmt.Errorf("fetching %s: %w", target, err)
			}
			outcomes[i] = fetchOutcome{endpoint: target, collection: collection}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.logger.Error("fetch failed", "error", err)
		return err
	}

	if outputDir != "" {
		for _, outcome := range outcomes {
			result, err := a.snapshots.Write(outputDir, outcome.endpoint, outcome.collection)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved snapshot of %s to %s\n", outcome.endpoint, result.Path())
		}
	}

	var listed []*recipe.Recipe
	for _, outcome := range outcomes {
		recipes := a.present(outcome.collection, order)
		printRecipes(out, outcome.endpoint, recipes)
		listed = append(listed, recipes...)
	}

	if outputPath != "" {
		data, err := json.MarshalIndent(recipe.NewCollection(listed), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", outputPath, err)
		}
		if ferr := fileutil.WriteFile(outputPath, data); ferr != nil {
			return ferr
		}
		fmt.Fprintf(out, "Wrote %d recipes to %s\n", len(listed), outputPath)
	}
	return nil
}

// fetchCollection retries retryable failures up to the configured attempts.
func (a *app) fetchCollection(ctx context.Context, target string) (*recipe.Collection, failure.ClassifiedError) {
	if useSample {
		return sampleFor(target), nil
	}
	return retry.Retry(ctx, a.retryParam(), func(ctx context.Context) (*recipe.Collection, failure.ClassifiedError) {
		return a.recipes.Fetch(ctx, target)
	})
}

func sampleFor(target string) *recipe.Collection {
	switch target {
	case fetcher.MalformedEndpoint:
		return recipe.MalformedSample()
	case fetcher.EmptyEndpoint:
		return recipe.EmptySample()
	default:
		return recipe.CompleteSample()
	}
}

// present applies favorites, search, sort and the favorites filter in that order.
func (a *app) present(collection *recipe.Collection, order recipe.SortOrder) []*recipe.Recipe {
	for _, id := range favoriteUUIDs {
		if r, ok := collection.FindByUUID(id); ok {
			r.SetFavorite(true)
		} else {
			a.logger.Debug("favorite uuid not in collection", "uuid", id)
		}
	}

	recipes := recipe.Search(collection.Recipes(), searchText)
	if order != "" {
		recipes = recipe.Sort(recipes, order)
	}
	if favoritesOnly {
		recipes = recipe.Favorites(recipes)
	}
	return recipes
}

func printRecipes(out io.Writer, target string, recipes []*recipe.Recipe) {
	fmt.Fprintf(out, "%s (%d recipes)\n", target, len(recipes))
	if len(recipes) == 0 {
		fmt.Fprintln(out, "  No recipes available.")
		return
	}
	for _, r := range recipes {
		mark := " "
		if r.IsFavorite() {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %-36s  %-12s  %s\n", mark, r.UUID(), r.Cuisine(), r.Name())
	}
}
