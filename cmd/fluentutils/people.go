package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/ib-77/fluentutils/internal/config"
	"github.com/ib-77/fluentutils/internal/logger"
	"github.com/ib-77/fluentutils/pkg/monad"
	"github.com/ib-77/fluentutils/pkg/monad/async"
	"github.com/ib-77/fluentutils/pkg/pagination"
	"github.com/ib-77/fluentutils/pkg/pipeline"
)

type peopleOptions struct {
	count       int
	limit       int
	offset      int
	nameFormat  string
	emptyEvery  int
	showMetrics bool
}

func newPeopleCommand() *cobra.Command {
	opts := &peopleOptions{}

	cmd := &cobra.Command{
		Use:   "people",
		Short: "Generate people through the request pipeline and print one page",
		Long: `Generate people concurrently through a request pipeline with
validation, logging, panic recovery, metrics and tracing, then print the
requested page as JSON. People that fail to be created are replaced by an
empty person, as the generator in the samples does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return runPeople(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 25, "Number of people to generate")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Page size, page_limit from the configuration when zero")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Index of the first person on the page")
	cmd.Flags().StringVar(&opts.nameFormat, "name-format", "Person %d", "Format of the generated names")
	cmd.Flags().IntVar(&opts.emptyEvery, "empty-every", 0, "Leave every n-th name empty")
	cmd.Flags().BoolVar(&opts.showMetrics, "show-metrics", false, "Print the pipeline metrics after the page")

	return cmd
}

func runPeople(ctx context.Context, out, errOut io.Writer, cfg *config.Config, opts *peopleOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.count < 0 {
		return fmt.Errorf("invalid count %d: must not be negative", opts.count)
	}

	requestLog := logger.Init(errOut, cfg.Debug, cfg.Verbose).
		Level(zerolog.Level(logger.ParseLevel(cfg.LogLevel)))

	registry := prometheus.NewRegistry()
	metrics := pipeline.NewMetrics(
		pipeline.WithNamespace(cfg.MetricsNamespace),
		pipeline.WithMetricsServiceName(cfg.ServiceName),
	)
	if err := metrics.Register(registry); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	tp := sdktrace.NewTracerProvider()
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("Failed to shut down tracer provider")
		}
	}()

	handle := pipeline.NewBuilder[createPerson, Person]().
		WithAll(requestLog, trimmedName).
		WithTracing(pipeline.NewTracer(
			pipeline.WithTracerProvider(tp),
			pipeline.WithServiceName(cfg.ServiceName),
		)).
		WithMetrics(metrics).
		Build(createPersonHandler)

	ctx = pipeline.WithOrigin(ctx, "cli")
	people := generate(ctx, handle, opts)
	logger.Info().Int("count", len(people)).Msg("Generated people")

	limit := opts.limit
	if limit == 0 {
		limit = cfg.PageLimit
	}
	page := pagination.Paginate(&url.URL{Path: "/people"}, pagination.NewRequest(limit, opts.offset), people)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(page); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	if opts.showMetrics {
		return writeMetrics(out, registry)
	}
	return nil
}

// generate runs one pipeline request per person concurrently and collects
// the people in request order.
func generate(ctx context.Context, handle pipeline.Handler[createPerson, Person],
	opts *peopleOptions) []Person {
	pending := make([]*async.Pending[Person], opts.count)
	for i := range pending {
		req := createPerson{Index: i, Name: personName(opts, i)}
		pending[i] = async.Start(ctx, func(ctx context.Context) monad.Result[Person] {
			return handle(ctx, req)
		})
	}

	people := make([]Person, 0, opts.count)
	for i, p := range pending {
		person := async.MatchAsync(ctx, p,
			func(_ context.Context, person Person) Person {
				logger.Debug().Int("index", i).Str("name", person.Name).Msg("Person created")
				return person
			},
			func(_ context.Context, err monad.Error) Person {
				logger.Warn().Int("index", i).Str("code", err.Code.String()).Msg(err.Message.String())
				return EmptyPerson
			})
		people = append(people, person)
	}
	return people
}

func personName(opts *peopleOptions, i int) string {
	if opts.emptyEvery > 0 && (i+1)%opts.emptyEvery == 0 {
		return ""
	}
	if strings.Contains(opts.nameFormat, "%") {
		return fmt.Sprintf(opts.nameFormat, i)
	}
	return opts.nameFormat
}

func writeMetrics(out io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(out, family); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
