package fixture

import (
	"context"
	"strings"

	"github.com/Gobusters/ectologger"
	"github.com/pkg/errors"

	"github.com/Ramsey-B/clover/pkg/catalog"
	appctx "github.com/Ramsey-B/clover/pkg/context"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// Graph is the wired result of building a Document
type Graph struct {
	Roots     []*models.Account
	SalesReps []*models.SalesRep
	Catalog   *catalog.Catalog
}

// Root returns the top level account with the given name, or nil
func (g *Graph) Root(name string) *models.Account {
	for _, root := range g.Roots {
		if root.Name() == name {
			return root
		}
	}
	return nil
}

// Builder turns documents into account graphs. Segment names are resolved
// through the catalog, so the same name always yields the same segment.
type Builder struct {
	catalog *catalog.Catalog
	logger  ectologger.Logger
}

func NewBuilder(c *catalog.Catalog, logger ectologger.Logger) *Builder {
	return &Builder{
		catalog: c,
		logger:  logger,
	}
}

type buildState struct {
	reps map[string]*models.SalesRep
}

// Build wires every account in the document. Within an account, removals are
// applied before additions, then children are built in order.
func (b *Builder) Build(ctx context.Context, doc *Document) (*Graph, error) {
	ctx, span := tracing.StartSpan(ctx, "fixture.Builder.Build")
	defer span.End()

	log := b.logger.WithContext(ctx).WithFields(appctx.Fields(ctx))

	graph := &Graph{
		Roots:     make([]*models.Account, 0, len(doc.Accounts)),
		SalesReps: make([]*models.SalesRep, 0, len(doc.SalesReps)),
		Catalog:   b.catalog,
	}
	state := &buildState{reps: make(map[string]*models.SalesRep, len(doc.SalesReps))}

	for _, spec := range doc.SalesReps {
		name := spec.DisplayName()
		if _, exists := state.reps[name]; exists {
			return nil, errors.Errorf("sales rep '%s' declared twice", name)
		}
		rep := models.NewSalesRep(spec.FirstName, spec.LastName)
		state.reps[name] = rep
		graph.SalesReps = append(graph.SalesReps, rep)
	}

	for _, name := range doc.Segments {
		b.catalog.GetOrCreate(name)
	}

	for _, spec := range doc.Accounts {
		root, err := b.buildAccount(ctx, state, spec, nil, nil)
		if err != nil {
			log.WithError(err).Error("Failed to build account graph")
			return nil, err
		}
		graph.Roots = append(graph.Roots, root)
	}

	log.WithFields(map[string]any{
		"roots":      len(graph.Roots),
		"sales_reps": len(graph.SalesReps),
		"segments":   b.catalog.Len(),
	}).Info("Built account graph")

	return graph, nil
}

func (b *Builder) buildAccount(ctx context.Context, state *buildState, spec Account, parent *models.Account, path []string) (*models.Account, error) {
	path = append(path[:len(path):len(path)], spec.Name)
	where := strings.Join(path, " > ")

	var rep *models.SalesRep
	if spec.SalesRep != "" {
		var ok bool
		rep, ok = state.reps[spec.SalesRep]
		if !ok {
			return nil, errors.Errorf("account '%s': unknown sales rep '%s'", where, spec.SalesRep)
		}
	}

	segments := make([]*models.MarketSegment, 0, len(spec.Segments))
	for _, name := range spec.Segments {
		segments = append(segments, b.catalog.GetOrCreate(name))
	}

	var account *models.Account
	if parent == nil {
		account = models.NewAccount(spec.Name, rep, segments...)
	} else {
		account = models.NewChildAccount(spec.Name, parent, rep, segments...).Account
	}
	if rep != nil {
		rep.AddAccount(account)
	}

	for _, name := range spec.RemoveSegments {
		segment, ok := b.catalog.Lookup(name)
		if !ok {
			b.logger.WithContext(ctx).WithFields(map[string]any{
				"account": where,
				"segment": name,
			}).Warnf("Ignoring removal of unknown segment '%s'", name)
			continue
		}
		account.RemoveFromMarketSegment(segment)
	}

	for _, name := range spec.AddSegments {
		if err := account.AddToMarketSegment(b.catalog.GetOrCreate(name)); err != nil {
			return nil, errors.Wrapf(err, "account '%s'", where)
		}
	}

	for _, child := range spec.Children {
		if _, err := b.buildAccount(ctx, state, child, account, path); err != nil {
			return nil, err
		}
	}

	return account, nil
}
