// Package day07 answers questions about nested luggage rules.
//
// Each rule "<colour> bags contain <n> <colour> bag(s), ... ." becomes a set
// of weighted edges outer → inner in a core.Graph, weight = count.
// Two questions are asked of one colour:
//
//   - CountContainers: how many colours can eventually hold it
//     (breadth-first walk over incoming edges).
//   - CountContained: how many bags it holds in total
//     (reverse topological order of everything reachable from it).
//
// Both walks are iterative. A cyclic rule set is reported as
// dfs.ErrCycleDetected rather than looping forever.
package day07

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent2020/bfs"
	"github.com/katalvlaran/advent2020/core"
	"github.com/katalvlaran/advent2020/dfs"
	"github.com/katalvlaran/advent2020/solver"
)

// Title names the puzzle in listings.
const Title = "Handy Haversacks"

const emptyBag = "no other bags"

var (
	// ErrMalformedRule indicates a line that is not a luggage rule.
	ErrMalformedRule = errors.New("day07: could not parse rule")

	// ErrUnknownColour indicates a colour that no rule mentions.
	ErrUnknownColour = errors.New("day07: colour not found in rules")
)

var (
	outerRe = regexp.MustCompile(`^(.*) bags contain (.*)\.$`)
	innerRe = regexp.MustCompile(`^([0-9]+) (.*) bags?$`)
)

// Content is one (count, colour) entry inside a rule.
type Content struct {
	Colour string
	Count  int
}

// Rule lists what one colour of bag must contain.
type Rule struct {
	Colour   string
	Contents []Content
}

// ParseRule parses a single rule line.
func ParseRule(line string) (Rule, error) {
	m := outerRe.FindStringSubmatch(line)
	if m == nil {
		return Rule{}, fmt.Errorf("%w: %q", ErrMalformedRule, line)
	}
	rule := Rule{Colour: m[1]}
	if m[2] == emptyBag {
		return rule, nil
	}
	for _, part := range strings.Split(m[2], ", ") {
		im := innerRe.FindStringSubmatch(part)
		if im == nil {
			return Rule{}, fmt.Errorf("%w: %q", ErrMalformedRule, line)
		}
		n, err := strconv.Atoi(im[1])
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %q: %v", ErrMalformedRule, line, err)
		}
		rule.Contents = append(rule.Contents, Content{Colour: im[2], Count: n})
	}

	return rule, nil
}

// ParseRules parses every non-blank line. Lines that fail to parse are
// logged at warn level and skipped.
func ParseRules(lines []string, log *zap.Logger) []Rule {
	rules := make([]Rule, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRule(line)
		if err != nil {
			log.Warn("skipping rule", zap.String("line", line), zap.Error(err))
			continue
		}
		rules = append(rules, r)
	}
	log.Debug("rules parsed", zap.Int("count", len(rules)))

	return rules
}

// BuildGraph turns rules into a weighted graph with an edge outer → inner
// per content entry. Every outer colour becomes a vertex, even if empty.
func BuildGraph(rules []Rule) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	for _, r := range rules {
		if err := g.AddVertex(r.Colour); err != nil {
			return nil, err
		}
		for _, c := range r.Contents {
			if _, err := g.AddEdge(r.Colour, c.Colour, int64(c.Count)); err != nil {
				return nil, fmt.Errorf("day07: rule for %q: %w", r.Colour, err)
			}
		}
	}

	return g, nil
}

// CountContainers returns how many distinct colours can eventually contain
// colour.
func CountContainers(ctx context.Context, g *core.Graph, colour string) (int, error) {
	if !g.HasVertex(colour) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColour, colour)
	}
	res, err := bfs.BFS(g, colour, bfs.WithContext(ctx), bfs.WithDirection(bfs.Incoming))
	if err != nil {
		return 0, err
	}

	return len(res.Reached()), nil
}

// CountContained returns how many bags colour holds, counting every level
// of nesting: total(x) = Σ count·(1 + total(child)).
func CountContained(ctx context.Context, g *core.Graph, colour string) (int64, error) {
	if !g.HasVertex(colour) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColour, colour)
	}
	order, err := dfs.TopologicalSort(g, dfs.WithRoots(colour), dfs.WithCancelContext(ctx))
	if err != nil {
		return 0, err
	}

	// children precede parents when walking the order backwards
	totals := make(map[string]int64, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		edges, err := g.Successors(id)
		if err != nil {
			return 0, err
		}
		var sum int64
		for _, e := range edges {
			sum += e.Weight * (1 + totals[e.To])
		}
		totals[id] = sum
	}

	return totals[colour], nil
}

// Solve prints both answers for the configured bag colour. A colour that no
// rule mentions holds nothing and sits in nothing, so both answers are 0.
func Solve(ctx context.Context, req *solver.Request) error {
	rules := ParseRules(req.Lines(), req.Log)
	g, err := BuildGraph(rules)
	if err != nil {
		return err
	}
	colour := req.Params.BagColour
	if !g.HasVertex(colour) {
		req.Log.Warn("colour not found in rules", zap.String("colour", colour))
		req.Printf("Number of bags that eventually contain a %s bag is 0\n", colour)
		req.Printf("Number of bags that a %s bag contains is 0\n", colour)
		return nil
	}

	containers, err := CountContainers(ctx, g, colour)
	if err != nil {
		return err
	}
	req.Printf("Number of bags that eventually contain a %s bag is %d\n", colour, containers)

	contained, err := CountContained(ctx, g, colour)
	if err != nil {
		return err
	}
	req.Printf("Number of bags that a %s bag contains is %d\n", colour, contained)

	return nil
}
