package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/summary"
)

// Options control optional renderer output.
type Options struct {
	// Transfers lists every contributing transfer under each account.
	Transfers bool
}

// Encode writes a summed bookkeeping as YAML to w. All mappings keep the
// summary's order: the global grouping first, then each period in input
// order; within a grouping the named account sums, then the account types.
// Yearly-result type groups only appear in the global section, since within
// a single period they are just the opening balance echoed back.
func Encode(w io.Writer, s *summary.SummedBookkeeping, opts Options) error {
	root := newMapping()
	root.add("name", scalar(s.Name))
	root.add("global", grouping(s.Global, true, opts))

	periods := newMapping()
	for _, p := range s.Periods {
		periods.add(p.Name, grouping(p.Grouping, false, opts))
	}
	root.add("periods", periods.node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root.node); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return enc.Close()
}

func grouping(g summary.SummedGrouping, global bool, opts Options) *yaml.Node {
	m := newMapping()

	sums := newMapping()
	for _, cs := range g.AccountSums {
		sums.add(cs.Key, category(cs, opts))
	}
	m.add("account_sums", sums.node)

	types := newMapping()
	for _, cs := range g.AccountTypes {
		if !global && cs.Key == string(model.AccountTypeYearlyResult) {
			continue
		}
		types.add(cs.Key, category(cs, opts))
	}
	m.add("account_types", types.node)

	return m.node
}

func category(cs summary.CategorySum, opts Options) *yaml.Node {
	m := newMapping()
	m.add("total", scalar(cs.Total.String()))

	accounts := newMapping()
	for _, sa := range cs.Accounts {
		if opts.Transfers {
			accounts.add(sa.Name, accountDetail(sa))
		} else {
			accounts.add(sa.Name, scalar(sa.Total.String()))
		}
	}
	m.add("accounts", accounts.node)

	return m.node
}

func accountDetail(sa *summary.SummedAccount) *yaml.Node {
	m := newMapping()
	m.add("total", scalar(sa.Total.String()))

	list := &yaml.Node{Kind: yaml.SequenceNode}
	for _, tr := range sa.Transfers {
		line := fmt.Sprintf("%s %s %s (%s)", tr.Date.Format("2006-01-02"), tr.Name, tr.Amount, tr.ID)
		list.Content = append(list.Content, scalar(line))
	}
	m.add("transfers", list)

	return m.node
}

// mapBuilder grows an ordered YAML mapping node.
type mapBuilder struct {
	node *yaml.Node
}

func newMapping() mapBuilder {
	return mapBuilder{node: &yaml.Node{Kind: yaml.MappingNode}}
}

func (m mapBuilder) add(key string, value *yaml.Node) {
	m.node.Content = append(m.node.Content, scalar(key), value)
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}
