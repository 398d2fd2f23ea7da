package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/summary"
)

// FileReader resolves referenced period files. The os-backed reader is used
// in production; tests hand in a fake.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// OSReader reads referenced files from disk.
type OSReader struct{}

// ReadFile implements FileReader via os.ReadFile.
func (OSReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// document is the raw shape of a ledger file before period references are
// resolved.
type document struct {
	Name        string              `yaml:"name"`
	Accounts    model.AccountTable  `yaml:"accounts"`
	AccountSums model.CategoryTable `yaml:"account_sums"`
	Periods     []periodRef         `yaml:"periods"`
}

// periodRef is either an inline period or a path to a file holding one.
type periodRef struct {
	inline *model.Period
	path   string
}

func (p *periodRef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		p.path = node.Value
		return nil
	case yaml.MappingNode:
		var period model.Period
		if err := node.Decode(&period); err != nil {
			return err
		}
		p.inline = &period
		return nil
	}
	return fmt.Errorf("line %d: period must be a mapping or a file path", node.Line)
}

// Load reads and resolves the ledger file at path.
func Load(path string) (*model.Ledger, error) {
	return LoadWith(path, OSReader{})
}

// LoadWith is Load with an explicit reader for the ledger file and any
// referenced period files.
func LoadWith(path string, fr FileReader) (*model.Ledger, error) {
	data, err := fr.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return Parse(data, filepath.Dir(path), fr)
}

// Parse decodes ledger data, resolving period file references relative to
// dir, and returns a fully dereferenced, indexed ledger.
func Parse(data []byte, dir string, fr FileReader) (*model.Ledger, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing ledger: %w", err)
	}

	if err := checkAccounts(doc.Accounts); err != nil {
		return nil, err
	}

	out := &model.Ledger{
		Name:        doc.Name,
		Accounts:    doc.Accounts,
		AccountSums: doc.AccountSums,
	}

	seen := make(map[string]bool, len(doc.Periods))
	for _, ref := range doc.Periods {
		period, err := realize(ref, dir, fr)
		if err != nil {
			return nil, err
		}
		if seen[period.Name] {
			return nil, &summary.DuplicatePeriodError{Name: period.Name}
		}
		seen[period.Name] = true

		for i := range period.Transactions {
			period.Transactions[i].Index = i
		}
		out.Periods = append(out.Periods, period)
	}
	return out, nil
}

// realize dereferences a period reference into its period.
func realize(ref periodRef, dir string, fr FileReader) (model.Period, error) {
	if ref.inline != nil {
		return *ref.inline, nil
	}

	path := ref.path
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	data, err := fr.ReadFile(path)
	if err != nil {
		return model.Period{}, fmt.Errorf("reading period file %s: %w", ref.path, err)
	}

	var period model.Period
	if err := yaml.Unmarshal(data, &period); err != nil {
		return model.Period{}, fmt.Errorf("parsing period file %s: %w", ref.path, err)
	}
	return period, nil
}

// checkAccounts rejects an account name declared under more than one type
// group (or twice in one).
func checkAccounts(table model.AccountTable) error {
	seen := make(map[string]model.AccountType)
	for _, group := range table {
		for _, name := range group.Accounts {
			if prev, ok := seen[name]; ok {
				return fmt.Errorf("account %q declared as both %s and %s", name, prev, group.Type)
			}
			seen[name] = group.Type
		}
	}
	return nil
}
