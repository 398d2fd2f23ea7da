package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AccountType classifies declared accounts and forms one rollup dimension.
type AccountType string

const (
	// AccountTypeIncome is a source of money.
	AccountTypeIncome AccountType = "income"
	// AccountTypeDebtor owes money to you.
	AccountTypeDebtor AccountType = "debtor"
	// AccountTypeAsset is value held right now.
	AccountTypeAsset AccountType = "asset"
	// AccountTypeCreditor is money you owe.
	AccountTypeCreditor AccountType = "creditor"
	// AccountTypeExpense is a sink of money.
	AccountTypeExpense AccountType = "expense"
	// AccountTypeYearlyResult carries an opening balance into a bookkeeping
	// run so that it can be checked against the previous run's result.
	AccountTypeYearlyResult AccountType = "yearly_result"
)

// ParseAccountType converts a declaration key into an AccountType.
// The pre-rename spelling "initial_value" is accepted for old ledger files.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeIncome, AccountTypeDebtor, AccountTypeAsset,
		AccountTypeCreditor, AccountTypeExpense, AccountTypeYearlyResult:
		return AccountType(s), nil
	case "initial_value":
		return AccountTypeYearlyResult, nil
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// AccountGroup is one type-grouped account declaration: every account in
// Accounts has type Type. Member order is the declared order.
type AccountGroup struct {
	Type     AccountType
	Accounts []string
}

// AccountTable holds all account declarations in declaration order.
type AccountTable []AccountGroup

// UnmarshalYAML decodes a mapping of account type to account names,
// preserving the order the groups appear in.
func (t *AccountTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: accounts must be a mapping of type to account names", node.Line)
	}
	groups := make(AccountTable, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		accountType, err := ParseAccountType(key.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
		var names []string
		if err := value.Decode(&names); err != nil {
			return fmt.Errorf("accounts for type %s: %w", accountType, err)
		}
		groups = append(groups, AccountGroup{Type: accountType, Accounts: names})
	}
	*t = groups
	return nil
}

// Categories converts the table into the generic category form used by the
// rollup, one category per declared type group.
func (t AccountTable) Categories() []Category {
	cats := make([]Category, 0, len(t))
	for _, g := range t {
		cats = append(cats, Category{Name: string(g.Type), Accounts: g.Accounts})
	}
	return cats
}

// Category is a named, declared, ordered set of account names forming one
// entry of a rollup dimension. Members may appear in several categories.
type Category struct {
	Name     string
	Accounts []string
}

// CategoryTable holds the declared named categories in declaration order.
type CategoryTable []Category

// UnmarshalYAML decodes a mapping of category name to member account names,
// preserving declaration order.
func (t *CategoryTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: account_sums must be a mapping of name to account names", node.Line)
	}
	cats := make(CategoryTable, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var names []string
		if err := value.Decode(&names); err != nil {
			return fmt.Errorf("members of category %q: %w", key.Value, err)
		}
		cats = append(cats, Category{Name: key.Value, Accounts: names})
	}
	*t = cats
	return nil
}
