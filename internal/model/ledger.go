package model

// Period is a named, ordered collection of transactions, typically a month.
type Period struct {
	Name         string        `yaml:"name"`
	Transactions []Transaction `yaml:"transactions"`
}

// Ledger is the full declared input for one bookkeeping run: accounts,
// named categories, and ordered periods of transactions. It is read-only
// once loaded.
type Ledger struct {
	Name        string
	Accounts    AccountTable
	AccountSums CategoryTable
	Periods     []Period
}

// AccountIndex is a lookup from account name to its declared type.
type AccountIndex map[string]AccountType

// AccountIndex flattens the type-grouped declarations into a lookup table.
// Uniqueness of account names is the loader's responsibility; a name
// declared twice resolves to its last declaration here.
func (l *Ledger) AccountIndex() AccountIndex {
	idx := make(AccountIndex)
	for _, group := range l.Accounts {
		for _, name := range group.Accounts {
			idx[name] = group.Type
		}
	}
	return idx
}

// Exists reports whether an account name is declared.
func (i AccountIndex) Exists(name string) bool {
	_, ok := i[name]
	return ok
}

// Type returns the declared type of an account.
func (i AccountIndex) Type(name string) (AccountType, bool) {
	t, ok := i[name]
	return t, ok
}
