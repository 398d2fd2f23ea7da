package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const dateFormat = "2006-01-02"

// Leg is one (account, signed amount) entry within a transaction.
type Leg struct {
	Account string
	Amount  decimal.Decimal
}

// Transaction is one dated movement of money between accounts. Its legs
// must net to exactly zero; that is enforced during summarization, not here.
type Transaction struct {
	Name      string
	Date      time.Time
	Transfers []Leg
	// Comments holds any extra keys from the ledger file, such as paths to
	// receipts or bills.
	Comments map[string]string
	// Index is the transaction's zero-based position within its period,
	// assigned by the loader.
	Index int
}

// UnmarshalYAML decodes a transaction mapping. The transfers mapping keeps
// its declared order; unrecognized keys become comments.
func (t *Transaction) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: transaction must be a mapping", node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "name":
			t.Name = value.Value
		case "date":
			date, err := time.Parse(dateFormat, value.Value)
			if err != nil {
				return fmt.Errorf("line %d: parsing date %q: %w", value.Line, value.Value, err)
			}
			t.Date = date
		case "transfers":
			legs, err := decodeLegs(value)
			if err != nil {
				return err
			}
			t.Transfers = legs
		default:
			if t.Comments == nil {
				t.Comments = make(map[string]string)
			}
			t.Comments[key.Value] = value.Value
		}
	}
	if t.Name == "" {
		return fmt.Errorf("line %d: transaction has no name", node.Line)
	}
	return nil
}

func decodeLegs(node *yaml.Node) ([]Leg, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: transfers must be a mapping of account to amount", node.Line)
	}
	legs := make([]Leg, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		amount, err := decimal.NewFromString(value.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing amount %q for account %q: %w", value.Line, value.Value, key.Value, err)
		}
		legs = append(legs, Leg{Account: key.Value, Amount: amount})
	}
	return legs, nil
}
