// Package export renders directory records for the non-interactive commands.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/five82/crew/internal/directory"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json or yaml)", value)
	}
}

// Person is the exported view of one record, with display fields formatted
// the same way the detail modal shows them.
type Person struct {
	Index    int    `json:"index" yaml:"index"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	City     string `json:"city" yaml:"city"`
	State    string `json:"state" yaml:"state"`
	Address  string `json:"address" yaml:"address"`
	Birthday string `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	Picture  string `json:"picture,omitempty" yaml:"picture,omitempty"`
}

// People converts the visible cards of d, in display order.
func People(d *directory.Directory) []Person {
	cards := d.VisibleCards()
	out := make([]Person, 0, len(cards))
	for _, c := range cards {
		r := c.Record
		out = append(out, Person{
			Index:    c.Index,
			Name:     r.FullName(),
			Email:    r.Email,
			Phone:    r.Phone,
			City:     r.City,
			State:    r.State,
			Address:  r.Address(),
			Birthday: r.Birthday(),
			Picture:  r.Picture,
		})
	}
	return out
}

// Write encodes people to w in the given format.
func Write(w io.Writer, format Format, people []Person) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(people); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(people); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	case FormatTable:
		_, err := io.WriteString(w, Table(people)+"\n")
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Table renders people as a bordered lipgloss table.
func Table(people []Person) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	altStyle := lipgloss.NewStyle().Faint(true).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 1:
				return altStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "Name", "E-mail", "City", "Phone", "Birthday")

	for _, p := range people {
		t.Row(
			fmt.Sprintf("%d", p.Index+1),
			p.Name,
			p.Email,
			strings.TrimSuffix(strings.TrimSpace(p.City+", "+p.State), ","),
			p.Phone,
			p.Birthday,
		)
	}
	return t.String()
}
