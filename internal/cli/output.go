package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	MiddleName   string `json:"middle_name,omitempty"`
	LastName     string `json:"last_name"`
	DateOfBirth  string `json:"date_of_birth,omitempty"`
	SquadNumber  int    `json:"squad_number"`
	Position     string `json:"position,omitempty"`
	AbbrPosition string `json:"abbr_position,omitempty"`
	Team         string `json:"team,omitempty"`
	League       string `json:"league,omitempty"`
	Starting11   bool   `json:"starting11"`
}

// FullName joins the non-empty name parts
func (p Player) FullName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	_, _ = fmt.Fprintf(o.w, "Player: %s (%d)\n", p.FullName(), p.ID)
	_, _ = fmt.Fprintf(o.w, "Squad Number: %d\n", p.SquadNumber)
	if p.Position != "" {
		_, _ = fmt.Fprintf(o.w, "Position: %s (%s)\n", p.Position, p.AbbrPosition)
	}
	if p.DateOfBirth != "" {
		_, _ = fmt.Fprintf(o.w, "Date of Birth: %s\n", p.DateOfBirth)
	}
	if p.Team != "" {
		_, _ = fmt.Fprintf(o.w, "Team: %s (%s)\n", p.Team, p.League)
	}
	starting := "no"
	if p.Starting11 {
		starting = "yes"
	}
	_, _ = fmt.Fprintf(o.w, "Starting 11: %s\n", starting)
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		_, _ = fmt.Fprintln(o.w, "No players")
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\t#\tNAME\tPOS\tTEAM")
	for _, p := range players {
		_, _ = fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n", p.ID, p.SquadNumber, p.FullName(), p.AbbrPosition, p.Team)
	}
	_ = tw.Flush()
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
