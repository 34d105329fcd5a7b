package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// playerFlags binds one flag per editable player field
type playerFlags struct {
	firstName    string
	middleName   string
	lastName     string
	dateOfBirth  string
	squadNumber  int
	position     string
	abbrPosition string
	team         string
	league       string
	starting11   bool
}

func (f *playerFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.firstName, "first-name", "", "First name")
	fs.StringVar(&f.middleName, "middle-name", "", "Middle name")
	fs.StringVar(&f.lastName, "last-name", "", "Last name")
	fs.StringVar(&f.dateOfBirth, "dob", "", "Date of birth (YYYY-MM-DD)")
	fs.IntVar(&f.squadNumber, "squad-number", 0, "Squad number")
	fs.StringVar(&f.position, "position", "", "Position, e.g. Goalkeeper")
	fs.StringVar(&f.abbrPosition, "abbr-position", "", "Abbreviated position, e.g. GK")
	fs.StringVar(&f.team, "team", "", "Club")
	fs.StringVar(&f.league, "league", "", "Club league")
	fs.BoolVar(&f.starting11, "starting11", false, "Member of the starting eleven")
}

// apply copies the flags that were set on the command line onto p
func (f *playerFlags) apply(fs *pflag.FlagSet, p *Player) {
	set := func(name string, dst *string, val string) {
		if fs.Changed(name) {
			*dst = val
		}
	}
	set("first-name", &p.FirstName, f.firstName)
	set("middle-name", &p.MiddleName, f.middleName)
	set("last-name", &p.LastName, f.lastName)
	set("dob", &p.DateOfBirth, f.dateOfBirth)
	set("position", &p.Position, f.position)
	set("abbr-position", &p.AbbrPosition, f.abbrPosition)
	set("team", &p.Team, f.team)
	set("league", &p.League, f.league)
	if fs.Changed("squad-number") {
		p.SquadNumber = f.squadNumber
	}
	if fs.Changed("starting11") {
		p.Starting11 = f.starting11
	}
}

func parseIntArg(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, arg)
	}
	return n, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get(cmd.Context(), "/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a player by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIntArg("id", args[0])
			if err != nil {
				return err
			}

			var result Player
			if err := client.Get(cmd.Context(), fmt.Sprintf("/players/%d", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newSquadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "squad <number>",
		Short: "Show the player wearing a squad number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIntArg("squad number", args[0])
			if err != nil {
				return err
			}

			var result Player
			if err := client.Get(cmd.Context(), fmt.Sprintf("/players/squadNumber/%d", n), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newCreateCmd() *cobra.Command {
	var (
		id    int
		flags playerFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := Player{ID: id}
			flags.apply(cmd.Flags(), &req)

			var result Player
			if err := client.Post(cmd.Context(), "/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Player id (required)")
	flags.bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("squad-number")

	return cmd
}

func newUpdateCmd() *cobra.Command {
	var flags playerFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a player",
		Long: `Update a player. Only the fields given as flags change; the rest keep
their current values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIntArg("id", args[0])
			if err != nil {
				return err
			}
			path := fmt.Sprintf("/players/%d", id)

			var current Player
			if err := client.Get(cmd.Context(), path, &current); err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &current)

			if err := client.Put(cmd.Context(), path, current); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Player %d updated", id))
			return nil
		},
	}

	flags.bind(cmd.Flags())

	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIntArg("id", args[0])
			if err != nil {
				return err
			}

			err = client.Delete(cmd.Context(), fmt.Sprintf("/players/%d", id))
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("player %d: %w", id, err)
			}
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Player %d deleted", id))
			return nil
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult

			if err := client.Get(cmd.Context(), "/health", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
