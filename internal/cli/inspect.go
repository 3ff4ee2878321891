package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/orrery/neowatch/internal/neo"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Designation    string
	Name           string
	ShowApproaches bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect (--pdes DESIGNATION | --name NAME)",
		Short: "Look up a single NEO by designation or by name",
		Long: `Look up one near-Earth object by primary designation or by IAU name
and print it. Matching is exact: check spelling and capitalization if
there is no match.

Examples:
  neowatch inspect --pdes 433
  neowatch inspect --name Halley --approaches`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Designation, "pdes", "", "primary designation of the NEO")
	cmd.Flags().StringVar(&opts.Name, "name", "", "IAU name of the NEO")
	cmd.Flags().BoolVar(&opts.ShowApproaches, "approaches", false, "also list the NEO's close approaches")
	cmd.MarkFlagsOneRequired("pdes", "name")
	cmd.MarkFlagsMutuallyExclusive("pdes", "name")

	return cmd
}

func runInspect(opts *InspectOptions, cmd *cobra.Command) error {
	database, err := loadDatabase(opts.RootOptions)
	if err != nil {
		return err
	}

	object := database.NEOByDesignation(opts.Designation)
	if object == nil {
		object = database.NEOByName(opts.Name)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if object == nil {
		// A lookup miss is not a data error; it exits 1 with a message.
		_ = formatter.Error(ErrCodeNotFound, "no matching NEO found")
		return NewExitError(ExitFailure, "no matching NEO found")
	}

	if opts.Format == "json" {
		return formatter.Success(inspectPayload(object, opts.ShowApproaches))
	}

	var b strings.Builder
	b.WriteString(object.String())
	if opts.ShowApproaches {
		for _, a := range object.Approaches {
			b.WriteString("\n- ")
			b.WriteString(a.String())
		}
	}
	return formatter.Success(b.String())
}

// inspectPayload builds the JSON view of an object, optionally with its
// approach views attached.
func inspectPayload(object *neo.Object, withApproaches bool) map[string]any {
	payload := object.Serialize()
	payload["fullname"] = object.Fullname()
	if withApproaches {
		views := make([]map[string]any, 0, len(object.Approaches))
		for _, a := range object.Approaches {
			views = append(views, a.Serialize())
		}
		payload["approaches"] = views
	}
	return payload
}
