package commands

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/odoo-client/pkg/odoo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type operationFunc func(*odoo.API, context.Context, string, []interface{}, map[string]interface{}) (interface{}, error)

type operationCommand struct {
	run   operationFunc
	short string
	long  string
}

var operationCommands = map[odoo.Operation]operationCommand{
	odoo.OperationSearch: {
		run:   (*odoo.API).Search,
		short: "Search record ids matching a domain",
		long:  `Search returns the ids of records matching a domain, e.g. '[[["is_company","=",true]]]'.`,
	},
	odoo.OperationSearchCount: {
		run:   (*odoo.API).SearchCount,
		short: "Count records matching a domain",
	},
	odoo.OperationSearchRead: {
		run:   (*odoo.API).SearchRead,
		short: "Search records and read their fields",
		long:  `Use --kwargs '{"fields":["name"],"limit":5}' to restrict fields and paginate.`,
	},
	odoo.OperationRead: {
		run:   (*odoo.API).Read,
		short: "Read fields of records by id",
	},
	odoo.OperationFieldsGet: {
		run:   (*odoo.API).FieldsGet,
		short: "Describe the fields of a model",
		long:  `Use --kwargs '{"attributes":["string","type"]}' to restrict the returned attributes.`,
	},
	odoo.OperationCreate: {
		run:   (*odoo.API).Create,
		short: "Create a record and print its id",
	},
	odoo.OperationWrite: {
		run:   (*odoo.API).Write,
		short: "Update records by id",
	},
	odoo.OperationUnlink: {
		run:   (*odoo.API).Unlink,
		short: "Delete records by id",
	},
}

// NewOperationCommands creates one command per model operation, in the order
// returned by odoo.Operations.
func NewOperationCommands() []*cobra.Command {
	ops := odoo.Operations()
	cmds := make([]*cobra.Command, 0, len(ops))

	for _, op := range ops {
		cmds = append(cmds, newOperationCommand(op))
	}

	return cmds
}

func newOperationCommand(op odoo.Operation) *cobra.Command {
	var kwargsJSON string

	def := operationCommands[op]
	name := strings.ReplaceAll(op.String(), "_", "-")

	cmd := &cobra.Command{
		Use:   name + " MODEL [ARGS_JSON]",
		Short: def.short,
		Long:  def.long,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, positional, kwargs, err := parseCommandInput(args, kwargsJSON)
			if err != nil {
				return err
			}

			api, err := apiFactory(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			result, err := def.run(api, cmd.Context(), model, positional, kwargs)
			if err != nil {
				return err
			}

			return renderResult(cmd.OutOrStdout(), viper.GetString("output"), result)
		},
	}

	if name != op.String() {
		cmd.Aliases = []string{op.String()}
	}

	cmd.Flags().StringVar(&kwargsJSON, "kwargs", "", "keyword arguments as a JSON object")

	return cmd
}

// NewCallCommand creates the generic call command. The operation is passed to
// the API unchecked so unknown names are rejected by the client itself.
func NewCallCommand() *cobra.Command {
	var kwargsJSON string

	cmd := &cobra.Command{
		Use:   "call OPERATION MODEL [ARGS_JSON]",
		Short: "Call any model operation",
		Long: `Call runs OPERATION on MODEL. OPERATION must be one of write, create, read,
search, search_count, search_read, fields_get or unlink.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			operation := odoo.Operation(args[0])

			model, positional, kwargs, err := parseCommandInput(args[1:], kwargsJSON)
			if err != nil {
				return err
			}

			api, err := apiFactory(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			result, err := api.Call(cmd.Context(), operation, model, positional, kwargs)
			if err != nil {
				return err
			}

			return renderResult(cmd.OutOrStdout(), viper.GetString("output"), result)
		},
	}

	cmd.Flags().StringVar(&kwargsJSON, "kwargs", "", "keyword arguments as a JSON object")

	return cmd
}

func parseCommandInput(args []string, kwargsJSON string) (string, []interface{}, map[string]interface{}, error) {
	model := args[0]

	var rawArgs string
	if len(args) > 1 {
		rawArgs = args[1]
	}

	positional, err := parseArgs(rawArgs)
	if err != nil {
		return "", nil, nil, err
	}

	kwargs, err := parseKwargs(kwargsJSON)
	if err != nil {
		return "", nil, nil, err
	}

	return model, positional, kwargs, nil
}
