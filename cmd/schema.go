package cmd

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/cinemcp/cinemcp/movie"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("detail", "d", false, "Generate the JSON Schema for movie detail objects")
}

var optionalString = reflect.TypeOf(mo.Option[string]{})

// schemaCmd generates JSON schemas for the --json outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for the structured outputs",
	Long: `Generate JSON schemas for the structured outputs.
By default the schema of a search result list is printed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Mapper = func(t reflect.Type) *jsonschema.Schema {
			if t == optionalString {
				return &jsonschema.Schema{
					OneOf: []*jsonschema.Schema{{Type: "string"}, {Type: "null"}},
				}
			}

			return nil
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("detail")):
			schema = reflector.Reflect(&movie.Detail{})
		default:
			schema = reflector.Reflect([]*movie.Hit{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
