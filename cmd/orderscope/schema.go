package main

import (
	"encoding/json"
	"fmt"

	"github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		reflector := &jsonschema.Reflector{
			FieldNameTag:   "json",
			ExpandedStruct: true,
		}
		schema := reflector.Reflect(&config.Config{})
		schema.Title = "OrderScope configuration"

		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}
