package cli

import (
	"encoding"

	"github.com/spf13/cobra"
)

// The opt helpers return nil for flags the user did not pass, so update requests only
// carry the fields that were given on the command line.

func optString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, _ := cmd.Flags().GetString(name)

	return &value
}

func optInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, _ := cmd.Flags().GetInt(name)

	return &value
}

func optFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, _ := cmd.Flags().GetFloat64(name)

	return &value
}

// optEnum parses an enumeration flag given as a code or a display label.
func optEnum[E any, P interface {
	*E
	encoding.TextUnmarshaler
}](cmd *cobra.Command, name string) *E {
	raw := optString(cmd, name)
	if raw == nil {
		return nil
	}

	var value E
	_ = P(&value).UnmarshalText([]byte(*raw))

	return &value
}

func enumValue[E any, P interface {
	*E
	encoding.TextUnmarshaler
}](cmd *cobra.Command, name string) E {
	var value E

	if parsed := optEnum[E, P](cmd, name); parsed != nil {
		value = *parsed
	}

	return value
}
