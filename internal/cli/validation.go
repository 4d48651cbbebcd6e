package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var prefixedID = regexp.MustCompile(`^[A-Za-z]+-(\d+)$`)

// parseID reads a numeric entity ID argument.
// Returns an error with a helpful message for prefixed or malformed IDs.
func parseID(arg, entityType string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err == nil && id > 0 {
		return id, nil
	}
	if err == nil {
		return 0, fmt.Errorf("invalid %s ID '%s'. IDs start at 1", entityType, arg)
	}

	// Check if it looks like a prefixed ID (e.g. APP-12)
	if m := prefixedID.FindStringSubmatch(arg); m != nil {
		return 0, fmt.Errorf("invalid %s ID '%s'. Use the bare number: %s", entityType, arg, strings.TrimLeft(m[1], "0"))
	}
	return 0, fmt.Errorf("invalid %s ID '%s'. Expected a positive number", entityType, arg)
}

// Flag helpers copy a flag onto dst only when the user set it, so updates
// leave untouched fields as they were stored.

func stringFlag(cmd *cobra.Command, name string, dst *string) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func enumFlag[E ~string](cmd *cobra.Command, name string, dst *E) error {
	var s string
	if err := stringFlag(cmd, name, &s); err != nil || !cmd.Flags().Changed(name) {
		return err
	}
	*dst = E(strings.ToLower(strings.TrimSpace(s)))
	return nil
}

func int64Flag(cmd *cobra.Command, name string, dst *int64) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt64(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func intFlag(cmd *cobra.Command, name string, dst *int) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func boolFlag(cmd *cobra.Command, name string, dst *bool) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func idsFlag(cmd *cobra.Command, name string, dst *[]int64) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt64Slice(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// choices renders enum values for flag help.
func choices[E ~string](values []E) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

var errNoChanges = errors.New("nothing to update: pass at least one field flag")

var errInvalidPage = errors.New("--page must be 1 or greater")

// anyChanged reports whether any of the named flags was set.
func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}
