// ABOUTME: resolve command shows how a Spotify link is parsed
// ABOUTME: Prints the resource reference and validation result as JSON

package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/stevedylandev/wholenote-server/core/domain"
)

type resolveResult struct {
	domain.ResourceReference
	EmbedURL string `json:"embed_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Parse a Spotify link into a resource reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeResolve(cmd.OutOrStdout(), args[0])
	},
}

func writeResolve(w io.Writer, reference string) error {
	ref, err := domain.ValidateLink(reference)
	result := resolveResult{ResourceReference: ref}

	if err != nil {
		result.Error = err.Error()
	} else {
		result.EmbedURL = ref.EmbedURL()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
