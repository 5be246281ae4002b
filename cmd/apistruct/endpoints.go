package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/apistruct/version"
)

// endpointView is the printed form of a configured endpoint.
type endpointView struct {
	Name    string            `json:"name" yaml:"name"`
	Root    string            `json:"root" yaml:"root"`
	Params  map[string]any    `json:"params,omitempty" yaml:"params,omitempty"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

func newEndpointsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List configured endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			views := make([]endpointView, 0)
			for _, name := range a.registry.Names() {
				ep, err := a.registry.Lookup(name)
				if err != nil {
					return err
				}
				views = append(views, endpointView{Name: name, Root: ep.Root, Params: ep.Params, Headers: ep.Headers})
			}
			return render(cmd.OutOrStdout(), opts.output, views)
		},
	}
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd.OutOrStdout(), opts.output, version.Get())
		},
	}
}
