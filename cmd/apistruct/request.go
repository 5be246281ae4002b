package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/apistruct/client"
)

var verbs = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete}

// requestFlags holds the per-request flags of a verb command.
type requestFlags struct {
	path    string
	prefix  string
	params  []string
	values  []string
	headers []string
	data    string
}

func newVerbCmd(opts *rootOptions, method string) *cobra.Command {
	rf := &requestFlags{}
	verb := strings.ToLower(method)

	cmd := &cobra.Command{
		Use:   verb + " <endpoint> [path-args...]",
		Short: fmt.Sprintf("Send a %s request to an endpoint", method),
		Example: fmt.Sprintf(`  apistruct %s users 42
  apistruct %s users --path ':id/posts' --value id=42 --param page=2`, verb, verb),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, opts, rf, method, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&rf.path, "path", "", "path replacing the endpoint default path")
	flags.StringVar(&rf.prefix, "prefix", "", "path segment inserted after the endpoint root")
	flags.StringArrayVarP(&rf.params, "param", "p", nil, "query parameter key=value (repeatable)")
	flags.StringArrayVar(&rf.values, "value", nil, "placeholder value key=value (repeatable)")
	flags.StringArrayVarP(&rf.headers, "header", "H", nil, "request header key=value (repeatable)")
	flags.StringVarP(&rf.data, "data", "d", "", "JSON request body")
	return cmd
}

func runRequest(cmd *cobra.Command, opts *rootOptions, rf *requestFlags, method string, args []string) error {
	ctx := cmd.Context()
	reqOpts, err := rf.requestOptions(cmd)
	if err != nil {
		return err
	}

	a, err := loadApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	clientOpts := []client.Option{
		client.WithRegistry(a.registry),
		client.WithHTTPConfig(a.cfg.HTTP),
		client.WithLogger(a.log),
	}
	if a.metrics != nil {
		clientOpts = append(clientOpts, client.WithMetrics(a.metrics))
	}
	c, err := client.New(client.Bind(args[0]), clientOpts...)
	if err != nil {
		return err
	}
	defer c.Close(ctx)

	callArgs := make([]any, 0, len(args))
	for _, arg := range args[1:] {
		callArgs = append(callArgs, arg)
	}
	callArgs = append(callArgs, reqOpts)

	res := c.Do(ctx, method, callArgs...)
	if res.IsFailure() {
		if err := render(cmd.OutOrStdout(), opts.output, res.Err()); err != nil {
			return err
		}
		return fmt.Errorf("%s %s: %w", method, c.URL(callArgs...), res.Err())
	}
	return render(cmd.OutOrStdout(), opts.output, res.Value())
}

func (rf *requestFlags) requestOptions(cmd *cobra.Command) ([]client.RequestOption, error) {
	var opts []client.RequestOption
	if cmd.Flags().Changed("path") {
		opts = append(opts, client.WithPath(rf.path))
	}
	if rf.prefix != "" {
		opts = append(opts, client.WithPrefix(rf.prefix))
	}

	params, err := parsePairs("param", rf.params)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		opts = append(opts, client.WithParams(params))
	}

	values, err := parsePairs("value", rf.values)
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		opts = append(opts, client.WithValues(values))
	}

	for _, h := range rf.headers {
		k, v, ok := strings.Cut(h, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid header %q: expected key=value", h)
		}
		opts = append(opts, client.WithHeader(k, v))
	}

	if rf.data != "" {
		var body any
		if err := json.Unmarshal([]byte(rf.data), &body); err != nil {
			return nil, fmt.Errorf("invalid --data: %w", err)
		}
		opts = append(opts, client.WithBody(body))
	}
	return opts, nil
}

// parsePairs parses key=value flags. A repeated key collects its values into
// a slice, which the client sends as repeated query parameters.
func parsePairs(flag string, pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --%s %q: expected key=value", flag, pair)
		}
		switch prev := out[k].(type) {
		case nil:
			out[k] = v
		case string:
			out[k] = []string{prev, v}
		case []string:
			out[k] = append(prev, v)
		}
	}
	return out, nil
}
