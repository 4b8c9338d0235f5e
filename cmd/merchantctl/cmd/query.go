package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"serviceability/internal/domain/entity"
	"serviceability/internal/errors"
	"serviceability/internal/usecase"

	"github.com/spf13/cobra"
)

func newQueryCmd(opts *globalOptions) *cobra.Command {
	var detail bool

	cmd := &cobra.Command{
		Use:   "query <pincode>[,<pincode>...] [<pincode>...]",
		Short: "List the merchants servicing each pincode",
		Example: `  merchantctl query 110001,110002
  merchantctl query 110001 560034 --detail`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), cmd, opts, args, detail)
		},
	}

	cmd.Flags().BoolVar(&detail, "detail", false, "Include merchant names")

	return cmd
}

func runQuery(ctx context.Context, cmd *cobra.Command, opts *globalOptions, args []string, detail bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	pincodes := make([]string, 0, len(args))
	for _, arg := range args {
		pincodes = append(pincodes, entity.SplitPincodes(arg)...)
	}
	if len(pincodes) == 0 {
		return errors.New("at least one pincode is required")
	}

	query := url.Values{"pincodes": {strings.Join(pincodes, ",")}}
	if detail {
		query.Set("detail", "true")
	}

	out := cmd.OutOrStdout()
	client := opts.client()

	if detail {
		var resolved map[string][]usecase.ServiceableMerchant
		raw, err := client.do(ctx, http.MethodGet, "/serviceability", query, "", nil, &resolved)
		if err != nil {
			return err
		}
		if opts.json {
			return printJSON(out, raw)
		}

		for _, pincode := range distinct(pincodes) {
			names := make([]string, 0, len(resolved[pincode]))
			for _, merchant := range resolved[pincode] {
				if merchant.Tombstone {
					names = append(names, fmt.Sprintf("%d (deleted)", merchant.ID))
					continue
				}
				names = append(names, fmt.Sprintf("%d %s", merchant.ID, merchant.Name))
			}
			printPincodeLine(out, pincode, names)
		}

		return nil
	}

	var ids map[string][]entity.MerchantID
	raw, err := client.do(ctx, http.MethodGet, "/serviceability", query, "", nil, &ids)
	if err != nil {
		return err
	}
	if opts.json {
		return printJSON(out, raw)
	}

	for _, pincode := range distinct(pincodes) {
		values := make([]string, 0, len(ids[pincode]))
		for _, id := range ids[pincode] {
			values = append(values, strconv.FormatInt(int64(id), 10))
		}
		printPincodeLine(out, pincode, values)
	}

	return nil
}

func printPincodeLine(w io.Writer, pincode string, merchants []string) {
	if len(merchants) == 0 {
		fmt.Fprintf(w, "%s: none\n", pincode)
		return
	}

	fmt.Fprintf(w, "%s: %s\n", pincode, strings.Join(merchants, ", "))
}

// distinct keeps the first occurrence of each value.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}

	return result
}
